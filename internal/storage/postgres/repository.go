package postgres

import (
	"fmt"

	"github.com/eventdesk/server/internal/domain/resource"
	"github.com/eventdesk/server/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ storage.Repository = (*Repository)(nil)

// Repository implements storage.Repository on PostgreSQL. Every collection
// is a JSONB document table with a BIGINT id column.
type Repository struct {
	pool *pgxpool.Pool

	events     *Collection[resource.Event]
	attendees  *Collection[resource.Attendee]
	organizers *Collection[resource.Organizer]
}

func NewRepository(pool *pgxpool.Pool) (*Repository, error) {
	if pool == nil {
		return nil, fmt.Errorf("postgres repository: pool is nil")
	}
	return &Repository{
		pool:       pool,
		events:     NewCollection[resource.Event](pool, resource.Events),
		attendees:  NewCollection[resource.Attendee](pool, resource.Attendees),
		organizers: NewCollection[resource.Organizer](pool, resource.Organizers),
	}, nil
}

func (r *Repository) Events() resource.Repository[resource.Event] {
	return r.events
}

func (r *Repository) Attendees() resource.Repository[resource.Attendee] {
	return r.attendees
}

func (r *Repository) Organizers() resource.Repository[resource.Organizer] {
	return r.organizers
}
