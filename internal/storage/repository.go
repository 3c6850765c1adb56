// Package storage defines the persistence facade implemented by the
// postgres backend.
package storage

import "github.com/eventdesk/server/internal/domain/resource"

// Repository exposes one collection repository per resource.
type Repository interface {
	Events() resource.Repository[resource.Event]
	Attendees() resource.Repository[resource.Attendee]
	Organizers() resource.Repository[resource.Organizer]
}
