package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/eventdesk/server/internal/domain/resource"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// maxInsertAttempts bounds the unique-violation retry loop in Insert.
// Every collision means some other create committed, so with N concurrent
// creates a writer loses at most N-1 rounds before the slot is free.
const maxInsertAttempts = 8

// Collection is a generic JSONB document collection. The id lives in a
// BIGINT primary-key column; the rest of the record is stored as a JSONB
// document, so PATCH maps onto a shallow JSONB merge and PUT onto a
// document overwrite.
type Collection[T resource.Record[T]] struct {
	pool *pgxpool.Pool
	kind resource.Kind
}

var _ resource.Repository[resource.Event] = (*Collection[resource.Event])(nil)

func NewCollection[T resource.Record[T]](pool *pgxpool.Pool, kind resource.Kind) *Collection[T] {
	return &Collection[T]{pool: pool, kind: kind}
}

// table returns the collection's table name. Kind.Plural is a compile-time
// constant per resource, never user input, so interpolating it into SQL is
// safe.
func (c *Collection[T]) table() string {
	return c.kind.Plural
}

func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf(`SELECT id, doc FROM %s ORDER BY id ASC`, c.table())
	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", c.table(), err)
	}
	defer rows.Close()

	records := make([]T, 0)
	for rows.Next() {
		var (
			id  int64
			doc []byte
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scan %s: %w", c.table(), err)
		}
		record, err := decodeDoc[T](id, doc)
		if err != nil {
			return nil, fmt.Errorf("decode %s %d: %w", c.table(), id, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", c.table(), err)
	}
	return records, nil
}

func (c *Collection[T]) Get(ctx context.Context, id int64) (T, error) {
	var zero T
	query := fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1`, c.table())
	var doc []byte
	if err := c.pool.QueryRow(ctx, query, id).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, resource.ErrNotFound
		}
		return zero, fmt.Errorf("get %s %d: %w", c.table(), id, err)
	}
	record, err := decodeDoc[T](id, doc)
	if err != nil {
		return zero, fmt.Errorf("decode %s %d: %w", c.table(), id, err)
	}
	return record, nil
}

// Insert assigns max(id)+1 (1 on an empty collection) inside a single
// statement. Two racing creates can still compute the same slot; the loser
// hits the primary-key constraint and retries, so ids stay unique without
// giving up the max-plus-one numbering.
func (c *Collection[T]) Insert(ctx context.Context, record T) (T, error) {
	var zero T
	doc, err := encodeDoc(record)
	if err != nil {
		return zero, fmt.Errorf("encode %s: %w", c.table(), err)
	}

	query := fmt.Sprintf(
		`INSERT INTO %s (id, doc) VALUES ((SELECT COALESCE(MAX(id), 0) + 1 FROM %s), $1) RETURNING id`,
		c.table(), c.table(),
	)

	var lastErr error
	for attempt := 0; attempt < maxInsertAttempts; attempt++ {
		var id int64
		err := c.pool.QueryRow(ctx, query, doc).Scan(&id)
		if err == nil {
			return record.WithID(id), nil
		}
		if !isUniqueViolation(err) {
			return zero, fmt.Errorf("insert %s: %w", c.table(), err)
		}
		lastErr = err
	}
	return zero, fmt.Errorf("insert %s: id contention after %d attempts: %w", c.table(), maxInsertAttempts, lastErr)
}

func (c *Collection[T]) Merge(ctx context.Context, id int64, fields map[string]any) (T, error) {
	var zero T
	// The id column is authoritative; never let a body smuggle one into
	// the document.
	delete(fields, "id")
	patch, err := json.Marshal(fields)
	if err != nil {
		return zero, fmt.Errorf("encode %s patch: %w", c.table(), err)
	}

	query := fmt.Sprintf(`UPDATE %s SET doc = doc || $2::jsonb WHERE id = $1 RETURNING doc`, c.table())
	var doc []byte
	if err := c.pool.QueryRow(ctx, query, id, patch).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, resource.ErrNotFound
		}
		return zero, fmt.Errorf("merge %s %d: %w", c.table(), id, err)
	}
	record, err := decodeDoc[T](id, doc)
	if err != nil {
		return zero, fmt.Errorf("decode %s %d: %w", c.table(), id, err)
	}
	return record, nil
}

func (c *Collection[T]) Replace(ctx context.Context, id int64, record T) (T, error) {
	var zero T
	doc, err := encodeDoc(record)
	if err != nil {
		return zero, fmt.Errorf("encode %s: %w", c.table(), err)
	}

	query := fmt.Sprintf(`UPDATE %s SET doc = $2 WHERE id = $1 RETURNING doc`, c.table())
	var stored []byte
	if err := c.pool.QueryRow(ctx, query, id, doc).Scan(&stored); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, resource.ErrNotFound
		}
		return zero, fmt.Errorf("replace %s %d: %w", c.table(), id, err)
	}
	replaced, err := decodeDoc[T](id, stored)
	if err != nil {
		return zero, fmt.Errorf("decode %s %d: %w", c.table(), id, err)
	}
	return replaced, nil
}

func (c *Collection[T]) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, c.table())
	tag, err := c.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete %s %d: %w", c.table(), id, err)
	}
	if tag.RowsAffected() == 0 {
		return resource.ErrNotFound
	}
	return nil
}

func (c *Collection[T]) Count(ctx context.Context) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, c.table())
	var count int64
	if err := c.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", c.table(), err)
	}
	return count, nil
}

// encodeDoc marshals a record for storage, stripping the id field: the id
// column is the single source of truth.
func encodeDoc[T resource.Record[T]](record T) ([]byte, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	delete(fields, "id")
	return json.Marshal(fields)
}

// decodeDoc unmarshals a stored document and injects the id column value.
func decodeDoc[T resource.Record[T]](id int64, doc []byte) (T, error) {
	var record T
	if err := json.Unmarshal(doc, &record); err != nil {
		return record, err
	}
	return record.WithID(id), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
