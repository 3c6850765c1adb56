package resource

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when no record matches the id.
var ErrNotFound = errors.New("not found")

// Record is implemented by every stored entity type. WithID returns a copy
// of the record with the given id set, so repositories can inject the
// storage-assigned id without reflection.
type Record[T any] interface {
	RecordID() int64
	WithID(id int64) T
}

// Repository is the persistence contract for a single collection. All three
// collections share the same operation set, so one generic interface covers
// them.
type Repository[T Record[T]] interface {
	// List returns every record in the collection, ascending by id.
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	// Insert persists the record under the next free id and returns it
	// with the assigned id set.
	Insert(ctx context.Context, record T) (T, error)
	// Merge applies a partial update: fields present in the map overwrite
	// the stored document, everything else is left as is.
	Merge(ctx context.Context, id int64, fields map[string]any) (T, error)
	// Replace overwrites every field of the stored document except the id.
	Replace(ctx context.Context, id int64, record T) (T, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// Service wraps a repository for one collection.
type Service[T Record[T]] struct {
	repo Repository[T]
}

func NewService[T Record[T]](repo Repository[T]) *Service[T] {
	return &Service[T]{repo: repo}
}

func (s *Service[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

func (s *Service[T]) Get(ctx context.Context, id int64) (T, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service[T]) Create(ctx context.Context, record T) (T, error) {
	return s.repo.Insert(ctx, record)
}

func (s *Service[T]) Patch(ctx context.Context, id int64, fields map[string]any) (T, error) {
	return s.repo.Merge(ctx, id, fields)
}

func (s *Service[T]) Replace(ctx context.Context, id int64, record T) (T, error) {
	return s.repo.Replace(ctx, id, record)
}

func (s *Service[T]) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
