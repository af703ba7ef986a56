package repository

import (
	"context"
	"fmt"
)

// Patcher merges the supplied fields of a partial update into a record.
type Patcher[T any] interface {
	Apply(rec *T)
}

// CRUD is the uniform contract every entity repository satisfies.
type CRUD[T any, Patch Patcher[T]] interface {
	List(ctx context.Context) []T
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id string, patch Patch) (T, error)
	Remove(ctx context.Context, id string) error
}

// prepareFunc normalises and validates rec against the loaded collection.
// creating is true for Create, false for Update.
type prepareFunc[T any] func(items []T, rec *T, creating bool) error

type crud[T any, P entity[T], Patch Patcher[T]] struct {
	*Collection[T, P]
	prepare prepareFunc[T]
}

func newCRUD[T any, P entity[T], Patch Patcher[T]](d Deps, key, topic string, prepare prepareFunc[T]) *crud[T, P, Patch] {
	return &crud[T, P, Patch]{
		Collection: newCollection[T, P](d, key, topic),
		prepare:    prepare,
	}
}

func (r *crud[T, P, Patch]) Create(ctx context.Context, item T) (T, error) {
	return r.Collection.create(ctx, item, func(items []T, rec *T) error {
		return r.check(items, rec, true)
	})
}

// Update merges patch into the stored record; omitted fields are kept.
func (r *crud[T, P, Patch]) Update(ctx context.Context, id string, patch Patch) (T, error) {
	return r.Collection.Update(ctx, id, func(items []T, rec *T) error {
		patch.Apply(rec)
		return r.check(items, rec, false)
	})
}

func (r *crud[T, P, Patch]) check(items []T, rec *T, creating bool) error {
	if r.prepare == nil {
		return nil
	}
	return r.prepare(items, rec, creating)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
