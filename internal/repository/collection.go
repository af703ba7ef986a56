package repository

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/whitebay/backoffice/internal/metrics"
	"github.com/whitebay/backoffice/internal/models"
	"github.com/whitebay/backoffice/internal/store"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrConflict           = errors.New("conflicting record")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInactive           = errors.New("record is inactive")
	ErrPromotionExhausted = errors.New("promotion usage limit reached")
	ErrAlreadyCancelled   = errors.New("record is already cancelled")
)

// Notifier receives change events after a successful write. A nil Notifier
// disables publishing.
type Notifier interface {
	Publish(routingKey string, payload any) error
}

// Deps is shared by every repository.
type Deps struct {
	Store    *store.Store
	Notifier Notifier
	Logger   *slog.Logger
	Clock    func() time.Time
}

func (d Deps) clock() func() time.Time {
	if d.Clock != nil {
		return d.Clock
	}
	return time.Now
}

type entity[T any] interface {
	*T
	models.Record
}

// Collection implements load/transform/save over one store key. Each
// read-modify-write holds mu so requests in this process cannot interleave.
type Collection[T any, P entity[T]] struct {
	store    *store.Store
	key      string
	topic    string
	now      func() time.Time
	notifier Notifier
	log      *slog.Logger

	mu sync.Mutex
}

func newCollection[T any, P entity[T]](d Deps, key, topic string) *Collection[T, P] {
	log := d.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Collection[T, P]{
		store:    d.Store,
		key:      key,
		topic:    topic,
		now:      d.clock(),
		notifier: d.Notifier,
		log:      log.With("component", "repository", "collection", topic),
	}
}

func (c *Collection[T, P]) Key() string { return c.key }

// List returns every record in insertion order.
func (c *Collection[T, P]) List(ctx context.Context) []T {
	return store.Load[T](ctx, c.store, c.key)
}

func (c *Collection[T, P]) Get(ctx context.Context, id string) (T, error) {
	for _, item := range c.List(ctx) {
		if P(&item).RecordID() == id {
			return item, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Find returns the first record matching pred.
func (c *Collection[T, P]) Find(ctx context.Context, pred func(T) bool) (T, bool) {
	for _, item := range c.List(ctx) {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Create stamps id and timestamps on item, appends it and saves.
func (c *Collection[T, P]) Create(ctx context.Context, item T) (T, error) {
	return c.create(ctx, item, nil)
}

// create runs check against the loaded collection before appending.
func (c *Collection[T, P]) create(ctx context.Context, item T, check func(items []T, item *T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := store.Load[T](ctx, c.store, c.key)
	// Any caller-supplied identity is dropped before checks run.
	P(&item).Stamp("", time.Time{})
	if check != nil {
		if err := check(items, &item); err != nil {
			var zero T
			return zero, err
		}
	}
	now := c.now()
	P(&item).Stamp(store.NewID(now), now)
	items = append(items, item)
	if err := store.Save(ctx, c.store, c.key, items); err != nil {
		var zero T
		return zero, err
	}
	c.publish("created", item)
	return item, nil
}

// Update applies mutate to the record with id and saves the collection. The
// record keeps its position; all other records are written back unchanged.
func (c *Collection[T, P]) Update(ctx context.Context, id string, mutate func(items []T, rec *T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	items := store.Load[T](ctx, c.store, c.key)
	idx := -1
	for i := range items {
		if P(&items[i]).RecordID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return zero, ErrNotFound
	}

	rec := items[idx]
	if err := mutate(items, &rec); err != nil {
		return zero, err
	}
	P(&rec).Touch(c.now())
	items[idx] = rec

	if err := store.Save(ctx, c.store, c.key, items); err != nil {
		return zero, err
	}
	c.publish("updated", rec)
	return rec, nil
}

// Remove drops the record with id. A missing id writes nothing.
func (c *Collection[T, P]) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := store.Load[T](ctx, c.store, c.key)
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if P(&item).RecordID() != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	if err := store.Save(ctx, c.store, c.key, kept); err != nil {
		return err
	}
	c.publish("deleted", map[string]string{"id": id})
	return nil
}

// Batch loads the collection, hands it to fn and saves the result when fn
// reports a change.
func (c *Collection[T, P]) Batch(ctx context.Context, fn func(items []T) ([]T, bool)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, changed := fn(store.Load[T](ctx, c.store, c.key))
	if !changed {
		return nil
	}
	if err := store.Save(ctx, c.store, c.key, items); err != nil {
		return err
	}
	c.publish("replaced", map[string]int{"count": len(items)})
	return nil
}

func (c *Collection[T, P]) publish(op string, payload any) {
	if c.notifier == nil {
		return
	}
	if err := c.notifier.Publish(c.topic+"."+op, payload); err != nil {
		metrics.EventsPublished.WithLabelValues("error").Inc()
		c.log.Warn("publish change event failed", "op", op, "err", err)
		return
	}
	metrics.EventsPublished.WithLabelValues("ok").Inc()
}
