package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/whitebay/backoffice/internal/metrics"
)

// Collection keys, one slot per entity collection.
const (
	KeyEvents          = "whitebay_events"
	KeyTicketPurchases = "whitebay_ticket_purchases"
	KeyGuests          = "whitebay_guests"
	KeyAnnouncements   = "whitebay_announcements"
	KeyStaff           = "whitebay_staff"
	KeyMessages        = "whitebay_messages"
	KeyPromotions      = "whitebay_promotions"
	KeyRooms           = "whitebay_rooms"
	KeyRoomBookings    = "whitebay_room_bookings"
)

var keys = []string{
	KeyEvents, KeyTicketPurchases, KeyGuests, KeyAnnouncements, KeyStaff,
	KeyMessages, KeyPromotions, KeyRooms, KeyRoomBookings,
}

// Backend is a raw key -> text slot store. Get reports ok=false for a key that
// was never written.
type Backend interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}

// Store is constructed once per process and shared by every repository.
type Store struct {
	backend Backend
	log     *slog.Logger
}

func New(backend Backend, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{backend: backend, log: log.With("component", "store")}
}

func (s *Store) Keys() []string {
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

func (s *Store) Ping(ctx context.Context) error {
	return s.backend.Ping(ctx)
}

// Load returns the collection stored under key. Absence, undecodable content
// and backend failures all yield an empty slice.
func Load[T any](ctx context.Context, s *Store, key string) []T {
	raw, ok, err := s.backend.Get(ctx, key)
	if err != nil {
		s.log.Warn("load failed, using empty collection", "key", key, "err", err)
		return []T{}
	}
	if !ok || raw == "" {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.Warn("stored collection is corrupt, using empty collection", "key", key, "err", err)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// Save overwrites the whole collection with a single backend write.
func Save[T any](ctx context.Context, s *Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	body, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.backend.Set(ctx, key, string(body)); err != nil {
		metrics.StoreWrites.WithLabelValues(key, "error").Inc()
		return fmt.Errorf("save %s: %w", key, err)
	}
	metrics.StoreWrites.WithLabelValues(key, "ok").Inc()
	return nil
}

// Clear removes a collection; the next Load returns empty.
func (s *Store) Clear(ctx context.Context, key string) error {
	return s.backend.Delete(ctx, key)
}
