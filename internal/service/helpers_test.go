package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/whitebay/backoffice/internal/models"
	"github.com/whitebay/backoffice/internal/repository"
	"github.com/whitebay/backoffice/internal/store"
)

var testNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

// spyBackend counts writes.
type spyBackend struct {
	*store.MemoryBackend
	sets int
}

func (b *spyBackend) Set(ctx context.Context, key, value string) error {
	b.sets++
	return b.MemoryBackend.Set(ctx, key, value)
}

func newTestRepos(t *testing.T) (*repository.Repositories, *store.Store) {
	t.Helper()
	st := store.New(store.NewMemoryBackend(), nil)
	return repository.New(repository.Deps{Store: st, Clock: fixedClock}), st
}

func mustRoom(t *testing.T, repos *repository.Repositories, number string, status models.RoomStatus) models.Room {
	t.Helper()
	r, err := repos.Rooms.Create(context.Background(), models.Room{
		RoomNumber:    number,
		Name:          "Ocean View " + number,
		Type:          models.RoomDeluxe,
		PricePerNight: 2500,
		Capacity:      2,
		Status:        status,
		IsActive:      true,
	})
	require.NoError(t, err)
	return r
}

func mustBooking(t *testing.T, repos *repository.Repositories, roomID string, in, out time.Time) models.RoomBooking {
	t.Helper()
	b, err := repos.RoomBookings.Create(context.Background(), models.RoomBooking{
		RoomID:    roomID,
		GuestName: "Guest",
		CheckIn:   in,
		CheckOut:  out,
	})
	require.NoError(t, err)
	return b
}
