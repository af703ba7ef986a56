package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/whitebay/backoffice/internal/models"
	"github.com/whitebay/backoffice/internal/store"
)

type RoomRepository interface {
	CRUD[models.Room, models.RoomPatch]
	FindByNumber(ctx context.Context, number string) (models.Room, error)
	SetStatus(ctx context.Context, id string, status models.RoomStatus) (models.Room, error)
	SetActive(ctx context.Context, id string, active bool) (models.Room, error)
	Batch(ctx context.Context, fn func(items []models.Room) ([]models.Room, bool)) error
}

type roomRepository struct {
	*crud[models.Room, *models.Room, models.RoomPatch]
}

func NewRoomRepository(d Deps) RoomRepository {
	return &roomRepository{crud: newCRUD[models.Room, *models.Room, models.RoomPatch](d, store.KeyRooms, "rooms", prepareRoom)}
}

func prepareRoom(items []models.Room, r *models.Room, creating bool) error {
	r.RoomNumber = strings.TrimSpace(r.RoomNumber)
	if r.RoomNumber == "" {
		return invalid("room number is required")
	}
	if r.Type != "" && !r.Type.Valid() {
		return invalid("unknown room type %q", r.Type)
	}
	if r.Capacity < 0 || r.PricePerNight < 0 {
		return invalid("capacity and price must not be negative")
	}
	if creating && r.Status == "" {
		r.Status = models.RoomAvailable
	}
	if !r.Status.Valid() {
		return invalid("unknown room status %q", r.Status)
	}
	for _, other := range items {
		if other.ID != r.ID && other.RoomNumber == r.RoomNumber {
			return fmt.Errorf("%w: room %s already exists", ErrConflict, r.RoomNumber)
		}
	}
	return nil
}

func (r *roomRepository) FindByNumber(ctx context.Context, number string) (models.Room, error) {
	room, ok := r.Find(ctx, func(room models.Room) bool { return room.RoomNumber == number })
	if !ok {
		return room, ErrNotFound
	}
	return room, nil
}

// SetStatus applies a manual status change through the room transition table.
func (r *roomRepository) SetStatus(ctx context.Context, id string, status models.RoomStatus) (models.Room, error) {
	if !status.Valid() {
		return models.Room{}, invalid("unknown room status %q", status)
	}
	return r.Collection.Update(ctx, id, func(_ []models.Room, room *models.Room) error {
		if !room.Status.CanTransition(status) {
			return fmt.Errorf("%w: room %s to %s", ErrInvalidTransition, room.Status, status)
		}
		room.Status = status
		return nil
	})
}

func (r *roomRepository) SetActive(ctx context.Context, id string, active bool) (models.Room, error) {
	return r.Update(ctx, id, models.RoomPatch{IsActive: models.Some(active)})
}
