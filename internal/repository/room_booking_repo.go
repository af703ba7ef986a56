package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/whitebay/backoffice/internal/models"
	"github.com/whitebay/backoffice/internal/store"
)

type RoomBookingRepository interface {
	CRUD[models.RoomBooking, models.RoomBookingPatch]
	ListByRoom(ctx context.Context, roomID string) []models.RoomBooking
	FindByCode(ctx context.Context, code string) (models.RoomBooking, error)
	SetStatus(ctx context.Context, id string, status models.BookingStatus) (models.RoomBooking, error)
	Cancel(ctx context.Context, id, reason string, at time.Time) (models.RoomBooking, error)
	RecordPayment(ctx context.Context, id string, amount float64) (models.RoomBooking, error)
}

type roomBookingRepository struct {
	*crud[models.RoomBooking, *models.RoomBooking, models.RoomBookingPatch]
}

func NewRoomBookingRepository(d Deps) RoomBookingRepository {
	return &roomBookingRepository{
		crud: newCRUD[models.RoomBooking, *models.RoomBooking, models.RoomBookingPatch](d, store.KeyRoomBookings, "room_bookings", prepareRoomBooking),
	}
}

func prepareRoomBooking(items []models.RoomBooking, b *models.RoomBooking, creating bool) error {
	if err := validateBooking(b, creating); err != nil {
		return err
	}
	if !b.Status.Active() {
		return nil
	}
	for _, other := range items {
		if other.ID == b.ID || other.RoomID != b.RoomID || !other.Status.Active() {
			continue
		}
		if other.Overlaps(b.CheckIn, b.CheckOut) {
			return fmt.Errorf("%w: room already booked by %s", ErrConflict, other.BookingCode)
		}
	}
	return nil
}

func validateBooking(b *models.RoomBooking, creating bool) error {
	if strings.TrimSpace(b.RoomID) == "" {
		return invalid("room id is required")
	}
	if strings.TrimSpace(b.GuestName) == "" {
		return invalid("guest name is required")
	}
	if !b.CheckOut.After(b.CheckIn) {
		return invalid("check-out must be after check-in")
	}
	if b.Guests < 1 {
		b.Guests = 1
	}
	if b.TotalAmount < 0 || b.PaidAmount < 0 {
		return invalid("amounts must not be negative")
	}
	if creating && b.Status == "" {
		b.Status = models.BookingConfirmed
	}
	if !b.Status.Valid() {
		return invalid("unknown booking status %q", b.Status)
	}
	if b.PaymentStatus != models.PaymentRefunded {
		b.PaymentStatus = models.PaymentStatusFor(b.PaidAmount, b.TotalAmount)
	}
	return nil
}

func (r *roomBookingRepository) ListByRoom(ctx context.Context, roomID string) []models.RoomBooking {
	var out []models.RoomBooking
	for _, b := range r.List(ctx) {
		if b.RoomID == roomID {
			out = append(out, b)
		}
	}
	return out
}

func (r *roomBookingRepository) FindByCode(ctx context.Context, code string) (models.RoomBooking, error) {
	b, ok := r.Find(ctx, func(b models.RoomBooking) bool { return strings.EqualFold(b.BookingCode, code) })
	if !ok {
		return b, ErrNotFound
	}
	return b, nil
}

func (r *roomBookingRepository) SetStatus(ctx context.Context, id string, status models.BookingStatus) (models.RoomBooking, error) {
	if !status.Valid() {
		return models.RoomBooking{}, invalid("unknown booking status %q", status)
	}
	return r.Collection.Update(ctx, id, func(_ []models.RoomBooking, b *models.RoomBooking) error {
		if !b.Status.CanTransition(status) {
			return fmt.Errorf("%w: booking %s to %s", ErrInvalidTransition, b.Status, status)
		}
		b.Status = status
		return nil
	})
}

// Cancel moves the booking to cancelled and records when and why.
func (r *roomBookingRepository) Cancel(ctx context.Context, id, reason string, at time.Time) (models.RoomBooking, error) {
	return r.Collection.Update(ctx, id, func(_ []models.RoomBooking, b *models.RoomBooking) error {
		if !b.Status.CanTransition(models.BookingCancelled) {
			return fmt.Errorf("%w: booking %s to %s", ErrInvalidTransition, b.Status, models.BookingCancelled)
		}
		b.Status = models.BookingCancelled
		b.CancelledAt = &at
		b.CancellationReason = reason
		return nil
	})
}

// RecordPayment adds amount to the paid total and re-derives the payment status.
func (r *roomBookingRepository) RecordPayment(ctx context.Context, id string, amount float64) (models.RoomBooking, error) {
	if amount <= 0 {
		return models.RoomBooking{}, invalid("payment amount must be positive")
	}
	return r.Collection.Update(ctx, id, func(_ []models.RoomBooking, b *models.RoomBooking) error {
		if b.Status == models.BookingCancelled {
			return fmt.Errorf("%w: booking is cancelled", ErrInvalidTransition)
		}
		b.PaidAmount += amount
		b.PaymentStatus = models.PaymentStatusFor(b.PaidAmount, b.TotalAmount)
		return nil
	})
}
