package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/whitebay/backoffice/internal/models"
	"github.com/whitebay/backoffice/internal/repository"
)

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomUnavailable  = errors.New("room is not bookable")
	ErrCapacityExceeded = errors.New("guest count exceeds room capacity")
	ErrBookingNotFound  = errors.New("booking not found")
)

type CreateBookingInput struct {
	RoomID          string    `json:"roomId"`
	GuestName       string    `json:"guestName"`
	GuestEmail      string    `json:"guestEmail"`
	GuestPhone      string    `json:"guestPhone"`
	CheckIn         time.Time `json:"checkIn"`
	CheckOut        time.Time `json:"checkOut"`
	Guests          int       `json:"guests"`
	TotalAmount     *float64  `json:"totalAmount"`
	PaidAmount      float64   `json:"paidAmount"`
	SpecialRequests string    `json:"specialRequests"`
}

type BookingService interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (models.RoomBooking, error)
	CancelBooking(ctx context.Context, id, reason string) (models.RoomBooking, error)
	ChangeStatus(ctx context.Context, id string, status models.BookingStatus) (models.RoomBooking, error)
	RecordPayment(ctx context.Context, id string, amount float64) (models.RoomBooking, error)
}

type bookingService struct {
	rooms    repository.RoomRepository
	bookings repository.RoomBookingRepository
	now      func() time.Time
}

func NewBookingService(rooms repository.RoomRepository, bookings repository.RoomBookingRepository, now func() time.Time) BookingService {
	if now == nil {
		now = time.Now
	}
	return &bookingService{rooms: rooms, bookings: bookings, now: now}
}

// CreateBooking copies the room's number and name into the booking; later
// room edits do not touch existing bookings.
func (s *bookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (models.RoomBooking, error) {
	room, err := s.rooms.Get(ctx, in.RoomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.RoomBooking{}, ErrRoomNotFound
		}
		return models.RoomBooking{}, err
	}
	if !room.IsActive || room.Status == models.RoomMaintenance {
		return models.RoomBooking{}, ErrRoomUnavailable
	}

	guests := in.Guests
	if guests < 1 {
		guests = 1
	}
	if room.Capacity > 0 && guests > room.Capacity {
		return models.RoomBooking{}, ErrCapacityExceeded
	}

	booking := models.RoomBooking{
		BookingCode:     newCode("WB-", 6),
		RoomID:          room.ID,
		RoomNumber:      room.RoomNumber,
		RoomName:        room.Name,
		GuestName:       strings.TrimSpace(in.GuestName),
		GuestEmail:      strings.TrimSpace(in.GuestEmail),
		GuestPhone:      strings.TrimSpace(in.GuestPhone),
		CheckIn:         in.CheckIn,
		CheckOut:        in.CheckOut,
		Guests:          guests,
		PaidAmount:      in.PaidAmount,
		Status:          models.BookingConfirmed,
		SpecialRequests: in.SpecialRequests,
	}
	if in.TotalAmount != nil {
		booking.TotalAmount = *in.TotalAmount
	} else {
		booking.TotalAmount = float64(booking.Nights()) * room.PricePerNight
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		return models.RoomBooking{}, fmt.Errorf("create booking: %w", err)
	}
	return created, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, id, reason string) (models.RoomBooking, error) {
	b, err := s.bookings.Cancel(ctx, id, strings.TrimSpace(reason), s.now())
	return b, mapBookingErr(err)
}

func (s *bookingService) ChangeStatus(ctx context.Context, id string, status models.BookingStatus) (models.RoomBooking, error) {
	if status == models.BookingCancelled {
		return s.CancelBooking(ctx, id, "")
	}
	b, err := s.bookings.SetStatus(ctx, id, status)
	return b, mapBookingErr(err)
}

func (s *bookingService) RecordPayment(ctx context.Context, id string, amount float64) (models.RoomBooking, error) {
	b, err := s.bookings.RecordPayment(ctx, id, amount)
	return b, mapBookingErr(err)
}

func mapBookingErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrBookingNotFound
	}
	return err
}
