package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/whitebay/backoffice/internal/models"
	"github.com/whitebay/backoffice/internal/repository"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrEventInactive      = errors.New("event is not active")
	ErrTicketTypeNotFound = errors.New("ticket type not found")
	ErrSoldOut            = errors.New("not enough tickets available")
	ErrPurchaseNotFound   = errors.New("ticket purchase not found")
)

type PurchaseInput struct {
	EventID      string `json:"eventId"`
	TicketTypeID string `json:"ticketTypeId"`
	Quantity     int    `json:"quantity"`
	BuyerName    string `json:"buyerName"`
	BuyerEmail   string `json:"buyerEmail"`
	BuyerPhone   string `json:"buyerPhone"`
}

type TicketService interface {
	Purchase(ctx context.Context, in PurchaseInput) (models.TicketPurchase, error)
	Cancel(ctx context.Context, id string) (models.TicketPurchase, error)
	MarkUsed(ctx context.Context, id string) (models.TicketPurchase, error)
}

type ticketService struct {
	events    repository.EventRepository
	purchases repository.TicketPurchaseRepository
	now       func() time.Time
	log       *slog.Logger
}

func NewTicketService(events repository.EventRepository, purchases repository.TicketPurchaseRepository, now func() time.Time, log *slog.Logger) TicketService {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = slog.Default()
	}
	return &ticketService{events: events, purchases: purchases, now: now, log: log.With("component", "tickets")}
}

// Purchase reserves seats on the event's ticket type first, then records the
// purchase. If recording fails the seats are returned.
func (s *ticketService) Purchase(ctx context.Context, in PurchaseInput) (models.TicketPurchase, error) {
	if in.Quantity < 1 {
		return models.TicketPurchase{}, fmt.Errorf("%w: quantity must be at least 1", repository.ErrInvalidInput)
	}
	if strings.TrimSpace(in.BuyerEmail) == "" {
		return models.TicketPurchase{}, fmt.Errorf("%w: buyer email is required", repository.ErrInvalidInput)
	}

	var tt models.TicketType
	event, err := s.events.Modify(ctx, in.EventID, func(e *models.Event) error {
		if !e.IsActive {
			return ErrEventInactive
		}
		t, ok := e.TicketType(in.TicketTypeID)
		if !ok {
			return ErrTicketTypeNotFound
		}
		if t.Available < in.Quantity {
			return ErrSoldOut
		}
		t.Available -= in.Quantity
		t.Sold += in.Quantity
		e.RegisteredCount += in.Quantity
		tt = *t
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.TicketPurchase{}, ErrEventNotFound
		}
		return models.TicketPurchase{}, err
	}

	purchase, err := s.purchases.Create(ctx, models.TicketPurchase{
		EventID:          event.ID,
		EventTitle:       event.Title,
		TicketTypeID:     tt.ID,
		TicketTypeName:   tt.Name,
		Quantity:         in.Quantity,
		TotalPrice:       tt.Price * float64(in.Quantity),
		BuyerName:        strings.TrimSpace(in.BuyerName),
		BuyerEmail:       strings.TrimSpace(in.BuyerEmail),
		BuyerPhone:       strings.TrimSpace(in.BuyerPhone),
		ConfirmationCode: newCode("TKT-", 8),
		Status:           models.TicketConfirmed,
		PurchasedAt:      s.now(),
	})
	if err != nil {
		s.releaseSeats(ctx, in.EventID, in.TicketTypeID, in.Quantity)
		return models.TicketPurchase{}, fmt.Errorf("record purchase: %w", err)
	}
	return purchase, nil
}

// Cancel marks the purchase cancelled and returns its seats to the event.
// Cancelling an already cancelled purchase succeeds without touching seats.
func (s *ticketService) Cancel(ctx context.Context, id string) (models.TicketPurchase, error) {
	p, err := s.purchases.Cancel(ctx, id)
	switch {
	case errors.Is(err, repository.ErrAlreadyCancelled):
		return s.purchases.Get(ctx, id)
	case errors.Is(err, repository.ErrNotFound):
		return p, ErrPurchaseNotFound
	case err != nil:
		return p, err
	}
	s.releaseSeats(ctx, p.EventID, p.TicketTypeID, p.Quantity)
	return p, nil
}

func (s *ticketService) MarkUsed(ctx context.Context, id string) (models.TicketPurchase, error) {
	p, err := s.purchases.SetStatus(ctx, id, models.TicketUsed)
	if errors.Is(err, repository.ErrNotFound) {
		return p, ErrPurchaseNotFound
	}
	return p, err
}

func (s *ticketService) releaseSeats(ctx context.Context, eventID, ticketTypeID string, qty int) {
	_, err := s.events.Modify(ctx, eventID, func(e *models.Event) error {
		t, ok := e.TicketType(ticketTypeID)
		if !ok {
			return ErrTicketTypeNotFound
		}
		t.Available += qty
		t.Sold = max(t.Sold-qty, 0)
		e.RegisteredCount = max(e.RegisteredCount-qty, 0)
		return nil
	})
	if err != nil {
		s.log.Warn("could not return seats to event", "event_id", eventID, "ticket_type_id", ticketTypeID, "err", err)
	}
}
