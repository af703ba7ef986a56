package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/whitebay/backoffice/internal/models"
	"github.com/whitebay/backoffice/internal/store"
)

type EventRepository interface {
	CRUD[models.Event, models.EventPatch]
	SetActive(ctx context.Context, id string, active bool) (models.Event, error)
	// Modify runs fn against the stored event under the collection lock.
	Modify(ctx context.Context, id string, fn func(e *models.Event) error) (models.Event, error)
}

type eventRepository struct {
	*crud[models.Event, *models.Event, models.EventPatch]
}

func NewEventRepository(d Deps) EventRepository {
	return &eventRepository{
		crud: newCRUD[models.Event, *models.Event, models.EventPatch](d, store.KeyEvents, "events", prepareEvent),
	}
}

func prepareEvent(_ []models.Event, e *models.Event, _ bool) error {
	if strings.TrimSpace(e.Title) == "" {
		return invalid("event title is required")
	}
	if e.Category != "" && !e.Category.Valid() {
		return invalid("unknown category %q", e.Category)
	}
	if e.Capacity < 0 || e.RegisteredCount < 0 {
		return invalid("capacity and registered count must not be negative")
	}
	seen := make(map[string]struct{}, len(e.TicketTypes))
	for i := range e.TicketTypes {
		tt := &e.TicketTypes[i]
		if tt.ID == "" {
			tt.ID = fmt.Sprintf("tt%d", i+1)
		}
		if _, dup := seen[tt.ID]; dup {
			return invalid("duplicate ticket type id %q", tt.ID)
		}
		seen[tt.ID] = struct{}{}
		if tt.Price < 0 || tt.Available < 0 || tt.Sold < 0 {
			return invalid("ticket type %q has negative values", tt.ID)
		}
	}
	return nil
}

func (r *eventRepository) SetActive(ctx context.Context, id string, active bool) (models.Event, error) {
	return r.Update(ctx, id, models.EventPatch{IsActive: models.Some(active)})
}

func (r *eventRepository) Modify(ctx context.Context, id string, fn func(e *models.Event) error) (models.Event, error) {
	return r.Collection.Update(ctx, id, func(_ []models.Event, e *models.Event) error {
		return fn(e)
	})
}

type TicketPurchaseRepository interface {
	CRUD[models.TicketPurchase, models.TicketPurchasePatch]
	FindByConfirmationCode(ctx context.Context, code string) (models.TicketPurchase, error)
	SetStatus(ctx context.Context, id string, status models.TicketStatus) (models.TicketPurchase, error)
	// Cancel moves a purchase to cancelled. It returns ErrAlreadyCancelled when
	// another caller got there first, so seats are returned exactly once.
	Cancel(ctx context.Context, id string) (models.TicketPurchase, error)
}

type ticketPurchaseRepository struct {
	*crud[models.TicketPurchase, *models.TicketPurchase, models.TicketPurchasePatch]
}

func NewTicketPurchaseRepository(d Deps) TicketPurchaseRepository {
	return &ticketPurchaseRepository{
		crud: newCRUD[models.TicketPurchase, *models.TicketPurchase, models.TicketPurchasePatch](d, store.KeyTicketPurchases, "ticket_purchases", prepareTicketPurchase),
	}
}

func prepareTicketPurchase(_ []models.TicketPurchase, t *models.TicketPurchase, creating bool) error {
	if t.EventID == "" || t.TicketTypeID == "" {
		return invalid("event and ticket type are required")
	}
	if t.Quantity < 1 {
		return invalid("quantity must be at least 1")
	}
	if strings.TrimSpace(t.BuyerEmail) == "" {
		return invalid("buyer email is required")
	}
	if creating && t.Status == "" {
		t.Status = models.TicketConfirmed
	}
	if !t.Status.Valid() {
		return invalid("unknown ticket status %q", t.Status)
	}
	return nil
}

func (r *ticketPurchaseRepository) FindByConfirmationCode(ctx context.Context, code string) (models.TicketPurchase, error) {
	t, ok := r.Find(ctx, func(t models.TicketPurchase) bool { return strings.EqualFold(t.ConfirmationCode, code) })
	if !ok {
		return t, ErrNotFound
	}
	return t, nil
}

func (r *ticketPurchaseRepository) SetStatus(ctx context.Context, id string, status models.TicketStatus) (models.TicketPurchase, error) {
	if !status.Valid() {
		return models.TicketPurchase{}, invalid("unknown ticket status %q", status)
	}
	return r.Collection.Update(ctx, id, func(_ []models.TicketPurchase, t *models.TicketPurchase) error {
		if !t.Status.CanTransition(status) {
			return fmt.Errorf("%w: ticket %s to %s", ErrInvalidTransition, t.Status, status)
		}
		t.Status = status
		return nil
	})
}

func (r *ticketPurchaseRepository) Cancel(ctx context.Context, id string) (models.TicketPurchase, error) {
	return r.Collection.Update(ctx, id, func(_ []models.TicketPurchase, t *models.TicketPurchase) error {
		if t.Status == models.TicketCancelled {
			return ErrAlreadyCancelled
		}
		if !t.Status.CanTransition(models.TicketCancelled) {
			return fmt.Errorf("%w: ticket %s to %s", ErrInvalidTransition, t.Status, models.TicketCancelled)
		}
		t.Status = models.TicketCancelled
		return nil
	})
}
