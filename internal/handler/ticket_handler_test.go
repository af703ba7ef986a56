package handler

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whitebay/backoffice/internal/models"
	"github.com/whitebay/backoffice/internal/service"
)

type mockTicketService struct {
	purchaseFn func(ctx context.Context, in service.PurchaseInput) (models.TicketPurchase, error)
	cancelFn   func(ctx context.Context, id string) (models.TicketPurchase, error)
	usedFn     func(ctx context.Context, id string) (models.TicketPurchase, error)
}

func (m *mockTicketService) Purchase(ctx context.Context, in service.PurchaseInput) (models.TicketPurchase, error) {
	return m.purchaseFn(ctx, in)
}
func (m *mockTicketService) Cancel(ctx context.Context, id string) (models.TicketPurchase, error) {
	return m.cancelFn(ctx, id)
}
func (m *mockTicketService) MarkUsed(ctx context.Context, id string) (models.TicketPurchase, error) {
	return m.usedFn(ctx, id)
}

func TestPurchase_Handler(t *testing.T) {
	svc := &mockTicketService{
		purchaseFn: func(ctx context.Context, in service.PurchaseInput) (models.TicketPurchase, error) {
			if in.TicketTypeID == "vip" {
				return models.TicketPurchase{}, service.ErrSoldOut
			}
			return models.TicketPurchase{Meta: models.Meta{ID: "p1"}, Quantity: in.Quantity, ConfirmationCode: "TKT-AAAA2222"}, nil
		},
	}
	h := NewTicketHandler(svc, nil)

	c, rec := newContext(http.MethodPost, "/", `{"eventId":"e1","ticketTypeId":"ga","quantity":2,"buyerEmail":"a@b.c"}`)
	require.NoError(t, h.Purchase(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	c, _ = newContext(http.MethodPost, "/", `{"eventId":"e1","ticketTypeId":"vip","quantity":2,"buyerEmail":"a@b.c"}`)
	assertHTTPError(t, h.Purchase(c), http.StatusConflict)

	c, _ = newContext(http.MethodPost, "/", `{"eventId":"e1","ticketTypeId":"ga","quantity":0}`)
	assertHTTPError(t, h.Purchase(c), http.StatusBadRequest)

	c, _ = newContext(http.MethodPost, "/", `{"quantity":1}`)
	assertHTTPError(t, h.Purchase(c), http.StatusBadRequest)
}

func TestQRCode_Handler(t *testing.T) {
	repos := newTestRepos(t)
	p, err := repos.TicketPurchases.Create(context.Background(), models.TicketPurchase{
		EventID: "e1", TicketTypeID: "ga", Quantity: 1, BuyerEmail: "a@b.c", ConfirmationCode: "TKT-QRQR2345",
	})
	require.NoError(t, err)
	h := NewTicketHandler(nil, repos.TicketPurchases)

	c, rec := newContext(http.MethodGet, "/", "", "id", p.ID)
	require.NoError(t, h.QRCode(c))
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	c, _ = newContext(http.MethodGet, "/", "", "id", "missing")
	assertHTTPError(t, h.QRCode(c), http.StatusNotFound)
}

func TestCancelAndUse_Handler(t *testing.T) {
	svc := &mockTicketService{
		cancelFn: func(ctx context.Context, id string) (models.TicketPurchase, error) {
			return models.TicketPurchase{}, service.ErrPurchaseNotFound
		},
		usedFn: func(ctx context.Context, id string) (models.TicketPurchase, error) {
			return models.TicketPurchase{Meta: models.Meta{ID: id}, Status: models.TicketUsed}, nil
		},
	}
	h := NewTicketHandler(svc, nil)

	c, _ := newContext(http.MethodPost, "/", "", "id", "nope")
	assertHTTPError(t, h.Cancel(c), http.StatusNotFound)

	c, rec := newContext(http.MethodPost, "/", "", "id", "p1")
	require.NoError(t, h.MarkUsed(c))
	assert.Contains(t, rec.Body.String(), `"status":"used"`)
}
