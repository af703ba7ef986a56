package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whitebay/backoffice/internal/models"
	"github.com/whitebay/backoffice/internal/repository"
)

func mustEvent(t *testing.T, repos *repository.Repositories, active bool) models.Event {
	t.Helper()
	e, err := repos.Events.Create(context.Background(), models.Event{
		Title:    "Beach Concert",
		Date:     "2026-09-01",
		IsActive: active,
		TicketTypes: []models.TicketType{
			{ID: "ga", Name: "General", Price: 800, Available: 3},
			{ID: "vip", Name: "VIP", Price: 2500, Available: 1},
		},
	})
	require.NoError(t, err)
	return e
}

func TestPurchase_DecrementsAvailability(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestRepos(t)
	e := mustEvent(t, repos, true)
	svc := NewTicketService(repos.Events, repos.TicketPurchases, fixedClock, nil)

	p, err := svc.Purchase(ctx, PurchaseInput{EventID: e.ID, TicketTypeID: "ga", Quantity: 2, BuyerName: "Ann", BuyerEmail: "ann@example.com"})

	require.NoError(t, err)
	assert.Regexp(t, `^TKT-[A-Z2-9]{8}$`, p.ConfirmationCode)
	assert.Equal(t, 1600.0, p.TotalPrice)
	assert.Equal(t, "Beach Concert", p.EventTitle)
	assert.Equal(t, "General", p.TicketTypeName)
	assert.Equal(t, models.TicketConfirmed, p.Status)

	got, err := repos.Events.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TicketTypes[0].Available)
	assert.Equal(t, 2, got.TicketTypes[0].Sold)
	assert.Equal(t, 2, got.RegisteredCount)
}

func TestPurchase_Errors(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestRepos(t)
	active := mustEvent(t, repos, true)
	inactive := mustEvent(t, repos, false)
	svc := NewTicketService(repos.Events, repos.TicketPurchases, fixedClock, nil)

	cases := []struct {
		name string
		in   PurchaseInput
		want error
	}{
		{"missing event", PurchaseInput{EventID: "nope", TicketTypeID: "ga", Quantity: 1, BuyerEmail: "a@b.c"}, ErrEventNotFound},
		{"inactive event", PurchaseInput{EventID: inactive.ID, TicketTypeID: "ga", Quantity: 1, BuyerEmail: "a@b.c"}, ErrEventInactive},
		{"unknown type", PurchaseInput{EventID: active.ID, TicketTypeID: "balcony", Quantity: 1, BuyerEmail: "a@b.c"}, ErrTicketTypeNotFound},
		{"sold out", PurchaseInput{EventID: active.ID, TicketTypeID: "vip", Quantity: 2, BuyerEmail: "a@b.c"}, ErrSoldOut},
		{"zero quantity", PurchaseInput{EventID: active.ID, TicketTypeID: "ga", Quantity: 0, BuyerEmail: "a@b.c"}, repository.ErrInvalidInput},
		{"no email", PurchaseInput{EventID: active.ID, TicketTypeID: "ga", Quantity: 1}, repository.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Purchase(ctx, tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	got, err := repos.Events.Get(ctx, active.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.RegisteredCount)
	assert.Empty(t, repos.TicketPurchases.List(ctx))
}

func TestCancelPurchase_ReturnsSeatsOnce(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestRepos(t)
	e := mustEvent(t, repos, true)
	svc := NewTicketService(repos.Events, repos.TicketPurchases, fixedClock, nil)
	p, err := svc.Purchase(ctx, PurchaseInput{EventID: e.ID, TicketTypeID: "ga", Quantity: 3, BuyerEmail: "a@b.c"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		p, err = svc.Cancel(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, models.TicketCancelled, p.Status)
	}

	got, err := repos.Events.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.TicketTypes[0].Available)
	assert.Equal(t, 0, got.TicketTypes[0].Sold)
	assert.Equal(t, 0, got.RegisteredCount)

	_, err = svc.MarkUsed(ctx, p.ID)
	assert.ErrorIs(t, err, repository.ErrInvalidTransition)
}

func TestCancelPurchase_ConcurrentCallsReturnSeatsOnce(t *testing.T) {
	ctx := context.Background()
	repos, _ := newTestRepos(t)
	e := mustEvent(t, repos, true)
	svc := NewTicketService(repos.Events, repos.TicketPurchases, fixedClock, nil)
	p, err := svc.Purchase(ctx, PurchaseInput{EventID: e.ID, TicketTypeID: "ga", Quantity: 2, BuyerEmail: "a@b.c"})
	require.NoError(t, err)

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Cancel(ctx, p.ID)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	got, err := repos.Events.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.TicketTypes[0].Available)
	assert.Equal(t, 0, got.TicketTypes[0].Sold)
	assert.Equal(t, 0, got.RegisteredCount)
}

func TestCancelPurchase_UnknownID(t *testing.T) {
	repos, _ := newTestRepos(t)
	svc := NewTicketService(repos.Events, repos.TicketPurchases, fixedClock, nil)

	_, err := svc.Cancel(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPurchaseNotFound)
}
