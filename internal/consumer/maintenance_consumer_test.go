package consumer

import (
	"context"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whitebay/backoffice/internal/service"
)

var testNow = time.Date(2026, 5, 1, 6, 0, 0, 0, time.UTC)

// --- Mocks ---

type mockMaintenance struct {
	sweepFn func(ctx context.Context, now time.Time, trigger string) (service.SweepResult, error)
}

func (m *mockMaintenance) ReconcileRoomStatuses(ctx context.Context, now time.Time) (service.ReconcileResult, error) {
	return service.ReconcileResult{}, nil
}
func (m *mockMaintenance) RunAutoCleanup(ctx context.Context, now time.Time) (service.CleanupResult, error) {
	return service.CleanupResult{}, nil
}
func (m *mockMaintenance) Sweep(ctx context.Context, now time.Time, trigger string) (service.SweepResult, error) {
	return m.sweepFn(ctx, now, trigger)
}

type fakeDelivery struct {
	acked, nacked, requeued bool
}

func (d *fakeDelivery) Ack(bool) error { d.acked = true; return nil }
func (d *fakeDelivery) Nack(_, requeue bool) error {
	d.nacked, d.requeued = true, requeue
	return nil
}

func newConsumer(fn func(ctx context.Context, now time.Time, trigger string) (service.SweepResult, error)) *MaintenanceConsumer {
	return NewMaintenanceConsumer(&mockMaintenance{sweepFn: fn}, func() time.Time { return testNow }, nil)
}

// --- Tests ---

func TestHandle_SweepUsesClock(t *testing.T) {
	var gotAt time.Time
	var gotTrigger string
	mc := newConsumer(func(ctx context.Context, now time.Time, trigger string) (service.SweepResult, error) {
		gotAt, gotTrigger = now, trigger
		return service.SweepResult{}, nil
	})
	d := &fakeDelivery{}

	mc.Handle(context.Background(), RoutingSweep, nil, d)

	assert.True(t, d.acked)
	assert.Equal(t, testNow, gotAt)
	assert.Equal(t, "queue", gotTrigger)
}

func TestHandle_SweepAtOverride(t *testing.T) {
	var gotAt time.Time
	mc := newConsumer(func(ctx context.Context, now time.Time, trigger string) (service.SweepResult, error) {
		gotAt = now
		return service.SweepResult{}, nil
	})
	d := &fakeDelivery{}

	mc.Handle(context.Background(), RoutingSweep, []byte(`{"at":"2026-12-31T23:00:00Z"}`), d)

	assert.True(t, d.acked)
	assert.Equal(t, time.Date(2026, 12, 31, 23, 0, 0, 0, time.UTC), gotAt.UTC())
}

func TestHandle_BadBodyIsDropped(t *testing.T) {
	mc := newConsumer(func(ctx context.Context, now time.Time, trigger string) (service.SweepResult, error) {
		t.Fatal("sweep must not run")
		return service.SweepResult{}, nil
	})
	d := &fakeDelivery{}

	mc.Handle(context.Background(), RoutingSweep, []byte(`not json`), d)

	assert.True(t, d.nacked)
	assert.False(t, d.requeued)
}

func TestHandle_SweepFailureRequeues(t *testing.T) {
	mc := newConsumer(func(ctx context.Context, now time.Time, trigger string) (service.SweepResult, error) {
		return service.SweepResult{}, errors.New("store down")
	})
	d := &fakeDelivery{}

	mc.Handle(context.Background(), RoutingSweep, nil, d)

	assert.True(t, d.nacked)
	assert.True(t, d.requeued)
}

func TestHandle_OtherRoutingKeyAcked(t *testing.T) {
	mc := newConsumer(nil)
	d := &fakeDelivery{}

	mc.Handle(context.Background(), "maintenance.unknown", []byte(`{}`), d)

	assert.True(t, d.acked)
	assert.False(t, d.nacked)
}

func TestStart_StopsWhenChannelCloses(t *testing.T) {
	calls := make(chan string, 1)
	mc := newConsumer(func(ctx context.Context, now time.Time, trigger string) (service.SweepResult, error) {
		calls <- trigger
		return service.SweepResult{}, nil
	})
	msgs := make(chan amqp.Delivery, 1)

	mc.Start(context.Background(), msgs)
	msgs <- amqp.Delivery{RoutingKey: RoutingSweep}
	close(msgs)

	select {
	case trig := <-calls:
		require.Equal(t, "queue", trig)
	case <-time.After(2 * time.Second):
		t.Fatal("sweep was not triggered")
	}
}
