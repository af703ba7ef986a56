package consumer

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/whitebay/backoffice/internal/service"
)

const RoutingSweep = "maintenance.sweep"

// Delivery is the part of amqp.Delivery the consumer acts on.
type Delivery interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

type sweepCommand struct {
	// At overrides the sweep clock; zero means now.
	At time.Time `json:"at"`
}

type MaintenanceConsumer struct {
	svc service.MaintenanceService
	now func() time.Time
	log *slog.Logger
}

func NewMaintenanceConsumer(svc service.MaintenanceService, now func() time.Time, log *slog.Logger) *MaintenanceConsumer {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = slog.Default()
	}
	return &MaintenanceConsumer{svc: svc, now: now, log: log.With("component", "maintenance-consumer")}
}

// Start handles deliveries until msgs is closed or ctx is cancelled.
func (mc *MaintenanceConsumer) Start(ctx context.Context, msgs <-chan amqp.Delivery) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					mc.log.Info("channel closed, stopping consumer")
					return
				}
				mc.Handle(ctx, msg.RoutingKey, msg.Body, &msg)
			}
		}
	}()
}

// Handle runs a sweep for maintenance.sweep and acks anything else unchanged.
func (mc *MaintenanceConsumer) Handle(ctx context.Context, routingKey string, body []byte, d Delivery) {
	if routingKey != RoutingSweep {
		mc.log.Debug("ignoring message", "routing_key", routingKey)
		_ = d.Ack(false)
		return
	}

	var cmd sweepCommand
	if len(body) > 0 {
		if err := json.Unmarshal(body, &cmd); err != nil {
			mc.log.Warn("failed to unmarshal sweep command", "err", err)
			_ = d.Nack(false, false)
			return
		}
	}
	at := cmd.At
	if at.IsZero() {
		at = mc.now()
	}

	if _, err := mc.svc.Sweep(ctx, at, "queue"); err != nil {
		mc.log.Error("sweep failed", "err", err)
		_ = d.Nack(false, true)
		return
	}
	_ = d.Ack(false)
}
