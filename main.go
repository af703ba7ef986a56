package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/whitebay/backoffice/config"
	"github.com/whitebay/backoffice/internal/consumer"
	"github.com/whitebay/backoffice/internal/handler"
	"github.com/whitebay/backoffice/internal/middleware"
	"github.com/whitebay/backoffice/internal/remote"
	"github.com/whitebay/backoffice/internal/repository"
	"github.com/whitebay/backoffice/internal/service"
	"github.com/whitebay/backoffice/internal/store"
	"github.com/whitebay/backoffice/pkg/database"
	"github.com/whitebay/backoffice/pkg/rabbitmq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("service stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, closeBackend, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeBackend()
	st := store.New(backend, log)

	deps := repository.Deps{Store: st, Logger: log, Clock: time.Now}

	// RabbitMQ is optional: change events and queued sweeps are off without it.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL, log)
		if err != nil {
			return fmt.Errorf("connect to RabbitMQ: %w", err)
		}
		defer publisher.Close()
		deps.Notifier = publisher
	}

	repos := repository.New(deps)
	bookingSvc := service.NewBookingService(repos.Rooms, repos.RoomBookings, time.Now)
	ticketSvc := service.NewTicketService(repos.Events, repos.TicketPurchases, time.Now, log)
	dashboardSvc := service.NewDashboardService(repos)
	maintenanceSvc := service.NewMaintenanceService(repos, log)

	if cfg.SweepOnStart {
		if _, err := maintenanceSvc.Sweep(ctx, time.Now(), "startup"); err != nil {
			log.Warn("startup sweep failed", "err", err)
		}
	}

	if cfg.RabbitURL != "" {
		mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL, log)
		if err != nil {
			return fmt.Errorf("connect to RabbitMQ: %w", err)
		}
		defer mqConsumer.Close()

		msgs, err := mqConsumer.Consume()
		if err != nil {
			return fmt.Errorf("start consuming: %w", err)
		}
		consumer.NewMaintenanceConsumer(maintenanceSvc, time.Now, log).Start(ctx, msgs)
	}

	var remoteReader handler.RemoteReader
	if cfg.RemoteConfigured() {
		client, err := remote.New(cfg.RemoteURL, cfg.RemoteAnonKey)
		if err != nil {
			return err
		}
		remoteReader = client
	} else {
		log.Info("remote backend not configured; remote routes will answer 503")
	}

	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET is empty; dashboard routes are unauthenticated")
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler(log)
	e.Use(echoMw.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORS())

	handler.Register(e, handler.Deps{
		Repos:       repos,
		Bookings:    bookingSvc,
		Tickets:     ticketSvc,
		Dashboard:   dashboardSvc,
		Maintenance: maintenanceSvc,
		Remote:      remoteReader,
		Store:       st,
		Backend:     cfg.StoreBackend,
		JWTSecret:   cfg.JWTSecret,
		Now:         time.Now,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info("WhiteBay back-office starting", "port", cfg.ServerPort, "store", cfg.StoreBackend)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// openBackend connects the configured key-value backend. The returned func
// releases its connections.
func openBackend(ctx context.Context, cfg config.Config) (store.Backend, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := database.NewPostgresDB(cfg.DSN())
		if err != nil {
			return nil, nil, err
		}
		return store.NewGormBackend(db), func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}, nil
	case config.BackendRedis:
		client, err := database.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return store.NewRedisBackend(client, cfg.RedisPrefix), func() { client.Close() }, nil
	case config.BackendMongo:
		client, coll, err := database.NewMongoCollection(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}
		return store.NewMongoBackend(coll), func() { client.Disconnect(context.Background()) }, nil
	default:
		return store.NewMemoryBackend(), func() {}, nil
	}
}
