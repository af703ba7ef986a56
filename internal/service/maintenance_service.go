package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/whitebay/backoffice/internal/metrics"
	"github.com/whitebay/backoffice/internal/models"
	"github.com/whitebay/backoffice/internal/repository"
)

type ReconcileResult struct {
	Checked   int `json:"checked"`
	Changed   int `json:"changed"`
	Occupied  int `json:"occupied"`
	Reserved  int `json:"reserved"`
	Available int `json:"available"`
}

type CleanupResult struct {
	PromotionsDeactivated    int `json:"promotionsDeactivated"`
	AnnouncementsDeactivated int `json:"announcementsDeactivated"`
}

type SweepResult struct {
	Cleanup   CleanupResult   `json:"cleanup"`
	Reconcile ReconcileResult `json:"reconcile"`
}

type MaintenanceService interface {
	ReconcileRoomStatuses(ctx context.Context, now time.Time) (ReconcileResult, error)
	RunAutoCleanup(ctx context.Context, now time.Time) (CleanupResult, error)
	Sweep(ctx context.Context, now time.Time, trigger string) (SweepResult, error)
}

type maintenanceService struct {
	rooms         repository.RoomRepository
	bookings      repository.RoomBookingRepository
	promotions    repository.PromotionRepository
	announcements repository.AnnouncementRepository
	log           *slog.Logger
}

func NewMaintenanceService(repos *repository.Repositories, log *slog.Logger) MaintenanceService {
	if log == nil {
		log = slog.Default()
	}
	return &maintenanceService{
		rooms:         repos.Rooms,
		bookings:      repos.RoomBookings,
		promotions:    repos.Promotions,
		announcements: repos.Announcements,
		log:           log.With("component", "maintenance"),
	}
}

// ReconcileRoomStatuses derives each room's status from its active bookings.
// Rooms in maintenance are left alone and not counted as checked. The room
// collection is written once, and only when at least one status changed.
func (s *maintenanceService) ReconcileRoomStatuses(ctx context.Context, now time.Time) (ReconcileResult, error) {
	byRoom := make(map[string][]models.RoomBooking)
	for _, b := range s.bookings.List(ctx) {
		if b.Status.Active() {
			byRoom[b.RoomID] = append(byRoom[b.RoomID], b)
		}
	}

	var res ReconcileResult
	err := s.rooms.Batch(ctx, func(rooms []models.Room) ([]models.Room, bool) {
		for i := range rooms {
			if rooms[i].Status == models.RoomMaintenance {
				continue
			}
			res.Checked++
			next := statusFromBookings(byRoom[rooms[i].ID], now)
			switch next {
			case models.RoomOccupied:
				res.Occupied++
			case models.RoomReserved:
				res.Reserved++
			default:
				res.Available++
			}
			if rooms[i].Status != next {
				rooms[i].Status = next
				rooms[i].Touch(now)
				res.Changed++
			}
		}
		return rooms, res.Changed > 0
	})
	if err != nil {
		return res, fmt.Errorf("save rooms: %w", err)
	}
	return res, nil
}

func statusFromBookings(bookings []models.RoomBooking, now time.Time) models.RoomStatus {
	upcoming := false
	for _, b := range bookings {
		if b.Covers(now) {
			return models.RoomOccupied
		}
		if b.CheckIn.After(now) {
			upcoming = true
		}
	}
	if upcoming {
		return models.RoomReserved
	}
	return models.RoomAvailable
}

// RunAutoCleanup deactivates promotions past validUntil and announcements past
// endDate. Nothing else on the record changes.
func (s *maintenanceService) RunAutoCleanup(ctx context.Context, now time.Time) (CleanupResult, error) {
	var res CleanupResult

	err := s.promotions.Batch(ctx, func(items []models.Promotion) ([]models.Promotion, bool) {
		for i := range items {
			if items[i].IsActive && items[i].IsExpired(now) {
				items[i].IsActive = false
				res.PromotionsDeactivated++
			}
		}
		return items, res.PromotionsDeactivated > 0
	})
	if err != nil {
		return res, fmt.Errorf("save promotions: %w", err)
	}

	err = s.announcements.Batch(ctx, func(items []models.Announcement) ([]models.Announcement, bool) {
		for i := range items {
			if items[i].IsActive && items[i].IsExpired(now) {
				items[i].IsActive = false
				res.AnnouncementsDeactivated++
			}
		}
		return items, res.AnnouncementsDeactivated > 0
	})
	if err != nil {
		return res, fmt.Errorf("save announcements: %w", err)
	}
	return res, nil
}

// Sweep runs cleanup then reconciliation.
func (s *maintenanceService) Sweep(ctx context.Context, now time.Time, trigger string) (SweepResult, error) {
	var out SweepResult
	var err error

	out.Cleanup, err = s.RunAutoCleanup(ctx, now)
	if err != nil {
		metrics.SweepRuns.WithLabelValues(trigger, "error").Inc()
		return out, err
	}
	out.Reconcile, err = s.ReconcileRoomStatuses(ctx, now)
	if err != nil {
		metrics.SweepRuns.WithLabelValues(trigger, "error").Inc()
		return out, err
	}

	metrics.SweepRuns.WithLabelValues(trigger, "ok").Inc()
	metrics.SweepChanges.WithLabelValues("promotions").Add(float64(out.Cleanup.PromotionsDeactivated))
	metrics.SweepChanges.WithLabelValues("announcements").Add(float64(out.Cleanup.AnnouncementsDeactivated))
	metrics.SweepChanges.WithLabelValues("rooms").Add(float64(out.Reconcile.Changed))

	s.log.Info("maintenance sweep finished",
		"trigger", trigger,
		"promotions_deactivated", out.Cleanup.PromotionsDeactivated,
		"announcements_deactivated", out.Cleanup.AnnouncementsDeactivated,
		"rooms_changed", out.Reconcile.Changed,
	)
	return out, nil
}
