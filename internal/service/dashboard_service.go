package service

import (
	"context"
	"time"

	"github.com/whitebay/backoffice/internal/models"
	"github.com/whitebay/backoffice/internal/repository"
)

type AdminStats struct {
	Rooms          RoomStats      `json:"rooms"`
	Bookings       BookingStats   `json:"bookings"`
	Guests         GuestStats     `json:"guests"`
	ActiveStaff    int            `json:"activeStaff"`
	Promotions     PromotionStats `json:"promotions"`
	Announcements  int            `json:"activeAnnouncements"`
	Messages       map[string]int `json:"messages"`
	NewMessages    int            `json:"newMessages"`
	UpcomingEvents int            `json:"upcomingEvents"`
	Tickets        TicketStats    `json:"tickets"`
	GeneratedAt    time.Time      `json:"generatedAt"`
}

type RoomStats struct {
	Total    int            `json:"total"`
	Active   int            `json:"active"`
	ByStatus map[string]int `json:"byStatus"`
}

type BookingStats struct {
	Total          int            `json:"total"`
	ByStatus       map[string]int `json:"byStatus"`
	Revenue        float64        `json:"revenue"`
	TodayCheckIns  int            `json:"todayCheckIns"`
	TodayCheckOuts int            `json:"todayCheckOuts"`
}

type GuestStats struct {
	Total int `json:"total"`
	VIP   int `json:"vip"`
}

type PromotionStats struct {
	Active     int `json:"active"`
	Expired    int `json:"expired"`
	TotalUsage int `json:"totalUsage"`
}

type TicketStats struct {
	Purchases int     `json:"purchases"`
	Sold      int     `json:"sold"`
	Revenue   float64 `json:"revenue"`
}

type StaffStats struct {
	TodayArrivals       int `json:"todayArrivals"`
	TodayDepartures     int `json:"todayDepartures"`
	OccupiedRooms       int `json:"occupiedRooms"`
	MaintenanceRooms    int `json:"maintenanceRooms"`
	ActiveAnnouncements int `json:"activeAnnouncements"`
	NewMessages         int `json:"newMessages"`
}

// DashboardService computes aggregate views. Nothing is cached; each call
// reads the current collections.
type DashboardService interface {
	AdminStats(ctx context.Context, now time.Time) AdminStats
	StaffStats(ctx context.Context, now time.Time) StaffStats
	NewMessageCount(ctx context.Context) int
}

type dashboardService struct {
	repos *repository.Repositories
}

func NewDashboardService(repos *repository.Repositories) DashboardService {
	return &dashboardService{repos: repos}
}

func (s *dashboardService) AdminStats(ctx context.Context, now time.Time) AdminStats {
	out := AdminStats{
		Rooms:       RoomStats{ByStatus: map[string]int{}},
		Bookings:    BookingStats{ByStatus: map[string]int{}},
		Messages:    map[string]int{},
		GeneratedAt: now,
	}

	for _, r := range s.repos.Rooms.List(ctx) {
		out.Rooms.Total++
		out.Rooms.ByStatus[string(r.Status)]++
		if r.IsActive {
			out.Rooms.Active++
		}
	}

	for _, b := range s.repos.RoomBookings.List(ctx) {
		out.Bookings.Total++
		out.Bookings.ByStatus[string(b.Status)]++
		if b.Status != models.BookingCancelled {
			out.Bookings.Revenue += b.PaidAmount
		}
		if !b.Status.Active() {
			continue
		}
		if sameDay(b.CheckIn, now) {
			out.Bookings.TodayCheckIns++
		}
		if sameDay(b.CheckOut, now) {
			out.Bookings.TodayCheckOuts++
		}
	}

	for _, g := range s.repos.Guests.List(ctx) {
		out.Guests.Total++
		if g.IsVIP {
			out.Guests.VIP++
		}
	}

	for _, m := range s.repos.Staff.List(ctx) {
		if m.IsActive {
			out.ActiveStaff++
		}
	}

	for _, p := range s.repos.Promotions.List(ctx) {
		out.Promotions.TotalUsage += p.UsageCount
		switch {
		case p.IsExpired(now):
			out.Promotions.Expired++
		case p.IsActive:
			out.Promotions.Active++
		}
	}

	for _, a := range s.repos.Announcements.List(ctx) {
		if a.IsActive {
			out.Announcements++
		}
	}

	for _, m := range s.repos.Messages.List(ctx) {
		out.Messages[string(m.Status)]++
		if m.Status == models.MessageNew {
			out.NewMessages++
		}
	}

	for _, e := range s.repos.Events.List(ctx) {
		if !e.IsActive {
			continue
		}
		if at, ok := e.StartsAt(now.Location()); ok && !at.Before(startOfDay(now)) {
			out.UpcomingEvents++
		}
	}

	for _, t := range s.repos.TicketPurchases.List(ctx) {
		out.Tickets.Purchases++
		if t.Status == models.TicketConfirmed || t.Status == models.TicketUsed {
			out.Tickets.Sold += t.Quantity
			out.Tickets.Revenue += t.TotalPrice
		}
	}

	return out
}

func (s *dashboardService) StaffStats(ctx context.Context, now time.Time) StaffStats {
	var out StaffStats
	for _, b := range s.repos.RoomBookings.List(ctx) {
		if !b.Status.Active() {
			continue
		}
		if sameDay(b.CheckIn, now) {
			out.TodayArrivals++
		}
		if sameDay(b.CheckOut, now) {
			out.TodayDepartures++
		}
	}
	for _, r := range s.repos.Rooms.List(ctx) {
		switch r.Status {
		case models.RoomOccupied:
			out.OccupiedRooms++
		case models.RoomMaintenance:
			out.MaintenanceRooms++
		}
	}
	for _, a := range s.repos.Announcements.List(ctx) {
		if a.IsActive && (a.TargetAudience == models.AudienceStaff || a.TargetAudience == models.AudienceAll) {
			out.ActiveAnnouncements++
		}
	}
	out.NewMessages = s.NewMessageCount(ctx)
	return out
}

// NewMessageCount is the unread badge: messages still in status new.
func (s *dashboardService) NewMessageCount(ctx context.Context) int {
	n := 0
	for _, m := range s.repos.Messages.List(ctx) {
		if m.Status == models.MessageNew {
			n++
		}
	}
	return n
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, now time.Time) bool {
	a = a.In(now.Location())
	ay, am, ad := a.Date()
	ny, nm, nd := now.Date()
	return ay == ny && am == nm && ad == nd
}
