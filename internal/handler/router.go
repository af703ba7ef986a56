package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/whitebay/backoffice/internal/middleware"
	"github.com/whitebay/backoffice/internal/models"
	"github.com/whitebay/backoffice/internal/repository"
	"github.com/whitebay/backoffice/internal/service"
)

type Deps struct {
	Repos       *repository.Repositories
	Bookings    service.BookingService
	Tickets     service.TicketService
	Dashboard   service.DashboardService
	Maintenance service.MaintenanceService
	Remote      RemoteReader
	Store       Pinger
	Backend     string
	JWTSecret   string
	Now         func() time.Time
}

// Register mounts health, metrics and the admin and staff API groups.
func Register(e *echo.Echo, d Deps) {
	health := NewHealthHandler(d.Store, d.Backend)
	e.GET("/health", health.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	r := d.Repos
	bookings := NewBookingHandler(d.Bookings, r.RoomBookings)
	tickets := NewTicketHandler(d.Tickets, r.TicketPurchases)
	messages := NewMessageHandler(r.Messages, d.Now)
	dashboard := NewDashboardHandler(d.Dashboard, d.Maintenance, d.Now)

	events := NewCollectionHandler[models.Event, models.EventPatch](r.Events)
	purchases := NewCollectionHandler[models.TicketPurchase, models.TicketPurchasePatch](r.TicketPurchases)
	guests := NewCollectionHandler[models.Guest, models.GuestPatch](r.Guests)
	announcements := NewCollectionHandler[models.Announcement, models.AnnouncementPatch](r.Announcements)
	staff := NewCollectionHandler[models.StaffMember, models.StaffPatch](r.Staff)
	msgs := NewCollectionHandler[models.Message, models.MessagePatch](r.Messages)
	promotions := NewCollectionHandler[models.Promotion, models.PromotionPatch](r.Promotions)
	rooms := NewCollectionHandler[models.Room, models.RoomPatch](r.Rooms)
	roomBookings := NewCollectionHandler[models.RoomBooking, models.RoomBookingPatch](r.RoomBookings)

	admin := e.Group("/api/v1/admin",
		middleware.Auth(d.JWTSecret),
		middleware.RequireRole(models.RoleAdmin, models.RoleManager),
	)
	{
		g := admin.Group("/events")
		events.RegisterRoutes(g, nil)
		g.POST("/:id/active", SetActiveHandler[models.Event](r.Events))
	}
	{
		g := admin.Group("/ticket-purchases")
		tickets.RegisterActions(g)
		purchases.RegisterRoutes(g, tickets.Purchase)
	}
	{
		g := admin.Group("/guests")
		guests.RegisterRoutes(g, nil)
		g.POST("/:id/vip", GuestVIPHandler(r.Guests))
	}
	{
		g := admin.Group("/announcements")
		announcements.RegisterRoutes(g, nil)
		g.POST("/:id/active", SetActiveHandler[models.Announcement](r.Announcements))
	}
	{
		g := admin.Group("/staff")
		g.GET("/email/:email", StaffByEmailHandler(r.Staff))
		staff.RegisterRoutes(g, nil)
		g.POST("/:id/active", SetActiveHandler[models.StaffMember](r.Staff))
	}
	{
		g := admin.Group("/messages")
		g.GET("/new-count", dashboard.NewMessageCount)
		msgs.RegisterRoutes(g, nil)
		messages.RegisterActions(g)
	}
	{
		g := admin.Group("/promotions")
		g.GET("/code/:code", PromotionByCodeHandler(r.Promotions))
		promotions.RegisterRoutes(g, nil)
		g.POST("/:id/active", SetActiveHandler[models.Promotion](r.Promotions))
		g.POST("/:id/redeem", RedeemPromotionHandler(r.Promotions))
	}
	{
		g := admin.Group("/rooms")
		rooms.RegisterRoutes(g, nil)
		g.POST("/:id/active", SetActiveHandler[models.Room](r.Rooms))
		g.POST("/:id/status", RoomStatusHandler(r.Rooms))
		g.GET("/:id/bookings", RoomBookingsHandler(r.Rooms, r.RoomBookings))
	}
	{
		g := admin.Group("/room-bookings")
		bookings.RegisterActions(g)
		roomBookings.RegisterRoutes(g, bookings.CreateBooking)
	}
	admin.GET("/dashboard", dashboard.AdminStats)
	admin.POST("/maintenance/sweep", dashboard.Sweep)
	NewRemoteHandler(d.Remote).RegisterRoutes(admin.Group("/remote"))

	staffAPI := e.Group("/api/v1/staff",
		middleware.Auth(d.JWTSecret),
		middleware.RequireRole(models.RoleStaff, models.RoleManager, models.RoleAdmin),
	)
	{
		g := staffAPI.Group("/rooms")
		rooms.RegisterRead(g)
		g.GET("/:id/bookings", RoomBookingsHandler(r.Rooms, r.RoomBookings))
	}
	{
		g := staffAPI.Group("/room-bookings")
		roomBookings.RegisterRead(g)
		g.GET("/code/:code", bookings.GetByCode)
		g.POST("/:id/status", bookings.ChangeStatus)
	}
	{
		g := staffAPI.Group("/guests")
		guests.RegisterRead(g)
		g.POST("", guests.Create)
		g.PATCH("/:id", guests.Update)
	}
	announcements.RegisterRead(staffAPI.Group("/announcements"))
	{
		g := staffAPI.Group("/messages")
		g.GET("/new-count", dashboard.NewMessageCount)
		msgs.RegisterRead(g)
		messages.RegisterActions(g)
	}
	staffAPI.GET("/dashboard", dashboard.StaffStats)
}
