package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/whitebay/backoffice/internal/dto"
	"github.com/whitebay/backoffice/internal/remote"
)

// RemoteReader is the subset of the hosted backend client used over HTTP.
type RemoteReader interface {
	ListRooms(ctx context.Context) ([]remote.Room, error)
	ListBookingsWithGuest(ctx context.Context) ([]remote.BookingWithGuest, error)
	GetDashboardStats(ctx context.Context) (remote.DashboardStats, error)
	ListUsers(ctx context.Context) ([]remote.User, error)
}

// RemoteHandler answers 503 on every route when client is nil.
type RemoteHandler struct {
	client RemoteReader
}

func NewRemoteHandler(client RemoteReader) *RemoteHandler {
	return &RemoteHandler{client: client}
}

func (h *RemoteHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/dashboard", h.Dashboard)
	g.GET("/bookings", h.Bookings)
	g.GET("/rooms", h.Rooms)
	g.GET("/users", h.Users)
}

func (h *RemoteHandler) Dashboard(c echo.Context) error {
	if h.client == nil {
		return httpError(remote.ErrNotConfigured)
	}
	stats, err := h.client.GetDashboardStats(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *RemoteHandler) Bookings(c echo.Context) error {
	if h.client == nil {
		return httpError(remote.ErrNotConfigured)
	}
	rows, err := h.client.ListBookingsWithGuest(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.NewList(rows))
}

func (h *RemoteHandler) Rooms(c echo.Context) error {
	if h.client == nil {
		return httpError(remote.ErrNotConfigured)
	}
	rows, err := h.client.ListRooms(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.NewList(rows))
}

func (h *RemoteHandler) Users(c echo.Context) error {
	if h.client == nil {
		return httpError(remote.ErrNotConfigured)
	}
	rows, err := h.client.ListUsers(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dto.NewList(rows))
}
