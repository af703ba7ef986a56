package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/whitebay/backoffice/internal/dto"
	"github.com/whitebay/backoffice/internal/models"
	"github.com/whitebay/backoffice/internal/repository"
	"github.com/whitebay/backoffice/internal/service"
)

type BookingHandler struct {
	svc      service.BookingService
	bookings repository.RoomBookingRepository
}

func NewBookingHandler(svc service.BookingService, bookings repository.RoomBookingRepository) *BookingHandler {
	return &BookingHandler{svc: svc, bookings: bookings}
}

// RegisterActions mounts the booking lifecycle routes on a room-bookings group.
func (h *BookingHandler) RegisterActions(g *echo.Group) {
	g.GET("/code/:code", h.GetByCode)
	g.POST("/:id/cancel", h.CancelBooking)
	g.POST("/:id/status", h.ChangeStatus)
	g.POST("/:id/payments", h.RecordPayment)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.RoomID == "" || strings.TrimSpace(req.GuestName) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "roomId and guestName are required")
	}
	if !req.CheckOut.After(req.CheckIn) {
		return echo.NewHTTPError(http.StatusBadRequest, "checkOut must be after checkIn")
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), service.CreateBookingInput{
		RoomID:          req.RoomID,
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Guests:          req.Guests,
		TotalAmount:     req.TotalAmount,
		PaidAmount:      req.PaidAmount,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) GetByCode(c echo.Context) error {
	booking, err := h.bookings.FindByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) CancelBooking(c echo.Context) error {
	var req dto.CancelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	booking, err := h.svc.CancelBooking(c.Request().Context(), c.Param("id"), req.Reason)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) ChangeStatus(c echo.Context) error {
	var req dto.StatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	status := models.BookingStatus(req.Status)
	if !status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown booking status")
	}
	booking, err := h.svc.ChangeStatus(c.Request().Context(), c.Param("id"), status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *BookingHandler) RecordPayment(c echo.Context) error {
	var req dto.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Amount <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "amount must be positive")
	}
	booking, err := h.svc.RecordPayment(c.Request().Context(), c.Param("id"), req.Amount)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, booking)
}
