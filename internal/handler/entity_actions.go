package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/whitebay/backoffice/internal/dto"
	"github.com/whitebay/backoffice/internal/models"
	"github.com/whitebay/backoffice/internal/repository"
)

// RoomStatusHandler serves manual room status changes, e.g. taking a room
// into maintenance.
func RoomStatusHandler(rooms repository.RoomRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.StatusRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		status := models.RoomStatus(req.Status)
		if !status.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown room status")
		}
		room, err := rooms.SetStatus(c.Request().Context(), c.Param("id"), status)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, room)
	}
}

func RedeemPromotionHandler(promotions repository.PromotionRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := promotions.RecordUsage(c.Request().Context(), c.Param("id"))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, p)
	}
}

func PromotionByCodeHandler(promotions repository.PromotionRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := promotions.FindByCode(c.Request().Context(), c.Param("code"))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, p)
	}
}

func GuestVIPHandler(guests repository.GuestRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.VIPRequest
		if err := c.Bind(&req); err != nil || req.IsVIP == nil {
			return echo.NewHTTPError(http.StatusBadRequest, "isVip is required")
		}
		g, err := guests.SetVIP(c.Request().Context(), c.Param("id"), *req.IsVIP)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, g)
	}
}

// RoomBookingsHandler lists every booking held against one room.
func RoomBookingsHandler(rooms repository.RoomRepository, bookings repository.RoomBookingRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		room, err := rooms.Get(ctx, c.Param("id"))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, dto.NewList(bookings.ListByRoom(ctx, room.ID)))
	}
}

func StaffByEmailHandler(staff repository.StaffRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		m, err := staff.FindByEmail(c.Request().Context(), c.Param("email"))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(http.StatusOK, m)
	}
}
