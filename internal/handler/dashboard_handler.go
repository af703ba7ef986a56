package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/whitebay/backoffice/internal/dto"
	"github.com/whitebay/backoffice/internal/service"
)

type DashboardHandler struct {
	svc         service.DashboardService
	maintenance service.MaintenanceService
	now         func() time.Time
}

func NewDashboardHandler(svc service.DashboardService, maintenance service.MaintenanceService, now func() time.Time) *DashboardHandler {
	if now == nil {
		now = time.Now
	}
	return &DashboardHandler{svc: svc, maintenance: maintenance, now: now}
}

func (h *DashboardHandler) AdminStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.AdminStats(c.Request().Context(), h.now()))
}

func (h *DashboardHandler) StaffStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.StaffStats(c.Request().Context(), h.now()))
}

func (h *DashboardHandler) NewMessageCount(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.CountResponse{Count: h.svc.NewMessageCount(c.Request().Context())})
}

func (h *DashboardHandler) Sweep(c echo.Context) error {
	res, err := h.maintenance.Sweep(c.Request().Context(), h.now(), "http")
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}
