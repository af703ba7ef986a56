package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/whitebay/backoffice/internal/remote"
	"github.com/whitebay/backoffice/internal/repository"
	"github.com/whitebay/backoffice/internal/service"
)

// httpError translates domain errors into echo HTTP errors.
func httpError(err error) error {
	var apiErr *remote.APIError
	switch {
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, service.ErrRoomNotFound),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, service.ErrTicketTypeNotFound),
		errors.Is(err, service.ErrPurchaseNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrInvalidInput),
		errors.Is(err, repository.ErrInvalidTransition),
		errors.Is(err, service.ErrCapacityExceeded):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrConflict),
		errors.Is(err, repository.ErrPromotionExhausted),
		errors.Is(err, repository.ErrInactive),
		errors.Is(err, repository.ErrAlreadyCancelled),
		errors.Is(err, service.ErrRoomUnavailable),
		errors.Is(err, service.ErrEventInactive),
		errors.Is(err, service.ErrSoldOut):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, remote.ErrNotConfigured):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &apiErr):
		return echo.NewHTTPError(http.StatusBadGateway, apiErr.Error()).SetInternal(err)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error").SetInternal(err)
	}
}
