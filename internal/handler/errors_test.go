package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/whitebay/backoffice/internal/remote"
	"github.com/whitebay/backoffice/internal/repository"
	"github.com/whitebay/backoffice/internal/service"
)

func TestHTTPError_Mapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{repository.ErrNotFound, http.StatusNotFound},
		{service.ErrPurchaseNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: name is required", repository.ErrInvalidInput), http.StatusBadRequest},
		{repository.ErrInvalidTransition, http.StatusBadRequest},
		{service.ErrCapacityExceeded, http.StatusBadRequest},
		{fmt.Errorf("create booking: %w", repository.ErrConflict), http.StatusConflict},
		{repository.ErrPromotionExhausted, http.StatusConflict},
		{service.ErrSoldOut, http.StatusConflict},
		{service.ErrRoomUnavailable, http.StatusConflict},
		{remote.ErrNotConfigured, http.StatusServiceUnavailable},
		{&remote.APIError{StatusCode: 401, Message: "bad key"}, http.StatusBadGateway},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assertHTTPError(t, httpError(tc.err), tc.code)
		})
	}
}
