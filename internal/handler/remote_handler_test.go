package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whitebay/backoffice/internal/remote"
)

type mockRemoteReader struct {
	roomsFn    func(ctx context.Context) ([]remote.Room, error)
	bookingsFn func(ctx context.Context) ([]remote.BookingWithGuest, error)
	statsFn    func(ctx context.Context) (remote.DashboardStats, error)
	usersFn    func(ctx context.Context) ([]remote.User, error)
}

func (m *mockRemoteReader) ListRooms(ctx context.Context) ([]remote.Room, error) {
	return m.roomsFn(ctx)
}
func (m *mockRemoteReader) ListBookingsWithGuest(ctx context.Context) ([]remote.BookingWithGuest, error) {
	return m.bookingsFn(ctx)
}
func (m *mockRemoteReader) GetDashboardStats(ctx context.Context) (remote.DashboardStats, error) {
	return m.statsFn(ctx)
}
func (m *mockRemoteReader) ListUsers(ctx context.Context) ([]remote.User, error) {
	return m.usersFn(ctx)
}

func TestRemoteHandler_NotConfigured(t *testing.T) {
	h := NewRemoteHandler(nil)
	for _, fn := range []echo.HandlerFunc{h.Dashboard, h.Bookings, h.Rooms, h.Users} {
		c, _ := newContext(http.MethodGet, "/", "")
		assertHTTPError(t, fn(c), http.StatusServiceUnavailable)
	}
}

func TestRemoteHandler_Dashboard(t *testing.T) {
	h := NewRemoteHandler(&mockRemoteReader{
		statsFn: func(ctx context.Context) (remote.DashboardStats, error) {
			return remote.DashboardStats{TotalBookings: 3, TotalRevenue: 900}, nil
		},
	})

	c, rec := newContext(http.MethodGet, "/", "")
	require.NoError(t, h.Dashboard(c))
	assert.JSONEq(t, `{"totalBookings":3,"pendingBookings":0,"confirmedBookings":0,"totalRevenue":900}`, rec.Body.String())
}

func TestRemoteHandler_UpstreamError(t *testing.T) {
	h := NewRemoteHandler(&mockRemoteReader{
		roomsFn: func(ctx context.Context) ([]remote.Room, error) {
			return nil, &remote.APIError{StatusCode: 401, Message: "Invalid API key"}
		},
	})

	c, _ := newContext(http.MethodGet, "/", "")
	assertHTTPError(t, h.Rooms(c), http.StatusBadGateway)
}

func TestRemoteHandler_Users(t *testing.T) {
	h := NewRemoteHandler(&mockRemoteReader{
		usersFn: func(ctx context.Context) ([]remote.User, error) {
			return []remote.User{{ID: "u1", Email: "nok@whitebay.test", Role: "staff"}}, nil
		},
	})

	c, rec := newContext(http.MethodGet, "/", "")
	require.NoError(t, h.Users(c))
	assert.Contains(t, rec.Body.String(), `"email":"nok@whitebay.test"`)
	assert.Contains(t, rec.Body.String(), `"total":1`)
}
