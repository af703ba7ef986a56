package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whitebay/backoffice/internal/models"
)

func TestRoomStatusHandler(t *testing.T) {
	repos := newTestRepos(t)
	room, err := repos.Rooms.Create(context.Background(), models.Room{RoomNumber: "301", IsActive: true})
	require.NoError(t, err)
	h := RoomStatusHandler(repos.Rooms)

	c, _ := newContext(http.MethodPost, "/", `{"status":"occupied"}`, "id", room.ID)
	assertHTTPError(t, h(c), http.StatusBadRequest)

	c, rec := newContext(http.MethodPost, "/", `{"status":"maintenance"}`, "id", room.ID)
	require.NoError(t, h(c))
	assert.Contains(t, rec.Body.String(), `"status":"maintenance"`)
}

func TestRedeemPromotionHandler_Cap(t *testing.T) {
	repos := newTestRepos(t)
	limit := 1
	p, err := repos.Promotions.Create(context.Background(), models.Promotion{
		Name: "Songkran", Code: "water26", IsActive: true, MaxUsage: &limit, ValidUntil: testNow.Add(30 * 24 * time.Hour),
	})
	require.NoError(t, err)
	h := RedeemPromotionHandler(repos.Promotions)

	c, _ := newContext(http.MethodPost, "/", "", "id", p.ID)
	require.NoError(t, h(c))

	c, _ = newContext(http.MethodPost, "/", "", "id", p.ID)
	assertHTTPError(t, h(c), http.StatusConflict)

	c, rec := newContext(http.MethodGet, "/", "", "code", "Water26")
	require.NoError(t, PromotionByCodeHandler(repos.Promotions)(c))
	assert.Contains(t, rec.Body.String(), `"usageCount":1`)
}

func TestGuestVIPHandler(t *testing.T) {
	repos := newTestRepos(t)
	g, err := repos.Guests.Create(context.Background(), models.Guest{Name: "Bo"})
	require.NoError(t, err)
	h := GuestVIPHandler(repos.Guests)

	c, _ := newContext(http.MethodPost, "/", `{}`, "id", g.ID)
	assertHTTPError(t, h(c), http.StatusBadRequest)

	c, rec := newContext(http.MethodPost, "/", `{"isVip":true}`, "id", g.ID)
	require.NoError(t, h(c))
	assert.Contains(t, rec.Body.String(), `"isVip":true`)
}

func TestRoomBookingsHandler(t *testing.T) {
	repos := newTestRepos(t)
	room, err := repos.Rooms.Create(context.Background(), models.Room{RoomNumber: "401", IsActive: true})
	require.NoError(t, err)
	other, err := repos.Rooms.Create(context.Background(), models.Room{RoomNumber: "402", IsActive: true})
	require.NoError(t, err)
	for _, roomID := range []string{room.ID, other.ID} {
		_, err := repos.RoomBookings.Create(context.Background(), models.RoomBooking{
			RoomID: roomID, GuestName: "Ann", CheckIn: testNow, CheckOut: testNow.AddDate(0, 0, 2),
		})
		require.NoError(t, err)
	}
	h := RoomBookingsHandler(repos.Rooms, repos.RoomBookings)

	c, rec := newContext(http.MethodGet, "/", "", "id", room.ID)
	require.NoError(t, h(c))
	assert.Contains(t, rec.Body.String(), `"total":1`)
	assert.Contains(t, rec.Body.String(), `"roomId":"`+room.ID+`"`)

	c, _ = newContext(http.MethodGet, "/", "", "id", "missing")
	assertHTTPError(t, h(c), http.StatusNotFound)
}

func TestStaffByEmailHandler(t *testing.T) {
	repos := newTestRepos(t)
	_, err := repos.Staff.Create(context.Background(), models.StaffMember{Name: "Nok", Email: "nok@whitebay.test", IsActive: true})
	require.NoError(t, err)
	h := StaffByEmailHandler(repos.Staff)

	c, rec := newContext(http.MethodGet, "/", "", "email", "NOK@whitebay.test")
	require.NoError(t, h(c))
	assert.Contains(t, rec.Body.String(), `"name":"Nok"`)

	c, _ = newContext(http.MethodGet, "/", "", "email", "nobody@whitebay.test")
	assertHTTPError(t, h(c), http.StatusNotFound)
}
