package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/meeting-room-reservation/internal/middleware"
	"github.com/iliyamo/meeting-room-reservation/internal/model"
	"github.com/iliyamo/meeting-room-reservation/internal/repository"
	"github.com/iliyamo/meeting-room-reservation/internal/service"
)

// testEnv holds a fully wired handler over in-memory storage.
type testEnv struct {
	e       *echo.Echo
	handler *ReservationHandler
	roomID  string
	userID  string
	adminID string
	base    time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	rooms := repository.NewInMemoryRoomRepo()
	users := repository.NewInMemoryUserRepo()
	reservations := repository.NewInMemoryReservationRepo()

	room, err := model.NewRoom("Boardroom A", 12)
	require.NoError(t, err)
	require.NoError(t, rooms.Save(ctx, room))

	user, err := model.NewUser("Ada Lovelace", "ada@example.com", "hash", model.RoleUser)
	require.NoError(t, err)
	require.NoError(t, users.Save(ctx, user))

	admin, err := model.NewUser("Grace Hopper", "grace@example.com", "hash", model.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, users.Save(ctx, admin))

	svc := service.NewReservationService(reservations, rooms, users)
	return &testEnv{
		e:       echo.New(),
		handler: NewReservationHandler(svc, false),
		roomID:  room.ID,
		userID:  user.ID,
		adminID: admin.ID,
		base:    time.Now().UTC().Add(24 * time.Hour).Truncate(time.Hour),
	}
}

func (env *testEnv) at(h int) string {
	return env.base.Add(time.Duration(h) * time.Hour).Format(time.RFC3339)
}

// request builds an echo context carrying the identity claims that
// JWTAuth would normally inject.
func (env *testEnv) request(method, target, body, userID, role string) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	c.Set(middleware.CtxUserID, userID)
	c.Set(middleware.CtxRole, role)
	return c, rec
}

func (env *testEnv) createBody(startH, endH int) string {
	return fmt.Sprintf(`{"room_id":%q,"start":%q,"end":%q}`, env.roomID, env.at(startH), env.at(endH))
}

func (env *testEnv) create(t *testing.T, startH, endH int) model.Reservation {
	t.Helper()
	c, rec := env.request(http.MethodPost, "/v1/reservations", env.createBody(startH, endH), env.userID, "USER")
	require.NoError(t, env.handler.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var r model.Reservation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	return r
}

func TestReservationCreate(t *testing.T) {
	env := newTestEnv(t)
	r := env.create(t, 10, 12)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, env.roomID, r.RoomID)
	// The requester defaults to the authenticated subject.
	assert.Equal(t, env.userID, r.RequesterID)
	assert.Equal(t, model.ReservationActive, r.Status)
}

func TestReservationCreateValidationFailure(t *testing.T) {
	env := newTestEnv(t)

	// 5 minutes is below the minimum duration.
	body := fmt.Sprintf(`{"room_id":%q,"start":%q,"end":%q}`,
		env.roomID, env.at(10), env.base.Add(10*time.Hour+5*time.Minute).Format(time.RFC3339))
	c, rec := env.request(http.MethodPost, "/v1/reservations", body, env.userID, "USER")
	require.NoError(t, env.handler.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error    string   `json:"error"`
		Messages []string `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation failed", resp.Error)
	assert.Contains(t, resp.Messages, "reservation duration must be between 15 minutes and 8 hours")
}

func TestReservationCreateBadTimestamp(t *testing.T) {
	env := newTestEnv(t)

	body := fmt.Sprintf(`{"room_id":%q,"start":"tomorrow at noon","end":%q}`, env.roomID, env.at(12))
	c, rec := env.request(http.MethodPost, "/v1/reservations", body, env.userID, "USER")
	require.NoError(t, env.handler.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "RFC 3339")
}

func TestReservationCreateUnknownRoom(t *testing.T) {
	env := newTestEnv(t)

	body := fmt.Sprintf(`{"room_id":"no-such-room","start":%q,"end":%q}`, env.at(10), env.at(12))
	c, rec := env.request(http.MethodPost, "/v1/reservations", body, env.userID, "USER")
	require.NoError(t, env.handler.Create(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReservationCreateConflict(t *testing.T) {
	env := newTestEnv(t)
	env.create(t, 10, 12)

	c, rec := env.request(http.MethodPost, "/v1/reservations", env.createBody(11, 13), env.userID, "USER")
	require.NoError(t, env.handler.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "room is not available in the requested time slot")
}

func TestReservationCreateOnBehalf(t *testing.T) {
	env := newTestEnv(t)

	body := fmt.Sprintf(`{"room_id":%q,"requester_id":%q,"start":%q,"end":%q}`,
		env.roomID, env.userID, env.at(10), env.at(12))

	// A regular user cannot book for someone else.
	c, rec := env.request(http.MethodPost, "/v1/reservations", body, env.adminID, "USER")
	require.NoError(t, env.handler.Create(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// An admin can.
	c, rec = env.request(http.MethodPost, "/v1/reservations", body, env.adminID, "ADMIN")
	require.NoError(t, env.handler.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var r model.Reservation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Equal(t, env.userID, r.RequesterID)
}

func TestReservationGet(t *testing.T) {
	env := newTestEnv(t)
	created := env.create(t, 10, 12)

	c, rec := env.request(http.MethodGet, "/v1/reservations/"+created.ID, "", env.userID, "USER")
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	require.NoError(t, env.handler.Get(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var r model.Reservation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Equal(t, created.ID, r.ID)

	c, rec = env.request(http.MethodGet, "/v1/reservations/missing", "", env.userID, "USER")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	require.NoError(t, env.handler.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReservationCancelOwnership(t *testing.T) {
	env := newTestEnv(t)
	created := env.create(t, 10, 12)

	// Another regular user may not cancel it.
	c, rec := env.request(http.MethodPost, "/v1/reservations/"+created.ID+"/cancel", "", "intruder", "USER")
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	require.NoError(t, env.handler.Cancel(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// The owner may.
	c, rec = env.request(http.MethodPost, "/v1/reservations/"+created.ID+"/cancel", "", env.userID, "USER")
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	require.NoError(t, env.handler.Cancel(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var r model.Reservation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Equal(t, model.ReservationCancelled, r.Status)

	// A second cancel is a validation error.
	c, rec = env.request(http.MethodPost, "/v1/reservations/"+created.ID+"/cancel", "", env.userID, "USER")
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	require.NoError(t, env.handler.Cancel(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "only active reservations can be cancelled")
}

func TestReservationCancelByAdmin(t *testing.T) {
	env := newTestEnv(t)
	created := env.create(t, 10, 12)

	c, rec := env.request(http.MethodPost, "/v1/reservations/"+created.ID+"/cancel", "", env.adminID, "ADMIN")
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	require.NoError(t, env.handler.Cancel(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReservationComplete(t *testing.T) {
	env := newTestEnv(t)
	created := env.create(t, 10, 12)

	c, rec := env.request(http.MethodPost, "/v1/reservations/"+created.ID+"/complete", "", env.adminID, "ADMIN")
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	require.NoError(t, env.handler.Complete(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var r model.Reservation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Equal(t, model.ReservationCompleted, r.Status)
}

func TestReservationListMine(t *testing.T) {
	env := newTestEnv(t)
	env.create(t, 10, 12)
	env.create(t, 14, 16)

	c, rec := env.request(http.MethodGet, "/v1/reservations/mine", "", env.userID, "USER")
	require.NoError(t, env.handler.ListMine(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var out []model.Reservation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out, 2)

	c, rec = env.request(http.MethodGet, "/v1/reservations/mine", "", "someone-else", "USER")
	require.NoError(t, env.handler.ListMine(c))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Empty(t, out)
}

func TestRoomAvailability(t *testing.T) {
	env := newTestEnv(t)
	env.create(t, 10, 12)

	check := func(startH, endH int) (bool, int) {
		target := fmt.Sprintf("/v1/rooms/%s/availability?start=%s&end=%s", env.roomID, env.at(startH), env.at(endH))
		c, rec := env.request(http.MethodGet, target, "", env.userID, "USER")
		c.SetParamNames("id")
		c.SetParamValues(env.roomID)
		require.NoError(t, env.handler.Availability(c))
		var resp struct {
			Available bool `json:"available"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp.Available, rec.Code
	}

	ok, code := check(11, 13)
	assert.Equal(t, http.StatusOK, code)
	assert.False(t, ok)

	ok, _ = check(12, 14)
	assert.True(t, ok)
}

func TestRoomAvailabilityBadQuery(t *testing.T) {
	env := newTestEnv(t)

	c, rec := env.request(http.MethodGet, "/v1/rooms/"+env.roomID+"/availability?start=noon&end=later", "", env.userID, "USER")
	c.SetParamNames("id")
	c.SetParamValues(env.roomID)
	require.NoError(t, env.handler.Availability(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
