package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/meeting-room-reservation/internal/middleware"
	"github.com/iliyamo/meeting-room-reservation/internal/model"
	"github.com/iliyamo/meeting-room-reservation/internal/queue"
	"github.com/iliyamo/meeting-room-reservation/internal/service"
)

// ReservationHandler exposes the reservation engine over HTTP.  All
// routes sit behind JWTAuth; the authenticated subject is the default
// requester and the ownership check for cancel lives here, not in the
// engine.
type ReservationHandler struct {
	Reservations *service.ReservationService
	// PublishEvents controls whether lifecycle events go to the
	// message broker.  Disabled in tests.
	PublishEvents bool
}

// NewReservationHandler constructs the handler.
func NewReservationHandler(svc *service.ReservationService, publishEvents bool) *ReservationHandler {
	return &ReservationHandler{Reservations: svc, PublishEvents: publishEvents}
}

type createReservationReq struct {
	RoomID      string `json:"room_id"`
	RequesterID string `json:"requester_id"` // optional; admins may book for others
	Start       string `json:"start"`        // RFC 3339
	End         string `json:"end"`          // RFC 3339
}

// Create handles POST /v1/reservations.  Timestamps are RFC 3339
// strings; a parse failure is a client error distinct from the
// engine's validation errors.
func (h *ReservationHandler) Create(c echo.Context) error {
	userID, role := middleware.Identity(c)

	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	requesterID := req.RequesterID
	if requesterID == "" {
		requesterID = userID
	}
	if requesterID != userID && role != string(model.RoleAdmin) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "cannot book on behalf of another user"})
	}

	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start must be an RFC 3339 timestamp"})
	}
	end, err := time.Parse(time.RFC3339, req.End)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end must be an RFC 3339 timestamp"})
	}

	res, err := h.Reservations.CreateReservation(c.Request().Context(), req.RoomID, requesterID, start, end)
	if err != nil {
		return writeDomainError(c, err)
	}

	if h.PublishEvents {
		go func(r model.Reservation) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = queue.PublishReservationCreated(ctx, queue.NewReservationCreatedEvent(&r))
		}(*res)
	}

	return c.JSON(http.StatusCreated, res)
}

// Get handles GET /v1/reservations/:id.
func (h *ReservationHandler) Get(c echo.Context) error {
	res, err := h.Reservations.GetReservation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// List handles GET /v1/reservations.
func (h *ReservationHandler) List(c echo.Context) error {
	out, err := h.Reservations.ListReservations(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// ListByRoom handles GET /v1/rooms/:id/reservations.
func (h *ReservationHandler) ListByRoom(c echo.Context) error {
	out, err := h.Reservations.ListReservationsByRoom(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// ListMine handles GET /v1/reservations/mine: the caller's own bookings.
func (h *ReservationHandler) ListMine(c echo.Context) error {
	userID, _ := middleware.Identity(c)
	out, err := h.Reservations.ListReservationsByRequester(c.Request().Context(), userID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Cancel handles POST /v1/reservations/:id/cancel.  A user may cancel
// only their own reservation; admins may cancel any.  This policy is
// enforced from the identity claim here because the engine's cancel
// takes only an id.
func (h *ReservationHandler) Cancel(c echo.Context) error {
	userID, role := middleware.Identity(c)
	id := c.Param("id")

	existing, err := h.Reservations.GetReservation(c.Request().Context(), id)
	if err != nil {
		return writeDomainError(c, err)
	}
	if existing.RequesterID != userID && role != string(model.RoleAdmin) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "cannot cancel another user's reservation"})
	}

	res, err := h.Reservations.CancelReservation(c.Request().Context(), id)
	if err != nil {
		return writeDomainError(c, err)
	}

	if h.PublishEvents {
		go func(r model.Reservation) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = queue.PublishReservationCancelled(ctx, queue.NewReservationCancelledEvent(&r))
		}(*res)
	}

	return c.JSON(http.StatusOK, res)
}

// Complete handles POST /v1/reservations/:id/complete (admin only via
// routing).
func (h *ReservationHandler) Complete(c echo.Context) error {
	res, err := h.Reservations.CompleteReservation(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// Availability handles GET /v1/rooms/:id/availability?start=..&end=..
func (h *ReservationHandler) Availability(c echo.Context) error {
	start, err := time.Parse(time.RFC3339, c.QueryParam("start"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start must be an RFC 3339 timestamp"})
	}
	end, err := time.Parse(time.RFC3339, c.QueryParam("end"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end must be an RFC 3339 timestamp"})
	}

	available, err := h.Reservations.CheckAvailability(c.Request().Context(), c.Param("id"), start, end)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"room_id":   c.Param("id"),
		"start":     start.UTC(),
		"end":       end.UTC(),
		"available": available,
	})
}
