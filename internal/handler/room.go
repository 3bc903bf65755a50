package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/meeting-room-reservation/internal/service"
)

// RoomHandler exposes room management.  Reads are open to any
// authenticated user; writes are restricted to admins by the router.
type RoomHandler struct {
	Rooms *service.RoomService
}

// NewRoomHandler constructs the handler.
func NewRoomHandler(svc *service.RoomService) *RoomHandler {
	return &RoomHandler{Rooms: svc}
}

type createRoomReq struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// Create handles POST /v1/rooms.
func (h *RoomHandler) Create(c echo.Context) error {
	var req createRoomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	room, err := h.Rooms.CreateRoom(c.Request().Context(), req.Name, req.Capacity)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, room)
}

// Get handles GET /v1/rooms/:id.
func (h *RoomHandler) Get(c echo.Context) error {
	room, err := h.Rooms.GetRoom(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, room)
}

// List handles GET /v1/rooms.
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.Rooms.ListRooms(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, rooms)
}

// Activate handles POST /v1/rooms/:id/activate.
func (h *RoomHandler) Activate(c echo.Context) error {
	room, err := h.Rooms.ActivateRoom(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, room)
}

// Deactivate handles POST /v1/rooms/:id/deactivate.
func (h *RoomHandler) Deactivate(c echo.Context) error {
	room, err := h.Rooms.DeactivateRoom(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, room)
}
