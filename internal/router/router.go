// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/meeting-room-reservation/internal/handler"
	"github.com/iliyamo/meeting-room-reservation/internal/middleware"
	"github.com/iliyamo/meeting-room-reservation/internal/model"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance. Currently it exposes only a health check, which
// load balancers or monitoring systems can use to verify that the service
// is up and running.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes. Unauthenticated
// operations live under /v1/auth; the protected /v1/me endpoint requires a
// valid access token signed with jwtSecret.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	// Refresh rotates the refresh token: the presented token is revoked and a
	// new pair is issued.
	g.POST("/refresh", a.Refresh)
	// Logout accepts a JSON body with a `refresh_token` and invalidates it.
	// It does not require JWT authentication so a client with an expired
	// access token can still terminate its session.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterRooms registers the room directory endpoints. Reading the
// directory requires only a valid token; creating rooms and toggling their
// active flag is restricted to administrators.
func RegisterRooms(e *echo.Echo, h *handler.RoomHandler, jwtSecret string) {
	g := e.Group("/v1/rooms")
	g.Use(middleware.JWTAuth(jwtSecret))

	g.GET("", h.List)
	g.GET("/:id", h.Get)

	admin := g.Group("")
	admin.Use(middleware.RequireRole(string(model.RoleAdmin)))
	admin.POST("", h.Create)
	admin.POST("/:id/activate", h.Activate)
	admin.POST("/:id/deactivate", h.Deactivate)
}

// RegisterReservations registers the reservation endpoints. All of them
// require a valid access token; completing a reservation is an
// administrative operation.
func RegisterReservations(e *echo.Echo, h *handler.ReservationHandler, jwtSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))

	g.POST("/reservations", h.Create)
	g.GET("/reservations", h.List)
	g.GET("/reservations/mine", h.ListMine)
	g.GET("/reservations/:id", h.Get)
	// Cancellation enforces ownership in the handler: users may cancel only
	// their own reservations, admins may cancel any.
	g.POST("/reservations/:id/cancel", h.Cancel)

	g.GET("/rooms/:id/reservations", h.ListByRoom)
	g.GET("/rooms/:id/availability", h.Availability)

	admin := g.Group("")
	admin.Use(middleware.RequireRole(string(model.RoleAdmin)))
	admin.POST("/reservations/:id/complete", h.Complete)
}
