// Package middleware provides the reusable HTTP middleware of the
// service: bearer-token authentication, role enforcement and the
// Redis-backed rate limiter.
package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Context keys under which JWTAuth stores the identity claim.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// JWTAuth validates a Bearer access token and injects the token's
// subject, email and role claims into the request context.  The
// secret must match the one used when issuing tokens.  Handlers on
// protected routes read the identity via c.Get(CtxUserID) etc.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}
			email, _ := claims["email"].(string)
			role, _ := claims["role"].(string)

			c.Set(CtxUserID, sub)
			c.Set(CtxEmail, email)
			c.Set(CtxRole, role)
			return next(c)
		}
	}
}

// Identity pulls the authenticated user id and role back out of the
// context.  An empty id means the route was not behind JWTAuth.
func Identity(c echo.Context) (userID, role string) {
	userID, _ = c.Get(CtxUserID).(string)
	role, _ = c.Get(CtxRole).(string)
	return userID, role
}
