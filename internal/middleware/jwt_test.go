package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/meeting-room-reservation/internal/utils"
)

const testSecret = "test-secret"

func runJWT(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTAuth(testSecret)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, c
}

func TestJWTAuthValidToken(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, "user-1", "ada@example.com", "USER", 15)
	require.NoError(t, err)

	rec, c := runJWT(t, "Bearer "+at.Token)
	require.Equal(t, http.StatusOK, rec.Code)

	userID, role := Identity(c)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "USER", role)
	assert.Equal(t, "ada@example.com", c.Get(CtxEmail))
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec, _ := runJWT(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMalformedToken(t *testing.T) {
	rec, _ := runJWT(t, "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	at, err := utils.NewAccessToken("other-secret", "user-1", "ada@example.com", "USER", 15)
	require.NoError(t, err)

	rec, _ := runJWT(t, "Bearer "+at.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	at, err := utils.NewAccessToken(testSecret, "user-1", "ada@example.com", "USER", -1)
	require.NoError(t, err)

	rec, _ := runJWT(t, "Bearer "+at.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func runRole(t *testing.T, role any, allowed ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set(CtxRole, role)
	}
	handler := RequireRole(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec
}

func TestRequireRole(t *testing.T) {
	assert.Equal(t, http.StatusOK, runRole(t, "ADMIN", "ADMIN").Code)
	assert.Equal(t, http.StatusOK, runRole(t, "USER", "ADMIN", "USER").Code)
	assert.Equal(t, http.StatusForbidden, runRole(t, "USER", "ADMIN").Code)
	assert.Equal(t, http.StatusForbidden, runRole(t, nil, "ADMIN").Code)
}
