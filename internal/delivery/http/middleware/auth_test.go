package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/delivery/http/middleware"
	"github.com/Oliejik/T-No-Posto/internal/pkg/auth"
)

func newAuthApp(t *testing.T, jwtService *auth.JWTService) *fiber.App {
	t.Helper()
	app := fiber.New()

	app.Get("/private", middleware.RequireAuth(jwtService, zap.NewNop()), func(c *fiber.Ctx) error {
		return c.SendString(middleware.UserID(c).String())
	})
	app.Get("/admin", middleware.RequireAuth(jwtService, zap.NewNop()), middleware.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/public", middleware.OptionalAuth(jwtService), func(c *fiber.Ctx) error {
		return c.SendString(middleware.UserID(c).String())
	})

	return app
}

func TestRequireAuth(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", time.Hour)
	app := newAuthApp(t, jwtService)

	userID := uuid.New()
	token, err := jwtService.GenerateToken(userID.String(), "driver@example.com", "driver")
	require.NoError(t, err)

	t.Run("valid token passes and exposes the user id", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/private", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/private", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/private", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer not-a-jwt")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := auth.NewJWTService("different-secret", time.Hour)
		forged, err := other.GenerateToken(userID.String(), "driver@example.com", "driver")
		require.NoError(t, err)

		req := httptest.NewRequest(fiber.MethodGet, "/private", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+forged)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRequireAdmin(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", time.Hour)
	app := newAuthApp(t, jwtService)

	driverToken, err := jwtService.GenerateToken(uuid.New().String(), "driver@example.com", "driver")
	require.NoError(t, err)
	adminToken, err := jwtService.GenerateToken(uuid.New().String(), "admin@example.com", "admin")
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+driverToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodGet, "/admin", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOptionalAuth(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", time.Hour)
	app := newAuthApp(t, jwtService)

	// Anonymous requests pass with a nil identity.
	req := httptest.NewRequest(fiber.MethodGet, "/public", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// A broken token degrades to anonymous instead of failing the request.
	req = httptest.NewRequest(fiber.MethodGet, "/public", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer broken")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
