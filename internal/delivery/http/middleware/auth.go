package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Oliejik/T-No-Posto/internal/pkg/auth"
	"github.com/Oliejik/T-No-Posto/internal/pkg/errors"
	"github.com/Oliejik/T-No-Posto/internal/pkg/utils"
)

const (
	LocalsUserID = "user_id"
	LocalsRole   = "role"
)

// RequireAuth validates the Bearer token and stores the caller identity in
// the request locals.
func RequireAuth(jwtService *auth.JWTService, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			logger.Debug("Token validation failed", zap.Error(err))
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			logger.Warn("Token carries malformed user id", zap.String("user_id", claims.UserID))
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		c.Locals(LocalsUserID, userID)
		c.Locals(LocalsRole, claims.Role)
		return c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalsRole).(string)
		if role != "admin" {
			return utils.SendError(c, errors.ErrForbidden)
		}
		return c.Next()
	}
}

// OptionalAuth resolves the identity when a valid token is present but lets
// anonymous requests through. Map and station reads work without login.
func OptionalAuth(jwtService *auth.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Next()
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Next()
		}

		if claims, err := jwtService.ValidateToken(parts[1]); err == nil {
			if userID, err := uuid.Parse(claims.UserID); err == nil {
				c.Locals(LocalsUserID, userID)
				c.Locals(LocalsRole, claims.Role)
			}
		}
		return c.Next()
	}
}

// UserID returns the authenticated caller, or uuid.Nil for anonymous
// requests that passed OptionalAuth.
func UserID(c *fiber.Ctx) uuid.UUID {
	if id, ok := c.Locals(LocalsUserID).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
