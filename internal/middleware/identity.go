package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/admin-api/internal/config"
	"github.com/ahmetcoskunkizilkaya/admin-api/internal/dto"
)

// Identity is the boolean authentication gate in front of /api/v1. A
// request passes with either the service api_key header or a bearer token
// issued by the identity service; the outcome is pass/fail only, no
// authorization decisions are made here.
func Identity(cfg *config.Config) fiber.Handler {
	bearer := jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})

	return func(c *fiber.Ctx) error {
		if cfg.APIKey != "" && c.Get("api_key") == cfg.APIKey {
			return c.Next()
		}
		return bearer(c)
	}
}
