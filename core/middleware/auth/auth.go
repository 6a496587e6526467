package auth

import "github.com/gofiber/fiber/v2"

// Config holds configuration for the auth middleware.
type Config struct {
	// ApiKey is the expected API key. If empty, authentication is disabled.
	ApiKey string
}

// New creates a middleware that validates the X-Api-Key request header.
// Requests with a missing or wrong key are rejected with 401.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			// No key configured, auth disabled (local development)
			return c.Next()
		}

		if c.Get("X-Api-Key") != cfg.ApiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or missing API key",
			})
		}

		return c.Next()
	}
}
