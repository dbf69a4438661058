// Package auth protects the API with a static key check.
package auth

import "github.com/gofiber/fiber/v2"

// Header carries the client's API key.
const Header = "X-Api-Key"

// Config holds the expected API key. An empty key disables the check.
type Config struct {
	ApiKey string
}

// New returns middleware that rejects requests without the configured key.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}
		if c.Get(Header) != cfg.ApiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or missing api key",
			})
		}
		return c.Next()
	}
}
