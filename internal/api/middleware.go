package api

import (
	"strings"

	"weekpulse/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware guards protected routes. A missing or malformed header
// is 401; a token that fails validation (signature, expiry, subject) is
// 403.
func AuthMiddleware(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Access denied. No token provided.")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid authorization header format")
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusForbidden, "Invalid or expired token.")
		}

		c.Locals("subject", claims.Subject)
		return c.Next()
	}
}
