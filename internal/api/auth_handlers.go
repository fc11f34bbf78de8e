package api

import (
	"weekpulse/internal/auth"
	"weekpulse/internal/logger"
	"weekpulse/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LoginHandler checks the shared owner password and issues a bearer
// token. Attempts are throttled per client IP; the counter resets on
// success.
func LoginHandler(limiter *auth.Limiter, tokens *auth.TokenManager, password string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := c.IP()
		if allowed, msg := limiter.Allow(ip); !allowed {
			return fiber.NewError(fiber.StatusTooManyRequests, msg)
		}

		var req models.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if !auth.VerifyPassword(password, req.Password) {
			logger.Warn("failed login attempt", "ip", ip)
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid password")
		}

		token, err := tokens.Generate()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate token")
		}

		limiter.Reset(ip)
		return c.JSON(models.LoginResponse{
			Success:   true,
			Token:     token,
			ExpiresIn: int(tokens.TTL().Seconds()),
		})
	}
}

// VerifyHandler confirms a token accepted by the auth middleware.
func VerifyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"valid": true})
	}
}
