package main

import (
	"strings"
	"time"

	"weekpulse/internal/api"
	"weekpulse/internal/auth"
	"weekpulse/internal/config"
	"weekpulse/internal/database"
	"weekpulse/internal/logger"
	"weekpulse/internal/scheduler"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Config{LogDir: "./logs"})
		logger.Fatal("configuration error", "err", err)
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, LogDir: cfg.LogDir}); err != nil {
		panic(err)
	}

	if cfg.GeneratedSecret {
		logger.Warn("JWT_SECRET not set; using a random per-process secret, tokens will not survive restarts")
	}

	// Initialize database
	db, err := database.Open(cfg.DatabaseURL, cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to initialize database", "err", err)
	}
	defer db.Close()

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	limiter := auth.NewLimiter(
		auth.NewMemoryAttemptStore(cfg.LoginWindow),
		cfg.LoginMaxAttempts,
		cfg.LoginWindow,
	)

	// Background workers keep materialized recurrence windows full as the
	// calendar advances. One run at startup covers downtime past the
	// nightly slot.
	if cfg.EnableWorkers {
		logger.Info("starting background workers", "refresh_time", cfg.RecurrenceRefreshTime)
		if err := api.ExtendRecurrenceHorizons(db); err != nil {
			logger.Error("recurrence horizon refresh at startup", "err", err)
		}

		sched := scheduler.New(time.Local)
		_, err := sched.ScheduleDaily(cfg.RecurrenceRefreshTime, func() {
			if err := api.ExtendRecurrenceHorizons(db); err != nil {
				logger.Error("recurrence horizon refresh", "err", err)
			}
		})
		if err != nil {
			logger.Fatal("failed to schedule recurrence refresh", "err", err)
		}
		sched.Start()
		defer sched.Stop()
	} else {
		logger.Info("background workers disabled (set ENABLE_WORKERS=true to enable)")
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			if code == fiber.StatusInternalServerError {
				logger.Error("request failed", "path", c.Path(), "err", err)
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(fiberlogger.New())

	// CORS configuration: restrict to specific origins for security
	allowedOrigins := cfg.AllowedOrigins
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:80,http://localhost:5173" // Default for local dev
		logger.Warn("using default ALLOWED_ORIGINS; set ALLOWED_ORIGINS for production")
	} else if allowedOrigins != "*" {
		// Normalize comma-separated list (trim whitespace around entries)
		parts := strings.Split(allowedOrigins, ",")
		for i, p := range parts {
			parts[i] = strings.TrimSpace(p)
		}
		allowedOrigins = strings.Join(parts, ",")
	}
	logger.Info("CORS allowed origins", "origins", allowedOrigins)

	app.Use(cors.New(corsConfig(allowedOrigins)))

	// Setup routes
	api.SetupRoutes(app, api.Options{
		DB:       db,
		Tokens:   tokens,
		Limiter:  limiter,
		Password: cfg.Password,
	})

	logger.Info("server starting", "port", cfg.Port)
	logger.Fatal("server stopped", "err", app.Listen(":"+cfg.Port))
}

// corsConfig builds the CORS middleware settings. Fiber refuses a
// wildcard origin combined with credentials, so the wildcard case drops
// credential support instead of panicking at startup.
func corsConfig(allowedOrigins string) cors.Config {
	return cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: allowedOrigins != "*",
	}
}
