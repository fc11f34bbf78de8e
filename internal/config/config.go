package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config keeps runtime settings for the server.
type Config struct {
	Password    string
	JWTSecret   string
	DatabaseURL string
	DBPath      string
	Port        string

	TokenTTL         time.Duration
	LoginMaxAttempts int
	LoginWindow      time.Duration

	AllowedOrigins        string
	EnableWorkers         bool
	RecurrenceRefreshTime string

	LogDir string
	Debug  bool

	// GeneratedSecret is set when JWT_SECRET was absent and a random
	// per-process secret was generated; tokens won't survive a restart.
	GeneratedSecret bool
}

// Load reads configuration from environment variables with sane defaults.
// PASSWORD is the single required variable.
func Load() (Config, error) {
	cfg := Config{
		Password:              os.Getenv("PASSWORD"),
		JWTSecret:             strings.TrimSpace(os.Getenv("JWT_SECRET")),
		DatabaseURL:           strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DBPath:                strings.TrimSpace(os.Getenv("DB_PATH")),
		Port:                  strings.TrimSpace(os.Getenv("PORT")),
		AllowedOrigins:        strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")),
		RecurrenceRefreshTime: strings.TrimSpace(os.Getenv("RECURRENCE_REFRESH_TIME")),
		Debug:                 os.Getenv("DEBUG") == "true",
		LogDir:                strings.TrimSpace(os.Getenv("LOG_DIR")),
	}

	if cfg.Password == "" {
		return cfg, fmt.Errorf("PASSWORD environment variable is required")
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = randomSecret()
		cfg.GeneratedSecret = true
	}

	if cfg.DBPath == "" {
		cfg.DBPath = "./data/weekpulse.db"
	}
	if cfg.Port == "" {
		cfg.Port = "3001"
	}
	if cfg.LogDir == "" {
		cfg.LogDir = "./logs"
	}
	if cfg.RecurrenceRefreshTime == "" {
		cfg.RecurrenceRefreshTime = "03:00"
	}

	cfg.TokenTTL = time.Duration(envInt("TOKEN_TTL_HOURS", 7*24)) * time.Hour
	cfg.LoginMaxAttempts = envInt("LOGIN_MAX_ATTEMPTS", 100)
	cfg.LoginWindow = time.Duration(envInt("LOGIN_WINDOW_SECONDS", 60)) * time.Second

	workers := os.Getenv("ENABLE_WORKERS")
	cfg.EnableWorkers = workers == "" || workers == "true"

	return cfg, nil
}

func envInt(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform is broken; nothing
		// sensible to fall back to.
		panic(err)
	}
	return hex.EncodeToString(buf)
}
