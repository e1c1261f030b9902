package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth. Empty disables the bearer check (local use).
	APIKey string

	// Default CV loaded into the default session on first ask.
	CVFilePath string

	// Upload limits
	MaxUploadBytes int64

	// Session store
	SessionTTL      time.Duration
	CleanupInterval time.Duration

	// Email
	EmailProvider string // "ses" or "noop"
	EmailRegion   string
	EmailFrom     string
	EmailFromName string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8080"),

		APIKey: os.Getenv("CV_CHAT_API_KEY"),

		CVFilePath: os.Getenv("CV_FILE_PATH"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 10485760), // 10MB

		SessionTTL:      envDuration("SESSION_TTL", 1*time.Hour),
		CleanupInterval: envDuration("CLEANUP_INTERVAL", 5*time.Minute),

		EmailProvider: envOr("EMAIL_PROVIDER", "noop"),
		EmailRegion:   os.Getenv("EMAIL_REGION"),
		EmailFrom:     os.Getenv("EMAIL_FROM"),
		EmailFromName: envOr("EMAIL_FROM_NAME", "CV Chat"),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10485760
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 1 * time.Hour
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 5 * time.Minute
	}

	return cfg
}

func (c Config) Validate() error {
	switch c.EmailProvider {
	case "noop":
	case "ses":
		if c.EmailRegion == "" {
			return fmt.Errorf("EMAIL_REGION is required when EMAIL_PROVIDER=ses")
		}
		if c.EmailFrom == "" {
			return fmt.Errorf("EMAIL_FROM is required when EMAIL_PROVIDER=ses")
		}
	default:
		return fmt.Errorf("unknown EMAIL_PROVIDER: %q", c.EmailProvider)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
