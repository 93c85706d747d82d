// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the
// application; every external collaborator is optional, and its absence
// degrades the corresponding feature instead of failing startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Insight content source
	ContentDir string
	CacheTTL   time.Duration

	// Rate limiter backing store (empty addr disables the limiter)
	RedisAddr     string
	RedisPassword string
	RateLimit     int
	RateWindow    time.Duration

	// Email delivery (empty key enables the log-only fallback)
	ResendAPIKey     string
	ResendAudienceID string
	ContactEmail     string
	MailFrom         string

	// Optional CRM database
	DatabaseURL string

	// Optional S3 content source (takes precedence over ContentDir when set)
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3Prefix    string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. A .env file in the working directory
// is honored when present.
func Load() (*Config, error) {
	// Best effort; absence of a .env file is the normal production case.
	_ = godotenv.Load()

	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		ContentDir: envOrDefault("CONTENT_DIR", "content/insights"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
		ResendAudienceID: os.Getenv("RESEND_AUDIENCE_ID"),
		ContactEmail:     envOrDefault("CONTACT_EMAIL", "contact@oxonn-tech.com"),
		MailFrom:         envOrDefault("MAIL_FROM", "noreply@oxonn-tech.com"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3Prefix:    envOrDefault("S3_PREFIX", "insights/"),
	}

	var err error
	if cfg.RateLimit, err = envOrDefaultInt("RATE_LIMIT", 5); err != nil {
		return nil, err
	}
	windowSeconds, err := envOrDefaultInt("RATE_WINDOW_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	cfg.RateWindow = time.Duration(windowSeconds) * time.Second

	// Production memoizes for a minute; development always re-reads so
	// content edits show up immediately.
	defaultTTL := 0
	if cfg.IsProd() {
		defaultTTL = 60
	}
	ttlSeconds, err := envOrDefaultInt("CACHE_TTL_SECONDS", defaultTTL)
	if err != nil {
		return nil, err
	}
	cfg.CacheTTL = time.Duration(ttlSeconds) * time.Second

	if cfg.RateLimit < 1 {
		return nil, fmt.Errorf("RATE_LIMIT must be at least 1")
	}

	return cfg, nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProd returns true if the application is running in production mode.
func (c *Config) IsProd() bool {
	return c.Env == "production"
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envOrDefaultInt reads an integer environment variable.
func envOrDefaultInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
