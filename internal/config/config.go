package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	JWT     JWTConfig
	Workday WorkdayConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	AccessExpiration  string
	RefreshExpiration string
}

// WorkdayConfig holds the workday defaults shared by attendance and analytics.
type WorkdayConfig struct {
	// BaselineCheckIn is the nominal start-of-day used by punctuality
	// reports, in "HH:MM" 24h format.
	BaselineCheckIn string

	// PendingRefreshInterval is how often the pending-request queue
	// projection is rebuilt in the background.
	PendingRefreshInterval time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
	}

	refreshInterval, err := time.ParseDuration(getEnv("PENDING_REFRESH_INTERVAL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid PENDING_REFRESH_INTERVAL: %w", err)
	}

	config.Workday = WorkdayConfig{
		BaselineCheckIn:        getEnv("WORKDAY_BASELINE_CHECK_IN", "09:00"),
		PendingRefreshInterval: refreshInterval,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if _, err := time.ParseDuration(c.JWT.RefreshExpiration); err != nil {
		return fmt.Errorf("invalid JWT_REFRESH_EXPIRATION_TIME: %w", err)
	}
	if _, err := time.Parse("15:04", c.Workday.BaselineCheckIn); err != nil {
		return fmt.Errorf("invalid WORKDAY_BASELINE_CHECK_IN: %w", err)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (a AppConfig) Addr() string {
	return fmt.Sprintf(":%d", a.Port)
}

// BaselineCheckInTime parses the configured baseline into hour and minute.
func (w WorkdayConfig) BaselineCheckInTime() (hour, minute int) {
	t, err := time.Parse("15:04", w.BaselineCheckIn)
	if err != nil {
		return 9, 0
	}
	return t.Hour(), t.Minute()
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
