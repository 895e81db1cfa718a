package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ClubName           string
	OutputPath         string
	ChartEnabled       bool
	ChartPath          string
	LogLevel           string
	WorkerCount        int
	RequestsPerSecond  float64
	RetryMaxTries      int
	HTTPTimeoutSeconds int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the tool still runs when .env is absent.
	_ = godotenv.Load()

	return Config{
		ClubName:           envOr("CLUB_NAME", "mensa-argentina"),
		OutputPath:         envOr("OUTPUT_PATH", "Club_Data.xlsx"),
		ChartEnabled:       envBoolOr("CHART", true),
		ChartPath:          envOr("CHART_PATH", "club_ratings.html"),
		LogLevel:           envOr("LOG_LEVEL", "INFO"),
		WorkerCount:        envIntOr("WORKER_COUNT", 4),
		RequestsPerSecond:  envFloatOr("REQUESTS_PER_SECOND", 2),
		RetryMaxTries:      envIntOr("RETRY_MAX_TRIES", 3),
		HTTPTimeoutSeconds: envIntOr("HTTP_TIMEOUT_SECONDS", 15),
	}
}

// Validate checks that the configuration is usable before any network work starts.
func (c Config) Validate() error {
	if c.ClubName == "" {
		return fmt.Errorf("CLUB_NAME cannot be empty")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("OUTPUT_PATH cannot be empty")
	}
	if c.ChartEnabled && c.ChartPath == "" {
		return fmt.Errorf("CHART_PATH cannot be empty when CHART is enabled")
	}
	if c.WorkerCount < 1 {
		return fmt.Errorf("WORKER_COUNT must be at least 1, got %d", c.WorkerCount)
	}
	if c.RequestsPerSecond <= 0 {
		return fmt.Errorf("REQUESTS_PER_SECOND must be positive, got %v", c.RequestsPerSecond)
	}
	if c.RetryMaxTries < 1 {
		return fmt.Errorf("RETRY_MAX_TRIES must be at least 1, got %d", c.RetryMaxTries)
	}
	if c.HTTPTimeoutSeconds < 1 {
		return fmt.Errorf("HTTP_TIMEOUT_SECONDS must be at least 1, got %d", c.HTTPTimeoutSeconds)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envFloatOr(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid value for %s=%q, using default %v", key, v, def)
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %v", key, v, def)
	}
	return def
}
