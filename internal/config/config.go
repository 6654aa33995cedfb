// Package config provides environment-driven configuration for the booking service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve on hosts without a zoneinfo database
)

// Secret wraps a sensitive string to prevent accidental logging or marshalling.
type Secret string

// String implements fmt.Stringer, returning a redacted placeholder.
func (s Secret) String() string { return "[REDACTED]" }

// GoString implements fmt.GoStringer, returning a redacted placeholder.
func (s Secret) GoString() string { return "[REDACTED]" }

// MarshalText implements encoding.TextMarshaler, returning a redacted placeholder.
func (s Secret) MarshalText() ([]byte, error) { return []byte("[REDACTED]"), nil }

// Value returns the underlying secret string.
func (s Secret) Value() string { return string(s) }

// Store backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config holds all application configuration values.
type Config struct {
	Port           string
	ListenHost     string
	MetricsPort    string
	LogLevel       string
	LogFormat      string
	CORSOrigins    []string
	StoreBackend   string
	DatabaseURL    Secret
	DBMaxConns     int
	CityDataset    string
	NearbyMaxKm    float64
	Timezone       string
	Location       *time.Location
	EventQueueSize int
	RateLimit      int
	RateBurst      int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         envOrDefault("PORT", "8080"),
		ListenHost:   envOrDefault("LISTEN_HOST", "127.0.0.1"),
		MetricsPort:  envOrDefault("METRICS_PORT", "9091"),
		LogLevel:     envOrDefault("LOG_LEVEL", "info"),
		LogFormat:    envOrDefault("LOG_FORMAT", "text"),
		StoreBackend: envOrDefault("STORE_BACKEND", BackendMemory),
		DatabaseURL:  Secret(envOrDefault("DATABASE_URL", "")),
		CityDataset:  envOrDefault("CITY_DATASET", ""),
		Timezone:     envOrDefault("TIMEZONE", "UTC"),
	}

	var err error

	if cfg.DBMaxConns, err = envInt("DB_MAX_CONNS", 10, 2, 200); err != nil {
		return nil, err
	}

	if cfg.EventQueueSize, err = envInt("EVENT_QUEUE_SIZE", 1000, 1, 100000); err != nil {
		return nil, err
	}

	if cfg.RateLimit, err = envInt("RATE_LIMIT_RPS", 100, 1, 100000); err != nil {
		return nil, err
	}

	if cfg.RateBurst, err = envInt("RATE_LIMIT_BURST", 200, 1, 100000); err != nil {
		return nil, err
	}

	nearby, err := strconv.ParseFloat(envOrDefault("NEARBY_MAX_KM", "250"), 64)
	if err != nil {
		return nil, fmt.Errorf("NEARBY_MAX_KM must be a number: %w", err)
	}
	cfg.NearbyMaxKm = nearby

	origins := envOrDefault("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")
	cfg.CORSOrigins = strings.Split(origins, ",")

	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *Config) Addr() string {
	return c.ListenHost + ":" + c.Port
}

// MetricsAddr returns the metrics listen address in host:port format.
func (c *Config) MetricsAddr() string {
	return c.ListenHost + ":" + c.MetricsPort
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

// envInt reads an integer variable and checks it lies within [lo, hi].
func envInt(key string, fallback, lo, hi int) (int, error) {
	v, err := strconv.Atoi(envOrDefault(key, strconv.Itoa(fallback)))
	if err != nil || v < lo || v > hi {
		return 0, fmt.Errorf("%s must be an integer between %d and %d", key, lo, hi)
	}

	return v, nil
}
