package redis

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	PoolSize     int
	MinIdleConns int

	// PingTimeout bounds the connection check in New
	PingTimeout time.Duration

	// GameTTL is refreshed on every save, so idle games expire
	GameTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		PingTimeout:  5 * time.Second,
		GameTTL:      24 * time.Hour,
	}
}

// ConfigFromEnv starts from DefaultConfig and applies REDIS_URL (required),
// REDIS_POOL_SIZE and REDIS_GAME_TTL
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	cfg.URL = os.Getenv("REDIS_URL")
	if cfg.URL == "" {
		return cfg, errors.New("REDIS_URL is required")
	}

	if v := os.Getenv("REDIS_POOL_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return cfg, fmt.Errorf("invalid REDIS_POOL_SIZE %q", v)
		}
		cfg.PoolSize = n
		cfg.MinIdleConns = min(cfg.MinIdleConns, n)
	}

	if v := os.Getenv("REDIS_GAME_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl < 0 {
			return cfg, fmt.Errorf("invalid REDIS_GAME_TTL %q", v)
		}
		cfg.GameTTL = ttl
	}

	return cfg, nil
}
