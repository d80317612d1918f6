package redis

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://cache:6379/1")
	t.Setenv("REDIS_POOL_SIZE", "1")
	t.Setenv("REDIS_GAME_TTL", "90m")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "redis://cache:6379/1", cfg.URL)
	assert.Equal(t, 1, cfg.PoolSize)
	assert.Equal(t, 1, cfg.MinIdleConns)
	assert.Equal(t, 90*time.Minute, cfg.GameTTL)
	assert.Equal(t, DefaultConfig().PingTimeout, cfg.PingTimeout)
}

func TestConfigFromEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing url", map[string]string{"REDIS_URL": ""}},
		{"bad pool size", map[string]string{"REDIS_POOL_SIZE": "zero"}},
		{"zero pool size", map[string]string{"REDIS_POOL_SIZE": "0"}},
		{"bad ttl", map[string]string{"REDIS_GAME_TTL": "forever"}},
		{"negative ttl", map[string]string{"REDIS_GAME_TTL": "-1h"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("REDIS_URL", "redis://localhost:6379")
			t.Setenv("REDIS_POOL_SIZE", "")
			t.Setenv("REDIS_GAME_TTL", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := ConfigFromEnv()
			assert.Error(t, err)
		})
	}
}

func TestNewPingsServer(t *testing.T) {
	mini := miniredis.RunT(t)

	cfg := DefaultConfig()
	cfg.URL = "redis://" + mini.Addr()
	store, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	mini.Close()
	cfg.PingTimeout = 200 * time.Millisecond
	_, err = New(cfg)
	assert.ErrorContains(t, err, "redis ping")
}

func TestNewRejectsBadURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.URL = "not-a-redis-url"

	_, err := New(cfg)
	assert.Error(t, err)
}
