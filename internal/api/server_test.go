package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/pegsolitaire-go/internal/api"
	"github.com/mcoot/pegsolitaire-go/internal/testutil"
)

func TestServerConfigFromEnv(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9090")

	cfg, err := api.ServerConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 9090, cfg.Port)

	t.Setenv("PORT", "http")
	_, err = api.ServerConfigFromEnv()
	assert.Error(t, err)
}

func TestServerServesAndShutsDown(t *testing.T) {
	cfg := api.DefaultServerConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 0

	logger := testutil.NopLogger()
	server := api.NewServer(api.NewRouter(api.RouterConfig{Logger: logger}), cfg, logger)
	require.NoError(t, server.Listen())

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	resp, err := http.Get("http://" + server.Addr() + "/api/v1/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, server.Shutdown(context.Background()))
	assert.NoError(t, <-errCh)
}
