package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/pegsolitaire-go/internal/dependencies/clock"
	"github.com/mcoot/pegsolitaire-go/internal/dependencies/random"
	"github.com/mcoot/pegsolitaire-go/internal/services/auth"
	"github.com/mcoot/pegsolitaire-go/internal/services/engine"
	"github.com/mcoot/pegsolitaire-go/internal/services/game"
	"github.com/mcoot/pegsolitaire-go/internal/services/hint"
	"github.com/mcoot/pegsolitaire-go/internal/storage"
	"github.com/mcoot/pegsolitaire-go/internal/storage/memory"
	redisstorage "github.com/mcoot/pegsolitaire-go/internal/storage/redis"
	"github.com/mcoot/pegsolitaire-go/internal/web/sse"
)

// Storage backends accepted in Config.StorageType
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// ErrUnknownStorageType is returned by New for a StorageType it cannot build
var ErrUnknownStorageType = errors.New("unknown storage type")

// App holds the wired components shared by the API, web UI and tests
type App struct {
	Storage storage.Storage
	Clock   clock.Clock
	Random  random.Random

	Engine         *engine.Service
	Auth           *auth.Service
	HintStrategies map[string]hint.Strategy
	GameController *game.Controller
	HubManager     *sse.HubManager

	Logger *slog.Logger
}

// Config selects the backends New wires together. The zero value gives an
// in-memory app with a silent logger and default bcrypt cost.
type Config struct {
	AuthConfig  auth.Config
	Logger      *slog.Logger
	StorageType string               // StorageTypeMemory (default) or StorageTypeRedis
	RedisConfig *redisstorage.Config // required for StorageTypeRedis
}

// New builds an App with real clock and randomness
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	authCfg := cfg.AuthConfig
	if authCfg.HashCost == 0 {
		authCfg = auth.DefaultConfig()
	}

	logger.Info("application wired", slog.String("storage", storageName(cfg.StorageType)))
	return wire(store, clock.New(), random.New(), authCfg, logger), nil
}

func storageName(t string) string {
	if t == "" {
		return StorageTypeMemory
	}
	return t
}

func newStorage(cfg Config) (storage.Storage, error) {
	switch storageName(cfg.StorageType) {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("redis storage needs a RedisConfig")
		}
		store, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("connect redis storage: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownStorageType, cfg.StorageType)
	}
}

// wire connects the services around the given storage and dependencies
func wire(store storage.Storage, clk clock.Clock, rnd random.Random, authCfg auth.Config, logger *slog.Logger) *App {
	eng := engine.New(logger)
	authService := auth.New(rnd, authCfg)
	strategies := hint.Strategies(rnd)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Engine:         eng,
		Auth:           authService,
		HintStrategies: strategies,
		GameController: game.NewController(store, eng, authService, strategies, clk, rnd, logger),
		HubManager:     sse.NewHubManager(logger),
		Logger:         logger,
	}
}

// Close ends every open event stream and releases the storage connection if
// it has one. Call it before shutting the HTTP server down so streaming
// handlers return.
func (a *App) Close() error {
	if n := a.HubManager.CloseAll(); n > 0 {
		a.Logger.Info("closed event streams", slog.Int("hubs", n))
	}
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
