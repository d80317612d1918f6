package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/pegsolitaire-go/internal/api/handler"
	"github.com/mcoot/pegsolitaire-go/internal/api/middleware"
	"github.com/mcoot/pegsolitaire-go/internal/api/response"
	"github.com/mcoot/pegsolitaire-go/internal/services/game"
	"github.com/mcoot/pegsolitaire-go/internal/web/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
	// HubManager receives SSE updates for watched games (optional)
	HubManager *sse.HubManager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.HubManager, cfg.Logger)

	// Create middleware
	tokenMiddleware := middleware.RequireToken()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Public game routes
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/moves", gameHandler.ListMoves).Methods(http.MethodGet)

	// Routes that require the game's control token
	controlled := api.PathPrefix("/games/{id}").Subrouter()
	controlled.Use(tokenMiddleware)
	controlled.HandleFunc("", gameHandler.Delete).Methods(http.MethodDelete)
	controlled.HandleFunc("/select", gameHandler.Select).Methods(http.MethodPost)
	controlled.HandleFunc("/click", gameHandler.Click).Methods(http.MethodPost)
	controlled.HandleFunc("/moves", gameHandler.Move).Methods(http.MethodPost)
	controlled.HandleFunc("/undo", gameHandler.Undo).Methods(http.MethodPost)
	controlled.HandleFunc("/restart", gameHandler.Restart).Methods(http.MethodPost)
	controlled.HandleFunc("/hint", gameHandler.Hint).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok"})
}
