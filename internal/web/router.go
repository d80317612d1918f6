package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/pegsolitaire-go/internal/services/game"
	"github.com/mcoot/pegsolitaire-go/internal/web/handler"
	"github.com/mcoot/pegsolitaire-go/internal/web/middleware"
	"github.com/mcoot/pegsolitaire-go/internal/web/sse"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController *game.Controller
	HubManager     *sse.HubManager
	StaticDir      string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	tokenMiddleware := middleware.GameToken()

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create SSE hub manager if not provided
	hubManager := cfg.HubManager
	if hubManager == nil {
		hubManager = sse.NewHubManager(cfg.Logger)
	}

	// Create handlers
	homeHandler := handler.NewHomeHandler()
	gameHandler := handler.NewGameHandler(cfg.GameController, hubManager, cfg.Logger)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Pages
	pages := r.NewRoute().Subrouter()
	pages.Use(flashMiddleware)
	pages.Use(tokenMiddleware)
	pages.HandleFunc("/", homeHandler.Home).Methods(http.MethodGet)
	pages.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	pages.HandleFunc("/games/{id}", gameHandler.View).Methods(http.MethodGet)

	// Game actions. Each one checks the control token cookie.
	pages.HandleFunc("/games/{id}/click", gameHandler.Click).Methods(http.MethodPost)
	pages.HandleFunc("/games/{id}/move", gameHandler.Move).Methods(http.MethodPost)
	pages.HandleFunc("/games/{id}/undo", gameHandler.Undo).Methods(http.MethodPost)
	pages.HandleFunc("/games/{id}/restart", gameHandler.Restart).Methods(http.MethodPost)
	pages.HandleFunc("/games/{id}/hint", gameHandler.Hint).Methods(http.MethodPost)
	pages.HandleFunc("/games/{id}/delete", gameHandler.Delete).Methods(http.MethodPost)

	// Live updates for players and spectators
	r.HandleFunc("/games/{id}/events", gameHandler.Events).Methods(http.MethodGet)

	return r
}
