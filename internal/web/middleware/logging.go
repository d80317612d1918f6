package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/mcoot/pegsolitaire-go/internal/middleware"
)

// Logging creates logging middleware for the web interface. Static assets
// and SSE streams log at debug level.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger, isBackgroundRequest)
}

func isBackgroundRequest(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/static/") || strings.HasSuffix(r.URL.Path, "/events")
}
