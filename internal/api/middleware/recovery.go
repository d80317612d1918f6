package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/pegsolitaire-go/internal/api/apierr"
	"github.com/mcoot/pegsolitaire-go/internal/middleware"
)

// Recovery answers a panic with the standard JSON error envelope
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewInternalError())
	})
}
