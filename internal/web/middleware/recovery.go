package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/pegsolitaire-go/internal/middleware"
	"github.com/mcoot/pegsolitaire-go/internal/web/templates/layout"
	"github.com/mcoot/pegsolitaire-go/internal/web/templates/pages"
)

// Recovery turns a panic in a web handler into the HTML error page
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, webPanicHandler)
}

func webPanicHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_ = pages.Error(pages.ErrorData{
		PageData: layout.PageData{Title: "Error"},
		Heading:  "Internal Server Error",
		Message:  "Something went wrong with the board. Please try again.",
	}).Render(r.Context(), w)
}
