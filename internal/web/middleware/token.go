package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/mcoot/pegsolitaire-go/internal/model"
)

type contextKey string

const (
	gameTokenCookieName = "game_token"
	gameTokenContextKey = contextKey("game_token")
)

// GetGameToken retrieves the game control token from the request context.
// Returns "" for spectators.
func GetGameToken(ctx context.Context) string {
	token, _ := ctx.Value(gameTokenContextKey).(string)
	return token
}

// SetGameToken stores the control token for a game. The cookie is scoped to
// the game's own path so each game keeps its own token.
func SetGameToken(w http.ResponseWriter, gameID model.GameID, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     gameTokenCookieName,
		Value:    token,
		Path:     GamePath(gameID),
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearGameToken removes the control token for a game
func ClearGameToken(w http.ResponseWriter, gameID model.GameID) {
	http.SetCookie(w, &http.Cookie{
		Name:     gameTokenCookieName,
		Value:    "",
		Path:     GamePath(gameID),
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// GamePath returns the page URL for a game
func GamePath(gameID model.GameID) string {
	return "/games/" + string(gameID)
}

// GameToken returns middleware that loads the control token cookie into the
// request context. A missing cookie means the viewer is a spectator.
func GameToken() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if cookie, err := r.Cookie(gameTokenCookieName); err == nil && cookie.Value != "" {
				ctx = context.WithValue(ctx, gameTokenContextKey, cookie.Value)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
