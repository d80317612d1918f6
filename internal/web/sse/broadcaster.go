package sse

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/mcoot/pegsolitaire-go/internal/model"
	"github.com/mcoot/pegsolitaire-go/internal/web/templates/components"
)

// Event names sent to game watchers
const (
	EventBoardUpdate = "board-update"
	EventGameStatus  = "game-status"
	EventGameDeleted = "game-deleted"
)

// Broadcaster pushes game changes to SSE watchers
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// BroadcastGameUpdate sends the new status panel and a board refresh signal.
// HTMX refetches the board via hx-trigger="sse:board-update" so each viewer
// gets the view matching their own control token.
func (b *Broadcaster) BroadcastGameUpdate(ctx context.Context, game *model.Game) {
	hub := b.hubManager.GetHub(game.ID)
	if hub == nil {
		return
	}

	var buf bytes.Buffer
	if err := components.GameStatus(game).Render(ctx, &buf); err != nil {
		b.logger.Error("sse failed to render game status",
			slog.String("game_id", string(game.ID)),
			slog.Any("error", err))
		return
	}

	hub.BroadcastEvent(EventGameStatus, WrapForOOBSwap("game-status", buf.String()))
	hub.BroadcastEvent(EventBoardUpdate, string(game.Status))
}

// BroadcastGameDeleted tells watchers the game is gone and closes its hub
func (b *Broadcaster) BroadcastGameDeleted(gameID model.GameID) {
	hub := b.hubManager.GetHub(gameID)
	if hub == nil {
		return
	}

	hub.BroadcastEvent(EventGameDeleted, string(gameID))
	b.hubManager.RemoveHub(gameID)
}

// WrapForOOBSwap wraps HTML in a div with hx-swap-oob for out-of-band swaps
func WrapForOOBSwap(id, html string) string {
	return `<div id="` + id + `" hx-swap-oob="true">` + html + `</div>`
}
