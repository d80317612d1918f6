package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/pegsolitaire-go/internal/model"
	"github.com/mcoot/pegsolitaire-go/internal/web/templates/components"
	"github.com/mcoot/pegsolitaire-go/internal/web/templates/layout"
)

// GameData is the view model for the board page
type GameData struct {
	layout.PageData
	Game *model.Game
	// CanControl is true when the viewer holds the control token
	CanControl bool
}

// Game renders the board page. Spectators get a read-only board that
// refreshes on SSE updates.
func Game(data GameData) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		id := templ.EscapeString(string(data.Game.ID))
		if _, err := io.WriteString(w, `<section id="game" hx-ext="sse" sse-connect="/games/`+id+`/events">
<h1>Game `+id+`</h1>
<div hx-get="/games/`+id+`" hx-trigger="sse:board-update" hx-select="#game-board" hx-target="#game-board" hx-swap="outerHTML"></div>
<div hx-get="/" hx-trigger="sse:game-deleted" hx-target="body" hx-push-url="true"></div>
<div sse-swap="game-status" hx-swap="none"></div>
<div id="game-status">
`); err != nil {
			return err
		}
		if err := components.GameStatus(data.Game).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</div>\n"); err != nil {
			return err
		}

		parts := []templ.Component{
			components.Board(data.Game, data.CanControl),
		}
		if data.CanControl {
			parts = append(parts, components.MoveForm(data.Game), components.GameControls(data.Game))
		} else {
			parts = append(parts, spectatorNotice())
		}
		for _, c := range parts {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</section>\n")
		return err
	})
	return layout.Base(data.PageData, content)
}

func spectatorNotice() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p id="spectator-notice">You are watching this game.</p>`+"\n")
		return err
	})
}
