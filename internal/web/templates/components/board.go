package components

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/pegsolitaire-go/internal/model"
)

// Board renders the triangular board. When controllable is false the holes
// are rendered read-only for spectators.
func Board(game *model.Game, controllable bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		id := templ.EscapeString(string(game.ID))

		fmt.Fprintf(&sb, `<div id="game-board" class="board" data-game-id="%s">`, id)
		sb.WriteString("\n")
		for row := range game.Board.Holes {
			fmt.Fprintf(&sb, `<div class="board-row" data-row="%d">`, row)
			for col := range game.Board.Holes[row] {
				pos := model.Position{Row: row, Col: col}
				writeHole(&sb, id, pos, holeClass(game, pos), controllable)
			}
			sb.WriteString("</div>\n")
		}
		sb.WriteString("</div>\n")

		_, err := io.WriteString(w, sb.String())
		return err
	})
}

// holeClass returns the CSS classes for a hole: "hole", then "peg" or
// "empty", then "selected" for the click-mode selection
func holeClass(game *model.Game, pos model.Position) string {
	class := "hole " + string(game.Board.Get(pos))
	if game.IsSelected(pos) {
		class += " selected"
	}
	return class
}

func writeHole(sb *strings.Builder, id string, pos model.Position, class string, controllable bool) {
	row, col := strconv.Itoa(pos.Row), strconv.Itoa(pos.Col)
	if !controllable {
		fmt.Fprintf(sb, `<span class="%s" data-row="%s" data-col="%s"></span>`, class, row, col)
		return
	}
	fmt.Fprintf(sb, `<form method="post" action="/games/%s/click" class="hole-form">`, id)
	fmt.Fprintf(sb, `<input type="hidden" name="row" value="%s"><input type="hidden" name="col" value="%s">`, row, col)
	fmt.Fprintf(sb, `<button type="submit" class="%s" data-row="%s" data-col="%s" aria-label="hole %s,%s"></button>`,
		class, row, col, row, col)
	sb.WriteString("</form>")
}

// GameStatus renders the status panel with the terminal message. Callers
// place it inside the #game-status container.
func GameStatus(game *model.Game) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString(`<div class="status">` + "\n")
		fmt.Fprintf(&sb, `<span class="status-state" data-status="%s">%s</span>`+"\n",
			templ.EscapeString(string(game.Status)), statusLabel(game.Status))
		fmt.Fprintf(&sb, `<span id="pegs-remaining">%d</span> pegs remaining, `, game.Board.PegCount())
		fmt.Fprintf(&sb, `<span id="move-count">%d</span> moves`+"\n", game.MoveCount)
		fmt.Fprintf(&sb, `<p id="message">%s</p>`+"\n", templ.EscapeString(game.Message))
		sb.WriteString("</div>\n")

		_, err := io.WriteString(w, sb.String())
		return err
	})
}

func statusLabel(status model.GameStatus) string {
	switch status {
	case model.GameStatusWon:
		return "Won"
	case model.GameStatusLost:
		return "Lost"
	default:
		return "Playing"
	}
}

// MoveForm renders the explicit from/to move form used by drag-and-drop
func MoveForm(game *model.Game) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		id := templ.EscapeString(string(game.ID))
		_, err := io.WriteString(w, `<form id="move-form" method="post" action="/games/`+id+`/move">
<input type="number" name="from_row" min="0" required> <input type="number" name="from_col" min="0" required>
<span>to</span>
<input type="number" name="to_row" min="0" required> <input type="number" name="to_col" min="0" required>
<button type="submit">Move</button>
</form>
`)
		return err
	})
}

// GameControls renders the undo, restart, hint and delete buttons
func GameControls(game *model.Game) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		id := templ.EscapeString(string(game.ID))
		var sb strings.Builder
		sb.WriteString(`<div id="game-controls" class="controls">` + "\n")
		undoAttr := ""
		if !game.CanUndo() {
			undoAttr = " disabled"
		}
		fmt.Fprintf(&sb, `<form method="post" action="/games/%s/undo"><button type="submit" id="undo-button"%s>Undo</button></form>`+"\n", id, undoAttr)
		fmt.Fprintf(&sb, `<form method="post" action="/games/%s/restart"><button type="submit" id="restart-button">Restart</button></form>`+"\n", id)
		if !game.Status.IsTerminal() {
			fmt.Fprintf(&sb, `<form method="post" action="/games/%s/hint"><button type="submit" id="hint-button">Hint</button></form>`+"\n", id)
		}
		fmt.Fprintf(&sb, `<form method="post" action="/games/%s/delete"><button type="submit" id="delete-button">Delete</button></form>`+"\n", id)
		sb.WriteString("</div>\n")

		_, err := io.WriteString(w, sb.String())
		return err
	})
}
