package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/pegsolitaire-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
	errW   io.Writer
}

// NewOutput creates a new Output formatter writing to w, with errors to errW
func NewOutput(format string, w, errW io.Writer) *Output {
	return &Output{format: format, w: w, errW: errW}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error. In JSON mode API failures keep their status
// and code.
func (o *Output) PrintError(err error) {
	if o.format != "json" {
		_, _ = fmt.Fprintf(o.errW, "Error: %s\n", err)
		return
	}

	body := map[string]any{"message": err.Error()}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		body["status"] = reqErr.Status
		if reqErr.Code != "" {
			body["code"] = reqErr.Code
			body["message"] = reqErr.Message
		}
	}
	data, _ := json.Marshal(map[string]any{"error": body})
	_, _ = fmt.Fprintln(o.errW, string(data))
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Game:
		o.printGame(v)
	case CreateGameResult:
		o.printGame(v.Game)
		o.printf("Token: %s\n", v.Token)
	case MoveResult:
		o.printOutcome(v.Outcome)
		o.printGame(v.Game)
	case SelectResult:
		if v.Selected {
			o.printf("Peg selected\n")
		} else {
			o.printf("No peg there to select\n")
		}
		o.printGame(v.Game)
	case ClickResult:
		if v.Outcome != nil {
			o.printOutcome(*v.Outcome)
		}
		o.printGame(v.Game)
	case UndoResult:
		if !v.Undone {
			o.printf("Nothing to undo\n")
		}
		o.printGame(v.Game)
	case MovesResult:
		o.printMoves(v)
	case HintResult:
		o.printf("Hint (%s): %s\n", model.HintStrategyDisplayName(v.Strategy), v.Move)
	case HealthResult:
		o.printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(o.w, format, args...)
}

// Position response type (matches API)
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Move response type
type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

func (m Move) String() string {
	return m.From.String() + " -> " + m.To.String()
}

// Game response type
type Game struct {
	ID            string     `json:"id"`
	Status        string     `json:"status"`
	Message       string     `json:"message,omitempty"`
	Board         [][]string `json:"board"`
	Selection     *Position  `json:"selection,omitempty"`
	PegsRemaining int        `json:"pegs_remaining"`
	MoveCount     int        `json:"move_count"`
	CanUndo       bool       `json:"can_undo"`
	HasValidMoves bool       `json:"has_valid_moves"`
}

// CreateGameResult combines a new game and its control token
type CreateGameResult struct {
	Game  Game   `json:"game"`
	Token string `json:"token"`
}

// MoveOutcome response type
type MoveOutcome struct {
	Move          Move   `json:"move"`
	Verdict       string `json:"verdict"`
	Message       string `json:"message,omitempty"`
	PegsRemaining int    `json:"pegs_remaining"`
}

// MoveResult response type
type MoveResult struct {
	Outcome MoveOutcome `json:"outcome"`
	Game    Game        `json:"game"`
}

// SelectResult response type
type SelectResult struct {
	Selected bool `json:"selected"`
	Game     Game `json:"game"`
}

// ClickResult response type
type ClickResult struct {
	Moved   bool         `json:"moved"`
	Outcome *MoveOutcome `json:"outcome,omitempty"`
	Game    Game         `json:"game"`
}

// UndoResult response type
type UndoResult struct {
	Undone bool `json:"undone"`
	Game   Game `json:"game"`
}

// MovesResult response type
type MovesResult struct {
	Moves []Move `json:"moves"`
}

// HintResult response type
type HintResult struct {
	Move     Move   `json:"move"`
	Strategy string `json:"strategy"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGame(g Game) {
	if g.ID != "" {
		o.printf("Game: %s\n", g.ID)
	}
	o.printf("Status: %s\n", g.Status)
	o.printf("Pegs: %d  Moves: %d\n", g.PegsRemaining, g.MoveCount)
	o.printBoard(g.Board, g.Selection)
	if g.Message != "" {
		o.printf("%s\n", g.Message)
	}
}

func (o *Output) printOutcome(m MoveOutcome) {
	o.printf("Jumped %s, %d pegs left\n", m.Move, m.PegsRemaining)
}

func (o *Output) printMoves(m MovesResult) {
	if len(m.Moves) == 0 {
		o.printf("No valid moves\n")
		return
	}
	o.printf("Valid moves (%d):\n", len(m.Moves))
	for _, mv := range m.Moves {
		o.printf("  %s\n", mv)
	}
}

// printBoard draws the triangle with the apex at the top. Pegs are "o",
// empty holes "." and the selected peg "@".
func (o *Output) printBoard(board [][]string, selection *Position) {
	rows := len(board)
	for row, holes := range board {
		cells := make([]string, len(holes))
		for col, hole := range holes {
			switch {
			case selection != nil && selection.Row == row && selection.Col == col:
				cells[col] = "@"
			case hole == "peg":
				cells[col] = "o"
			default:
				cells[col] = "."
			}
		}
		o.printf("%2d %s%s\n", row, strings.Repeat(" ", rows-1-row), strings.Join(cells, " "))
	}
}
