package response

import (
	"time"

	"github.com/mcoot/pegsolitaire-go/internal/model"
	"github.com/mcoot/pegsolitaire-go/internal/services/engine"
)

// Game represents a game in API responses
type Game struct {
	ID            string          `json:"id"`
	Status        string          `json:"status"`
	Message       string          `json:"message,omitempty"`
	Board         [][]string      `json:"board"`
	Selection     *model.Position `json:"selection,omitempty"`
	PegsRemaining int             `json:"pegs_remaining"`
	MoveCount     int             `json:"move_count"`
	CanUndo       bool            `json:"can_undo"`
	HasValidMoves bool            `json:"has_valid_moves"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// GameFromModel converts a model.Game
func GameFromModel(g *model.Game) Game {
	return Game{
		ID:            string(g.ID),
		Status:        string(g.Status),
		Message:       g.Message,
		Board:         BoardFromModel(g.Board),
		Selection:     g.Selection,
		PegsRemaining: g.Board.PegCount(),
		MoveCount:     g.MoveCount,
		CanUndo:       g.CanUndo(),
		HasValidMoves: engine.HasValidMoves(g.Board),
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// BoardFromModel converts a board to rows of "peg"/"empty"
func BoardFromModel(b *model.Board) [][]string {
	rows := make([][]string, len(b.Holes))
	for row := range b.Holes {
		rows[row] = make([]string, len(b.Holes[row]))
		for col, hole := range b.Holes[row] {
			rows[row][col] = string(hole)
		}
	}
	return rows
}

// CreateGameResponse is the response for creating a game
type CreateGameResponse struct {
	Game  Game   `json:"game"`
	Token string `json:"token"`
}

// MoveOutcome describes an applied jump
type MoveOutcome struct {
	Move          model.Move `json:"move"`
	Verdict       string     `json:"verdict"`
	Message       string     `json:"message,omitempty"`
	PegsRemaining int        `json:"pegs_remaining"`
}

// MoveOutcomeFromModel converts a model.MoveOutcome
func MoveOutcomeFromModel(o *model.MoveOutcome) MoveOutcome {
	return MoveOutcome{
		Move:          o.Move,
		Verdict:       string(o.Verdict),
		Message:       o.Message,
		PegsRemaining: o.PegsRemaining,
	}
}

// SelectResponse is the response for selecting a peg
type SelectResponse struct {
	Selected bool `json:"selected"`
	Game     Game `json:"game"`
}

// ClickResponse is the response for a click; Outcome is set when the click
// moved a peg
type ClickResponse struct {
	Moved   bool         `json:"moved"`
	Outcome *MoveOutcome `json:"outcome,omitempty"`
	Game    Game         `json:"game"`
}

// MoveResponse is the response for an explicit jump
type MoveResponse struct {
	Outcome MoveOutcome `json:"outcome"`
	Game    Game        `json:"game"`
}

// MovesResponse lists the legal jumps on the board
type MovesResponse struct {
	Moves []model.Move `json:"moves"`
}

// UndoResponse is the response for undo
type UndoResponse struct {
	Undone bool `json:"undone"`
	Game   Game `json:"game"`
}

// HintResponse is the response for a hint
type HintResponse struct {
	Move     model.Move `json:"move"`
	Strategy string     `json:"strategy"`
}

// HealthResponse is the response for the health check
type HealthResponse struct {
	Status string `json:"status"`
}
