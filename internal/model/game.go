package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameStatus represents the current phase of a game
type GameStatus string

const (
	GameStatusPlaying GameStatus = "playing" // Moves are accepted
	GameStatusWon     GameStatus = "won"     // One peg left on the center hole
	GameStatusLost    GameStatus = "lost"    // One peg left elsewhere, or no jumps left
)

// IsTerminal returns true once the game has been won or lost
func (s GameStatus) IsTerminal() bool {
	return s == GameStatusWon || s == GameStatusLost
}

// GameState is the state owned by the rules engine
type GameState struct {
	Board     *Board     `json:"board"`
	Selection *Position  `json:"selection,omitempty"` // Click-mode selection only
	History   []*Board   `json:"history"`             // History[0] is the starting board
	Status    GameStatus `json:"status"`
	Message   string     `json:"message,omitempty"`
}

// HasSelection returns true if a peg is currently selected
func (s *GameState) HasSelection() bool {
	return s.Selection != nil
}

// IsSelected returns true if pos is the current selection
func (s *GameState) IsSelected(pos Position) bool {
	return s.Selection != nil && *s.Selection == pos
}

// CanUndo returns true if there is a move to take back
func (s *GameState) CanUndo() bool {
	return len(s.History) > 1
}

// Clone returns a deep copy of the state
func (s *GameState) Clone() GameState {
	out := GameState{
		Status:  s.Status,
		Message: s.Message,
	}
	if s.Board != nil {
		out.Board = s.Board.Clone()
	}
	if s.Selection != nil {
		sel := *s.Selection
		out.Selection = &sel
	}
	if s.History != nil {
		out.History = make([]*Board, len(s.History))
		for i, snapshot := range s.History {
			out.History[i] = snapshot.Clone()
		}
	}
	return out
}

// Game is a single persisted play session
type Game struct {
	ID GameID `json:"id"`
	GameState

	// TokenHash is the bcrypt hash of the control token issued at creation
	TokenHash string `json:"token_hash"`

	MoveCount int       `json:"move_count"` // Moves applied since the last restart, net of undos
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	out := *g
	out.GameState = g.GameState.Clone()
	return &out
}
