package engine

import (
	"log/slog"

	"github.com/mcoot/pegsolitaire-go/internal/model"
)

// Service applies the peg solitaire rules to a GameState. It holds no game
// state of its own; every operation works on the state passed in.
type Service struct {
	logger *slog.Logger
}

// New creates a new engine Service
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// NewState creates a GameState in the starting configuration
func (s *Service) NewState() model.GameState {
	var state model.GameState
	s.Reset(&state)
	return state
}

// Reset rebuilds the board, clears the selection and seeds the history
func (s *Service) Reset(state *model.GameState) {
	board := model.NewBoard()
	state.Board = board
	state.Selection = nil
	state.History = []*model.Board{board.Clone()}
	state.Status = model.GameStatusPlaying
	state.Message = ""
}

// SelectPeg records pos as the selection if it holds a peg. Selecting an
// empty or off-board hole leaves the selection unchanged and returns false.
func (s *Service) SelectPeg(state *model.GameState, pos model.Position) bool {
	if !state.Board.HasPeg(pos) {
		return false
	}
	selected := pos
	state.Selection = &selected
	return true
}

// AttemptMove validates and applies the jump from -> to. On error the state
// is left untouched.
func (s *Service) AttemptMove(state *model.GameState, from, to model.Position) (*model.MoveOutcome, error) {
	move := model.Move{From: from, To: to}
	mid, err := ValidateMove(state.Board, move)
	if err != nil {
		return nil, err
	}

	state.Board.Set(from, model.HoleEmpty)
	state.Board.Set(mid, model.HoleEmpty)
	state.Board.Set(to, model.HolePeg)
	state.Selection = nil
	state.History = append(state.History, state.Board.Clone())

	verdict, message := Evaluate(state.Board)
	state.Status = statusFor(verdict)
	state.Message = message

	if verdict != model.VerdictNone {
		s.logger.Debug("terminal state reached",
			slog.String("verdict", string(verdict)),
			slog.Int("pegs", state.Board.PegCount()),
		)
	}

	return &model.MoveOutcome{
		Move:          move,
		Board:         state.Board.Clone(),
		Verdict:       verdict,
		Message:       message,
		PegsRemaining: state.Board.PegCount(),
	}, nil
}

// Click applies a click-to-select interaction at pos. Clicking a peg selects
// it and returns a nil outcome; clicking an empty hole moves the selected peg
// there.
func (s *Service) Click(state *model.GameState, pos model.Position) (*model.MoveOutcome, error) {
	if !state.Board.IsValidPosition(pos) {
		return nil, model.ErrInvalidPosition
	}
	if state.Board.HasPeg(pos) {
		s.SelectPeg(state, pos)
		return nil, nil
	}
	if state.Selection == nil {
		return nil, model.ErrNoSelection
	}
	return s.AttemptMove(state, *state.Selection, pos)
}

// Undo restores the board from before the last move. At the starting board
// it does nothing and returns false.
func (s *Service) Undo(state *model.GameState) bool {
	if len(state.History) <= 1 {
		return false
	}
	state.History = state.History[:len(state.History)-1]
	state.Board = state.History[len(state.History)-1].Clone()
	state.Selection = nil
	state.Status = model.GameStatusPlaying
	state.Message = ""
	return true
}

// HasValidMoves reports whether any peg on the board can jump
func (s *Service) HasValidMoves(board *model.Board) bool {
	return HasValidMoves(board)
}

// ValidMoves lists every legal jump on the board
func (s *Service) ValidMoves(board *model.Board) []model.Move {
	return ValidMoves(board)
}

func statusFor(v model.Verdict) model.GameStatus {
	switch v {
	case model.VerdictWin:
		return model.GameStatusWon
	case model.VerdictLose:
		return model.GameStatusLost
	default:
		return model.GameStatusPlaying
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	NewState() model.GameState
	Reset(state *model.GameState)
	SelectPeg(state *model.GameState, pos model.Position) bool
	AttemptMove(state *model.GameState, from, to model.Position) (*model.MoveOutcome, error)
	Click(state *model.GameState, pos model.Position) (*model.MoveOutcome, error)
	Undo(state *model.GameState) bool
	HasValidMoves(board *model.Board) bool
	ValidMoves(board *model.Board) []model.Move
}

var _ ServiceInterface = (*Service)(nil)
