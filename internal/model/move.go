package model

// JumpDirections are the six jump vectors on the triangular board: along a
// row, along a column, and along the diagonal where row and column change
// together.
var JumpDirections = [6]Position{
	{Row: -2, Col: 0},
	{Row: 2, Col: 0},
	{Row: 0, Col: -2},
	{Row: 0, Col: 2},
	{Row: -2, Col: -2},
	{Row: 2, Col: 2},
}

// Move is a candidate jump from one hole to another
type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// IsJumpVector returns true if d is one of JumpDirections
func IsJumpVector(d Position) bool {
	for _, dir := range JumpDirections {
		if dir == d {
			return true
		}
	}
	return false
}

// Midpoint returns the hole jumped over by the move. ok is false when From
// and To are not exactly one jump apart.
func (m Move) Midpoint() (Position, bool) {
	d := m.To.Sub(m.From)
	if !IsJumpVector(d) {
		return Position{}, false
	}
	return m.From.Add(Position{Row: d.Row / 2, Col: d.Col / 2}), true
}

// Verdict is the terminal-state evaluation after a move
type Verdict string

const (
	VerdictNone Verdict = "none"
	VerdictWin  Verdict = "win"
	VerdictLose Verdict = "lose"
)

// Terminal messages shown by the presentation layer
const (
	MessageWin     = "You win!"
	MessageLose    = "You lose!"
	MessageNoMoves = "No more valid moves. You lose!"
)

// MoveOutcome is the result of a successfully applied move
type MoveOutcome struct {
	Move          Move
	Board         *Board // Snapshot after the move
	Verdict       Verdict
	Message       string // Empty unless Verdict is terminal
	PegsRemaining int
}
