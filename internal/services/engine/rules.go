package engine

import "github.com/mcoot/pegsolitaire-go/internal/model"

// ValidateMove checks a move against the board and returns the position of
// the peg it captures. Checks run target, source, geometry, capture.
func ValidateMove(board *model.Board, move model.Move) (model.Position, error) {
	if !board.IsEmpty(move.To) {
		return model.Position{}, model.ErrInvalidTarget
	}
	if !board.HasPeg(move.From) {
		return model.Position{}, model.ErrInvalidSource
	}
	mid, ok := move.Midpoint()
	if !ok || !board.IsValidPosition(mid) {
		return model.Position{}, model.ErrNotAJump
	}
	if !board.HasPeg(mid) {
		return model.Position{}, model.ErrNoPegToCapture
	}
	return mid, nil
}

// Evaluate returns the terminal verdict for a board and the message to show
func Evaluate(board *model.Board) (model.Verdict, string) {
	pegs := board.Pegs()
	switch {
	case len(pegs) == 1 && pegs[0] == model.CenterHole:
		return model.VerdictWin, model.MessageWin
	case len(pegs) == 1:
		return model.VerdictLose, model.MessageLose
	case len(pegs) > 1 && !HasValidMoves(board):
		return model.VerdictLose, model.MessageNoMoves
	default:
		return model.VerdictNone, ""
	}
}

// HasValidMoves reports whether any peg on the board has a legal jump. It
// does not modify the board.
func HasValidMoves(board *model.Board) bool {
	for row := range board.Holes {
		for col := range board.Holes[row] {
			from := model.Position{Row: row, Col: col}
			if !board.HasPeg(from) {
				continue
			}
			for _, dir := range model.JumpDirections {
				if canJump(board, from, dir) {
					return true
				}
			}
		}
	}
	return false
}

// ValidMoves lists every legal jump, ordered by source row, source column,
// then direction
func ValidMoves(board *model.Board) []model.Move {
	var moves []model.Move
	for row := range board.Holes {
		for col := range board.Holes[row] {
			from := model.Position{Row: row, Col: col}
			if !board.HasPeg(from) {
				continue
			}
			for _, dir := range model.JumpDirections {
				if canJump(board, from, dir) {
					moves = append(moves, model.Move{From: from, To: from.Add(dir)})
				}
			}
		}
	}
	return moves
}

func canJump(board *model.Board, from, dir model.Position) bool {
	to := from.Add(dir)
	mid := from.Add(model.Position{Row: dir.Row / 2, Col: dir.Col / 2})
	return board.IsEmpty(to) && board.HasPeg(mid)
}
