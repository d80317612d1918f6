package hint

import (
	"github.com/mcoot/pegsolitaire-go/internal/dependencies/random"
	"github.com/mcoot/pegsolitaire-go/internal/model"
	"github.com/mcoot/pegsolitaire-go/internal/services/engine"
)

// RandomStrategy picks uniformly among the legal jumps
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseMove returns a random legal jump
func (s *RandomStrategy) ChooseMove(board *model.Board) (model.Move, bool) {
	return random.Pick(s.random, engine.ValidMoves(board))
}

// FirstStrategy always suggests the first legal jump in scan order
type FirstStrategy struct{}

// NewFirstStrategy creates a new FirstStrategy
func NewFirstStrategy() *FirstStrategy {
	return &FirstStrategy{}
}

// ChooseMove returns the first legal jump
func (s *FirstStrategy) ChooseMove(board *model.Board) (model.Move, bool) {
	moves := engine.ValidMoves(board)
	if len(moves) == 0 {
		return model.Move{}, false
	}
	return moves[0], true
}
