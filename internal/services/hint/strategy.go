package hint

import (
	"github.com/mcoot/pegsolitaire-go/internal/dependencies/random"
	"github.com/mcoot/pegsolitaire-go/internal/model"
)

// Strategy decides which legal jump to suggest
type Strategy interface {
	// ChooseMove picks a move from the board. ok is false when no jump exists.
	ChooseMove(board *model.Board) (move model.Move, ok bool)
}

// Strategies returns the built-in strategies keyed by name
func Strategies(rnd random.Random) map[string]Strategy {
	return map[string]Strategy{
		model.HintStrategyRandom: NewRandomStrategy(rnd),
		model.HintStrategyFirst:  NewFirstStrategy(),
	}
}
