package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pegsolitaire-go/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func pos(row, col int) model.Position {
	return model.Position{Row: row, Col: col}
}

func (s *IntegrationSuite) newGame() (*model.Game, string) {
	s.app.MockRandom.QueueString("token-1", "GAME01")
	game, token, err := s.app.GameController.CreateGame(s.ctx)
	s.Require().NoError(err)
	return game, token
}

// Test: play a few moves, take one back, then restart
func (s *IntegrationSuite) TestMoveUndoRestartFlow() {
	game, token := s.newGame()
	s.Equal(model.GameID("GAME01"), game.ID)

	moves := []model.Move{
		{From: pos(2, 2), To: pos(4, 2)},
		{From: pos(5, 2), To: pos(3, 2)},
		{From: pos(4, 4), To: pos(4, 2)},
	}
	for i, m := range moves {
		s.app.MockClock.Advance(time.Second)
		updated, outcome, err := s.app.GameController.AttemptMove(s.ctx, game.ID, token, m.From, m.To)
		s.Require().NoError(err, "move %d", i)
		s.Equal(model.VerdictNone, outcome.Verdict)
		s.Equal(34-i, updated.Board.PegCount())
		s.Equal(i+1, updated.MoveCount)
	}

	stored, err := s.app.GameController.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Len(stored.History, 4)
	s.Equal(s.app.MockClock.Now(), stored.UpdatedAt)

	updated, undone, err := s.app.GameController.Undo(s.ctx, game.ID, token)
	s.Require().NoError(err)
	s.True(undone)
	s.Equal(2, updated.MoveCount)
	s.True(updated.Board.Equal(stored.History[2]))

	restarted, err := s.app.GameController.Restart(s.ctx, game.ID, token)
	s.Require().NoError(err)
	s.True(restarted.Board.Equal(model.NewBoard()))
	s.Len(restarted.History, 1)
}

// Test: following hints until the game ends always reaches a terminal state
func (s *IntegrationSuite) TestPlayingHintsReachesTerminalState() {
	game, token := s.newGame()

	for i := 0; i < 34; i++ {
		move, err := s.app.GameController.Hint(s.ctx, game.ID, token, model.HintStrategyFirst)
		if err != nil {
			s.ErrorIs(err, model.ErrGameOver)
			break
		}
		_, _, err = s.app.GameController.AttemptMove(s.ctx, game.ID, token, move.From, move.To)
		s.Require().NoError(err)
	}

	final, err := s.app.GameController.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.True(final.Status.IsTerminal())
	s.NotEmpty(final.Message)
	if final.Status == model.GameStatusWon {
		s.Equal(1, final.Board.PegCount())
		s.True(final.Board.HasPeg(model.CenterHole))
	}
}

// Test: a game driven by clicks behaves like explicit moves
func (s *IntegrationSuite) TestClickFlow() {
	game, token := s.newGame()

	updated, outcome, err := s.app.GameController.Click(s.ctx, game.ID, token, pos(2, 0))
	s.Require().NoError(err)
	s.Nil(outcome)
	s.True(updated.IsSelected(pos(2, 0)))

	// Clicking another peg moves the selection
	updated, outcome, err = s.app.GameController.Click(s.ctx, game.ID, token, pos(6, 2))
	s.Require().NoError(err)
	s.Nil(outcome)
	s.True(updated.IsSelected(pos(6, 2)))

	updated, outcome, err = s.app.GameController.Click(s.ctx, game.ID, token, pos(4, 2))
	s.Require().NoError(err)
	s.Require().NotNil(outcome)
	s.Equal(model.HoleEmpty, updated.Board.Get(pos(5, 2)))
	s.False(updated.HasSelection())
}

// Test: deleting a game removes it from storage and closes its watchers
func (s *IntegrationSuite) TestDeleteGameRemovesEverything() {
	game, token := s.newGame()
	hub := s.app.HubManager.GetOrCreateHub(game.ID)
	s.NotNil(hub)

	s.Require().NoError(s.app.GameController.DeleteGame(s.ctx, game.ID, token))
	s.app.HubManager.RemoveHub(game.ID)

	exists, err := s.app.Storage.GameExists(s.ctx, game.ID)
	s.Require().NoError(err)
	s.False(exists)
	s.Nil(s.app.HubManager.GetHub(game.ID))
}
