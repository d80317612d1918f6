package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pegsolitaire-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.GameTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func newTestGame(id model.GameID) *model.Game {
	board := model.NewBoard()
	return &model.Game{
		ID: id,
		GameState: model.GameState{
			Board:   board,
			History: []*model.Board{board.Clone()},
			Status:  model.GameStatusPlaying,
		},
		TokenHash: "hash",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		UpdatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	game := newTestGame("game-1")
	selected := model.Position{Row: 2, Col: 1}
	game.Selection = &selected
	game.MoveCount = 3

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.True(game.Board.Equal(retrieved.Board))
	s.Require().Len(retrieved.History, 1)
	s.True(game.History[0].Equal(retrieved.History[0]))
	s.Equal(&selected, retrieved.Selection)
	s.Equal(model.GameStatusPlaying, retrieved.Status)
	s.Equal(3, retrieved.MoveCount)
	s.Equal("hash", retrieved.TokenHash)
	s.True(game.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *StorageSuite) TestSaveAndGetTerminalGame() {
	game := newTestGame("game-1")
	game.Board = model.NewBoardWithPegs(model.CenterHole)
	game.Status = model.GameStatusWon
	game.Message = model.MessageWin

	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(model.GameStatusWon, retrieved.Status)
	s.Equal(model.MessageWin, retrieved.Message)
	s.Equal(1, retrieved.Board.PegCount())
	s.Nil(retrieved.Selection)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestGameExists() {
	exists, err := s.storage.GameExists(s.ctx, "game-1")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveGame(s.ctx, newTestGame("game-1"))

	exists, err = s.storage.GameExists(s.ctx, "game-1")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestDeleteGame() {
	_ = s.storage.SaveGame(s.ctx, newTestGame("game-1"))

	err := s.storage.DeleteGame(s.ctx, "game-1")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestGameTTL() {
	game := newTestGame("game-1")
	_ = s.storage.SaveGame(s.ctx, game)

	ttl := s.mini.TTL(gameKey(game.ID))
	s.True(ttl > 0, "Game should have TTL")
}

func (s *StorageSuite) TestGameExpires() {
	game := newTestGame("game-1")
	_ = s.storage.SaveGame(s.ctx, game)

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestGameKeyFormat() {
	s.Equal("pegsol:game:abc", gameKey("abc"))
}
