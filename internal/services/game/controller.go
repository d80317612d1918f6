package game

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mcoot/pegsolitaire-go/internal/dependencies/clock"
	"github.com/mcoot/pegsolitaire-go/internal/dependencies/random"
	"github.com/mcoot/pegsolitaire-go/internal/model"
	"github.com/mcoot/pegsolitaire-go/internal/services/auth"
	"github.com/mcoot/pegsolitaire-go/internal/services/engine"
	"github.com/mcoot/pegsolitaire-go/internal/services/hint"
	"github.com/mcoot/pegsolitaire-go/internal/storage"
)

const (
	// GameIDAlphabet is the character set for generated game IDs
	GameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// GameIDLength is the length of generated game IDs
	GameIDLength = 12
)

// Controller manages persisted games and applies engine operations to them
type Controller struct {
	// mu serializes every load-mutate-save sequence
	mu sync.Mutex

	storage     storage.Storage
	engine      *engine.Service
	authService *auth.Service
	strategies  map[string]hint.Strategy
	clock       clock.Clock
	random      random.Random
	logger      *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	engineService *engine.Service,
	authService *auth.Service,
	strategies map[string]hint.Strategy,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:     storage,
		engine:      engineService,
		authService: authService,
		strategies:  strategies,
		clock:       clock,
		random:      random,
		logger:      logger,
	}
}

// CreateGame starts a new game and returns it with its control token
func (c *Controller) CreateGame(ctx context.Context) (*model.Game, string, error) {
	token, hash, err := c.authService.IssueToken()
	if err != nil {
		return nil, "", err
	}

	now := c.clock.Now()
	game := &model.Game{
		ID:        model.GameID(c.random.String(GameIDLength, GameIDAlphabet)),
		GameState: c.engine.NewState(),
		TokenHash: hash,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, "", err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("pegs", game.Board.PegCount()),
	)

	return game, token, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// ValidMoves lists the legal jumps in a game
func (c *Controller) ValidMoves(ctx context.Context, gameID model.GameID) ([]model.Move, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return c.engine.ValidMoves(game.Board), nil
}

// SelectPeg records a click-mode selection. It returns false when pos does
// not hold a peg.
func (c *Controller) SelectPeg(ctx context.Context, gameID model.GameID, token string, pos model.Position) (*model.Game, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.loadPlaying(ctx, gameID, token)
	if err != nil {
		return nil, false, err
	}

	if !c.engine.SelectPeg(&game.GameState, pos) {
		return game, false, nil
	}

	if err := c.save(ctx, game); err != nil {
		return nil, false, err
	}
	return game, true, nil
}

// AttemptMove applies the jump from -> to
func (c *Controller) AttemptMove(ctx context.Context, gameID model.GameID, token string, from, to model.Position) (*model.Game, *model.MoveOutcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.loadPlaying(ctx, gameID, token)
	if err != nil {
		return nil, nil, err
	}

	outcome, err := c.engine.AttemptMove(&game.GameState, from, to)
	if err != nil {
		return nil, nil, err
	}

	if err := c.recordMove(ctx, game, outcome); err != nil {
		return nil, nil, err
	}
	return game, outcome, nil
}

// Click applies a click-to-select interaction. The outcome is nil when the
// click only selected a peg.
func (c *Controller) Click(ctx context.Context, gameID model.GameID, token string, pos model.Position) (*model.Game, *model.MoveOutcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.loadPlaying(ctx, gameID, token)
	if err != nil {
		return nil, nil, err
	}

	outcome, err := c.engine.Click(&game.GameState, pos)
	if err != nil {
		return nil, nil, err
	}

	if outcome == nil {
		if err := c.save(ctx, game); err != nil {
			return nil, nil, err
		}
		return game, nil, nil
	}

	if err := c.recordMove(ctx, game, outcome); err != nil {
		return nil, nil, err
	}
	return game, outcome, nil
}

// Undo takes back the last move. Allowed after the game has ended.
func (c *Controller) Undo(ctx context.Context, gameID model.GameID, token string) (*model.Game, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.load(ctx, gameID, token)
	if err != nil {
		return nil, false, err
	}

	if !c.engine.Undo(&game.GameState) {
		return game, false, nil
	}
	game.MoveCount--

	if err := c.save(ctx, game); err != nil {
		return nil, false, err
	}

	c.logger.Info("move undone",
		slog.String("game_id", string(game.ID)),
		slog.Int("move_count", game.MoveCount),
	)
	return game, true, nil
}

// Restart resets the game to the starting board
func (c *Controller) Restart(ctx context.Context, gameID model.GameID, token string) (*model.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	game, err := c.load(ctx, gameID, token)
	if err != nil {
		return nil, err
	}

	c.engine.Reset(&game.GameState)
	game.MoveCount = 0

	if err := c.save(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game restarted", slog.String("game_id", string(game.ID)))
	return game, nil
}

// Hint suggests a legal jump using the named strategy
func (c *Controller) Hint(ctx context.Context, gameID model.GameID, token string, strategy string) (model.Move, error) {
	if strategy == "" {
		strategy = model.DefaultHintStrategy
	}
	chooser, ok := c.strategies[strategy]
	if !ok {
		return model.Move{}, model.ErrUnknownHintStrategy
	}

	game, err := c.loadPlaying(ctx, gameID, token)
	if err != nil {
		return model.Move{}, err
	}

	move, ok := chooser.ChooseMove(game.Board)
	if !ok {
		return model.Move{}, model.ErrNoValidMoves
	}
	return move, nil
}

// DeleteGame removes a game
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID, token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.load(ctx, gameID, token); err != nil {
		return err
	}

	if err := c.storage.DeleteGame(ctx, gameID); err != nil {
		return err
	}

	c.logger.Info("game deleted", slog.String("game_id", string(gameID)))
	return nil
}

// load retrieves a game and checks the control token
func (c *Controller) load(ctx context.Context, gameID model.GameID, token string) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if err := c.authService.VerifyToken(game.TokenHash, token); err != nil {
		c.logger.Warn("rejected game token", slog.String("game_id", string(gameID)))
		return nil, err
	}
	return game, nil
}

// loadPlaying is load plus the terminal lock: a won or lost game accepts
// only undo and restart
func (c *Controller) loadPlaying(ctx context.Context, gameID model.GameID, token string) (*model.Game, error) {
	game, err := c.load(ctx, gameID, token)
	if err != nil {
		return nil, err
	}
	if game.Status.IsTerminal() {
		return nil, model.ErrGameOver
	}
	return game, nil
}

func (c *Controller) recordMove(ctx context.Context, game *model.Game, outcome *model.MoveOutcome) error {
	game.MoveCount++
	if err := c.save(ctx, game); err != nil {
		return err
	}

	if outcome.Verdict != model.VerdictNone {
		c.logger.Info("game finished",
			slog.String("game_id", string(game.ID)),
			slog.String("verdict", string(outcome.Verdict)),
			slog.Int("pegs_remaining", outcome.PegsRemaining),
			slog.Int("move_count", game.MoveCount),
		)
	}
	return nil
}

func (c *Controller) save(ctx context.Context, game *model.Game) error {
	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}
