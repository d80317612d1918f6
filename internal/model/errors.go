package model

import "errors"

// Common errors used across the application
var (
	// Move errors
	ErrInvalidTarget   = errors.New("target hole is off the board or occupied")
	ErrInvalidSource   = errors.New("source hole is off the board or has no peg")
	ErrNotAJump        = errors.New("source and target are not one jump apart")
	ErrNoPegToCapture  = errors.New("no peg to jump over")
	ErrNoSelection     = errors.New("no peg selected")
	ErrInvalidPosition = errors.New("invalid board position")

	// Game errors
	ErrGameNotFound        = errors.New("game not found")
	ErrGameOver            = errors.New("game is already over")
	ErrInvalidToken        = errors.New("invalid game token")
	ErrNoValidMoves        = errors.New("no valid moves")
	ErrUnknownHintStrategy = errors.New("unknown hint strategy")
)
