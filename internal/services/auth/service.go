package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/pegsolitaire-go/internal/dependencies/random"
	"github.com/mcoot/pegsolitaire-go/internal/model"
)

const (
	tokenLength   = 32
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// ErrEmptyToken is returned when no token was presented
var ErrEmptyToken = errors.New("empty token")

// Config holds configuration for the auth service
type Config struct {
	// HashCost is the bcrypt cost used when hashing control tokens
	HashCost int
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		HashCost: bcrypt.DefaultCost,
	}
}

// Service issues and verifies game control tokens. A token is handed to
// whoever creates a game; only its bcrypt hash is stored with the game.
type Service struct {
	random   random.Random
	hashCost int
}

// New creates a new AuthService
func New(rnd random.Random, cfg Config) *Service {
	if cfg.HashCost == 0 {
		cfg.HashCost = DefaultConfig().HashCost
	}
	return &Service{
		random:   rnd,
		hashCost: cfg.HashCost,
	}
}

// IssueToken generates a new control token and its hash
func (s *Service) IssueToken() (token, hash string, err error) {
	token = s.random.String(tokenLength, tokenAlphabet)
	if token == "" {
		return "", "", ErrEmptyToken
	}

	h, err := bcrypt.GenerateFromPassword([]byte(token), s.hashCost)
	if err != nil {
		return "", "", err
	}
	return token, string(h), nil
}

// VerifyToken checks a presented token against the stored hash
func (s *Service) VerifyToken(hash, token string) error {
	if token == "" {
		return model.ErrInvalidToken
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)); err != nil {
		return model.ErrInvalidToken
	}
	return nil
}
