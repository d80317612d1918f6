package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/pegsolitaire-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeInvalidTarget   = "INVALID_TARGET"
	CodeInvalidSource   = "INVALID_SOURCE"
	CodeNotAJump        = "NOT_A_JUMP"
	CodeNoPegToCapture  = "NO_PEG_TO_CAPTURE"
	CodeNoSelection     = "NO_SELECTION"
	CodeInvalidPosition = "INVALID_POSITION"
	CodeGameOver        = "GAME_OVER"
	CodeGameNotFound    = "GAME_NOT_FOUND"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeNoValidMoves    = "NO_VALID_MOVES"
	CodeInternalError   = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Move rule violations
	case errors.Is(err, model.ErrInvalidTarget):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeInvalidTarget, "Target hole must be on the board and empty"}}
	case errors.Is(err, model.ErrInvalidSource):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeInvalidSource, "Source hole must be on the board and hold a peg"}}
	case errors.Is(err, model.ErrNotAJump):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeNotAJump, "Source and target must be exactly one jump apart"}}
	case errors.Is(err, model.ErrNoPegToCapture):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeNoPegToCapture, "There is no peg to jump over"}}
	case errors.Is(err, model.ErrNoSelection):
		return &httpError{http.StatusConflict, APIError{CodeNoSelection, "Select a peg first"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, "Invalid board position"}}

	// Game errors
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrGameOver):
		return &httpError{http.StatusConflict, APIError{CodeGameOver, "Game is over; undo or restart to continue"}}
	case errors.Is(err, model.ErrInvalidToken):
		return &httpError{http.StatusForbidden, APIError{CodeForbidden, "Token does not control this game"}}
	case errors.Is(err, model.ErrNoValidMoves):
		return &httpError{http.StatusNotFound, APIError{CodeNoValidMoves, "No valid moves"}}
	case errors.Is(err, model.ErrUnknownHintStrategy):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Unknown hint strategy"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
