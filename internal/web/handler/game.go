package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/pegsolitaire-go/internal/model"
	"github.com/mcoot/pegsolitaire-go/internal/services/game"
	"github.com/mcoot/pegsolitaire-go/internal/web/middleware"
	"github.com/mcoot/pegsolitaire-go/internal/web/sse"
	"github.com/mcoot/pegsolitaire-go/internal/web/templates/layout"
	"github.com/mcoot/pegsolitaire-go/internal/web/templates/pages"
)

// GameHandler handles game pages and actions
type GameHandler struct {
	gameController *game.Controller
	hubManager     *sse.HubManager
	broadcaster    *sse.Broadcaster
	logger         *slog.Logger
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(gameController *game.Controller, hubManager *sse.HubManager, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		hubManager:     hubManager,
		broadcaster:    sse.NewBroadcaster(hubManager, logger),
		logger:         logger,
	}
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

// Create starts a new game and hands the control token to the browser
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	g, token, err := h.gameController.CreateGame(r.Context())
	if err != nil {
		h.logger.Error("failed to create game", slog.Any("error", err))
		middleware.SetFlash(w, middleware.FlashError, "Could not start a new game")
		redirect(w, r, "/")
		return
	}

	middleware.SetGameToken(w, g.ID, token)
	redirect(w, r, middleware.GamePath(g.ID))
}

// View renders the game page
func (h *GameHandler) View(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.GetGame(r.Context(), gameID(r))
	if err != nil {
		middleware.SetFlash(w, middleware.FlashError, friendlyError(err))
		redirect(w, r, "/")
		return
	}

	data := pages.GameData{
		PageData: layout.PageData{
			Title: "Game " + string(g.ID),
			Flash: middleware.GetFlash(r.Context()),
		},
		Game:       g,
		CanControl: middleware.GetGameToken(r.Context()) != "",
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Game(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Click handles a click on a hole: select a peg or move the selection
func (h *GameHandler) Click(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	pos, err := formPosition(r, "row", "col")
	if err != nil {
		h.fail(w, r, id, err)
		return
	}

	g, outcome, err := h.gameController.Click(r.Context(), id, middleware.GetGameToken(r.Context()), pos)
	if err != nil {
		h.fail(w, r, id, err)
		return
	}

	h.broadcaster.BroadcastGameUpdate(r.Context(), g)
	if outcome != nil && outcome.Message != "" {
		middleware.SetFlash(w, verdictFlashType(outcome.Verdict), outcome.Message)
	}
	redirect(w, r, middleware.GamePath(id))
}

// Move handles the explicit from/to move form
func (h *GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	from, err := formPosition(r, "from_row", "from_col")
	if err != nil {
		h.fail(w, r, id, err)
		return
	}
	to, err := formPosition(r, "to_row", "to_col")
	if err != nil {
		h.fail(w, r, id, err)
		return
	}

	g, outcome, err := h.gameController.AttemptMove(r.Context(), id, middleware.GetGameToken(r.Context()), from, to)
	if err != nil {
		h.fail(w, r, id, err)
		return
	}

	h.broadcaster.BroadcastGameUpdate(r.Context(), g)
	if outcome.Message != "" {
		middleware.SetFlash(w, verdictFlashType(outcome.Verdict), outcome.Message)
	}
	redirect(w, r, middleware.GamePath(id))
}

// Undo takes back the last move
func (h *GameHandler) Undo(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	g, undone, err := h.gameController.Undo(r.Context(), id, middleware.GetGameToken(r.Context()))
	if err != nil {
		h.fail(w, r, id, err)
		return
	}

	if undone {
		h.broadcaster.BroadcastGameUpdate(r.Context(), g)
	} else {
		middleware.SetFlash(w, middleware.FlashInfo, "Nothing to undo")
	}
	redirect(w, r, middleware.GamePath(id))
}

// Restart resets the board
func (h *GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	g, err := h.gameController.Restart(r.Context(), id, middleware.GetGameToken(r.Context()))
	if err != nil {
		h.fail(w, r, id, err)
		return
	}

	h.broadcaster.BroadcastGameUpdate(r.Context(), g)
	middleware.SetFlash(w, middleware.FlashInfo, "Board reset")
	redirect(w, r, middleware.GamePath(id))
}

// Hint flashes a suggested jump
func (h *GameHandler) Hint(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	strategy := r.FormValue("strategy")

	move, err := h.gameController.Hint(r.Context(), id, middleware.GetGameToken(r.Context()), strategy)
	if err != nil {
		h.fail(w, r, id, err)
		return
	}

	middleware.SetFlash(w, middleware.FlashInfo, fmt.Sprintf("Hint: jump (%d,%d) to (%d,%d)",
		move.From.Row, move.From.Col, move.To.Row, move.To.Col))
	redirect(w, r, middleware.GamePath(id))
}

// Delete removes the game and sends watchers home
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	if err := h.gameController.DeleteGame(r.Context(), id, middleware.GetGameToken(r.Context())); err != nil {
		h.fail(w, r, id, err)
		return
	}

	h.broadcaster.BroadcastGameDeleted(id)
	middleware.ClearGameToken(w, id)
	middleware.SetFlash(w, middleware.FlashInfo, "Game deleted")
	redirect(w, r, "/")
}

// Events handles the SSE event stream for a game
func (h *GameHandler) Events(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	if _, err := h.gameController.GetGame(r.Context(), id); err != nil {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	hub := h.hubManager.GetOrCreateHub(id)
	sse.ServeSSE(w, r, hub, r.RemoteAddr)
}

// fail flashes a readable error and sends the browser back to the game, or
// home if the game is gone
func (h *GameHandler) fail(w http.ResponseWriter, r *http.Request, id model.GameID, err error) {
	middleware.SetFlash(w, middleware.FlashError, friendlyError(err))
	if errors.Is(err, model.ErrGameNotFound) {
		redirect(w, r, "/")
		return
	}
	redirect(w, r, middleware.GamePath(id))
}

// redirect uses HX-Redirect for HTMX requests and a 303 otherwise
func redirect(w http.ResponseWriter, r *http.Request, url string) {
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", url)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// formPosition parses a row/col pair from the submitted form
func formPosition(r *http.Request, rowField, colField string) (model.Position, error) {
	row, err := strconv.Atoi(r.FormValue(rowField))
	if err != nil {
		return model.Position{}, model.ErrInvalidPosition
	}
	col, err := strconv.Atoi(r.FormValue(colField))
	if err != nil {
		return model.Position{}, model.ErrInvalidPosition
	}
	return model.Position{Row: row, Col: col}, nil
}

func verdictFlashType(v model.Verdict) string {
	if v == model.VerdictWin {
		return middleware.FlashSuccess
	}
	return middleware.FlashError
}

// friendlyError turns a domain error into a message for the flash banner
func friendlyError(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidTarget):
		return "You can only jump into an empty hole."
	case errors.Is(err, model.ErrInvalidSource):
		return "There is no peg there to move."
	case errors.Is(err, model.ErrNotAJump):
		return "A peg must jump exactly two holes in a straight line."
	case errors.Is(err, model.ErrNoPegToCapture):
		return "There is no peg to jump over."
	case errors.Is(err, model.ErrNoSelection):
		return "Select a peg first."
	case errors.Is(err, model.ErrInvalidPosition):
		return "That is not a hole on the board."
	case errors.Is(err, model.ErrGameOver):
		return "The game is over. Undo or restart to keep playing."
	case errors.Is(err, model.ErrInvalidToken):
		return "Only the player who started this game can do that."
	case errors.Is(err, model.ErrGameNotFound):
		return "Game not found"
	case errors.Is(err, model.ErrNoValidMoves):
		return "There are no valid moves left."
	case errors.Is(err, model.ErrUnknownHintStrategy):
		return "Unknown hint strategy."
	default:
		return "Something went wrong. Please try again."
	}
}
