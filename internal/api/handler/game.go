package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/pegsolitaire-go/internal/api/middleware"
	"github.com/mcoot/pegsolitaire-go/internal/api/request"
	"github.com/mcoot/pegsolitaire-go/internal/api/response"
	"github.com/mcoot/pegsolitaire-go/internal/model"
	"github.com/mcoot/pegsolitaire-go/internal/services/game"
	"github.com/mcoot/pegsolitaire-go/internal/web/sse"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
	broadcaster    *sse.Broadcaster
}

// NewGameHandler creates a new game handler. hubManager may be nil, in which
// case no SSE updates are sent.
func NewGameHandler(gameController *game.Controller, hubManager *sse.HubManager, logger *slog.Logger) *GameHandler {
	var broadcaster *sse.Broadcaster
	if hubManager != nil {
		broadcaster = sse.NewBroadcaster(hubManager, logger)
	}
	return &GameHandler{
		gameController: gameController,
		broadcaster:    broadcaster,
	}
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

func (h *GameHandler) broadcast(ctx context.Context, g *model.Game) {
	if h.broadcaster != nil {
		h.broadcaster.BroadcastGameUpdate(ctx, g)
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	g, token, err := h.gameController.CreateGame(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, "/api/v1/games/"+string(g.ID), response.CreateGameResponse{
		Game:  response.GameFromModel(g),
		Token: token,
	})
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.GetGame(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	if err := h.gameController.DeleteGame(r.Context(), id, middleware.GetToken(r.Context())); err != nil {
		WriteError(w, err)
		return
	}

	if h.broadcaster != nil {
		h.broadcaster.BroadcastGameDeleted(id)
	}

	response.NoContent(w)
}

// Select handles POST /api/v1/games/{id}/select
func (h *GameHandler) Select(w http.ResponseWriter, r *http.Request) {
	pos, ok := decodePosition(w, r)
	if !ok {
		return
	}

	g, selected, err := h.gameController.SelectPeg(r.Context(), gameID(r), middleware.GetToken(r.Context()), pos)
	if err != nil {
		WriteError(w, err)
		return
	}

	if selected {
		h.broadcast(r.Context(), g)
	}

	response.JSON(w, http.StatusOK, response.SelectResponse{
		Selected: selected,
		Game:     response.GameFromModel(g),
	})
}

// Click handles POST /api/v1/games/{id}/click
func (h *GameHandler) Click(w http.ResponseWriter, r *http.Request) {
	pos, ok := decodePosition(w, r)
	if !ok {
		return
	}

	g, outcome, err := h.gameController.Click(r.Context(), gameID(r), middleware.GetToken(r.Context()), pos)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcast(r.Context(), g)

	resp := response.ClickResponse{
		Moved: outcome != nil,
		Game:  response.GameFromModel(g),
	}
	if outcome != nil {
		o := response.MoveOutcomeFromModel(outcome)
		resp.Outcome = &o
	}
	response.JSON(w, http.StatusOK, resp)
}

// Move handles POST /api/v1/games/{id}/moves
func (h *GameHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req request.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.From == nil || req.To == nil {
		WriteError(w, NewInvalidRequestError("from and to are required"))
		return
	}

	g, outcome, err := h.gameController.AttemptMove(r.Context(), gameID(r), middleware.GetToken(r.Context()), *req.From, *req.To)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcast(r.Context(), g)

	response.JSON(w, http.StatusOK, response.MoveResponse{
		Outcome: response.MoveOutcomeFromModel(outcome),
		Game:    response.GameFromModel(g),
	})
}

// ListMoves handles GET /api/v1/games/{id}/moves
func (h *GameHandler) ListMoves(w http.ResponseWriter, r *http.Request) {
	moves, err := h.gameController.ValidMoves(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	if moves == nil {
		moves = []model.Move{}
	}

	response.JSON(w, http.StatusOK, response.MovesResponse{Moves: moves})
}

// Undo handles POST /api/v1/games/{id}/undo
func (h *GameHandler) Undo(w http.ResponseWriter, r *http.Request) {
	g, undone, err := h.gameController.Undo(r.Context(), gameID(r), middleware.GetToken(r.Context()))
	if err != nil {
		WriteError(w, err)
		return
	}

	if undone {
		h.broadcast(r.Context(), g)
	}

	response.JSON(w, http.StatusOK, response.UndoResponse{
		Undone: undone,
		Game:   response.GameFromModel(g),
	})
}

// Restart handles POST /api/v1/games/{id}/restart
func (h *GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.Restart(r.Context(), gameID(r), middleware.GetToken(r.Context()))
	if err != nil {
		WriteError(w, err)
		return
	}

	h.broadcast(r.Context(), g)

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Hint handles GET /api/v1/games/{id}/hint?strategy=
func (h *GameHandler) Hint(w http.ResponseWriter, r *http.Request) {
	strategy := r.URL.Query().Get("strategy")
	if strategy == "" {
		strategy = model.DefaultHintStrategy
	}

	move, err := h.gameController.Hint(r.Context(), gameID(r), middleware.GetToken(r.Context()), strategy)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HintResponse{
		Move:     move,
		Strategy: strategy,
	})
}

// decodePosition reads a {row, col} body, writing an error response on failure
func decodePosition(w http.ResponseWriter, r *http.Request) (model.Position, bool) {
	var req request.PositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return model.Position{}, false
	}
	pos, ok := req.Position()
	if !ok {
		WriteError(w, NewInvalidRequestError("row and col are required"))
		return model.Position{}, false
	}
	return pos, true
}
