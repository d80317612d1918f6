package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcoot/pegsolitaire-go/internal/api"
	"github.com/mcoot/pegsolitaire-go/internal/api/handler"
	"github.com/mcoot/pegsolitaire-go/internal/api/response"
	"github.com/mcoot/pegsolitaire-go/internal/factory"
	"github.com/mcoot/pegsolitaire-go/internal/model"
	"github.com/mcoot/pegsolitaire-go/internal/services/auth"
	"github.com/mcoot/pegsolitaire-go/internal/storage/memory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	storage *memory.Storage
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{
		AuthConfig: auth.Config{HashCost: bcrypt.MinCost},
		Logger:     logger,
	})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
		HubManager:     app.HubManager,
	})

	return &testServer{
		handler: router,
		storage: app.Storage.(*memory.Storage),
	}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[handler.ErrorResponse](t, rr).Error.Code
}

func createGame(t *testing.T, ts *testServer) (string, string) {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/games", nil, "")
	require.Equal(t, http.StatusCreated, rr.Code)
	resp := decode[response.CreateGameResponse](t, rr)
	return resp.Game.ID, resp.Token
}

func move(fromRow, fromCol, toRow, toCol int) map[string]any {
	return map[string]any{
		"from": map[string]int{"row": fromRow, "col": fromCol},
		"to":   map[string]int{"row": toRow, "col": toCol},
	}
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreateGame(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/games", nil, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	resp := decode[response.CreateGameResponse](t, rr)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.Game.ID)
	assert.Equal(t, "playing", resp.Game.Status)
	assert.Equal(t, 35, resp.Game.PegsRemaining)
	assert.Len(t, resp.Game.Board, model.BoardRows)
	assert.Equal(t, "empty", resp.Game.Board[4][2])
	assert.False(t, resp.Game.CanUndo)
	assert.True(t, resp.Game.HasValidMoves)
	assert.Equal(t, 1, ts.storage.GameCount())
	assert.Equal(t, "/api/v1/games/"+resp.Game.ID, rr.Header().Get("Location"))
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
}

func TestGetGame(t *testing.T) {
	ts := newTestServer(t)
	id, _ := createGame(t, ts)

	// Anyone can view a game
	rr := ts.request(http.MethodGet, "/api/v1/games/"+id, nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, id, decode[response.Game](t, rr).ID)

	rr = ts.request(http.MethodGet, "/api/v1/games/NOTEXIST", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "GAME_NOT_FOUND", errorCode(t, rr))
}

func TestControlRequiresToken(t *testing.T) {
	ts := newTestServer(t)
	id, _ := createGame(t, ts)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+id+"/moves", move(2, 2, 4, 2), "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, rr))

	rr = ts.request(http.MethodPost, "/api/v1/games/"+id+"/moves", move(2, 2, 4, 2), "not-the-token")
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, rr))
}

func TestMove(t *testing.T) {
	ts := newTestServer(t)
	id, token := createGame(t, ts)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+id+"/moves", move(2, 2, 4, 2), token)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	resp := decode[response.MoveResponse](t, rr)
	assert.Equal(t, "none", resp.Outcome.Verdict)
	assert.Equal(t, 34, resp.Outcome.PegsRemaining)
	assert.Equal(t, "peg", resp.Game.Board[4][2])
	assert.Equal(t, "empty", resp.Game.Board[3][2])
	assert.Equal(t, "empty", resp.Game.Board[2][2])
	assert.Equal(t, 1, resp.Game.MoveCount)
	assert.True(t, resp.Game.CanUndo)
}

func TestIllegalMoves(t *testing.T) {
	ts := newTestServer(t)
	id, token := createGame(t, ts)

	tests := []struct {
		name   string
		body   any
		status int
		code   string
	}{
		{"occupied target", move(2, 1, 4, 1), http.StatusUnprocessableEntity, "INVALID_TARGET"},
		{"empty source", move(4, 2, 4, 2), http.StatusUnprocessableEntity, "INVALID_SOURCE"},
		{"not a jump", move(2, 1, 4, 2), http.StatusUnprocessableEntity, "NOT_A_JUMP"},
		{"off board", move(2, 2, 2, 4), http.StatusUnprocessableEntity, "INVALID_TARGET"},
		{"missing fields", map[string]any{"from": map[string]int{"row": 2, "col": 2}}, http.StatusBadRequest, "INVALID_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := ts.request(http.MethodPost, "/api/v1/games/"+id+"/moves", tt.body, token)
			assert.Equal(t, tt.status, rr.Code, rr.Body.String())
			assert.Equal(t, tt.code, errorCode(t, rr))
		})
	}

	// Nothing was applied
	rr := ts.request(http.MethodGet, "/api/v1/games/"+id, nil, "")
	assert.Equal(t, 0, decode[response.Game](t, rr).MoveCount)
}

func TestSelectAndClick(t *testing.T) {
	ts := newTestServer(t)
	id, token := createGame(t, ts)

	rr := ts.request(http.MethodPost, "/api/v1/games/"+id+"/select", map[string]int{"row": 4, "col": 2}, token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, decode[response.SelectResponse](t, rr).Selected)

	rr = ts.request(http.MethodPost, "/api/v1/games/"+id+"/click", map[string]int{"row": 4, "col": 2}, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "NO_SELECTION", errorCode(t, rr))

	rr = ts.request(http.MethodPost, "/api/v1/games/"+id+"/click", map[string]int{"row": 2, "col": 2}, token)
	require.Equal(t, http.StatusOK, rr.Code)
	clicked := decode[response.ClickResponse](t, rr)
	assert.False(t, clicked.Moved)
	require.NotNil(t, clicked.Game.Selection)
	assert.Equal(t, model.Position{Row: 2, Col: 2}, *clicked.Game.Selection)

	rr = ts.request(http.MethodPost, "/api/v1/games/"+id+"/click", map[string]int{"row": 4, "col": 2}, token)
	require.Equal(t, http.StatusOK, rr.Code)
	clicked = decode[response.ClickResponse](t, rr)
	assert.True(t, clicked.Moved)
	require.NotNil(t, clicked.Outcome)
	assert.Equal(t, 34, clicked.Outcome.PegsRemaining)
	assert.Nil(t, clicked.Game.Selection)

	rr = ts.request(http.MethodPost, "/api/v1/games/"+id+"/click", map[string]int{"row": 9, "col": 0}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "INVALID_POSITION", errorCode(t, rr))
}

func TestUndoAndRestart(t *testing.T) {
	ts := newTestServer(t)
	id, token := createGame(t, ts)

	// Undo at the start does nothing
	rr := ts.request(http.MethodPost, "/api/v1/games/"+id+"/undo", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, decode[response.UndoResponse](t, rr).Undone)

	rr = ts.request(http.MethodPost, "/api/v1/games/"+id+"/moves", move(2, 2, 4, 2), token)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = ts.request(http.MethodPost, "/api/v1/games/"+id+"/moves", move(5, 2, 3, 2), token)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/games/"+id+"/undo", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	undo := decode[response.UndoResponse](t, rr)
	assert.True(t, undo.Undone)
	assert.Equal(t, 1, undo.Game.MoveCount)
	assert.Equal(t, 34, undo.Game.PegsRemaining)

	rr = ts.request(http.MethodPost, "/api/v1/games/"+id+"/restart", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	restarted := decode[response.Game](t, rr)
	assert.Equal(t, 35, restarted.PegsRemaining)
	assert.Equal(t, 0, restarted.MoveCount)
	assert.False(t, restarted.CanUndo)
}

func TestListMovesAndHint(t *testing.T) {
	ts := newTestServer(t)
	id, token := createGame(t, ts)

	rr := ts.request(http.MethodGet, "/api/v1/games/"+id+"/moves", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	moves := decode[response.MovesResponse](t, rr).Moves
	assert.Len(t, moves, 6)

	rr = ts.request(http.MethodGet, "/api/v1/games/"+id+"/hint?strategy=first", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	hint := decode[response.HintResponse](t, rr)
	assert.Equal(t, "first", hint.Strategy)
	assert.Contains(t, moves, hint.Move)

	rr = ts.request(http.MethodGet, "/api/v1/games/"+id+"/hint", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, model.DefaultHintStrategy, decode[response.HintResponse](t, rr).Strategy)

	rr = ts.request(http.MethodGet, "/api/v1/games/"+id+"/hint?strategy=oracle", nil, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "INVALID_REQUEST", errorCode(t, rr))
}

func TestDeleteGame(t *testing.T) {
	ts := newTestServer(t)
	id, token := createGame(t, ts)

	rr := ts.request(http.MethodDelete, "/api/v1/games/"+id, nil, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/games/"+id, nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, 0, ts.storage.GameCount())
}

func TestFinishedGameRejectsMoves(t *testing.T) {
	ts := newTestServer(t)
	id, token := createGame(t, ts)

	// Two pegs left with a winning jump into the center
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	game, err := ts.storage.GetGame(ctx, model.GameID(id))
	require.NoError(t, err)
	game.Board = model.NewBoardWithPegs(model.Position{Row: 2, Col: 2}, model.Position{Row: 3, Col: 2})
	game.History = []*model.Board{game.Board.Clone()}
	require.NoError(t, ts.storage.SaveGame(ctx, game))

	rr := ts.request(http.MethodPost, "/api/v1/games/"+id+"/moves", move(2, 2, 4, 2), token)
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decode[response.MoveResponse](t, rr)
	assert.Equal(t, "win", resp.Outcome.Verdict)
	assert.Equal(t, model.MessageWin, resp.Outcome.Message)
	assert.Equal(t, "won", resp.Game.Status)

	rr = ts.request(http.MethodPost, "/api/v1/games/"+id+"/moves", move(4, 2, 2, 2), token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "GAME_OVER", errorCode(t, rr))

	// Undo is still allowed and reopens the game
	rr = ts.request(http.MethodPost, "/api/v1/games/"+id+"/undo", nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "playing", decode[response.UndoResponse](t, rr).Game.Status)
}
