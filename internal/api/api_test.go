package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/connectfour/internal/api"
	"github.com/mcoot/connectfour/internal/api/apierr"
	"github.com/mcoot/connectfour/internal/api/response"
	"github.com/mcoot/connectfour/internal/factory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app := factory.NewTestApp()

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
		MetricsHandler: app.Metrics.Handler(),
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	switch b := body.(type) {
	case nil:
		reqBody = bytes.NewBuffer(nil)
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		data, _ := json.Marshal(b)
		reqBody = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) createGame(t *testing.T, p1, p2 string) response.Game {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]any{
		"player1": map[string]string{"name": p1},
		"player2": map[string]string{"name": p2},
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var g response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &g))
	return g
}

func (ts *testServer) place(t *testing.T, id, player string, column int) *httptest.ResponseRecorder {
	t.Helper()
	return ts.request(http.MethodPost, "/api/v1/games/"+id+"/tokens", map[string]any{
		"player": player,
		"column": column,
	})
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error.Code
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, "alice", "bob")

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.Health
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 1, resp.Games)
	assert.Equal(t, uint64(1), resp.LastSeq)
}

func TestCreateGame(t *testing.T) {
	ts := newTestServer(t)

	g := ts.createGame(t, "alice", "bob")
	assert.Equal(t, 0, g.ID)
	assert.Equal(t, response.Player{Name: "alice", Token: "red"}, g.Player1)
	assert.Equal(t, response.Player{Name: "bob", Token: "yellow"}, g.Player2)
	assert.Equal(t, "ongoing", g.Status)
	assert.Equal(t, "red", g.NextToken)
	require.Len(t, g.Board, 6)
	for _, row := range g.Board {
		assert.Equal(t, []string{"", "", "", "", "", "", ""}, row)
	}
}

func TestCreateGameSetsLocation(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, "alice", "bob")

	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]any{
		"player1": map[string]string{"name": "carol"},
		"player2": map[string]string{"name": "dave"},
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/api/v1/games/1", rr.Header().Get("Location"))
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
}

func TestCreateGameExplicitTokens(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]any{
		"player1": map[string]string{"name": "alice", "token": "yellow"},
		"player2": map[string]string{"name": "bob", "token": "red"},
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var g response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &g))
	assert.Equal(t, "yellow", g.Player1.Token)
	assert.Equal(t, "red", g.Player2.Token)
}

func TestCreateGameErrors(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, "alice", "bob")

	tests := []struct {
		name   string
		body   any
		status int
		code   string
	}{
		{"malformed body", "{", http.StatusBadRequest, apierr.CodeInvalidRequest},
		{"bad token", map[string]any{
			"player1": map[string]string{"name": "carol", "token": "green"},
			"player2": map[string]string{"name": "dave"},
		}, http.StatusBadRequest, apierr.CodeInvalidToken},
		{"missing name", map[string]any{
			"player1": map[string]string{"name": ""},
			"player2": map[string]string{"name": "dave"},
		}, http.StatusBadRequest, apierr.CodeInvalidPlayer},
		{"same player", map[string]any{
			"player1": map[string]string{"name": "carol"},
			"player2": map[string]string{"name": "carol"},
		}, http.StatusBadRequest, apierr.CodeSamePlayer},
		{"same token", map[string]any{
			"player1": map[string]string{"name": "carol", "token": "red"},
			"player2": map[string]string{"name": "dave", "token": "red"},
		}, http.StatusBadRequest, apierr.CodeSameToken},
		{"busy player", map[string]any{
			"player1": map[string]string{"name": "alice"},
			"player2": map[string]string{"name": "dave"},
		}, http.StatusConflict, apierr.CodeDuplicatePlayer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := ts.request(http.MethodPost, "/api/v1/games", tt.body)
			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.code, errorCode(t, rr))
		})
	}
}

func TestGetAndListGames(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, "alice", "bob")
	ts.createGame(t, "carol", "dave")

	rr := ts.request(http.MethodGet, "/api/v1/games/1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var g response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &g))
	assert.Equal(t, "carol", g.Player1.Name)

	rr = ts.request(http.MethodGet, "/api/v1/games", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list response.GameList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Games, 2)
	assert.Equal(t, 0, list.Games[0].ID)

	rr = ts.request(http.MethodGet, "/api/v1/games/9", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeGameNotFound, errorCode(t, rr))

	rr = ts.request(http.MethodGet, "/api/v1/games/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPlaceTokenToWin(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, "alice", "bob")

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, ts.place(t, "0", "alice", 3).Code)
		require.Equal(t, http.StatusOK, ts.place(t, "0", "bob", 4).Code)
	}
	rr := ts.place(t, "0", "alice", 3)
	require.Equal(t, http.StatusOK, rr.Code)

	var g response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &g))
	assert.Equal(t, "terminated", g.Status)
	require.NotNil(t, g.Winner)
	assert.Equal(t, "alice", g.Winner.Name)
	assert.Empty(t, g.NextToken)
	assert.Equal(t, []response.Position{
		{Col: 3, Row: 0}, {Col: 3, Row: 1}, {Col: 3, Row: 2}, {Col: 3, Row: 3},
	}, g.WinningLine)
	assert.Equal(t, 7, g.Moves)
	// bottom row is last in the board rows
	assert.Equal(t, "red", g.Board[5][3])
	assert.Equal(t, "yellow", g.Board[5][4])

	rr = ts.place(t, "0", "bob", 0)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeGameOver, errorCode(t, rr))
}

func TestPlaceTokenErrors(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, "alice", "bob")
	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, ts.place(t, "0", "alice", 0).Code)
		require.Equal(t, http.StatusOK, ts.place(t, "0", "bob", 0).Code)
	}

	tests := []struct {
		name   string
		id     string
		body   any
		status int
		code   string
	}{
		{"wrong turn", "0", map[string]any{"player": "bob", "column": 1}, http.StatusForbidden, apierr.CodeNotYourTurn},
		{"not in game", "0", map[string]any{"player": "carol", "column": 1}, http.StatusForbidden, apierr.CodeNotInGame},
		{"column full", "0", map[string]any{"player": "alice", "column": 0}, http.StatusConflict, apierr.CodeColumnFull},
		{"column out of range", "0", map[string]any{"player": "alice", "column": 7}, http.StatusBadRequest, apierr.CodeInvalidColumn},
		{"missing column", "0", map[string]any{"player": "alice"}, http.StatusBadRequest, apierr.CodeInvalidRequest},
		{"missing player", "0", map[string]any{"column": 1}, http.StatusBadRequest, apierr.CodeInvalidRequest},
		{"unknown game", "5", map[string]any{"player": "alice", "column": 1}, http.StatusNotFound, apierr.CodeGameNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := ts.request(http.MethodPost, "/api/v1/games/"+tt.id+"/tokens", tt.body)
			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.code, errorCode(t, rr))
		})
	}
}

func TestListEvents(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, "alice", "bob")
	require.Equal(t, http.StatusOK, ts.place(t, "0", "alice", 2).Code)
	require.Equal(t, http.StatusOK, ts.place(t, "0", "bob", 2).Code)

	rr := ts.request(http.MethodGet, "/api/v1/events?after=1&limit=1", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var page response.EventPage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
	require.Len(t, page.Events, 1)
	assert.Equal(t, uint64(2), page.Events[0].Seq)
	assert.Equal(t, "red", page.Events[0].TokenPlaced.Token.String())
	assert.Equal(t, uint64(2), page.Next)

	rr = ts.request(http.MethodGet, "/api/v1/events?after=3", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
	assert.Empty(t, page.Events)
	assert.Equal(t, uint64(3), page.Next)

	for _, q := range []string{"after=-1", "limit=0", "limit=5000", "limit=x"} {
		rr = ts.request(http.MethodGet, "/api/v1/events?"+q, nil)
		assert.Equal(t, http.StatusBadRequest, rr.Code, q)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.createGame(t, "alice", "bob")
	ts.place(t, "0", "bob", 0)

	rr := ts.request(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `connectfour_commands_accepted_total{command="create_game"} 1`)
	assert.Contains(t, body, `connectfour_commands_rejected_total{command="place_token",reason="not_player_turn"} 1`)
}
