package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/connectfour/internal/api/apierr"
	"github.com/mcoot/connectfour/internal/api/request"
	"github.com/mcoot/connectfour/internal/api/response"
	"github.com/mcoot/connectfour/internal/model"
	"github.com/mcoot/connectfour/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController game.ControllerInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController game.ControllerInterface) *GameHandler {
	return &GameHandler{gameController: gameController}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}

	player1, err := playerFromRequest(req.Player1, model.Red)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	player2, err := playerFromRequest(req.Player2, model.Yellow)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	g, err := h.gameController.CreateGame(r.Context(), player1, player2)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.Created(w, fmt.Sprintf("/api/v1/games/%d", g.ID), response.GameFromModel(g))
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameController.ListGames(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameListFromModel(games))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := gameIDFromPath(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Place handles POST /api/v1/games/{id}/tokens
func (h *GameHandler) Place(w http.ResponseWriter, r *http.Request) {
	id, err := gameIDFromPath(r)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	var req request.PlaceTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}
	if req.Player == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("player is required"))
		return
	}
	if req.Column == nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("column is required"))
		return
	}

	g, err := h.gameController.PlaceToken(r.Context(), id, req.Player, *req.Column)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

func gameIDFromPath(r *http.Request) (model.GameID, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id < 0 {
		return 0, apierr.NewInvalidRequestError("Game id must be a non-negative integer")
	}
	return model.GameID(id), nil
}

func playerFromRequest(p request.Player, defaultToken model.Token) (model.Player, error) {
	token := defaultToken
	if p.Token != "" {
		parsed, err := model.ParseToken(p.Token)
		if err != nil {
			return model.Player{}, err
		}
		token = parsed
	}
	return model.NewPlayer(p.Name, token), nil
}
