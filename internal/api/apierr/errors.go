package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/mcoot/connectfour/internal/model"
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
	CodeInvalidColumn   = "INVALID_COLUMN"
	CodeColumnFull      = "COLUMN_FULL"
	CodeInvalidMove     = "INVALID_MOVE"
	CodeGameNotFound    = "GAME_NOT_FOUND"
	CodeDuplicatePlayer = "DUPLICATE_PLAYER"
	CodeGameOver        = "GAME_OVER"
	CodeNotYourTurn     = "NOT_YOUR_TURN"
	CodeNotInGame       = "NOT_IN_GAME"
	CodeSamePlayer      = "SAME_PLAYER"
	CodeSameToken       = "SAME_TOKEN"
	CodeInvalidPlayer   = "INVALID_PLAYER"
	CodeInvalidToken    = "INVALID_TOKEN"
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

// Status returns the HTTP status WriteError would use for err
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

	// Map model errors. Column errors wrap ErrInvalidMove, so they go first.
	switch {
	case errors.Is(err, model.ErrInvalidColumn):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidColumn, "Column must be between 0 and 6"}}
	case errors.Is(err, model.ErrColumnFull):
		return &httpError{http.StatusConflict, APIError{CodeColumnFull, "Column is full"}}
	case errors.Is(err, model.ErrInvalidMove):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidMove, "Invalid move"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrDuplicatePlayer):
		return &httpError{http.StatusConflict, APIError{CodeDuplicatePlayer, "Player is already in an unfinished game"}}
	case errors.Is(err, model.ErrGameAlreadyOver):
		return &httpError{http.StatusConflict, APIError{CodeGameOver, "Game is already over"}}
	case errors.Is(err, model.ErrNotPlayerTurn):
		return &httpError{http.StatusForbidden, APIError{CodeNotYourTurn, "Not your turn"}}
	case errors.Is(err, model.ErrPlayerNotInGame):
		return &httpError{http.StatusForbidden, APIError{CodeNotInGame, "Player is not in this game"}}
	case errors.Is(err, model.ErrSamePlayer):
		return &httpError{http.StatusBadRequest, APIError{CodeSamePlayer, "A game needs two different players"}}
	case errors.Is(err, model.ErrSameToken):
		return &httpError{http.StatusBadRequest, APIError{CodeSameToken, "Players must hold different tokens"}}
	case errors.Is(err, model.ErrInvalidPlayer):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPlayer, "Player name is required"}}
	case errors.Is(err, model.ErrInvalidToken):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidToken, "Token must be red or yellow"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error, quoting the request id
// when there is one so the client can hand it to whoever reads the logs
func NewInternalError(requestID string) error {
	msg := "Internal server error"
	if requestID != "" {
		msg = fmt.Sprintf("%s (request %s)", msg, requestID)
	}
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, msg}}
}
