package model

import (
	"errors"
	"fmt"
)

// Command rejections. A rejected command emits no event.
var (
	ErrInvalidMove     = errors.New("invalid move")
	ErrInvalidColumn   = fmt.Errorf("%w: column is out of range", ErrInvalidMove)
	ErrColumnFull      = fmt.Errorf("%w: column is full", ErrInvalidMove)
	ErrGameNotFound    = errors.New("game not found")
	ErrDuplicatePlayer = errors.New("player is already in an unfinished game")
	ErrGameAlreadyOver = errors.New("game is already over")
	ErrNotPlayerTurn   = errors.New("not this player's turn")
	ErrPlayerNotInGame = errors.New("player is not in this game")
	ErrSamePlayer      = errors.New("a game needs two different players")
	ErrSameToken       = errors.New("players must hold different tokens")
	ErrInvalidPlayer   = errors.New("player name is required")
	ErrInvalidToken    = errors.New("invalid token")
	ErrUnknownCommand  = errors.New("unknown command")
)

// Invariant violations. These indicate a caller bug, not a user error.
var (
	ErrProjectionColumnFull = errors.New("projection placed into a full column")
	ErrUnknownEventType     = errors.New("unknown event type")
	ErrMalformedEvent       = errors.New("malformed event")
	ErrDuplicateGameID      = errors.New("game id already exists")
)

var rejections = []error{
	ErrInvalidMove,
	ErrInvalidColumn,
	ErrColumnFull,
	ErrGameNotFound,
	ErrDuplicatePlayer,
	ErrGameAlreadyOver,
	ErrNotPlayerTurn,
	ErrPlayerNotInGame,
	ErrSamePlayer,
	ErrSameToken,
	ErrInvalidPlayer,
	ErrInvalidToken,
	ErrUnknownCommand,
}

// IsRejection returns true if err is a command rejection rather than a failure
func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}

// RejectionReason returns a short machine-readable label for a rejection,
// or "" if err is not one
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrInvalidColumn):
		return "invalid_column"
	case errors.Is(err, ErrColumnFull):
		return "column_full"
	case errors.Is(err, ErrGameNotFound):
		return "game_not_found"
	case errors.Is(err, ErrDuplicatePlayer):
		return "duplicate_player"
	case errors.Is(err, ErrGameAlreadyOver):
		return "game_already_over"
	case errors.Is(err, ErrNotPlayerTurn):
		return "not_player_turn"
	case errors.Is(err, ErrPlayerNotInGame):
		return "player_not_in_game"
	case errors.Is(err, ErrSamePlayer):
		return "same_player"
	case errors.Is(err, ErrSameToken):
		return "same_token"
	case errors.Is(err, ErrInvalidPlayer), errors.Is(err, ErrInvalidToken):
		return "invalid_player"
	case errors.Is(err, ErrInvalidMove), errors.Is(err, ErrUnknownCommand):
		return "invalid_move"
	default:
		return ""
	}
}
