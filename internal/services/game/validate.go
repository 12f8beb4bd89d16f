package game

import (
	"fmt"

	"github.com/mcoot/connectfour/internal/model"
	"github.com/mcoot/connectfour/internal/services/board"
)

// ValidateCreateGame checks a CreateGame command against the current state
func ValidateCreateGame(state *State, cmd model.CreateGame) error {
	if err := cmd.Player1.Validate(); err != nil {
		return fmt.Errorf("player1: %w", err)
	}
	if err := cmd.Player2.Validate(); err != nil {
		return fmt.Errorf("player2: %w", err)
	}
	if cmd.Player1.SameAs(cmd.Player2) {
		return model.ErrSamePlayer
	}
	if cmd.Player1.Token == cmd.Player2.Token {
		return model.ErrSameToken
	}

	for _, g := range state.Games {
		if g.IsOver() {
			continue
		}
		for _, p := range []model.Player{cmd.Player1, cmd.Player2} {
			if g.HasPlayer(p.Name) {
				return fmt.Errorf("%w: %s is playing game %d", model.ErrDuplicatePlayer, p.Name, g.ID)
			}
		}
	}
	return nil
}

// CanCreateGame reports whether neither proposed player is seated in an
// unfinished game
func CanCreateGame(state *State, cmd model.CreateGame) bool {
	return ValidateCreateGame(state, cmd) == nil
}

// ValidatePlaceToken checks a PlaceToken command against the current state
// and returns the token the move would place
func ValidatePlaceToken(state *State, cmd model.PlaceToken) (model.Token, error) {
	g, ok := state.Game(cmd.Game)
	if !ok {
		return 0, fmt.Errorf("%w: %d", model.ErrGameNotFound, cmd.Game)
	}
	if g.IsOver() {
		return 0, model.ErrGameAlreadyOver
	}
	player := g.PlayerByName(cmd.Player)
	if player == nil {
		return 0, fmt.Errorf("%w: %s", model.ErrPlayerNotInGame, cmd.Player)
	}
	if player.Token != g.NextToken {
		return 0, fmt.Errorf("%w: %s holds %s, %s to play", model.ErrNotPlayerTurn, player.Name, player.Token, g.NextToken)
	}
	if err := board.ValidateMove(&g.Board, cmd); err != nil {
		return 0, err
	}
	return player.Token, nil
}
