package game

import (
	"fmt"

	"github.com/mcoot/connectfour/internal/dependencies/clock"
	"github.com/mcoot/connectfour/internal/dependencies/random"
	"github.com/mcoot/connectfour/internal/model"
)

// Processor turns commands into events. It never mutates state.
type Processor struct {
	clock  clock.Clock
	random random.Random
}

// NewProcessor creates a Processor
func NewProcessor(clock clock.Clock, random random.Random) *Processor {
	return &Processor{clock: clock, random: random}
}

// Process validates cmd against state. An accepted command yields exactly one
// event; a rejected one yields the zero Event and the rejection reason.
func (p *Processor) Process(state *State, cmd model.Command) (model.Event, error) {
	switch cmd := cmd.(type) {
	case model.CreateGame:
		return p.createGame(state, cmd)
	case *model.CreateGame:
		return p.createGame(state, *cmd)
	case model.PlaceToken:
		return p.placeToken(state, cmd)
	case *model.PlaceToken:
		return p.placeToken(state, *cmd)
	default:
		return model.Event{}, fmt.Errorf("%w: %T", model.ErrUnknownCommand, cmd)
	}
}

func (p *Processor) createGame(state *State, cmd model.CreateGame) (model.Event, error) {
	cmd.Player1 = model.NewPlayer(cmd.Player1.Name, cmd.Player1.Token)
	cmd.Player2 = model.NewPlayer(cmd.Player2.Name, cmd.Player2.Token)
	if err := ValidateCreateGame(state, cmd); err != nil {
		return model.Event{}, err
	}
	return model.NewGameCreatedEvent(p.random.UUID(), model.GameCreated{
		ID:      state.NextGameID,
		Player1: cmd.Player1,
		Player2: cmd.Player2,
		Created: p.clock.Now(),
	}), nil
}

func (p *Processor) placeToken(state *State, cmd model.PlaceToken) (model.Event, error) {
	token, err := ValidatePlaceToken(state, cmd)
	if err != nil {
		return model.Event{}, err
	}
	return model.NewTokenPlacedEvent(p.random.UUID(), model.TokenPlaced{
		Game:    cmd.Game,
		Token:   token,
		Column:  cmd.Column,
		Created: p.clock.Now(),
	}), nil
}
