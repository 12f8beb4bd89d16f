package game

import (
	"context"
	"fmt"

	"github.com/mcoot/connectfour/internal/model"
	"github.com/mcoot/connectfour/internal/services/board"
	"github.com/mcoot/connectfour/internal/storage"
)

// ReplayPageSize is the number of events fetched per page when replaying a store
const ReplayPageSize = 200

// ApplyEvent folds one event into state. Applying the same TokenPlaced twice
// places two tokens, so callers must apply each event at most once.
func ApplyEvent(state *State, event model.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	switch event.Type {
	case model.EventGameCreated:
		ev := event.GameCreated
		if _, exists := state.Games[ev.ID]; exists {
			return fmt.Errorf("apply game created: %w: %d", model.ErrDuplicateGameID, ev.ID)
		}
		state.Games[ev.ID] = model.NewGame(ev.ID, ev.Player1, ev.Player2, ev.Created)
		if ev.ID+1 > state.NextGameID {
			state.NextGameID = ev.ID + 1
		}
		state.GameCount = ProjectGameCount(state.GameCount, *ev)

	case model.EventTokenPlaced:
		ev := event.TokenPlaced
		g, ok := state.Games[ev.Game]
		if !ok {
			return fmt.Errorf("apply token placed: %w: %d", model.ErrGameNotFound, ev.Game)
		}
		wasOver := g.IsOver()
		if err := board.ProjectBoard(&g.Board, *ev); err != nil {
			return err
		}
		if !wasOver && g.IsOver() {
			state.FinishedGames++
		}
		g.NextToken = ProjectNextTokenToPlay(g.NextToken, *ev)
		g.Moves++
		g.UpdatedAt = ev.Created
	}

	if event.Seq > state.LastSeq {
		state.LastSeq = event.Seq
	}
	return nil
}

// ProjectNextTokenToPlay alternates the token due to move
func ProjectNextTokenToPlay(current model.Token, _ model.TokenPlaced) model.Token {
	return current.Opponent()
}

// ProjectGameCount returns the number of games after ev
func ProjectGameCount(current int, _ model.GameCreated) int {
	return current + 1
}

// Replay builds state from a complete event sequence
func Replay(events []model.Event) (*State, error) {
	state := NewState()
	for _, ev := range events {
		if err := ApplyEvent(state, ev); err != nil {
			return nil, fmt.Errorf("replay event %d (%s): %w", ev.Seq, ev.ID, err)
		}
	}
	return state, nil
}

// ReplayStore applies every event in the store after state.LastSeq, a page at a time.
// fn, if non-nil, is called after each applied event.
func ReplayStore(ctx context.Context, store storage.EventStore, state *State, fn func(model.Event)) (int, error) {
	applied := 0
	for {
		page, err := store.ListEvents(ctx, state.LastSeq, ReplayPageSize)
		if err != nil {
			return applied, fmt.Errorf("list events after %d: %w", state.LastSeq, err)
		}
		for _, ev := range page {
			if err := ApplyEvent(state, ev); err != nil {
				return applied, fmt.Errorf("replay event %d (%s): %w", ev.Seq, ev.ID, err)
			}
			applied++
			if fn != nil {
				fn(ev)
			}
		}
		if len(page) < ReplayPageSize {
			return applied, nil
		}
	}
}
