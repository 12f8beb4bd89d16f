package game

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/connectfour/internal/dependencies/clock"
	"github.com/mcoot/connectfour/internal/dependencies/random"
	"github.com/mcoot/connectfour/internal/metrics"
	"github.com/mcoot/connectfour/internal/model"
	"github.com/mcoot/connectfour/internal/storage"
)

// DefaultEventsLimit caps Events when the caller passes no limit
const DefaultEventsLimit = 100

// Controller is the single writer over game state. Each command is processed,
// persisted and projected under one lock, so the stored log order is the
// order events were validated in.
type Controller struct {
	mu        sync.Mutex
	state     *State
	store     storage.EventStore
	processor *Processor
	clock     clock.Clock
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewController creates a new game Controller with empty state
func NewController(
	store storage.EventStore,
	clock clock.Clock,
	random random.Random,
	metrics *metrics.Metrics,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		state:     NewState(),
		store:     store,
		processor: NewProcessor(clock, random),
		clock:     clock,
		metrics:   metrics,
		logger:    logger,
	}
}

// Load replays any stored events not yet applied
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	applied, err := ReplayStore(ctx, c.store, c.state, func(ev model.Event) {
		c.metrics.EventApplied(string(ev.Type))
	})
	if err != nil {
		c.logger.Error("failed to replay event log",
			slog.Uint64("last_seq", c.state.LastSeq),
			slog.String("error", err.Error()),
		)
		return err
	}
	c.metrics.SetActiveGames(c.state.ActiveGames())

	c.logger.Info("event log replayed",
		slog.Int("events", applied),
		slog.Uint64("last_seq", c.state.LastSeq),
		slog.Int("games", c.state.GameCount),
	)
	return nil
}

// Handle processes a command. Accepted commands are appended to the store
// and then projected; rejections return the reason and change nothing.
func (c *Controller) Handle(ctx context.Context, cmd model.Command) (model.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handle(ctx, cmd)
}

func (c *Controller) handle(ctx context.Context, cmd model.Command) (model.Event, error) {
	start := c.clock.Now()

	event, err := c.processor.Process(c.state, cmd)
	if err != nil {
		reason := model.RejectionReason(err)
		c.metrics.CommandRejected(cmd.CommandName(), reason)
		c.logger.Info("command rejected",
			slog.String("command", cmd.CommandName()),
			slog.String("reason", reason),
			slog.String("error", err.Error()),
		)
		return model.Event{}, err
	}

	if err := c.store.AppendEvent(ctx, &event); err != nil {
		c.logger.Error("failed to append event",
			slog.String("event_id", event.ID),
			slog.String("type", string(event.Type)),
			slog.String("error", err.Error()),
		)
		return model.Event{}, fmt.Errorf("append event: %w", err)
	}

	if err := ApplyEvent(c.state, event); err != nil {
		// The event is stored but could not be projected; state no longer
		// matches the log until the next Load.
		c.logger.Error("failed to apply stored event",
			slog.Uint64("seq", event.Seq),
			slog.String("event_id", event.ID),
			slog.String("error", err.Error()),
		)
		return model.Event{}, fmt.Errorf("apply event %d: %w", event.Seq, err)
	}

	c.metrics.EventApplied(string(event.Type))
	c.metrics.CommandAccepted(cmd.CommandName(), c.clock.Since(start))
	c.logEvent(event)
	c.metrics.SetActiveGames(c.state.ActiveGames())

	return event, nil
}

func (c *Controller) logEvent(event model.Event) {
	switch event.Type {
	case model.EventGameCreated:
		ev := event.GameCreated
		c.logger.Info("game created",
			slog.Int("game_id", int(ev.ID)),
			slog.String("player1", ev.Player1.Name),
			slog.String("player2", ev.Player2.Name),
			slog.Uint64("seq", event.Seq),
		)
	case model.EventTokenPlaced:
		ev := event.TokenPlaced
		g := c.state.Games[ev.Game]
		var player string
		if p := g.PlayerByToken(ev.Token); p != nil {
			player = p.Name
		}
		c.logger.Debug("token placed",
			slog.Int("game_id", int(ev.Game)),
			slog.String("player", player),
			slog.String("token", ev.Token.String()),
			slog.Int("column", ev.Column),
			slog.Uint64("seq", event.Seq),
		)
		if winner, ok := g.Winner(); ok {
			c.metrics.GameWon()
			c.logger.Info("game won",
				slog.Int("game_id", int(g.ID)),
				slog.String("winner", winner.Name),
				slog.String("token", winner.Token.String()),
				slog.Int("moves", g.Moves),
			)
		}
	}
}

// CreateGame starts a game between two players and returns it
func (c *Controller) CreateGame(ctx context.Context, player1, player2 model.Player) (*model.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	event, err := c.handle(ctx, model.CreateGame{Player1: player1, Player2: player2})
	if err != nil {
		return nil, err
	}
	return c.state.Games[event.GameCreated.ID].Clone(), nil
}

// PlaceToken drops the named player's token into column and returns the updated game
func (c *Controller) PlaceToken(ctx context.Context, gameID model.GameID, playerName string, column int) (*model.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.handle(ctx, model.PlaceToken{Game: gameID, Player: playerName, Column: column}); err != nil {
		return nil, err
	}
	return c.state.Games[gameID].Clone(), nil
}

// GetGame returns a snapshot of a game
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	g, ok := c.state.Game(gameID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", model.ErrGameNotFound, gameID)
	}
	return g.Clone(), nil
}

// ListGames returns snapshots of every game ordered by id
func (c *Controller) ListGames(ctx context.Context) ([]*model.Game, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	games := c.state.SortedGames()
	for i, g := range games {
		games[i] = g.Clone()
	}
	return games, nil
}

// Events reads the stored log after afterSeq
func (c *Controller) Events(ctx context.Context, afterSeq uint64, limit int) ([]model.Event, error) {
	if limit <= 0 {
		limit = DefaultEventsLimit
	}
	return c.store.ListEvents(ctx, afterSeq, limit)
}

// Snapshot returns a deep copy of the projected state
func (c *Controller) Snapshot() *State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Interface for dependency injection
type ControllerInterface interface {
	Load(ctx context.Context) error
	Handle(ctx context.Context, cmd model.Command) (model.Event, error)
	CreateGame(ctx context.Context, player1, player2 model.Player) (*model.Game, error)
	PlaceToken(ctx context.Context, gameID model.GameID, playerName string, column int) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]*model.Game, error)
	Events(ctx context.Context, afterSeq uint64, limit int) ([]model.Event, error)
	Snapshot() *State
}

var _ ControllerInterface = (*Controller)(nil)
