package model

import (
	"fmt"
	"time"
)

// EventType identifies the type of event
type EventType string

const (
	EventGameCreated EventType = "game_created"
	EventTokenPlaced EventType = "token_placed"
)

// GameCreated records a new game between two players
type GameCreated struct {
	ID      GameID    `json:"id"`
	Player1 Player    `json:"player1"`
	Player2 Player    `json:"player2"`
	Created time.Time `json:"created"`
}

// TokenPlaced records a token dropped into a column
type TokenPlaced struct {
	Game    GameID    `json:"game"`
	Token   Token     `json:"token"`
	Column  int       `json:"column"`
	Created time.Time `json:"created"`
}

// Event is an immutable fact. Exactly one payload is set, matching Type.
type Event struct {
	// ID is a unique identifier generated when the event is emitted
	ID string `json:"id"`
	// Seq is the position in the event log (starts at 1).
	// Assigned by storage on append.
	Seq  uint64    `json:"seq,omitempty"`
	Type EventType `json:"type"`

	GameCreated *GameCreated `json:"game_created,omitempty"`
	TokenPlaced *TokenPlaced `json:"token_placed,omitempty"`
}

// NewGameCreatedEvent wraps a GameCreated payload, normalising its timestamp to UTC
func NewGameCreatedEvent(id string, payload GameCreated) Event {
	payload.Created = payload.Created.UTC()
	return Event{ID: id, Type: EventGameCreated, GameCreated: &payload}
}

// NewTokenPlacedEvent wraps a TokenPlaced payload, normalising its timestamp to UTC
func NewTokenPlacedEvent(id string, payload TokenPlaced) Event {
	payload.Created = payload.Created.UTC()
	return Event{ID: id, Type: EventTokenPlaced, TokenPlaced: &payload}
}

// IsZero returns true for the empty event returned alongside a rejection
func (e Event) IsZero() bool {
	return e.Type == "" && e.GameCreated == nil && e.TokenPlaced == nil
}

// Created returns the payload's creation timestamp
func (e Event) Created() time.Time {
	switch {
	case e.GameCreated != nil:
		return e.GameCreated.Created
	case e.TokenPlaced != nil:
		return e.TokenPlaced.Created
	default:
		return time.Time{}
	}
}

// GameID returns the game the event belongs to
func (e Event) GameID() GameID {
	switch {
	case e.GameCreated != nil:
		return e.GameCreated.ID
	case e.TokenPlaced != nil:
		return e.TokenPlaced.Game
	default:
		return 0
	}
}

// Validate checks that the payload matches the type
func (e Event) Validate() error {
	switch e.Type {
	case EventGameCreated:
		if e.GameCreated == nil || e.TokenPlaced != nil {
			return fmt.Errorf("%w: %s payload mismatch", ErrMalformedEvent, e.Type)
		}
	case EventTokenPlaced:
		if e.TokenPlaced == nil || e.GameCreated != nil {
			return fmt.Errorf("%w: %s payload mismatch", ErrMalformedEvent, e.Type)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEventType, e.Type)
	}
	return nil
}
