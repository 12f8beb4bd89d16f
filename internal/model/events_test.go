package model

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventConstructorsNormaliseToUTC(t *testing.T) {
	local := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("AEST", 10*60*60))

	created := NewGameCreatedEvent("e1", GameCreated{ID: 3, Created: local})
	assert.Equal(t, time.UTC, created.Created().Location())
	assert.True(t, created.Created().Equal(local))
	assert.Equal(t, GameID(3), created.GameID())

	placed := NewTokenPlacedEvent("e2", TokenPlaced{Game: 3, Column: 2, Created: local})
	assert.Equal(t, time.UTC, placed.Created().Location())
	assert.Equal(t, EventTokenPlaced, placed.Type)
}

func TestEventValidate(t *testing.T) {
	assert.NoError(t, NewGameCreatedEvent("e1", GameCreated{}).Validate())
	assert.NoError(t, NewTokenPlacedEvent("e2", TokenPlaced{}).Validate())

	mismatched := Event{Type: EventTokenPlaced, GameCreated: &GameCreated{}}
	assert.ErrorIs(t, mismatched.Validate(), ErrMalformedEvent)

	unknown := Event{Type: "game_deleted"}
	assert.ErrorIs(t, unknown.Validate(), ErrUnknownEventType)

	assert.True(t, Event{}.IsZero())
}

func TestRejections(t *testing.T) {
	assert.True(t, IsRejection(ErrColumnFull))
	assert.True(t, errors.Is(ErrColumnFull, ErrInvalidMove))
	assert.True(t, IsRejection(fmt.Errorf("place: %w", ErrNotPlayerTurn)))
	assert.False(t, IsRejection(ErrProjectionColumnFull))
	assert.False(t, IsRejection(errors.New("redis down")))

	assert.Equal(t, "column_full", RejectionReason(ErrColumnFull))
	assert.Equal(t, "invalid_column", RejectionReason(ErrInvalidColumn))
	assert.Equal(t, "duplicate_player", RejectionReason(fmt.Errorf("x: %w", ErrDuplicatePlayer)))
	assert.Equal(t, "", RejectionReason(errors.New("other")))
}
