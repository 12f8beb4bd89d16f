package storage

import (
	"context"
	"errors"

	"github.com/mcoot/connectfour/internal/model"
)

// ErrInvalidEvent is returned when an event cannot be appended to the log
var ErrInvalidEvent = errors.New("invalid event")

// EventStore is the durable, append-only log of game events.
// Sequence numbers start at 1 and have no gaps.
type EventStore interface {
	// AppendEvent appends the event and sets its Seq
	AppendEvent(ctx context.Context, event *model.Event) error

	// ListEvents returns up to limit events with Seq greater than afterSeq,
	// in log order. A limit of zero or less returns all remaining events.
	ListEvents(ctx context.Context, afterSeq uint64, limit int) ([]model.Event, error)

	// LastSeq returns the Seq of the newest event, or 0 if the log is empty
	LastSeq(ctx context.Context) (uint64, error)

	// Close releases any underlying connections
	Close() error
}

// ValidateForAppend checks an event is well formed and not yet sequenced
func ValidateForAppend(event *model.Event) error {
	if event == nil || event.IsZero() {
		return ErrInvalidEvent
	}
	if event.Seq != 0 {
		return errors.Join(ErrInvalidEvent, errors.New("event already has a sequence number"))
	}
	if err := event.Validate(); err != nil {
		return errors.Join(ErrInvalidEvent, err)
	}
	return nil
}
