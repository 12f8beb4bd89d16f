package memory

import (
	"context"
	"sync"

	"github.com/mcoot/connectfour/internal/model"
	"github.com/mcoot/connectfour/internal/storage"
)

// Storage is an in-memory implementation of the event store
type Storage struct {
	mu     sync.RWMutex
	events []model.Event
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.EventStore = (*Storage)(nil)

func (s *Storage) AppendEvent(ctx context.Context, event *model.Event) error {
	if err := storage.ValidateForAppend(event); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	event.Seq = uint64(len(s.events)) + 1
	s.events = append(s.events, copyEvent(*event))
	return nil
}

func (s *Storage) ListEvents(ctx context.Context, afterSeq uint64, limit int) ([]model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if afterSeq >= uint64(len(s.events)) {
		return []model.Event{}, nil
	}
	remaining := s.events[afterSeq:]
	if limit > 0 && limit < len(remaining) {
		remaining = remaining[:limit]
	}

	result := make([]model.Event, len(remaining))
	for i, ev := range remaining {
		result[i] = copyEvent(ev)
	}
	return result, nil
}

func (s *Storage) LastSeq(ctx context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.events)), nil
}

func (s *Storage) Close() error {
	return nil
}

// copyEvent detaches the payload pointers so callers can't mutate the log
func copyEvent(ev model.Event) model.Event {
	if ev.GameCreated != nil {
		gc := *ev.GameCreated
		ev.GameCreated = &gc
	}
	if ev.TokenPlaced != nil {
		tp := *ev.TokenPlaced
		ev.TokenPlaced = &tp
	}
	return ev
}
