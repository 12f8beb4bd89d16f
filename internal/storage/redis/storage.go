package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/connectfour/internal/model"
	"github.com/mcoot/connectfour/internal/storage"
)

// Storage is a Redis-backed implementation of the event store.
// Events are JSON documents in a single LIST; RPUSH assigns Seq atomically.
type Storage struct {
	client *redis.Client
	cfg    Config
	key    string
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
		key:    eventLogKey(cfg.KeyPrefix),
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.EventStore = (*Storage)(nil)

func (s *Storage) AppendEvent(ctx context.Context, event *model.Event) error {
	if err := storage.ValidateForAppend(event); err != nil {
		return err
	}

	// Seq is implied by list position, so it isn't stored
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	length, err := s.client.RPush(ctx, s.key, data).Result()
	if err != nil {
		return err
	}
	event.Seq = uint64(length)
	return nil
}

func (s *Storage) ListEvents(ctx context.Context, afterSeq uint64, limit int) ([]model.Event, error) {
	// A list can't hold more than MaxInt64 entries, and LRANGE reads
	// negative indexes from the tail, so larger cursors are past the end.
	if afterSeq > math.MaxInt64 {
		return []model.Event{}, nil
	}
	start := int64(afterSeq)
	stop := int64(-1)
	if limit > 0 && int64(limit) <= math.MaxInt64-start {
		stop = start + int64(limit) - 1
	}

	raw, err := s.client.LRange(ctx, s.key, start, stop).Result()
	if err != nil {
		return nil, err
	}

	events := make([]model.Event, 0, len(raw))
	for i, data := range raw {
		var ev model.Event
		if err := json.Unmarshal([]byte(data), &ev); err != nil {
			return nil, fmt.Errorf("decode event at seq %d: %w", afterSeq+uint64(i)+1, err)
		}
		ev.Seq = afterSeq + uint64(i) + 1
		events = append(events, ev)
	}
	return events, nil
}

func (s *Storage) LastSeq(ctx context.Context) (uint64, error) {
	length, err := s.client.LLen(ctx, s.key).Result()
	if err != nil {
		return 0, err
	}
	return uint64(length), nil
}
