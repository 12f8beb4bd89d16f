package redis

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/connectfour/internal/model"
	"github.com/mcoot/connectfour/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	client  *redis.Client
	storage *Storage
	ctx     context.Context
	now     time.Time
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(s.client, DefaultConfig())
	s.ctx = context.Background()
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) gameCreated() model.Event {
	return model.NewGameCreatedEvent("evt-created", model.GameCreated{
		ID:      0,
		Player1: model.Player{Name: "alice", Token: model.Red},
		Player2: model.Player{Name: "bob", Token: model.Yellow},
		Created: s.now,
	})
}

func (s *StorageSuite) tokenPlaced(col int) model.Event {
	return model.NewTokenPlacedEvent("evt-placed", model.TokenPlaced{
		Game: 0, Token: model.Yellow, Column: col, Created: s.now,
	})
}

// Append tests

func (s *StorageSuite) TestAppendAssignsSeq() {
	created := s.gameCreated()
	s.Require().NoError(s.storage.AppendEvent(s.ctx, &created))
	s.Equal(uint64(1), created.Seq)

	placed := s.tokenPlaced(2)
	s.Require().NoError(s.storage.AppendEvent(s.ctx, &placed))
	s.Equal(uint64(2), placed.Seq)

	last, err := s.storage.LastSeq(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint64(2), last)
}

func (s *StorageSuite) TestAppendUsesPrefixedListKey() {
	ev := s.gameCreated()
	s.Require().NoError(s.storage.AppendEvent(s.ctx, &ev))

	s.True(s.mini.Exists("c4:events"))
	items, err := s.mini.List("c4:events")
	s.Require().NoError(err)
	s.Len(items, 1)
	s.NotContains(items[0], `"seq"`)
}

func (s *StorageSuite) TestAppendRejectsInvalidEvent() {
	err := s.storage.AppendEvent(s.ctx, &model.Event{Type: model.EventTokenPlaced})
	s.ErrorIs(err, storage.ErrInvalidEvent)
	s.ErrorIs(err, model.ErrMalformedEvent)
	s.False(s.mini.Exists("c4:events"))
}

// List tests

func (s *StorageSuite) TestListEventsRoundTrip() {
	created := s.gameCreated()
	s.Require().NoError(s.storage.AppendEvent(s.ctx, &created))
	placed := s.tokenPlaced(4)
	s.Require().NoError(s.storage.AppendEvent(s.ctx, &placed))

	events, err := s.storage.ListEvents(s.ctx, 0, 0)
	s.Require().NoError(err)
	s.Require().Len(events, 2)

	s.Equal(model.EventGameCreated, events[0].Type)
	s.Equal(uint64(1), events[0].Seq)
	s.Equal("evt-created", events[0].ID)
	s.Equal("alice", events[0].GameCreated.Player1.Name)
	s.Equal(model.Yellow, events[0].GameCreated.Player2.Token)
	s.True(s.now.Equal(events[0].GameCreated.Created))

	s.Equal(model.EventTokenPlaced, events[1].Type)
	s.Equal(uint64(2), events[1].Seq)
	s.Equal(4, events[1].TokenPlaced.Column)
	s.Equal(model.Yellow, events[1].TokenPlaced.Token)
}

func (s *StorageSuite) TestListEventsPaging() {
	for col := 0; col < 5; col++ {
		ev := s.tokenPlaced(col)
		s.Require().NoError(s.storage.AppendEvent(s.ctx, &ev))
	}

	page, err := s.storage.ListEvents(s.ctx, 1, 3)
	s.Require().NoError(err)
	s.Require().Len(page, 3)
	s.Equal(uint64(2), page[0].Seq)
	s.Equal(1, page[0].TokenPlaced.Column)
	s.Equal(uint64(4), page[2].Seq)

	page, err = s.storage.ListEvents(s.ctx, 5, 3)
	s.Require().NoError(err)
	s.Empty(page)
}

func (s *StorageSuite) TestListEventsCursorBeyondInt64() {
	for col := 0; col < 3; col++ {
		ev := s.tokenPlaced(col)
		s.Require().NoError(s.storage.AppendEvent(s.ctx, &ev))
	}

	for _, after := range []uint64{math.MaxUint64, math.MaxInt64 + 1} {
		page, err := s.storage.ListEvents(s.ctx, after, 100)
		s.Require().NoError(err)
		s.Empty(page, "after=%d", after)

		page, err = s.storage.ListEvents(s.ctx, after, 0)
		s.Require().NoError(err)
		s.Empty(page, "after=%d", after)
	}
}

func (s *StorageSuite) TestListEventsLargeLimitDoesNotOverflow() {
	for col := 0; col < 3; col++ {
		ev := s.tokenPlaced(col)
		s.Require().NoError(s.storage.AppendEvent(s.ctx, &ev))
	}

	page, err := s.storage.ListEvents(s.ctx, 1, math.MaxInt)
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Equal(uint64(2), page[0].Seq)
	s.Equal(uint64(3), page[1].Seq)

	page, err = s.storage.ListEvents(s.ctx, math.MaxInt64, math.MaxInt)
	s.Require().NoError(err)
	s.Empty(page)
}

func (s *StorageSuite) TestListEventsCorruptEntry() {
	s.Require().NoError(s.client.RPush(s.ctx, "c4:events", "not json").Err())

	_, err := s.storage.ListEvents(s.ctx, 0, 0)
	s.Error(err)
}

func (s *StorageSuite) TestKeyPrefixIsolatesLogs() {
	cfg := DefaultConfig()
	cfg.KeyPrefix = "other"
	other := NewWithClient(s.client, cfg)

	ev := s.gameCreated()
	s.Require().NoError(other.AppendEvent(s.ctx, &ev))

	last, err := s.storage.LastSeq(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint64(0), last)
	s.True(s.mini.Exists("other:events"))
}

func (s *StorageSuite) TestNewRejectsBadURL() {
	cfg := DefaultConfig()
	cfg.URL = "not-a-url://"
	_, err := New(cfg)
	s.Error(err)
}

func (s *StorageSuite) TestNewConnects() {
	cfg := DefaultConfig()
	cfg.URL = "redis://" + s.mini.Addr()
	st, err := New(cfg)
	s.Require().NoError(err)
	defer st.Close()

	last, err := st.LastSeq(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint64(0), last)
}
