package game

import (
	"sort"

	"github.com/mcoot/connectfour/internal/model"
)

// State is everything projected from the event log
type State struct {
	Games map[model.GameID]*model.Game

	// NextGameID is one past the highest id ever created, so ids are never reused
	NextGameID model.GameID

	// GameCount is the number of GameCreated events applied
	GameCount int

	// FinishedGames is the number of games with a winner, kept up to date
	// as each TokenPlaced is applied
	FinishedGames int

	// LastSeq is the Seq of the last stored event applied, 0 if none
	LastSeq uint64
}

// NewState returns the state before any event
func NewState() *State {
	return &State{Games: make(map[model.GameID]*model.Game)}
}

// Game returns the game with the given id
func (s *State) Game(id model.GameID) (*model.Game, bool) {
	g, ok := s.Games[id]
	return g, ok
}

// SortedGames returns every game ordered by id
func (s *State) SortedGames() []*model.Game {
	games := make([]*model.Game, 0, len(s.Games))
	for _, g := range s.Games {
		games = append(games, g)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games
}

// ActiveGames counts games nobody has won yet
func (s *State) ActiveGames() int {
	return len(s.Games) - s.FinishedGames
}

// Clone returns a deep copy that shares nothing with s
func (s *State) Clone() *State {
	c := &State{
		Games:         make(map[model.GameID]*model.Game, len(s.Games)),
		NextGameID:    s.NextGameID,
		GameCount:     s.GameCount,
		FinishedGames: s.FinishedGames,
		LastSeq:       s.LastSeq,
	}
	for id, g := range s.Games {
		c.Games[id] = g.Clone()
	}
	return c
}
