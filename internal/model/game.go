package model

import "time"

// GameID identifies a game. Assigned sequentially from zero.
type GameID int

// GameStatus is derived from the board, never stored
type GameStatus string

const (
	GameStatusOngoing    GameStatus = "ongoing"
	GameStatusTerminated GameStatus = "terminated"
)

// FirstToken moves first in every game
const FirstToken = Red

// Game is the per-game aggregate assembled from events
type Game struct {
	ID      GameID
	Player1 Player
	Player2 Player
	Board   Board

	// NextToken is the token expected to move next
	NextToken Token
	Moves     int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGame creates a game with an empty board
func NewGame(id GameID, player1, player2 Player, createdAt time.Time) *Game {
	return &Game{
		ID:        id,
		Player1:   player1,
		Player2:   player2,
		Board:     NewBoard(),
		NextToken: FirstToken,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

// Winner returns the player with four in a row, if any
func (g *Game) Winner() (*Player, bool) {
	return CheckGameOver(&g.Board, &g.Player1, &g.Player2)
}

// IsOver returns true once a player has won
func (g *Game) IsOver() bool {
	_, over := g.Winner()
	return over
}

// Status returns ongoing or terminated
func (g *Game) Status() GameStatus {
	if g.IsOver() {
		return GameStatusTerminated
	}
	return GameStatusOngoing
}

// HasPlayer returns true if a player with the given name is seated
func (g *Game) HasPlayer(name string) bool {
	return g.Player1.Name == name || g.Player2.Name == name
}

// PlayerByName returns the seated player with the given name, or nil
func (g *Game) PlayerByName(name string) *Player {
	switch name {
	case g.Player1.Name:
		return &g.Player1
	case g.Player2.Name:
		return &g.Player2
	default:
		return nil
	}
}

// PlayerByToken returns the seated player holding the token, or nil
func (g *Game) PlayerByToken(t Token) *Player {
	return playerWithToken(t, &g.Player1, &g.Player2)
}

func playerWithToken(t Token, players ...*Player) *Player {
	for _, p := range players {
		if p.Token == t {
			return p
		}
	}
	return nil
}

// Clone returns a deep copy. Board is an array so copying the struct suffices.
func (g *Game) Clone() *Game {
	c := *g
	return &c
}
