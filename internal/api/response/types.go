package response

import (
	"time"

	"github.com/mcoot/connectfour/internal/model"
)

// Player represents a player in API responses
type Player struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p model.Player) Player {
	return Player{
		Name:  p.Name,
		Token: p.Token.String(),
	}
}

// Position is a board coordinate; col from the left, row from the bottom
type Position struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Game is the full view of one game
type Game struct {
	ID      int    `json:"id"`
	Player1 Player `json:"player1"`
	Player2 Player `json:"player2"`

	// Board holds 6 rows of 7 cells, top row first. Cells are "red", "yellow" or "".
	Board [][]string `json:"board"`

	Status      string     `json:"status"`
	NextToken   string     `json:"next_token,omitempty"`
	Winner      *Player    `json:"winner,omitempty"`
	WinningLine []Position `json:"winning_line,omitempty"`
	Moves       int        `json:"moves"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// GameFromModel converts a model.Game
func GameFromModel(g *model.Game) Game {
	resp := Game{
		ID:        int(g.ID),
		Player1:   PlayerFromModel(g.Player1),
		Player2:   PlayerFromModel(g.Player2),
		Board:     g.Board.Rows(),
		Status:    string(g.Status()),
		Moves:     g.Moves,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}

	if winner, ok := g.Winner(); ok {
		p := PlayerFromModel(*winner)
		resp.Winner = &p
		line, _, _ := model.WinningLine(&g.Board)
		for _, pos := range line {
			resp.WinningLine = append(resp.WinningLine, Position{Col: pos.Col, Row: pos.Row})
		}
	} else {
		resp.NextToken = g.NextToken.String()
	}
	return resp
}

// GameList is the response for listing games
type GameList struct {
	Games []Game `json:"games"`
}

// GameListFromModel converts a slice of games
func GameListFromModel(games []*model.Game) GameList {
	list := GameList{Games: make([]Game, 0, len(games))}
	for _, g := range games {
		list.Games = append(list.Games, GameFromModel(g))
	}
	return list
}

// EventPage is one page of the event log
type EventPage struct {
	Events []model.Event `json:"events"`
	// Next is the cursor to pass as ?after= for the following page
	Next uint64 `json:"next"`
}

// EventPageFromModel builds a page, keeping the cursor when the page is empty
func EventPageFromModel(events []model.Event, after uint64) EventPage {
	page := EventPage{Events: events, Next: after}
	if events == nil {
		page.Events = []model.Event{}
	}
	if n := len(events); n > 0 {
		page.Next = events[n-1].Seq
	}
	return page
}

// Health is the response for the health endpoint
type Health struct {
	Status  string `json:"status"`
	Games   int    `json:"games"`
	LastSeq uint64 `json:"last_seq"`
}
