package model

// Command is a proposed intent. Commands are never persisted.
type Command interface {
	// CommandName is a stable name used in logs and metrics
	CommandName() string
}

// CreateGame proposes a new game between two players
type CreateGame struct {
	Player1 Player
	Player2 Player
}

// CommandName implements Command
func (CreateGame) CommandName() string { return "create_game" }

// PlaceToken proposes dropping the named player's token into a column
type PlaceToken struct {
	Game   GameID
	Player string
	Column int
}

// CommandName implements Command
func (PlaceToken) CommandName() string { return "place_token" }
