package request

// Player is a player as sent by clients. Token is "red" or "yellow";
// when omitted player1 gets red and player2 yellow.
type Player struct {
	Name  string `json:"name"`
	Token string `json:"token,omitempty"`
}

// CreateGameRequest is the request body for creating a game
type CreateGameRequest struct {
	Player1 Player `json:"player1"`
	Player2 Player `json:"player2"`
}

// PlaceTokenRequest is the request body for dropping a token.
// Column is a pointer so a missing column isn't read as 0.
type PlaceTokenRequest struct {
	Player string `json:"player"`
	Column *int   `json:"column"`
}
