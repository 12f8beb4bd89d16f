package model

import "strings"

// Player is a named participant holding one token in a game
type Player struct {
	Name  string `json:"name"`
	Token Token  `json:"token"`
}

// NewPlayer creates a player with a trimmed name
func NewPlayer(name string, token Token) Player {
	return Player{Name: strings.TrimSpace(name), Token: token}
}

// SameAs returns true if both players have the same name, regardless of token
func (p Player) SameAs(other Player) bool {
	return p.Name == other.Name
}

// Validate checks the player has a name and a known token
func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidPlayer
	}
	if !p.Token.Valid() {
		return ErrInvalidToken
	}
	return nil
}
