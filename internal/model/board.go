package model

import (
	"encoding/json"
	"fmt"
)

// Token identifies a player's mark
type Token int

const (
	Red Token = iota
	Yellow
)

// String returns the lowercase token name
func (t Token) String() string {
	switch t {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	default:
		return fmt.Sprintf("token(%d)", int(t))
	}
}

// Valid returns true for Red and Yellow
func (t Token) Valid() bool {
	return t == Red || t == Yellow
}

// Opponent returns the other token
func (t Token) Opponent() Token {
	if t == Red {
		return Yellow
	}
	return Red
}

// ParseToken parses "red" or "yellow" (case-sensitive, as written by String)
func ParseToken(s string) (Token, error) {
	switch s {
	case "red":
		return Red, nil
	case "yellow":
		return Yellow, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidToken, s)
	}
}

// MarshalJSON encodes the token by name
func (t Token) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidToken, int(t))
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a token name
func (t *Token) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseToken(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Slot is either empty or occupied by a token
type Slot struct {
	token  Token
	filled bool
}

// EmptySlot returns an unoccupied slot
func EmptySlot() Slot {
	return Slot{}
}

// Occupied returns a slot holding the given token
func Occupied(t Token) Slot {
	return Slot{token: t, filled: true}
}

// IsEmpty returns true if no token occupies the slot
func (s Slot) IsEmpty() bool {
	return !s.filled
}

// Token returns the occupying token, if any
func (s Slot) Token() (Token, bool) {
	return s.token, s.filled
}

// Board is the 7x6 grid, indexed by Position.Index
type Board [SlotCount]Slot

// NewBoard returns an empty board
func NewBoard() Board {
	return Board{}
}

// At returns the slot at pos. pos must be valid.
func (b *Board) At(pos Position) Slot {
	return b[pos.Index()]
}

// Set replaces the slot at pos. pos must be valid.
func (b *Board) Set(pos Position, slot Slot) {
	b[pos.Index()] = slot
}

// ColumnHeight returns the number of occupied slots in col, or 0 for a
// column off the board
func (b *Board) ColumnHeight(col int) int {
	if !ValidColumn(col) {
		return 0
	}
	height := 0
	for _, pos := range ColumnPositions(col) {
		if !b.At(pos).IsEmpty() {
			height++
		}
	}
	return height
}

// HasRoom returns true if col has at least one empty slot
func (b *Board) HasRoom(col int) bool {
	return ValidColumn(col) && b.ColumnHeight(col) < Rows
}

// TokenCount returns the number of occupied slots
func (b *Board) TokenCount() int {
	count := 0
	for _, slot := range b {
		if !slot.IsEmpty() {
			count++
		}
	}
	return count
}

// Rows returns the board as rows of cell strings ("red", "yellow" or ""),
// top row first so it reads the way the board is seen
func (b *Board) Rows() [][]string {
	rows := make([][]string, 0, Rows)
	for row := Rows - 1; row >= 0; row-- {
		cells := make([]string, Columns)
		for col := 0; col < Columns; col++ {
			if t, ok := b.At(Position{Col: col, Row: row}).Token(); ok {
				cells[col] = t.String()
			}
		}
		rows = append(rows, cells)
	}
	return rows
}
