package model

// Board dimensions
const (
	Columns   = 7
	Rows      = 6
	SlotCount = Columns * Rows
)

// Position identifies a slot on the board
type Position struct {
	Col int // 0-indexed from left
	Row int // 0-indexed from bottom
}

// Index translates the position to its flat board index (col + 7*row)
func (p Position) Index() int {
	return p.Col + Columns*p.Row
}

// PositionFromIndex is the inverse of Index
func PositionFromIndex(idx int) Position {
	return Position{Col: idx % Columns, Row: idx / Columns}
}

// Valid returns true if the position is on the board
func (p Position) Valid() bool {
	return p.Col >= 0 && p.Col < Columns && p.Row >= 0 && p.Row < Rows
}

// AddCol shifts the position right. No bounds checking.
func (p Position) AddCol(n int) Position {
	p.Col += n
	return p
}

// SubCol shifts the position left. No bounds checking.
func (p Position) SubCol(n int) Position {
	p.Col -= n
	return p
}

// AddRow shifts the position up. No bounds checking.
func (p Position) AddRow(n int) Position {
	p.Row += n
	return p
}

// AllPositions returns every board position, column by column, bottom row first
func AllPositions() []Position {
	positions := make([]Position, 0, SlotCount)
	for col := 0; col < Columns; col++ {
		for row := 0; row < Rows; row++ {
			positions = append(positions, Position{Col: col, Row: row})
		}
	}
	return positions
}

// ColumnPositions returns the positions of one column in ascending row order
func ColumnPositions(col int) []Position {
	positions := make([]Position, Rows)
	for row := 0; row < Rows; row++ {
		positions[row] = Position{Col: col, Row: row}
	}
	return positions
}

// ValidColumn returns true if col is a column on the board
func ValidColumn(col int) bool {
	return col >= 0 && col < Columns
}
