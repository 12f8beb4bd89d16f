package board

import (
	"fmt"

	"github.com/mcoot/connectfour/internal/model"
)

// LowestEmpty returns the lowest empty position in col
func LowestEmpty(board *model.Board, col int) (model.Position, bool) {
	if !model.ValidColumn(col) {
		return model.Position{}, false
	}
	for _, pos := range model.ColumnPositions(col) {
		if board.At(pos).IsEmpty() {
			return pos, true
		}
	}
	return model.Position{}, false
}

// ValidateMove checks the command's column is on the board and not full
func ValidateMove(board *model.Board, cmd model.PlaceToken) error {
	if !model.ValidColumn(cmd.Column) {
		return fmt.Errorf("%w: %d", model.ErrInvalidColumn, cmd.Column)
	}
	if !board.HasRoom(cmd.Column) {
		return fmt.Errorf("%w: %d", model.ErrColumnFull, cmd.Column)
	}
	return nil
}

// IsValidMove returns true if the command's column has an empty slot
func IsValidMove(board *model.Board, cmd model.PlaceToken) bool {
	return ValidateMove(board, cmd) == nil
}

// ProjectBoard drops the event's token into the lowest empty row of its column.
// Events are assumed validated; a full column here means the log is corrupt
// or the event was applied twice.
func ProjectBoard(board *model.Board, ev model.TokenPlaced) error {
	if !model.ValidColumn(ev.Column) {
		return fmt.Errorf("project column %d: %w", ev.Column, model.ErrInvalidColumn)
	}
	pos, ok := LowestEmpty(board, ev.Column)
	if !ok {
		return fmt.Errorf("game %d column %d: %w", ev.Game, ev.Column, model.ErrProjectionColumnFull)
	}
	board.Set(pos, model.Occupied(ev.Token))
	return nil
}
