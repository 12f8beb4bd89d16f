package model

// lineLength is the number of tokens in a row needed to win
const lineLength = 4

// direction is a line orientation anchored at its starting corner
type direction struct {
	step func(p Position, i int) Position
	fits func(p Position) bool
}

// directions are right, up, up-right and up-left, checked in that order
var directions = []direction{
	{
		step: func(p Position, i int) Position { return p.AddCol(i) },
		fits: func(p Position) bool { return p.Col+lineLength-1 < Columns },
	},
	{
		step: func(p Position, i int) Position { return p.AddRow(i) },
		fits: func(p Position) bool { return p.Row+lineLength-1 < Rows },
	},
	{
		step: func(p Position, i int) Position { return p.AddCol(i).AddRow(i) },
		fits: func(p Position) bool {
			return p.Col+lineLength-1 < Columns && p.Row+lineLength-1 < Rows
		},
	},
	{
		step: func(p Position, i int) Position { return p.SubCol(i).AddRow(i) },
		fits: func(p Position) bool {
			return p.Col >= lineLength-1 && p.Row+lineLength-1 < Rows
		},
	},
}

// WinningLine returns the first four-in-a-row found scanning AllPositions
// in order, along with the token that forms it
func WinningLine(board *Board) ([]Position, Token, bool) {
	for _, anchor := range AllPositions() {
		slot := board.At(anchor)
		token, ok := slot.Token()
		if !ok {
			continue
		}

		for _, d := range directions {
			// bounds guard must come before any offset slot is read
			if !d.fits(anchor) {
				continue
			}
			line := []Position{anchor}
			for i := 1; i < lineLength; i++ {
				pos := d.step(anchor, i)
				if board.At(pos) != slot {
					break
				}
				line = append(line, pos)
			}
			if len(line) == lineLength {
				return line, token, true
			}
		}
	}
	return nil, 0, false
}

// CheckGameOver reports the player who owns a four-in-a-row, if any
func CheckGameOver(board *Board, player1, player2 *Player) (*Player, bool) {
	_, token, ok := WinningLine(board)
	if !ok {
		return nil, false
	}
	winner := playerWithToken(token, player1, player2)
	return winner, winner != nil
}
