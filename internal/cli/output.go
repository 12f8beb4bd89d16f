package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/connectfour/internal/api/response"
	"github.com/mcoot/connectfour/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintf(o.w, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Game:
		o.printGame(v)
	case response.GameList:
		o.printGameList(v)
	case response.EventPage:
		o.printEventPage(v)
	case response.Health:
		o.printHealth(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printGame(g response.Game) {
	fmt.Fprintf(o.w, "Game: %d\n", g.ID)
	fmt.Fprintf(o.w, "Players: %s (%s) vs %s (%s)\n", g.Player1.Name, g.Player1.Token, g.Player2.Name, g.Player2.Token)
	fmt.Fprintf(o.w, "Status: %s\n", g.Status)
	fmt.Fprintf(o.w, "Moves: %d\n", g.Moves)
	if g.NextToken != "" {
		fmt.Fprintf(o.w, "Next: %s\n", g.NextToken)
	}

	fmt.Fprintln(o.w)
	o.printBoard(g.Board, g.WinningLine)

	if g.Winner != nil {
		fmt.Fprintf(o.w, "\nWinner: %s (%s)\n", g.Winner.Name, g.Winner.Token)
	}
}

// printBoard draws rows top first. Winning cells are shown in lower case.
func (o *Output) printBoard(rows [][]string, line []response.Position) {
	if len(rows) == 0 {
		return
	}

	winning := make(map[response.Position]bool, len(line))
	for _, pos := range line {
		winning[pos] = true
	}

	width := len(rows[0])

	// Column headers
	fmt.Fprint(o.w, " ")
	for col := 0; col < width; col++ {
		fmt.Fprintf(o.w, " %d", col)
	}
	fmt.Fprintln(o.w)

	for i, cells := range rows {
		row := len(rows) - 1 - i
		fmt.Fprint(o.w, "|")
		for col, cell := range cells {
			mark := cellMark(cell)
			if winning[response.Position{Col: col, Row: row}] {
				mark = strings.ToLower(mark)
			}
			fmt.Fprintf(o.w, " %s", mark)
		}
		fmt.Fprintln(o.w, " |")
	}

	fmt.Fprintln(o.w, "+"+strings.Repeat("-", width*2+1)+"+")
}

func cellMark(cell string) string {
	switch cell {
	case model.Red.String():
		return "R"
	case model.Yellow.String():
		return "Y"
	default:
		return "."
	}
}

func (o *Output) printGameList(l response.GameList) {
	if len(l.Games) == 0 {
		fmt.Fprintln(o.w, "No games")
		return
	}
	for _, g := range l.Games {
		fmt.Fprintf(o.w, "%d\t%s vs %s\t%s\t%d moves", g.ID, g.Player1.Name, g.Player2.Name, g.Status, g.Moves)
		if g.Winner != nil {
			fmt.Fprintf(o.w, "\twinner: %s", g.Winner.Name)
		}
		fmt.Fprintln(o.w)
	}
}

func (o *Output) printEventPage(p response.EventPage) {
	for _, ev := range p.Events {
		switch {
		case ev.GameCreated != nil:
			c := ev.GameCreated
			fmt.Fprintf(o.w, "%d\t%s\tgame %d: %s (%s) vs %s (%s)\n",
				ev.Seq, ev.Type, c.ID, c.Player1.Name, c.Player1.Token, c.Player2.Name, c.Player2.Token)
		case ev.TokenPlaced != nil:
			t := ev.TokenPlaced
			fmt.Fprintf(o.w, "%d\t%s\tgame %d: %s in column %d\n", ev.Seq, ev.Type, t.Game, t.Token, t.Column)
		default:
			fmt.Fprintf(o.w, "%d\t%s\n", ev.Seq, ev.Type)
		}
	}
	fmt.Fprintf(o.w, "Next: %d\n", p.Next)
}

func (o *Output) printHealth(h response.Health) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	fmt.Fprintf(o.w, "Games: %d\n", h.Games)
	fmt.Fprintf(o.w, "Last seq: %d\n", h.LastSeq)
}
