package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// Output handles formatting output based on the configured format
type Output struct {
	w      io.Writer
	format string
}

func NewOutput(w io.Writer, format string) *Output {
	return &Output{w: w, format: format}
}

// PrintGame writes the game as a board diagram or as JSON.
func (that *Output) PrintGame(game *entity.Snapshot) {
	if that.format == formatJSON {
		enc := json.NewEncoder(that.w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(game)
		return
	}

	fmt.Fprint(that.w, RenderBoard(game.Board))
	fmt.Fprintln(that.w, DescribeStatus(game))
}

// PrintMessage outputs a simple message
func (that *Output) PrintMessage(msg string) {
	if that.format == formatJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(that.w, string(data))
		return
	}

	fmt.Fprintln(that.w, msg)
}

// RenderBoard draws rows with 1-based row and column labels; '.' marks an empty cell.
func RenderBoard(rows [][]entity.Cell) string {
	var sb strings.Builder
	width := len(fmt.Sprint(len(rows)))

	fmt.Fprintf(&sb, "%*s", width, "")
	for col := range rows {
		fmt.Fprintf(&sb, " %*d", width, col+1)
	}
	sb.WriteString("\n")

	for i, row := range rows {
		fmt.Fprintf(&sb, "%*d", width, i+1)
		for _, cell := range row {
			symbol := "."
			if mark, ok := cell.Mark(); ok {
				symbol = mark.String()
			}
			fmt.Fprintf(&sb, " %*s", width, symbol)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func DescribeStatus(game *entity.Snapshot) string {
	switch game.Status.State {
	case entity.StateWon:
		return fmt.Sprintf("%s wins!", game.Status.Winner)
	case entity.StateDraw:
		return "It's a draw."
	default:
		return fmt.Sprintf("%s to move.", game.Turn)
	}
}
