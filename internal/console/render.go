package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JKGam3r/CoinsInALine/internal/game"

	"github.com/mattn/go-runewidth"
)

const (
	colReset  = "\033[0m"
	colBold   = "\033[1m"
	colDim    = "\033[2m"
	colGreen  = "\033[32m"
	colRed    = "\033[31m"
	colYellow = "\033[33m"
	colCyan   = "\033[36m"
)

// cellWidth fits MaxCoinValue plus a gap.
const cellWidth = 6

var border = "-" + strings.Repeat(" -", 50)

// Renderer draws the game as plain text and implements game.Display.
type Renderer struct {
	w     io.Writer
	color bool
}

func NewRenderer(w io.Writer, color bool) *Renderer {
	return &Renderer{w: w, color: color}
}

func (r *Renderer) c(code, s string) string {
	if !r.color {
		return s
	}
	return code + s + colReset
}

// Turn shows whose turn it is and the coins still in play.
func (r *Renderer) Turn(s game.Snapshot) {
	fmt.Fprintf(r.w, "\n%s\n\n", r.c(colDim, border))
	if s.PlayerTurn {
		fmt.Fprintf(r.w, "Current Turn: %s\n", r.c(colCyan, "Player (You)"))
	} else {
		fmt.Fprintf(r.w, "Current Turn: %s\n", r.c(colYellow, "Opponent"))
	}
	fmt.Fprintln(r.w, CoinLine(s.Slots))
}

// Moved reports the random fallback, if any, and the running totals.
func (r *Renderer) Moved(s game.Snapshot, m game.Move) {
	if m.Random {
		fmt.Fprintln(r.w, r.c(colDim, "No valid selection --> choice randomly chosen."))
	}
	r.totals(s.Scores)
}

// Finished prints the final totals and the winner.
func (r *Renderer) Finished(res game.Result) {
	fmt.Fprintf(r.w, "\n%s\n\n", r.c(colDim, border))
	r.totals(res.Scores)
	switch res.Outcome {
	case game.OutcomePlayer:
		fmt.Fprintf(r.w, "Winner: %s\n", r.c(colGreen+colBold, "Player"))
	case game.OutcomeOpponent:
		fmt.Fprintf(r.w, "Winner: %s\n", r.c(colRed+colBold, "Opponent"))
	default:
		fmt.Fprintf(r.w, "Winner: %s\n", r.c(colBold, "Tie"))
	}
	fmt.Fprint(r.w, "\n\n")
}

func (r *Renderer) totals(s game.Scores) {
	fmt.Fprintf(r.w, "Player Total:   %d\n", s.Player)
	fmt.Fprintf(r.w, "Opponent Total: %d\n", s.Opponent)
}

// CoinLine renders every position in a fixed-width cell; claimed
// positions stay blank so the remaining coins never shift on screen.
func CoinLine(slots []game.Slot) string {
	var b strings.Builder
	b.WriteString("\t")
	for _, s := range slots {
		if s.Claimed {
			b.WriteString(strings.Repeat(" ", cellWidth))
			continue
		}
		b.WriteString(runewidth.FillLeft(strconv.Itoa(s.Value), cellWidth))
	}
	return strings.TrimRight(b.String(), " ")
}
