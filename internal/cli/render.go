package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/simulate"
)

var tiles = map[game.Mark]string{
	game.CorrectPlacement: "🟩",
	game.CorrectLetter:    "🟨",
	game.IncorrectLetter:  "⬛",
}

// renderTiles maps feedback to coloured squares.
func renderTiles(r game.GuessResult) string {
	var b strings.Builder
	for _, lr := range r {
		b.WriteString(tiles[lr.Mark])
	}
	return b.String()
}

// renderRow shows the guess in capitals followed by its tiles.
func renderRow(r game.GuessResult) string {
	return strings.ToUpper(r.Word()) + "  " + renderTiles(r)
}

func printReport(w io.Writer, rep simulate.Report) {
	fmt.Fprintf(w, "run:             %s\n", rep.ID)
	fmt.Fprintf(w, "strategy:        %s\n", rep.Strategy)
	fmt.Fprintf(w, "seed:            %d\n", rep.Seed)
	fmt.Fprintf(w, "games:           %d\n", rep.Games)
	fmt.Fprintf(w, "win_total:       %d\n", rep.Wins)
	fmt.Fprintf(w, "win percentage:  %.2f\n", rep.WinRate)
	fmt.Fprintf(w, "average_guesses: %.3f\n", rep.AverageGuesses)
	for g := 1; g <= rep.MaxGuesses; g++ {
		n := rep.Distribution[g]
		bar := ""
		if rep.Wins > 0 {
			bar = strings.Repeat("█", n*40/rep.Wins)
		}
		fmt.Fprintf(w, "  %d: %6d %s\n", g, n, bar)
	}
	fmt.Fprintf(w, "duration:        %s\n", rep.Duration)
}
