// Package solver plays one game to its end with a guessing strategy.
package solver

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/strategy"
)

// MaxRejections bounds consecutive guesses the game refuses before Run gives up.
const MaxRejections = 100

// ErrTooManyRejections means the strategy kept proposing words the game refused.
var ErrTooManyRejections = errors.New("solver: too many rejected guesses")

// Score summarises a finished game.
type Score struct {
	Secret  string       `json:"secret"`
	Guesses int          `json:"guesses"`
	Outcome game.Outcome `json:"outcome"`
}

// Run asks s for guesses and submits them to g until the game is won or lost.
// Words the game rejects as unknown are skipped without using a guess.
func Run(g *game.Game, s strategy.Strategy) (Score, error) {
	rejected := 0
	for {
		state := g.State()
		if state.Outcome.Terminal() {
			return Score{Secret: g.Secret(), Guesses: len(state.History), Outcome: state.Outcome}, nil
		}

		guess, err := s.NextGuess(state)
		if err != nil {
			return Score{}, fmt.Errorf("solver: game %s: %w", g.ID, err)
		}
		if _, err := g.SubmitGuess(guess); err != nil {
			if !errors.Is(err, game.ErrUnknownWord) {
				return Score{}, fmt.Errorf("solver: game %s: %w", g.ID, err)
			}
			rejected++
			log.Debug().Str("game", g.ID).Str("guess", guess).Int("rejected", rejected).Msg("guess rejected")
			if rejected >= MaxRejections {
				return Score{}, ErrTooManyRejections
			}
			continue
		}
		rejected = 0
	}
}
