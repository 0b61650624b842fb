package strategy

import (
	"github.com/robalobadob/wordle-solver/internal/constraint"
	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/random"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Narrowing keeps its own candidate list, drops every word inconsistent with
// the feedback received, and guesses randomly among the survivors.
type Narrowing struct {
	candidates []string
	applied    int // history entries already filtered on
	random     random.Source
}

var _ Strategy = (*Narrowing)(nil)

// NewNarrowing creates a Narrowing strategy over a private copy of dict.
func NewNarrowing(dict *words.Dictionary, rnd random.Source) *Narrowing {
	return &Narrowing{candidates: dict.Words(), random: rnd}
}

// NextGuess narrows on any new feedback and returns a random survivor.
func (s *Narrowing) NextGuess(state game.State) (string, error) {
	s.narrow(state.History)
	if len(s.candidates) == 0 {
		return "", ErrNoCandidates
	}
	return s.candidates[s.random.Intn(len(s.candidates))], nil
}

// Candidates returns a copy of the current candidate list.
func (s *Narrowing) Candidates() []string {
	return append([]string(nil), s.candidates...)
}

func (s *Narrowing) narrow(history []game.GuessResult) {
	if s.applied >= len(history) {
		return
	}
	for _, fb := range history[s.applied:] {
		s.candidates = constraint.Filter(s.candidates, fb)
	}
	s.applied = len(history)
}
