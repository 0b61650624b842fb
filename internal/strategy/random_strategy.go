package strategy

import (
	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/random"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Random guesses uniformly from the whole dictionary and ignores feedback.
type Random struct {
	dict   *words.Dictionary
	random random.Source
}

var _ Strategy = (*Random)(nil)

// NewRandom creates a Random strategy.
func NewRandom(dict *words.Dictionary, rnd random.Source) *Random {
	return &Random{dict: dict, random: rnd}
}

// NextGuess returns a random dictionary word.
func (s *Random) NextGuess(game.State) (string, error) {
	if s.dict.Len() == 0 {
		return "", ErrNoCandidates
	}
	return s.dict.Random(s.random), nil
}
