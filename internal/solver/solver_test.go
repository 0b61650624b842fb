package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/random"
	"github.com/robalobadob/wordle-solver/internal/random/randomtest"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/strategy"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// scripted proposes a fixed sequence of words.
type scripted struct {
	words []string
	next  int
}

func (s *scripted) NextGuess(game.State) (string, error) {
	w := s.words[s.next%len(s.words)]
	s.next++
	return w, nil
}

func TestRunNarrowingWins(t *testing.T) {
	dict := words.MustNew([]string{"crate", "would", "trace"}, 5)
	g, err := game.New(dict, "crate")
	require.NoError(t, err)

	// would, then (narrowed to crate/trace) trace, then crate
	rnd := randomtest.NewQueue(2, 1)
	score, err := solver.Run(g, strategy.NewNarrowing(dict, rnd))
	require.NoError(t, err)
	assert.Equal(t, solver.Score{Secret: "crate", Guesses: 3, Outcome: game.Win}, score)
}

func TestRunReportsLoss(t *testing.T) {
	dict := words.MustNew([]string{"crate", "would", "trace"}, 5)
	g, err := game.New(dict, "crate", game.WithMaxGuesses(2))
	require.NoError(t, err)

	score, err := solver.Run(g, &scripted{words: []string{"would", "trace"}})
	require.NoError(t, err)
	assert.Equal(t, game.Loss, score.Outcome)
	assert.Equal(t, 2, score.Guesses)
}

func TestRunSkipsUnknownWords(t *testing.T) {
	dict := words.MustNew([]string{"crate", "would", "trace"}, 5)
	g, _ := game.New(dict, "crate")

	score, err := solver.Run(g, &scripted{words: []string{"zzzzz", "crate"}})
	require.NoError(t, err)
	assert.Equal(t, game.Win, score.Outcome)
	assert.Equal(t, 1, score.Guesses)
}

func TestRunGivesUpOnEndlessRejections(t *testing.T) {
	dict := words.MustNew([]string{"crate", "would", "trace"}, 5)
	g, _ := game.New(dict, "crate")

	_, err := solver.Run(g, &scripted{words: []string{"zzzzz"}})
	assert.ErrorIs(t, err, solver.ErrTooManyRejections)
}

func TestNarrowingAlwaysFindsSecretWithEnoughGuesses(t *testing.T) {
	dict, err := words.Default(words.DefaultLength)
	require.NoError(t, err)
	for i, secret := range dict.Words()[:40] {
		g, err := game.New(dict, secret, game.WithMaxGuesses(dict.Len()))
		require.NoError(t, err)
		score, err := solver.Run(g, strategy.NewNarrowing(dict, random.NewSeeded(uint64(i))))
		require.NoError(t, err)
		require.Equal(t, game.Win, score.Outcome, secret)
	}
}
