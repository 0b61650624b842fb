package simulate_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/metrics"
	"github.com/robalobadob/wordle-solver/internal/simulate"
	"github.com/robalobadob/wordle-solver/internal/strategy"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func dictionary(t *testing.T) *words.Dictionary {
	t.Helper()
	d, err := words.Default(words.DefaultLength)
	require.NoError(t, err)
	return d
}

func TestRunAggregates(t *testing.T) {
	rec := metrics.New()
	rep, err := simulate.Run(context.Background(), dictionary(t), simulate.Options{
		Games:    200,
		Workers:  4,
		Strategy: strategy.NameNarrowing,
		Seed:     42,
	}, rec)
	require.NoError(t, err)

	assert.NotEmpty(t, rep.ID)
	assert.Equal(t, 200, rep.Games)
	assert.Equal(t, rep.Games, rep.Wins+rep.Losses)
	assert.Equal(t, uint64(42), rep.Seed)
	assert.Equal(t, 6, rep.MaxGuesses)
	assert.Greater(t, rep.Wins, rep.Losses)

	wins := 0
	for guesses, n := range rep.Distribution {
		assert.GreaterOrEqual(t, guesses, 1)
		assert.LessOrEqual(t, guesses, 6)
		wins += n
	}
	assert.Equal(t, rep.Wins, wins)
	assert.InDelta(t, float64(rep.Wins)/2, rep.WinRate, 1e-9)
	assert.GreaterOrEqual(t, rep.AverageGuesses, 1.0)
	assert.LessOrEqual(t, rep.AverageGuesses, 6.0)

	assert.Equal(t, float64(rep.Wins), testutil.ToFloat64(rec.Games.WithLabelValues("narrowing", "won")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Runs.WithLabelValues("narrowing")))
}

func TestRunIsReproducibleAcrossWorkerCounts(t *testing.T) {
	dict := dictionary(t)
	a, err := simulate.Run(context.Background(), dict, simulate.Options{Games: 60, Workers: 1, Seed: 7}, nil)
	require.NoError(t, err)
	b, err := simulate.Run(context.Background(), dict, simulate.Options{Games: 60, Workers: 8, Seed: 7}, nil)
	require.NoError(t, err)

	assert.Equal(t, a.Wins, b.Wins)
	assert.Equal(t, a.Distribution, b.Distribution)
	assert.Equal(t, a.AverageGuesses, b.AverageGuesses)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestRandomStrategyMostlyLoses(t *testing.T) {
	rep, err := simulate.Run(context.Background(), dictionary(t), simulate.Options{
		Games:    50,
		Strategy: strategy.NameRandom,
		Seed:     3,
	}, nil)
	require.NoError(t, err)
	assert.Greater(t, rep.Losses, rep.Wins)
}

func TestRunValidatesOptions(t *testing.T) {
	_, err := simulate.Run(context.Background(), dictionary(t), simulate.Options{}, nil)
	assert.ErrorIs(t, err, simulate.ErrNoGames)

	_, err = simulate.Run(context.Background(), dictionary(t), simulate.Options{Games: 1, Strategy: "entropy"}, nil)
	assert.ErrorIs(t, err, strategy.ErrUnknownStrategy)
}

func TestRunHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := simulate.Run(ctx, dictionary(t), simulate.Options{Games: 10, Seed: 1}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
