// Package simulate plays many independent solver games and aggregates the
// results into a Report.
//
// Every game owns its Game, its strategy (and so its candidate pool) and a
// random source seeded from the run seed and the game's index. Only the
// dictionary, which is read-only, and the metrics recorder are shared, so
// a run with a fixed seed produces the same report at any worker count.
package simulate

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/metrics"
	"github.com/robalobadob/wordle-solver/internal/random"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/strategy"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// ErrNoGames is returned when a run is asked to play zero games.
var ErrNoGames = errors.New("simulate: games must be positive")

// Options configures a run.
type Options struct {
	Games      int
	Workers    int // defaults to GOMAXPROCS
	Strategy   string
	MaxGuesses int
	Seed       uint64 // 0 picks a random seed, recorded in the report
}

// Report aggregates a run.
type Report struct {
	ID             string        `json:"id"`
	Strategy       string        `json:"strategy"`
	Games          int           `json:"games"`
	Wins           int           `json:"wins"`
	Losses         int           `json:"losses"`
	WinRate        float64       `json:"winRate"`        // percent
	AverageGuesses float64       `json:"averageGuesses"` // over every game
	Distribution   map[int]int   `json:"distribution"`   // guesses -> wins
	MaxGuesses     int           `json:"maxGuesses"`
	Seed           uint64        `json:"seed"`
	StartedAt      time.Time     `json:"startedAt"`
	Duration       time.Duration `json:"duration"`
}

// Run plays opts.Games games against dict. rec may be nil.
func Run(ctx context.Context, dict *words.Dictionary, opts Options, rec *metrics.Recorder) (Report, error) {
	if opts.Games <= 0 {
		return Report{}, ErrNoGames
	}
	if opts.Strategy == "" {
		opts.Strategy = strategy.NameNarrowing
	}
	if opts.MaxGuesses <= 0 {
		opts.MaxGuesses = game.DefaultMaxGuesses
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Seed == 0 {
		opts.Seed = random.Seed()
	}
	// fail on a bad strategy name before spawning anything
	if _, err := strategy.New(opts.Strategy, dict, random.NewSeeded(opts.Seed)); err != nil {
		return Report{}, err
	}

	started := time.Now().UTC()
	scores := make([]solver.Score, opts.Games)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i := 0; i < opts.Games; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			score, err := playOne(dict, opts, uint64(i))
			if err != nil {
				return err
			}
			scores[i] = score
			rec.ObserveGame(opts.Strategy, string(score.Outcome), score.Guesses)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	rep := aggregate(scores)
	rep.ID = uuid.NewString()
	rep.Strategy = opts.Strategy
	rep.MaxGuesses = opts.MaxGuesses
	rep.Seed = opts.Seed
	rep.StartedAt = started
	rep.Duration = time.Since(started)
	rec.ObserveRun(opts.Strategy)

	log.Info().
		Str("run", rep.ID).
		Str("strategy", rep.Strategy).
		Int("games", rep.Games).
		Float64("winRate", rep.WinRate).
		Float64("averageGuesses", rep.AverageGuesses).
		Dur("duration", rep.Duration).
		Msg("simulation finished")
	return rep, nil
}

// playOne runs game i of a run with its own random source.
func playOne(dict *words.Dictionary, opts Options, i uint64) (solver.Score, error) {
	rnd := random.NewSeeded(opts.Seed + i)
	g, err := game.NewRandom(dict, rnd, game.WithMaxGuesses(opts.MaxGuesses))
	if err != nil {
		return solver.Score{}, err
	}
	s, err := strategy.New(opts.Strategy, dict, rnd)
	if err != nil {
		return solver.Score{}, err
	}
	score, err := solver.Run(g, s)
	if err != nil {
		return solver.Score{}, fmt.Errorf("simulate: game %d: %w", i, err)
	}
	return score, nil
}

func aggregate(scores []solver.Score) Report {
	rep := Report{Games: len(scores), Distribution: map[int]int{}}
	total := 0
	for _, s := range scores {
		total += s.Guesses
		if s.Outcome == game.Win {
			rep.Wins++
			rep.Distribution[s.Guesses]++
		} else {
			rep.Losses++
		}
	}
	if rep.Games > 0 {
		rep.WinRate = float64(rep.Wins) / float64(rep.Games) * 100
		rep.AverageGuesses = float64(total) / float64(rep.Games)
	}
	return rep
}
