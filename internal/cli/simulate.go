package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/metrics"
	"github.com/robalobadob/wordle-solver/internal/simulate"
	"github.com/robalobadob/wordle-solver/internal/store"
)

func newSimulateCmd(a *app) *cobra.Command {
	var (
		games   int
		workers int
		strat   string
		seed    uint64
		save    bool
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play many games with a strategy and report statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := simulate.Options{
				Games:      a.cfg.Simulation.Games,
				Workers:    a.cfg.Simulation.Workers,
				Strategy:   a.cfg.Simulation.Strategy,
				MaxGuesses: a.cfg.Game.MaxGuesses,
				Seed:       a.cfg.Simulation.Seed,
			}
			if cmd.Flags().Changed("games") {
				opts.Games = games
			}
			if cmd.Flags().Changed("workers") {
				opts.Workers = workers
			}
			if cmd.Flags().Changed("strategy") {
				opts.Strategy = strat
			}
			if cmd.Flags().Changed("seed") {
				opts.Seed = seed
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			rep, err := simulate.Run(ctx, a.dict, opts, metrics.New())
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), rep)

			if save {
				return a.saveRun(ctx, rep)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&games, "games", "n", 0, "Number of games (default from config: 10000)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent games (default: GOMAXPROCS)")
	cmd.Flags().StringVar(&strat, "strategy", "", "Strategy: random, narrowing")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed for reproducible runs")
	cmd.Flags().BoolVar(&save, "save", false, "Store the report in the configured run store")
	return cmd
}

func (a *app) saveRun(ctx context.Context, rep simulate.Report) error {
	st, err := store.Open(ctx, a.cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.SaveRun(ctx, rep); err != nil {
		return err
	}
	log.Info().Str("run", rep.ID).Str("store", a.cfg.Store.Driver).Msg("report saved")
	return nil
}
