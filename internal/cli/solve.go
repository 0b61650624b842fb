package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/random"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/strategy"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		secret string
		strat  string
		seed   uint64
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Watch a strategy solve one game",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strat == "" {
				strat = a.cfg.Simulation.Strategy
			}
			if seed == 0 {
				seed = random.Seed()
			}
			rnd := random.NewSeeded(seed)

			g, err := a.newGame(secret, rnd)
			if err != nil {
				return err
			}
			s, err := strategy.New(strat, a.dict, rnd)
			if err != nil {
				return err
			}
			score, err := solver.Run(g, s)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range g.State().History {
				fmt.Fprintln(out, renderRow(r))
			}
			fmt.Fprintf(out, "%s in %d guesses (secret %s, strategy %s, seed %d)\n",
				score.Outcome, score.Guesses, score.Secret, strat, seed)
			return nil
		},
	}
	cmd.Flags().StringVar(&secret, "secret", "", "Fixed secret word (default: random)")
	cmd.Flags().StringVar(&strat, "strategy", "", "Strategy: random, narrowing")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (default: random)")
	return cmd
}
