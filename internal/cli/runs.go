package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/store"
)

func newRunsCmd(a *app) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "runs [id]",
		Short: "List stored simulation reports, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(cmd.Context(), a.cfg.Store)
			if err != nil {
				return err
			}
			defer st.Close()

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				rep, err := st.GetRun(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if asJSON {
					return json.NewEncoder(out).Encode(rep)
				}
				printReport(out, rep)
				return nil
			}

			runs, err := st.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if asJSON {
				return json.NewEncoder(out).Encode(runs)
			}
			for _, r := range runs {
				fmt.Fprintf(out, "%s  %s  %-9s  games=%d  win=%.2f%%  avg=%.3f\n",
					r.ID, r.StartedAt.Format("2006-01-02 15:04"), r.Strategy, r.Games, r.WinRate, r.AverageGuesses)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "l", store.DefaultListLimit, "Maximum reports to list")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}
