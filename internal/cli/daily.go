package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/daily"
)

func newDailyCmd(a *app) *cobra.Command {
	var (
		date   string
		reveal bool
	)
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Show the daily word number for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now()
			if date != "" {
				var err error
				if day, err = time.Parse("2006-01-02", date); err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
			}
			idx := daily.WordIndex(day, a.cfg.Daily.Salt, a.dict.Len())
			fmt.Fprintf(cmd.OutOrStdout(), "%s: word #%d of %d", daily.DateKey(day), idx, a.dict.Len())
			if reveal {
				fmt.Fprintf(cmd.OutOrStdout(), " (%s)", a.dict.At(idx))
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date as YYYY-MM-DD (default: today, UTC)")
	cmd.Flags().BoolVar(&reveal, "reveal", false, "Also print the word")
	return cmd
}
