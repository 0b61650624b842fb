package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/httpserver"
	"github.com/robalobadob/wordle-solver/internal/metrics"
	"github.com/robalobadob/wordle-solver/internal/store"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve simulation reports and metrics over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			st, err := store.Open(cmd.Context(), a.cfg.Store)
			if err != nil {
				return err
			}
			defer st.Close()

			srv := httpserver.New(st, a.dict, metrics.New(), httpserver.Options{
				Timeout:            a.cfg.Server.Timeout,
				ClientOrigin:       a.cfg.Server.ClientOrigin,
				MaxGamesPerRequest: a.cfg.Simulation.MaxGamesPerRequest,
				MaxGuesses:         a.cfg.Game.MaxGuesses,
				Workers:            a.cfg.Simulation.Workers,
			})
			log.Info().Str("addr", addr).Str("store", a.cfg.Store.Driver).Msg("starting report server")
			return srv.Start(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config: :5175)")
	return cmd
}
