package cli

import (
	"bufio"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/daily"
	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/random"
)

func newPlayCmd(a *app) *cobra.Command {
	var (
		secret  string
		isDaily bool
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if isDaily {
				secret = daily.Secret(a.dict, time.Now(), a.cfg.Daily.Salt)
			}
			g, err := a.newGame(secret, random.NewCrypto())
			if err != nil {
				return err
			}
			return playInteractive(cmd, g)
		},
	}
	cmd.Flags().StringVar(&secret, "secret", "", "Fixed secret word (default: random)")
	cmd.Flags().BoolVar(&isDaily, "daily", false, "Play today's daily word")
	return cmd
}

// newGame builds a game from a fixed secret, or a random one when secret is
// empty. A secret outside the dictionary ends the command.
func (a *app) newGame(secret string, rnd random.Source) (*game.Game, error) {
	opt := game.WithMaxGuesses(a.cfg.Game.MaxGuesses)
	if secret == "" {
		return game.NewRandom(a.dict, rnd, opt)
	}
	g, err := game.New(a.dict, secret, opt)
	if err != nil {
		log.Error().Err(err).Msg("cannot start game")
		return nil, err
	}
	return g, nil
}

// playInteractive reads guesses from the command's input until the game ends.
func playInteractive(cmd *cobra.Command, g *game.Game) error {
	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())
	for {
		st := g.State()
		fmt.Fprintf(out, "Make guess (%d left): ", st.Remaining)
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return err
			}
			fmt.Fprintln(out)
			return errors.New("input closed before the game ended")
		}

		res, err := g.SubmitGuess(in.Text())
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		fmt.Fprintln(out, renderRow(res))

		switch g.Outcome() {
		case game.Win:
			fmt.Fprintln(out, "You Win!")
			return nil
		case game.Loss:
			fmt.Fprintf(out, "You Lose! The word was %s.\n", g.Secret())
			return nil
		}
	}
}
