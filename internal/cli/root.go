// Package cli implements the wordle command line: interactive play, solver
// runs, simulations and the report server.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/config"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// app carries what every command needs once the root has loaded it.
type app struct {
	configPath string
	dictPath   string
	logLevel   string

	cfg  *config.Config
	dict *words.Dictionary
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "wordle",
		Short: "Play and solve Wordle",
		Long: `wordle plays the word-guessing game Wordle in the terminal and solves it
with guessing strategies, either one game at a time or as large simulations
whose reports can be stored and served over HTTP.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (env: WORDLE_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&a.dictPath, "dictionary", "", "Dictionary file, .json array or one word per line (env: WORDLE_DICTIONARY)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (env: LOG_LEVEL)")

	rootCmd.AddCommand(newPlayCmd(a))
	rootCmd.AddCommand(newSolveCmd(a))
	rootCmd.AddCommand(newSimulateCmd(a))
	rootCmd.AddCommand(newRunsCmd(a))
	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newDailyCmd(a))

	return rootCmd
}

// load reads configuration, sets up logging and loads the dictionary. A bad
// dictionary fails here, before any game exists.
func (a *app) load() error {
	path := a.configPath
	if path == "" {
		path = os.Getenv("WORDLE_CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if a.dictPath != "" {
		cfg.Dictionary.Path = a.dictPath
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	cfg.SetupLogging()

	dict, err := cfg.LoadDictionary()
	if err != nil {
		return fmt.Errorf("load dictionary: %w", err)
	}
	log.Debug().
		Str("path", cfg.Dictionary.Path).
		Int("words", dict.Len()).
		Int("length", dict.WordLength()).
		Msg("dictionary loaded")

	a.cfg, a.dict = cfg, dict
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
