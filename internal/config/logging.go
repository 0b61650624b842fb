package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogging configures the global zerolog logger. Logs go to stderr so
// they never interleave with game output on stdout.
func (c *Config) SetupLogging() {
	if lvl, err := zerolog.ParseLevel(c.Log.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	var w io.Writer = os.Stderr
	if c.Log.Pretty {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}
