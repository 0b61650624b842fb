// Package config loads solver configuration.
//
// Precedence, lowest first: built-in defaults, an optional YAML file, a .env
// file in the working directory, then process environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/store"
	"github.com/robalobadob/wordle-solver/internal/strategy"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Config represents the complete solver configuration.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Game       GameConfig       `yaml:"game"`
	Simulation SimulationConfig `yaml:"simulation"`
	Store      store.Config     `yaml:"store"`
	Server     ServerConfig     `yaml:"server"`
	Daily      DailyConfig      `yaml:"daily"`
	Log        LogConfig        `yaml:"log"`
}

// DictionaryConfig selects the word list.
type DictionaryConfig struct {
	// Path to a .json array or a one-word-per-line file (empty = embedded list)
	Path       string `yaml:"path"`
	WordLength int    `yaml:"wordLength"`
}

// GameConfig configures each game.
type GameConfig struct {
	MaxGuesses int `yaml:"maxGuesses"`
}

// SimulationConfig configures the simulate command and POST /runs.
type SimulationConfig struct {
	Games    int    `yaml:"games"`
	Workers  int    `yaml:"workers"`
	Strategy string `yaml:"strategy"`
	Seed     uint64 `yaml:"seed"`
	// MaxGamesPerRequest caps simulations requested over HTTP.
	MaxGamesPerRequest int `yaml:"maxGamesPerRequest"`
}

// ServerConfig configures the report server.
type ServerConfig struct {
	Addr    string        `yaml:"addr"`
	Timeout time.Duration `yaml:"timeout"`
	// ClientOrigin is the single origin allowed by CORS.
	ClientOrigin string `yaml:"clientOrigin"`
}

// DailyConfig configures daily secret selection.
type DailyConfig struct {
	Salt string `yaml:"salt"`
}

// LogConfig configures zerolog.
type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Dictionary: DictionaryConfig{WordLength: words.DefaultLength},
		Game:       GameConfig{MaxGuesses: game.DefaultMaxGuesses},
		Simulation: SimulationConfig{
			Games:              10000,
			Strategy:           strategy.NameNarrowing,
			MaxGamesPerRequest: 5000,
		},
		Store: store.Config{
			Driver:     store.DriverMemory,
			SQLitePath: "./data/runs.db",
			Redis:      store.DefaultRedisConfig(),
		},
		Server: ServerConfig{
			Addr:         ":5175",
			Timeout:      30 * time.Second,
			ClientOrigin: "http://localhost:5173",
		},
		Daily: DailyConfig{Salt: "wordle-daily"},
		Log:   LogConfig{Level: "info", Pretty: true},
	}
}

// Load builds the effective configuration. path may be empty.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	// a missing .env is normal outside development
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Dictionary.WordLength <= 0 {
		return fmt.Errorf("dictionary.wordLength must be positive")
	}
	if c.Game.MaxGuesses <= 0 {
		return fmt.Errorf("game.maxGuesses must be positive")
	}
	if c.Simulation.Games <= 0 {
		return fmt.Errorf("simulation.games must be positive")
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation.workers must not be negative")
	}
	switch c.Store.Driver {
	case store.DriverMemory, store.DriverSQLite, store.DriverRedis:
	default:
		return fmt.Errorf("store.driver must be one of memory, sqlite, redis")
	}
	return nil
}

// LoadDictionary loads the configured word list, or the embedded one.
func (c *Config) LoadDictionary() (*words.Dictionary, error) {
	if c.Dictionary.Path == "" {
		return words.Default(c.Dictionary.WordLength)
	}
	return words.Load(c.Dictionary.Path, c.Dictionary.WordLength)
}

// applyEnv overrides fields from WORDLE_* variables. LOG_LEVEL and PORT are
// honoured as well for compatibility with the server's usual environment.
func (c *Config) applyEnv() error {
	str := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	integer := func(key string, dst *int) error {
		if v := os.Getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			*dst = n
		}
		return nil
	}

	str("WORDLE_DICTIONARY", &c.Dictionary.Path)
	str("WORDLE_STRATEGY", &c.Simulation.Strategy)
	str("WORDLE_STORE", &c.Store.Driver)
	str("WORDLE_SQLITE_PATH", &c.Store.SQLitePath)
	str("WORDLE_REDIS_URL", &c.Store.Redis.URL)
	str("WORDLE_DAILY_SALT", &c.Daily.Salt)
	str("CLIENT_ORIGIN", &c.Server.ClientOrigin)
	str("LOG_LEVEL", &c.Log.Level)
	str("WORDLE_LOG_LEVEL", &c.Log.Level)
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Addr = ":" + port
	}
	str("WORDLE_ADDR", &c.Server.Addr)

	for key, dst := range map[string]*int{
		"WORDLE_WORD_LENGTH": &c.Dictionary.WordLength,
		"WORDLE_MAX_GUESSES": &c.Game.MaxGuesses,
		"WORDLE_GAMES":       &c.Simulation.Games,
		"WORDLE_WORKERS":     &c.Simulation.Workers,
	} {
		if err := integer(key, dst); err != nil {
			return err
		}
	}
	if v := os.Getenv("WORDLE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("WORDLE_SEED: %w", err)
		}
		c.Simulation.Seed = seed
	}
	if v := os.Getenv("WORDLE_LOG_PRETTY"); v != "" {
		pretty, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("WORDLE_LOG_PRETTY: %w", err)
		}
		c.Log.Pretty = pretty
	}
	return nil
}
