// internal/store/store.go
//
// Persistence for simulation reports.
//
// Only aggregate run summaries are stored; individual games and their guesses
// never leave memory. Three backends share the Store interface:
//   - memory: map guarded by an RWMutex, lost on restart.
//   - sqlite: file database with embedded, idempotent migrations.
//   - redis:  JSON values plus a sorted index by start time.

package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/robalobadob/wordle-solver/internal/simulate"
)

// ErrNotFound is returned by GetRun for an unknown id.
var ErrNotFound = errors.New("store: run not found")

// DefaultListLimit applies when ListRuns is called with limit <= 0.
const DefaultListLimit = 20

// Store persists simulation reports. Implementations are safe for concurrent use.
type Store interface {
	// SaveRun persists or replaces a report, keyed by its ID.
	SaveRun(ctx context.Context, r simulate.Report) error

	// GetRun retrieves a report by ID, or ErrNotFound.
	GetRun(ctx context.Context, id string) (simulate.Report, error)

	// ListRuns returns the most recently started reports first.
	ListRuns(ctx context.Context, limit int) ([]simulate.Report, error)

	// Close releases the backend's resources.
	Close() error
}

// Driver names accepted by Open.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Config selects and configures a backend.
type Config struct {
	Driver     string      `yaml:"driver"`
	SQLitePath string      `yaml:"sqlitePath"`
	Redis      RedisConfig `yaml:"redis"`
}

// Open builds the configured backend.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case DriverMemory, "":
		return NewMemoryStore(), nil
	case DriverSQLite:
		return OpenSQLite(ctx, cfg.SQLitePath)
	case DriverRedis:
		return OpenRedis(ctx, cfg.Redis)
	default:
		return nil, fmt.Errorf("store: unknown driver %q", cfg.Driver)
	}
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}

// newestFirst orders reports by start time, latest first, ties by ID.
func newestFirst(rs []simulate.Report) {
	sort.Slice(rs, func(i, j int) bool {
		if !rs[i].StartedAt.Equal(rs[j].StartedAt) {
			return rs[i].StartedAt.After(rs[j].StartedAt)
		}
		return rs[i].ID < rs[j].ID
	})
}
