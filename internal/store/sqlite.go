// internal/store/sqlite.go
//
// SQLite-backed Store.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Applying embedded migrations from sql/*.sql (idempotent, recorded in _migrations).
//   - Reading and writing run reports.

package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/simulate"
)

//go:embed sql/*.sql
var migrations embed.FS

// fixed-width so started_at sorts correctly as text
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) a SQLite database file and
// applies pending migrations.
func OpenSQLite(ctx context.Context, dsn string) (Store, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

// openDB ensures the parent directory exists, then opens the file with busy
// timeout and WAL journaling.
func openDB(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, errors.New("store: sqlite path is empty")
	}
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies the embedded migrations in lexical order, each in its own
// transaction, skipping files already recorded in _migrations.
func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	var files []string
	if err := fs.WalkDir(migrations, "sql", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

const runColumns = `id, strategy, games, wins, losses, win_rate, average_guesses,
	distribution, max_guesses, seed, started_at, duration_ns`

func (s *sqliteStore) SaveRun(ctx context.Context, r simulate.Report) error {
	dist, err := json.Marshal(r.Distribution)
	if err != nil {
		return fmt.Errorf("encode distribution: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO runs (`+runColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Strategy, r.Games, r.Wins, r.Losses, r.WinRate, r.AverageGuesses,
		string(dist), r.MaxGuesses, strconv.FormatUint(r.Seed, 10),
		r.StartedAt.UTC().Format(timeLayout), int64(r.Duration),
	)
	return err
}

func (s *sqliteStore) GetRun(ctx context.Context, id string) (simulate.Report, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id=?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return simulate.Report{}, ErrNotFound
	}
	return r, err
}

func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]simulate.Report, error) {
	limit = normalizeLimit(limit)
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+runColumns+`
		FROM runs
		ORDER BY started_at DESC, id ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]simulate.Report, 0, limit)
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *sqliteStore) Close() error { return s.db.Close() }

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (simulate.Report, error) {
	var (
		r                 simulate.Report
		dist, seed, start string
		durationNanos     int64
	)
	if err := row.Scan(&r.ID, &r.Strategy, &r.Games, &r.Wins, &r.Losses, &r.WinRate,
		&r.AverageGuesses, &dist, &r.MaxGuesses, &seed, &start, &durationNanos); err != nil {
		return simulate.Report{}, err
	}
	if err := json.Unmarshal([]byte(dist), &r.Distribution); err != nil {
		return simulate.Report{}, fmt.Errorf("decode distribution: %w", err)
	}
	var err error
	if r.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
		return simulate.Report{}, fmt.Errorf("decode seed: %w", err)
	}
	if r.StartedAt, err = time.Parse(timeLayout, start); err != nil {
		return simulate.Report{}, fmt.Errorf("decode started_at: %w", err)
	}
	r.Duration = time.Duration(durationNanos)
	return r, nil
}
