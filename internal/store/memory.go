// internal/store/memory.go
//
// In-memory implementation of the Store interface.
//
// Characteristics:
//   - Stores reports keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"

	"github.com/robalobadob/wordle-solver/internal/simulate"
)

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu   sync.RWMutex               // guards runs map
	runs map[string]simulate.Report // keyed by Report.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{runs: make(map[string]simulate.Report)}
}

// SaveRun adds or replaces the report.
func (m *memory) SaveRun(ctx context.Context, r simulate.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[r.ID] = copyReport(r)
	return nil
}

// GetRun looks up a report by ID.
func (m *memory) GetRun(ctx context.Context, id string) (simulate.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.runs[id]; ok {
		return copyReport(r), nil
	}
	return simulate.Report{}, ErrNotFound
}

// ListRuns returns up to limit reports, newest first.
func (m *memory) ListRuns(ctx context.Context, limit int) ([]simulate.Report, error) {
	m.mu.RLock()
	out := make([]simulate.Report, 0, len(m.runs))
	for _, r := range m.runs {
		out = append(out, copyReport(r))
	}
	m.mu.RUnlock()

	newestFirst(out)
	if limit = normalizeLimit(limit); len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memory) Close() error { return nil }

// copyReport detaches the distribution map from the caller's copy.
func copyReport(r simulate.Report) simulate.Report {
	dist := make(map[int]int, len(r.Distribution))
	for k, v := range r.Distribution {
		dist[k] = v
	}
	r.Distribution = dist
	return r
}
