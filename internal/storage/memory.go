package storage

import (
	"cmp"
	"slices"
	"strconv"
	"sync"
	"time"
)

// Memory is a process-local Backend. It stands in when the database cannot be
// opened; nothing survives a restart.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
	runs   []RunEntry
	now    func() time.Time
}

var _ Backend = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		values: make(map[string]string),
		now:    time.Now,
	}
}

// Get returns the value stored under key and whether it exists.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// SetMax raises the integer stored under key to value and returns the
// value stored afterwards. Non-numeric values count as 0.
func (m *Memory) SetMax(key string, value int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, err := strconv.Atoi(m.values[key])
	if err != nil || stored < value {
		m.values[key] = strconv.Itoa(value)
		return value, nil
	}
	return stored, nil
}

// SaveRun records a finished run.
func (m *Memory) SaveRun(score int, duration time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := int64(len(m.runs) + 1)
	m.runs = append(m.runs, RunEntry{
		ID:        id,
		Score:     score,
		Duration:  duration,
		CreatedAt: m.now(),
	})
	return id, nil
}

// TopRuns returns the best N runs, highest score first.
func (m *Memory) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	m.mu.Lock()
	out := slices.Clone(m.runs)
	m.mu.Unlock()

	slices.SortStableFunc(out, func(a, b RunEntry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Stats aggregates the recorded runs.
func (m *Memory) Stats() (*RunStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := &RunStats{Runs: len(m.runs)}
	for _, r := range m.runs {
		stats.BestScore = max(stats.BestScore, r.Score)
		stats.TotalScore += int64(r.Score)
		stats.LongestRun = max(stats.LongestRun, r.Duration)
		if r.CreatedAt.After(stats.LastPlayed) {
			stats.LastPlayed = r.CreatedAt
		}
	}
	if stats.Runs > 0 {
		stats.AvgScore = float64(stats.TotalScore) / float64(stats.Runs)
	}
	return stats, nil
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
