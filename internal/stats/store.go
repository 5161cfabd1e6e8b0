package stats

import (
	"fmt"
	"maps"
	"sync"
	"time"
)

// Snapshot is the progress of one run at a point in time.
type Snapshot struct {
	Bytes       int
	Units       int
	Rows        int
	Widths      map[string]int // column name -> current width
	Started     time.Time
	LastUpdated time.Time
	LastError   error
	Done        bool
}

// Elapsed returns the run time up to the last update.
func (s Snapshot) Elapsed() time.Duration {
	if s.Started.IsZero() || s.LastUpdated.Before(s.Started) {
		return 0
	}
	return s.LastUpdated.Sub(s.Started)
}

// String is the one-line summary used in logs.
func (s Snapshot) String() string {
	return fmt.Sprintf("%d bytes, %d code points, %d rows in %s", s.Bytes, s.Units, s.Rows, s.Elapsed().Round(time.Millisecond))
}

// Store shares run progress between the pipeline and the signal handler.
// The zero value is ready to use.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Start resets the store for a new run.
func (s *Store) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.snapshot = Snapshot{Started: now, LastUpdated: now}
}

// Update records the current counters. widths may be nil to keep the
// previous column widths.
func (s *Store) Update(bytes, units, rows int, widths map[string]int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Bytes = bytes
	s.snapshot.Units = units
	s.snapshot.Rows = rows
	if widths != nil {
		s.snapshot.Widths = maps.Clone(widths)
	}
	s.snapshot.LastUpdated = time.Now()
}

// Fail records err without touching the counters.
func (s *Store) Fail(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
}

// Finish marks the run complete.
func (s *Store) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Done = true
	s.snapshot.LastUpdated = time.Now()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Widths = maps.Clone(s.snapshot.Widths)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
