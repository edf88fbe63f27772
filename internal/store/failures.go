package store

import (
	"sort"
	"sync"

	"github.com/jonathan/resume-screener/internal/types"
)

// FailureLog accumulates classified row failures for manual remediation.
// Failed candidates never enter the candidate store.
type FailureLog struct {
	mu     sync.Mutex
	failed []types.FailedCandidate
}

// NewFailureLog creates an empty failure log.
func NewFailureLog() *FailureLog {
	return &FailureLog{}
}

// Append records a failed candidate.
func (l *FailureLog) Append(failed types.FailedCandidate) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failed = append(l.failed, failed)
}

// List returns a snapshot of the failures ordered by row number.
func (l *FailureLog) List() []types.FailedCandidate {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]types.FailedCandidate, len(l.failed))
	copy(out, l.failed)
	sort.Slice(out, func(i, j int) bool {
		return out[i].RowNumber < out[j].RowNumber
	})
	return out
}

// Len returns the number of recorded failures.
func (l *FailureLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.failed)
}

// Clear discards all recorded failures.
func (l *FailureLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failed = nil
}
