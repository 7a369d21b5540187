package vectors

import (
	"sort"
	"sync"
	"time"
)

// Tally counts the checks a sweep has performed, per operation.
// It is safe for concurrent use.
type Tally struct {
	mu sync.RWMutex

	checked map[string]int64

	// StartedAt is when the tally was created
	StartedAt time.Time

	// LastUpdateTime is when a count was last added
	LastUpdateTime time.Time
}

// NewTally creates a Tally with zero counts.
func NewTally() *Tally {
	now := time.Now()
	return &Tally{
		checked:        make(map[string]int64),
		StartedAt:      now,
		LastUpdateTime: now,
	}
}

// Add increments the count for op by n.
func (t *Tally) Add(op string, n int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.checked[op] += n
	t.LastUpdateTime = time.Now()
}

// Checked returns the count for op.
func (t *Tally) Checked(op string) int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.checked[op]
}

// Total returns the count across all operations.
func (t *Tally) Total() int64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var total int64
	for _, n := range t.checked {
		total += n
	}
	return total
}

// Ops returns the operations with a non-zero count, sorted.
func (t *Tally) Ops() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	ops := make([]string, 0, len(t.checked))
	for op := range t.checked {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// Elapsed returns the time between creation and the last update.
func (t *Tally) Elapsed() time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.LastUpdateTime.Sub(t.StartedAt)
}
