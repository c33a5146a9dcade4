package scheduler

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
)

// Inline runs every unit on the calling goroutine before returning.
// Tasks it returns are already complete. Each submission gets its own
// random source seeded from the scheduler's, so units may submit more
// work to the same Inline.
type Inline struct {
	mu     sync.Mutex
	random *rand.Rand
	closed atomic.Bool
}

// NewInline creates an inline scheduler whose submissions draw their seeds from seed
func NewInline(seed int64) *Inline {
	return &Inline{random: rand.New(rand.NewSource(seed))}
}

// Schedule runs fn immediately
func (s *Inline) Schedule(ctx context.Context, fn Func) *Task {
	return s.Bulk(ctx, 1, single(fn))
}

// Bulk runs the n units in index order
func (s *Inline) Bulk(ctx context.Context, n int, fn BulkFunc) *Task {
	if t, ok := checkShape(n); ok {
		return t
	}
	if s.closed.Load() {
		return completedTask(ErrSchedulerClosed)
	}

	s.mu.Lock()
	random := rand.New(rand.NewSource(s.random.Int63()))
	s.mu.Unlock()

	b := newBulk(ctx, n, fn)
	for i := range n {
		b.run(i, random)
	}
	return b.task
}

// Workers is always 1
func (s *Inline) Workers() int {
	return 1
}

// Close rejects later submissions
func (s *Inline) Close() error {
	s.closed.Store(true)
	return nil
}
