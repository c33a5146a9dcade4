package scheduler

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
	"golang.org/x/sync/errgroup"
)

// Dispatch hands every unit to its own goroutine and lets the Go runtime
// place them, with at most limit units running at once. Each unit borrows
// a random source from a pool for its duration.
type Dispatch struct {
	limit    int
	randoms  sync.Pool
	nextSeed atomic.Int64
	inflight sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewDispatch creates a dispatcher running at most limit units at once
func NewDispatch(limit int, seed int64) *Dispatch {
	if limit < 1 {
		limit = 1
	}
	d := &Dispatch{limit: limit}
	d.nextSeed.Store(seed)
	d.randoms.New = func() any {
		return rand.New(rand.NewSource(d.nextSeed.Add(1) - 1))
	}

	core.Logger().Debug("scheduler started", "kind", KindDispatch, "workers", limit)
	return d
}

// Schedule runs fn on a new goroutine
func (d *Dispatch) Schedule(ctx context.Context, fn Func) *Task {
	return d.Bulk(ctx, 1, single(fn))
}

// Bulk runs n units through an errgroup; the group's first error is the task's error
func (d *Dispatch) Bulk(ctx context.Context, n int, fn BulkFunc) *Task {
	if t, ok := checkShape(n); ok {
		return t
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return completedTask(ErrSchedulerClosed)
	}

	task := newTask()
	d.inflight.Add(1)
	go func() {
		defer d.inflight.Done()

		var g errgroup.Group
		g.SetLimit(d.limit)
		for i := range n {
			g.Go(func() error {
				random := d.randoms.Get().(*rand.Rand)
				defer d.randoms.Put(random)
				return runUnit(ctx, func(r *rand.Rand) error { return fn(i, r) }, random)
			})
		}
		task.complete(g.Wait())
	}()
	return task
}

// Workers returns the concurrency limit
func (d *Dispatch) Workers() int {
	return d.limit
}

// Close waits for submitted work to finish. It is safe to call more than once.
func (d *Dispatch) Close() error {
	d.mu.Lock()
	already := d.closed
	d.closed = true
	d.mu.Unlock()

	d.inflight.Wait()
	if !already {
		core.Logger().Debug("scheduler closed", "kind", KindDispatch)
	}
	return nil
}
