package scheduler

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
)

// Task is the completion handle for scheduled work
type Task struct {
	done chan struct{}
	once sync.Once
	err  error
}

func newTask() *Task {
	return &Task{done: make(chan struct{})}
}

// completedTask returns a task that has already finished with err
func completedTask(err error) *Task {
	t := newTask()
	t.complete(err)
	return t
}

func (t *Task) complete(err error) {
	t.once.Do(func() {
		t.err = err
		close(t.done)
	})
}

// Done is closed once the task has finished
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task finishes and returns its error
func (t *Task) Wait() error {
	<-t.done
	return t.err
}

// Err returns the task's error, or nil while it is still running
func (t *Task) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// Then runs fn on s after t succeeds. If t fails, fn is skipped and the
// returned task carries t's error.
func (t *Task) Then(ctx context.Context, s Scheduler, fn Func) *Task {
	next := newTask()
	go func() {
		if err := t.Wait(); err != nil {
			next.complete(err)
			return
		}
		next.complete(s.Schedule(ctx, fn).Wait())
	}()
	return next
}

// WhenAll completes once every task has finished. It carries the error of
// the first failed task in argument order.
func WhenAll(tasks ...*Task) *Task {
	all := newTask()
	go func() {
		var first error
		for _, t := range tasks {
			if err := t.Wait(); err != nil && first == nil {
				first = err
			}
		}
		all.complete(first)
	}()
	return all
}

// bulk is the shared state of one bulk submission. The last unit to finish
// completes the task.
type bulk struct {
	ctx       context.Context
	fn        BulkFunc
	task      *Task
	remaining atomic.Int64
	firstErr  atomic.Pointer[error]
}

func newBulk(ctx context.Context, n int, fn BulkFunc) *bulk {
	b := &bulk{ctx: ctx, fn: fn, task: newTask()}
	b.remaining.Store(int64(n))
	return b
}

func (b *bulk) run(i int, random *rand.Rand) {
	err := runUnit(b.ctx, func(r *rand.Rand) error { return b.fn(i, r) }, random)
	if err != nil {
		b.firstErr.CompareAndSwap(nil, &err)
	}
	if b.remaining.Add(-1) == 0 {
		var result error
		if p := b.firstErr.Load(); p != nil {
			result = *p
		}
		b.task.complete(result)
	}
}

// checkShape handles the bulk counts that need no workers
func checkShape(n int) (*Task, bool) {
	switch {
	case n < 0:
		return completedTask(ErrInvalidShape), true
	case n == 0:
		return completedTask(nil), true
	}
	return nil, false
}
