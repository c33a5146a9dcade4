// Package scheduler runs independent units of render work on a pool of
// goroutines and reports their completion through a Task.
//
// Every unit receives a *rand.Rand that no other running unit can see, so
// units never contend on random number state.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
)

var (
	// ErrSchedulerClosed is returned for work submitted after Close
	ErrSchedulerClosed = errors.New("scheduler: closed")
	// ErrTaskPanicked wraps the value recovered from a panicking unit
	ErrTaskPanicked = errors.New("scheduler: task panicked")
	// ErrInvalidShape is returned for a bulk submission with a negative count
	ErrInvalidShape = errors.New("scheduler: negative bulk count")
	// ErrUnknownKind is returned by New for an unrecognised scheduler kind
	ErrUnknownKind = errors.New("scheduler: unknown kind")
)

// Func is a unit of work. random belongs to the unit until it returns.
type Func func(random *rand.Rand) error

// BulkFunc is one unit of a bulk submission, called once per index
type BulkFunc func(i int, random *rand.Rand) error

// Scheduler accepts work for later execution, possibly on other goroutines.
// A unit may submit more work to the same scheduler but must not Wait on it.
type Scheduler interface {
	// Schedule runs fn once
	Schedule(ctx context.Context, fn Func) *Task
	// Bulk runs fn for every index in [0, n). The task completes after all n
	// units have finished and carries the first error any of them returned.
	Bulk(ctx context.Context, n int, fn BulkFunc) *Task
	// Workers returns the number of units that can run at once
	Workers() int
	// Close finishes queued work and releases the workers. Later submissions fail.
	Close() error
}

// Scheduler kinds accepted by New
const (
	KindPool     = "pool"
	KindDispatch = "dispatch"
	KindInline   = "inline"
)

// Config selects and sizes a scheduler
type Config struct {
	Kind    string // One of KindPool, KindDispatch, KindInline; empty means KindPool
	Workers int    // Zero or less means runtime.NumCPU()
	Seed    int64  // Base seed for the per-worker or per-task random sources
}

// New creates the scheduler described by cfg
func New(cfg Config) (Scheduler, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	switch cfg.Kind {
	case KindPool, "":
		return NewThreadPool(workers, cfg.Seed), nil
	case KindDispatch:
		return NewDispatch(workers, cfg.Seed), nil
	case KindInline:
		return NewInline(cfg.Seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
	}
}

// Kinds lists the scheduler kinds New accepts
func Kinds() []string {
	return []string{KindPool, KindDispatch, KindInline}
}

// runUnit runs fn unless ctx is already done, turning a panic into an error
func runUnit(ctx context.Context, fn Func, random *rand.Rand) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
		}
	}()
	return fn(random)
}

// single adapts a Func to a one-unit bulk
func single(fn Func) BulkFunc {
	return func(_ int, random *rand.Rand) error { return fn(random) }
}
