package scheduler

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/df07/go-parallel-pathtracer/pkg/core"
)

// spinFactor is how many rounds over the queues a submitter tries without blocking
const spinFactor = 4

// job is one queued unit: index i of a bulk submission
type job struct {
	bulk  *bulk
	index int
}

// queue is one worker's FIFO of jobs
type queue struct {
	mu   sync.Mutex
	cond *sync.Cond
	jobs []job
	done bool
}

func newQueue() *queue {
	q := &queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *queue) tryPush(j job) bool {
	if !q.mu.TryLock() {
		return false
	}
	q.jobs = append(q.jobs, j)
	q.mu.Unlock()
	q.cond.Signal()
	return true
}

func (q *queue) push(j job) {
	q.mu.Lock()
	q.jobs = append(q.jobs, j)
	q.mu.Unlock()
	q.cond.Signal()
}

func (q *queue) tryPop() (job, bool) {
	if !q.mu.TryLock() {
		return job{}, false
	}
	defer q.mu.Unlock()
	return q.popLocked()
}

// pop blocks until a job is available. It returns false once the queue is
// done and empty.
func (q *queue) pop() (job, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.jobs) == 0 && !q.done {
		q.cond.Wait()
	}
	return q.popLocked()
}

func (q *queue) popLocked() (job, bool) {
	if len(q.jobs) == 0 {
		return job{}, false
	}
	j := q.jobs[0]
	q.jobs[0] = job{}
	q.jobs = q.jobs[1:]
	return j, true
}

func (q *queue) close() {
	q.mu.Lock()
	q.done = true
	q.mu.Unlock()
	q.cond.Broadcast()
}

// ThreadPool runs units on a fixed set of worker goroutines, each with its
// own queue and its own random source. Idle workers steal from other queues.
type ThreadPool struct {
	queues  []*queue
	randoms []*rand.Rand
	next    atomic.Uint64
	wg      sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewThreadPool starts workers goroutines. Worker i draws from a source seeded with seed+i.
func NewThreadPool(workers int, seed int64) *ThreadPool {
	if workers < 1 {
		workers = 1
	}

	p := &ThreadPool{
		queues:  make([]*queue, workers),
		randoms: make([]*rand.Rand, workers),
	}
	for i := range p.queues {
		p.queues[i] = newQueue()
		p.randoms[i] = rand.New(rand.NewSource(seed + int64(i)))
	}

	p.wg.Add(workers)
	for i := range workers {
		go p.work(i)
	}

	core.Logger().Debug("scheduler started", "kind", KindPool, "workers", workers)
	return p
}

// work is the main worker loop
func (p *ThreadPool) work(id int) {
	defer p.wg.Done()
	random := p.randoms[id]
	n := len(p.queues)

	for {
		var j job
		ok := false
		for k := 0; k < n && !ok; k++ {
			j, ok = p.queues[(id+k)%n].tryPop()
		}
		if !ok {
			if j, ok = p.queues[id].pop(); !ok {
				return
			}
		}
		j.bulk.run(j.index, random)
	}
}

// enqueueLocked places j on some queue; the caller holds p.mu for reading
func (p *ThreadPool) enqueueLocked(j job) {
	n := uint64(len(p.queues))
	start := p.next.Add(1)
	for k := uint64(0); k < n*spinFactor; k++ {
		if p.queues[(start+k)%n].tryPush(j) {
			return
		}
	}
	p.queues[start%n].push(j)
}

// Schedule runs fn on one of the workers
func (p *ThreadPool) Schedule(ctx context.Context, fn Func) *Task {
	return p.Bulk(ctx, 1, single(fn))
}

// Bulk queues n units spread across the workers
func (p *ThreadPool) Bulk(ctx context.Context, n int, fn BulkFunc) *Task {
	if t, ok := checkShape(n); ok {
		return t
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return completedTask(ErrSchedulerClosed)
	}

	b := newBulk(ctx, n, fn)
	for i := range n {
		p.enqueueLocked(job{bulk: b, index: i})
	}
	return b.task
}

// Workers returns the number of worker goroutines
func (p *ThreadPool) Workers() int {
	return len(p.queues)
}

// Close runs every queued unit, then stops the workers. It is safe to call more than once.
func (p *ThreadPool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	for _, q := range p.queues {
		q.close()
	}
	p.wg.Wait()

	core.Logger().Debug("scheduler closed", "kind", KindPool)
	return nil
}
