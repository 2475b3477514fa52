package processor

import (
	"context"
	"sync"
)

// Job is a unit of work submitted to the workerPool
type Job func(ctx context.Context)

// workerPool runs jobs using a fixed number of goroutines
type workerPool struct {
	jobs       chan Job
	done       chan struct{}
	wg         sync.WaitGroup
	submitting sync.WaitGroup
	workers    int
	closeMu    sync.Mutex
	closed     bool
}

// newWorkerPool creates a new worker pool with the specified number of
// workers and job queue capacity.
func newWorkerPool(workers, queue int) *workerPool {
	if workers <= 0 {
		workers = 1
	}
	if queue <= 0 {
		queue = workers * 2
	}
	return &workerPool{
		jobs:    make(chan Job, queue),
		done:    make(chan struct{}),
		workers: workers,
	}
}

// Start begins the worker goroutines. Workers run until ctx is done or the
// pool is closed and the queue is drained.
func (p *workerPool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case job, ok := <-p.jobs:
					if !ok {
						return
					}
					job(ctx)
				}
			}
		}()
	}
}

// Submit enqueues a job for processing. It returns ErrPoolClosed once Close
// has been called, including for a Submit blocked on a full queue.
func (p *workerPool) Submit(job Job) error {
	p.closeMu.Lock()
	if p.closed {
		p.closeMu.Unlock()
		return ErrPoolClosed
	}
	p.submitting.Add(1)
	p.closeMu.Unlock()
	defer p.submitting.Done()

	select {
	case p.jobs <- job:
		return nil
	case <-p.done:
		return ErrPoolClosed
	}
}

// Close stops accepting new jobs and waits for workers to finish
func (p *workerPool) Close() {
	p.closeMu.Lock()
	if p.closed {
		p.closeMu.Unlock()
		return
	}
	p.closed = true
	close(p.done)
	p.closeMu.Unlock()

	p.submitting.Wait()
	close(p.jobs)
	p.wg.Wait()
}

// ErrPoolClosed is returned if a Submit is attempted after Close
var ErrPoolClosed = &PoolError{"worker pool closed"}

// PoolError provides a simple typed error for pool operations
type PoolError struct{ msg string }

func (e *PoolError) Error() string { return e.msg }
