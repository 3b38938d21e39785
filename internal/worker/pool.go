// Package worker provides the bounded pool that settlement updates run on.
// The pool is deliberately separate from the HTTP serving goroutines: a burst
// of accepted transactions queues here instead of occupying request capacity.
package worker

import (
	"sync"

	"github.com/ecakir/webhook-processor/internal/metrics"
)

type task func()

type Pool struct {
	wg     sync.WaitGroup
	mu     sync.Mutex
	jobs   chan task
	closed bool
}

func NewPool(workers, queue int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	p := &Pool{jobs: make(chan task, queue)}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				job()
				metrics.WorkerQueueDepth.Dec()
			}
		}()
	}
	return p
}

// Submit blocks when the queue is full. Settlement timers can outlive
// shutdown, so a submit after Stop is dropped rather than panicking; the
// corresponding records simply stay PROCESSING, same as a crash mid-delay.
func (p *Pool) Submit(f task) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	metrics.WorkerQueueDepth.Inc()
	p.jobs <- f
}

// Stop closes the queue and waits for queued jobs to finish.
func (p *Pool) Stop() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
	p.mu.Unlock()
	p.wg.Wait()
}
