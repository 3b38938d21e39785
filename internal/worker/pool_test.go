package worker

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestPoolRunsAllJobs(t *testing.T) {
	p := NewPool(4, 16)
	var n atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		p.Submit(func() {
			n.Add(1)
			wg.Done()
		})
	}
	wg.Wait()
	p.Stop()
	if n.Load() != 100 {
		t.Fatalf("expected 100 jobs to run, got %d", n.Load())
	}
}

func TestStopDrainsQueue(t *testing.T) {
	p := NewPool(1, 64)
	var n atomic.Int64
	for i := 0; i < 50; i++ {
		p.Submit(func() { n.Add(1) })
	}
	p.Stop()
	if n.Load() != 50 {
		t.Fatalf("Stop must wait for queued jobs, ran %d of 50", n.Load())
	}
}

func TestZeroWorkersClampedToOne(t *testing.T) {
	p := NewPool(0, 4)
	done := make(chan struct{})
	p.Submit(func() { close(done) })
	<-done
	p.Stop()
}
