package worker

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPoolRunsEveryTask(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Stop()

	var counter int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		pool.Submit(func() {
			atomic.AddInt64(&counter, 1)
			wg.Done()
		})
	}
	wg.Wait()

	assert.Equal(t, int64(100), atomic.LoadInt64(&counter))
}

func TestWorkerPoolRunsTasksConcurrently(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Stop()

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	pool.Submit(func() {
		close(started)
		<-release
	})
	<-started

	// a second worker picks this up while the first is blocked
	pool.Submit(func() { close(done) })
	<-done
	close(release)
}

func TestWorkerPoolStopIsIdempotent(t *testing.T) {
	pool := NewWorkerPool(1)
	pool.Stop()
	assert.NotPanics(t, func() { pool.Stop() })
}

func TestWorkerPoolClampsWorkerCount(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Stop()

	var wg sync.WaitGroup
	wg.Add(1)
	pool.Submit(func() { wg.Done() })
	wg.Wait()
}
