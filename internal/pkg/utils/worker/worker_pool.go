package worker

import "sync"

// WorkerPool manages a pool of workers pulling from one shared task queue
type WorkerPool struct {
	workers   []*Worker
	taskQueue chan Task
	stopOnce  sync.Once
}

// NewWorkerPool creates a new WorkerPool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers < 1 {
		numWorkers = 1
	}

	pool := &WorkerPool{
		workers:   make([]*Worker, numWorkers),
		taskQueue: make(chan Task, numWorkers*4),
	}

	for i := 0; i < numWorkers; i++ {
		worker := NewWorker(pool.taskQueue)
		worker.Start()
		pool.workers[i] = worker
	}

	return pool
}

// Stop stops all workers in the pool
func (p *WorkerPool) Stop() {
	p.stopOnce.Do(func() {
		for _, worker := range p.workers {
			worker.Stop()
		}
		close(p.taskQueue)
	})
}

// Submit submits a task to the worker pool
func (p *WorkerPool) Submit(task Task) {
	p.taskQueue <- task
}
