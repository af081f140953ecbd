package worker

// Task represents a unit of work to be processed by a worker
type Task func()

// Worker is a goroutine that processes tasks from a shared queue
type Worker struct {
	taskQueue chan Task
	stop      chan struct{}
}

// NewWorker creates a new Worker draining the given queue
func NewWorker(taskQueue chan Task) *Worker {
	return &Worker{
		taskQueue: taskQueue,
		stop:      make(chan struct{}),
	}
}

// Start starts the worker to process tasks
func (w *Worker) Start() {
	go func() {
		for {
			select {
			case task, ok := <-w.taskQueue:
				if !ok {
					return
				}
				task()
			case <-w.stop:
				return
			}
		}
	}()
}

// Stop stops the worker
func (w *Worker) Stop() {
	close(w.stop)
}
