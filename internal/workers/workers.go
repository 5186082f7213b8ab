package workers

// Workers runs a set of background workers as one unit.
type Workers struct {
	workers []Worker
}

// NewWorkers builds the aggregate over the given workers.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in registration order.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
