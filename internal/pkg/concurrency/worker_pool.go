package concurrency

import (
	"context"
	"sync"
	"time"

	"hashcrack/internal/core/domain"
)

// WorkerPool runs independent attacks on a fixed number of goroutines. Each
// task owns its engine and source, so workers share nothing.
type WorkerPool struct {
	workers    []*Worker
	tasks      chan Task
	results    chan Result
	numWorkers int
	metrics    *PoolMetrics
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

type Worker struct {
	id      int
	tasks   <-chan Task
	results chan<- Result
	pool    *PoolMetrics
}

type Task struct {
	ID       string
	Function func(ctx context.Context) (domain.CrackResult, error)
	// Timeout bounds the task through its context. Zero means no limit.
	Timeout time.Duration
}

type Result struct {
	TaskID   string
	Value    domain.CrackResult
	Error    error
	Duration time.Duration
	WorkerID int
}

type PoolMetrics struct {
	mu             sync.RWMutex
	ActiveWorkers  int
	CompletedTasks int64
	FailedTasks    int64
	TotalDuration  time.Duration
}

type PoolStats struct {
	ActiveWorkers  int
	CompletedTasks int64
	FailedTasks    int64
	AverageLatency time.Duration
}

func NewWorkerPool(numWorkers int, queueSize int) *WorkerPool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	pool := &WorkerPool{
		workers:    make([]*Worker, numWorkers),
		tasks:      make(chan Task, queueSize),
		results:    make(chan Result, queueSize),
		numWorkers: numWorkers,
		metrics:    &PoolMetrics{},
	}

	for i := 0; i < numWorkers; i++ {
		pool.workers[i] = &Worker{
			id:      i,
			tasks:   pool.tasks,
			results: pool.results,
			pool:    pool.metrics,
		}
	}

	return pool
}

func (p *WorkerPool) Start(ctx context.Context) {
	for _, worker := range p.workers {
		p.wg.Add(1)
		go worker.start(ctx, &p.wg)
	}
}

func (p *WorkerPool) Submit(task Task) {
	p.tasks <- task
}

func (p *WorkerPool) Results() <-chan Result {
	return p.results
}

// Stop stops accepting tasks, waits for queued ones to finish and closes
// Results. Drain Results concurrently or Stop may block on a full queue.
func (p *WorkerPool) Stop() {
	p.stopOnce.Do(func() {
		close(p.tasks)
		p.wg.Wait()
		close(p.results)
	})
}

func (p *WorkerPool) Size() int {
	return p.numWorkers
}

func (p *WorkerPool) Stats() PoolStats {
	p.metrics.mu.RLock()
	defer p.metrics.mu.RUnlock()

	stats := PoolStats{
		ActiveWorkers:  p.metrics.ActiveWorkers,
		CompletedTasks: p.metrics.CompletedTasks,
		FailedTasks:    p.metrics.FailedTasks,
	}
	if done := p.metrics.CompletedTasks + p.metrics.FailedTasks; done > 0 {
		stats.AverageLatency = p.metrics.TotalDuration / time.Duration(done)
	}
	return stats
}

func (w *Worker) start(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	// Queued tasks still run after ctx is done; their engines observe the
	// cancelled context and return Cancelled straight away.
	for task := range w.tasks {
		w.pool.setActive(1)
		startTime := time.Now()

		value, err := w.executeTask(ctx, task)

		duration := time.Since(startTime)
		w.pool.record(err == nil, duration)
		w.pool.setActive(-1)

		w.results <- Result{
			TaskID:   task.ID,
			Value:    value,
			Error:    err,
			Duration: duration,
			WorkerID: w.id,
		}
	}
}

func (w *Worker) executeTask(ctx context.Context, task Task) (domain.CrackResult, error) {
	if task.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, task.Timeout)
		defer cancel()
	}
	return task.Function(ctx)
}

func (m *PoolMetrics) setActive(delta int) {
	m.mu.Lock()
	m.ActiveWorkers += delta
	m.mu.Unlock()
}

func (m *PoolMetrics) record(success bool, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if success {
		m.CompletedTasks++
	} else {
		m.FailedTasks++
	}
	m.TotalDuration += duration
}
