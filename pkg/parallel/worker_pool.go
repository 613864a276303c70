// Package parallel runs independent analysis phases on a bounded pool of
// goroutines.
package parallel

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/dd0wney/cluso-socialgraph/pkg/logging"
)

// Task is a unit of work submitted to a WorkerPool.
type Task func(ctx context.Context) error

// WorkerPool manages a pool of worker goroutines
type WorkerPool struct {
	workers   int
	taskQueue chan job
	wg        sync.WaitGroup
	once      sync.Once
	mu        sync.RWMutex // Protects taskQueue from concurrent close during send
	closed    bool         // Protected by mu
	logger    logging.Logger
}

type job struct {
	ctx  context.Context
	task Task
	done chan<- error
}

var (
	// ErrTooManyWorkers is returned when the worker count exceeds the maximum allowed.
	ErrTooManyWorkers = errors.New("worker count exceeds maximum")
	// ErrPoolClosed is returned when submitting to a closed pool.
	ErrPoolClosed = errors.New("worker pool is closed")
	// ErrTaskPanic wraps a panic recovered from a task.
	ErrTaskPanic = errors.New("task panicked")
)

// MaxWorkers is the maximum number of workers allowed in a pool.
const MaxWorkers = math.MaxInt / 2

// NewWorkerPool creates a new worker pool with specified number of workers.
// Returns an error if the worker count exceeds MaxWorkers.
func NewWorkerPool(workers int, logger logging.Logger) (*WorkerPool, error) {
	if workers <= 0 {
		workers = 1
	}

	// Prevent overflow in buffer size calculation
	if workers > MaxWorkers {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrTooManyWorkers, workers, MaxWorkers)
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	pool := &WorkerPool{
		workers:   workers,
		taskQueue: make(chan job, workers*2),
		logger:    logger.With(logging.Component("parallel")),
	}

	pool.start()
	return pool, nil
}

// Workers returns the number of worker goroutines.
func (wp *WorkerPool) Workers() int {
	return wp.workers
}

func (wp *WorkerPool) start() {
	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker()
	}
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()

	for j := range wp.taskQueue {
		j.done <- wp.run(j)
	}
}

// run executes one task, turning a panic into ErrTaskPanic so a worker
// never dies with the pool.
func (wp *WorkerPool) run(j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			wp.logger.Error("worker panic recovered", logging.Any("panic", r))
			err = fmt.Errorf("%w: %v", ErrTaskPanic, r)
		}
	}()
	if ctxErr := j.ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return j.task(j.ctx)
}

// Submit queues a task and returns a channel that receives its result.
// Returns ErrPoolClosed if the pool is closed.
func (wp *WorkerPool) Submit(ctx context.Context, task Task) (<-chan error, error) {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	if wp.closed {
		return nil, ErrPoolClosed
	}

	done := make(chan error, 1)
	select {
	case wp.taskQueue <- job{ctx: ctx, task: task, done: done}:
		return done, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// RunAll submits every task and waits for all of them. The returned error
// joins the failures in task order; nil means every task succeeded.
func (wp *WorkerPool) RunAll(ctx context.Context, tasks ...Task) error {
	results := make([]<-chan error, len(tasks))
	errs := make([]error, len(tasks))

	for i, task := range tasks {
		done, err := wp.Submit(ctx, task)
		if err != nil {
			errs[i] = err
			continue
		}
		results[i] = done
	}

	for i, done := range results {
		if done != nil {
			errs[i] = <-done
		}
	}
	return errors.Join(errs...)
}

// Closed reports whether Close has been called.
func (wp *WorkerPool) Closed() bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	return wp.closed
}

// Close shuts down the worker pool and waits for queued tasks to finish.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		wp.mu.Lock()
		wp.closed = true
		close(wp.taskQueue)
		wp.mu.Unlock()
	})
	wp.wg.Wait()
}
