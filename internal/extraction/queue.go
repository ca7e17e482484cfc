package extraction

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// Queue dispatches extraction tasks to a fixed worker pool. Uploads enqueue
// and return immediately; the processing outlives the originating request.
type Queue struct {
	worker  *Worker
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Task
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*Queue)

func WithWorkers(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.ch = make(chan Task, n)
		}
	}
}

// WithProcessTimeout bounds one extraction end to end. It should exceed the
// extraction client's own HTTP ceiling so the client reports the timeout.
func WithProcessTimeout(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewQueue(worker *Worker, logger *slog.Logger, opts ...Option) *Queue {
	q := &Queue{
		worker:  worker,
		logger:  logger,
		workers: 4,
		timeout: 16 * time.Minute,
		ch:      make(chan Task, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *Queue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("extraction worker started", "worker_id", workerID)

				for task := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.worker.Process(ctx, task)
					cancel()

					if err != nil {
						q.logger.Error("extraction failed", "worker_id", workerID, "job_id", task.JobID, "error", err)
					} else {
						q.logger.Info("extraction processed", "worker_id", workerID, "job_id", task.JobID)
					}
				}

				q.logger.Info("extraction worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *Queue) Enqueue(_ context.Context, task Task) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", task.JobID)
		return errors.New("extraction queue is shut down")
	}
	select {
	case q.ch <- task:
		q.logger.Info("queued extraction", "job_id", task.JobID, "file", task.FileName)
	default:
		q.logger.Warn("queue full, applying backpressure", "job_id", task.JobID)
		q.ch <- task
	}
	return nil
}

func (q *Queue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
