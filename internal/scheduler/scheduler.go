package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is a recurring callback bound to a chat when it is scheduled.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context, chatID int64) error
}

// task is one scheduled run of a Job.
type task struct {
	job    Job
	chatID int64
	cancel context.CancelFunc
	done   chan struct{}
}

// stop cancels the task and waits for a run in progress to return.
func (t *task) stop() {
	t.cancel()
	<-t.done
}

// Queue runs scheduled jobs, each on its own ticker.
type Queue struct {
	runTimeout time.Duration
	logger     *slog.Logger

	mu     sync.Mutex
	base   context.Context
	stop   context.CancelFunc
	nextID int
	tasks  map[int]*task
}

func NewQueue(runTimeout time.Duration, logger *slog.Logger) *Queue {
	base, stop := context.WithCancel(context.Background())
	return &Queue{
		runTimeout: runTimeout,
		logger:     logger.With("component", "scheduler"),
		base:       base,
		stop:       stop,
		tasks:      make(map[int]*task),
	}
}

func (q *Queue) String() string {
	return "job-queue"
}

// Serve keeps the queue alive until ctx is done, then cancels every task.
func (q *Queue) Serve(ctx context.Context) error {
	<-ctx.Done()
	q.stop()
	q.CancelAll()
	return ctx.Err()
}

// Schedule starts job for chatID. The job runs once right away and then
// every Interval until cancelled.
func (q *Queue) Schedule(job Job, chatID int64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	ctx, cancel := context.WithCancel(q.base)
	t := &task{
		job:    job,
		chatID: chatID,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	id := q.nextID
	q.nextID++
	q.tasks[id] = t

	go func() {
		defer close(t.done)
		defer q.forget(id)
		q.run(ctx, t)
	}()

	q.logger.Info("job scheduled", "job", job.Name, "chat_id", chatID, "interval", job.Interval)
}

// CancelAll stops every scheduled task and waits for them to finish.
func (q *Queue) CancelAll() {
	q.mu.Lock()
	tasks := make([]*task, 0, len(q.tasks))
	for _, t := range q.tasks {
		tasks = append(tasks, t)
	}
	q.mu.Unlock()

	for _, t := range tasks {
		q.logger.Debug("removing job", "job", t.job.Name, "chat_id", t.chatID)
		t.stop()
	}
}

// active returns the number of scheduled tasks.
func (q *Queue) active() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

func (q *Queue) forget(id int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.tasks, id)
}

func (q *Queue) run(ctx context.Context, t *task) {
	q.runOnce(ctx, t)

	ticker := time.NewTicker(t.job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			q.logger.Debug("job stopped", "job", t.job.Name)
			return
		case <-ticker.C:
			q.runOnce(ctx, t)
		}
	}
}

func (q *Queue) runOnce(ctx context.Context, t *task) {
	runCtx, cancel := context.WithTimeout(ctx, q.runTimeout)
	defer cancel()

	if err := t.job.Run(runCtx, t.chatID); err != nil && ctx.Err() == nil {
		q.logger.Error("job failed", "job", t.job.Name, "error", err)
	}
}
