package dispatcher

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Worker runs acknowledged jobs in the background with bounded concurrency.
type Worker struct {
	ctx     context.Context
	group   errgroup.Group
	pending sync.WaitGroup
	logger  zerolog.Logger
}

// NewWorker creates a Worker running at most limit jobs at once. Jobs get a
// context carrying ctx's values; cancelling ctx does not abort them.
func NewWorker(ctx context.Context, limit int, logger zerolog.Logger) *Worker {
	w := &Worker{
		ctx:    context.WithoutCancel(logger.WithContext(ctx)),
		logger: logger,
	}
	w.group.SetLimit(limit)
	return w
}

// Submit schedules fn without blocking the caller.
func (w *Worker) Submit(fn func(ctx context.Context)) {
	task := func() error {
		fn(w.ctx)
		return nil
	}
	if w.group.TryGo(task) {
		return
	}
	w.logger.Debug().Msg("Worker saturated, queueing job")
	w.pending.Add(1)
	go func() {
		defer w.pending.Done()
		w.group.Go(task)
	}()
}

// Wait blocks until every submitted job has finished.
func (w *Worker) Wait() {
	w.pending.Wait()
	_ = w.group.Wait()
}
