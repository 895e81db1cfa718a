package worker

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vytor/clubstats/internal/logger"
)

// RunStage runs fn once per item with at most limit tasks in flight and
// blocks until every task has finished. The returned error is the first
// task error; once a task fails, tasks that have not started yet are
// skipped. Each item is handed to exactly one task, so tasks can mutate
// their item without locking.
func RunStage[T any](ctx context.Context, name string, limit int, items []T, fn func(context.Context, T) error) error {
	if limit <= 0 {
		limit = 1
	}

	log := logger.FromContext(ctx).WithPrefix("worker").WithField("stage", name)
	log.Debug("starting stage with %d items, limit %d", len(items), limit)
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, item)
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("stage failed after %v: %v", time.Since(start), err)
		return err
	}

	log.Info("stage completed in %v", time.Since(start))
	return nil
}
