package scheduler

import (
	"context"
	"log/slog"
)

// AggregateDailyAnalytics folds today's published posts into one summary row
// per platform. The analytics upsert accumulates, so this is expected to run
// exactly once per day; a repeated run would double-count.
func (e *Engine) AggregateDailyAnalytics(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	today := e.today()

	for _, name := range e.registry.Names() {
		stats, err := e.posts.StatsForDay(ctx, today, name)
		if err != nil {
			return err
		}
		if stats.TotalPosts == 0 {
			continue
		}

		if err := e.analytics.Accumulate(ctx, stats); err != nil {
			return err
		}

		slog.Info("aggregated daily analytics",
			"platform", name, "posts", stats.TotalPosts, "likes", stats.TotalLikes)
	}
	return nil
}
