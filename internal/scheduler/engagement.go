package scheduler

import (
	"context"
	"log/slog"
)

// RefreshEngagement pulls fresh engagement counters for posts published
// within the trailing window. Best effort: any per-post fetch problem leaves
// the previous counters in place. Status fields are never touched here.
func (e *Engine) RefreshEngagement(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	since := e.now().Add(-e.cfg.EngagementWindow)
	posts, err := e.posts.ListPublishedSince(ctx, since)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		return nil
	}

	slog.Info("refreshing engagement metrics", "count", len(posts))

	for _, post := range posts {
		adapter, ok := e.registry.Get(post.Platform)
		if !ok || !adapter.IsAuthenticated() {
			continue
		}

		metrics, err := adapter.Engagement(ctx, post.PlatformPostID.String)
		if err != nil {
			slog.Debug("could not fetch engagement", "id", post.ID, "error", err.Error())
			continue
		}
		if metrics == nil {
			continue
		}

		err = e.posts.UpdateEngagement(ctx, post.ID,
			metrics.Likes, metrics.Comments, metrics.Shares, metrics.Views)
		if err != nil {
			return err
		}
	}
	return nil
}
