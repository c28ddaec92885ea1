package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tradeflows/promoflow/internal/models"
)

// PublishDuePosts moves every due pending post to a terminal state, earliest
// scheduled first. Adapter failures mark the single post failed and the sweep
// moves on; only store errors abort the sweep.
func (e *Engine) PublishDuePosts(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	due, err := e.posts.ListDuePending(ctx, e.now())
	if err != nil {
		return err
	}
	if len(due) == 0 {
		return nil
	}

	slog.Info("publishing due posts", "count", len(due))

	for _, post := range due {
		if err := e.publishOne(ctx, post); err != nil {
			return err
		}
	}
	return nil
}

// PublishPost publishes a single pending post immediately, bypassing its
// scheduled time. Used by the on-demand queue worker.
func (e *Engine) PublishPost(ctx context.Context, id int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	post, err := e.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return fmt.Errorf("post %d not found", id)
	}
	if post.Status != models.PostStatusPending {
		slog.Info("post is not pending, skipping publish", "id", id, "status", post.Status)
		return nil
	}

	return e.publishOne(ctx, post)
}

func (e *Engine) publishOne(ctx context.Context, post *models.Post) error {
	adapter, ok := e.registry.Get(post.Platform)
	if !ok {
		slog.Error("platform not found", "id", post.ID, "platform", post.Platform)
		return e.posts.MarkFailed(ctx, post.ID, "platform not available")
	}
	if !adapter.IsAuthenticated() {
		slog.Error("platform not authenticated", "id", post.ID, "platform", post.Platform)
		return e.posts.MarkFailed(ctx, post.ID, "platform not authenticated")
	}

	externalID, err := adapter.Publish(ctx, post.Content)
	if err != nil {
		slog.Error("failed to publish post",
			"id", post.ID, "platform", post.Platform, "error", err.Error())
		return e.posts.MarkFailed(ctx, post.ID, err.Error())
	}

	if err := e.posts.MarkPublished(ctx, post.ID, e.now(), externalID); err != nil {
		return err
	}

	slog.Info("post published",
		"id", post.ID, "platform", post.Platform, "external_id", externalID)
	return nil
}
