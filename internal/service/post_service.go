package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tradeflows/promoflow/internal/models"
	"github.com/tradeflows/promoflow/internal/platform"
	"github.com/tradeflows/promoflow/internal/repository"
	"github.com/tradeflows/promoflow/internal/transfer"
)

type PostService interface {
	Create(ctx context.Context, pc *transfer.PostCreation) (int64, time.Duration, error)
	List(ctx context.Context, status string) ([]*models.Post, error)
	PostInfo(ctx context.Context, id int64) (*models.Post, error)
	Remove(ctx context.Context, id int64) error
}

type postService struct {
	pr       repository.PostRepository
	registry *platform.Registry
}

func NewPostService(pr repository.PostRepository, registry *platform.Registry) PostService {
	return &postService{
		pr:       pr,
		registry: registry,
	}
}

// Create inserts a manually authored pending post and returns its id plus
// the delay until its scheduled time, for handing to the publish queue.
func (s *postService) Create(ctx context.Context, pc *transfer.PostCreation) (int64, time.Duration, error) {
	var err error

	if pc.Content == "" {
		err = errors.New("content is empty")
		slog.Info(err.Error())
		return 0, 0, err
	}

	if _, ok := s.registry.Get(pc.Platform); !ok {
		err = fmt.Errorf("unknown platform: %s", pc.Platform)
		slog.Info(err.Error())
		return 0, 0, err
	}

	scheduledTime := time.Now()
	if pc.ScheduledTime != "" {
		scheduledTime, err = time.Parse(time.RFC3339, pc.ScheduledTime)
		if err != nil {
			slog.Info(err.Error())
			return 0, 0, errors.New("scheduled_time must be RFC 3339")
		}
	}

	post := &models.Post{
		Content:       pc.Content,
		Platform:      pc.Platform,
		Category:      pc.Category,
		ScheduledTime: scheduledTime,
		Status:        models.PostStatusPending,
	}

	id, err := s.pr.Create(ctx, post)
	if err != nil {
		return 0, 0, err
	}

	delay := time.Until(scheduledTime)
	if delay < 0 {
		delay = 0
	}

	return id, delay, nil
}

func (s *postService) List(ctx context.Context, status string) ([]*models.Post, error) {
	if status == "" {
		status = models.PostStatusPending
	}

	posts, err := s.pr.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("error listing posts")
	}
	return posts, nil
}

func (s *postService) PostInfo(ctx context.Context, id int64) (*models.Post, error) {
	post, err := s.pr.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errors.New("post doesn't exist")
	}
	return post, nil
}

func (s *postService) Remove(ctx context.Context, id int64) error {
	post, err := s.pr.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		err = errors.New("post doesn't exist")
		slog.Info(err.Error())
		return err
	}

	return s.pr.Remove(ctx, id)
}
