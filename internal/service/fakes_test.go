package service

import (
	"context"
	"errors"
	"time"

	"github.com/tradeflows/promoflow/internal/models"
)

type stubPostRepo struct {
	posts      []*models.Post
	createdID  int64
	created    []*models.Post
	removedIDs []int64
	listErr    bool
}

func (r *stubPostRepo) Create(ctx context.Context, post *models.Post) (int64, error) {
	r.created = append(r.created, post)
	r.createdID++
	return r.createdID, nil
}

func (r *stubPostRepo) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	for _, p := range r.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *stubPostRepo) ListByStatus(ctx context.Context, status string) ([]*models.Post, error) {
	if r.listErr {
		return nil, errors.New("list failed")
	}
	var out []*models.Post
	for _, p := range r.posts {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPostRepo) ListDuePending(ctx context.Context, now time.Time) ([]*models.Post, error) {
	return nil, nil
}

func (r *stubPostRepo) ListPublishedSince(ctx context.Context, since time.Time) ([]*models.Post, error) {
	var out []*models.Post
	for _, p := range r.posts {
		if p.Status == models.PostStatusPublished && p.PublishedTime.Valid && p.PublishedTime.Time.After(since) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPostRepo) CountScheduledOn(ctx context.Context, day time.Time) (int64, error) {
	return 0, nil
}

func (r *stubPostRepo) MarkPublished(ctx context.Context, id int64, publishedTime time.Time, platformPostID string) error {
	return nil
}

func (r *stubPostRepo) MarkFailed(ctx context.Context, id int64, errorMessage string) error {
	return nil
}

func (r *stubPostRepo) UpdateEngagement(ctx context.Context, id int64, likes, comments, shares, views int64) error {
	return nil
}

func (r *stubPostRepo) StatsForDay(ctx context.Context, day time.Time, platformName string) (*models.DailySummary, error) {
	return &models.DailySummary{}, nil
}

func (r *stubPostRepo) Remove(ctx context.Context, id int64) error {
	r.removedIDs = append(r.removedIDs, id)
	return nil
}

type stubAnalyticsRepo struct {
	summaries []*models.DailySummary
	lastDate  string
	lastStart string
	lastEnd   string
}

func (r *stubAnalyticsRepo) Accumulate(ctx context.Context, summary *models.DailySummary) error {
	return nil
}

func (r *stubAnalyticsRepo) ListForDate(ctx context.Context, date string) ([]*models.DailySummary, error) {
	r.lastDate = date
	return r.summaries, nil
}

func (r *stubAnalyticsRepo) ListRange(ctx context.Context, startDate, endDate string) ([]*models.DailySummary, error) {
	r.lastStart, r.lastEnd = startDate, endDate
	return r.summaries, nil
}
