package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/tradeflows/promoflow/internal/models"
	"github.com/tradeflows/promoflow/internal/repository"
	"github.com/tradeflows/promoflow/internal/transfer"
)

type AnalyticsService interface {
	DailyStats(ctx context.Context, date string) ([]*models.DailySummary, error)
	RangeStats(ctx context.Context, startDate, endDate string) ([]*models.DailySummary, error)
	Report(ctx context.Context, days int) (*transfer.PerformanceReport, error)
}

type analyticsService struct {
	ar  repository.AnalyticsRepository
	pr  repository.PostRepository
	now func() time.Time
}

func NewAnalyticsService(ar repository.AnalyticsRepository, pr repository.PostRepository, now func() time.Time) AnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &analyticsService{
		ar:  ar,
		pr:  pr,
		now: now,
	}
}

func (s *analyticsService) DailyStats(ctx context.Context, date string) ([]*models.DailySummary, error) {
	if date == "" {
		date = s.now().Format("2006-01-02")
	}
	return s.ar.ListForDate(ctx, date)
}

func (s *analyticsService) RangeStats(ctx context.Context, startDate, endDate string) ([]*models.DailySummary, error) {
	return s.ar.ListRange(ctx, startDate, endDate)
}

// Report folds the accumulated daily summaries for the trailing period into
// one document: overall totals, per-platform performance and the top posts
// by engagement score.
func (s *analyticsService) Report(ctx context.Context, days int) (*transfer.PerformanceReport, error) {
	if days < 1 {
		days = 7
	}

	end := s.now()
	start := end.AddDate(0, 0, -days)

	summaries, err := s.ar.ListRange(ctx, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	report := &transfer.PerformanceReport{
		Period: fmt.Sprintf("last %d days", days),
	}

	byPlatform := make(map[string]*transfer.PlatformPerformance)
	for _, summary := range summaries {
		report.Overall.TotalPosts += summary.TotalPosts
		report.Overall.TotalLikes += summary.TotalLikes
		report.Overall.TotalComments += summary.TotalComments
		report.Overall.TotalShares += summary.TotalShares
		report.Overall.TotalViews += summary.TotalViews

		perf, ok := byPlatform[summary.Platform]
		if !ok {
			perf = &transfer.PlatformPerformance{Platform: summary.Platform}
			byPlatform[summary.Platform] = perf
		}
		perf.Posts += summary.TotalPosts
		perf.Likes += summary.TotalLikes
		perf.Comments += summary.TotalComments
		perf.Shares += summary.TotalShares
		perf.Views += summary.TotalViews
	}

	if report.Overall.TotalPosts > 0 {
		engagement := report.Overall.TotalLikes + report.Overall.TotalComments + report.Overall.TotalShares
		report.Overall.AvgEngagementPerPost = float64(engagement) / float64(report.Overall.TotalPosts)
	}

	for _, perf := range byPlatform {
		if perf.Posts > 0 {
			perf.AvgEngagement = float64(perf.Likes+perf.Comments+perf.Shares) / float64(perf.Posts)
		}
		report.Platforms = append(report.Platforms, *perf)
	}
	sort.Slice(report.Platforms, func(i, j int) bool {
		return report.Platforms[i].Platform < report.Platforms[j].Platform
	})

	topPosts, err := s.topPosts(ctx, start, 5)
	if err != nil {
		return nil, err
	}
	report.TopPosts = topPosts

	published, err := s.pr.ListByStatus(ctx, models.PostStatusPublished)
	if err != nil {
		return nil, err
	}
	failed, err := s.pr.ListByStatus(ctx, models.PostStatusFailed)
	if err != nil {
		return nil, err
	}
	publishedN := countScheduledSince(published, start)
	failedN := countScheduledSince(failed, start)
	if attempts := publishedN + failedN; attempts > 0 {
		report.Overall.SuccessRate = float64(publishedN) / float64(attempts)
	}

	return report, nil
}

// countScheduledSince keeps the success-rate fold on the same trailing window
// as the rest of the report.
func countScheduledSince(posts []*models.Post, since time.Time) int {
	n := 0
	for _, p := range posts {
		if !p.ScheduledTime.Before(since) {
			n++
		}
	}
	return n
}

func (s *analyticsService) topPosts(ctx context.Context, since time.Time, limit int) ([]transfer.TopPost, error) {
	posts, err := s.pr.ListPublishedSince(ctx, since)
	if err != nil {
		return nil, err
	}

	top := make([]transfer.TopPost, 0, len(posts))
	for _, post := range posts {
		tp := transfer.TopPost{
			ID:              post.ID,
			Platform:        post.Platform,
			Content:         post.Content,
			Likes:           post.Likes,
			Comments:        post.Comments,
			Shares:          post.Shares,
			EngagementScore: post.Likes + post.Comments*2 + post.Shares*3,
		}
		if post.PublishedTime.Valid {
			tp.PublishedTime = post.PublishedTime.Time.Format(time.RFC3339)
		}
		top = append(top, tp)
	}

	sort.Slice(top, func(i, j int) bool {
		return top[i].EngagementScore > top[j].EngagementScore
	})
	if len(top) > limit {
		top = top[:limit]
	}
	return top, nil
}
