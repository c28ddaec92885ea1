package scheduler

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/tradeflows/promoflow/internal/content"
	"github.com/tradeflows/promoflow/internal/models"
	"github.com/tradeflows/promoflow/internal/platform"
)

type fakePostRepo struct {
	posts   []*models.Post
	nextID  int64
	failOn  string // method name that should error
	created int
}

func (r *fakePostRepo) fail(method string) error {
	if r.failOn == method {
		return fmt.Errorf("store error in %s", method)
	}
	return nil
}

func (r *fakePostRepo) Create(ctx context.Context, post *models.Post) (int64, error) {
	if err := r.fail("Create"); err != nil {
		return 0, err
	}
	r.nextID++
	clone := *post
	clone.ID = r.nextID
	r.posts = append(r.posts, &clone)
	r.created++
	return clone.ID, nil
}

func (r *fakePostRepo) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	if err := r.fail("GetByID"); err != nil {
		return nil, err
	}
	for _, p := range r.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePostRepo) ListByStatus(ctx context.Context, status string) ([]*models.Post, error) {
	if err := r.fail("ListByStatus"); err != nil {
		return nil, err
	}
	var out []*models.Post
	for _, p := range r.posts {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePostRepo) ListDuePending(ctx context.Context, now time.Time) ([]*models.Post, error) {
	if err := r.fail("ListDuePending"); err != nil {
		return nil, err
	}
	var out []*models.Post
	for _, p := range r.posts {
		if p.Status == models.PostStatusPending && !p.ScheduledTime.After(now) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ScheduledTime.Before(out[j].ScheduledTime)
	})
	return out, nil
}

func (r *fakePostRepo) ListPublishedSince(ctx context.Context, since time.Time) ([]*models.Post, error) {
	if err := r.fail("ListPublishedSince"); err != nil {
		return nil, err
	}
	var out []*models.Post
	for _, p := range r.posts {
		if p.Status == models.PostStatusPublished && p.PlatformPostID.Valid &&
			p.PublishedTime.Valid && p.PublishedTime.Time.After(since) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePostRepo) CountScheduledOn(ctx context.Context, day time.Time) (int64, error) {
	if err := r.fail("CountScheduledOn"); err != nil {
		return 0, err
	}
	var count int64
	next := day.AddDate(0, 0, 1)
	for _, p := range r.posts {
		if !p.ScheduledTime.Before(day) && p.ScheduledTime.Before(next) {
			count++
		}
	}
	return count, nil
}

func (r *fakePostRepo) MarkPublished(ctx context.Context, id int64, publishedTime time.Time, platformPostID string) error {
	if err := r.fail("MarkPublished"); err != nil {
		return err
	}
	for _, p := range r.posts {
		if p.ID == id {
			p.Status = models.PostStatusPublished
			p.PublishedTime = sql.NullTime{Time: publishedTime, Valid: true}
			p.PlatformPostID = sql.NullString{String: platformPostID, Valid: true}
			p.ErrorMessage = sql.NullString{}
		}
	}
	return nil
}

func (r *fakePostRepo) MarkFailed(ctx context.Context, id int64, errorMessage string) error {
	if err := r.fail("MarkFailed"); err != nil {
		return err
	}
	for _, p := range r.posts {
		if p.ID == id {
			p.Status = models.PostStatusFailed
			p.ErrorMessage = sql.NullString{String: errorMessage, Valid: true}
		}
	}
	return nil
}

func (r *fakePostRepo) UpdateEngagement(ctx context.Context, id int64, likes, comments, shares, views int64) error {
	if err := r.fail("UpdateEngagement"); err != nil {
		return err
	}
	for _, p := range r.posts {
		if p.ID == id {
			p.Likes, p.Comments, p.Shares, p.Views = likes, comments, shares, views
		}
	}
	return nil
}

func (r *fakePostRepo) StatsForDay(ctx context.Context, day time.Time, platformName string) (*models.DailySummary, error) {
	if err := r.fail("StatsForDay"); err != nil {
		return nil, err
	}
	summary := &models.DailySummary{
		Date:     day.Format("2006-01-02"),
		Platform: platformName,
	}
	next := day.AddDate(0, 0, 1)
	for _, p := range r.posts {
		if p.Platform != platformName || p.Status != models.PostStatusPublished || !p.PublishedTime.Valid {
			continue
		}
		if p.PublishedTime.Time.Before(day) || !p.PublishedTime.Time.Before(next) {
			continue
		}
		summary.TotalPosts++
		summary.TotalLikes += p.Likes
		summary.TotalComments += p.Comments
		summary.TotalShares += p.Shares
		summary.TotalViews += p.Views
	}
	return summary, nil
}

func (r *fakePostRepo) Remove(ctx context.Context, id int64) error {
	if err := r.fail("Remove"); err != nil {
		return err
	}
	for i, p := range r.posts {
		if p.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			break
		}
	}
	return nil
}

type fakeAnalyticsRepo struct {
	accumulated []*models.DailySummary
}

func (r *fakeAnalyticsRepo) Accumulate(ctx context.Context, summary *models.DailySummary) error {
	r.accumulated = append(r.accumulated, summary)
	return nil
}

func (r *fakeAnalyticsRepo) ListForDate(ctx context.Context, date string) ([]*models.DailySummary, error) {
	return nil, nil
}

func (r *fakeAnalyticsRepo) ListRange(ctx context.Context, startDate, endDate string) ([]*models.DailySummary, error) {
	return nil, nil
}

type fakeAdapter struct {
	name         string
	configured   bool
	authed       bool
	publishErr   error
	metrics      *platform.Metrics
	metricsErr   error
	published    []string // contents, in call order
	nextExternal int
}

func (a *fakeAdapter) Name() string { return a.name }

func (a *fakeAdapter) IsConfigured() bool { return a.configured }

func (a *fakeAdapter) IsAuthenticated() bool { return a.authed }

func (a *fakeAdapter) Authenticate(ctx context.Context) error { a.authed = true; return nil }

func (a *fakeAdapter) Publish(ctx context.Context, content string) (string, error) {
	if a.publishErr != nil {
		return "", a.publishErr
	}
	a.published = append(a.published, content)
	a.nextExternal++
	return fmt.Sprintf("%s-ext-%d", a.name, a.nextExternal), nil
}

func (a *fakeAdapter) Engagement(ctx context.Context, externalID string) (*platform.Metrics, error) {
	if a.metricsErr != nil {
		return nil, a.metricsErr
	}
	return a.metrics, nil
}

func authedAdapter(name string) *fakeAdapter {
	return &fakeAdapter{name: name, configured: true, authed: true}
}

type fakePool struct {
	missing   map[string]bool // platforms with no content
	bestTimes []string
	serial    int
}

func (p *fakePool) Next(platformName, category string) (*content.GeneratedPost, bool) {
	if p.missing[platformName] {
		return nil, false
	}
	p.serial++
	return &content.GeneratedPost{
		Content:  fmt.Sprintf("%s post %d", platformName, p.serial),
		Platform: platformName,
		Category: category,
	}, true
}

func (p *fakePool) BestTimes(platformName string) []string {
	if len(p.bestTimes) > 0 {
		return p.bestTimes
	}
	return []string{"09:00", "12:00", "17:00"}
}
