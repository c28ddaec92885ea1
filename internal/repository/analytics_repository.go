package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/tradeflows/promoflow/internal/models"
)

type AnalyticsRepository interface {
	Accumulate(ctx context.Context, summary *models.DailySummary) error
	ListForDate(ctx context.Context, date string) ([]*models.DailySummary, error)
	ListRange(ctx context.Context, startDate, endDate string) ([]*models.DailySummary, error)
}

type analyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) Accumulate(ctx context.Context, summary *models.DailySummary) error {
	query := `
		INSERT INTO analytics (date, platform, total_posts, total_likes, total_comments, total_shares, total_views)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (date, platform) DO UPDATE SET
			total_posts = analytics.total_posts + EXCLUDED.total_posts,
			total_likes = analytics.total_likes + EXCLUDED.total_likes,
			total_comments = analytics.total_comments + EXCLUDED.total_comments,
			total_shares = analytics.total_shares + EXCLUDED.total_shares,
			total_views = analytics.total_views + EXCLUDED.total_views
	`
	_, err := r.db.ExecContext(ctx, query, summary.Date, summary.Platform,
		summary.TotalPosts, summary.TotalLikes, summary.TotalComments, summary.TotalShares, summary.TotalViews)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *analyticsRepository) ListForDate(ctx context.Context, date string) ([]*models.DailySummary, error) {
	query := `SELECT id, date, platform, total_posts, total_likes, total_comments, total_shares, total_views, created_at
		FROM analytics WHERE date = $1 ORDER BY platform`

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	return scanSummaries(rows)
}

func (r *analyticsRepository) ListRange(ctx context.Context, startDate, endDate string) ([]*models.DailySummary, error) {
	query := `SELECT id, date, platform, total_posts, total_likes, total_comments, total_shares, total_views, created_at
		FROM analytics WHERE date BETWEEN $1 AND $2 ORDER BY date DESC, platform`

	rows, err := r.db.QueryContext(ctx, query, startDate, endDate)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	return scanSummaries(rows)
}

func scanSummaries(rows *sql.Rows) ([]*models.DailySummary, error) {
	var summaries []*models.DailySummary
	for rows.Next() {
		var s models.DailySummary
		err := rows.Scan(&s.ID, &s.Date, &s.Platform, &s.TotalPosts, &s.TotalLikes,
			&s.TotalComments, &s.TotalShares, &s.TotalViews, &s.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		summaries = append(summaries, &s)
	}
	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return summaries, nil
}
