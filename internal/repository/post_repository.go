package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/tradeflows/promoflow/internal/models"
)

const postColumns = `id, content, platform, category, scheduled_time, published_time, status,
		platform_post_id, engagement_likes, engagement_comments, engagement_shares,
		engagement_views, error_message, created_at, updated_at`

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	ListByStatus(ctx context.Context, status string) ([]*models.Post, error)
	ListDuePending(ctx context.Context, now time.Time) ([]*models.Post, error)
	ListPublishedSince(ctx context.Context, since time.Time) ([]*models.Post, error)
	CountScheduledOn(ctx context.Context, day time.Time) (int64, error)
	MarkPublished(ctx context.Context, id int64, publishedTime time.Time, platformPostID string) error
	MarkFailed(ctx context.Context, id int64, errorMessage string) error
	UpdateEngagement(ctx context.Context, id int64, likes, comments, shares, views int64) error
	StatsForDay(ctx context.Context, day time.Time, platform string) (*models.DailySummary, error)
	Remove(ctx context.Context, id int64) error
}

type postRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) (int64, error) {
	query := `
		INSERT INTO posts (content, platform, category, scheduled_time, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, post.Content, post.Platform, post.Category, post.ScheduledTime, post.Status).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	post, err := scanPost(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return post, nil
}

func (r *postRepository) ListByStatus(ctx context.Context, status string) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE status = $1 ORDER BY scheduled_time DESC`

	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *postRepository) ListDuePending(ctx context.Context, now time.Time) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts
		WHERE status = $1 AND scheduled_time <= $2
		ORDER BY scheduled_time ASC`

	rows, err := r.db.QueryContext(ctx, query, models.PostStatusPending, now)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *postRepository) ListPublishedSince(ctx context.Context, since time.Time) ([]*models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts
		WHERE status = $1 AND published_time > $2 AND platform_post_id IS NOT NULL
		ORDER BY published_time DESC`

	rows, err := r.db.QueryContext(ctx, query, models.PostStatusPublished, since)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

// CountScheduledOn compares against the half-open range [day, day+1) in the
// day's own location, so the boundary never depends on the database session
// timezone.
func (r *postRepository) CountScheduledOn(ctx context.Context, day time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM posts WHERE scheduled_time >= $1 AND scheduled_time < $2`

	var count int64
	err := r.db.QueryRowContext(ctx, query, day, day.AddDate(0, 0, 1)).Scan(&count)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return count, nil
}

func (r *postRepository) MarkPublished(ctx context.Context, id int64, publishedTime time.Time, platformPostID string) error {
	query := `
		UPDATE posts
		SET status = $1,
			published_time = $2,
			platform_post_id = $3,
			error_message = NULL,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
	`
	_, err := r.db.ExecContext(ctx, query, models.PostStatusPublished, publishedTime, platformPostID, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) MarkFailed(ctx context.Context, id int64, errorMessage string) error {
	query := `
		UPDATE posts
		SET status = $1,
			error_message = $2,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
	`
	_, err := r.db.ExecContext(ctx, query, models.PostStatusFailed, errorMessage, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) UpdateEngagement(ctx context.Context, id int64, likes, comments, shares, views int64) error {
	query := `
		UPDATE posts
		SET engagement_likes = $1,
			engagement_comments = $2,
			engagement_shares = $3,
			engagement_views = $4,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
	`
	_, err := r.db.ExecContext(ctx, query, likes, comments, shares, views, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *postRepository) StatsForDay(ctx context.Context, day time.Time, platform string) (*models.DailySummary, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(engagement_likes), 0),
			COALESCE(SUM(engagement_comments), 0),
			COALESCE(SUM(engagement_shares), 0),
			COALESCE(SUM(engagement_views), 0)
		FROM posts
		WHERE platform = $1 AND published_time >= $2 AND published_time < $3 AND status = $4
	`

	summary := models.DailySummary{
		Date:     day.Format("2006-01-02"),
		Platform: platform,
	}
	err := r.db.QueryRowContext(ctx, query, platform, day, day.AddDate(0, 0, 1), models.PostStatusPublished).
		Scan(&summary.TotalPosts, &summary.TotalLikes, &summary.TotalComments, &summary.TotalShares, &summary.TotalViews)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return &summary, nil
}

func (r *postRepository) Remove(ctx context.Context, id int64) error {
	query := `DELETE FROM posts WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row rowScanner) (*models.Post, error) {
	var post models.Post
	err := row.Scan(&post.ID, &post.Content, &post.Platform, &post.Category,
		&post.ScheduledTime, &post.PublishedTime, &post.Status, &post.PlatformPostID,
		&post.Likes, &post.Comments, &post.Shares, &post.Views,
		&post.ErrorMessage, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func scanPosts(rows *sql.Rows) ([]*models.Post, error) {
	var posts []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return posts, nil
}
