package models

import (
	"database/sql"
	"time"
)

type Post struct {
	ID             int64          `db:"id" json:"id"`
	Content        string         `db:"content" json:"content"`
	Platform       string         `db:"platform" json:"platform"`
	Category       string         `db:"category" json:"category"`
	ScheduledTime  time.Time      `db:"scheduled_time" json:"scheduled_time"`
	PublishedTime  sql.NullTime   `db:"published_time" json:"published_time"`
	Status         string         `db:"status" json:"status"` // pending, published, failed
	PlatformPostID sql.NullString `db:"platform_post_id" json:"platform_post_id"`
	Likes          int64          `db:"engagement_likes" json:"likes"`
	Comments       int64          `db:"engagement_comments" json:"comments"`
	Shares         int64          `db:"engagement_shares" json:"shares"`
	Views          int64          `db:"engagement_views" json:"views"`
	ErrorMessage   sql.NullString `db:"error_message" json:"error_message"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}

const (
	PostStatusPending   = "pending"
	PostStatusPublished = "published"
	PostStatusFailed    = "failed"
)
