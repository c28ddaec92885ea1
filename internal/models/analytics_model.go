package models

import "time"

type DailySummary struct {
	ID            int64     `db:"id" json:"id"`
	Date          string    `db:"date" json:"date"` // YYYY-MM-DD
	Platform      string    `db:"platform" json:"platform"`
	TotalPosts    int64     `db:"total_posts" json:"total_posts"`
	TotalLikes    int64     `db:"total_likes" json:"total_likes"`
	TotalComments int64     `db:"total_comments" json:"total_comments"`
	TotalShares   int64     `db:"total_shares" json:"total_shares"`
	TotalViews    int64     `db:"total_views" json:"total_views"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
