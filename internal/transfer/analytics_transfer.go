package transfer

type OverallStats struct {
	TotalPosts           int64   `json:"total_posts"`
	TotalLikes           int64   `json:"total_likes"`
	TotalComments        int64   `json:"total_comments"`
	TotalShares          int64   `json:"total_shares"`
	TotalViews           int64   `json:"total_views"`
	AvgEngagementPerPost float64 `json:"avg_engagement_per_post"`
	SuccessRate          float64 `json:"success_rate"`
}

type PlatformPerformance struct {
	Platform      string  `json:"platform"`
	Posts         int64   `json:"posts"`
	Likes         int64   `json:"likes"`
	Comments      int64   `json:"comments"`
	Shares        int64   `json:"shares"`
	Views         int64   `json:"views"`
	AvgEngagement float64 `json:"avg_engagement"`
}

type TopPost struct {
	ID              int64  `json:"id"`
	Platform        string `json:"platform"`
	Content         string `json:"content"`
	Likes           int64  `json:"likes"`
	Comments        int64  `json:"comments"`
	Shares          int64  `json:"shares"`
	PublishedTime   string `json:"published_time"`
	EngagementScore int64  `json:"engagement_score"`
}

type PerformanceReport struct {
	Period    string                `json:"period"`
	Overall   OverallStats          `json:"overall"`
	Platforms []PlatformPerformance `json:"platforms"`
	TopPosts  []TopPost             `json:"top_posts"`
}
