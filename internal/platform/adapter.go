package platform

import "context"

// Metrics holds the engagement counters a platform reports for one post.
type Metrics struct {
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
	Shares   int64 `json:"shares"`
	Views    int64 `json:"views"`
}

// Adapter wraps one social network's publish and metrics API. Implementations
// are thin HTTP glue; the scheduling engine only ever talks to this interface.
type Adapter interface {
	Name() string
	IsConfigured() bool
	Authenticate(ctx context.Context) error
	IsAuthenticated() bool
	Publish(ctx context.Context, content string) (string, error)
	Engagement(ctx context.Context, externalID string) (*Metrics, error)
}
