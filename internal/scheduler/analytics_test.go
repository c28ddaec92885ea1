package scheduler

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradeflows/promoflow/internal/platform"
)

func TestAggregateDailyAnalyticsSumsPerPlatform(t *testing.T) {
	repo := &fakePostRepo{}
	first := publishedPost(1, "twitter", "ext-1", testNow.Add(-3*time.Hour))
	first.Likes, first.Comments, first.Shares, first.Views = 10, 4, 2, 300
	second := publishedPost(2, "twitter", "ext-2", testNow.Add(-time.Hour))
	second.Likes, second.Comments, second.Shares, second.Views = 6, 1, 0, 120
	third := publishedPost(3, "linkedin", "ext-3", testNow.Add(-2*time.Hour))
	third.Likes, third.Comments, third.Shares, third.Views = 8, 3, 5, 50
	repo.posts = append(repo.posts, first, second, third)

	analytics := &fakeAnalyticsRepo{}
	engine := newTestEngine(repo, analytics, nil, 1, 1, 1,
		authedAdapter("twitter"), authedAdapter("linkedin"))

	require.NoError(t, engine.AggregateDailyAnalytics(context.Background()))

	require.Len(t, analytics.accumulated, 2)
	byPlatform := make(map[string]int)
	for i, s := range analytics.accumulated {
		byPlatform[s.Platform] = i
		assert.Equal(t, testNow.Format("2006-01-02"), s.Date)
	}

	tw := analytics.accumulated[byPlatform["twitter"]]
	assert.Equal(t, int64(2), tw.TotalPosts)
	assert.Equal(t, int64(16), tw.TotalLikes)
	assert.Equal(t, int64(5), tw.TotalComments)
	assert.Equal(t, int64(2), tw.TotalShares)
	assert.Equal(t, int64(420), tw.TotalViews)

	li := analytics.accumulated[byPlatform["linkedin"]]
	assert.Equal(t, int64(1), li.TotalPosts)
	assert.Equal(t, int64(8), li.TotalLikes)
}

func TestAggregateDailyAnalyticsSkipsPlatformsWithoutPosts(t *testing.T) {
	repo := &fakePostRepo{}
	repo.posts = append(repo.posts, publishedPost(1, "twitter", "ext-1", testNow.Add(-time.Hour)))

	analytics := &fakeAnalyticsRepo{}
	engine := newTestEngine(repo, analytics, nil, 1, 1, 1,
		authedAdapter("twitter"), authedAdapter("reddit"))

	require.NoError(t, engine.AggregateDailyAnalytics(context.Background()))

	require.Len(t, analytics.accumulated, 1)
	assert.Equal(t, "twitter", analytics.accumulated[0].Platform)
}

func TestAggregateDailyAnalyticsIgnoresOtherDays(t *testing.T) {
	repo := &fakePostRepo{}
	yesterday := publishedPost(1, "twitter", "ext-1", testNow.Add(-26*time.Hour))
	today := publishedPost(2, "twitter", "ext-2", testNow.Add(-time.Hour))
	repo.posts = append(repo.posts, yesterday, today)

	analytics := &fakeAnalyticsRepo{}
	engine := newTestEngine(repo, analytics, nil, 1, 1, 1, authedAdapter("twitter"))

	require.NoError(t, engine.AggregateDailyAnalytics(context.Background()))

	require.Len(t, analytics.accumulated, 1)
	assert.Equal(t, int64(1), analytics.accumulated[0].TotalPosts)
}

func TestAggregateDailyAnalyticsAttributesEveningPostsLocally(t *testing.T) {
	eastern := time.FixedZone("EST", -5*3600)
	now := time.Date(2026, 3, 14, 23, 55, 0, 0, eastern)

	// 21:00 local is past midnight UTC; the summary still belongs to the 14th.
	repo := &fakePostRepo{}
	repo.posts = append(repo.posts,
		publishedPost(1, "twitter", "ext-1", time.Date(2026, 3, 14, 21, 0, 0, 0, eastern)))

	analytics := &fakeAnalyticsRepo{}
	cfg := DefaultConfig(1, 1, eastern)
	engine := NewEngine(cfg, repo, analytics,
		platform.NewRegistry(authedAdapter("twitter")), &fakePool{},
		rand.New(rand.NewSource(3)), func() time.Time { return now })

	require.NoError(t, engine.AggregateDailyAnalytics(context.Background()))

	require.Len(t, analytics.accumulated, 1)
	assert.Equal(t, "2026-03-14", analytics.accumulated[0].Date)
	assert.Equal(t, int64(1), analytics.accumulated[0].TotalPosts)
}

func TestAggregateDailyAnalyticsStoreErrorAborts(t *testing.T) {
	repo := &fakePostRepo{failOn: "StatsForDay"}
	engine := newTestEngine(repo, &fakeAnalyticsRepo{}, nil, 1, 1, 1, authedAdapter("twitter"))

	assert.Error(t, engine.AggregateDailyAnalytics(context.Background()))
}
