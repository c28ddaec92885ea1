package scheduler

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradeflows/promoflow/internal/models"
	"github.com/tradeflows/promoflow/internal/platform"
)

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func newTestEngine(repo *fakePostRepo, analytics *fakeAnalyticsRepo, pool ContentPool, seed int64, min, max int, adapters ...platform.Adapter) *Engine {
	if analytics == nil {
		analytics = &fakeAnalyticsRepo{}
	}
	if pool == nil {
		pool = &fakePool{}
	}
	cfg := DefaultConfig(min, max, time.UTC)
	registry := platform.NewRegistry(adapters...)
	rng := rand.New(rand.NewSource(seed))
	return NewEngine(cfg, repo, analytics, registry, pool, rng, func() time.Time { return testNow })
}

func TestGenerateDailyScheduleTotalWithinRange(t *testing.T) {
	const min, max = 2, 5

	for seed := int64(0); seed < 30; seed++ {
		repo := &fakePostRepo{}
		engine := newTestEngine(repo, nil, nil, seed, min, max,
			authedAdapter("twitter"), authedAdapter("linkedin"))

		require.NoError(t, engine.GenerateDailySchedule(context.Background(), false))

		assert.GreaterOrEqual(t, repo.created, min, "seed %d", seed)
		assert.LessOrEqual(t, repo.created, max, "seed %d", seed)
	}
}

func TestDistributePostsSumsToTotal(t *testing.T) {
	adapters := []platform.Adapter{
		authedAdapter("twitter"),
		authedAdapter("linkedin"),
		authedAdapter("facebook"),
		authedAdapter("reddit"),
		authedAdapter("instagram"),
	}

	engine := newTestEngine(&fakePostRepo{}, nil, nil, 1, 1, 1, adapters...)

	for total := 1; total <= 20; total++ {
		allocation := engine.distributePosts(adapters, total)

		sum := 0
		for _, n := range allocation {
			sum += n
		}
		assert.Equal(t, total, sum, "total %d", total)

		if total >= len(adapters) {
			for _, a := range adapters {
				assert.GreaterOrEqual(t, allocation[a.Name()], 1,
					"total %d platform %s", total, a.Name())
			}
		}
	}
}

func TestDistributePostsUnknownPlatformGetsDefaultWeight(t *testing.T) {
	adapters := []platform.Adapter{authedAdapter("mastodon"), authedAdapter("bluesky")}
	engine := newTestEngine(&fakePostRepo{}, nil, nil, 1, 1, 1, adapters...)

	allocation := engine.distributePosts(adapters, 10)

	sum := 0
	for _, n := range allocation {
		sum += n
	}
	assert.Equal(t, 10, sum)
	assert.GreaterOrEqual(t, allocation["bluesky"], 1)
}

func TestGenerateDailyScheduleSkipsWhenAlreadyScheduled(t *testing.T) {
	repo := &fakePostRepo{}
	repo.posts = append(repo.posts, &models.Post{
		ID:            99,
		Platform:      "twitter",
		ScheduledTime: testNow.Add(2 * time.Hour),
		Status:        models.PostStatusPending,
	})

	engine := newTestEngine(repo, nil, nil, 7, 3, 3, authedAdapter("twitter"))

	require.NoError(t, engine.GenerateDailySchedule(context.Background(), false))
	assert.Zero(t, repo.created, "second generation on the same day must be a no-op")

	require.NoError(t, engine.GenerateDailySchedule(context.Background(), true))
	assert.Equal(t, 3, repo.created, "forced generation bypasses the guard")
}

func TestGenerateDailyScheduleEveningPostDoesNotBlockNextDay(t *testing.T) {
	eastern := time.FixedZone("EST", -5*3600)
	now := time.Date(2026, 3, 15, 0, 1, 0, 0, eastern)

	// Yesterday's 21:00 local slot is already past midnight UTC; the guard
	// must still treat it as yesterday.
	repo := &fakePostRepo{}
	repo.posts = append(repo.posts, &models.Post{
		ID:            1,
		Platform:      "twitter",
		ScheduledTime: time.Date(2026, 3, 14, 21, 0, 0, 0, eastern),
		Status:        models.PostStatusPublished,
	})

	cfg := DefaultConfig(2, 2, eastern)
	engine := NewEngine(cfg, repo, &fakeAnalyticsRepo{},
		platform.NewRegistry(authedAdapter("twitter")), &fakePool{},
		rand.New(rand.NewSource(9)), func() time.Time { return now })

	require.NoError(t, engine.GenerateDailySchedule(context.Background(), false))
	assert.Equal(t, 2, repo.created)
}

func TestGenerateDailyScheduleSinglePlatformFixedTotal(t *testing.T) {
	repo := &fakePostRepo{}
	engine := newTestEngine(repo, nil, nil, 11, 3, 3, authedAdapter("alpha"))

	require.NoError(t, engine.GenerateDailySchedule(context.Background(), false))

	require.Len(t, repo.posts, 3)
	seen := make(map[time.Time]bool)
	for _, p := range repo.posts {
		assert.Equal(t, "alpha", p.Platform)
		assert.Equal(t, models.PostStatusPending, p.Status)
		assert.False(t, seen[p.ScheduledTime], "scheduled times must be distinct")
		seen[p.ScheduledTime] = true

		y, m, d := p.ScheduledTime.Date()
		ny, nm, nd := testNow.Date()
		assert.Equal(t, [3]int{ny, int(nm), nd}, [3]int{y, int(m), d})
	}
}

func TestGenerateDailyScheduleNoAuthenticatedPlatforms(t *testing.T) {
	repo := &fakePostRepo{}
	unauthed := &fakeAdapter{name: "twitter", configured: true, authed: false}
	engine := newTestEngine(repo, nil, nil, 3, 2, 4, unauthed)

	require.NoError(t, engine.GenerateDailySchedule(context.Background(), false))
	assert.Zero(t, repo.created)
}

func TestGenerateDailyScheduleContentExhaustionSkipsSlot(t *testing.T) {
	repo := &fakePostRepo{}
	pool := &fakePool{missing: map[string]bool{"twitter": true}}
	engine := newTestEngine(repo, nil, pool, 5, 3, 3, authedAdapter("twitter"))

	require.NoError(t, engine.GenerateDailySchedule(context.Background(), false))
	assert.Zero(t, repo.created, "content misses lose slots, not the run")
}

func TestGenerateDailySchedulePropagatesStoreError(t *testing.T) {
	repo := &fakePostRepo{failOn: "Create"}
	engine := newTestEngine(repo, nil, nil, 5, 2, 2, authedAdapter("twitter"))

	err := engine.GenerateDailySchedule(context.Background(), false)
	assert.Error(t, err)
}

func TestDailyCategoryMixDrawsFromWeightTable(t *testing.T) {
	engine := newTestEngine(&fakePostRepo{}, nil, nil, 17, 1, 1, authedAdapter("twitter"))

	known := make(map[string]bool)
	for _, cw := range engine.cfg.CategoryWeights {
		known[cw.Name] = true
	}

	mix := engine.dailyCategoryMix(200)
	require.Len(t, mix, 200)
	for _, category := range mix {
		assert.True(t, known[category], "unexpected category %q", category)
	}
}

func TestSlotTimeJitterStaysWithinWindow(t *testing.T) {
	engine := newTestEngine(&fakePostRepo{}, nil, &fakePool{bestTimes: []string{"12:00"}}, 23, 1, 1, authedAdapter("twitter"))
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		slot := engine.slotTime("twitter", 0, day)
		diff := slot.Sub(base)
		assert.GreaterOrEqual(t, diff, -30*time.Minute)
		assert.LessOrEqual(t, diff, 30*time.Minute)
	}
}
