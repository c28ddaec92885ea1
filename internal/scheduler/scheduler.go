package scheduler

import (
	"context"
	"log"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/robfig/cron"
	"github.com/tradeflows/promoflow/internal/content"
	"github.com/tradeflows/promoflow/internal/platform"
	"github.com/tradeflows/promoflow/internal/repository"
)

// ContentPool is the slice of the content package the engine consumes.
type ContentPool interface {
	Next(platform, category string) (*content.GeneratedPost, bool)
	BestTimes(platform string) []string
}

type PlatformWeight struct {
	Name   string
	Weight float64
}

type CategoryWeight struct {
	Name   string
	Weight float64
}

// Config carries the scheduling knobs. Weight tables are ordered slices so
// allocation and the category draw are deterministic under a seeded source.
type Config struct {
	PostsPerDayMin        int
	PostsPerDayMax        int
	PlatformWeights       []PlatformWeight
	DefaultPlatformWeight float64
	CategoryWeights       []CategoryWeight
	EngagementWindow      time.Duration
	Location              *time.Location
}

func DefaultConfig(postsPerDayMin, postsPerDayMax int, loc *time.Location) Config {
	if loc == nil {
		loc = time.UTC
	}
	return Config{
		PostsPerDayMin: postsPerDayMin,
		PostsPerDayMax: postsPerDayMax,
		PlatformWeights: []PlatformWeight{
			{Name: "twitter", Weight: 0.30},
			{Name: "linkedin", Weight: 0.25},
			{Name: "facebook", Weight: 0.20},
			{Name: "reddit", Weight: 0.15},
			{Name: "instagram", Weight: 0.10},
		},
		DefaultPlatformWeight: 0.10,
		CategoryWeights: []CategoryWeight{
			{Name: "feature", Weight: 0.25},
			{Name: "pricing", Weight: 0.15},
			{Name: "education", Weight: 0.20},
			{Name: "usecase", Weight: 0.15},
			{Name: "promotion", Weight: 0.10},
			{Name: "engagement", Weight: 0.10},
			{Name: "comparison", Weight: 0.05},
		},
		EngagementWindow: 7 * 24 * time.Hour,
		Location:         loc,
	}
}

// Engine owns the four recurring sweeps. One mutex serializes them so the
// post store is never touched by two sweeps at once.
type Engine struct {
	mu        sync.Mutex
	cfg       Config
	posts     repository.PostRepository
	analytics repository.AnalyticsRepository
	registry  *platform.Registry
	pool      ContentPool
	rng       *rand.Rand
	now       func() time.Time
	cron      *cron.Cron
}

func NewEngine(
	cfg Config,
	posts repository.PostRepository,
	analytics repository.AnalyticsRepository,
	registry *platform.Registry,
	pool ContentPool,
	rng *rand.Rand,
	now func() time.Time) *Engine {

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	return &Engine{
		cfg:       cfg,
		posts:     posts,
		analytics: analytics,
		registry:  registry,
		pool:      pool,
		rng:       rng,
		now:       now,
	}
}

// Start wires the four periodic tasks: daily generation at 00:01, the publish
// sweep every five minutes, engagement refresh hourly and analytics
// aggregation at 23:55.
func (e *Engine) Start() {
	if e.cron != nil {
		log.Println("Scheduler is already running")
		return
	}

	c := cron.New()
	c.AddFunc("0 1 0 * * *", e.runDailyGeneration)
	c.AddFunc("0 */5 * * * *", e.runPublishSweep)
	c.AddFunc("0 0 * * * *", e.runEngagementRefresh)
	c.AddFunc("0 55 23 * * *", e.runDailyAnalytics)
	c.Start()
	e.cron = c

	log.Println("Scheduler started")
}

// Stop cancels all four timers. An in-flight sweep finishes its current post.
func (e *Engine) Stop() {
	if e.cron == nil {
		return
	}
	e.cron.Stop()
	e.cron = nil
	log.Println("Scheduler stopped")
}

// EnsureScheduleExists generates today's plan on startup if no posts are
// scheduled yet. Generation itself carries the idempotency guard.
func (e *Engine) EnsureScheduleExists(ctx context.Context) error {
	return e.GenerateDailySchedule(ctx, false)
}

func (e *Engine) runDailyGeneration() {
	if err := e.GenerateDailySchedule(context.Background(), false); err != nil {
		slog.Error("daily schedule generation failed", "error", err.Error())
	}
}

func (e *Engine) runPublishSweep() {
	if err := e.PublishDuePosts(context.Background()); err != nil {
		slog.Error("publish sweep failed", "error", err.Error())
	}
}

func (e *Engine) runEngagementRefresh() {
	if err := e.RefreshEngagement(context.Background()); err != nil {
		slog.Error("engagement refresh failed", "error", err.Error())
	}
}

func (e *Engine) runDailyAnalytics() {
	if err := e.AggregateDailyAnalytics(context.Background()); err != nil {
		slog.Error("analytics aggregation failed", "error", err.Error())
	}
}

func (e *Engine) today() time.Time {
	now := e.now().In(e.cfg.Location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, e.cfg.Location)
}

func (e *Engine) platformWeight(name string) float64 {
	for _, pw := range e.cfg.PlatformWeights {
		if pw.Name == name {
			return pw.Weight
		}
	}
	return e.cfg.DefaultPlatformWeight
}
