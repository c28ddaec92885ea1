package scheduler

import (
	"context"
	"log/slog"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/tradeflows/promoflow/internal/models"
	"github.com/tradeflows/promoflow/internal/platform"
)

// GenerateDailySchedule decides how many posts to publish today and where,
// and inserts the resulting pending rows. It runs at most once per calendar
// day unless forced.
func (e *Engine) GenerateDailySchedule(ctx context.Context, force bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	today := e.today()

	if !force {
		count, err := e.posts.CountScheduledOn(ctx, today)
		if err != nil {
			return err
		}
		if count > 0 {
			slog.Info("posts already scheduled for today, skipping generation", "count", count)
			return nil
		}
	}

	platforms := e.registry.Authenticated()
	if len(platforms) == 0 {
		slog.Warn("no authenticated platforms available for posting")
		return nil
	}

	total := e.cfg.PostsPerDayMin
	if spread := e.cfg.PostsPerDayMax - e.cfg.PostsPerDayMin; spread > 0 {
		total += e.rng.Intn(spread + 1)
	}

	runID, err := gonanoid.New(8)
	if err != nil {
		runID = "unknown"
	}

	slog.Info("generating daily schedule",
		"run_id", runID, "planned", total, "platforms", len(platforms))

	mix := e.dailyCategoryMix(total)
	allocation := e.distributePosts(platforms, total)

	postCount := 0
	for _, p := range platforms {
		numPosts := allocation[p.Name()]

		for i := 0; i < numPosts && postCount < total; i++ {
			generated, ok := e.pool.Next(p.Name(), mix[postCount])
			if !ok {
				// Content exhaustion loses the slot, not the run.
				slog.Warn("failed to generate post", "run_id", runID, "platform", p.Name())
				continue
			}

			slotTime := e.slotTime(p.Name(), i, today)

			post := &models.Post{
				Content:       generated.Content,
				Platform:      p.Name(),
				Category:      generated.Category,
				ScheduledTime: slotTime,
				Status:        models.PostStatusPending,
			}
			if _, err := e.posts.Create(ctx, post); err != nil {
				return err
			}

			postCount++
			slog.Info("post scheduled", "run_id", runID, "platform", p.Name(),
				"category", generated.Category, "time", slotTime.Format("15:04"))
		}
	}

	slog.Info("daily schedule generated", "run_id", runID, "scheduled", postCount)
	return nil
}

// dailyCategoryMix draws the day's category sequence from the weight table
// using cumulative-distribution sampling. The first category whose running
// sum meets the draw wins.
func (e *Engine) dailyCategoryMix(total int) []string {
	mix := make([]string, 0, total)
	for i := 0; i < total; i++ {
		draw := e.rng.Float64()
		cumulative := 0.0
		for _, cw := range e.cfg.CategoryWeights {
			cumulative += cw.Weight
			if draw <= cumulative {
				mix = append(mix, cw.Name)
				break
			}
		}
		if len(mix) == i {
			// Float drift left the draw above the final cumulative sum.
			mix = append(mix, e.cfg.CategoryWeights[len(e.cfg.CategoryWeights)-1].Name)
		}
	}
	return mix
}

// distributePosts splits the day's budget across platforms by priority
// weight. Every platform gets at least one post while budget remains, and
// any flooring leftover lands on the first platform so the allocation always
// sums to the total.
func (e *Engine) distributePosts(platforms []platform.Adapter, total int) map[string]int {
	allocation := make(map[string]int, len(platforms))

	remaining := total
	for _, p := range platforms {
		if remaining <= 0 {
			break
		}

		count := int(float64(total) * e.platformWeight(p.Name()))
		if count < 1 {
			count = 1
		}
		if count > remaining {
			count = remaining
		}

		allocation[p.Name()] = count
		remaining -= count
	}

	if remaining > 0 {
		allocation[platforms[0].Name()] += remaining
	}

	return allocation
}

// slotTime maps a platform slot index onto the best-times table and applies
// uniform jitter in [-30, +30] minutes so publish times never repeat exactly.
func (e *Engine) slotTime(platformName string, slotIndex int, day time.Time) time.Time {
	times := e.pool.BestTimes(platformName)
	hhmm := "09:00"
	if len(times) > 0 {
		hhmm = times[slotIndex%len(times)]
	}

	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		parsed, _ = time.Parse("15:04", "09:00")
	}

	jitter := time.Duration(e.rng.Intn(61)-30) * time.Minute

	return time.Date(day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, day.Location()).Add(jitter)
}
