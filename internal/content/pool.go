package content

import (
	"log/slog"
	"math/rand"
	"strings"
)

const recentlyUsedWindow = 10

// GeneratedPost is a ready-to-schedule post body for one platform.
type GeneratedPost struct {
	Content  string
	Platform string
	Category string
	Hashtags []string
}

// Pool hands out candidate post bodies from the template library, avoiding
// templates used in the recent past so the feed does not repeat itself.
type Pool struct {
	templates    []Template
	rng          *rand.Rand
	recentlyUsed []string
}

func NewPool(rng *rand.Rand) *Pool {
	return &Pool{
		templates: templateLibrary,
		rng:       rng,
	}
}

// NewPoolWithTemplates exists for tests and custom libraries.
func NewPoolWithTemplates(rng *rand.Rand, templates []Template) *Pool {
	return &Pool{
		templates: templates,
		rng:       rng,
	}
}

// Next picks a template for the platform, preferring the requested category
// and any template not used within the last few draws. Returns false when the
// library has nothing for that platform.
func (p *Pool) Next(platform, category string) (*GeneratedPost, bool) {
	available := p.filterByPlatform(platform)
	if len(available) == 0 {
		slog.Warn("no templates available", "platform", platform)
		return nil, false
	}

	if category != "" {
		if byCategory := filterByCategory(available, category); len(byCategory) > 0 {
			available = byCategory
		}
	}

	fresh := p.filterFresh(available)
	if len(fresh) > 0 {
		available = fresh
	}

	tpl := available[p.rng.Intn(len(available))]
	p.markUsed(tpl.ID)

	return &GeneratedPost{
		Content:  p.buildContent(tpl, platform),
		Platform: platform,
		Category: tpl.Category,
		Hashtags: tpl.Hashtags,
	}, true
}

// BestTimes returns the platform's best posting times table.
func (p *Pool) BestTimes(platform string) []string {
	return SpecFor(platform).BestTimes
}

func (p *Pool) filterByPlatform(platform string) []Template {
	var out []Template
	for _, t := range p.templates {
		for _, pl := range t.Platforms {
			if pl == platform {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

func filterByCategory(templates []Template, category string) []Template {
	var out []Template
	for _, t := range templates {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

func (p *Pool) filterFresh(templates []Template) []Template {
	used := make(map[string]bool, len(p.recentlyUsed))
	for _, id := range p.recentlyUsed {
		used[id] = true
	}

	var out []Template
	for _, t := range templates {
		if !used[t.ID] {
			out = append(out, t)
		}
	}
	return out
}

func (p *Pool) markUsed(id string) {
	p.recentlyUsed = append(p.recentlyUsed, id)
	if len(p.recentlyUsed) > recentlyUsedWindow {
		p.recentlyUsed = p.recentlyUsed[1:]
	}
}

func (p *Pool) buildContent(tpl Template, platform string) string {
	var b strings.Builder
	b.WriteString(tpl.Body)

	if tpl.CallToAction != "" {
		b.WriteString("\n\n")
		b.WriteString(tpl.CallToAction)
	}

	spec := SpecFor(platform)
	if spec.Hashtags > 0 && len(tpl.Hashtags) > 0 {
		tags := p.selectHashtags(tpl.Hashtags, spec.Hashtags)
		b.WriteString("\n\n")
		for i, tag := range tags {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString("#" + tag)
		}
	}

	content := b.String()
	if spec.MaxLength > 0 {
		// Platform limits count characters, so truncate on rune boundaries.
		if runes := []rune(content); len(runes) > spec.MaxLength {
			content = string(runes[:spec.MaxLength-3]) + "..."
		}
	}
	return content
}

// selectHashtags shuffles a copy and keeps the first maxCount so successive
// posts from the same template vary their tags.
func (p *Pool) selectHashtags(hashtags []string, maxCount int) []string {
	if len(hashtags) <= maxCount {
		return hashtags
	}

	shuffled := make([]string, len(hashtags))
	copy(shuffled, hashtags)
	p.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:maxCount]
}
