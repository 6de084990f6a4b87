package news

import (
	"sort"
	"time"

	"insightbot/internal/history"
)

// BackfillSelector tops up a thin fresh bucket from aged but still valuable
// history: records one to seven days old with a score of at least MinScore.
type BackfillSelector struct {
	Window   time.Duration // how far back candidates may reach
	MinAge   time.Duration // candidates must be at least this old
	MinScore int
	MinItems int // target fresh size
}

// DefaultBackfill returns the production policy: 1-7 day window, score
// floor 5, fill to 50 items.
func DefaultBackfill() BackfillSelector {
	return BackfillSelector{
		Window:   7 * 24 * time.Hour,
		MinAge:   24 * time.Hour,
		MinScore: 5,
		MinItems: 50,
	}
}

// Fill appends qualifying history records to fresh until it reaches
// MinItems or candidates run out. Exclusion against the already selected
// fresh and review sets is by exact URL or exact title string, not
// similarity: a deliberately looser check carried over from the original
// policy, which can let a near-duplicate of an already shown story back in.
func (b BackfillSelector) Fill(fresh, review []Item, hist []history.Record, now time.Time) []Item {
	if len(fresh) >= b.MinItems {
		return fresh
	}

	oldest := now.Add(-b.Window)
	newest := now.Add(-b.MinAge)

	candidates := make([]history.Record, 0)
	for _, h := range hist {
		t := h.CaptureTime()
		if h.Score >= b.MinScore && !t.Before(oldest) && t.Before(newest) {
			candidates = append(candidates, h)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Score > candidates[j].Score })

	seenURLs := make(map[string]struct{}, len(fresh)+len(review))
	seenTitles := make(map[string]struct{}, len(fresh)+len(review))
	for _, it := range fresh {
		seenURLs[it.URL] = struct{}{}
		seenTitles[it.Title] = struct{}{}
	}
	for _, it := range review {
		seenURLs[it.URL] = struct{}{}
		seenTitles[it.Title] = struct{}{}
	}

	for _, h := range candidates {
		if len(fresh) >= b.MinItems {
			break
		}
		if _, dup := seenURLs[h.URL]; dup {
			continue
		}
		if _, dup := seenTitles[h.Title]; dup {
			continue
		}
		seenURLs[h.URL] = struct{}{}
		seenTitles[h.Title] = struct{}{}
		fresh = append(fresh, itemFromRecord(h))
	}
	return fresh
}

func itemFromRecord(h history.Record) Item {
	source := h.Source
	if source == "" {
		source = "回顾"
	}
	region := h.Region
	if region == "" {
		region = "🌐"
	}
	return Item{
		Title:     h.Title,
		Summary:   h.Summary,
		URL:       h.URL,
		Time:      FormatTime(h.CaptureTime()),
		Published: h.CaptureTime(),
		Source:    BackfillPrefix + source,
		Region:    region,
		Score:     h.Score,
	}
}
