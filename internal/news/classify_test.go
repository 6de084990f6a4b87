package news

import (
	"testing"
	"time"

	"insightbot/internal/history"
)

func record(title, url string, score int, age time.Duration, now time.Time) history.Record {
	return history.Record{
		Title: title,
		URL:   url,
		Score: score,
		Time:  now.Add(-age).UnixMilli(),
	}
}

func TestClassifyStaleDuplicateDropped(t *testing.T) {
	now := time.Now()
	c := DefaultClassifier(NewMatcher(DefaultDuplicateThreshold))

	hist := []history.Record{
		record("OpenAI announces new flagship reasoning model", "old-url", 3, 30*time.Hour, now),
	}
	items := []Item{
		{Title: "OpenAI announces new flagship reasoning model", URL: "fresh-url", Score: 10},
		{Title: "Anthropic ships interpretability research toolkit", URL: "u2", Score: 4},
	}

	fresh, review := c.Classify(items, hist, now)
	if len(fresh) != 1 || fresh[0].URL != "u2" {
		t.Fatalf("fresh = %v, want only u2", fresh)
	}
	if len(review) != 0 {
		t.Errorf("review = %v, want empty", review)
	}
}

func TestClassifySameDayDuplicateGoesToReview(t *testing.T) {
	now := time.Now()
	c := DefaultClassifier(NewMatcher(DefaultDuplicateThreshold))

	hist := []history.Record{
		record("Anthropic ships interpretability research toolkit", "u2", 4, 2*time.Hour, now),
	}
	items := []Item{
		{Title: "Anthropic ships interpretability research toolkit", URL: "other-url", Score: 4},
	}

	fresh, review := c.Classify(items, hist, now)
	if len(fresh) != 0 {
		t.Errorf("fresh = %v, want empty", fresh)
	}
	if len(review) != 1 || review[0].URL != "other-url" {
		t.Fatalf("review = %v, want the matching item", review)
	}
}

// A high-score record aged past the replay delay is invisible to both
// duplicate checks, so the story resurfaces as fresh. The same record one
// score point lower stays visible and demotes the item to review.
func TestClassifyReplayWindow(t *testing.T) {
	now := time.Now()
	c := DefaultClassifier(NewMatcher(DefaultDuplicateThreshold))

	item := Item{Title: "NVIDIA unveils next generation datacenter GPU", URL: "u-new", Score: 12}

	eligible := []history.Record{
		record("NVIDIA unveils next generation datacenter GPU", "u-old", 8, 5*time.Hour, now),
	}
	fresh, review := c.Classify([]Item{item}, eligible, now)
	if len(fresh) != 1 || len(review) != 0 {
		t.Fatalf("score 8 at 5h should be replay-eligible: fresh=%v review=%v", fresh, review)
	}

	belowFloor := []history.Record{
		record("NVIDIA unveils next generation datacenter GPU", "u-old", 7, 5*time.Hour, now),
	}
	fresh, review = c.Classify([]Item{item}, belowFloor, now)
	if len(fresh) != 0 || len(review) != 1 {
		t.Fatalf("score 7 at 5h should demote to review: fresh=%v review=%v", fresh, review)
	}

	tooRecent := []history.Record{
		record("NVIDIA unveils next generation datacenter GPU", "u-old", 8, 3*time.Hour, now),
	}
	fresh, review = c.Classify([]Item{item}, tooRecent, now)
	if len(fresh) != 0 || len(review) != 1 {
		t.Fatalf("score 8 at 3h is inside the replay delay, should demote: fresh=%v review=%v", fresh, review)
	}
}

func TestClassifySortsByScoreDescending(t *testing.T) {
	now := time.Now()
	c := DefaultClassifier(NewMatcher(DefaultDuplicateThreshold))

	items := []Item{
		{Title: "quantum networking milestone reached in lab", URL: "a", Score: 2},
		{Title: "battery supply chain report published today", URL: "b", Score: 9},
		{Title: "robotics startup raises massive funding round", URL: "c", Score: 9},
		{Title: "minor framework version released quietly", URL: "d", Score: 5},
	}

	fresh, _ := c.Classify(items, nil, now)
	wantURLs := []string{"b", "c", "d", "a"}
	if len(fresh) != len(wantURLs) {
		t.Fatalf("got %d items, want %d", len(fresh), len(wantURLs))
	}
	for i, u := range wantURLs {
		if fresh[i].URL != u {
			t.Errorf("fresh[%d].URL = %q, want %q (stable sort by score desc)", i, fresh[i].URL, u)
		}
	}
}

func TestClassifyDedupsWithinBatch(t *testing.T) {
	now := time.Now()
	c := DefaultClassifier(NewMatcher(DefaultDuplicateThreshold))

	items := []Item{
		{Title: "Meta open sources multimodal embedding model", URL: "a", Score: 1},
		{Title: "Meta open sources multimodal embedding model", URL: "b", Score: 8},
	}

	fresh, review := c.Classify(items, nil, now)
	if len(fresh) != 1 || fresh[0].URL != "a" {
		t.Fatalf("fresh = %v, want only the first-seen item", fresh)
	}
	if len(review) != 0 {
		t.Errorf("review = %v, want empty", review)
	}
}
