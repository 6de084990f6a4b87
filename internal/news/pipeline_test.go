package news

import (
	"testing"
	"time"

	"insightbot/internal/history"
)

func testPipeline() Pipeline {
	return Pipeline{
		Scorer:     NewScorer(DefaultKeywords()),
		Classifier: DefaultClassifier(NewMatcher(DefaultDuplicateThreshold)),
		Backfill:   BackfillSelector{Window: 7 * 24 * time.Hour, MinAge: 24 * time.Hour, MinScore: 5, MinItems: 2},
	}
}

func TestPipelineRun(t *testing.T) {
	now := time.Now()
	p := testPipeline()

	hist := []history.Record{
		record("Waymo expands robotaxi coverage to new city", "seen-today", 3, 2*time.Hour, now),
		record("archived chip export analysis piece", "archive", 6, 48*time.Hour, now),
	}
	items := []Item{
		{Title: "OpenAI releases GPT-5", URL: "u1", Score: 100},
		{Title: "Waymo expands robotaxi coverage to new city", URL: "u2", Score: 3},
	}

	res := p.Run(items, hist, now)
	if !res.HasContent {
		t.Fatal("HasContent = false, want true")
	}
	if len(res.Review) != 1 || res.Review[0].URL != "u2" {
		t.Fatalf("review = %v, want the same-day duplicate", res.Review)
	}
	// one genuinely fresh item plus one backfill to reach MinItems=2
	if len(res.Fresh) != 2 {
		t.Fatalf("fresh = %v, want 2 items", res.Fresh)
	}
	if res.Fresh[0].URL != "u1" || !res.Fresh[1].Backfilled() {
		t.Errorf("fresh = %v, want live item then backfill", res.Fresh)
	}
}

func TestPipelineScoresUnscoredItems(t *testing.T) {
	now := time.Now()
	p := testPipeline()
	p.Backfill.MinItems = 0

	items := []Item{
		{Title: "OpenAI ships something", Summary: "a new agent for developers", URL: "u1"},
		{Title: "nothing notable here", URL: "u2", Score: 7}, // already scored, left alone
	}

	res := p.Run(items, nil, now)
	if len(res.Fresh) != 2 {
		t.Fatalf("fresh = %v, want both items", res.Fresh)
	}
	// openai(100) + new(1) = 101, which outranks the preset 7
	if res.Fresh[0].URL != "u1" || res.Fresh[0].Score != 101 {
		t.Errorf("fresh[0] = %+v, want u1 scored 101", res.Fresh[0])
	}
	if res.Fresh[1].Score != 7 {
		t.Errorf("preset score changed: %+v", res.Fresh[1])
	}
}

func TestPipelineEmptyRun(t *testing.T) {
	p := testPipeline()
	p.Backfill.MinItems = 0

	res := p.Run(nil, nil, time.Now())
	if res.HasContent {
		t.Errorf("HasContent = true for empty run")
	}
}

func TestHistoryAppendSkipsBackfilled(t *testing.T) {
	now := time.Now()
	res := Result{
		Fresh: []Item{
			{Title: "live story", URL: "u1", Score: 9, Source: "TechCrunch", Region: "🇺🇸", Summary: "s"},
			{Title: "resurfaced story", URL: "u2", Score: 6, Source: BackfillPrefix + "回顾"},
		},
		Review: []Item{
			{Title: "already seen today", URL: "u3", Score: 5},
		},
	}

	records := res.HistoryAppend(now)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1 (backfilled and review excluded)", len(records))
	}
	r := records[0]
	if r.URL != "u1" || r.Title != "live story" || r.Score != 9 || r.Source != "TechCrunch" || r.Region != "🇺🇸" || r.Summary != "s" {
		t.Errorf("record = %+v, want the live item's fields", r)
	}
	if r.Time != now.UnixMilli() {
		t.Errorf("capture time = %d, want %d", r.Time, now.UnixMilli())
	}
}
