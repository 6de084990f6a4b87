package news

import "testing"

func TestDedupFirstSeenWins(t *testing.T) {
	m := NewMatcher(DefaultDuplicateThreshold)

	items := []Item{
		{Title: "OpenAI releases GPT-5", URL: "u1", Score: 3},
		{Title: "OpenAI releases GPT-5 update", URL: "u2", Score: 500}, // similar, later, higher score
		{Title: "TSMC quarterly earnings beat estimates", URL: "u3", Score: 1},
		{Title: "entirely unrelated headline text", URL: "u1", Score: 9}, // same URL as first
	}

	got := m.Dedup(items)
	if len(got) != 2 {
		t.Fatalf("kept %d items, want 2: %v", len(got), got)
	}
	if got[0].URL != "u1" || got[0].Score != 3 {
		t.Errorf("first survivor = %+v, want the earliest item regardless of score", got[0])
	}
	if got[1].URL != "u3" {
		t.Errorf("second survivor = %+v, want u3", got[1])
	}
}

func TestDedupIdempotent(t *testing.T) {
	m := NewMatcher(DefaultDuplicateThreshold)

	items := []Item{
		{Title: "NVIDIA Blackwell production ramps up", URL: "a"},
		{Title: "NVIDIA Blackwell production ramp", URL: "b"},
		{Title: "Waymo expands robotaxi service area", URL: "c"},
		{Title: "completely different topic entirely", URL: "d"},
	}

	once := m.Dedup(items)
	twice := m.Dedup(once)
	if len(once) != len(twice) {
		t.Fatalf("dedup not idempotent: %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].URL != twice[i].URL {
			t.Errorf("item %d changed between passes: %q vs %q", i, once[i].URL, twice[i].URL)
		}
	}
}

func TestDedupEmpty(t *testing.T) {
	m := NewMatcher(DefaultDuplicateThreshold)
	if got := m.Dedup(nil); len(got) != 0 {
		t.Errorf("dedup(nil) = %v, want empty", got)
	}
}
