package news

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	if got := FormatTime(time.Time{}); got != UnknownTime {
		t.Errorf("FormatTime(zero) = %q, want %q", got, UnknownTime)
	}

	// 2025-02-09 09:40 UTC is 17:40 Beijing time
	at := time.Date(2025, 2, 9, 9, 40, 0, 0, time.UTC)
	if got := FormatTime(at); got != "2/9 17:40" {
		t.Errorf("FormatTime = %q, want %q", got, "2/9 17:40")
	}

	// single-digit minute keeps its zero padding, date does not
	at = time.Date(2025, 11, 3, 16, 5, 0, 0, time.UTC)
	if got := FormatTime(at); got != "11/4 00:05" {
		t.Errorf("FormatTime = %q, want %q", got, "11/4 00:05")
	}
}

func TestRegionForSource(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"36Kr·AI首发", "🇨🇳"},
		{"财联社电报", "🇨🇳"},
		{"TechCrunch·AI", "🇺🇸"},
		{"基建·芯片", "🇺🇸"},
		{"HackerNews", "🇺🇸"},
		{"some unknown blog", "🌐"},
	}
	for _, tt := range tests {
		if got := RegionForSource(tt.source); got != tt.want {
			t.Errorf("RegionForSource(%q) = %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestBackfilled(t *testing.T) {
	if (Item{Source: "TechCrunch"}).Backfilled() {
		t.Error("plain source flagged as backfilled")
	}
	if !(Item{Source: BackfillPrefix + "回顾"}).Backfilled() {
		t.Error("prefixed source not flagged")
	}
}
