package news

import (
	"fmt"
	"strings"
	"time"
)

// BackfillPrefix marks items resurrected from history so the renderer can
// show their provenance and the pipeline can keep them out of the next
// history write.
const BackfillPrefix = "📎"

// Item is a single news entry flowing through one run. After scoring it is
// never mutated, except for the provenance prefix added when it is
// backfilled from history.
type Item struct {
	Title     string
	Summary   string
	URL       string
	Time      string // display time in Beijing local time, e.g. "2/9 17:40"
	Published time.Time
	Source    string
	Region    string
	Score     int
}

// Backfilled reports whether the item was injected from history rather than
// fetched this run.
func (it Item) Backfilled() bool {
	return strings.HasPrefix(it.Source, BackfillPrefix)
}

// Beijing time, fixed offset so the binary does not depend on tzdata.
var beijing = time.FixedZone("CST", 8*60*60)

// UnknownTime is the display value for items whose publish time could not be
// parsed. Such items are kept, not dropped.
const UnknownTime = "时间未知"

// FormatTime renders a timestamp as "month/day hour:minute" in Beijing time.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return UnknownTime
	}
	t = t.In(beijing)
	return fmt.Sprintf("%d/%d %02d:%02d", int(t.Month()), t.Day(), t.Hour(), t.Minute())
}

var cnSources = []string{"36Kr", "财联社", "掘金", "量子位", "QbitAI"}
var usSources = []string{"TechCrunch", "ProductHunt", "GitHub", "HackerNews", "HuggingFace", "基建", "汽车"}

// RegionForSource maps a source tag to its region flag. Used as a fallback
// when a fetcher did not tag the item itself.
func RegionForSource(source string) string {
	for _, s := range cnSources {
		if strings.Contains(source, s) {
			return "🇨🇳"
		}
	}
	for _, s := range usSources {
		if strings.Contains(source, s) {
			return "🇺🇸"
		}
	}
	return "🌐"
}
