package news

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Trend is one frequently occurring title keyword across the batch.
type Trend struct {
	Word  string
	Count int
}

// Generic terms that say nothing about what is actually trending.
var trendStopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "new": {}, "release": {},
	"launch": {}, "model": {}, "ai": {}, "releases": {}, "launches": {},
	"updates": {}, "update": {}, "version": {}, "v1": {}, "v2": {}, "v3": {},
	"pro": {}, "max": {}, "tech": {}, "source": {}, "open": {}, "data": {},
	"web": {}, "app": {}, "tool": {}, "system": {}, "platform": {},
}

// TrendingKeywords counts non-stopword title words across the items and
// returns the top limit entries seen at least twice, most frequent first.
// Ties break alphabetically so the result is deterministic.
func TrendingKeywords(items []Item, limit int) []Trend {
	counts := make(map[string]int)
	for _, it := range items {
		for _, w := range splitWords(it.Title) {
			if utf8.RuneCountInString(w) <= 2 {
				continue
			}
			if _, stop := trendStopwords[w]; stop {
				continue
			}
			if isAllDigits(w) {
				continue
			}
			counts[w]++
		}
	}

	trends := make([]Trend, 0, len(counts))
	for w, n := range counts {
		if n > 1 {
			trends = append(trends, Trend{Word: w, Count: n})
		}
	}
	sort.Slice(trends, func(i, j int) bool {
		if trends[i].Count != trends[j].Count {
			return trends[i].Count > trends[j].Count
		}
		return trends[i].Word < trends[j].Word
	})

	if len(trends) > limit {
		trends = trends[:limit]
	}
	return trends
}

// splitWords applies the tokenizer's separator rule but keeps every
// occurrence: trend counting wants frequency, not set membership.
func splitWords(text string) []string {
	text = strings.ToLower(text)
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if isWordRune(r) || isCJK(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Fields(b.String())
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// Capitalize upper-cases the first rune of a keyword for display.
func (t Trend) Capitalize() string {
	r, size := utf8.DecodeRuneInString(t.Word)
	if r == utf8.RuneError {
		return t.Word
	}
	return string(unicode.ToUpper(r)) + t.Word[size:]
}
