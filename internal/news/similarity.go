package news

import "insightbot/internal/history"

// DefaultDuplicateThreshold is the fixed policy constant above which two
// titles count as the same story. Matching requires strictly greater than
// the threshold.
const DefaultDuplicateThreshold = 0.4

// Similarity returns the Jaccard overlap of the two texts' token sets in
// [0,1]. If either token set is empty the result is 0, so two empty titles
// are never considered similar.
func Similarity(a, b string) float64 {
	sa := Tokenize(a)
	sb := Tokenize(b)
	if len(sa) == 0 || len(sb) == 0 {
		return 0
	}

	intersection := 0
	for tok := range sa {
		if _, ok := sb[tok]; ok {
			intersection++
		}
	}
	union := len(sa) + len(sb) - intersection
	return float64(intersection) / float64(union)
}

// Matcher is the universal "are these the same story" test: exact URL
// equality or title similarity strictly above the threshold.
type Matcher struct {
	Threshold float64
}

func NewMatcher(threshold float64) Matcher {
	if threshold <= 0 {
		threshold = DefaultDuplicateThreshold
	}
	return Matcher{Threshold: threshold}
}

// Match reports whether two items represent the same story.
func (m Matcher) Match(a, b Item) bool {
	return a.URL == b.URL || Similarity(a.Title, b.Title) > m.Threshold
}

// MatchRecord reports whether a history record and an item represent the
// same story.
func (m Matcher) MatchRecord(h history.Record, it Item) bool {
	return h.URL == it.URL || Similarity(h.Title, it.Title) > m.Threshold
}
