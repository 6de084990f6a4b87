package news

import (
	"sort"
	"time"

	"insightbot/internal/history"
)

// Classifier applies the multi-window freshness policy against history. The
// windows, relative to the injected now:
//
//	age > StaleWindow                → stale: matching items are discarded
//	ReplayDelay < age < StaleWindow,
//	score >= ReplayMinScore          → replay-eligible: record is ignored by
//	                                   both duplicate checks, letting a
//	                                   high-value story resurface
//	age <= StaleWindow otherwise     → same-day: matching items go to review
type Classifier struct {
	Matcher        Matcher
	StaleWindow    time.Duration
	ReplayDelay    time.Duration
	ReplayMinScore int
}

// DefaultClassifier returns the fixed production policy: 24h staleness, 4h
// replay delay, replay score floor 8.
func DefaultClassifier(m Matcher) Classifier {
	return Classifier{
		Matcher:        m,
		StaleWindow:    24 * time.Hour,
		ReplayDelay:    4 * time.Hour,
		ReplayMinScore: 8,
	}
}

func (c Classifier) replayEligible(h history.Record, now time.Time) bool {
	if h.Score < c.ReplayMinScore {
		return false
	}
	t := h.CaptureTime()
	return t.After(now.Add(-c.StaleWindow)) && t.Before(now.Add(-c.ReplayDelay))
}

// IsStaleDuplicate reports whether the item matches a non-replay history
// record older than the stale window.
func (c Classifier) IsStaleDuplicate(it Item, hist []history.Record, now time.Time) bool {
	dayCutoff := now.Add(-c.StaleWindow)
	for _, h := range hist {
		if c.replayEligible(h, now) {
			continue
		}
		if h.CaptureTime().Before(dayCutoff) && c.Matcher.MatchRecord(h, it) {
			return true
		}
	}
	return false
}

// IsSameDayDuplicate reports whether the item matches a non-replay history
// record from within the stale window.
func (c Classifier) IsSameDayDuplicate(it Item, hist []history.Record, now time.Time) bool {
	dayCutoff := now.Add(-c.StaleWindow)
	for _, h := range hist {
		if c.replayEligible(h, now) {
			continue
		}
		if !h.CaptureTime().Before(dayCutoff) && c.Matcher.MatchRecord(h, it) {
			return true
		}
	}
	return false
}

// Classify runs the order-sensitive pipeline: drop stale duplicates, dedup
// the batch, partition survivors into fresh and review, then sort each
// bucket by score descending. The sort is stable, so ties keep their fetch
// order.
func (c Classifier) Classify(items []Item, hist []history.Record, now time.Time) (fresh, review []Item) {
	valid := make([]Item, 0, len(items))
	for _, it := range items {
		if !c.IsStaleDuplicate(it, hist, now) {
			valid = append(valid, it)
		}
	}

	valid = c.Matcher.Dedup(valid)

	for _, it := range valid {
		if c.IsSameDayDuplicate(it, hist, now) {
			review = append(review, it)
		} else {
			fresh = append(fresh, it)
		}
	}

	sort.SliceStable(fresh, func(i, j int) bool { return fresh[i].Score > fresh[j].Score })
	sort.SliceStable(review, func(i, j int) bool { return review[i].Score > review[j].Score })
	return fresh, review
}
