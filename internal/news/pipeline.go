package news

import (
	"time"

	"insightbot/internal/history"
)

// Result is the output contract handed to the rendering collaborator. Both
// buckets are sorted by score descending. HasContent is false when there is
// nothing at all to deliver; the collaborator must skip sending then.
type Result struct {
	Fresh      []Item
	Review     []Item
	HasContent bool
}

// HistoryAppend converts the fresh items that should be recorded as newly
// seen into history records captured at now. Backfilled items are skipped:
// they were recorded when first delivered and must not be re-captured.
func (r Result) HistoryAppend(now time.Time) []history.Record {
	records := make([]history.Record, 0, len(r.Fresh))
	for _, it := range r.Fresh {
		if it.Backfilled() {
			continue
		}
		records = append(records, history.Record{
			Title:   it.Title,
			URL:     it.URL,
			Time:    now.UnixMilli(),
			Score:   it.Score,
			Summary: it.Summary,
			Source:  it.Source,
			Region:  it.Region,
		})
	}
	return records
}

// Pipeline wires the scorer, classifier and backfill selector into the full
// ranking run.
type Pipeline struct {
	Scorer     *Scorer
	Classifier Classifier
	Backfill   BackfillSelector
}

// Run scores any item the fetcher left unscored, classifies the batch
// against history, tops up a thin fresh bucket, and returns the partitioned
// result. It does not touch the store; persisting the HistoryAppend records
// is the caller's final step.
func (p Pipeline) Run(items []Item, hist []history.Record, now time.Time) Result {
	for i := range items {
		if items[i].Score == 0 {
			items[i].Score = p.Scorer.Score(items[i].Title + " " + items[i].Summary)
		}
	}

	fresh, review := p.Classifier.Classify(items, hist, now)
	fresh = p.Backfill.Fill(fresh, review, hist, now)

	return Result{
		Fresh:      fresh,
		Review:     review,
		HasContent: len(fresh) > 0 || len(review) > 0,
	}
}
