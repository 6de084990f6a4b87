// Package fetch collects raw items from the external sources. Every source
// runs as its own task; a failing source is logged and contributes nothing,
// and the merged batch is assembled only after all tasks have settled.
package fetch

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"insightbot/internal/metrics"
	"insightbot/internal/news"
	"insightbot/internal/retry"
	"insightbot/internal/translate"
)

// Fetcher is one external source of items.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) ([]news.Item, error)
}

// Env bundles what every fetcher needs: the shared HTTP client, the retry
// policy, the scorer for pre-scoring, and the translation collaborator.
type Env struct {
	Client     HTTPDoer
	Retry      retry.Config
	Scorer     *news.Scorer
	Translator translate.Translator
	Log        zerolog.Logger
}

// All fans out one goroutine per fetcher and merges the results in fetcher
// order after every task has finished. A source failure never aborts its
// siblings or the run.
func All(ctx context.Context, log zerolog.Logger, fetchers []Fetcher) []news.Item {
	results := make([][]news.Item, len(fetchers))

	var wg sync.WaitGroup
	for i, f := range fetchers {
		wg.Add(1)
		go func(i int, f Fetcher) {
			defer wg.Done()
			items, err := f.Fetch(ctx)
			if err != nil {
				metrics.SourceErrors.WithLabelValues(f.Name()).Inc()
				log.Error().Err(err).Str("source", f.Name()).Msg("source failed")
				return
			}
			metrics.ItemsFetched.WithLabelValues(f.Name()).Add(float64(len(items)))
			log.Info().Str("source", f.Name()).Int("items", len(items)).Msg("source done")
			results[i] = items
		}(i, f)
	}
	wg.Wait()

	var merged []news.Item
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged
}

// thisYear filters out feed entries resurfacing from a past year. An
// unparsable (zero) timestamp is kept rather than dropped.
func thisYear(t time.Time) bool {
	if t.IsZero() {
		return true
	}
	return t.Year() == time.Now().Year()
}
