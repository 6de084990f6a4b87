package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"insightbot/internal/htmltext"
	"insightbot/internal/news"
)

// FeedFetcher reads one RSS/Atom feed and turns its entries into scored
// items. Scoring always runs on the untranslated text so the keyword tables
// see the original wording.
type FeedFetcher struct {
	cfg FeedConfig
	env *Env
}

func (f *FeedFetcher) Name() string { return f.cfg.Name }

func (f *FeedFetcher) Fetch(ctx context.Context) ([]news.Item, error) {
	parser := gofeed.NewParser()
	if c, ok := f.env.Client.(*http.Client); ok {
		parser.Client = c
	}

	feed, err := parser.ParseURLWithContext(f.cfg.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", f.cfg.URL, err)
	}

	entries := feed.Items
	if f.cfg.Limit > 0 && len(entries) > f.cfg.Limit {
		entries = entries[:f.cfg.Limit]
	}

	items := make([]news.Item, 0, len(entries))
	for _, entry := range entries {
		var published time.Time
		if entry.PublishedParsed != nil {
			published = *entry.PublishedParsed
		}
		if !thisYear(published) {
			continue
		}

		rawSnippet := htmltext.Snippet(entry.Description, 100)

		title := entry.Title
		snippet := rawSnippet
		if f.cfg.Translate {
			title = f.env.Translator.Translate(ctx, entry.Title)
			snippet = f.env.Translator.Translate(ctx, rawSnippet)
		}

		items = append(items, news.Item{
			Title:     title,
			Summary:   htmltext.Truncate(snippet, 80),
			URL:       entry.Link,
			Time:      news.FormatTime(published),
			Published: published,
			Source:    f.cfg.Name,
			Region:    f.cfg.Region,
			Score:     f.env.Scorer.Score(entry.Title+" "+rawSnippet) + f.cfg.Bonus,
		})
	}
	return items, nil
}
