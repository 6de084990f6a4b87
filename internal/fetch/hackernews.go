package fetch

import (
	"context"
	"fmt"
	"time"

	"insightbot/internal/news"
)

// HackerNews reads the top stories from the Firebase API. Individual story
// fetches may fail and are simply skipped.
type HackerNews struct {
	env   *Env
	limit int
}

func (h *HackerNews) Name() string { return "HackerNews" }

type hnItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Score       int    `json:"score"`
	Descendants int    `json:"descendants"`
	Time        int64  `json:"time"`
}

func (h *HackerNews) Fetch(ctx context.Context) ([]news.Item, error) {
	var ids []int64
	if err := h.env.getJSON(ctx, "https://hacker-news.firebaseio.com/v0/topstories.json", &ids); err != nil {
		return nil, err
	}
	if len(ids) > h.limit {
		ids = ids[:h.limit]
	}

	items := make([]news.Item, 0, len(ids))
	for _, id := range ids {
		var story hnItem
		url := fmt.Sprintf("https://hacker-news.firebaseio.com/v0/item/%d.json", id)
		if err := h.env.getJSON(ctx, url, &story); err != nil {
			h.env.Log.Debug().Err(err).Int64("id", id).Msg("hn story fetch failed, skipping")
			continue
		}
		if story.Title == "" {
			continue
		}

		published := time.Now()
		if story.Time > 0 {
			published = time.Unix(story.Time, 0)
		}
		if !thisYear(published) {
			continue
		}

		link := story.URL
		if link == "" {
			link = fmt.Sprintf("https://news.ycombinator.com/item?id=%d", story.ID)
		}

		items = append(items, news.Item{
			Title:     h.env.Translator.Translate(ctx, story.Title),
			Summary:   fmt.Sprintf("%d points · %d comments", story.Score, story.Descendants),
			URL:       link,
			Time:      news.FormatTime(published),
			Published: published,
			Source:    "HackerNews",
			Region:    "🇺🇸",
			Score:     h.env.Scorer.Score(story.Title) + 3,
		})
	}
	return items, nil
}
