package fetch

import (
	"context"
	"time"

	"insightbot/internal/htmltext"
	"insightbot/internal/news"
)

// HuggingFace reads the daily papers list.
type HuggingFace struct {
	env   *Env
	limit int
}

func (h *HuggingFace) Name() string { return "HuggingFace·论文" }

type hfPaper struct {
	PublishedAt time.Time `json:"publishedAt"`
	Paper       struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Summary     string    `json:"summary"`
		PublishedAt time.Time `json:"publishedAt"`
	} `json:"paper"`
}

func (h *HuggingFace) Fetch(ctx context.Context) ([]news.Item, error) {
	var papers []hfPaper
	if err := h.env.getJSON(ctx, "https://huggingface.co/api/daily_papers", &papers); err != nil {
		return nil, err
	}
	if len(papers) > h.limit {
		papers = papers[:h.limit]
	}

	items := make([]news.Item, 0, len(papers))
	for _, p := range papers {
		published := p.PublishedAt
		if published.IsZero() {
			published = p.Paper.PublishedAt
		}
		if published.IsZero() {
			published = time.Now()
		}

		abstract := htmltext.Snippet(p.Paper.Summary, 120)

		items = append(items, news.Item{
			Title:     h.env.Translator.Translate(ctx, p.Paper.Title),
			Summary:   htmltext.Truncate(h.env.Translator.Translate(ctx, abstract), 80),
			URL:       "https://huggingface.co/papers/" + p.Paper.ID,
			Time:      news.FormatTime(published),
			Published: published,
			Source:    "HuggingFace·论文",
			Region:    "🇺🇸",
			Score:     h.env.Scorer.Score(p.Paper.Title) + 4,
		})
	}
	return items, nil
}
