package fetch

import (
	"context"
	"fmt"
	"time"

	"insightbot/internal/htmltext"
	"insightbot/internal/news"
)

// Juejin reads the 掘金 AI hot-article ranking. The API exposes no publish
// time, so items carry the fetch instant.
type Juejin struct {
	env   *Env
	limit int
}

func (j *Juejin) Name() string { return "掘金·AI" }

type juejinResponse struct {
	Data []struct {
		Content struct {
			ContentID string `json:"content_id"`
			Title     string `json:"title"`
			Brief     string `json:"brief_content"`
		} `json:"content"`
	} `json:"data"`
}

func (j *Juejin) Fetch(ctx context.Context) ([]news.Item, error) {
	url := fmt.Sprintf("https://api.juejin.cn/content_api/v1/content/article_rank?category_id=6809637773935378440&type=hot&limit=%d", j.limit)

	var resp juejinResponse
	if err := j.env.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]news.Item, 0, len(resp.Data))
	for _, entry := range resp.Data {
		items = append(items, news.Item{
			Title:     entry.Content.Title,
			Summary:   htmltext.Snippet(entry.Content.Brief, 80),
			URL:       "https://juejin.cn/post/" + entry.Content.ContentID,
			Time:      news.FormatTime(now),
			Published: now,
			Source:    "掘金·AI",
			Region:    "🇨🇳",
			Score:     j.env.Scorer.Score(entry.Content.Title) + 2,
		})
	}
	return items, nil
}
