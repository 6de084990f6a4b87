package fetch

import (
	"context"
	"fmt"
	"time"

	"insightbot/internal/htmltext"
	"insightbot/internal/news"
)

// CLS reads the 财联社 rolling telegraph API for macro/finance flashes.
type CLS struct {
	env *Env
}

func (c *CLS) Name() string { return "财联社·宏观" }

type clsResponse struct {
	Data struct {
		RollData []struct {
			ID      int64  `json:"id"`
			Title   string `json:"title"`
			Content string `json:"content"`
			Ctime   int64  `json:"ctime"`
		} `json:"roll_data"`
	} `json:"data"`
}

func (c *CLS) Fetch(ctx context.Context) ([]news.Item, error) {
	url := fmt.Sprintf("https://www.cls.cn/nodeapi/updateTelegraphList?rn=20&timestamp=%d", time.Now().Unix())

	var resp clsResponse
	if err := c.env.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}

	items := make([]news.Item, 0, len(resp.Data.RollData))
	for _, flash := range resp.Data.RollData {
		published := time.Unix(flash.Ctime, 0)
		if !thisYear(published) {
			continue
		}

		// Flashes often carry no title, only HTML content.
		title := flash.Title
		if title == "" {
			title = htmltext.Snippet(flash.Content, 100)
		}

		items = append(items, news.Item{
			Title:     title,
			Summary:   htmltext.Snippet(flash.Content, 80),
			URL:       fmt.Sprintf("https://www.cls.cn/detail/%d", flash.ID),
			Time:      news.FormatTime(published),
			Published: published,
			Source:    "财联社·宏观",
			Region:    "🇨🇳",
			Score:     c.env.Scorer.Score(title) + 2,
		})
	}
	return items, nil
}
