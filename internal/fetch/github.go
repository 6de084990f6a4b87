package fetch

import (
	"context"
	"fmt"
	"time"

	"insightbot/internal/htmltext"
	"insightbot/internal/news"
)

// GitHub surfaces recently active AI/LLM repositories from the search API.
type GitHub struct {
	env      *Env
	minStars int
}

func (g *GitHub) Name() string { return "GitHub·AI" }

type githubSearch struct {
	Items []struct {
		FullName    string    `json:"full_name"`
		Description string    `json:"description"`
		HTMLURL     string    `json:"html_url"`
		Language    string    `json:"language"`
		Stars       int       `json:"stargazers_count"`
		PushedAt    time.Time `json:"pushed_at"`
	} `json:"items"`
}

func (g *GitHub) Fetch(ctx context.Context) ([]news.Item, error) {
	since := time.Now().AddDate(0, 0, -3).Format("2006-01-02")
	url := fmt.Sprintf("https://api.github.com/search/repositories?q=topic:ai+topic:llm+pushed:>%s&sort=stars&order=desc&per_page=15", since)

	var resp githubSearch
	if err := g.env.getJSON(ctx, url, &resp); err != nil {
		return nil, err
	}

	items := make([]news.Item, 0, len(resp.Items))
	for _, repo := range resp.Items {
		if repo.Stars < g.minStars {
			continue
		}

		desc := g.env.Translator.Translate(ctx, htmltext.Truncate(repo.Description, 100))
		lang := repo.Language
		if lang == "" {
			lang = "N/A"
		}

		items = append(items, news.Item{
			Title:     fmt.Sprintf("%s: %s", repo.FullName, desc),
			Summary:   fmt.Sprintf("⭐%.1fk stars · %s", float64(repo.Stars)/1000, lang),
			URL:       repo.HTMLURL,
			Time:      news.FormatTime(repo.PushedAt),
			Published: repo.PushedAt,
			Source:    "GitHub·AI",
			Region:    "🇺🇸",
			Score:     g.env.Scorer.Score(repo.Description) + 3,
		})
	}
	return items, nil
}
