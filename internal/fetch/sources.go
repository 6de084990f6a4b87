package fetch

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

// FeedConfig defines one RSS-backed source.
type FeedConfig struct {
	Name      string `yaml:"name"`
	URL       string `yaml:"url"`
	Region    string `yaml:"region"`
	Limit     int    `yaml:"limit"`
	Bonus     int    `yaml:"bonus"`
	Translate bool   `yaml:"translate"`
}

// QueryConfig defines one Google News search feed.
type QueryConfig struct {
	Name  string `yaml:"name"`
	Query string `yaml:"query"`
	Limit int    `yaml:"limit"`
	Bonus int    `yaml:"bonus"`
}

// SourcesConfig is the yaml source list: RSS feeds, Google News queries, and
// the enabled JSON API fetchers.
type SourcesConfig struct {
	Feeds   []FeedConfig  `yaml:"feeds"`
	Queries []QueryConfig `yaml:"queries"`
	APIs    []string      `yaml:"apis"`
}

// LoadSources reads the source definitions from yaml.
func LoadSources(path string) (SourcesConfig, error) {
	var cfg SourcesConfig

	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}

// googleNewsFeed turns a search query into a feed source. Results are
// English, so they go through translation.
func googleNewsFeed(q QueryConfig) FeedConfig {
	u := "https://news.google.com/rss/search?q=" + url.QueryEscape(q.Query+" when:1d") +
		"&hl=en-US&gl=US&ceid=US:en"
	return FeedConfig{
		Name:      q.Name,
		URL:       u,
		Region:    "🇺🇸",
		Limit:     q.Limit,
		Bonus:     q.Bonus,
		Translate: true,
	}
}

// Build assembles the fetcher set from the source config.
func Build(cfg SourcesConfig, env *Env) []Fetcher {
	var fetchers []Fetcher
	for _, fc := range cfg.Feeds {
		fetchers = append(fetchers, &FeedFetcher{cfg: fc, env: env})
	}
	for _, qc := range cfg.Queries {
		fetchers = append(fetchers, &FeedFetcher{cfg: googleNewsFeed(qc), env: env})
	}
	for _, api := range cfg.APIs {
		switch api {
		case "hackernews":
			fetchers = append(fetchers, &HackerNews{env: env, limit: 15})
		case "github":
			fetchers = append(fetchers, &GitHub{env: env, minStars: 50})
		case "huggingface":
			fetchers = append(fetchers, &HuggingFace{env: env, limit: 15})
		case "cls":
			fetchers = append(fetchers, &CLS{env: env})
		case "juejin":
			fetchers = append(fetchers, &Juejin{env: env, limit: 15})
		default:
			env.Log.Warn().Str("api", api).Msg("unknown api source in config, skipping")
		}
	}
	return fetchers
}
