// Package translate renders foreign-language titles and snippets in Chinese
// for the digest. Translation is best effort: any failure returns the
// original text so a fetcher never loses an item to a translation error.
package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"insightbot/internal/metrics"
)

// Translator converts text to Simplified Chinese, returning the input
// unchanged when translation is unavailable or fails.
type Translator interface {
	Translate(ctx context.Context, text string) string
}

// Noop passes text through, used when no API key is configured.
type Noop struct{}

func (Noop) Translate(_ context.Context, text string) string { return text }

// Client translates through Gemini with an in-run memo cache and a per-run
// call budget.
type Client struct {
	client *genai.Client
	model  string
	cache  *memoCache
	budget *budget
	log    zerolog.Logger
}

func NewClient(ctx context.Context, apiKey string, maxRequests int, log zerolog.Logger) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Client{
		client: client,
		model:  "gemini-1.5-flash",
		cache:  newMemoCache(),
		budget: newBudget(maxRequests),
		log:    log,
	}, nil
}

func (c *Client) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

func (c *Client) Translate(ctx context.Context, text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	if cached, ok := c.cache.get(text); ok {
		return cached
	}

	if !c.budget.allow() {
		c.log.Debug().Int("used", c.budget.used()).Msg("translate budget exhausted, keeping original text")
		return text
	}

	metrics.TranslateRequests.Inc()
	translated, err := c.generate(ctx, text)
	if err != nil {
		metrics.TranslateErrors.Inc()
		c.log.Debug().Err(err).Str("text", text).Msg("translate failed, keeping original text")
		return text
	}

	c.cache.set(text, translated)
	return translated
}

func (c *Client) generate(ctx context.Context, text string) (string, error) {
	model := c.client.GenerativeModel(c.model)

	prompt := fmt.Sprintf("Translate the following text into Simplified Chinese. "+
		"Keep brand and product names untranslated. Reply with the translation only, no commentary.\n\n%s", text)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	out := strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
	if out == "" {
		return "", fmt.Errorf("blank translation")
	}
	return out, nil
}
