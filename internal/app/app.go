// Package app wires one digest run end to end: load state, fetch, rank,
// deliver, persist.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"insightbot/internal/config"
	"insightbot/internal/fetch"
	"insightbot/internal/history"
	"insightbot/internal/mail"
	"insightbot/internal/metrics"
	"insightbot/internal/news"
	"insightbot/internal/retry"
	"insightbot/internal/translate"
)

// Run executes one scheduled digest run. Source failures, translation
// failures and persistence failures are contained; the only non-error way
// out without a delivery is an empty result.
func Run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	start := time.Now()
	defer func() {
		metrics.RunDuration.Observe(time.Since(start).Seconds())
	}()

	keywords, err := config.LoadKeywords(cfg.KeywordsFile)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.KeywordsFile).Msg("keywords config unavailable, using built-in tables")
		keywords = news.DefaultKeywords()
	}
	scorer := news.NewScorer(keywords)

	sources, err := fetch.LoadSources(cfg.SourcesFile)
	if err != nil {
		return err
	}

	var translator translate.Translator = translate.Noop{}
	if cfg.GeminiAPIKey != "" {
		client, err := translate.NewClient(ctx, cfg.GeminiAPIKey, cfg.MaxTranslateRequests, log)
		if err != nil {
			log.Warn().Err(err).Msg("translation unavailable, keeping original text")
		} else {
			defer client.Close()
			translator = client
		}
	} else {
		log.Info().Msg("no GEMINI_API_KEY, titles stay untranslated")
	}

	store := history.NewStore(cfg.HistoryFile, cfg.MaxHistorySize, log)
	hist := store.Load()
	log.Info().Int("records", len(hist)).Msg("history loaded")

	env := &fetch.Env{
		Client:     fetch.NewHTTPClient(cfg.RequestTimeout),
		Retry:      retry.Config{Attempts: cfg.RetryAttempts, Delay: cfg.RetryDelay, Backoff: true},
		Scorer:     scorer,
		Translator: translator,
		Log:        log,
	}
	items := fetch.All(ctx, log, fetch.Build(sources, env))
	log.Info().Int("items", len(items)).Msg("fetch settled")

	matcher := news.NewMatcher(cfg.DuplicateThreshold)
	pipeline := news.Pipeline{
		Scorer: scorer,
		Classifier: news.Classifier{
			Matcher:        matcher,
			StaleWindow:    cfg.StaleWindow,
			ReplayDelay:    cfg.ReplayWindowStart,
			ReplayMinScore: cfg.ReplayMinScore,
		},
		Backfill: news.BackfillSelector{
			Window:   cfg.BackfillWindow,
			MinAge:   cfg.StaleWindow,
			MinScore: cfg.BackfillMinScore,
			MinItems: cfg.MinItems,
		},
	}

	now := time.Now()
	result := pipeline.Run(items, hist, now)

	backfilled := 0
	for _, it := range result.Fresh {
		if it.Backfilled() {
			backfilled++
		}
	}
	metrics.FreshItems.Set(float64(len(result.Fresh)))
	metrics.ReviewItems.Set(float64(len(result.Review)))
	metrics.BackfilledItems.Set(float64(backfilled))
	log.Info().
		Int("fresh", len(result.Fresh)).
		Int("review", len(result.Review)).
		Int("backfilled", backfilled).
		Msg("ranking done")

	if !result.HasContent {
		log.Info().Msg("nothing to deliver, skipping email and history update")
		return nil
	}

	digest := mail.Render(result, now)
	if !cfg.MailConfigured() {
		log.Warn().Msg("email credentials missing, skipping delivery")
	} else {
		mailer := &mail.Mailer{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.EmailUser,
			Password: cfg.EmailPass,
			Log:      log,
		}
		if err := mailer.Send(cfg.RecipientEmail, digest); err != nil {
			// Delivery failure must not prevent the history write: the items
			// were selected and would flood the next run as duplicates.
			log.Error().Err(err).Msg("email delivery failed")
		} else {
			metrics.EmailsSent.Inc()
			log.Info().Str("subject", digest.Subject).Msg("email sent")
		}
	}

	updated := append(hist, result.HistoryAppend(now)...)
	if err := store.Save(updated); err != nil {
		log.Error().Err(err).Msg("history save failed, next run will see stale history")
	} else {
		size := len(updated)
		if size > cfg.MaxHistorySize {
			size = cfg.MaxHistorySize
		}
		metrics.HistorySize.Set(float64(size))
		log.Info().Int("records", size).Msg("history updated")
	}

	log.Info().Dur("elapsed", time.Since(start)).Msg("run complete")
	return nil
}
