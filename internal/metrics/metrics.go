package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ItemsFetched = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "insight_items_fetched_total",
		Help: "Items produced per source before deduplication",
	}, []string{"source"})

	SourceErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "insight_source_errors_total",
		Help: "Fetch failures per source",
	}, []string{"source"})

	FreshItems = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "insight_fresh_items",
		Help: "Fresh items in the last run, backfill included",
	})

	ReviewItems = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "insight_review_items",
		Help: "Review items in the last run",
	})

	BackfilledItems = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "insight_backfilled_items",
		Help: "Items injected from history in the last run",
	})

	HistorySize = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "insight_history_size",
		Help: "Records in the persisted history after the last save",
	})

	TranslateRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "insight_translate_requests_total",
		Help: "Translation calls made to the AI backend",
	})

	TranslateErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "insight_translate_errors_total",
		Help: "Translation calls that fell back to the original text",
	})

	EmailsSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "insight_emails_sent_total",
		Help: "Digest emails delivered",
	})

	RunDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "insight_run_duration_seconds",
		Help:    "Wall time of a full digest run",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(
		ItemsFetched, SourceErrors,
		FreshItems, ReviewItems, BackfilledItems, HistorySize,
		TranslateRequests, TranslateErrors,
		EmailsSent, RunDuration,
	)
}

// Handler exposes the default registry for the monitoring endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
