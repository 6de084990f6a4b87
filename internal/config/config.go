package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"insightbot/internal/news"
)

// Config is the runtime configuration, loaded from the environment. The
// keyword tables and source list live in yaml files so they can change
// without a rebuild.
type Config struct {
	Debug bool `envconfig:"DEBUG"`

	EmailUser      string `envconfig:"EMAIL_USER"`
	EmailPass      string `envconfig:"EMAIL_PASS"`
	RecipientEmail string `envconfig:"RECIPIENT_EMAIL"`
	SMTPHost       string `envconfig:"SMTP_HOST" default:"smtp.qq.com"`
	SMTPPort       int    `envconfig:"SMTP_PORT" default:"465"`

	GeminiAPIKey         string        `envconfig:"GEMINI_API_KEY"`
	MaxTranslateRequests int           `envconfig:"MAX_TRANSLATE_REQUESTS" default:"300"`
	RequestTimeout       time.Duration `envconfig:"REQUEST_TIMEOUT" default:"20s"`
	RetryAttempts        int           `envconfig:"RETRY_ATTEMPTS" default:"3"`
	RetryDelay           time.Duration `envconfig:"RETRY_DELAY" default:"2s"`

	HistoryFile  string `envconfig:"HISTORY_FILE" default:"history.json"`
	KeywordsFile string `envconfig:"KEYWORDS_FILE" default:"configs/keywords.yaml"`
	SourcesFile  string `envconfig:"SOURCES_FILE" default:"configs/sources.yaml"`

	// Ranking policy knobs. The defaults are the fixed production policy.
	MaxHistorySize     int           `envconfig:"MAX_HISTORY_SIZE" default:"1000"`
	MinItems           int           `envconfig:"MIN_ITEMS" default:"50"`
	DuplicateThreshold float64       `envconfig:"DUPLICATE_THRESHOLD" default:"0.4"`
	StaleWindow        time.Duration `envconfig:"STALE_WINDOW" default:"24h"`
	ReplayWindowStart  time.Duration `envconfig:"REPLAY_WINDOW_START" default:"4h"`
	ReplayMinScore     int           `envconfig:"REPLAY_MIN_SCORE" default:"8"`
	BackfillWindow     time.Duration `envconfig:"BACKFILL_WINDOW" default:"168h"`
	BackfillMinScore   int           `envconfig:"BACKFILL_MIN_SCORE" default:"5"`

	MonitoringEnabled bool `envconfig:"ENABLE_HTTP_MONITORING"`
	MonitoringPort    int  `envconfig:"MONITORING_PORT" default:"8080"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	return &cfg, nil
}

// MailConfigured reports whether delivery credentials are present. Without
// them the run still ranks and records, it just skips sending.
func (c *Config) MailConfigured() bool {
	return c.EmailUser != "" && c.EmailPass != "" && c.RecipientEmail != ""
}

// LoadKeywords reads the tier tables from yaml. Callers fall back to
// news.DefaultKeywords when the file is absent.
func LoadKeywords(path string) (news.KeywordConfig, error) {
	var kc news.KeywordConfig

	f, err := os.Open(path)
	if err != nil {
		return kc, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&kc); err != nil {
		return kc, fmt.Errorf("decode %s: %w", path, err)
	}
	return kc, nil
}
