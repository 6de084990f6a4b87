package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SMTPHost != "smtp.qq.com" || cfg.SMTPPort != 465 {
		t.Errorf("smtp defaults = %s:%d", cfg.SMTPHost, cfg.SMTPPort)
	}
	if cfg.MinItems != 50 || cfg.MaxHistorySize != 1000 || cfg.DuplicateThreshold != 0.4 {
		t.Errorf("ranking defaults wrong: %+v", cfg)
	}
	if cfg.ReplayMinScore != 8 || cfg.BackfillMinScore != 5 {
		t.Errorf("score floors wrong: %+v", cfg)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MIN_ITEMS", "10")
	t.Setenv("STALE_WINDOW", "12h")
	t.Setenv("EMAIL_USER", "bot@example.com")
	t.Setenv("EMAIL_PASS", "secret")
	t.Setenv("RECIPIENT_EMAIL", "reader@example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MinItems != 10 {
		t.Errorf("MinItems = %d, want 10", cfg.MinItems)
	}
	if cfg.StaleWindow.Hours() != 12 {
		t.Errorf("StaleWindow = %v, want 12h", cfg.StaleWindow)
	}
	if !cfg.MailConfigured() {
		t.Error("MailConfigured = false with full credentials")
	}
}

func TestMailConfiguredNeedsAllThree(t *testing.T) {
	cfg := &Config{EmailUser: "u", EmailPass: "p"}
	if cfg.MailConfigured() {
		t.Error("missing recipient should not count as configured")
	}
}

func TestLoadKeywords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.yaml")
	data := `critical:
  weight: 100
  keywords: [openai, nvidia]
low:
  weight: 1
  keywords: [update]
signature:
  weight: 200
  keywords: [seedance]
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	kc, err := LoadKeywords(path)
	if err != nil {
		t.Fatal(err)
	}
	if kc.Critical.Weight != 100 || len(kc.Critical.Keywords) != 2 {
		t.Errorf("critical tier = %+v", kc.Critical)
	}
	if kc.Signature.Weight != 200 {
		t.Errorf("signature tier = %+v", kc.Signature)
	}
}

func TestLoadKeywordsMissingFile(t *testing.T) {
	if _, err := LoadKeywords(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("want error for missing file")
	}
}
