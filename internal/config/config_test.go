package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var configKeys = []string{
	"QAGEN_CONFIG", "PORT", "QAGEN_API_KEY", "WORKER_COUNT", "MAX_QUEUE_SIZE",
	"MAX_UPLOAD_BYTES", "JOB_TTL", "SHORT_LIMIT", "MEDIUM_LIMIT", "LONG_LIMIT",
	"QAGEN_LANGUAGE", "PACE", "ARCHIVE_PATH", "ARCHIVE_TTL", "PDF_FALLBACK_PDFTOTEXT",
}

// clearEnv blanks every key Load reads; envOr treats "" as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "8090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.WorkerCount != 4 || cfg.MaxQueueSize != 100 {
		t.Errorf("pool = %d/%d", cfg.WorkerCount, cfg.MaxQueueSize)
	}
	if l := cfg.WordLimits(); l.Short != 30 || l.Medium != 50 || l.Long != 75 {
		t.Errorf("limits = %+v", l)
	}
	if cfg.Language != "tr" {
		t.Errorf("Language = %q", cfg.Language)
	}
	if !cfg.PDFFallbackPdftotext {
		t.Error("expected pdftotext fallback on by default")
	}
}

func TestLoadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("QAGEN_API_KEY", "secret")
	t.Setenv("WORKER_COUNT", "-3")
	t.Setenv("JOB_TTL", "10m")
	t.Setenv("SHORT_LIMIT", "80")
	t.Setenv("MEDIUM_LIMIT", "oops")
	t.Setenv("QAGEN_LANGUAGE", "en")
	t.Setenv("PACE", "20ms")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "9000" || cfg.APIKey != "secret" {
		t.Errorf("got port %q key %q", cfg.Port, cfg.APIKey)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("non-positive WORKER_COUNT should fall back, got %d", cfg.WorkerCount)
	}
	if cfg.JobTTL != 10*time.Minute {
		t.Errorf("JobTTL = %v", cfg.JobTTL)
	}
	// short clamps to medium, unparsable medium keeps its default.
	if cfg.ShortLimit != 50 || cfg.MediumLimit != 50 || cfg.LongLimit != 75 {
		t.Errorf("limits = %d/%d/%d", cfg.ShortLimit, cfg.MediumLimit, cfg.LongLimit)
	}
	if cfg.Pace != 20*time.Millisecond {
		t.Errorf("Pace = %v", cfg.Pace)
	}
	loc, err := cfg.Locale()
	if err != nil || loc.Code != "en" {
		t.Errorf("Locale = %v, %v", loc.Code, err)
	}
}

func TestLoadYAMLOverlay(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "qagen.yaml")
	content := `port: "7000"
api_key: from-file
long_limit: 120
language: en
job_ttl: 2h
archive_path: ""
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("QAGEN_CONFIG", path)
	t.Setenv("PORT", "7001")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "7001" {
		t.Errorf("environment should win over file, Port = %q", cfg.Port)
	}
	if cfg.APIKey != "from-file" || cfg.LongLimit != 120 || cfg.Language != "en" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.JobTTL != 2*time.Hour {
		t.Errorf("JobTTL = %v", cfg.JobTTL)
	}
	if cfg.ArchivePath != "" {
		t.Errorf("ArchivePath = %q, want disabled", cfg.ArchivePath)
	}
	if cfg.ShortLimit != 30 {
		t.Errorf("unset file key should keep default, ShortLimit = %d", cfg.ShortLimit)
	}
}

func TestLoadYAMLErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("QAGEN_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Error("expected error for missing config file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("worker_count: [1, 2"), 0o644)
	t.Setenv("QAGEN_CONFIG", path)
	if _, err := Load(); err == nil {
		t.Error("expected error for malformed config file")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error without API key")
	}
	cfg.APIKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	cfg.Language = "xx-invalid-!!"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for bad language")
	}
}
