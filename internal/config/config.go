package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/dgallion1/qagen/internal/extract"
)

// Config holds settings for the qagen server and CLI. Values come from
// defaults, then the optional YAML file named by QAGEN_CONFIG, then the
// environment.
type Config struct {
	Port string `yaml:"port"`

	// Auth
	APIKey string `yaml:"api_key"`

	// Worker pool
	WorkerCount  int `yaml:"worker_count"`
	MaxQueueSize int `yaml:"max_queue_size"`

	// Upload limits
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	// Job state
	JobTTL time.Duration `yaml:"job_ttl"`

	// Extraction defaults
	ShortLimit  int           `yaml:"short_limit"`
	MediumLimit int           `yaml:"medium_limit"`
	LongLimit   int           `yaml:"long_limit"`
	Language    string        `yaml:"language"`
	Pace        time.Duration `yaml:"pace"`

	// Result archive; an empty path disables it.
	ArchivePath string        `yaml:"archive_path"`
	ArchiveTTL  time.Duration `yaml:"archive_ttl"`

	// PDF
	PDFFallbackPdftotext bool `yaml:"pdf_fallback_pdftotext"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Port:                 "8090",
		WorkerCount:          4,
		MaxQueueSize:         100,
		MaxUploadBytes:       52428800, // 50MB
		JobTTL:               1 * time.Hour,
		ShortLimit:           extract.DefaultWordLimits.Short,
		MediumLimit:          extract.DefaultWordLimits.Medium,
		LongLimit:            extract.DefaultWordLimits.Long,
		Language:             extract.DefaultLocale.Code,
		ArchivePath:          "data/qagen.db",
		ArchiveTTL:           30 * 24 * time.Hour,
		PDFFallbackPdftotext: true,
	}
}

// Load builds the configuration. It fails only when QAGEN_CONFIG names a
// file that cannot be read or parsed.
func Load() (Config, error) {
	cfg := Default()
	if path := os.Getenv("QAGEN_CONFIG"); path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg = Config{
		Port: envOr("PORT", cfg.Port),

		APIKey: envOr("QAGEN_API_KEY", cfg.APIKey),

		WorkerCount:  envInt("WORKER_COUNT", cfg.WorkerCount),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", cfg.MaxQueueSize),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", cfg.MaxUploadBytes),

		JobTTL: envDuration("JOB_TTL", cfg.JobTTL),

		ShortLimit:  envInt("SHORT_LIMIT", cfg.ShortLimit),
		MediumLimit: envInt("MEDIUM_LIMIT", cfg.MediumLimit),
		LongLimit:   envInt("LONG_LIMIT", cfg.LongLimit),
		Language:    envOr("QAGEN_LANGUAGE", cfg.Language),
		Pace:        envDuration("PACE", cfg.Pace),

		ArchivePath: envOr("ARCHIVE_PATH", cfg.ArchivePath),
		ArchiveTTL:  envDuration("ARCHIVE_TTL", cfg.ArchiveTTL),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", cfg.PDFFallbackPdftotext),
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) overlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) normalize() {
	def := Default()
	if c.WorkerCount <= 0 {
		c.WorkerCount = def.WorkerCount
	}
	if c.MaxQueueSize <= 0 {
		c.MaxQueueSize = def.MaxQueueSize
	}
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = def.MaxUploadBytes
	}
	if c.JobTTL <= 0 {
		c.JobTTL = def.JobTTL
	}
	if c.Pace < 0 {
		c.Pace = 0
	}
	if c.ArchiveTTL < 0 {
		c.ArchiveTTL = 0
	}
	limits := c.WordLimits()
	c.ShortLimit, c.MediumLimit, c.LongLimit = limits.Short, limits.Medium, limits.Long
}

// WordLimits returns the default answer lengths, normalized.
func (c Config) WordLimits() extract.WordLimits {
	return extract.WordLimits{Short: c.ShortLimit, Medium: c.MediumLimit, Long: c.LongLimit}.Normalize()
}

// Locale returns the default extraction locale.
func (c Config) Locale() (extract.Locale, error) {
	return extract.LocaleFor(c.Language)
}

// Validate checks settings the HTTP server cannot run without.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("QAGEN_API_KEY is required")
	}
	if _, err := c.Locale(); err != nil {
		return fmt.Errorf("QAGEN_LANGUAGE: %w", err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
