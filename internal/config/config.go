// Package config loads service configuration from a config file and
// environment (SHEETSPLIT_ prefix), with defaults suitable for local use.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port string

	// Output
	OutputDir string

	// Auth for the HTTP surface
	APIKey string

	// AI structure suggestion
	OpenAIAPIKey string
	OpenAIModel  string

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration

	// PDF
	PDFFallbackPdftotext bool
}

// Load reads sheetsplit.yaml (working directory) if present, then applies
// environment overrides. Missing config file is not an error.
func Load() Config {
	v := viper.New()
	v.SetConfigName("sheetsplit")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SHEETSPLIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8090")
	v.SetDefault("output_dir", "output")
	v.SetDefault("openai_model", "gpt-4.1")
	v.SetDefault("worker_count", 4)
	v.SetDefault("max_queue_size", 100)
	v.SetDefault("max_upload_bytes", 52428800) // 50MB
	v.SetDefault("job_ttl", time.Hour)
	v.SetDefault("pdf_fallback_pdftotext", true)

	_ = v.ReadInConfig()

	cfg := Config{
		Port:                 v.GetString("port"),
		OutputDir:            v.GetString("output_dir"),
		APIKey:               v.GetString("api_key"),
		OpenAIAPIKey:         v.GetString("openai_api_key"),
		OpenAIModel:          v.GetString("openai_model"),
		WorkerCount:          v.GetInt("worker_count"),
		MaxQueueSize:         v.GetInt("max_queue_size"),
		MaxUploadBytes:       v.GetInt64("max_upload_bytes"),
		JobTTL:               v.GetDuration("job_ttl"),
		PDFFallbackPdftotext: v.GetBool("pdf_fallback_pdftotext"),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = time.Hour
	}

	return cfg
}

// ValidateServe checks the settings the HTTP server cannot run without.
func (c Config) ValidateServe() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key is required (SHEETSPLIT_API_KEY)")
	}
	return nil
}

// ValidateSuggest checks the settings the AI suggestion path requires.
func (c Config) ValidateSuggest() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("openai_api_key is required (SHEETSPLIT_OPENAI_API_KEY)")
	}
	return nil
}
