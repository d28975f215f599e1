// Package config provides configuration loading and validation for the server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all runtime configuration for the resume screener.
// It is built once at process start (see cmd/resume_screener) and passed
// into each component constructor; there is no ambient global state.
type Config struct {
	// Port is the HTTP listen port.
	Port int

	// APIKey is the Gemini API key.
	APIKey string

	// FrontendURL is the allowed CORS origin.
	FrontendURL string

	// DataDir is the root for all on-disk state. Temp uploads, saved
	// documents and the metadata file all live beneath it.
	DataDir string

	// TempRetention is how long unconfirmed temp uploads are kept before
	// the sweep removes them.
	TempRetention time.Duration
}

// Defaults mirror the original deployment layout: a temp upload area,
// a saved-documents area and a single metadata JSON file.
const (
	defaultPort          = 8080
	defaultFrontendURL   = "http://localhost:3000"
	defaultTempRetention = 24 * time.Hour

	tempSubdir     = "uploads/temp_resumes"
	savedSubdir    = "saved_data/resumes"
	metadataFile   = "saved_data/resumes_metadata.json"
	defaultDataDir = "."
)

// FromEnv builds a Config from environment variables.
// GEMINI_API_KEY is required; everything else has a default.
func FromEnv() (*Config, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	cfg := &Config{
		Port:          defaultPort,
		APIKey:        apiKey,
		FrontendURL:   defaultFrontendURL,
		DataDir:       defaultDataDir,
		TempRetention: defaultTempRetention,
	}

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = p
	}
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		cfg.FrontendURL = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TEMP_RETENTION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TEMP_RETENTION %q: %w", v, err)
		}
		cfg.TempRetention = d
	}

	return cfg, nil
}

// TempDir returns the directory holding not-yet-confirmed uploads.
func (c *Config) TempDir() string {
	return filepath.Join(c.DataDir, tempSubdir)
}

// SavedDir returns the directory holding confirmed resume and Q&A files.
func (c *Config) SavedDir() string {
	return filepath.Join(c.DataDir, savedSubdir)
}

// MetadataPath returns the path of the metadata store file.
func (c *Config) MetadataPath() string {
	return filepath.Join(c.DataDir, metadataFile)
}

// EnsureDirs creates the storage directories if they do not exist.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.TempDir(), c.SavedDir(), filepath.Dir(c.MetadataPath())} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: invalid port %d", c.Port)
	}
	if c.APIKey == "" {
		return fmt.Errorf("config error: API key is empty")
	}
	if c.TempRetention < 0 {
		return fmt.Errorf("config error: temp retention must be non-negative")
	}
	return nil
}
