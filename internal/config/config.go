// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	JobDescription string `json:"job_description,omitempty"` // Path to job description text file
	Candidates     string `json:"candidates,omitempty"`      // Path to candidate CSV file
	Credentials    string `json:"credentials,omitempty"`     // Path to Drive service account credentials

	// Behavior
	APIKey         string  `json:"api_key,omitempty"`          // Gemini API key
	Concurrency    int     `json:"concurrency,omitempty"`      // Batch worker pool size
	FetchTimeout   int     `json:"fetch_timeout_sec,omitempty"`   // Per-attempt resume fetch deadline in seconds
	ScoringTimeout int     `json:"scoring_timeout_sec,omitempty"` // Per-attempt oracle deadline in seconds
	OracleRate     float64 `json:"oracle_rate,omitempty"`      // Oracle calls per second across the batch
	Verbose        bool    `json:"verbose,omitempty"`          // Print detailed debug information
	DatabaseURL    string  `json:"database_url,omitempty"`     // PostgreSQL connection URL for run archiving
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("config error: 'fetch_timeout_sec' must be non-negative")
	}
	if c.ScoringTimeout < 0 {
		return fmt.Errorf("config error: 'scoring_timeout_sec' must be non-negative")
	}
	if c.OracleRate < 0 {
		return fmt.Errorf("config error: 'oracle_rate' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.JobDescription != "" {
		if _, err := os.Stat(c.JobDescription); os.IsNotExist(err) {
			return fmt.Errorf("config error: job description file not found: %s", c.JobDescription)
		}
	}
	if c.Candidates != "" {
		if _, err := os.Stat(c.Candidates); os.IsNotExist(err) {
			return fmt.Errorf("config error: candidates file not found: %s", c.Candidates)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.JobDescription == "" {
		result.JobDescription = defaults.JobDescription
	}
	if result.Candidates == "" {
		result.Candidates = defaults.Candidates
	}
	if result.Credentials == "" {
		result.Credentials = defaults.Credentials
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.FetchTimeout == 0 {
		result.FetchTimeout = defaults.FetchTimeout
	}
	if result.ScoringTimeout == 0 {
		result.ScoringTimeout = defaults.ScoringTimeout
	}

	// Float fields
	if result.OracleRate == 0 {
		if defaults.OracleRate > 0 {
			result.OracleRate = defaults.OracleRate
		} else {
			result.OracleRate = 1 // one oracle call per second by default
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// FetchTimeoutDuration returns the fetch deadline as a duration, or zero
// when unset.
func (c *Config) FetchTimeoutDuration() time.Duration {
	return time.Duration(c.FetchTimeout) * time.Second
}

// ScoringTimeoutDuration returns the oracle deadline as a duration, or
// zero when unset.
func (c *Config) ScoringTimeoutDuration() time.Duration {
	return time.Duration(c.ScoringTimeout) * time.Second
}
