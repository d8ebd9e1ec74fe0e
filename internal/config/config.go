// Package config provides configuration loading and validation for the
// interview CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config is the interviewer configuration loadable from a JSON file. All
// fields are optional; missing values fall back to defaults or CLI flags.
type Config struct {
	// Inputs
	ResumeFile string `json:"resume_file,omitempty"` // Path to an existing resume text file to pre-fill from
	ResumeURL  string `json:"resume_url,omitempty"`  // URL of an existing resume or profile page to pre-fill from

	// Behavior
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key
	Model      string `json:"model,omitempty"`       // Override model name
	Guided     bool   `json:"guided,omitempty"`      // Run the fixed question catalog instead of AI mode
	UseBrowser bool   `json:"use_browser,omitempty"` // Use headless browser for JS-rendered profile pages
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed turn information

	// Server
	Addr        string `json:"addr,omitempty"`         // HTTP listen address
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// LoadEnv loads a .env file if one exists next to the working directory.
// A missing file is not an error; explicit environment always wins.
func LoadEnv() {
	_ = godotenv.Load()
}

// Validate checks that the configuration has valid values. Required fields
// are enforced later by CLI flag validation, not here.
func (c *Config) Validate() error {
	if c.ResumeFile != "" && c.ResumeURL != "" {
		return fmt.Errorf("config error: 'resume_file' and 'resume_url' are mutually exclusive")
	}

	if c.ResumeFile != "" {
		if _, err := os.Stat(c.ResumeFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.ResumeFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
// Bool fields are not merged; flags always win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ResumeFile == "" {
		result.ResumeFile = defaults.ResumeFile
	}
	if result.ResumeURL == "" {
		result.ResumeURL = defaults.ResumeURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Addr == "" {
		result.Addr = defaults.Addr
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	return result
}
