// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/parsing"
)

// Default values applied by Defaults and MergeWithDefaults
const (
	DefaultPort             = 8080
	DefaultBatchConcurrency = 4
	maxBatchConcurrency     = 64
)

// Config represents the configuration that can be loaded from a JSON or TOML file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Behavior
	Verbose          bool `json:"verbose,omitempty" toml:"verbose"`                     // Print detailed debug information
	SchemaValidation bool `json:"schema_validation,omitempty" toml:"schema_validation"` // Validate every result against the JSON schema

	// Server
	Port int `json:"port,omitempty" toml:"port"`

	// Input checks
	MinTextLength int `json:"min_text_length,omitempty" toml:"min_text_length"` // Shortest text worth parsing

	// Parser tables
	Acronyms     []string `json:"acronyms,omitempty" toml:"acronyms"`           // Letter-spaced tokens kept as-is
	NoisePhrases []string `json:"noise_phrases,omitempty" toml:"noise_phrases"` // Phrases never turned into bullets
	MaxSkills    int      `json:"max_skills,omitempty" toml:"max_skills"`

	// Batch
	BatchConcurrency int `json:"batch_concurrency,omitempty" toml:"batch_concurrency"`
}

// Defaults returns the configuration used when no file is given
func Defaults() Config {
	return Config{
		Port:             DefaultPort,
		MinTextLength:    ingestion.DefaultMinTextLength,
		MaxSkills:        parsing.DefaultMaxSkills,
		BatchConcurrency: DefaultBatchConcurrency,
	}
}

// LoadConfig loads configuration from a JSON or TOML file, chosen by extension.
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
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config TOML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MinTextLength < 0 {
		return fmt.Errorf("config error: 'min_text_length' must be non-negative")
	}
	if c.MaxSkills < 0 {
		return fmt.Errorf("config error: 'max_skills' must be non-negative")
	}
	if c.BatchConcurrency < 0 || c.BatchConcurrency > maxBatchConcurrency {
		return fmt.Errorf("config error: 'batch_concurrency' must be between 0 and %d", maxBatchConcurrency)
	}
	for _, a := range c.Acronyms {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("config error: 'acronyms' must not contain empty entries")
		}
	}
	for _, p := range c.NoisePhrases {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("config error: 'noise_phrases' must not contain empty entries")
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
// Nil slices take the default; an explicitly empty list is kept.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MinTextLength == 0 {
		result.MinTextLength = defaults.MinTextLength
	}
	if result.MaxSkills == 0 {
		result.MaxSkills = defaults.MaxSkills
	}
	if result.BatchConcurrency == 0 {
		result.BatchConcurrency = defaults.BatchConcurrency
	}
	if result.Acronyms == nil {
		result.Acronyms = defaults.Acronyms
	}
	if result.NoisePhrases == nil {
		result.NoisePhrases = defaults.NoisePhrases
	}

	// Bool fields: OR with defaults
	result.Verbose = result.Verbose || defaults.Verbose
	result.SchemaValidation = result.SchemaValidation || defaults.SchemaValidation

	return result
}

// ParserOptions converts the parser tables into parsing options. Tables left
// unset keep the parser's built-in defaults.
func (c *Config) ParserOptions() []parsing.Option {
	var opts []parsing.Option
	if c.Acronyms != nil {
		opts = append(opts, parsing.WithAcronyms(c.Acronyms))
	}
	if c.NoisePhrases != nil {
		opts = append(opts, parsing.WithNoisePhrases(c.NoisePhrases))
	}
	if c.MaxSkills > 0 {
		opts = append(opts, parsing.WithMaxSkills(c.MaxSkills))
	}
	return opts
}

// NewParser builds a parser from the configuration
func (c *Config) NewParser() *parsing.Parser {
	return parsing.New(c.ParserOptions()...)
}
