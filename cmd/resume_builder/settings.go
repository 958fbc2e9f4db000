package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/parsing"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// loadSettings reads the optional config file, validates it and fills unset
// values from the defaults. An empty path yields the defaults.
func loadSettings(path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}
	return cfg.MergeWithDefaults(config.Defaults()), nil
}

// parseInput extracts text from a resume file, rejects placeholder or short
// text and parses the rest.
func parseInput(parser *parsing.Parser, path string, minLen int) (*types.ParseResult, *ingestion.Metadata, error) {
	text, meta, err := ingestion.ExtractText(path)
	if err != nil {
		return nil, nil, err
	}
	if err := ingestion.CheckParseable(text, minLen); err != nil {
		return nil, meta, fmt.Errorf("%s: %w", path, err)
	}
	return parser.Parse(text), meta, nil
}

// writeResult marshals result as indented JSON to path, or to stdout when
// path is empty. With validate set the result is checked against the
// ParseResult schema first.
func writeResult(result *types.ParseResult, path string, validate bool) error {
	if validate {
		if err := schemas.ValidateResult(result); err != nil {
			return fmt.Errorf("parse result does not validate against schema: %w", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, err = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return err
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
