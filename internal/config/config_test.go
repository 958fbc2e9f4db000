package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
		"verbose": true,
		"port": 9090,
		"min_text_length": 50,
		"acronyms": ["USA", "NASA"],
		"max_skills": 20
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.True(t, cfg.Verbose)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 50, cfg.MinTextLength)
	assert.Equal(t, []string{"USA", "NASA"}, cfg.Acronyms)
	assert.Equal(t, 20, cfg.MaxSkills)
	assert.Nil(t, cfg.NoisePhrases)
}

func TestLoadConfig_ValidTOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `
verbose = true
schema_validation = true
batch_concurrency = 8
noise_phrases = ["as the web designer", "references available"]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.SchemaValidation)
	assert.Equal(t, 8, cfg.BatchConcurrency)
	assert.Equal(t, []string{"as the web designer", "references available"}, cfg.NoisePhrases)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{ invalid json }`)

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `port = = 1`)

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config TOML")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"Valid config", Config{Port: 8080, MaxSkills: 10, Acronyms: []string{"USA"}}, ""},
		{"Zero values", Config{}, ""},
		{"Port out of range", Config{Port: 70000}, "port"},
		{"Negative minimum", Config{MinTextLength: -1}, "min_text_length"},
		{"Negative skills", Config{MaxSkills: -5}, "max_skills"},
		{"Too much concurrency", Config{BatchConcurrency: 500}, "batch_concurrency"},
		{"Blank acronym", Config{Acronyms: []string{"USA", " "}}, "acronyms"},
		{"Blank noise phrase", Config{NoisePhrases: []string{""}}, "noise_phrases"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	partial := Config{
		Port:         9090,
		NoisePhrases: []string{},
		Verbose:      true,
	}

	merged := partial.MergeWithDefaults(Defaults())

	// Custom values should be preserved
	assert.Equal(t, 9090, merged.Port)
	assert.NotNil(t, merged.NoisePhrases)
	assert.Empty(t, merged.NoisePhrases)
	assert.True(t, merged.Verbose)

	// Default values should fill in empty fields
	assert.Equal(t, 100, merged.MinTextLength)
	assert.Equal(t, 15, merged.MaxSkills)
	assert.Equal(t, DefaultBatchConcurrency, merged.BatchConcurrency)
	assert.Nil(t, merged.Acronyms)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Port: 1234}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, 1234, merged.Port)
	assert.Zero(t, merged.MaxSkills)
}

func TestNewParser(t *testing.T) {
	text := "SKILLS\nGo, Rust, Python, Java\nEXPERIENCE\nWeb Designer, Pixel Co\n- Worked as the web designer for the agency"

	t.Run("Defaults", func(t *testing.T) {
		cfg := Config{}
		result := cfg.NewParser().Parse(text)
		assert.Len(t, result.Skills, 4)
		assert.Equal(t, []string{""}, result.Experiences[0].Description)
	})

	t.Run("Configured tables", func(t *testing.T) {
		cfg := Config{MaxSkills: 2, NoisePhrases: []string{}}
		result := cfg.NewParser().Parse(text)
		assert.Len(t, result.Skills, 2)
		assert.Equal(t, []string{"Worked as the web designer for the agency"}, result.Experiences[0].Description)
	})

	assert.Empty(t, (&Config{}).ParserOptions())
	assert.Len(t, (&Config{Acronyms: []string{"USA"}, MaxSkills: 3}).ParserOptions(), 2)
}
