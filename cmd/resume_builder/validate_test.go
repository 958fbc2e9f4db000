package main

import (
	"encoding/json"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/parsing"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeResultFile(t *testing.T, dir string) string {
	t.Helper()
	data, err := json.Marshal(parsing.Parse(sampleResume))
	require.NoError(t, err)
	return writeTempFile(t, dir, "result.json", string(data))
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	valid := writeResultFile(t, dir)
	invalid := writeTempFile(t, dir, "invalid.json", `{"personalInfo": {}, "experiences": []}`)

	tests := []struct {
		name       string
		jsonPath   string
		schemaPath string
		errPart    string
		validation bool
	}{
		{name: "embedded schema", jsonPath: valid},
		{name: "schema file", jsonPath: valid, schemaPath: filepath.Join("schemas", "parse_result.schema.json")},
		{name: "invalid document", jsonPath: invalid, validation: true},
		{name: "invalid document against file", jsonPath: invalid, schemaPath: filepath.Join("schemas", "parse_result.schema.json"), validation: true},
		{name: "missing json", jsonPath: filepath.Join(dir, "missing.json"), errPart: "not found"},
		{name: "missing schema", jsonPath: valid, schemaPath: "nonexistent_schema.json", errPart: "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFile(tt.jsonPath, tt.schemaPath, strings.NewReader(""))
			switch {
			case tt.validation:
				var validationErr *schemas.ValidationError
				assert.ErrorAs(t, err, &validationErr)
			case tt.errPart != "":
				assert.ErrorContains(t, err, tt.errPart)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFile_Stdin(t *testing.T) {
	data, err := json.Marshal(parsing.Parse(sampleResume))
	require.NoError(t, err)
	schemaPath := filepath.Join("schemas", "parse_result.schema.json")

	tests := []struct {
		name       string
		document   string
		schemaPath string
		validation bool
	}{
		{name: "embedded schema", document: string(data)},
		{name: "schema file", document: string(data), schemaPath: schemaPath},
		{name: "invalid against embedded schema", document: `{"skills": []}`, validation: true},
		{name: "invalid against schema file", document: `{"skills": []}`, schemaPath: schemaPath, validation: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFile(stdinPath, tt.schemaPath, strings.NewReader(tt.document))
			if tt.validation {
				var validationErr *schemas.ValidationError
				assert.ErrorAs(t, err, &validationErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateCommand_Stdin(t *testing.T) {
	binaryPath := getBinaryPath(t)
	data, err := json.Marshal(parsing.Parse(sampleResume))
	require.NoError(t, err)

	cmd := exec.Command(binaryPath, "validate", "--in", "-")
	cmd.Stdin = strings.NewReader(string(data))
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err, "command should succeed")
	assert.Contains(t, string(output), "Validation passed: stdin")
}

func TestValidateCommand_Success(t *testing.T) {
	binaryPath := getBinaryPath(t)
	jsonPath := writeResultFile(t, t.TempDir())

	cmd := exec.Command(binaryPath, "validate", "--in", jsonPath)
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err, "command should succeed")
	assert.Contains(t, string(output), "Validation passed")
}

func TestValidateCommand_Failure(t *testing.T) {
	binaryPath := getBinaryPath(t)
	jsonPath := writeTempFile(t, t.TempDir(), "invalid.json", `{"skills": []}`)

	cmd := exec.Command(binaryPath, "validate", "--in", jsonPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err, "command should fail")
	assert.Contains(t, string(output), "Validation failed")
	if exitError, ok := err.(*exec.ExitError); ok {
		assert.Equal(t, 1, exitError.ExitCode())
	}
}

func TestValidateCommand_MissingInFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "validate")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}
