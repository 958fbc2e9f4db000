package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a ParseResult JSON file",
	Long: `Validate a ParseResult JSON file against the built-in schema, or against
the schema given with --schema. Use --in - to read the document from stdin.`,
	RunE: runValidate,
}

var (
	validateInputFile  string
	validateSchemaPath string
)

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "in", "i", "", "Path to ParseResult JSON file, or - for stdin")
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "Path to a JSON schema file (defaults to the built-in ParseResult schema)")

	_ = validateCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	if err := validateFile(validateInputFile, validateSchemaPath, os.Stdin); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Validation failed:\n%v\n", err)
		}
		return err
	}

	name := validateInputFile
	if name == stdinPath {
		name = "stdin"
	}
	_, _ = fmt.Fprintf(os.Stdout, "Validation passed: %s\n", name)
	return nil
}

const stdinPath = "-"

// validateFile checks jsonPath against schemaPath, or against the embedded
// ParseResult schema when schemaPath is empty. A jsonPath of "-" reads the
// document from stdin.
func validateFile(jsonPath, schemaPath string, stdin io.Reader) error {
	var resolved string
	if schemaPath != "" {
		resolved = schemas.ResolveSchemaPath(schemaPath)
		if resolved == "" {
			return fmt.Errorf("schema file not found: %s", schemaPath)
		}
		if jsonPath != stdinPath {
			return schemas.ValidateJSON(resolved, jsonPath)
		}
	}

	data, err := readDocument(jsonPath, stdin)
	if err != nil {
		return err
	}
	if resolved == "" {
		return schemas.ValidateResultJSON(data)
	}

	schemaContent, err := os.ReadFile(resolved)
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}
	return schemas.ValidateJSONString(string(schemaContent), string(data))
}

// readDocument reads the JSON document from a file or from stdin
func readDocument(jsonPath string, stdin io.Reader) ([]byte, error) {
	if jsonPath == stdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read JSON from stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("JSON file not found: %s", jsonPath)
		}
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}
	return data, nil
}
