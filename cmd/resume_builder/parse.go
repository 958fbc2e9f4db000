package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse one resume file into ParseResult JSON",
	Long: `Parse a .txt, .md or .html resume into ParseResult JSON.

PDF and word-processor files are not read; paste their text into a .txt file instead.
Configuration can be loaded from a JSON or TOML file using --config. Command-line flags override config file values.`,
	RunE: runParse,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseConfigPath string
	parseVerbose    bool
	parseValidate   bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to resume file")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	parseCmd.Flags().StringVar(&parseConfigPath, "config", "", "Path to JSON or TOML config file")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a summary of the parsed resume to stderr")
	parseCmd.Flags().BoolVar(&parseValidate, "validate", false, "Validate the result against the ParseResult schema")

	_ = parseCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(parseConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = parseVerbose
	}
	if cmd.Flags().Changed("validate") {
		cfg.SchemaValidation = parseValidate
	}

	result, meta, err := parseInput(cfg.NewParser(), parseInputFile, cfg.MinTextLength)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintSource(meta)
		printer.PrintParseResult(result)
	}

	if err := writeResult(result, parseOutputFile, cfg.SchemaValidation); err != nil {
		return err
	}

	if parseOutputFile != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully parsed resume\n")
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", parseOutputFile)
	}
	return nil
}
