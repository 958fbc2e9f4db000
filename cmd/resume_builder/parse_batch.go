package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/parsing"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var parseBatchCmd = &cobra.Command{
	Use:   "parse-batch",
	Short: "Parse every resume in a directory",
	Long: `Parse every supported resume file in --dir concurrently and write one
<name>.json ParseResult per input to --out-dir.

A file that cannot be parsed is reported and skipped; a failure to write output stops the batch.`,
	RunE: runParseBatch,
}

var (
	batchInputDir    string
	batchOutputDir   string
	batchConfigPath  string
	batchConcurrency int
	batchValidate    bool
)

func init() {
	parseBatchCmd.Flags().StringVar(&batchInputDir, "dir", "", "Directory containing resume files")
	parseBatchCmd.Flags().StringVar(&batchOutputDir, "out-dir", "", "Directory for ParseResult JSON files")
	parseBatchCmd.Flags().StringVar(&batchConfigPath, "config", "", "Path to JSON or TOML config file")
	parseBatchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Number of files parsed at once (defaults to batch_concurrency from config)")
	parseBatchCmd.Flags().BoolVar(&batchValidate, "validate", false, "Validate every result against the ParseResult schema")

	_ = parseBatchCmd.MarkFlagRequired("dir")
	_ = parseBatchCmd.MarkFlagRequired("out-dir")

	rootCmd.AddCommand(parseBatchCmd)
}

func runParseBatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(batchConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("concurrency") {
		if batchConcurrency < 1 {
			return fmt.Errorf("--concurrency must be at least 1")
		}
		cfg.BatchConcurrency = batchConcurrency
	}
	if cmd.Flags().Changed("validate") {
		cfg.SchemaValidation = batchValidate
	}

	opts := batchOptions{
		inputDir:    batchInputDir,
		outputDir:   batchOutputDir,
		concurrency: cfg.BatchConcurrency,
		minLen:      cfg.MinTextLength,
		validate:    cfg.SchemaValidation,
	}

	parsed, failures, err := parseBatch(cmd.Context(), cfg.NewParser(), opts)
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintBatchSummary(parsed, failures)
	return nil
}

// batchOptions controls one parse-batch run
type batchOptions struct {
	inputDir    string
	outputDir   string
	concurrency int
	minLen      int
	validate    bool
}

// batchInputs lists the resume files directly inside dir, sorted by name
func batchInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		// PDFs are listed so the summary reports them as needing manual input.
		if !ingestion.Supported(e.Name()) && ingestion.DetectFormat(e.Name()) != ingestion.FormatPDF {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// outputPath maps an input file to its JSON file in outDir
func outputPath(outDir, input string) string {
	base := filepath.Base(input)
	return filepath.Join(outDir, strings.TrimSuffix(base, filepath.Ext(base))+".json")
}

// parseBatch parses every supported file in opts.inputDir with at most
// opts.concurrency files in flight. Per-file parse failures are collected and
// returned; write failures cancel the remaining work and are returned as err.
func parseBatch(ctx context.Context, parser *parsing.Parser, opts batchOptions) (int, map[string]error, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	inputs, err := batchInputs(opts.inputDir)
	if err != nil {
		return 0, nil, err
	}
	if err := os.MkdirAll(opts.outputDir, 0755); err != nil {
		return 0, nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	concurrency := opts.concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	var (
		mu       sync.Mutex
		parsed   int
		failures = make(map[string]error)
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, input := range inputs {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			name := filepath.Base(input)
			result, _, err := parseInput(parser, input, opts.minLen)
			if err == nil && opts.validate {
				err = schemas.ValidateResult(result)
			}
			if err != nil {
				log.Printf("[batch] skipping %s: %v", name, err)
				mu.Lock()
				failures[name] = err
				mu.Unlock()
				return nil
			}

			if err := writeResult(result, outputPath(opts.outputDir, input), false); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			mu.Lock()
			parsed++
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return parsed, failures, err
	}
	return parsed, failures, nil
}
