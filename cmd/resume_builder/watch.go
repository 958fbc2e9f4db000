package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/jonathan/resume-builder/internal/parsing"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-parse a resume every time it changes",
	Long: `Parse --in once, then keep watching it and rewrite --out whenever the file is
written or re-created. Stops on SIGINT or SIGTERM.`,
	RunE: runWatch,
}

var (
	watchInputFile  string
	watchOutputFile string
	watchConfigPath string
)

func init() {
	watchCmd.Flags().StringVarP(&watchInputFile, "in", "i", "", "Path to resume file")
	watchCmd.Flags().StringVarP(&watchOutputFile, "out", "o", "", "Path to output JSON file")
	watchCmd.Flags().StringVar(&watchConfigPath, "config", "", "Path to JSON or TOML config file")

	_ = watchCmd.MarkFlagRequired("in")
	_ = watchCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(watchConfigPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := watchOptions{
		input:    watchInputFile,
		output:   watchOutputFile,
		minLen:   cfg.MinTextLength,
		validate: cfg.SchemaValidation,
	}
	return watchResume(ctx, cfg.NewParser(), opts, nil)
}

// watchOptions controls one watch session
type watchOptions struct {
	input    string
	output   string
	minLen   int
	validate bool
}

// shouldReparse reports whether event changed the watched file. Write and
// Create count; editors that save by renaming a temp file over the original
// produce a Create for the target.
func shouldReparse(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != filepath.Clean(target) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// reparse parses the input and writes the output, logging instead of failing
// so a half-saved file does not end the session.
func reparse(parser *parsing.Parser, opts watchOptions) bool {
	result, _, err := parseInput(parser, opts.input, opts.minLen)
	if err != nil {
		log.Printf("[watch] parse failed: %v", err)
		return false
	}
	if err := writeResult(result, opts.output, opts.validate); err != nil {
		log.Printf("[watch] write failed: %v", err)
		return false
	}
	log.Printf("[watch] wrote %s", opts.output)
	return true
}

// watchResume parses the input once and again after every change until ctx
// is done. The parent directory is watched since the file itself may be
// replaced. onParsed, when set, is called after each successful write.
func watchResume(ctx context.Context, parser *parsing.Parser, opts watchOptions, onParsed func()) error {
	if _, err := os.Stat(opts.input); err != nil {
		return fmt.Errorf("failed to stat input file: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(opts.input)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	if reparse(parser, opts) && onParsed != nil {
		onParsed()
	}
	log.Printf("[watch] watching %s", opts.input)

	for {
		select {
		case <-ctx.Done():
			log.Printf("[watch] stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !shouldReparse(event, opts.input) {
				continue
			}
			if reparse(parser, opts) && onParsed != nil {
				onParsed()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("[watch] watcher error: %v", err)
		}
	}
}
