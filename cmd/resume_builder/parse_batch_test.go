package main

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/parsing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBatchDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeTempFile(t, dir, "jane.txt", sampleResume)
	writeTempFile(t, dir, "john.md", "# John Smith\n\n"+sampleResume)
	writeTempFile(t, dir, "short.txt", "Too short")
	writeTempFile(t, dir, "scan.pdf", "%PDF-1.7")
	writeTempFile(t, dir, "letter.docx", "PK")
	writeTempFile(t, dir, ".hidden.txt", sampleResume)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.txt"), 0755))
	return dir
}

func TestBatchInputs(t *testing.T) {
	dir := setupBatchDir(t)

	inputs, err := batchInputs(dir)
	require.NoError(t, err)

	var names []string
	for _, in := range inputs {
		names = append(names, filepath.Base(in))
	}
	assert.Equal(t, []string{"jane.txt", "john.md", "scan.pdf", "short.txt"}, names)

	_, err = batchInputs(filepath.Join(dir, "missing"))
	assert.ErrorContains(t, err, "failed to read input directory")
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "jane.json"), outputPath("out", filepath.Join("in", "jane.txt")))
	assert.Equal(t, filepath.Join("out", "cv.v2.json"), outputPath("out", "cv.v2.md"))
}

func TestParseBatch(t *testing.T) {
	for _, concurrency := range []int{1, 4} {
		inDir := setupBatchDir(t)
		outDir := filepath.Join(t.TempDir(), "results")

		parsed, failures, err := parseBatch(context.Background(), parsing.New(), batchOptions{
			inputDir:    inDir,
			outputDir:   outDir,
			concurrency: concurrency,
			validate:    true,
		})
		require.NoError(t, err)

		assert.Equal(t, 2, parsed)
		require.Len(t, failures, 2)

		var sentinel *ingestion.SentinelError
		assert.ErrorAs(t, failures["scan.pdf"], &sentinel)
		var tooShort *ingestion.TextTooShortError
		assert.ErrorAs(t, failures["short.txt"], &tooShort)

		assert.FileExists(t, filepath.Join(outDir, "jane.json"))
		assert.FileExists(t, filepath.Join(outDir, "john.json"))
		assert.NoFileExists(t, filepath.Join(outDir, "short.json"))
		assert.NoFileExists(t, filepath.Join(outDir, "scan.json"))
	}
}

func TestParseBatch_WriteFailureAborts(t *testing.T) {
	inDir := setupBatchDir(t)
	outDir := t.TempDir()

	// A directory where the output file should go makes the write fail
	require.NoError(t, os.Mkdir(filepath.Join(outDir, "jane.json"), 0755))

	_, _, err := parseBatch(context.Background(), parsing.New(), batchOptions{
		inputDir:    inDir,
		outputDir:   outDir,
		concurrency: 1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jane.txt")
	assert.Contains(t, err.Error(), "failed to write output file")
}

func TestParseBatch_CanceledContext(t *testing.T) {
	inDir := setupBatchDir(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	parsed, _, err := parseBatch(ctx, parsing.New(), batchOptions{
		inputDir:    inDir,
		outputDir:   t.TempDir(),
		concurrency: 2,
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, parsed)
}

func TestParseBatchCommand(t *testing.T) {
	binaryPath := getBinaryPath(t)

	inDir := setupBatchDir(t)
	outDir := t.TempDir()

	cmd := exec.Command(binaryPath, "parse-batch", "--dir", inDir, "--out-dir", outDir, "--concurrency", "2")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "BATCH COMPLETE WITH ERRORS")
	assert.Contains(t, string(output), "scan.pdf")
	assert.FileExists(t, filepath.Join(outDir, "jane.json"))
}

func TestParseBatchCommand_MissingFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "parse-batch", "--dir", t.TempDir())
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}
