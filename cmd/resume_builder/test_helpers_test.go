package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
Senior Software Engineer
jane.doe@example.com | (555) 123-4567

SUMMARY
Backend engineer with eight years of experience building payment systems.

EXPERIENCE
Senior Software Engineer, Stripe
2019 - Present
• Built the ledger reconciliation service in Go
• Reduced payout latency by forty percent

SKILLS
Go, Python, PostgreSQL, Kubernetes
`

// getBinaryPath returns the path to the resume_builder binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "resume_builder"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

// writeTempFile writes content to name inside dir and returns the path
func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
