// Package main provides the resume_builder command line tool for turning
// plain-text resumes into structured JSON.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Plain-text resume parser",
	Long:  "resume_builder extracts contact details, work history, education and skills from plain-text resumes into structured JSON, from the command line or over HTTP.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
