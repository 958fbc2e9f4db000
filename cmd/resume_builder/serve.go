package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jonathan/resume-builder/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that parses resumes sent to POST /parse (JSON text) and
POST /parse/file (multipart upload).

The port comes from --port, then the PORT environment variable, then the config file.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON or TOML config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(serveConfigPath)
	if err != nil {
		return err
	}

	switch {
	case cmd.Flags().Changed("port"):
		cfg.Port = servePort
	case os.Getenv("PORT") != "":
		port, err := strconv.Atoi(os.Getenv("PORT"))
		if err != nil {
			return fmt.Errorf("invalid PORT environment variable: %w", err)
		}
		cfg.Port = port
	}

	srv, err := server.New(server.Config{
		Port:             cfg.Port,
		Parser:           cfg.NewParser(),
		MinTextLength:    cfg.MinTextLength,
		SchemaValidation: cfg.SchemaValidation,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
