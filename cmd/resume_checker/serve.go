package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/omkar/resume-checker/internal/logger"
	"github.com/omkar/resume-checker/internal/server"
)

var (
	serveAddr       string
	serveUseBrowser bool
	serveJSONLogs   bool
	serveDebug      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume analysis with per-user history.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Address to listen on")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Use headless browser for SPA job pages (requires Chrome)")
	serveCmd.Flags().BoolVar(&serveJSONLogs, "json-logs", true, "Emit logs as JSON instead of console lines")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	log, err := logger.New(serveJSONLogs, serveDebug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg := server.Config{
		Addr:        serveAddr,
		DatabaseURL: databaseURL,
		// The classifier is optional for the server; analysis falls back to
		// keyword-based prediction without it.
		APIKey:     os.Getenv("GEMINI_API_KEY"),
		Model:      os.Getenv("GEMINI_MODEL"),
		UseBrowser: serveUseBrowser,
	}

	srv, err := server.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
