// Package main provides the entry point for the resume checker CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_checker",
	Short: "Resume analysis and ATS scoring",
	Long:  "Resume Checker extracts structured data from resume text, predicts suitable roles, scores ATS compatibility, and compares resumes against job descriptions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
