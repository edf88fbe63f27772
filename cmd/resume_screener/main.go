// Package main provides the entry point for the resume screening CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_screener",
	Short: "Batch resume screening against a job description",
	Long:  "Resume Screener parses a job description into a requirement set, screens a batch of candidate resumes against it with an LLM scoring oracle, and maintains a deterministic ranking of the results.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
