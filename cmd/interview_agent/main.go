// Package main provides the entry point for the resume interviewer.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "interview_agent",
	Short:   "Interview-style resume builder",
	Long:    "Interview Agent builds a structured resume through a guided or AI-assisted question-and-answer conversation, via CLI or REST API.",
	Version: version,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
