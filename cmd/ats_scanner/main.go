// Package main provides the entry point for the ATS compatibility scanner.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_scanner",
	Short: "ATS Compatibility Scanner",
	Long:  "ATS Scanner scores plain-text resumes against a role-specific keyword corpus, detects resume sections, and emits actionable improvement suggestions via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
