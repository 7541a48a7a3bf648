package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scanner/internal/observability"
	"github.com/jonathan/ats-scanner/internal/types"
)

var (
	scanJobTitle   string
	scanCorpusPath string
	scanVerbose    bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <resume.txt>",
	Short: "Score a plain-text resume",
	Long:  `Run a one-shot compatibility scan of an already-extracted plain-text resume against the keyword corpus and print the result.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanJobTitle, "job-title", "", "Target job title used to pick a role-specific keyword list")
	scanCmd.Flags().StringVar(&scanCorpusPath, "corpus", "", "Path to an alternative keyword corpus JSON asset")
	scanCmd.Flags().BoolVar(&scanVerbose, "verbose", false, "Print a formatted report instead of raw JSON")
	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", args[0], err)
	}

	engine, err := buildEngine(scanCorpusPath)
	if err != nil {
		return err
	}

	result, err := engine.Scan(&types.ScanRequest{
		ResumeText:     string(data),
		TargetJobTitle: scanJobTitle,
	})
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if scanVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintScanResult(result)
		printer.PrintSuggestions(result)
		return nil
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
