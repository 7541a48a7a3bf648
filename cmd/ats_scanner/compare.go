package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scanner/internal/history"
	"github.com/jonathan/ats-scanner/internal/observability"
	"github.com/jonathan/ats-scanner/internal/types"
)

var (
	compareJobTitle   string
	compareCorpusPath string
)

var compareCmd = &cobra.Command{
	Use:   "compare <before.txt> <after.txt>",
	Short: "Compare two resume revisions",
	Long:  `Scan two revisions of a plain-text resume against the same keyword corpus and print the score delta and newly gained keywords.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareJobTitle, "job-title", "", "Target job title used to pick a role-specific keyword list")
	compareCmd.Flags().StringVar(&compareCorpusPath, "corpus", "", "Path to an alternative keyword corpus JSON asset")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, args []string) error {
	engine, err := buildEngine(compareCorpusPath)
	if err != nil {
		return err
	}

	tracker := history.NewTracker(2)
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read resume file %s: %w", path, err)
		}

		result, err := engine.Scan(&types.ScanRequest{
			ResumeText:     string(data),
			TargetJobTitle: compareJobTitle,
		})
		if err != nil {
			return fmt.Errorf("scan of %s failed: %w", path, err)
		}
		tracker.Record(string(data), result)
	}

	comparison, ok := tracker.Compare()
	if !ok {
		return fmt.Errorf("comparison requires two scans")
	}

	printer := observability.NewPrinter(os.Stdout)
	previous, current, _ := tracker.LastTwo()
	fmt.Printf("%s: %d / 100\n%s: %d / 100\n\n", args[0], previous.Result.Score, args[1], current.Result.Score)
	printer.PrintComparison(comparison)
	return nil
}
