// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-scanner/internal/history"
	"github.com/jonathan/ats-scanner/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScanResult outputs a human-readable summary of a scan.
func (p *Printer) PrintScanResult(result *types.ATSResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:    %d / 100\n", result.Score))
	if result.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("Role:     %s\n", result.JobTitle))
	}
	sb.WriteString(fmt.Sprintf("Keywords: %d of %d matched\n", len(result.MatchedKeywords), result.TotalKeywords))
	sb.WriteString("\n")

	if len(result.PassedSections) > 0 {
		sb.WriteString("Sections Found:\n")
		for _, section := range result.PassedSections {
			sb.WriteString(fmt.Sprintf("  • %s\n", section))
		}
		sb.WriteString("\n")
	}

	if len(result.MatchedKeywords) > 0 {
		sb.WriteString("Matched Keywords:\n")
		p.appendList(&sb, result.MatchedKeywords)
		sb.WriteString("\n")
	}

	if len(result.MissingKeywords) > 0 {
		sb.WriteString("Missing Keywords:\n")
		p.appendList(&sb, result.MissingKeywords)
	}

	p.printBox("ATS Compatibility Report", strings.TrimRight(sb.String(), "\n"))
}

// PrintSuggestions outputs the improvement suggestions for a scan.
func (p *Printer) PrintSuggestions(result *types.ATSResult) {
	if result == nil || len(result.Suggestions) == 0 {
		return
	}

	var sb strings.Builder
	for i, suggestion := range result.Suggestions {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
	}

	p.printBox("Suggestions", strings.TrimRight(sb.String(), "\n"))
}

// PrintComparison outputs the delta between two consecutive scans.
func (p *Printer) PrintComparison(c history.Comparison) {
	var sb strings.Builder

	direction := "unchanged"
	if c.Improved {
		direction = "improved"
	} else if c.ScoreDelta < 0 {
		direction = "regressed"
	}
	sb.WriteString(fmt.Sprintf("Score:        %+d (%s)\n", c.ScoreDelta, direction))

	if len(c.NewKeywords) > 0 {
		sb.WriteString("New Keywords:\n")
		p.appendList(&sb, c.NewKeywords)
	}

	p.printBox("Scan Comparison", strings.TrimRight(sb.String(), "\n"))
}

// appendList writes up to maxItemsToShow bulleted items with an overflow line.
func (p *Printer) appendList(sb *strings.Builder, items []string) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}
