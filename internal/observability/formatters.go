// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skillgap/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
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

// PrintInputSummary outputs the sizes of the two input lists before analysis.
func (p *Printer) PrintInputSummary(keywordCount, skillCount int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Extracted keywords:  %d\n", keywordCount))
	sb.WriteString(fmt.Sprintf("Reported skills:     %d", skillCount))
	p.printBox("INPUTS", sb.String())
}

// PrintMatchResult outputs a human-readable summary of an analysis result.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match: %d%%  (%d of %d displayed)\n",
		result.MatchPercentage, result.PresentCount, result.TotalDisplayed))
	sb.WriteString("\n")

	if len(result.PresentSkills) > 0 {
		sb.WriteString("Present:\n")
		appendItems(&sb, result.PresentSkills)
		sb.WriteString("\n")
	}

	if len(result.MissingSkills) > 0 {
		sb.WriteString("Missing:\n")
		appendItems(&sb, result.MissingSkills)
	}

	p.printBox("SKILL GAP", strings.TrimRight(sb.String(), "\n"))
}

func appendItems(sb *strings.Builder, items []string) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}
