// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/kmatsu/story-checker/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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

// PrintCategoryScores outputs each category's score and judgment in priority
// order.
func (p *Printer) PrintCategoryScores(report *types.EvaluationReport) {
	if report == nil || len(report.CategoryScores) == 0 {
		return
	}

	var sb strings.Builder
	for _, result := range report.CategoryScores {
		sb.WriteString(fmt.Sprintf("%-28s %5.2f  [%s]\n", result.CategoryName, result.Score, result.Judgment))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%-28s %5.2f  [%s]", "TOTAL", report.TotalScore, report.TotalJudgment))

	p.printBox("CATEGORY SCORES", sb.String())
}

// PrintEvaluations outputs per-criterion scores with their first feedback
// lines.
func (p *Printer) PrintEvaluations(report *types.EvaluationReport) {
	if report == nil || len(report.Evaluations) == 0 {
		return
	}

	var sb strings.Builder
	for i, eval := range report.Evaluations {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s / %s: %.2f\n", eval.CategoryID, eval.CriteriaID, eval.Score))
		count := min(len(eval.Feedback), maxItemsToShow)
		for j := 0; j < count; j++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", eval.Feedback[j]))
		}
		if len(eval.Feedback) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(eval.Feedback)-maxItemsToShow))
		}
	}

	p.printBox("EVALUATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs the full evaluation report.
func (p *Printer) PrintReport(report *types.EvaluationReport) {
	if report == nil {
		return
	}
	if report.Error != "" {
		p.printBox("EVALUATION FAILED", report.Error)
		return
	}
	p.PrintEvaluations(report)
	p.PrintCategoryScores(report)
}
