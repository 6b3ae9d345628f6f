// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/survey-charts/internal/types"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// boxLine truncates and pads a line to the box's inner width. Bin labels
// carry multibyte runes (≤25, ≥65), so truncation and padding count runes,
// not bytes.
func boxLine(line string, width int) string {
	runes := []rune(line)
	if len(runes) > width {
		line = string(runes[:width-3]) + "..."
	}
	pad := width - utf8.RuneCountInString(line)
	return line + strings.Repeat(" ", pad)
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", boxLine(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", boxLine(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDistribution outputs a human-readable table of one survey's bins.
func (p *Printer) PrintDistribution(d *types.SurveyDistribution) {
	if d == nil {
		return
	}

	var sb strings.Builder
	for i, bin := range d.Bins {
		if len(d.Counts) == len(d.Bins) {
			sb.WriteString(fmt.Sprintf("%-10s %6.2f%%  (%d respondents)\n", bin, d.Values[i], d.Counts[i]))
		} else {
			sb.WriteString(fmt.Sprintf("%-10s %6.2f%%\n", bin, d.Values[i]))
		}
	}
	sb.WriteString(fmt.Sprintf("%-10s %6.2f%%", "total", d.Total()))

	p.printBox(d.Label, sb.String())
}

// PrintComparison outputs the coarse comparison, one row per survey.
func (p *Printer) PrintComparison(cmp *types.CoarseComparison) {
	if cmp == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("bins: %s\n", strings.Join(cmp.Target.Bins, "  ")))
	for _, s := range cmp.Series {
		parts := make([]string, 0, len(s.Values))
		for _, v := range s.Values {
			parts = append(parts, fmt.Sprintf("%.1f", v))
		}
		sb.WriteString(fmt.Sprintf("%-20s %s\n", s.Survey, strings.Join(parts, "  ")))
	}

	p.printBox("Coarse comparison ("+cmp.Target.Name+")", strings.TrimRight(sb.String(), "\n"))
}
