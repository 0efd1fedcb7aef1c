package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonkmatsumo/resume-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of entries to display per section
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBasics outputs a human-readable summary of the extracted identity
// fields.
func (p *Printer) PrintBasics(basics *types.ParsedBasics) {
	if basics == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", orDash(basics.Name)))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", orDash(basics.Title)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orDash(basics.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orDash(basics.Phone)))
	parts := make([]string, 0, 3)
	for _, part := range []string{basics.Location.City, basics.Location.Region, basics.Location.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	sb.WriteString(fmt.Sprintf("Location: %s", orDash(strings.Join(parts, ", "))))

	p.printBox("Extracted Basics", sb.String())
}

// PrintSections outputs counts and leading entries for each parsed section.
func (p *Printer) PrintSections(data *types.ParsedResumeData) {
	if data == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Work:         %d entries\n", len(data.Work)))
	for i, w := range data.Work {
		if i >= maxItemsToShow {
			sb.WriteString("  ...\n")
			break
		}
		sb.WriteString(fmt.Sprintf("  - %s / %s\n", orDash(w.Position), orDash(w.Company)))
	}
	sb.WriteString(fmt.Sprintf("Education:    %d entries\n", len(data.Education)))
	sb.WriteString(fmt.Sprintf("Skills:       %d entries\n", len(data.Skills)))
	sb.WriteString(fmt.Sprintf("Projects:     %d entries\n", len(data.Projects)))
	sb.WriteString(fmt.Sprintf("Certificates: %d entries\n", len(data.Certificates)))
	sb.WriteString(fmt.Sprintf("Languages:    %d entries", len(data.Languages)))

	p.printBox("Parsed Sections", sb.String())
}

// PrintConfidence outputs the confidence report with a bar per section.
func (p *Printer) PrintConfidence(report *types.ConfidenceReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall: %3d  %s\n", report.Overall, bar(report.Overall)))
	sb.WriteString(fmt.Sprintf("%-13s %3d  %s", types.BasicsKey, report.Sections[types.BasicsKey], bar(report.Sections[types.BasicsKey])))
	for _, kind := range types.AllSectionKinds {
		score := report.Sections[string(kind)]
		sb.WriteString(fmt.Sprintf("\n%-13s %3d  %s", kind, score, bar(score)))
	}

	p.printBox("Confidence Report", sb.String())
}

func bar(score int) string {
	filled := score / 10
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
