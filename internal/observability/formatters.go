// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-interviewer/internal/sections"
	"github.com/jonathan/resume-interviewer/internal/types"
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

// PrintTurn outputs what one turn extracted and where the interview moved.
func (p *Printer) PrintTurn(result *types.TurnResult, state *types.SectionState) {
	if result == nil {
		return
	}

	var sb strings.Builder
	if state != nil {
		sb.WriteString(fmt.Sprintf("Section:   %s (follow-up %d)\n", state.Section, state.FollowUpCount))
	}
	if result.SuggestedSection != "" {
		sb.WriteString(fmt.Sprintf("Suggested: %s\n", result.SuggestedSection))
	}
	if result.Usage.TotalTokens > 0 {
		sb.WriteString(fmt.Sprintf("Tokens:    %d\n", result.Usage.TotalTokens))
	}

	if len(result.ExtractedFields) > 0 {
		sb.WriteString("\nExtracted fields:\n")
		count := min(len(result.ExtractedFields), maxItemsToShow)
		for i := 0; i < count; i++ {
			f := result.ExtractedFields[i]
			value := fmt.Sprintf("%v", f.Value)
			if len(value) > 25 {
				value = value[:22] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s = %s (%.2f)\n", f.Path, value, f.Confidence))
		}
		if len(result.ExtractedFields) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.ExtractedFields)-maxItemsToShow))
		}
	} else {
		sb.WriteString("\nNo fields extracted this turn\n")
	}

	p.printBox("TURN RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecordSummary outputs a compact view of what the record holds so far.
func (p *Printer) PrintRecordSummary(record types.Record) {
	if record == nil {
		return
	}

	var sb strings.Builder

	info, _ := record["personalInfo"].(map[string]any)
	name, _ := info["fullName"].(string)
	email, _ := info["email"].(string)
	if name != "" {
		sb.WriteString(fmt.Sprintf("Name:   %s\n", name))
	}
	if email != "" {
		sb.WriteString(fmt.Sprintf("Email:  %s\n", email))
	}

	for _, section := range []sections.Section{sections.Work, sections.Education, sections.Volunteering, sections.References} {
		entries := record.Array(sections.ArrayPath(section))
		if len(entries) > 0 {
			sb.WriteString(fmt.Sprintf("%-12s %d entries\n", string(section)+":", len(entries)))
		}
	}

	skills, _ := record["skills"].(map[string]any)
	for _, key := range []string{"technicalSkills", "certifications", "languages", "softSkills"} {
		if list, ok := skills[key].([]any); ok && len(list) > 0 {
			sb.WriteString(fmt.Sprintf("%-12s %d items\n", key+":", len(list)))
		}
	}

	if sb.Len() == 0 {
		sb.WriteString("Nothing collected yet\n")
	}

	p.printBox("RESUME SO FAR", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReviewIssues outputs review findings, or a clean bill of health.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintReviewIssues(issues []types.ReviewIssue) {
	if len(issues) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO ISSUES FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d issues:\n\n", len(issues)))

	for i, issue := range issues {
		message := issue.Message
		if len(message) > 45 {
			message = message[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", issue.Field))
		sb.WriteString(fmt.Sprintf("  %s\n", message))
		if i < len(issues)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("REVIEW ISSUES", sb.String())
}

// PrintPrefill outputs the fields proposed from an ingested resume.
func (p *Printer) PrintPrefill(proposals []types.FieldProposal) {
	if len(proposals) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Pre-filled %d fields from your resume:\n\n", len(proposals)))

	count := min(len(proposals), maxItemsToShow)
	for i := 0; i < count; i++ {
		f := proposals[i]
		value := fmt.Sprintf("%v", f.Value)
		if len(value) > 30 {
			value = value[:27] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s = %s\n", f.Path, value))
	}
	if len(proposals) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more fields", len(proposals)-maxItemsToShow))
	}

	p.printBox("RESUME PRE-FILL", strings.TrimSuffix(sb.String(), "\n"))
}
