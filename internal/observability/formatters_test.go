package observability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-interviewer/internal/sections"
	"github.com/jonathan/resume-interviewer/internal/types"
)

func TestPrintTurn(t *testing.T) {
	var buf strings.Builder
	printer := NewPrinter(&buf)

	state := types.NewSectionState()
	state.EnterSection(sections.Work)
	state.FollowUpCount = 2

	printer.PrintTurn(&types.TurnResult{
		ExtractedFields: []types.FieldProposal{
			{Path: "workExperience[0].companyName", Value: "Acme Corp", Confidence: 0.85},
		},
		SuggestedSection: sections.Education,
		Usage:            types.Usage{TotalTokens: 123},
	}, state)

	out := buf.String()
	assert.Contains(t, out, "TURN RESULT")
	assert.Contains(t, out, "work (follow-up 2)")
	assert.Contains(t, out, "education")
	assert.Contains(t, out, "123")
	assert.Contains(t, out, "workExperience[0].companyName")
	assert.Contains(t, out, "0.85")
}

func TestPrintTurn_NilResult(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintTurn(nil, nil)
	assert.Empty(t, buf.String())
}

func TestPrintTurn_NoFields(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintTurn(&types.TurnResult{}, nil)
	assert.Contains(t, buf.String(), "No fields extracted this turn")
}

func TestPrintRecordSummary(t *testing.T) {
	var buf strings.Builder
	printer := NewPrinter(&buf)

	printer.PrintRecordSummary(types.Record{
		"personalInfo": map[string]any{"fullName": "Ada Lovelace", "email": "ada@example.com"},
		"workExperience": []any{
			map[string]any{"companyName": "Acme"},
			map[string]any{"companyName": "Initech"},
		},
		"skills": map[string]any{"technicalSkills": []any{"Go", "SQL"}},
	})

	out := buf.String()
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "ada@example.com")
	assert.Contains(t, out, "2 entries")
	assert.Contains(t, out, "2 items")
}

func TestPrintRecordSummary_Empty(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintRecordSummary(types.NewRecord())
	assert.Contains(t, buf.String(), "Nothing collected yet")
}

func TestPrintReviewIssues(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintReviewIssues([]types.ReviewIssue{
		{Field: "personalInfo.email", Message: "The email address doesn't look valid."},
	})

	out := buf.String()
	assert.Contains(t, out, "REVIEW ISSUES")
	assert.Contains(t, out, "personalInfo.email")
}

func TestPrintReviewIssues_Clean(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintReviewIssues(nil)
	assert.Contains(t, buf.String(), "NO ISSUES FOUND")
}

func TestPrintPrefill(t *testing.T) {
	var buf strings.Builder
	proposals := []types.FieldProposal{
		{Path: "personalInfo.email", Value: "ada@example.com"},
		{Path: "personalInfo.phone", Value: "555-1234"},
		{Path: "personalInfo.fullName", Value: "Ada Lovelace"},
		{Path: "skills.technicalSkills", Value: []string{"Go"}},
		{Path: "hasTechnicalSkills", Value: true},
		{Path: "hasEmail", Value: true},
	}
	NewPrinter(&buf).PrintPrefill(proposals)

	out := buf.String()
	assert.Contains(t, out, "Pre-filled 6 fields")
	assert.Contains(t, out, "personalInfo.email")
	assert.Contains(t, out, "... and 1 more")
}

func TestPrintPrefill_Empty(t *testing.T) {
	var buf strings.Builder
	NewPrinter(&buf).PrintPrefill(nil)
	assert.Empty(t, buf.String())
}
