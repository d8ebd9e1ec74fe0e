package record

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-interviewer/internal/sections"
	"github.com/jonathan/resume-interviewer/internal/types"
)

func TestDetectContradiction_DenialAgainstRealData(t *testing.T) {
	rec := types.Record{
		"workExperience": []any{
			map[string]any{
				"id":          "abc",
				"companyName": "Google",
				"jobTitle":    "Software Engineer",
			},
		},
	}

	result := DetectContradiction("I don't have any work experience", rec)

	assert.True(t, result.IsContradiction)
	assert.Equal(t, sections.Work, result.Section)
	assert.Contains(t, result.ExistingDataSummary, "Google")
	assert.Contains(t, result.ExistingDataSummary, "Software Engineer")
}

func TestDetectContradiction_PlaceholderEntryIsNotData(t *testing.T) {
	// A freshly-initialized entry holds only an id; denying the section
	// then is consistent, not contradictory.
	rec := types.Record{
		"workExperience": []any{
			map[string]any{"id": "abc"},
		},
	}

	result := DetectContradiction("I never worked", rec)
	assert.False(t, result.IsContradiction)
}

func TestDetectContradiction_EmptyFieldsAreNotData(t *testing.T) {
	rec := types.Record{
		"education": []any{
			map[string]any{"id": "abc", "institution": "", "degree": "   "},
		},
	}

	result := DetectContradiction("no formal education", rec)
	assert.False(t, result.IsContradiction)
}

func TestDetectContradiction_NoDenialNoContradiction(t *testing.T) {
	rec := types.Record{
		"workExperience": []any{
			map[string]any{"companyName": "Google"},
		},
	}

	assert.False(t, DetectContradiction("I worked there for five years", rec).IsContradiction)
	assert.False(t, DetectContradiction("", rec).IsContradiction)
}

func TestDetectContradiction_PerSection(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		record  types.Record
		section sections.Section
	}{
		{
			name: "education denial",
			text: "I never went to college",
			record: types.Record{
				"education": []any{map[string]any{"institution": "MIT"}},
			},
			section: sections.Education,
		},
		{
			name: "volunteering denial",
			text: "I never volunteered",
			record: types.Record{
				"volunteering": []any{map[string]any{"organization": "Red Cross"}},
			},
			section: sections.Volunteering,
		},
		{
			name: "references denial",
			text: "I don't have any references",
			record: types.Record{
				"references": []any{map[string]any{"name": "Dr. Smith"}},
			},
			section: sections.References,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DetectContradiction(tt.text, tt.record)
			assert.True(t, result.IsContradiction)
			assert.Equal(t, tt.section, result.Section)
		})
	}
}

func TestDetectContradiction_DenialForDifferentSection(t *testing.T) {
	// Work data exists but the denial is about education; nothing to flag.
	rec := types.Record{
		"workExperience": []any{map[string]any{"companyName": "Google"}},
	}

	result := DetectContradiction("no formal education", rec)
	assert.False(t, result.IsContradiction)
}
