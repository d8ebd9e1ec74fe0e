package questions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-interviewer/internal/sections"
	"github.com/jonathan/resume-interviewer/internal/types"
)

func TestNext_StartsAtTheBeginning(t *testing.T) {
	q := Next(types.NewRecord(), "")
	require.NotNil(t, q)
	assert.Equal(t, "language", q.ID)
}

func TestNext_WalksWithinSection(t *testing.T) {
	record := types.NewRecord()

	q := Next(record, "personal-name")
	require.NotNil(t, q)
	assert.Equal(t, "personal-email", q.ID)

	q = Next(record, "personal-email")
	require.NotNil(t, q)
	assert.Equal(t, "personal-phone", q.ID)
}

func TestNext_NilAtSectionBoundary(t *testing.T) {
	// personal-location is the last personal question; work belongs to the
	// section walker, not the question cursor.
	q := Next(types.NewRecord(), "personal-location")
	assert.Nil(t, q)
}

func TestNext_SkipsAnsweredNoGate(t *testing.T) {
	record := types.Record{"hasWorkExperience": false}

	// Every work detail question is skipped; the section is complete.
	q := Next(record, "work-gate")
	assert.Nil(t, q)
}

func TestNext_GateYesOpensDetails(t *testing.T) {
	record := types.Record{"hasWorkExperience": true}

	q := Next(record, "work-gate")
	require.NotNil(t, q)
	assert.Equal(t, "work-company", q.ID)
}

func TestNext_SkipsEmailWhenUserHasNone(t *testing.T) {
	record := types.Record{"hasEmail": false}

	q := Next(record, "personal-name")
	require.NotNil(t, q)
	assert.Equal(t, "personal-phone", q.ID)
}

func TestNext_SkipsEndDateForCurrentJob(t *testing.T) {
	record := types.Record{
		"hasWorkExperience": true,
		"workExperience": []any{
			map[string]any{"isCurrentJob": true},
		},
	}

	q := Next(record, "work-current")
	require.NotNil(t, q)
	assert.Equal(t, "work-responsibilities", q.ID)
}

func TestNext_AsksEndDateForPastJob(t *testing.T) {
	record := types.Record{
		"hasWorkExperience": true,
		"workExperience": []any{
			map[string]any{"isCurrentJob": false},
		},
	}

	q := Next(record, "work-current")
	require.NotNil(t, q)
	assert.Equal(t, "work-end", q.ID)
}

func TestNext_UnknownCurrentID(t *testing.T) {
	assert.Nil(t, Next(types.NewRecord(), "no-such-question"))
}

func TestFirstInSection(t *testing.T) {
	q := FirstInSection(types.NewRecord(), sections.Education)
	require.NotNil(t, q)
	assert.Equal(t, "education-gate", q.ID)

	// With the gate declined only the gate itself remains unskipped.
	record := types.Record{"hasEducation": false}
	q = FirstInSection(record, sections.Education)
	require.NotNil(t, q)
	assert.Equal(t, "education-gate", q.ID)
}

func TestByID(t *testing.T) {
	q := ByID("skills-languages-gate")
	require.NotNil(t, q)
	assert.Equal(t, sections.Skills, q.Category)
	assert.Equal(t, "hasLanguageSkills", q.FieldPath)

	assert.Nil(t, ByID("missing"))
}

func TestCatalog_SkillGatesAlternateWithDetails(t *testing.T) {
	// With every skill gate answered yes, the chain walks gate, detail,
	// gate, detail through all four sub-categories.
	record := types.Record{
		"hasTechnicalSkills": true,
		"hasCertifications":  true,
		"hasLanguageSkills":  true,
		"hasSoftSkills":      true,
	}

	wantOrder := []string{
		"skills-technical", "skills-certifications-gate", "skills-certifications",
		"skills-languages-gate", "skills-languages", "skills-soft-gate", "skills-soft",
	}

	currentID := "skills-technical-gate"
	for _, want := range wantOrder {
		q := Next(record, currentID)
		require.NotNil(t, q, "after %s", currentID)
		assert.Equal(t, want, q.ID)
		currentID = q.ID
	}
	assert.Nil(t, Next(record, currentID))
}

func TestCatalog_AllNoSkillChainStillVisitsEveryGate(t *testing.T) {
	record := types.Record{
		"hasTechnicalSkills": false,
		"hasCertifications":  false,
		"hasLanguageSkills":  false,
	}

	q := Next(record, "skills-technical-gate")
	require.NotNil(t, q)
	assert.Equal(t, "skills-certifications-gate", q.ID)

	q = Next(record, "skills-certifications-gate")
	require.NotNil(t, q)
	assert.Equal(t, "skills-languages-gate", q.ID)

	q = Next(record, "skills-languages-gate")
	require.NotNil(t, q)
	assert.Equal(t, "skills-soft-gate", q.ID)
}
