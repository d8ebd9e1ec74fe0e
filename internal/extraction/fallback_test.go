package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-interviewer/internal/sections"
	"github.com/jonathan/resume-interviewer/internal/types"
)

func workState() *types.SectionState {
	state := types.NewSectionState()
	state.EnterSection(sections.Work)
	return state
}

func TestFallback_GateYesSetsFlagOnly(t *testing.T) {
	result := Fallback("yes", workState(), "Do you have any work experience? (Yes or No)")

	require.Len(t, result.Fields, 1)
	assert.Equal(t, "hasWorkExperience", result.Fields[0].Path)
	assert.Equal(t, true, result.Fields[0].Value)
	assert.InDelta(t, 0.95, result.Fields[0].Confidence, 0.001)
	assert.Empty(t, result.SuggestedSection)
}

func TestFallback_GateNoSetsFlagAndSuggestsNext(t *testing.T) {
	result := Fallback("no", workState(), "Do you have any work experience? (Yes or No)")

	require.Len(t, result.Fields, 1)
	assert.Equal(t, "hasWorkExperience", result.Fields[0].Path)
	assert.Equal(t, false, result.Fields[0].Value)
	assert.Equal(t, sections.Education, result.SuggestedSection)
}

func TestFallback_SkillsGateNoSuggestsFixedSuccessor(t *testing.T) {
	state := types.NewSectionState()
	state.EnterSection(sections.Skills)
	state.SkillArea = sections.SkillCertifications

	result := Fallback("no", state, "Do you have any certifications or licenses? (Yes or No)")

	require.Len(t, result.Fields, 1)
	assert.Equal(t, "hasCertifications", result.Fields[0].Path)
	assert.Equal(t, false, result.Fields[0].Value)
	// Stepping the sub-category chain is the orchestrator's call; the
	// suggestion names the fixed successor regardless.
	assert.Equal(t, sections.References, result.SuggestedSection)
}

func TestFallback_SkillGateResolvedFromQuestionText(t *testing.T) {
	state := types.NewSectionState()
	state.EnterSection(sections.Skills)
	// State says technical, but the question asked about languages.
	state.SkillArea = sections.SkillTechnical

	result := Fallback("yes", state, "Do you have any language skills to include? (Yes or No)")

	require.Len(t, result.Fields, 1)
	assert.Equal(t, "hasLanguageSkills", result.Fields[0].Path)
}

func TestFallback_SubstantiveGateAnswerFallsThroughToDetail(t *testing.T) {
	result := Fallback("I worked at a bakery", workState(), "Do you have any work experience? (Yes or No)")
	// The reply is content, not an acknowledgement; no flag may be set.
	for _, f := range result.Fields {
		assert.NotEqual(t, "hasWorkExperience", f.Path)
	}
}

func TestFallback_AddAnotherAnswerYieldsNothing(t *testing.T) {
	result := Fallback("yes", workState(), "Would you like to add another job? (Yes or No)")
	assert.Empty(t, result.Fields)
	assert.Empty(t, result.SuggestedSection)
}

func TestFallback_CurrentJobYieldsBoolean(t *testing.T) {
	state := workState()
	state.EntryIndex = 1

	result := Fallback("yes", state, "Is this your current job?")

	require.Len(t, result.Fields, 1)
	assert.Equal(t, "workExperience[1].isCurrentJob", result.Fields[0].Path)
	assert.Equal(t, true, result.Fields[0].Value)
}

func TestFallback_ReferencesUponRequest(t *testing.T) {
	state := types.NewSectionState()
	state.EnterSection(sections.References)

	result := Fallback("just say they're available upon request", state, "What is your reference's name?")

	require.Len(t, result.Fields, 1)
	assert.Equal(t, "referencesUponRequest", result.Fields[0].Path)
	assert.Equal(t, true, result.Fields[0].Value)
}

func TestFallback_DetailAnswers(t *testing.T) {
	tests := []struct {
		name     string
		section  sections.Section
		index    int
		question string
		answer   string
		wantPath string
		wantVal  any
	}{
		{
			name:     "company name",
			section:  sections.Work,
			question: "Great! What company did you work for?",
			answer:   "Google",
			wantPath: "workExperience[0].companyName",
			wantVal:  "Google",
		},
		{
			name:     "job title on second entry",
			section:  sections.Work,
			index:    1,
			question: "What was your job title there?",
			answer:   "Staff Engineer",
			wantPath: "workExperience[1].jobTitle",
			wantVal:  "Staff Engineer",
		},
		{
			name:     "full name",
			section:  sections.Personal,
			question: "What's your full name?",
			answer:   "Ada Lovelace",
			wantPath: "personalInfo.fullName",
			wantVal:  "Ada Lovelace",
		},
		{
			name:     "email",
			section:  sections.Personal,
			question: "What's the best email to reach you?",
			answer:   "ada@example.com",
			wantPath: "personalInfo.email",
			wantVal:  "ada@example.com",
		},
		{
			name:     "institution",
			section:  sections.Education,
			question: "Great! What school, college, or university did you attend?",
			answer:   "MIT",
			wantPath: "education[0].institution",
			wantVal:  "MIT",
		},
		{
			name:     "degree is expanded",
			section:  sections.Education,
			question: "What degree did you earn?",
			answer:   "BS in Computer Science",
			wantPath: "education[0].degree",
			wantVal:  "Bachelor of Science in Computer Science",
		},
		{
			name:     "volunteering organization",
			section:  sections.Volunteering,
			question: "Wonderful! What organization did you volunteer with?",
			answer:   "Red Cross",
			wantPath: "volunteering[0].organization",
			wantVal:  "Red Cross",
		},
		{
			name:     "reference name",
			section:  sections.References,
			question: "Great! What is your reference's name?",
			answer:   "Dr. Smith",
			wantPath: "references[0].name",
			wantVal:  "Dr. Smith",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := types.NewSectionState()
			state.EnterSection(tt.section)
			state.EntryIndex = tt.index

			result := Fallback(tt.answer, state, tt.question)

			require.Len(t, result.Fields, 1)
			assert.Equal(t, tt.wantPath, result.Fields[0].Path)
			assert.Equal(t, tt.wantVal, result.Fields[0].Value)
			assert.InDelta(t, 0.85, result.Fields[0].Confidence, 0.001)
		})
	}
}

func TestFallback_ResponsibilitiesSplitIntoList(t *testing.T) {
	result := Fallback(
		"code reviews, mentoring and on-call",
		workState(),
		"What were your main responsibilities?",
	)

	require.Len(t, result.Fields, 1)
	assert.Equal(t, "workExperience[0].responsibilities", result.Fields[0].Path)
	assert.Equal(t, []string{"code reviews", "mentoring", "on-call"}, result.Fields[0].Value)
}

func TestFallback_SkillListAnswer(t *testing.T) {
	state := types.NewSectionState()
	state.EnterSection(sections.Skills)
	state.Phase = types.PhaseDetails

	result := Fallback("Go, Python; SQL", state, "What technical skills do you have? You can list several, separated by commas.")

	require.Len(t, result.Fields, 1)
	assert.Equal(t, "skills.technicalSkills", result.Fields[0].Path)
	assert.Equal(t, []string{"Go", "Python", "SQL"}, result.Fields[0].Value)
}

func TestFallback_UnmatchedQuestionYieldsNothing(t *testing.T) {
	state := types.NewSectionState()
	state.EnterSection(sections.Personal)

	result := Fallback("blue", state, "What's your favorite color?")
	assert.Empty(t, result.Fields)
}

func TestFallback_NilState(t *testing.T) {
	result := Fallback("yes", nil, "Do you have any work experience? (Yes or No)")
	assert.Empty(t, result.Fields)
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Go, Python, SQL", []string{"Go", "Python", "SQL"}},
		{"Go; Python", []string{"Go", "Python"}},
		{"Go\nPython", []string{"Go", "Python"}},
		{"Go and Python", []string{"Go", "Python"}},
		{"  Go  ", []string{"Go"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := SplitList(tt.in)
			if tt.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestExpandDegree(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BS", "Bachelor of Science"},
		{"B.S.", "Bachelor of Science"},
		{"bs in Computer Science", "Bachelor of Science in Computer Science"},
		{"MBA", "Master of Business Administration"},
		{"PhD", "Doctor of Philosophy"},
		{"Bachelor of Fine Arts", "Bachelor of Fine Arts"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandDegree(tt.in))
		})
	}
}
