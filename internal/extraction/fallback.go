package extraction

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-interviewer/internal/intents"
	"github.com/jonathan/resume-interviewer/internal/sections"
	"github.com/jonathan/resume-interviewer/internal/types"
)

// Confidence levels for rule-based proposals. Gate flags are near-certain;
// detail answers carry slightly less weight.
const (
	gateConfidence   = 0.95
	detailConfidence = 0.85
)

// Result is the outcome of fallback extraction for one turn.
type Result struct {
	Fields           []types.FieldProposal
	SuggestedSection sections.Section
}

// currentJobPattern recognizes the "is this your current job?" question. Its
// answer is a boolean on the entry, never an endDate of "yes".
var currentJobPattern = regexp.MustCompile(`\b(is this|are you still( in| at)?) your current\b|\bstill work(ing)? (there|here)\b|\bcurrent (job|position|role)\b`)

// uponRequestPattern recognizes the "available upon request" convention for
// references.
var uponRequestPattern = regexp.MustCompile(`\bavailable (up)?on request\b|\bupon request\b`)

// Fallback produces rule-based field proposals when the model's data block is
// missing or unusable. Behavior is keyed off whether the last assistant
// message was a gate question: a bare "yes"/"no" answers the gate flag and
// must never be stored as content.
func Fallback(userMessage string, state *types.SectionState, lastAssistantMessage string) Result {
	if state == nil {
		return Result{}
	}

	// References convention: "available upon request" anywhere in a
	// references-section reply sets the flag regardless of question shape.
	if state.Section == sections.References && uponRequestPattern.MatchString(strings.ToLower(userMessage)) {
		return Result{Fields: []types.FieldProposal{{
			Path:       "referencesUponRequest",
			Value:      true,
			Confidence: gateConfidence,
		}}}
	}

	lowerLast := strings.ToLower(lastAssistantMessage)

	// "Is this your current job?" yields a boolean, never an endDate.
	if state.Section == sections.Work && currentJobPattern.MatchString(lowerLast) {
		if polarity, ok := intents.YesNo(userMessage); ok {
			return Result{Fields: []types.FieldProposal{{
				Path:       fmt.Sprintf("workExperience[%d].isCurrentJob", state.EntryIndex),
				Value:      polarity == intents.PolarityYes,
				Confidence: gateConfidence,
			}}}
		}
	}

	if intents.IsGateQuestion(lastAssistantMessage) {
		return fallbackGate(userMessage, state, lastAssistantMessage)
	}
	return fallbackDetail(userMessage, state, lastAssistantMessage)
}

// fallbackGate answers a gate question: exactly one boolean flag proposal and
// no content field. A "no" also proposes the canonical next section.
func fallbackGate(userMessage string, state *types.SectionState, lastAssistantMessage string) Result {
	polarity, ok := intents.YesNo(userMessage)
	if !ok {
		// A substantive reply to a gate question carries content; let the
		// detail mapper have a go at it.
		return fallbackDetail(userMessage, state, lastAssistantMessage)
	}

	// The "add another?" prompt is gate-shaped but answers loop state, not a
	// section flag; the orchestrator owns that transition.
	if intents.IsAddAnotherQuestion(lastAssistantMessage) {
		return Result{}
	}

	flagPath := gateFlagFor(state, lastAssistantMessage)
	if flagPath == "" {
		return Result{}
	}

	result := Result{Fields: []types.FieldProposal{{
		Path:       flagPath,
		Value:      polarity == intents.PolarityYes,
		Confidence: gateConfidence,
	}}}

	if polarity == intents.PolarityNo {
		result.SuggestedSection = sections.Next(state.Section)
	}
	return result
}

// gateFlagFor resolves which flag a gate question is about. Inside the skills
// section the question text decides the sub-category; elsewhere the section
// decides.
func gateFlagFor(state *types.SectionState, lastAssistantMessage string) string {
	if state.Section == sections.Skills {
		if area, ok := intents.MatchSkillArea(lastAssistantMessage); ok {
			return sections.SkillGateFlagPath(area)
		}
		return sections.SkillGateFlagPath(state.SkillArea)
	}
	return sections.GateFlagPath(state.Section)
}

// detailRule maps a detail question shape to the record path its answer
// fills. pathFor receives the current entry index for multi-entry sections.
type detailRule struct {
	patterns []*regexp.Regexp
	section  sections.Section // empty means any section
	pathFor  func(state *types.SectionState) string
	list     bool
	degree   bool
}

var detailRules = []detailRule{
	{
		patterns: compilePatterns(`\b(your|full) name\b`, `\bname should appear\b`),
		section:  sections.Personal,
		pathFor:  func(*types.SectionState) string { return "personalInfo.fullName" },
	},
	{
		patterns: compilePatterns(`\be-?mail\b`),
		section:  sections.Personal,
		pathFor:  func(*types.SectionState) string { return "personalInfo.email" },
	},
	{
		patterns: compilePatterns(`\bphone\b`, `\bnumber\b`),
		section:  sections.Personal,
		pathFor:  func(*types.SectionState) string { return "personalInfo.phone" },
	},
	{
		patterns: compilePatterns(`\b(where|city|location|based)\b`),
		section:  sections.Personal,
		pathFor:  func(*types.SectionState) string { return "personalInfo.location" },
	},
	{
		patterns: compilePatterns(`\babout yourself\b`, `\bsummary\b`, `\bintroduce\b`),
		pathFor:  func(*types.SectionState) string { return "personalInfo.summary" },
	},
	{
		patterns: compilePatterns(`\bcompany\b`, `\bemployer\b`, `\bwho did you work for\b`),
		section:  sections.Work,
		pathFor: func(s *types.SectionState) string {
			return fmt.Sprintf("workExperience[%d].companyName", s.EntryIndex)
		},
	},
	{
		patterns: compilePatterns(`\b(job )?title\b`, `\bposition\b`, `\bwhat was your role\b`),
		section:  sections.Work,
		pathFor: func(s *types.SectionState) string {
			return fmt.Sprintf("workExperience[%d].jobTitle", s.EntryIndex)
		},
	},
	{
		patterns: compilePatterns(`\bwhen did you start\b`, `\bstart date\b`),
		section:  sections.Work,
		pathFor: func(s *types.SectionState) string {
			return fmt.Sprintf("workExperience[%d].startDate", s.EntryIndex)
		},
	},
	{
		patterns: compilePatterns(`\bwhen did you (leave|stop|finish)\b`, `\bend date\b`),
		section:  sections.Work,
		pathFor: func(s *types.SectionState) string {
			return fmt.Sprintf("workExperience[%d].endDate", s.EntryIndex)
		},
	},
	{
		patterns: compilePatterns(`\bresponsibilit`, `\bduties\b`, `\bwhat did you do\b`, `\bday[- ]to[- ]day\b`),
		section:  sections.Work,
		pathFor: func(s *types.SectionState) string {
			return fmt.Sprintf("workExperience[%d].responsibilities", s.EntryIndex)
		},
		list: true,
	},
	{
		patterns: compilePatterns(`\b(school|college|university|institution)\b`),
		section:  sections.Education,
		pathFor: func(s *types.SectionState) string {
			return fmt.Sprintf("education[%d].institution", s.EntryIndex)
		},
	},
	{
		patterns: compilePatterns(`\bdegree\b`, `\bqualification\b`),
		section:  sections.Education,
		pathFor: func(s *types.SectionState) string {
			return fmt.Sprintf("education[%d].degree", s.EntryIndex)
		},
		degree: true,
	},
	{
		patterns: compilePatterns(`\b(field of study|major|subject)\b`),
		section:  sections.Education,
		pathFor: func(s *types.SectionState) string {
			return fmt.Sprintf("education[%d].fieldOfStudy", s.EntryIndex)
		},
	},
	{
		patterns: compilePatterns(`\bgraduat`),
		section:  sections.Education,
		pathFor: func(s *types.SectionState) string {
			return fmt.Sprintf("education[%d].graduationYear", s.EntryIndex)
		},
	},
	{
		patterns: compilePatterns(`\b(organization|organisation|charity|nonprofit)\b`),
		section:  sections.Volunteering,
		pathFor: func(s *types.SectionState) string {
			return fmt.Sprintf("volunteering[%d].organization", s.EntryIndex)
		},
	},
	{
		patterns: compilePatterns(`\bwhat (was|is) your role\b`, `\bwhat did you do there\b`),
		section:  sections.Volunteering,
		pathFor: func(s *types.SectionState) string {
			return fmt.Sprintf("volunteering[%d].role", s.EntryIndex)
		},
	},
	{
		patterns: compilePatterns(`\breference'?s? name\b`, `\bwho (is|would be) your reference\b`, `\bname of your reference\b`),
		section:  sections.References,
		pathFor: func(s *types.SectionState) string {
			return fmt.Sprintf("references[%d].name", s.EntryIndex)
		},
	},
	{
		patterns: compilePatterns(`\brelationship\b`, `\bhow do you know\b`),
		section:  sections.References,
		pathFor: func(s *types.SectionState) string {
			return fmt.Sprintf("references[%d].relationship", s.EntryIndex)
		},
	},
	{
		patterns: compilePatterns(`\b(contact|reach) (them|info)\b`, `\btheir (phone|e-?mail)\b`),
		section:  sections.References,
		pathFor: func(s *types.SectionState) string {
			return fmt.Sprintf("references[%d].contactInfo", s.EntryIndex)
		},
	},
}

// fallbackDetail maps a detail answer onto the field implied by the question
// text. Skill list questions are resolved by sub-category; everything else by
// the rule table.
func fallbackDetail(userMessage string, state *types.SectionState, lastAssistantMessage string) Result {
	answer := strings.TrimSpace(userMessage)
	if answer == "" {
		return Result{}
	}

	lowerLast := strings.ToLower(lastAssistantMessage)

	if state.Section == sections.Skills {
		area := state.SkillArea
		if matched, ok := intents.MatchSkillArea(lastAssistantMessage); ok {
			area = matched
		}
		if listPath := sections.SkillListPath(area); listPath != "" {
			return Result{Fields: []types.FieldProposal{{
				Path:       listPath,
				Value:      SplitList(answer),
				Confidence: detailConfidence,
			}}}
		}
		return Result{}
	}

	for _, rule := range detailRules {
		if rule.section != "" && rule.section != state.Section {
			continue
		}
		matched := false
		for _, p := range rule.patterns {
			if p.MatchString(lowerLast) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		var value any = answer
		if rule.list {
			value = SplitList(answer)
		} else if rule.degree {
			value = ExpandDegree(answer)
		}
		return Result{Fields: []types.FieldProposal{{
			Path:       rule.pathFor(state),
			Value:      value,
			Confidence: detailConfidence,
		}}}
	}

	return Result{}
}

// SplitList splits a free-text enumeration on commas, semicolons, newlines,
// and a trailing "and".
func SplitList(text string) []string {
	replaced := strings.NewReplacer(";", ",", "\n", ",", " and ", ",").Replace(text)
	parts := strings.Split(replaced, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func compilePatterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		out = append(out, regexp.MustCompile(expr))
	}
	return out
}
