package protocol

import (
	"strings"

	"github.com/jonathan/resume-interviewer/internal/sections"
)

// Violation identifies which protocol rule a candidate message broke.
type Violation string

// Protocol violations, in check order. The first violated rule wins.
const (
	ViolationMissingFirstMessage Violation = "missing_required_first_message"
	ViolationPostDenial          Violation = "post_denial_transition"
)

// maxLeadIn is how many characters of free-form lead-in may precede the
// required first message.
const maxLeadIn = 50

// ValidationResult reports whether a candidate message obeys the protocol.
// When it does not, CorrectedResponse is a full substitute, not a patch.
type ValidationResult struct {
	IsValid           bool
	Violation         Violation
	CorrectedResponse string
}

// Validate checks a candidate assistant message against the protocol rules
// for the current section and turn.
//
// Rule 1 (first message): on the first turn of a gated section, with no
// yes/no answer given yet, the candidate must contain the section's exact
// required question after at most a short lead-in.
//
// Rule 2 (post denial): once the user declined the section, the candidate
// must be the canonical transition: it must not re-ask the declined gate and
// must open the fixed successor.
//
// Rule 3 (follow-up passthrough): past the first turn, free-form detail
// questions are allowed.
func Validate(candidate string, section sections.Section, followUpCount int, userSaidNo, userSaidYes bool) ValidationResult {
	if followUpCount == 0 && sections.IsGated(section) && !userSaidNo && !userSaidYes {
		required := RequiredFirstMessages[section]
		idx := strings.Index(candidate, required)
		if idx < 0 || idx > maxLeadIn {
			return ValidationResult{
				IsValid:           false,
				Violation:         ViolationMissingFirstMessage,
				CorrectedResponse: required,
			}
		}
		return ValidationResult{IsValid: true}
	}

	if userSaidNo && sections.IsGated(section) {
		canonical := TransitionMessages[section]
		if !isValidTransition(candidate, section) {
			return ValidationResult{
				IsValid:           false,
				Violation:         ViolationPostDenial,
				CorrectedResponse: canonical,
			}
		}
		return ValidationResult{IsValid: true}
	}

	// Follow-up turns are unconstrained.
	return ValidationResult{IsValid: true}
}

// isValidTransition reports whether a candidate acknowledges a section denial
// acceptably: it opens the successor section and does not re-ask the gate the
// user just declined.
func isValidTransition(candidate string, declined sections.Section) bool {
	if strings.Contains(candidate, RequiredFirstMessages[declined]) {
		return false
	}
	next := sections.Next(declined)
	if sections.IsGated(next) {
		return strings.Contains(candidate, RequiredFirstMessages[next])
	}
	// References is the last gated section; its successor is the review
	// stage, so any mention of reviewing is acceptable.
	return strings.Contains(strings.ToLower(candidate), "review")
}
