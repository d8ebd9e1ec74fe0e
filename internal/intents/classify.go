// Package intents classifies free-form user text into narrow interaction
// intents: yes/no answers, escape phrases, frustration, explicit denials, and
// recognition of the assistant's own gate questions. Every classifier is a
// pure function of its input text and the static rule tables below.
package intents

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-interviewer/internal/sections"
)

// Category labels a group of phrase rules.
type Category string

// Recognized rule categories.
const (
	CategoryEscape           Category = "escape"
	CategoryFrustration      Category = "frustration"
	CategoryNoEmail          Category = "noEmail"
	CategoryNoWorkExperience Category = "noWorkExperience"
)

// Rule is one declarative phrase rule. A rule matches when any of its
// patterns matches the normalized text.
type Rule struct {
	ID       string
	Category Category
	Patterns []*regexp.Regexp
}

// Rules is the phrase rule table evaluated by Detect. Keeping the rules as
// data keeps each classifier independently testable.
var Rules = []Rule{
	{
		ID:       "escape-move-on",
		Category: CategoryEscape,
		Patterns: compile(
			`\bmove on\b`,
			`\bskip\b`,
			`\bnext question\b`,
			`\bnext section\b`,
			`\bthat'?s enough\b`,
			`\blet'?s continue\b`,
			`\bi'?m done\b`,
		),
	},
	{
		ID:       "frustration-repetition",
		Category: CategoryFrustration,
		Patterns: compile(
			`\bi (already|just) (said|told|answered)\b`,
			`\bstop asking\b`,
			`\basked (me )?(that|this) (already|before)\b`,
			`\bwhy (do you|are you) (keep|still) asking\b`,
			`\bthis is (annoying|frustrating|ridiculous)\b`,
		),
	},
	{
		ID:       "no-email",
		Category: CategoryNoEmail,
		Patterns: compile(
			`\b(don'?t|do not) have (an? )?e?-?mail\b`,
			`\bno e?-?mail( address)?\b`,
			`\bwithout (an? )?e?-?mail\b`,
		),
	},
	{
		ID:       "no-work-experience",
		Category: CategoryNoWorkExperience,
		Patterns: compile(
			`\b(don'?t|do not) have (any )?(work|job) experience\b`,
			`\bno (work|job|prior|previous) experience\b`,
			`\bnever (had a job|worked)\b`,
			`\bfirst job\b`,
			`\bthis (would|will) be my first\b`,
		),
	},
}

// normalize lowercases and trims text and strips a trailing sentence
// terminator so "Yes." and "yes" classify identically.
func normalize(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	t = strings.TrimRight(t, ".!")
	return strings.TrimSpace(t)
}

// matchRules reports whether any rule in the category matches the text.
func matchRules(text string, category Category) bool {
	normalized := normalize(text)
	if normalized == "" {
		return false
	}
	for _, rule := range Rules {
		if rule.Category != category {
			continue
		}
		for _, p := range rule.Patterns {
			if p.MatchString(normalized) {
				return true
			}
		}
	}
	return false
}

// DetectEscapePhrase reports whether the user is asking to move on.
func DetectEscapePhrase(text string) bool {
	return matchRules(text, CategoryEscape)
}

// DetectFrustration reports whether the user sounds frustrated with the
// interview. False positives are tolerated; this only tunes tone.
func DetectFrustration(text string) bool {
	return matchRules(text, CategoryFrustration)
}

// DetectNoEmail reports whether the user says they have no email address.
func DetectNoEmail(text string) bool {
	return matchRules(text, CategoryNoEmail)
}

// DetectNoWorkExperience reports whether the user denies having any prior
// work experience.
func DetectNoWorkExperience(text string) bool {
	return matchRules(text, CategoryNoWorkExperience)
}

// Polarity is the resolved value of a yes/no reply.
type Polarity string

// Yes/no polarities.
const (
	PolarityYes Polarity = "yes"
	PolarityNo  Polarity = "no"
)

// yesAnswers and noAnswers are exact-match sets over normalized text. Only
// bare acknowledgements belong here: a substantive answer (a company name, a
// skill list, an email) must never resolve to a polarity, because callers
// store the polarity as a gate flag rather than as content.
var yesAnswers = map[string]bool{
	"yes": true, "yeah": true, "yep": true, "yup": true,
	"sure": true, "definitely": true, "absolutely": true,
	"i do": true, "i have": true, "y": true, "ok": true, "okay": true,
}

var noAnswers = map[string]bool{
	"no": true, "nope": true, "nah": true, "none": true,
	"nothing": true, "skip": true, "n/a": true, "n": true,
	"not really": true,
}

// YesNo resolves a bare yes/no reply. The second return is false when the
// text is anything other than a recognized acknowledgement.
func YesNo(text string) (Polarity, bool) {
	normalized := normalize(text)
	if yesAnswers[normalized] {
		return PolarityYes, true
	}
	if noAnswers[normalized] {
		return PolarityNo, true
	}
	return "", false
}

// gateMarkers match the explicit yes/no suffix the protocol requires on gate
// questions.
var gateMarkers = compile(
	`\(yes or no\)\s*$`,
	`yes or no\?\s*$`,
)

// gateTemplates match the structural shapes of gate questions. Detail
// questions ("What company did you work for?") must not match.
var gateTemplates = compile(
	`\bdo you have any\b.*\?`,
	`\bwould you like to\b.*\?`,
	`\bis this your current\b.*\?`,
	`\bare you still\b.*\?`,
)

// IsGateQuestion reports whether the assistant's last message was a yes/no
// gate question. It inspects the assistant's text, not the user's.
func IsGateQuestion(lastAssistantMessage string) bool {
	normalized := strings.ToLower(strings.TrimSpace(lastAssistantMessage))
	if normalized == "" {
		return false
	}
	for _, p := range gateMarkers {
		if p.MatchString(normalized) {
			return true
		}
	}
	for _, p := range gateTemplates {
		if p.MatchString(normalized) {
			return true
		}
	}
	return false
}

// SaidNoToSection reports whether the user declined an entire gated section.
// This is only plausible on the very first turn of the section; a "no" given
// mid-section (e.g. "no middle name") is never a section-level denial.
func SaidNoToSection(text string, section sections.Section, followUpCount int) bool {
	return saidPolarityToSection(text, section, followUpCount, PolarityNo)
}

// SaidYesToSection reports whether the user entered a gated section with an
// explicit assent on its first turn.
func SaidYesToSection(text string, section sections.Section, followUpCount int) bool {
	return saidPolarityToSection(text, section, followUpCount, PolarityYes)
}

func saidPolarityToSection(text string, section sections.Section, followUpCount int, want Polarity) bool {
	if followUpCount != 0 {
		return false
	}
	if !sections.IsGated(section) {
		return false
	}
	polarity, ok := YesNo(text)
	return ok && polarity == want
}

// skillAreaPatterns recognize which skills sub-category an assistant question
// is about.
var skillAreaPatterns = []struct {
	area     sections.SkillArea
	patterns []*regexp.Regexp
}{
	{sections.SkillCertifications, compile(`\bcertification`, `\blicens`, `\bcertificate`)},
	{sections.SkillLanguages, compile(`\blanguages? (do )?you speak\b`, `\bspoken languages?\b`, `\blanguage skills?\b`)},
	{sections.SkillSoft, compile(`\bsoft skills?\b`, `\binterpersonal\b`, `\bcommunication skills?\b`)},
	{sections.SkillTechnical, compile(`\btechnical skills?\b`, `\btechnologies\b`, `\btools\b`, `\bprogramming\b`)},
}

// MatchSkillArea identifies the skills sub-category a question refers to.
func MatchSkillArea(text string) (sections.SkillArea, bool) {
	normalized := strings.ToLower(text)
	for _, entry := range skillAreaPatterns {
		for _, p := range entry.patterns {
			if p.MatchString(normalized) {
				return entry.area, true
			}
		}
	}
	return "", false
}

// addAnotherPatterns match the forced "add another?" prompt after a
// multi-entry item is collected.
var addAnotherPatterns = compile(
	`\badd another\b`,
	`\bany other (jobs?|positions?|degrees?|roles?|references?|experiences?)\b`,
	`\banother (job|position|degree|role|reference|experience)\b`,
)

// IsAddAnotherQuestion reports whether the assistant asked the multi-entry
// continuation question.
func IsAddAnotherQuestion(lastAssistantMessage string) bool {
	normalized := strings.ToLower(lastAssistantMessage)
	for _, p := range addAnotherPatterns {
		if p.MatchString(normalized) {
			return true
		}
	}
	return false
}

// responsibilityPatterns match detail questions about duties within a role.
var responsibilityPatterns = compile(
	`\bresponsibilit`,
	`\bduties\b`,
	`\bwhat did you do\b`,
	`\bday[- ]to[- ]day\b`,
)

// AsksResponsibilities reports whether the assistant asked about role
// responsibilities.
func AsksResponsibilities(lastAssistantMessage string) bool {
	normalized := strings.ToLower(lastAssistantMessage)
	for _, p := range responsibilityPatterns {
		if p.MatchString(normalized) {
			return true
		}
	}
	return false
}

// uncertaintyPatterns tune the detected tone toward "uncertain".
var uncertaintyPatterns = compile(
	`\bi (think|guess|suppose)\b`,
	`\bmaybe\b`,
	`\bnot sure\b`,
	`\bi don'?t (really )?know\b`,
)

// DetectTone derives a coarse tone for the context hints.
func DetectTone(text string) string {
	if DetectFrustration(text) {
		return "frustrated"
	}
	normalized := normalize(text)
	for _, p := range uncertaintyPatterns {
		if p.MatchString(normalized) {
			return "uncertain"
		}
	}
	if len(normalized) > 80 {
		return "confident"
	}
	return "neutral"
}

func compile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		out = append(out, regexp.MustCompile(expr))
	}
	return out
}
