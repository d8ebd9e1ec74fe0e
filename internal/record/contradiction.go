package record

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-interviewer/internal/sections"
	"github.com/jonathan/resume-interviewer/internal/types"
)

// ContradictionResult describes a denial that conflicts with data already in
// the record. The caller asks the user to keep or clear; this package never
// clears anything.
type ContradictionResult struct {
	IsContradiction     bool
	Section             sections.Section
	ExistingDataSummary string
}

// denialPatterns match explicit "I don't have X" style denials per
// multi-entry section.
var denialPatterns = []struct {
	section  sections.Section
	patterns []*regexp.Regexp
}{
	{sections.Work, mustCompile(
		`\b(don'?t|do not) have (any )?(work|job) experience\b`,
		`\bno (work|job) experience\b`,
		`\bnever (worked|had a job)\b`,
	)},
	{sections.Education, mustCompile(
		`\b(don'?t|do not) have (any )?(education|degrees?|schooling)\b`,
		`\bno (formal )?education\b`,
		`\bnever (went to|attended) (school|college|university)\b`,
	)},
	{sections.Volunteering, mustCompile(
		`\b(don'?t|do not) have (any )?volunteer(ing)? experience\b`,
		`\bno volunteer(ing)? experience\b`,
		`\bnever volunteered\b`,
	)},
	{sections.References, mustCompile(
		`\b(don'?t|do not) have (any )?references\b`,
		`\bno references\b`,
	)},
}

// DetectContradiction checks a fresh denial against already-merged data for
// its section. It triggers only when that data is meaningful: a
// freshly-initialized placeholder entry must not be mistaken for real prior
// input.
func DetectContradiction(text string, rec types.Record) ContradictionResult {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return ContradictionResult{}
	}

	for _, entry := range denialPatterns {
		matched := false
		for _, p := range entry.patterns {
			if p.MatchString(normalized) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		arrayPath := sections.ArrayPath(entry.section)
		arr := rec.Array(arrayPath)
		if !hasMeaningfulEntry(arr) {
			continue
		}

		return ContradictionResult{
			IsContradiction:     true,
			Section:             entry.section,
			ExistingDataSummary: summarizeEntries(entry.section, arr),
		}
	}

	return ContradictionResult{}
}

// hasMeaningfulEntry reports whether any entry carries real data: a key other
// than "id" whose value is a non-empty string, non-empty list, or truthy
// primitive.
func hasMeaningfulEntry(arr []any) bool {
	for _, item := range arr {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for key, value := range entry {
			if key == "id" {
				continue
			}
			if isMeaningfulValue(value) {
				return true
			}
		}
	}
	return false
}

func isMeaningfulValue(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case []any:
		return len(v) > 0
	case []string:
		return len(v) > 0
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	default:
		return true
	}
}

// summaryFields lists, per section, the entry keys worth surfacing in a
// clarification prompt.
var summaryFields = map[sections.Section][]string{
	sections.Work:         {"companyName", "jobTitle"},
	sections.Education:    {"institution", "degree"},
	sections.Volunteering: {"organization", "role"},
	sections.References:   {"name", "relationship"},
}

// summarizeEntries builds a short human-readable digest of the existing
// entries ("Google (Software Engineer)").
func summarizeEntries(section sections.Section, arr []any) string {
	fields := summaryFields[section]
	var parts []string
	for _, item := range arr {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		var bits []string
		for _, field := range fields {
			if s, ok := entry[field].(string); ok && strings.TrimSpace(s) != "" {
				bits = append(bits, s)
			}
		}
		if len(bits) == 0 {
			continue
		}
		if len(bits) == 1 {
			parts = append(parts, bits[0])
		} else {
			parts = append(parts, bits[0]+" ("+strings.Join(bits[1:], ", ")+")")
		}
	}
	return strings.Join(parts, "; ")
}

func mustCompile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		out = append(out, regexp.MustCompile(expr))
	}
	return out
}
