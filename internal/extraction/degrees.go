package extraction

import "strings"

// degreeExpansions maps common degree abbreviations to their full names. The
// exact expanded strings are fixed UI copy; do not re-derive them.
var degreeExpansions = map[string]string{
	"bs":   "Bachelor of Science",
	"bsc":  "Bachelor of Science",
	"ba":   "Bachelor of Arts",
	"bba":  "Bachelor of Business Administration",
	"beng": "Bachelor of Engineering",
	"ms":   "Master of Science",
	"msc":  "Master of Science",
	"ma":   "Master of Arts",
	"mba":  "Master of Business Administration",
	"meng": "Master of Engineering",
	"phd":  "Doctor of Philosophy",
	"md":   "Doctor of Medicine",
	"jd":   "Juris Doctor",
	"aa":   "Associate of Arts",
	"as":   "Associate of Science",
	"aas":  "Associate of Applied Science",
}

// ExpandDegree expands a leading degree abbreviation, preserving an "of"/"in"
// field-of-study tail: "BS in Computer Science" becomes "Bachelor of Science
// in Computer Science". Unrecognized input is returned unchanged.
func ExpandDegree(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return trimmed
	}

	first := trimmed
	rest := ""
	if idx := strings.IndexByte(trimmed, ' '); idx > 0 {
		first = trimmed[:idx]
		rest = trimmed[idx:]
	}

	key := strings.ToLower(strings.ReplaceAll(first, ".", ""))
	expanded, ok := degreeExpansions[key]
	if !ok {
		return trimmed
	}
	return expanded + rest
}
