package protocol

import (
	"regexp"
	"strings"
)

// dataBlockPattern matches a complete model data block anywhere in the reply.
var dataBlockPattern = regexp.MustCompile(`(?s)<extracted_data>.*?</extracted_data>`)

// danglingOpenPattern matches an opening tag the model never closed; in that
// case everything after the tag is machine payload, not user-facing text.
var danglingOpenPattern = regexp.MustCompile(`(?s)<extracted_data>.*$`)

// blankRunPattern collapses the blank runs left behind by block removal.
var blankRunPattern = regexp.MustCompile(`\n{3,}`)

// CleanResponse strips the model's data block from a reply before it is
// surfaced to the user. Cleaning is idempotent: cleaning a clean string
// returns it unchanged.
func CleanResponse(text string) string {
	cleaned := dataBlockPattern.ReplaceAllString(text, "")
	cleaned = danglingOpenPattern.ReplaceAllString(cleaned, "")
	cleaned = blankRunPattern.ReplaceAllString(cleaned, "\n\n")
	return strings.TrimSpace(cleaned)
}
