// Package extraction turns user utterances into confidence-scored field
// proposals: primarily by parsing the model-emitted data block, with a
// rule-based fallback keyed off the last question asked.
package extraction

import (
	"encoding/json"
	"regexp"

	"github.com/jonathan/resume-interviewer/internal/schemas"
	"github.com/jonathan/resume-interviewer/internal/sections"
	"github.com/jonathan/resume-interviewer/internal/types"
)

// Payload is the structured block the model is instructed to emit inside
// <extracted_data> tags.
type Payload struct {
	Fields           []types.FieldProposal `json:"fields"`
	SuggestedSection sections.Section      `json:"suggestedSection,omitempty"`
	FollowUpNeeded   bool                  `json:"followUpNeeded"`
	SpecialContent   string                `json:"specialContent,omitempty"`
	IsComplete       bool                  `json:"isComplete"`
}

var dataBlockPattern = regexp.MustCompile(`(?s)<extracted_data>(.*?)</extracted_data>`)

// ParseDataBlock extracts and validates the model's data block. Missing,
// malformed, or schema-violating blocks yield nil rather than an error;
// fallback extraction covers that case.
func ParseDataBlock(text string) *Payload {
	match := dataBlockPattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}

	raw := match[1]
	if err := schemas.ValidateExtractedData(raw); err != nil {
		return nil
	}

	var payload Payload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil
	}
	if payload.SuggestedSection != "" && !sections.IsValid(payload.SuggestedSection) {
		payload.SuggestedSection = ""
	}
	return &payload
}
