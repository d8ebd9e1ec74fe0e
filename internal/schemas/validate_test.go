package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExtractedData_Valid(t *testing.T) {
	payloads := []string{
		`{"fields": []}`,
		`{"fields": [{"path": "personalInfo.fullName", "value": "Ada Lovelace", "confidence": 0.95}]}`,
		`{"fields": [{"path": "hasWorkExperience", "value": true, "confidence": 1}],
		  "suggestedSection": "work", "followUpNeeded": true, "isComplete": false}`,
		`{"fields": [{"path": "skills.technicalSkills", "value": ["Go", "SQL"], "confidence": 0.8}],
		  "suggestedSection": null, "specialContent": null}`,
	}

	for _, payload := range payloads {
		assert.NoError(t, ValidateExtractedData(payload), payload)
	}
}

func TestValidateExtractedData_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"missing fields key", `{"suggestedSection": "work"}`},
		{"field without path", `{"fields": [{"value": "x", "confidence": 0.9}]}`},
		{"field without confidence", `{"fields": [{"path": "personalInfo.email", "value": "x"}]}`},
		{"empty path", `{"fields": [{"path": "", "value": "x", "confidence": 0.9}]}`},
		{"confidence above one", `{"fields": [{"path": "a", "confidence": 1.5}]}`},
		{"confidence below zero", `{"fields": [{"path": "a", "confidence": -0.1}]}`},
		{"unknown suggested section", `{"fields": [], "suggestedSection": "hobbies"}`},
		{"fields not an array", `{"fields": "nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExtractedData(tt.payload)
			require.Error(t, err)

			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "error should be ValidationError, got %T", err)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateExtractedData_MalformedJSON(t *testing.T) {
	err := ValidateExtractedData(`{"fields": [`)
	assert.Error(t, err)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "fields.0.path", Message: "is required"},
			{Field: "suggestedSection", Message: "must be one of the known sections"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "fields.0.path")
	assert.Contains(t, msg, "suggestedSection")
}
