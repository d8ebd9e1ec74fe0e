package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-interviewer/internal/sections"
)

func TestParseDataBlock(t *testing.T) {
	text := `Great, I've noted that!

<extracted_data>
{
  "fields": [
    {"path": "personalInfo.fullName", "value": "Ada Lovelace", "confidence": 0.95}
  ],
  "suggestedSection": "work",
  "followUpNeeded": false,
  "isComplete": false
}
</extracted_data>`

	payload := ParseDataBlock(text)
	require.NotNil(t, payload)
	require.Len(t, payload.Fields, 1)
	assert.Equal(t, "personalInfo.fullName", payload.Fields[0].Path)
	assert.Equal(t, "Ada Lovelace", payload.Fields[0].Value)
	assert.InDelta(t, 0.95, payload.Fields[0].Confidence, 0.001)
	assert.Equal(t, sections.Work, payload.SuggestedSection)
}

func TestParseDataBlock_NoBlock(t *testing.T) {
	assert.Nil(t, ParseDataBlock("Just a friendly question, nothing structured."))
	assert.Nil(t, ParseDataBlock(""))
}

func TestParseDataBlock_MalformedJSON(t *testing.T) {
	text := `<extracted_data>{"fields": [</extracted_data>`
	assert.Nil(t, ParseDataBlock(text))
}

func TestParseDataBlock_SchemaViolation(t *testing.T) {
	// Confidence out of range must be rejected, not merged.
	text := `<extracted_data>
{"fields": [{"path": "personalInfo.email", "value": "x", "confidence": 7}], "followUpNeeded": false, "isComplete": false}
</extracted_data>`
	assert.Nil(t, ParseDataBlock(text))
}

func TestParseDataBlock_UnknownSuggestedSectionRejected(t *testing.T) {
	text := `<extracted_data>
{"fields": [], "suggestedSection": "hobbies", "followUpNeeded": false, "isComplete": false}
</extracted_data>`
	assert.Nil(t, ParseDataBlock(text))
}

func TestParseDataBlock_NullSuggestedSection(t *testing.T) {
	text := `<extracted_data>
{"fields": [], "suggestedSection": null, "followUpNeeded": true, "isComplete": false}
</extracted_data>`

	payload := ParseDataBlock(text)
	require.NotNil(t, payload)
	assert.Empty(t, payload.SuggestedSection)
	assert.True(t, payload.FollowUpNeeded)
}
