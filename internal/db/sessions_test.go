package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-interviewer/internal/sections"
	"github.com/jonathan/resume-interviewer/internal/types"
)

func TestSessionBlobs_RoundTrip(t *testing.T) {
	state := types.NewSectionState()
	state.EnterSection(sections.Work)
	state.EntryIndex = 1
	state.QuestionID = "work-company"

	ctx := types.NewConversationContext()
	ctx.MentionedEntities = []string{"Acme Corp"}
	ctx.FollowUpCounts[sections.Work] = 3

	original := &Session{
		Mode:   "assisted",
		Status: SessionActive,
		Record: types.Record{
			"hasWorkExperience": true,
			"workExperience": []any{
				map[string]any{"id": "abc", "companyName": "Acme Corp"},
			},
		},
		State:   state,
		Context: ctx,
		History: []types.Message{
			{Role: types.RoleAssistant, Content: "What company did you work for?"},
			{Role: types.RoleUser, Content: "Acme Corp"},
		},
	}

	recordJSON, stateJSON, contextJSON, historyJSON, err := marshalSessionBlobs(original)
	require.NoError(t, err)

	var decoded Session
	require.NoError(t, unmarshalSessionBlobs(&decoded, recordJSON, stateJSON, contextJSON, historyJSON))

	assert.Equal(t, true, decoded.Record["hasWorkExperience"])
	require.NotNil(t, decoded.State)
	assert.Equal(t, sections.Work, decoded.State.Section)
	assert.Equal(t, 1, decoded.State.EntryIndex)
	assert.Equal(t, "work-company", decoded.State.QuestionID)
	require.NotNil(t, decoded.Context)
	assert.Equal(t, []string{"Acme Corp"}, decoded.Context.MentionedEntities)
	assert.Equal(t, 3, decoded.Context.FollowUpCounts[sections.Work])
	require.Len(t, decoded.History, 2)
	assert.Equal(t, types.RoleUser, decoded.History[1].Role)
}

func TestSessionBlobs_NilHistoryMarshalsAsEmptyList(t *testing.T) {
	s := &Session{Record: types.NewRecord(), State: types.NewSectionState()}

	_, _, _, historyJSON, err := marshalSessionBlobs(s)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(historyJSON))
	assert.NotNil(t, s.History)
}

func TestSessionBlobs_NullStateAndContext(t *testing.T) {
	var decoded Session
	err := unmarshalSessionBlobs(&decoded,
		[]byte(`{}`), []byte(`null`), []byte(`null`), []byte(`[]`))
	require.NoError(t, err)

	assert.Nil(t, decoded.State)
	assert.Nil(t, decoded.Context)
	assert.NotNil(t, decoded.History)
	assert.Empty(t, decoded.History)
}
