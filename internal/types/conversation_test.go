//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-interviewer/internal/sections"
)

func TestNewSectionState(t *testing.T) {
	state := NewSectionState()

	assert.Equal(t, sections.Language, state.Section)
	assert.Equal(t, PhaseDetails, state.Phase)
	assert.Equal(t, sections.SkillTechnical, state.SkillArea)
	assert.Equal(t, 0, state.FollowUpCount)
	require.NotNil(t, state.Confirmed)
}

func TestSectionState_EnterSection(t *testing.T) {
	t.Run("gated section starts at gate phase", func(t *testing.T) {
		state := NewSectionState()
		state.FollowUpCount = 3
		state.EntryIndex = 2

		state.EnterSection(sections.Work)

		assert.Equal(t, sections.Work, state.Section)
		assert.Equal(t, PhaseGate, state.Phase)
		assert.Equal(t, 0, state.FollowUpCount)
		assert.Equal(t, 0, state.EntryIndex)
	})

	t.Run("ungated section starts at details phase", func(t *testing.T) {
		state := NewSectionState()
		state.EnterSection(sections.Personal)
		assert.Equal(t, PhaseDetails, state.Phase)
	})

	t.Run("entering skills resets the sub-category chain", func(t *testing.T) {
		state := NewSectionState()
		state.SkillArea = sections.SkillSoft

		state.EnterSection(sections.Skills)

		assert.Equal(t, sections.SkillTechnical, state.SkillArea)
		assert.Equal(t, PhaseGate, state.Phase)
	})

	t.Run("re-entering the same section is a no-op", func(t *testing.T) {
		state := NewSectionState()
		state.EnterSection(sections.Work)
		state.Phase = PhaseDetails
		state.FollowUpCount = 2
		state.EntryIndex = 1

		state.EnterSection(sections.Work)

		assert.Equal(t, PhaseDetails, state.Phase)
		assert.Equal(t, 2, state.FollowUpCount)
		assert.Equal(t, 1, state.EntryIndex)
	})
}

func TestNewConversationContext(t *testing.T) {
	ctx := NewConversationContext()
	assert.Equal(t, ToneNeutral, ctx.UserTone)
	require.NotNil(t, ctx.FollowUpCounts)
	assert.Empty(t, ctx.MentionedEntities)
}
