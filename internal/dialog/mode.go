// Package dialog is the conversation orchestrator: it sequences classifiers,
// extraction, merge, contradiction checks, the completion collaborator, and
// response validation into one turn, and owns the section state machine.
package dialog

import (
	"github.com/jonathan/resume-interviewer/internal/types"
)

// State is what both interview modes expose: the record being assembled and
// the position in the section walk.
type State interface {
	ResumeRecord() types.Record
	SectionState() *types.SectionState
}

// AssistedState is the conversation state for AI mode.
type AssistedState struct {
	Record  types.Record
	Section *types.SectionState
	Context *types.ConversationContext
	History []types.Message
}

// NewAssistedState returns a fresh AI-mode state.
func NewAssistedState() *AssistedState {
	return &AssistedState{
		Record:  types.NewRecord(),
		Section: types.NewSectionState(),
		Context: types.NewConversationContext(),
	}
}

// ResumeRecord implements State.
func (s *AssistedState) ResumeRecord() types.Record { return s.Record }

// SectionState implements State.
func (s *AssistedState) SectionState() *types.SectionState { return s.Section }

// GuidedState is the conversation state for guided mode, which walks the
// question catalog directly without a model call.
type GuidedState struct {
	Record     types.Record
	Section    *types.SectionState
	QuestionID string
}

// NewGuidedState returns a fresh guided-mode state.
func NewGuidedState() *GuidedState {
	return &GuidedState{
		Record:  types.NewRecord(),
		Section: types.NewSectionState(),
	}
}

// ResumeRecord implements State.
func (s *GuidedState) ResumeRecord() types.Record { return s.Record }

// SectionState implements State.
func (s *GuidedState) SectionState() *types.SectionState { return s.Section }
