package types

import "github.com/jonathan/resume-interviewer/internal/sections"

// Role identifies the author of a chat message.
type Role string

// Chat message roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat turn exchanged with the completion collaborator.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Usage reports token counts for one completion call.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Completion is the result of one text-completion call.
type Completion struct {
	Text  string `json:"text"`
	Usage Usage  `json:"usage"`
}

// FieldProposal is one candidate assignment produced by the field extraction
// engine. Proposals live for a single turn: they are created by extraction,
// consumed once by the merge engine, and discarded.
type FieldProposal struct {
	Path       string  `json:"path"`
	Value      any     `json:"value"`
	Confidence float64 `json:"confidence"`
}

// Tone is the coarse emotional register detected for the user.
type Tone string

// Recognized user tones.
const (
	ToneConfident  Tone = "confident"
	ToneUncertain  Tone = "uncertain"
	ToneFrustrated Tone = "frustrated"
	ToneNeutral    Tone = "neutral"
)

// ConversationContext accumulates per-session hints for the model. It is
// owned by the orchestrator and mutated once per turn; classifiers never
// read it.
type ConversationContext struct {
	MentionedEntities []string                 `json:"mentionedEntities"`
	AnsweredTopics    []string                 `json:"answeredTopics"`
	UserTone          Tone                     `json:"userTone"`
	FollowUpCounts    map[sections.Section]int `json:"followUpCounts"`
}

// NewConversationContext returns an empty context with a neutral tone.
func NewConversationContext() *ConversationContext {
	return &ConversationContext{
		UserTone:       ToneNeutral,
		FollowUpCounts: make(map[sections.Section]int),
	}
}

// Phase is the position inside a section's interaction loop.
type Phase string

// Section phases. Gated sections start at PhaseGate; detail questions run in
// PhaseDetails; multi-entry sections end each entry at PhaseAddAnother.
const (
	PhaseGate       Phase = "gate"
	PhaseDetails    Phase = "details"
	PhaseAddAnother Phase = "addAnother"
)

// SectionState tracks where the interview currently is. FollowUpCount resets
// to zero whenever the section changes and increments once per turn spent in
// the same section.
type SectionState struct {
	Section       sections.Section          `json:"section"`
	Phase         Phase                     `json:"phase"`
	EntryIndex    int                       `json:"entryIndex"`
	SkillArea     sections.SkillArea        `json:"skillArea,omitempty"`
	QuestionID    string                    `json:"questionId,omitempty"`
	FollowUpCount int                       `json:"followUpCount"`
	Confirmed     map[sections.Section]bool `json:"confirmed"`
}

// NewSectionState returns the starting state for a fresh interview.
func NewSectionState() *SectionState {
	return &SectionState{
		Section:   sections.Language,
		Phase:     PhaseDetails,
		SkillArea: sections.SkillTechnical,
		Confirmed: make(map[sections.Section]bool),
	}
}

// EnterSection moves the state to a new section, resetting the follow-up
// count and per-section loop position.
func (s *SectionState) EnterSection(next sections.Section) {
	if s.Section == next {
		return
	}
	s.Section = next
	s.FollowUpCount = 0
	s.EntryIndex = 0
	if sections.IsGated(next) {
		s.Phase = PhaseGate
	} else {
		s.Phase = PhaseDetails
	}
	if next == sections.Skills {
		s.SkillArea = sections.SkillTechnical
	}
}

// TurnResult is the orchestrator's output for one processed turn.
type TurnResult struct {
	AssistantMessage string           `json:"assistantMessage"`
	ExtractedFields  []FieldProposal  `json:"extractedFields"`
	SuggestedSection sections.Section `json:"suggestedSection,omitempty"`
	FollowUpNeeded   bool             `json:"followUpNeeded"`
	IsComplete       bool             `json:"isComplete"`
	SpecialContent   string           `json:"specialContent,omitempty"`
	Usage            Usage            `json:"usage"`
}
