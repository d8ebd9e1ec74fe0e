package dialog

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/resume-interviewer/internal/extraction"
	"github.com/jonathan/resume-interviewer/internal/intents"
	"github.com/jonathan/resume-interviewer/internal/prompts"
	"github.com/jonathan/resume-interviewer/internal/protocol"
	"github.com/jonathan/resume-interviewer/internal/record"
	"github.com/jonathan/resume-interviewer/internal/sections"
	"github.com/jonathan/resume-interviewer/internal/types"
)

// Completer is the text-completion collaborator contract. The orchestrator
// treats a call as one logical unit of work and never retries.
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, history []types.Message) (*types.Completion, error)
}

// Orchestrator runs one interview turn at a time. Sessions are serialized by
// the calling layer; no two turns of the same session run concurrently.
type Orchestrator struct {
	completer Completer
}

// New creates an orchestrator around a completion collaborator.
func New(completer Completer) *Orchestrator {
	return &Orchestrator{completer: completer}
}

// TurnInput is everything one AI-mode turn needs. Record and State are not
// mutated; the outcome carries updated copies.
type TurnInput struct {
	History     []types.Message
	Record      types.Record
	State       *types.SectionState
	Context     *types.ConversationContext
	UserMessage string
}

// TurnOutcome is the processed turn: the reply, the merged record, and the
// advanced section state.
type TurnOutcome struct {
	Result types.TurnResult
	Record types.Record
	State  *types.SectionState
}

// ProcessTurn runs the full per-turn sequence: classify the user message and
// the last assistant message, check for contradictions, call the model,
// extract and merge fields, validate or correct the reply, then apply the
// deterministic section transitions.
func (o *Orchestrator) ProcessTurn(ctx context.Context, input TurnInput) (*TurnOutcome, error) {
	state := cloneState(input.State)
	section := state.Section
	lastAssistant := lastAssistantMessage(input.History)

	saidNo := intents.SaidNoToSection(input.UserMessage, section, state.FollowUpCount)
	saidYes := intents.SaidYesToSection(input.UserMessage, section, state.FollowUpCount)
	frustrated := intents.DetectFrustration(input.UserMessage)
	escaped := intents.DetectEscapePhrase(input.UserMessage)
	noEmail := intents.DetectNoEmail(input.UserMessage)

	// A first-turn section denial is a legitimate answer, not a conflict.
	var contradiction record.ContradictionResult
	if !saidNo {
		contradiction = record.DetectContradiction(input.UserMessage, input.Record)
	}

	requiredQuestion := ""
	if state.FollowUpCount == 0 && sections.IsGated(section) && !saidNo && !saidYes {
		requiredQuestion = protocol.RequiredFirstMessages[section]
	}

	systemPrompt := prompts.BuildSystemPrompt(prompts.TurnPromptInput{
		Section:          section,
		FollowUpCount:    state.FollowUpCount,
		Record:           input.Record,
		Context:          input.Context,
		RequiredQuestion: requiredQuestion,
		Contradiction:    contradiction.ExistingDataSummary,
		Frustrated:       frustrated,
	})

	history := make([]types.Message, 0, len(input.History)+1)
	history = append(history, input.History...)
	history = append(history, types.Message{Role: types.RoleUser, Content: input.UserMessage})

	// Collaborator failure degrades to an apology; the user's own message is
	// still classified and extracted below, so no input is lost.
	assistantText := protocol.ApologyMessage
	var usage types.Usage
	var payload *extraction.Payload
	if o.completer != nil {
		if completion, err := o.completer.Complete(ctx, systemPrompt, history); err == nil {
			payload = extraction.ParseDataBlock(completion.Text)
			assistantText = protocol.CleanResponse(completion.Text)
			usage = completion.Usage
		}
	}

	var proposals []types.FieldProposal
	var suggested sections.Section
	followUpNeeded := true
	special := ""
	complete := false
	if payload != nil && len(payload.Fields) > 0 {
		proposals = payload.Fields
		suggested = payload.SuggestedSection
		followUpNeeded = payload.FollowUpNeeded
		special = payload.SpecialContent
		complete = payload.IsComplete
	} else {
		fallback := extraction.Fallback(input.UserMessage, state, lastAssistant)
		proposals = fallback.Fields
		suggested = fallback.SuggestedSection
	}

	// "I don't have an email" answers the email question; the phrase itself
	// must not be stored as an address.
	if noEmail {
		kept := proposals[:0]
		for _, p := range proposals {
			if p.Path != "personalInfo.email" {
				kept = append(kept, p)
			}
		}
		proposals = append(kept, types.FieldProposal{Path: "hasEmail", Value: false, Confidence: 0.95})
	}

	validation := protocol.Validate(assistantText, section, state.FollowUpCount, saidNo, saidYes)
	if !validation.IsValid {
		assistantText = validation.CorrectedResponse
	}

	merged := record.Apply(input.Record, proposals)

	// Deterministic overrides and state transitions. Rules win over model
	// text whenever they disagree.
	transitioned := false
	switch {
	case contradiction.IsContradiction:
		// Hold position; the model was prompted to ask keep-or-clear, and
		// nothing is cleared here.

	case saidNo && sections.IsGated(section):
		proposals, merged = forceGateFlag(proposals, merged, state, false)
		if section == sections.Skills {
			assistantText = o.advanceSkillArea(state)
			transitioned = state.Section != section
		} else {
			assistantText = protocol.TransitionMessages[section]
			suggested = sections.Next(section)
			state.EnterSection(suggested)
			transitioned = true
		}

	case saidYes && sections.IsGated(section):
		proposals, merged = forceGateFlag(proposals, merged, state, true)
		state.Phase = types.PhaseDetails
		if section == sections.Skills {
			assistantText = protocol.SkillDetailQuestions[state.SkillArea]
		} else {
			merged = appendPlaceholder(merged, section)
			state.EntryIndex = len(merged.Array(sections.ArrayPath(section))) - 1
			assistantText = protocol.FirstDetailQuestions[section]
		}

	case section == sections.Skills:
		if text, moved := o.stepSkillChain(state, input.UserMessage, lastAssistant); text != "" {
			assistantText = text
			transitioned = moved
		}

	case sections.IsMultiEntry(section):
		text, moved, next := o.stepMultiEntry(state, &merged, input.UserMessage)
		if text != "" {
			assistantText = text
		}
		if moved {
			suggested = next
			transitioned = true
		}

	case section == sections.Review:
		if done := reviewFinished(input.UserMessage, escaped); done || complete {
			state.EnterSection(sections.Complete)
			assistantText = protocol.CompletionMessage
			complete = true
			transitioned = true
		}

	case escaped:
		next := sections.Next(section)
		state.EnterSection(next)
		assistantText = sectionOpening(next)
		suggested = next
		transitioned = true
	}

	// Honor a model-suggested section only when no rule already moved us.
	if !transitioned && suggested != "" && suggested != section && sections.IsValid(suggested) &&
		!sections.IsGated(section) && section != sections.Skills {
		state.EnterSection(suggested)
		transitioned = true
	}

	if state.Section == sections.Complete {
		complete = true
		followUpNeeded = false
	}

	if !transitioned && state.Section == section {
		state.FollowUpCount++
	}

	updateContext(input.Context, input.UserMessage, section)

	return &TurnOutcome{
		Result: types.TurnResult{
			AssistantMessage: assistantText,
			ExtractedFields:  proposals,
			SuggestedSection: suggested,
			FollowUpNeeded:   followUpNeeded,
			IsComplete:       complete,
			SpecialContent:   special,
			Usage:            usage,
		},
		Record: merged,
		State:  state,
	}, nil
}

// advanceSkillArea moves the skills chain one gate forward and returns the
// message opening the next gate, or the references opening once the chain is
// walked. Every gate in the chain is visited; none is ever skipped.
func (o *Orchestrator) advanceSkillArea(state *types.SectionState) string {
	next := sections.NextSkillArea(state.SkillArea)
	if next == sections.SkillAreaDone {
		state.EnterSection(sections.References)
		return protocol.SkillsDoneMessage
	}
	state.SkillArea = next
	state.Phase = types.PhaseGate
	return protocol.SkillGateQuestions[next]
}

// stepSkillChain handles mid-section skills turns: sub-category gates after
// the first, and list answers in the detail phase. The returned string is
// empty when the turn doesn't change chain position (free-form follow-up).
func (o *Orchestrator) stepSkillChain(state *types.SectionState, userMessage, lastAssistant string) (string, bool) {
	before := state.Section
	switch state.Phase {
	case types.PhaseGate:
		if !intents.IsGateQuestion(lastAssistant) {
			return "", false
		}
		polarity, ok := intents.YesNo(userMessage)
		if !ok {
			return "", false
		}
		if polarity == intents.PolarityYes {
			state.Phase = types.PhaseDetails
			return protocol.SkillDetailQuestions[state.SkillArea], false
		}
		msg := o.advanceSkillArea(state)
		return msg, state.Section != before

	case types.PhaseDetails:
		// The list answer was merged above; move to the next gate.
		msg := o.advanceSkillArea(state)
		return msg, state.Section != before

	default:
		return "", false
	}
}

// stepMultiEntry drives the add-another loop for work, education,
// volunteering, and references. A "yes" starts a fresh entry; a "no" opens
// the fixed successor section.
func (o *Orchestrator) stepMultiEntry(state *types.SectionState, merged *types.Record, userMessage string) (string, bool, sections.Section) {
	section := state.Section
	switch state.Phase {
	case types.PhaseAddAnother:
		polarity, ok := intents.YesNo(userMessage)
		if !ok {
			return "", false, ""
		}
		if polarity == intents.PolarityYes {
			*merged = appendPlaceholder(*merged, section)
			state.EntryIndex = len(merged.Array(sections.ArrayPath(section))) - 1
			state.Phase = types.PhaseDetails
			return protocol.FirstDetailQuestions[section], false, ""
		}
		next := sections.Next(section)
		state.EnterSection(next)
		return protocol.ContinueMessages[section], true, next

	case types.PhaseDetails:
		if entryComplete(*merged, section, state.EntryIndex) {
			state.Phase = types.PhaseAddAnother
			return protocol.AddAnotherQuestions[section], false, ""
		}
		return "", false, ""

	default:
		return "", false, ""
	}
}

// requiredEntryFields lists, per multi-entry section, the fields an entry
// needs before the forced "add another?" prompt fires.
var requiredEntryFields = map[sections.Section][]string{
	sections.Work:         {"companyName", "jobTitle", "responsibilities"},
	sections.Education:    {"institution", "degree"},
	sections.Volunteering: {"organization", "role"},
	sections.References:   {"name", "relationship"},
}

// entryComplete reports whether the entry at index has every required detail
// field filled.
func entryComplete(rec types.Record, section sections.Section, index int) bool {
	arr := rec.Array(sections.ArrayPath(section))
	if index < 0 || index >= len(arr) {
		return false
	}
	entry, ok := arr[index].(map[string]any)
	if !ok {
		return false
	}
	for _, field := range requiredEntryFields[section] {
		value, present := entry[field]
		if !present || !isFilled(value) {
			return false
		}
	}
	return true
}

func isFilled(value any) bool {
	switch v := value.(type) {
	case string:
		return v != ""
	case []any:
		return len(v) > 0
	case []string:
		return len(v) > 0
	case nil:
		return false
	default:
		return true
	}
}

// appendPlaceholder adds a fresh entry holding only an id. Placeholder
// entries are deliberately not "meaningful" for contradiction checks.
func appendPlaceholder(rec types.Record, section sections.Section) types.Record {
	path := sections.ArrayPath(section)
	if path == "" {
		return rec
	}
	arr := rec.Array(path)
	rec[path] = append(arr, map[string]any{"id": uuid.NewString()})
	return rec
}

// forceGateFlag guarantees the section's gate flag proposal exists with the
// given polarity, overriding whatever the model emitted for that path.
func forceGateFlag(proposals []types.FieldProposal, merged types.Record, state *types.SectionState, value bool) ([]types.FieldProposal, types.Record) {
	flagPath := sections.GateFlagPath(state.Section)
	if state.Section == sections.Skills {
		flagPath = sections.SkillGateFlagPath(state.SkillArea)
	}
	if flagPath == "" {
		return proposals, merged
	}

	found := false
	for i := range proposals {
		if proposals[i].Path == flagPath {
			proposals[i].Value = value
			proposals[i].Confidence = 1.0
			found = true
		}
	}
	if !found {
		proposals = append(proposals, types.FieldProposal{Path: flagPath, Value: value, Confidence: 1.0})
	}
	merged[flagPath] = value
	return proposals, merged
}

// reviewFinished reports whether the user is done reviewing.
func reviewFinished(userMessage string, escaped bool) bool {
	if escaped {
		return true
	}
	polarity, ok := intents.YesNo(userMessage)
	return ok && polarity == intents.PolarityNo
}

// sectionOpening returns the canonical opener for a section: its gate
// question when gated, otherwise the review prompt or a neutral nudge.
func sectionOpening(section sections.Section) string {
	if msg, ok := protocol.RequiredFirstMessages[section]; ok {
		return msg
	}
	if section == sections.Review {
		return protocol.ReviewPrompt
	}
	if section == sections.Complete {
		return protocol.CompletionMessage
	}
	return "Okay, let's keep going."
}

func lastAssistantMessage(history []types.Message) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == types.RoleAssistant {
			return history[i].Content
		}
	}
	return ""
}

func cloneState(state *types.SectionState) *types.SectionState {
	if state == nil {
		return types.NewSectionState()
	}
	clone := *state
	clone.Confirmed = make(map[sections.Section]bool, len(state.Confirmed))
	for k, v := range state.Confirmed {
		clone.Confirmed[k] = v
	}
	return &clone
}
