package dialog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-interviewer/internal/extraction"
	"github.com/jonathan/resume-interviewer/internal/intents"
	"github.com/jonathan/resume-interviewer/internal/protocol"
	"github.com/jonathan/resume-interviewer/internal/questions"
	"github.com/jonathan/resume-interviewer/internal/record"
	"github.com/jonathan/resume-interviewer/internal/sections"
	"github.com/jonathan/resume-interviewer/internal/types"
)

// GuidedTurn is the outcome of one guided-mode step: the next prompt to show
// and whether the interview is over.
type GuidedTurn struct {
	Prompt     string `json:"prompt"`
	QuestionID string `json:"questionId,omitempty"`
	IsComplete bool   `json:"isComplete"`
}

// indexZero matches the catalog's placeholder entry index.
var indexZero = regexp.MustCompile(`\[0\]`)

// StartGuided positions a fresh guided state at the first catalog question.
func StartGuided(state *GuidedState) GuidedTurn {
	q := questions.FirstInSection(state.Record, sections.Language)
	if q == nil {
		return GuidedTurn{Prompt: protocol.CompletionMessage, IsComplete: true}
	}
	state.Section.EnterSection(q.Category)
	state.QuestionID = q.ID
	return GuidedTurn{Prompt: q.Prompt, QuestionID: q.ID}
}

// AnswerGuided records the answer to the current catalog question and walks to
// the next one, honoring skip predicates, multi-entry loops, and the review
// stage. The record and state are mutated in place.
func AnswerGuided(state *GuidedState, answer string) (GuidedTurn, error) {
	if state.Section.Section == sections.Complete {
		return GuidedTurn{Prompt: protocol.CompletionMessage, IsComplete: true}, nil
	}

	if state.Section.Phase == types.PhaseAddAnother {
		return guidedAddAnother(state, answer), nil
	}

	q := questions.ByID(state.QuestionID)
	if q == nil {
		return GuidedTurn{}, fmt.Errorf("guided interview: unknown question %q", state.QuestionID)
	}

	if q.Category == sections.Review {
		return guidedReview(state, answer), nil
	}

	value, ok := parseAnswer(q, answer)
	if !ok {
		// Unparseable yes/no; ask again rather than guessing.
		return GuidedTurn{Prompt: q.Prompt, QuestionID: q.ID}, nil
	}

	// "I don't have an email" at the email question lowers the flag instead
	// of storing the phrase as an address.
	if q.Kind == questions.InputEmail && intents.DetectNoEmail(answer) {
		state.Record = record.Apply(state.Record, []types.FieldProposal{
			{Path: "hasEmail", Value: false, Confidence: 1.0},
		})
		return guidedAdvance(state, q), nil
	}

	if q.FieldPath != "" && value != nil {
		path := rewriteEntryIndex(q.FieldPath, state.Section.EntryIndex)
		state.Record = record.Apply(state.Record, []types.FieldProposal{
			{Path: path, Value: value, Confidence: 1.0},
		})
	}

	// Entering a multi-entry section opens its first entry.
	if q.Kind == questions.InputYesNo && value == true && sections.IsMultiEntry(q.Category) &&
		q.FieldPath == sections.GateFlagPath(q.Category) {
		state.Record = appendPlaceholder(state.Record, q.Category)
		state.Section.EntryIndex = len(state.Record.Array(sections.ArrayPath(q.Category))) - 1
	}

	return guidedAdvance(state, q), nil
}

// guidedAdvance moves to the next askable question, crossing section
// boundaries and inserting the add-another stop for multi-entry sections.
func guidedAdvance(state *GuidedState, current *questions.Definition) GuidedTurn {
	if next := questions.Next(state.Record, current.ID); next != nil {
		state.QuestionID = next.ID
		return GuidedTurn{Prompt: next.Prompt, QuestionID: next.ID}
	}

	section := current.Category
	if sections.IsMultiEntry(section) && state.Record.Flag(sections.GateFlagPath(section)) {
		state.Section.Phase = types.PhaseAddAnother
		return GuidedTurn{Prompt: protocol.AddAnotherQuestions[section]}
	}
	return enterNextSection(state, section)
}

// guidedAddAnother handles the yes/no at a multi-entry continuation stop.
func guidedAddAnother(state *GuidedState, answer string) GuidedTurn {
	section := state.Section.Section
	polarity, ok := intents.YesNo(answer)
	if !ok {
		return GuidedTurn{Prompt: protocol.AddAnotherQuestions[section]}
	}
	if polarity == intents.PolarityNo {
		return enterNextSection(state, section)
	}

	state.Record = appendPlaceholder(state.Record, section)
	state.Section.EntryIndex = len(state.Record.Array(sections.ArrayPath(section))) - 1
	state.Section.Phase = types.PhaseDetails

	// Re-run the section's detail questions, skipping the gate.
	gate := questions.FirstInSection(state.Record, section)
	if gate == nil {
		return enterNextSection(state, section)
	}
	next := questions.Next(state.Record, gate.ID)
	if next == nil {
		return enterNextSection(state, section)
	}
	state.QuestionID = next.ID
	return GuidedTurn{Prompt: next.Prompt, QuestionID: next.ID}
}

// guidedReview finishes on "no" and loops otherwise.
func guidedReview(state *GuidedState, answer string) GuidedTurn {
	polarity, ok := intents.YesNo(answer)
	if (ok && polarity == intents.PolarityNo) || intents.DetectEscapePhrase(answer) {
		state.Section.EnterSection(sections.Complete)
		return GuidedTurn{Prompt: protocol.CompletionMessage, IsComplete: true}
	}
	return GuidedTurn{
		Prompt:     "Okay, tell me the field and the new value, or answer No when you're happy with it. " + protocol.ReviewPrompt,
		QuestionID: state.QuestionID,
	}
}

// enterNextSection walks forward from a finished section to the first section
// that still has an askable question.
func enterNextSection(state *GuidedState, finished sections.Section) GuidedTurn {
	for next := sections.Next(finished); ; next = sections.Next(next) {
		if next == sections.Complete {
			state.Section.EnterSection(sections.Complete)
			return GuidedTurn{Prompt: protocol.CompletionMessage, IsComplete: true}
		}
		if q := questions.FirstInSection(state.Record, next); q != nil {
			state.Section.EnterSection(next)
			state.Section.Phase = types.PhaseDetails
			state.QuestionID = q.ID
			return GuidedTurn{Prompt: q.Prompt, QuestionID: q.ID}
		}
		finished = next
	}
}

// parseAnswer converts raw text into the value shape the question expects.
// The second return is false only for an unreadable yes/no.
func parseAnswer(q *questions.Definition, answer string) (any, bool) {
	trimmed := strings.TrimSpace(answer)
	switch q.Kind {
	case questions.InputYesNo:
		polarity, ok := intents.YesNo(trimmed)
		if !ok {
			return nil, false
		}
		return polarity == intents.PolarityYes, true
	case questions.InputList:
		if trimmed == "" {
			return nil, true
		}
		return extraction.SplitList(trimmed), true
	default:
		if trimmed == "" {
			return nil, true
		}
		if q.ID == "education-degree" {
			return extraction.ExpandDegree(trimmed), true
		}
		return trimmed, true
	}
}

// rewriteEntryIndex retargets a catalog path at the entry currently open.
func rewriteEntryIndex(path string, entryIndex int) string {
	if entryIndex <= 0 {
		return path
	}
	return indexZero.ReplaceAllString(path, fmt.Sprintf("[%d]", entryIndex))
}
