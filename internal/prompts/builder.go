package prompts

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jonathan/resume-interviewer/internal/sections"
	"github.com/jonathan/resume-interviewer/internal/types"
)

// interviewFile is the prompt file all interview templates live in.
const interviewFile = "interview.json"

// TurnPromptInput carries everything the system prompt for one turn needs.
type TurnPromptInput struct {
	Section          sections.Section
	FollowUpCount    int
	Record           types.Record
	Context          *types.ConversationContext
	RequiredQuestion string
	Contradiction    string
	Frustrated       bool
}

// BuildSystemPrompt assembles the per-turn system prompt: base instructions,
// the machine data contract, current state, and turn-specific hints.
func BuildSystemPrompt(input TurnPromptInput) string {
	var sb strings.Builder

	sb.WriteString(MustGet(interviewFile, "system_base"))
	sb.WriteString("\n\n")
	sb.WriteString(MustGet(interviewFile, "data_contract"))
	sb.WriteString("\n\n")

	recordJSON, err := json.Marshal(input.Record)
	if err != nil {
		recordJSON = []byte("{}")
	}
	sb.WriteString(Format(MustGet(interviewFile, "state_header"), map[string]string{
		"Section":       string(input.Section),
		"FollowUpCount": strconv.Itoa(input.FollowUpCount),
		"RecordJSON":    string(recordJSON),
	}))

	if input.RequiredQuestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(Format(MustGet(interviewFile, "required_first"), map[string]string{
			"Section":          string(input.Section),
			"RequiredQuestion": input.RequiredQuestion,
		}))
	}

	if input.Context != nil {
		sb.WriteString("\n\n")
		sb.WriteString(Format(MustGet(interviewFile, "context_hints"), map[string]string{
			"Tone":              string(input.Context.UserTone),
			"AnsweredTopics":    strings.Join(input.Context.AnsweredTopics, ", "),
			"MentionedEntities": strings.Join(input.Context.MentionedEntities, ", "),
		}))
	}

	if input.Contradiction != "" {
		sb.WriteString("\n\n")
		sb.WriteString(Format(MustGet(interviewFile, "contradiction_hint"), map[string]string{
			"Section": string(input.Section),
			"Summary": input.Contradiction,
		}))
	}

	if input.Frustrated {
		sb.WriteString("\n\n")
		sb.WriteString(MustGet(interviewFile, "frustration_hint"))
	}

	return sb.String()
}
