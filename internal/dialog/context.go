package dialog

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-interviewer/internal/intents"
	"github.com/jonathan/resume-interviewer/internal/sections"
	"github.com/jonathan/resume-interviewer/internal/types"
)

// entityPattern picks out capitalized multi-word runs ("Acme Corp") likely to
// be proper nouns worth reminding the model about.
var entityPattern = regexp.MustCompile(`\b[A-Z][a-zA-Z&.]+(?:\s+[A-Z][a-zA-Z&.]+)*\b`)

// maxTrackedEntities bounds the hint list so prompts stay small.
const maxTrackedEntities = 20

// updateContext mutates the conversation context once per turn: tone,
// answered topics, mentioned entities, and the per-section follow-up tally.
func updateContext(ctx *types.ConversationContext, userMessage string, section sections.Section) {
	if ctx == nil {
		return
	}

	ctx.UserTone = types.Tone(intents.DetectTone(userMessage))

	if ctx.FollowUpCounts == nil {
		ctx.FollowUpCounts = make(map[sections.Section]int)
	}
	ctx.FollowUpCounts[section]++

	topic := string(section)
	if !containsString(ctx.AnsweredTopics, topic) {
		ctx.AnsweredTopics = append(ctx.AnsweredTopics, topic)
	}

	for _, entity := range entityPattern.FindAllString(userMessage, -1) {
		if len(entity) < 3 || len(ctx.MentionedEntities) >= maxTrackedEntities {
			continue
		}
		if !containsString(ctx.MentionedEntities, entity) {
			ctx.MentionedEntities = append(ctx.MentionedEntities, entity)
		}
	}
}

func containsString(list []string, target string) bool {
	for _, item := range list {
		if strings.EqualFold(item, target) {
			return true
		}
	}
	return false
}
