// Package protocol enforces the interaction contract on candidate assistant
// messages: exact gate wording on first entry into a gated section, canonical
// transitions after a denial, and stripping of the model's data block.
package protocol

import "github.com/jonathan/resume-interviewer/internal/sections"

// RequiredFirstMessages holds the exact question that must open each
// yes/no-gated section. The wording is asserted byte-for-byte by the
// validator (modulo a short lead-in), so treat these as fixed UI copy.
var RequiredFirstMessages = map[sections.Section]string{
	sections.Work:         "Do you have any work experience? (Yes or No)",
	sections.Education:    "Do you have any education or training you'd like to include? (Yes or No)",
	sections.Volunteering: "Do you have any volunteering experience? (Yes or No)",
	sections.Skills:       "Do you have any technical skills to include? (Yes or No)",
	sections.References:   "Do you have any references you'd like to include? (Yes or No)",
}

// SkillGateQuestions holds the gate question for each skills sub-category.
// The technical gate doubles as the skills section's required first message.
var SkillGateQuestions = map[sections.SkillArea]string{
	sections.SkillTechnical:      "Do you have any technical skills to include? (Yes or No)",
	sections.SkillCertifications: "Do you have any certifications or licenses? (Yes or No)",
	sections.SkillLanguages:      "Do you have any language skills to include? (Yes or No)",
	sections.SkillSoft:           "Do you have any soft skills you'd like to highlight? (Yes or No)",
}

// SkillDetailQuestions holds the detail prompt asked after a "yes" at a
// skills sub-category gate.
var SkillDetailQuestions = map[sections.SkillArea]string{
	sections.SkillTechnical:      "What technical skills do you have? You can list several, separated by commas.",
	sections.SkillCertifications: "What certifications or licenses do you hold?",
	sections.SkillLanguages:      "What languages do you speak?",
	sections.SkillSoft:           "What soft skills would you like to highlight?",
}

// TransitionMessages holds the canonical acknowledgement emitted when a user
// declines a gated section. Each one acknowledges the "no" and opens the
// fixed successor section.
var TransitionMessages = map[sections.Section]string{
	sections.Work:         "No problem, we can skip work experience. " + RequiredFirstMessages[sections.Education],
	sections.Education:    "That's fine, let's move on. " + RequiredFirstMessages[sections.Volunteering],
	sections.Volunteering: "Okay, we'll skip volunteering. " + RequiredFirstMessages[sections.Skills],
	sections.Skills:       "No problem. " + RequiredFirstMessages[sections.References],
	sections.References:   "That's completely fine. Many resumes note that references are available upon request. Let's review what we have so far.",
}

// AddAnotherQuestions holds the forced continuation prompt after a
// multi-entry item is collected.
var AddAnotherQuestions = map[sections.Section]string{
	sections.Work:         "Would you like to add another job? (Yes or No)",
	sections.Education:    "Would you like to add another degree or program? (Yes or No)",
	sections.Volunteering: "Would you like to add another volunteering experience? (Yes or No)",
	sections.References:   "Would you like to add another reference? (Yes or No)",
}

// FirstDetailQuestions holds the canonical opening detail question asked
// after a "yes" at a multi-entry section's gate.
var FirstDetailQuestions = map[sections.Section]string{
	sections.Work:         "Great! What company did you work for?",
	sections.Education:    "Great! What school, college, or university did you attend?",
	sections.Volunteering: "Wonderful! What organization did you volunteer with?",
	sections.References:   "Great! What is your reference's name?",
}

// ContinueMessages holds the acknowledgement emitted when a multi-entry
// section finishes via "no" at the add-another gate. Each one opens the
// fixed successor section.
var ContinueMessages = map[sections.Section]string{
	sections.Work:         "Thanks, that's a solid work history. " + RequiredFirstMessages[sections.Education],
	sections.Education:    "Thanks! " + RequiredFirstMessages[sections.Volunteering],
	sections.Volunteering: "Thank you. " + RequiredFirstMessages[sections.Skills],
	sections.References:   "Thanks! Let's review what we have so far.",
}

// SkillsDoneMessage closes the skills chain and opens references.
var SkillsDoneMessage = "Thanks, your skills are all set. " + RequiredFirstMessages[sections.References]

// ReviewPrompt opens the review stage.
const ReviewPrompt = "Here's everything we've collected. Would you like to change anything before we finish? (Yes or No)"

// CompletionMessage closes the interview.
const CompletionMessage = "Your resume is complete! You can now download it or make further edits any time."

// ApologyMessage is surfaced when the completion collaborator fails. The
// user's own input is still classified and extracted, so nothing is lost.
const ApologyMessage = "Sorry, I had trouble processing that. Could you try again?"
