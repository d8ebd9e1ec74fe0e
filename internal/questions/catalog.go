// Package questions holds the guided-mode question catalog: an ordered list
// of question definitions per section, each with a field path, input kind,
// and a skip predicate over the partial record. The catalog is configuration,
// loaded once, never mutated at runtime.
package questions

import (
	"github.com/jonathan/resume-interviewer/internal/sections"
	"github.com/jonathan/resume-interviewer/internal/types"
)

// InputKind describes the expected answer shape for a question.
type InputKind string

// Question input kinds.
const (
	InputText  InputKind = "text"
	InputEmail InputKind = "email"
	InputPhone InputKind = "phone"
	InputDate  InputKind = "date"
	InputYesNo InputKind = "yesno"
	InputList  InputKind = "list"
)

// Definition is one question in the catalog. Skip returns true when the
// question should not be asked given the current record.
type Definition struct {
	ID        string
	Category  sections.Section
	FieldPath string
	Prompt    string
	Kind      InputKind
	Required  bool
	Skip      func(record types.Record) bool
}

// never is the default skip predicate.
func never(types.Record) bool { return false }

// flagIsFalse skips a question when a gate flag was answered "no".
func flagIsFalse(flag string) func(types.Record) bool {
	return func(r types.Record) bool {
		v, present := r[flag]
		if !present {
			return false
		}
		b, _ := v.(bool)
		return !b
	}
}

// Catalog is the full ordered question list. Multi-entry detail questions use
// index 0 paths; the guided walker rewrites the index for later entries.
var Catalog = []Definition{
	{ID: "language", Category: sections.Language, FieldPath: "language", Kind: InputText, Required: false,
		Prompt: "Which language would you like to use for your resume?", Skip: never},

	{ID: "intro-welcome", Category: sections.Intro, FieldPath: "personalInfo.summary", Kind: InputText, Required: false,
		Prompt: "Welcome! Tell me a little about yourself and what kind of work you're looking for.", Skip: never},

	{ID: "personal-name", Category: sections.Personal, FieldPath: "personalInfo.fullName", Kind: InputText, Required: true,
		Prompt: "What is your full name?", Skip: never},
	{ID: "personal-email", Category: sections.Personal, FieldPath: "personalInfo.email", Kind: InputEmail, Required: false,
		Prompt: "What email address should appear on your resume?",
		Skip: func(r types.Record) bool {
			v, present := r["hasEmail"]
			if !present {
				return false
			}
			b, _ := v.(bool)
			return !b
		}},
	{ID: "personal-phone", Category: sections.Personal, FieldPath: "personalInfo.phone", Kind: InputPhone, Required: false,
		Prompt: "What phone number should appear on your resume?", Skip: never},
	{ID: "personal-location", Category: sections.Personal, FieldPath: "personalInfo.location", Kind: InputText, Required: false,
		Prompt: "What city or area are you based in?", Skip: never},

	{ID: "work-gate", Category: sections.Work, FieldPath: "hasWorkExperience", Kind: InputYesNo, Required: true,
		Prompt: "Do you have any work experience? (Yes or No)", Skip: never},
	{ID: "work-company", Category: sections.Work, FieldPath: "workExperience[0].companyName", Kind: InputText, Required: true,
		Prompt: "What company did you work for?", Skip: flagIsFalse("hasWorkExperience")},
	{ID: "work-title", Category: sections.Work, FieldPath: "workExperience[0].jobTitle", Kind: InputText, Required: true,
		Prompt: "What was your job title?", Skip: flagIsFalse("hasWorkExperience")},
	{ID: "work-start", Category: sections.Work, FieldPath: "workExperience[0].startDate", Kind: InputDate, Required: false,
		Prompt: "When did you start that job?", Skip: flagIsFalse("hasWorkExperience")},
	{ID: "work-current", Category: sections.Work, FieldPath: "workExperience[0].isCurrentJob", Kind: InputYesNo, Required: false,
		Prompt: "Is this your current job? (Yes or No)", Skip: flagIsFalse("hasWorkExperience")},
	{ID: "work-end", Category: sections.Work, FieldPath: "workExperience[0].endDate", Kind: InputDate, Required: false,
		Prompt: "When did you leave that job?",
		Skip: func(r types.Record) bool {
			if flagIsFalse("hasWorkExperience")(r) {
				return true
			}
			arr := r.Array("workExperience")
			if len(arr) == 0 {
				return false
			}
			entry, _ := arr[len(arr)-1].(map[string]any)
			current, _ := entry["isCurrentJob"].(bool)
			return current
		}},
	{ID: "work-responsibilities", Category: sections.Work, FieldPath: "workExperience[0].responsibilities", Kind: InputList, Required: false,
		Prompt: "What were your main responsibilities in that role?", Skip: flagIsFalse("hasWorkExperience")},

	{ID: "education-gate", Category: sections.Education, FieldPath: "hasEducation", Kind: InputYesNo, Required: true,
		Prompt: "Do you have any education or training you'd like to include? (Yes or No)", Skip: never},
	{ID: "education-institution", Category: sections.Education, FieldPath: "education[0].institution", Kind: InputText, Required: true,
		Prompt: "What school, college, or university did you attend?", Skip: flagIsFalse("hasEducation")},
	{ID: "education-degree", Category: sections.Education, FieldPath: "education[0].degree", Kind: InputText, Required: false,
		Prompt: "What degree or qualification did you earn?", Skip: flagIsFalse("hasEducation")},
	{ID: "education-field", Category: sections.Education, FieldPath: "education[0].fieldOfStudy", Kind: InputText, Required: false,
		Prompt: "What was your field of study?", Skip: flagIsFalse("hasEducation")},
	{ID: "education-graduation", Category: sections.Education, FieldPath: "education[0].graduationYear", Kind: InputDate, Required: false,
		Prompt: "When did you graduate?", Skip: flagIsFalse("hasEducation")},

	{ID: "volunteering-gate", Category: sections.Volunteering, FieldPath: "hasVolunteering", Kind: InputYesNo, Required: true,
		Prompt: "Do you have any volunteering experience? (Yes or No)", Skip: never},
	{ID: "volunteering-organization", Category: sections.Volunteering, FieldPath: "volunteering[0].organization", Kind: InputText, Required: true,
		Prompt: "What organization did you volunteer with?", Skip: flagIsFalse("hasVolunteering")},
	{ID: "volunteering-role", Category: sections.Volunteering, FieldPath: "volunteering[0].role", Kind: InputText, Required: false,
		Prompt: "What was your role there?", Skip: flagIsFalse("hasVolunteering")},

	{ID: "skills-technical-gate", Category: sections.Skills, FieldPath: "hasTechnicalSkills", Kind: InputYesNo, Required: true,
		Prompt: "Do you have any technical skills to include? (Yes or No)", Skip: never},
	{ID: "skills-technical", Category: sections.Skills, FieldPath: "skills.technicalSkills", Kind: InputList, Required: false,
		Prompt: "What technical skills do you have? You can list several, separated by commas.", Skip: flagIsFalse("hasTechnicalSkills")},
	{ID: "skills-certifications-gate", Category: sections.Skills, FieldPath: "hasCertifications", Kind: InputYesNo, Required: true,
		Prompt: "Do you have any certifications or licenses? (Yes or No)", Skip: never},
	{ID: "skills-certifications", Category: sections.Skills, FieldPath: "skills.certifications", Kind: InputList, Required: false,
		Prompt: "What certifications or licenses do you hold?", Skip: flagIsFalse("hasCertifications")},
	{ID: "skills-languages-gate", Category: sections.Skills, FieldPath: "hasLanguageSkills", Kind: InputYesNo, Required: true,
		Prompt: "Do you have any language skills to include? (Yes or No)", Skip: never},
	{ID: "skills-languages", Category: sections.Skills, FieldPath: "skills.languages", Kind: InputList, Required: false,
		Prompt: "What languages do you speak?", Skip: flagIsFalse("hasLanguageSkills")},
	{ID: "skills-soft-gate", Category: sections.Skills, FieldPath: "hasSoftSkills", Kind: InputYesNo, Required: true,
		Prompt: "Do you have any soft skills you'd like to highlight? (Yes or No)", Skip: never},
	{ID: "skills-soft", Category: sections.Skills, FieldPath: "skills.softSkills", Kind: InputList, Required: false,
		Prompt: "What soft skills would you like to highlight?", Skip: flagIsFalse("hasSoftSkills")},

	{ID: "references-gate", Category: sections.References, FieldPath: "hasReferences", Kind: InputYesNo, Required: true,
		Prompt: "Do you have any references you'd like to include? (Yes or No)", Skip: never},
	{ID: "references-name", Category: sections.References, FieldPath: "references[0].name", Kind: InputText, Required: true,
		Prompt: "What is your reference's name?", Skip: flagIsFalse("hasReferences")},
	{ID: "references-relationship", Category: sections.References, FieldPath: "references[0].relationship", Kind: InputText, Required: false,
		Prompt: "How do you know them?", Skip: flagIsFalse("hasReferences")},
	{ID: "references-contact", Category: sections.References, FieldPath: "references[0].contactInfo", Kind: InputText, Required: false,
		Prompt: "How can they be reached? Their phone or email is fine.", Skip: flagIsFalse("hasReferences")},

	{ID: "review", Category: sections.Review, FieldPath: "", Kind: InputText, Required: false,
		Prompt: "Here's everything we've collected. Would you like to change anything before we finish?", Skip: never},
}
