// Package sections defines the canonical interview section graph: the fixed
// category order, the yes/no gate flags guarding optional sections, and the
// skills sub-category chain.
package sections

// Section is one stage of the interview.
type Section string

// Canonical interview sections, in walk order.
const (
	Language     Section = "language"
	Intro        Section = "intro"
	Personal     Section = "personal"
	Work         Section = "work"
	Education    Section = "education"
	Volunteering Section = "volunteering"
	Skills       Section = "skills"
	References   Section = "references"
	Review       Section = "review"
	Complete     Section = "complete"
)

// Order is the canonical section sequence from first to terminal.
var Order = []Section{
	Language, Intro, Personal, Work, Education, Volunteering,
	Skills, References, Review, Complete,
}

// successors maps each section to the one entered after it is finished or
// declined. The terminal section maps to itself.
var successors = map[Section]Section{
	Language:     Intro,
	Intro:        Personal,
	Personal:     Work,
	Work:         Education,
	Education:    Volunteering,
	Volunteering: Skills,
	Skills:       References,
	References:   Review,
	Review:       Complete,
	Complete:     Complete,
}

// Next returns the fixed successor of a section.
func Next(s Section) Section {
	if next, ok := successors[s]; ok {
		return next
	}
	return Complete
}

// IsValid reports whether s is a known section.
func IsValid(s Section) bool {
	_, ok := successors[s]
	return ok
}

// gated is the set of sections entered through a yes/no gate question.
var gated = map[Section]bool{
	Work:         true,
	Education:    true,
	Volunteering: true,
	Skills:       true,
	References:   true,
}

// IsGated reports whether a section is guarded by a yes/no gate question.
func IsGated(s Section) bool {
	return gated[s]
}

// multiEntry is the set of sections whose data is an ordered list of entries
// looped via an "add another?" gate.
var multiEntry = map[Section]bool{
	Work:         true,
	Education:    true,
	Volunteering: true,
	References:   true,
}

// IsMultiEntry reports whether a section collects repeated entries.
func IsMultiEntry(s Section) bool {
	return multiEntry[s]
}

// GateFlagPath returns the record path of the boolean flag that a gate
// question for the section answers. Empty for ungated sections.
func GateFlagPath(s Section) string {
	switch s {
	case Work:
		return "hasWorkExperience"
	case Education:
		return "hasEducation"
	case Volunteering:
		return "hasVolunteering"
	case Skills:
		return "hasTechnicalSkills"
	case References:
		return "hasReferences"
	default:
		return ""
	}
}

// ArrayPath returns the record path of a multi-entry section's entry list.
// Empty for sections that are not multi-entry.
func ArrayPath(s Section) string {
	switch s {
	case Work:
		return "workExperience"
	case Education:
		return "education"
	case Volunteering:
		return "volunteering"
	case References:
		return "references"
	default:
		return ""
	}
}

// SkillArea is one sub-category of the skills section. Each area has its own
// gate question and, on assent, a detail phase collecting a list.
type SkillArea string

// Skill sub-categories, in chain order.
const (
	SkillTechnical      SkillArea = "technical"
	SkillCertifications SkillArea = "certifications"
	SkillLanguages      SkillArea = "languages"
	SkillSoft           SkillArea = "soft"

	// SkillAreaDone is the sentinel marking the chain as fully walked. The
	// exact string is relied on by stored session state; do not re-derive it.
	SkillAreaDone SkillArea = "done"
)

// SkillChain is the fixed sub-category walk order. Every gate in the chain
// must be visited even when every answer is "no".
var SkillChain = []SkillArea{
	SkillTechnical, SkillCertifications, SkillLanguages, SkillSoft,
}

// NextSkillArea returns the sub-category after a in the chain, or
// SkillAreaDone after the last one.
func NextSkillArea(a SkillArea) SkillArea {
	for i, area := range SkillChain {
		if area == a {
			if i+1 < len(SkillChain) {
				return SkillChain[i+1]
			}
			return SkillAreaDone
		}
	}
	return SkillAreaDone
}

// SkillGateFlagPath returns the record path of the gate flag for a skill
// sub-category.
func SkillGateFlagPath(a SkillArea) string {
	switch a {
	case SkillTechnical:
		return "hasTechnicalSkills"
	case SkillCertifications:
		return "hasCertifications"
	case SkillLanguages:
		return "hasLanguageSkills"
	case SkillSoft:
		return "hasSoftSkills"
	default:
		return ""
	}
}

// SkillListPath returns the record path of the list a skill sub-category
// collects in its detail phase.
func SkillListPath(a SkillArea) string {
	switch a {
	case SkillTechnical:
		return "skills.technicalSkills"
	case SkillCertifications:
		return "skills.certifications"
	case SkillLanguages:
		return "skills.languages"
	case SkillSoft:
		return "skills.softSkills"
	default:
		return ""
	}
}
