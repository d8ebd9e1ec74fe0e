package ingestion

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-interviewer/internal/extraction"
	"github.com/jonathan/resume-interviewer/internal/types"
)

// Pre-fill confidence levels. Heuristics over pasted text are weaker than a
// direct interview answer, so anything uncertain stays below a detail answer.
const (
	contactConfidence = 0.9
	guessConfidence   = 0.75
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[\s.\-]?)?(\(?\d{3}\)?[\s.\-]?)\d{3}[\s.\-]?\d{4}`)
	namePattern  = regexp.MustCompile(`^[A-Z][a-zA-Z'\-]+(?: [A-Z][a-zA-Z'\-]+){1,3}$`)

	skillsHeading = regexp.MustCompile(`(?i)^#*\s*(technical )?skills\b[:\s]*`)
)

// Prefill scans cleaned resume text and proposes fields for the interview
// record. Everything goes through the normal confidence-gated merge, so a bad
// guess can still be rejected or later corrected in conversation.
func Prefill(cleanedText string) []types.FieldProposal {
	if strings.TrimSpace(cleanedText) == "" {
		return nil
	}

	var proposals []types.FieldProposal

	if email := emailPattern.FindString(cleanedText); email != "" {
		proposals = append(proposals,
			types.FieldProposal{Path: "personalInfo.email", Value: email, Confidence: contactConfidence},
			types.FieldProposal{Path: "hasEmail", Value: true, Confidence: contactConfidence},
		)
	}

	if phone := phonePattern.FindString(cleanedText); phone != "" {
		proposals = append(proposals, types.FieldProposal{
			Path: "personalInfo.phone", Value: strings.TrimSpace(phone), Confidence: contactConfidence,
		})
	}

	lines := strings.Split(cleanedText, "\n")

	// Resumes conventionally lead with the candidate's name.
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if namePattern.MatchString(line) {
			proposals = append(proposals, types.FieldProposal{
				Path: "personalInfo.fullName", Value: line, Confidence: guessConfidence,
			})
		}
		break
	}

	if skills := extractSkillLines(lines); len(skills) > 0 {
		proposals = append(proposals,
			types.FieldProposal{Path: "skills.technicalSkills", Value: skills, Confidence: guessConfidence},
			types.FieldProposal{Path: "hasTechnicalSkills", Value: true, Confidence: guessConfidence},
		)
	}

	return proposals
}

// extractSkillLines collects list items under a "Skills" heading until the
// next heading or blank-line break.
func extractSkillLines(lines []string) []string {
	var skills []string
	inSkills := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if skillsHeading.MatchString(trimmed) {
			inSkills = true
			// An inline list ("Skills: Go, SQL") is already complete.
			if rest := skillsHeading.ReplaceAllString(trimmed, ""); rest != "" {
				skills = append(skills, extraction.SplitList(rest)...)
			}
			continue
		}
		if !inSkills {
			continue
		}
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			break
		}
		item := strings.TrimLeft(trimmed, "-*•· ")
		skills = append(skills, extraction.SplitList(item)...)
	}
	return skills
}
