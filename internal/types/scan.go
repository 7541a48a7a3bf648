// Package types defines the shared request and result types for the ATS scanner.
package types

import (
	"github.com/go-playground/validator/v10"
)

// ScanRequest represents a request to score a resume against a target role.
type ScanRequest struct {
	ResumeText     string `json:"resumeText" validate:"required"`
	TargetJobTitle string `json:"targetJobTitle,omitempty"`
}

// Validate validates the ScanRequest using the validator.
func (r *ScanRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SectionName identifies one of the six fixed resume sections.
type SectionName string

// The section set is fixed and closed; detection never produces other names.
const (
	SectionSummary      SectionName = "summary"
	SectionSkills       SectionName = "skills"
	SectionExperience   SectionName = "experience"
	SectionEducation    SectionName = "education"
	SectionProjects     SectionName = "projects"
	SectionCertificates SectionName = "certificates"
)

// AllSections lists every section name in detection order.
var AllSections = []SectionName{
	SectionSummary,
	SectionSkills,
	SectionExperience,
	SectionEducation,
	SectionProjects,
	SectionCertificates,
}

// SectionHit records whether a section header was found and the text window
// following it. Content is empty iff Found is false.
type SectionHit struct {
	Found   bool   `json:"found"`
	Content string `json:"content,omitempty"`
}

// Extraction holds the lexical signal pulled from a resume: unique
// lower-cased word tokens and ordered phrase-catalogue occurrences.
type Extraction struct {
	Words   map[string]bool
	Phrases []string
}

// ATSResult is the engine's sole output artifact.
type ATSResult struct {
	Score           int           `json:"score"`
	TotalKeywords   int           `json:"totalKeywords"`
	MatchedKeywords []string      `json:"matchedKeywords"`
	MissingKeywords []string      `json:"missingKeywords"`
	PassedSections  []string      `json:"passedSections"`
	Suggestions     []string      `json:"suggestions"`
	JobTitle        string        `json:"jobTitle"`
	Sections        []SectionName `json:"sections"`
}

// Clone returns a deep copy of the result so history entries cannot be
// corrupted by later mutation of the live result.
func (r *ATSResult) Clone() *ATSResult {
	if r == nil {
		return nil
	}
	out := *r
	out.MatchedKeywords = append([]string(nil), r.MatchedKeywords...)
	out.MissingKeywords = append([]string(nil), r.MissingKeywords...)
	out.PassedSections = append([]string(nil), r.PassedSections...)
	out.Suggestions = append([]string(nil), r.Suggestions...)
	out.Sections = append([]SectionName(nil), r.Sections...)
	return &out
}
