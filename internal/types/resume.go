// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/google/uuid"
)

// Proficiency is the self-reported level attached to a skill
type Proficiency string

// Proficiency levels, from lowest to highest
const (
	ProficiencyBeginner     Proficiency = "Beginner"
	ProficiencyIntermediate Proficiency = "Intermediate"
	ProficiencyAdvanced     Proficiency = "Advanced"
	ProficiencyExpert       Proficiency = "Expert"
)

// DefaultSummary is used when no professional summary could be found
const DefaultSummary = "Professional with diverse experience."

// Valid reports whether p is one of the four known levels
func (p Proficiency) Valid() bool {
	switch p {
	case ProficiencyBeginner, ProficiencyIntermediate, ProficiencyAdvanced, ProficiencyExpert:
		return true
	default:
		return false
	}
}

// PersonalInfo holds the contact block and summary of a resume
type PersonalInfo struct {
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Summary []string `json:"summary"`
}

// ExperienceEntry is a single job with its achievement bullets
type ExperienceEntry struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Period      string   `json:"period"`
	Description []string `json:"description"`
}

// EducationEntry is a single degree
type EducationEntry struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	GPA         string `json:"gpa,omitempty"`
}

// SkillEntry is a named skill with a proficiency level
type SkillEntry struct {
	Name        string      `json:"name"`
	Proficiency Proficiency `json:"proficiency"`
}

// ProjectEntry is a portfolio project
type ProjectEntry struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  []string `json:"description"`
	Technologies []string `json:"technologies"`
	Period       string   `json:"period"`
	Link         string   `json:"link,omitempty"`
}

// ParseResult is the structured output of parsing one plain-text resume.
// Experiences, Education and Skills always hold at least one entry so that
// editors can render an empty form row.
type ParseResult struct {
	PersonalInfo PersonalInfo      `json:"personalInfo"`
	Experiences  []ExperienceEntry `json:"experiences"`
	Education    []EducationEntry  `json:"education"`
	Skills       []SkillEntry      `json:"skills"`
	Projects     []ProjectEntry    `json:"projects"`
}

// NewID returns a fresh identifier for a list entry. IDs only key UI rows and
// carry no meaning across parses.
func NewID() string {
	return uuid.NewString()
}

// NewExperienceEntry returns an empty experience entry with a fresh ID
func NewExperienceEntry() *ExperienceEntry {
	return &ExperienceEntry{ID: NewID()}
}

// NewEducationEntry returns an empty education entry with a fresh ID
func NewEducationEntry() *EducationEntry {
	return &EducationEntry{ID: NewID()}
}

// DefaultPersonalInfo returns personal info with only the placeholder summary
func DefaultPersonalInfo() PersonalInfo {
	return PersonalInfo{Summary: []string{DefaultSummary}}
}

// DefaultExperiences returns the single placeholder experience row
func DefaultExperiences() []ExperienceEntry {
	return []ExperienceEntry{{
		ID:          NewID(),
		Description: []string{""},
	}}
}

// DefaultEducation returns the single placeholder education row
func DefaultEducation() []EducationEntry {
	return []EducationEntry{{ID: NewID()}}
}

// DefaultSkills returns the single placeholder skill row
func DefaultSkills() []SkillEntry {
	return []SkillEntry{{Proficiency: ProficiencyIntermediate}}
}

// DefaultParseResult returns the result used when nothing could be extracted
func DefaultParseResult() *ParseResult {
	return &ParseResult{
		PersonalInfo: DefaultPersonalInfo(),
		Experiences:  DefaultExperiences(),
		Education:    DefaultEducation(),
		Skills:       DefaultSkills(),
		Projects:     []ProjectEntry{},
	}
}
