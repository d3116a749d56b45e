// Package types provides type definitions for structured data used throughout
// the skill gap analyzer.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// KeywordCandidate is a single extracted job-posting term while it moves
// through scoring and deduplication. Candidates live for one analysis only.
type KeywordCandidate struct {
	Text       string // original wording, used for display
	Score      int    // importance band (0/30/60/80/100)
	Normalized string // lowercase alphanumeric form, used for comparison
}

// SkillCandidate is a single user-reported skill after scoring.
type SkillCandidate struct {
	Text       string
	Score      int
	Normalized string
}

// MatchResult is the outcome of one analysis. It is never mutated after
// assembly and is not persisted anywhere.
type MatchResult struct {
	PresentSkills   []string `json:"presentSkills"`
	MissingSkills   []string `json:"missingSkills"`
	MatchPercentage int      `json:"matchPercentage"`
	TotalDisplayed  int      `json:"totalDisplayed"`
	PresentCount    int      `json:"presentCount"`
}

// AnalyzeRequest carries the two input sequences for an analysis. The
// keyword list comes from the upstream extraction service; the skills come
// from the user's profile.
type AnalyzeRequest struct {
	JobDescriptionKeywords []string `json:"jobDescriptionKeywords" validate:"max=1000,dive,max=300"`
	UserSkills             []string `json:"userSkills" validate:"max=500,dive,max=300"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
