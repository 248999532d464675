// analysis/result.go
package analysis

////////////////////////////////////////////////////////////////////////
// Structured analysis shape
////////////////////////////////////////////////////////////////////////

// Result is the structured candidate-fit analysis recovered from the model's
// text output. The model is loosely instructed, not schema-enforced, so every
// field is optional at the type level: consumers check presence before
// emitting anything and absent sections are skipped, never defaulted. A Result
// is a one-shot value produced per analysis request and never mutated after
// construction.
type Result struct {
	JobSummary                 string   `json:"jobSummary,omitempty"`
	OverallFitScore            string   `json:"overallFitScore,omitempty"`
	MatchingSkillsAndStrengths []string `json:"matchingSkillsAndStrengths,omitempty"`
	AreasForDevelopment        []string `json:"areasForDevelopment,omitempty"`
	Recommendations            []string `json:"recommendations,omitempty"`

	CareerTrajectory        *CareerTrajectory        `json:"careerTrajectory,omitempty"`
	LocationAndWorkStyle    *LocationAndWorkStyle    `json:"locationAndWorkStyle,omitempty"`
	ProfessionalCredibility *ProfessionalCredibility `json:"professionalCredibility,omitempty"`
}

// CareerTrajectory describes where the candidate's career is heading and how
// that direction lines up with the role.
type CareerTrajectory struct {
	Summary           string   `json:"summary,omitempty"`
	GrowthIndicators  []string `json:"growthIndicators,omitempty"`
	AlignmentWithRole string   `json:"alignmentWithRole,omitempty"`
}

// LocationAndWorkStyle compares the candidate's location and working
// preferences against what the job offers.
type LocationAndWorkStyle struct {
	LocationCompatibility string   `json:"locationCompatibility,omitempty"`
	RemoteWorkAlignment   string   `json:"remoteWorkAlignment,omitempty"`
	CommitmentLevelMatch  string   `json:"commitmentLevelMatch,omitempty"`
	PotentialConcerns     []string `json:"potentialConcerns,omitempty"`
}

// ProfessionalCredibility captures how complete and credible the candidate's
// public profile looks.
type ProfessionalCredibility struct {
	ProfileQuality        string   `json:"profileQuality,omitempty"`
	ProfessionalPresence  []string `json:"professionalPresence,omitempty"`
	CredibilityIndicators []string `json:"credibilityIndicators,omitempty"`
}
