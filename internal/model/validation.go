package model

// ConfidenceTier expresses how much trust to place in a validation score.
type ConfidenceTier string

// Confidence tier constants.
const (
	ConfidenceHigh   ConfidenceTier = "high"
	ConfidenceMedium ConfidenceTier = "medium"
	ConfidenceLow    ConfidenceTier = "low"
)

// RiskTier classifies delivery risk for a prospective engagement.
type RiskTier string

// Risk tier constants.
const (
	RiskLow      RiskTier = "low"
	RiskMedium   RiskTier = "medium"
	RiskHigh     RiskTier = "high"
	RiskCritical RiskTier = "critical"
)

// CategoryScores holds the six checklist-percentage sub-scores, each in
// [0,100].
type CategoryScores struct {
	Financial     int
	Authority     int
	Project       int
	Technical     int
	Communication int
	Success       int
}

// ValidationResult is the readiness gate's derived view over a prospect. It
// is recomputed from scratch on each evaluation and never hand-mutated.
type ValidationResult struct {
	Overall            int
	Categories         CategoryScores
	Confidence         ConfidenceTier
	Risk               RiskTier
	Blockers           []string
	NextActions        []string
	SuccessProbability int
	IsReadyForProject  bool
}
