// Package validation implements the readiness gate that decides hard
// go/no-go handoff eligibility for a prospect.
//
// The gate is stricter than the funnel's per-turn lead score: it runs six
// category checklists, classifies risk and confidence, lists every active
// blocker independently, and only reports readiness when the overall score
// clears 75 AND no blockers remain. The result is a derived view over the
// prospect, recomputed from scratch on every call.
package validation

import (
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/model"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/scoring"
)

// Gate thresholds.
const (
	readinessThreshold = 75

	riskLowOverall     = 85
	riskLowCategory    = 80
	riskMediumOverall  = 70
	riskMediumCategory = 60
	riskHighOverall    = 50

	confidenceHighOverall   = 85
	confidenceMediumOverall = 60
)

// Success probability nudges.
const (
	bonusBudgetConfirmed    = 5
	bonusDecisionMaker      = 5
	bonusClearRequirements  = 5
	penaltyUnrealisticTime  = 10
	penaltyUnrealisticMoney = 15
)

// Blocker messages. Each blocker is checked independently; a prospect may
// carry several at once.
const (
	BlockerBudget        = "Budget not confirmed"
	BlockerDecisionMaker = "Decision maker not identified"
	BlockerRequirements  = "Requirements unclear"
	BlockerTechnical     = "Technical requirements unclear"
)

// blockerCheck pairs a blocker message with its trigger predicate.
type blockerCheck struct {
	message string
	active  func(*model.Prospect) bool
}

var blockerChecks = []blockerCheck{
	{BlockerBudget, func(p *model.Prospect) bool { return p.Project.Budget == "" }},
	{BlockerDecisionMaker, func(p *model.Prospect) bool { return !p.Qualification.DecisionMakerIdentified }},
	{BlockerRequirements, func(p *model.Prospect) bool { return len(p.Project.Requirements) == 0 }},
	{BlockerTechnical, func(p *model.Prospect) bool { return p.Project.Type == "" }},
}

// Evaluate runs the full gate over a prospect snapshot and returns a fresh
// ValidationResult. It has no side effects on the prospect.
func Evaluate(p *model.Prospect) model.ValidationResult {
	categories := scoring.Categories(p)
	overall := scoring.Overall(categories)

	blockers := make([]string, 0, len(blockerChecks))
	for _, check := range blockerChecks {
		if check.active(p) {
			blockers = append(blockers, check.message)
		}
	}

	result := model.ValidationResult{
		Overall:            overall,
		Categories:         categories,
		Risk:               riskTier(overall, categories),
		Confidence:         confidenceTier(overall, p),
		Blockers:           blockers,
		SuccessProbability: successProbability(overall, p),
		IsReadyForProject:  overall >= readinessThreshold && len(blockers) == 0,
	}
	result.NextActions = nextActions(p, result)
	return result
}

// riskTier classifies delivery risk from the overall score and the two
// categories that sink projects: money and authority.
func riskTier(overall int, c model.CategoryScores) model.RiskTier {
	switch {
	case overall >= riskLowOverall && c.Financial >= riskLowCategory && c.Authority >= riskLowCategory:
		return model.RiskLow
	case overall >= riskMediumOverall && c.Financial >= riskMediumCategory && c.Authority >= riskMediumCategory:
		return model.RiskMedium
	case overall >= riskHighOverall:
		return model.RiskHigh
	default:
		return model.RiskCritical
	}
}

// confidenceTier requires more than a high score for high confidence: the
// budget must be confirmed and a decision maker identified, so a lucky score
// cannot imply false certainty.
func confidenceTier(overall int, p *model.Prospect) model.ConfidenceTier {
	if overall >= confidenceHighOverall && p.Project.Budget != "" && p.Qualification.DecisionMakerIdentified {
		return model.ConfidenceHigh
	}
	if overall >= confidenceMediumOverall {
		return model.ConfidenceMedium
	}
	return model.ConfidenceLow
}

// successProbability starts from the overall score and applies the fixed
// bonus/penalty nudges, clamped to [0,100].
func successProbability(overall int, p *model.Prospect) int {
	probability := overall
	if p.Project.Budget != "" {
		probability += bonusBudgetConfirmed
	}
	if p.Qualification.DecisionMakerIdentified {
		probability += bonusDecisionMaker
	}
	if len(p.Project.Requirements) > 0 {
		probability += bonusClearRequirements
	}
	if p.Project.Timeline != "" && !scoring.TimelineRealistic(p) {
		probability -= penaltyUnrealisticTime
	}
	if p.Project.Budget != "" && !scoring.BudgetRealistic(p) {
		probability -= penaltyUnrealisticMoney
	}
	if probability > 100 {
		return 100
	}
	if probability < 0 {
		return 0
	}
	return probability
}

// nextActions recommends what a human should do next, blockers first.
func nextActions(p *model.Prospect, result model.ValidationResult) []string {
	actions := make([]string, 0, 4)
	for _, blocker := range result.Blockers {
		switch blocker {
		case BlockerBudget:
			actions = append(actions, "Confirm budget range with the prospect")
		case BlockerDecisionMaker:
			actions = append(actions, "Identify who signs off on this project")
		case BlockerRequirements:
			actions = append(actions, "Capture concrete project requirements")
		case BlockerTechnical:
			actions = append(actions, "Clarify the type of project being requested")
		}
	}
	if len(actions) == 0 {
		if !p.Contact.Complete() {
			actions = append(actions, "Collect a direct contact channel")
		} else {
			actions = append(actions, "Schedule a kickoff conversation")
		}
	}
	return actions
}
