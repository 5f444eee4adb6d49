package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/model"
)

// readyProspect builds a prospect that satisfies every checklist criterion.
func readyProspect() *model.Prospect {
	p := model.NewProspect("sess", time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	p.Contact = model.ContactInfo{Name: "Jane Doe", Email: "jane@acme.io", Company: "Acme"}
	p.Business = model.BusinessProfile{
		Type:       model.BusinessSMB,
		Goals:      []string{"grow online sales"},
		Challenges: []string{"cart abandonment"},
	}
	p.Project = model.ProjectDetails{
		Type:         "e-commerce",
		Budget:       model.Budget30To50K,
		Timeline:     model.TimelineShort,
		Urgency:      model.UrgencyHigh,
		Requirements: []string{"catalog of 500 products", "inventory sync"},
		Constraints:  []string{"launch before the holidays"},
	}
	p.Engagement = model.Engagement{MessageCount: 6, TotalLength: 300}
	p.Qualification = model.Qualification{
		BudgetAllocated:         true,
		PaymentTermsAgreed:      true,
		DecisionMakerIdentified: true,
		StakeholdersAligned:     true,
		IntegrationsKnown:       true,
		SuccessCriteriaDefined:  true,
		ReadyToProceed:          true,
	}
	return p
}

func TestEvaluate_FullyReady(t *testing.T) {
	result := Evaluate(readyProspect())

	assert.Equal(t, 100, result.Overall)
	assert.Empty(t, result.Blockers)
	assert.True(t, result.IsReadyForProject)
	assert.Equal(t, model.RiskLow, result.Risk)
	assert.Equal(t, model.ConfidenceHigh, result.Confidence)
	assert.Equal(t, 100, result.SuccessProbability)
	assert.Equal(t, []string{"Schedule a kickoff conversation"}, result.NextActions)
}

func TestEvaluate_HighScoreWithBlockerIsNotReady(t *testing.T) {
	p := readyProspect()
	p.Project.Requirements = nil

	result := Evaluate(p)

	// Readiness is a conjunction: the score still clears the threshold but
	// the requirements blocker alone withholds the handoff.
	assert.GreaterOrEqual(t, result.Overall, 75)
	assert.Equal(t, []string{BlockerRequirements}, result.Blockers)
	assert.False(t, result.IsReadyForProject)
	assert.Equal(t, []string{"Capture concrete project requirements"}, result.NextActions)
}

func TestEvaluate_MissingBudgetBlocks(t *testing.T) {
	p := readyProspect()
	p.Project.Budget = ""
	p.Qualification.BudgetAllocated = false

	result := Evaluate(p)

	assert.Contains(t, result.Blockers, BlockerBudget)
	assert.False(t, result.IsReadyForProject)
	assert.Equal(t, "Confirm budget range with the prospect", result.NextActions[0])
}

func TestEvaluate_EmptyProspect(t *testing.T) {
	result := Evaluate(model.NewProspect("sess", time.Now()))

	assert.Equal(t, 0, result.Overall)
	assert.Equal(t, model.RiskCritical, result.Risk)
	assert.Equal(t, model.ConfidenceLow, result.Confidence)
	assert.Len(t, result.Blockers, 4)
	assert.False(t, result.IsReadyForProject)
	assert.Equal(t, 0, result.SuccessProbability)
}

func TestRiskTier(t *testing.T) {
	tests := []struct {
		name      string
		overall   int
		financial int
		authority int
		want      model.RiskTier
	}{
		{"low needs strong money and authority", 90, 85, 85, model.RiskLow},
		{"weak financial drops out of low", 90, 70, 85, model.RiskMedium},
		{"medium band", 72, 65, 65, model.RiskMedium},
		{"weak authority drops to high", 72, 65, 40, model.RiskHigh},
		{"below fifty is critical", 45, 100, 100, model.RiskCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := model.CategoryScores{Financial: tt.financial, Authority: tt.authority}
			assert.Equal(t, tt.want, riskTier(tt.overall, c))
		})
	}
}

func TestConfidenceTier(t *testing.T) {
	p := model.NewProspect("sess", time.Now())

	// A high score alone is not high confidence.
	assert.Equal(t, model.ConfidenceMedium, confidenceTier(90, p))

	p.Project.Budget = model.Budget15To30K
	p.Qualification.DecisionMakerIdentified = true
	assert.Equal(t, model.ConfidenceHigh, confidenceTier(90, p))

	assert.Equal(t, model.ConfidenceMedium, confidenceTier(60, p))
	assert.Equal(t, model.ConfidenceLow, confidenceTier(59, p))
}

func TestSuccessProbability_Clamped(t *testing.T) {
	p := model.NewProspect("sess", time.Now())
	p.Project.Type = "e-commerce"
	p.Project.Budget = model.BudgetUnder5K

	// 10 + budget bonus 5 - unrealistic budget penalty 15 floors at zero.
	assert.Equal(t, 0, successProbability(10, p))

	assert.Equal(t, 100, successProbability(100, readyProspect()))
}
