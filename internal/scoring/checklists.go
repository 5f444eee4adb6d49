// Package scoring converts a prospect snapshot into explainable scores.
//
// Category scores are checklist percentages: each category is a fixed list of
// boolean criteria and the score is the share that hold. Coarse, but every
// score change traces to a specific boolean flipping.
package scoring

import (
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/model"
)

// Criterion is one named boolean check over a prospect snapshot.
type Criterion struct {
	Name string
	Met  func(*model.Prospect) bool
}

// Category weights for the overall score. They must sum to 1.0; this is a
// tunable constant, not derived.
const (
	WeightFinancial     = 0.25
	WeightAuthority     = 0.20
	WeightProject       = 0.20
	WeightTechnical     = 0.15
	WeightCommunication = 0.10
	WeightSuccess       = 0.10
)

// FinancialChecklist covers budget health.
var FinancialChecklist = []Criterion{
	{"Budget confirmed", func(p *model.Prospect) bool { return p.Project.Budget != "" }},
	{"Budget allocated", func(p *model.Prospect) bool { return p.Qualification.BudgetAllocated }},
	{"Payment terms agreed", func(p *model.Prospect) bool { return p.Qualification.PaymentTermsAgreed }},
	{"Financial capability plausible", func(p *model.Prospect) bool {
		return p.Project.Budget.AtLeast(model.Budget5To15K) ||
			p.Business.Type == model.BusinessSMB || p.Business.Type == model.BusinessEnterprise
	}},
	{"Budget realistic for project", func(p *model.Prospect) bool { return BudgetRealistic(p) }},
	{"Contingency headroom", func(p *model.Prospect) bool { return p.Project.Budget.AtLeast(model.Budget15To30K) }},
}

// AuthorityChecklist covers decision-making power.
var AuthorityChecklist = []Criterion{
	{"Decision maker identified", func(p *model.Prospect) bool { return p.Qualification.DecisionMakerIdentified }},
	{"Stakeholders aligned", func(p *model.Prospect) bool {
		return p.Business.Type == model.BusinessIndividual || p.Qualification.StakeholdersAligned
	}},
	{"Organization known", func(p *model.Prospect) bool { return p.Contact.Company != "" || p.Business.Type != "" }},
	{"Signer reachable", func(p *model.Prospect) bool {
		return p.Qualification.DecisionMakerIdentified && p.Contact.Complete()
	}},
}

// ProjectChecklist covers project readiness.
var ProjectChecklist = []Criterion{
	{"Project type identified", func(p *model.Prospect) bool { return p.Project.Type != "" }},
	{"Requirements captured", func(p *model.Prospect) bool { return len(p.Project.Requirements) > 0 }},
	{"Scope outlined", func(p *model.Prospect) bool {
		return p.Project.Scope != "" || len(p.Project.Requirements) >= 2
	}},
	{"Timeline stated", func(p *model.Prospect) bool { return p.Project.Timeline != "" }},
	{"Timeline realistic", func(p *model.Prospect) bool { return TimelineRealistic(p) }},
}

// TechnicalChecklist covers technical clarity.
var TechnicalChecklist = []Criterion{
	{"Platform direction known", func(p *model.Prospect) bool { return p.Project.Type != "" }},
	{"Integrations identified", func(p *model.Prospect) bool { return p.Qualification.IntegrationsKnown }},
	{"Technical requirements stated", func(p *model.Prospect) bool {
		return p.Project.Type != "" && len(p.Project.Requirements) > 0
	}},
	{"Constraints surfaced", func(p *model.Prospect) bool { return len(p.Project.Constraints) > 0 }},
}

// CommunicationChecklist covers conversation quality.
var CommunicationChecklist = []Criterion{
	{"Engaged conversation", func(p *model.Prospect) bool { return p.Engagement.MessageCount >= 3 }},
	{"Substantive answers", func(p *model.Prospect) bool {
		return p.Engagement.MessageCount > 0 && p.Engagement.TotalLength/p.Engagement.MessageCount >= 40
	}},
	{"Contact channel provided", func(p *model.Prospect) bool { return p.Contact.Complete() }},
	{"Sustained interest", func(p *model.Prospect) bool { return p.Engagement.MessageCount >= 5 }},
}

// SuccessChecklist covers outcome clarity.
var SuccessChecklist = []Criterion{
	{"Goals articulated", func(p *model.Prospect) bool { return len(p.Business.Goals) > 0 }},
	{"Challenges identified", func(p *model.Prospect) bool { return len(p.Business.Challenges) > 0 }},
	{"Success criteria defined", func(p *model.Prospect) bool { return p.Qualification.SuccessCriteriaDefined }},
	{"Ready to proceed", func(p *model.Prospect) bool { return p.Qualification.ReadyToProceed }},
}

// BudgetRealistic reports whether the stated budget plausibly covers the
// stated project type. Unknown budgets are not realistic; unknown project
// types only need any budget at all.
func BudgetRealistic(p *model.Prospect) bool {
	if p.Project.Budget == "" {
		return false
	}
	switch p.Project.Type {
	case "e-commerce", "ai", "mobile":
		return p.Project.Budget.AtLeast(model.Budget5To15K)
	case "security":
		return p.Project.Budget.AtLeast(model.Budget5To15K)
	default:
		return true
	}
}

// TimelineRealistic reports whether stated time pressure fits the project.
// An ASAP demand for a heavyweight build is flagged as unrealistic.
func TimelineRealistic(p *model.Prospect) bool {
	if p.Project.Timeline == "" {
		return false
	}
	if p.Project.Timeline == model.TimelineASAP || p.Project.Urgency == model.UrgencyCritical {
		switch p.Project.Type {
		case "e-commerce", "ai", "mobile":
			return false
		}
	}
	return true
}

// Percent evaluates a checklist against a prospect and returns the share of
// criteria met, in [0,100].
func Percent(checklist []Criterion, p *model.Prospect) int {
	if len(checklist) == 0 {
		return 0
	}
	met := 0
	for _, c := range checklist {
		if c.Met(p) {
			met++
		}
	}
	return met * 100 / len(checklist)
}
