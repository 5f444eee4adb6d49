package model

// Intent is the coarse classification of what a single utterance is about.
type Intent string

// Intent constants. IntentOrder in the extractor fixes their tie-break order.
const (
	IntentProjectInquiry Intent = "project-inquiry"
	IntentCompanyInfo    Intent = "company-info"
	IntentReadyToProceed Intent = "ready-to-proceed"
	IntentPricing        Intent = "pricing"
	IntentGeneral        Intent = "general-inquiry"
)

// ExtractedFacts is the per-turn value object holding whatever the extractor
// could find in one utterance. Zero values mean "not found"; merging never
// replaces a known prospect field with an absent one.
type ExtractedFacts struct {
	Intent              Intent
	ProjectType         string
	Budget              BudgetBucket
	Timeline            TimelineBucket
	Urgency             UrgencyLevel
	Name                string
	Email               string
	Phone               string
	Company             string
	BusinessType        BusinessType
	Industry            string
	Lifecycle           string
	Requirements        []string
	Constraints         []string
	Goals               []string
	Challenges          []string
	ReadyToProceed      bool
	DecisionAuthority   bool
	StakeholdersAligned bool
	PaymentTermsAgreed  bool
	Integrations        bool
	SuccessCriteria     bool
}

// Merge folds a turn's extracted facts into a prospect and returns the
// updated record. The merge is additive: boolean signals latch on, string
// fields fill in only when previously empty, and list entries append. The
// input prospect is not mutated.
func Merge(p Prospect, facts ExtractedFacts, utteranceLen int) Prospect {
	p.Engagement.MessageCount++
	p.Engagement.TotalLength += utteranceLen

	p.Contact.Name = keep(p.Contact.Name, facts.Name)
	p.Contact.Email = keep(p.Contact.Email, facts.Email)
	p.Contact.Phone = keep(p.Contact.Phone, facts.Phone)
	p.Contact.Company = keep(p.Contact.Company, facts.Company)

	if p.Business.Type == "" {
		p.Business.Type = facts.BusinessType
	}
	p.Business.Industry = keep(p.Business.Industry, facts.Industry)
	p.Business.Lifecycle = keep(p.Business.Lifecycle, facts.Lifecycle)
	p.Business.Goals = appendNew(p.Business.Goals, facts.Goals)
	p.Business.Challenges = appendNew(p.Business.Challenges, facts.Challenges)

	p.Project.Type = keep(p.Project.Type, facts.ProjectType)
	if p.Project.Budget == "" {
		p.Project.Budget = facts.Budget
	}
	if p.Project.Timeline == "" {
		p.Project.Timeline = facts.Timeline
	}
	if facts.Urgency != "" {
		// Urgency may sharpen but never relax.
		if p.Project.Urgency == "" || urgencyRank(facts.Urgency) > urgencyRank(p.Project.Urgency) {
			p.Project.Urgency = facts.Urgency
		}
	}
	p.Project.Requirements = appendNew(p.Project.Requirements, facts.Requirements)
	p.Project.Constraints = appendNew(p.Project.Constraints, facts.Constraints)

	q := &p.Qualification
	q.ReadyToProceed = q.ReadyToProceed || facts.ReadyToProceed
	q.DecisionMakerIdentified = q.DecisionMakerIdentified || facts.DecisionAuthority
	q.StakeholdersAligned = q.StakeholdersAligned || facts.StakeholdersAligned
	q.PaymentTermsAgreed = q.PaymentTermsAgreed || facts.PaymentTermsAgreed
	q.IntegrationsKnown = q.IntegrationsKnown || facts.Integrations
	q.SuccessCriteriaDefined = q.SuccessCriteriaDefined || facts.SuccessCriteria
	if q.ReadyToProceed && p.Project.Budget != "" {
		q.BudgetAllocated = true
	}

	return p
}

func keep(current, incoming string) string {
	if current != "" {
		return current
	}
	return incoming
}

func appendNew(current, incoming []string) []string {
	if len(incoming) == 0 {
		return current
	}
	seen := make(map[string]bool, len(current))
	for _, item := range current {
		seen[item] = true
	}
	out := append([]string(nil), current...)
	for _, item := range incoming {
		if item != "" && !seen[item] {
			out = append(out, item)
			seen[item] = true
		}
	}
	return out
}

func urgencyRank(u UrgencyLevel) int {
	switch u {
	case UrgencyCritical:
		return 3
	case UrgencyHigh:
		return 2
	case UrgencyMedium:
		return 1
	default:
		return 0
	}
}
