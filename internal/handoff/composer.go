// Package handoff assembles the human-actionable package issued when a
// prospect clears the readiness gate.
//
// The composer owns the priority/urgency policy and channel escalation
// table; actual delivery belongs to a transport outside this module. Packages
// are immutable once issued: composing again for the same prospect returns
// the existing package.
package handoff

import (
	"github.com/google/uuid"

	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/common"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/model"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/service"
)

// Priority score thresholds over the validation overall score.
const (
	priorityImmediateScore = 90
	priorityHighScore      = 80
	priorityMediumScore    = 70
)

// Composer builds handoff packages. The formatter is optional and only
// affects the estimated-value string.
type Composer struct {
	formatter service.Formatter
	clock     common.Clock
}

// NewComposer creates a composer. A nil clock defaults to the wall clock.
func NewComposer(formatter service.Formatter, clock common.Clock) *Composer {
	if clock == nil {
		clock = common.RealClock{}
	}
	return &Composer{formatter: formatter, clock: clock}
}

// Compose builds the handoff package for a prospect with the given validation
// result. If the prospect already carries a package the existing one is
// returned unchanged; the upstream funnel may re-fire its notify signal on
// later turns.
func (c *Composer) Compose(p *model.Prospect, vr model.ValidationResult) *model.HandoffPackage {
	if p.Handoff != nil {
		return p.Handoff
	}

	priority := priorityFor(vr.Overall, p.Project.Budget)
	urgency := urgencyFor(p.Project.Urgency)

	pkg := &model.HandoffPackage{
		ID:          uuid.NewString(),
		SessionID:   p.SessionID,
		GeneratedAt: c.clock.Now(),
		Contact:     p.Contact,
		Business:    p.Business,
		Project: model.ProjectSpec{
			Type:           p.Project.Type,
			Scope:          p.Project.Scope,
			Requirements:   append([]string(nil), p.Project.Requirements...),
			Constraints:    append([]string(nil), p.Project.Constraints...),
			TechnicalNotes: technicalNotes(p),
		},
		Commercial: model.CommercialTerms{
			Budget:         p.Project.Budget,
			Timeline:       p.Project.Timeline,
			Urgency:        p.Project.Urgency,
			EstimatedValue: c.estimatedValue(p.Project.Budget),
		},
		Validation:   vr,
		Priority:     priority,
		Urgency:      urgency,
		Channels:     channelsFor(priority, urgency),
		ResponseTime: responseTimeFor(priority, urgency),
		Actions:      append([]string(nil), vr.NextActions...),
	}
	pkg.Summary = renderSummary(pkg)
	pkg.SummaryHTML = renderHTML(pkg.Summary)

	p.Handoff = pkg
	p.Interest.ProposalGenerated = true
	p.Qualification.ReadyForHandoff = true
	return pkg
}

// priorityFor derives priority from validation score thresholds, then
// upgrades one tier for top-bucket budgets. The upgrade is capped at
// immediate; upgrading the top tier is a no-op, not an error.
func priorityFor(score int, budget model.BudgetBucket) model.HandoffPriority {
	var priority model.HandoffPriority
	switch {
	case score >= priorityImmediateScore:
		priority = model.PriorityImmediate
	case score >= priorityHighScore:
		priority = model.PriorityHigh
	case score >= priorityMediumScore:
		priority = model.PriorityMedium
	default:
		priority = model.PriorityLow
	}
	if budget.AtLeast(model.Budget50KPlus) {
		priority = upgrade(priority)
	}
	return priority
}

// upgrade bumps priority by exactly one tier, never skipping.
func upgrade(p model.HandoffPriority) model.HandoffPriority {
	switch p {
	case model.PriorityLow:
		return model.PriorityMedium
	case model.PriorityMedium:
		return model.PriorityHigh
	default:
		return model.PriorityImmediate
	}
}

// urgencyFor maps the prospect's stated project urgency onto the handoff
// urgency axis. Urgency is time pressure; it is independent of priority.
func urgencyFor(u model.UrgencyLevel) model.HandoffUrgency {
	switch u {
	case model.UrgencyCritical:
		return model.HandoffCritical
	case model.UrgencyHigh:
		return model.HandoffUrgent
	case model.UrgencyLow:
		return model.HandoffLow
	default:
		return model.HandoffNormal
	}
}

// channelsFor is the explicit three-tier escalation table: everything for
// immediate/critical, two channels for high priority, one otherwise.
func channelsFor(priority model.HandoffPriority, urgency model.HandoffUrgency) []model.NotificationChannel {
	switch {
	case priority == model.PriorityImmediate || urgency == model.HandoffCritical:
		return []model.NotificationChannel{model.ChannelEmail, model.ChannelSMS, model.ChannelChat}
	case priority == model.PriorityHigh:
		return []model.NotificationChannel{model.ChannelEmail, model.ChannelChat}
	default:
		return []model.NotificationChannel{model.ChannelEmail}
	}
}

// priorityRank and urgencyRank place both axes on a common scale so urgency
// can tie-break equal to priority in the response-time lookup.
func priorityRank(p model.HandoffPriority) int {
	switch p {
	case model.PriorityImmediate:
		return 3
	case model.PriorityHigh:
		return 2
	case model.PriorityMedium:
		return 1
	default:
		return 0
	}
}

func urgencyTierRank(u model.HandoffUrgency) int {
	switch u {
	case model.HandoffCritical:
		return 3
	case model.HandoffUrgent:
		return 2
	case model.HandoffNormal:
		return 1
	default:
		return 0
	}
}

// responseTimeFor looks up the committed response-time string for the
// effective tier, where urgency counts the same as priority.
func responseTimeFor(priority model.HandoffPriority, urgency model.HandoffUrgency) string {
	tier := priorityRank(priority)
	if u := urgencyTierRank(urgency); u > tier {
		tier = u
	}
	switch tier {
	case 3:
		return "within 1 hour"
	case 2:
		return "within 2-4 hours"
	case 1:
		return "within 24 hours"
	default:
		return "within 48 hours"
	}
}

// estimatedValue renders a representative deal value for the budget bucket.
func (c *Composer) estimatedValue(budget model.BudgetBucket) string {
	amount, ok := representativeAmount(budget)
	if !ok {
		return ""
	}
	if c.formatter == nil {
		return ""
	}
	return c.formatter.Format(amount, "USD")
}

// representativeAmount maps a bucket to its midpoint (floor for open-ended
// buckets).
func representativeAmount(budget model.BudgetBucket) (float64, bool) {
	switch budget {
	case model.BudgetUnder5K:
		return 3_500, true
	case model.Budget5To15K:
		return 10_000, true
	case model.Budget15To30K:
		return 22_500, true
	case model.Budget30To50K:
		return 40_000, true
	case model.Budget50KPlus:
		return 50_000, true
	case model.Budget100KPlus:
		return 100_000, true
	default:
		return 0, false
	}
}

// technicalNotes summarizes extracted technical signals for the operator.
func technicalNotes(p *model.Prospect) []string {
	var notes []string
	if p.Qualification.IntegrationsKnown {
		notes = append(notes, "Prospect mentioned third-party integrations")
	}
	if p.Qualification.SuccessCriteriaDefined {
		notes = append(notes, "Success criteria discussed during intake")
	}
	return notes
}
