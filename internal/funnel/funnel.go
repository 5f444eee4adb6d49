// Package funnel implements the multi-stage intake state machine.
//
// Each stage declares its qualification criteria, its response templates, and
// its single allowed successor. A prospect advances at most one stage per
// turn, and only when at least 80% of the current stage's criteria hold.
package funnel

import (
	"log/slog"

	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/model"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/service"
)

// advanceThreshold is the stage-progress percentage required to move on.
const advanceThreshold = 80

// leadScoreQualified is the lead score the proposal stage requires.
const leadScoreQualified = 60

// Criterion is one named boolean stage-qualification check.
type Criterion struct {
	Name string
	Met  func(*model.Prospect) bool
}

// stageCriteria declares each stage's qualification checklist. The handoff
// stage is terminal and has none.
var stageCriteria = map[model.FunnelStage][]Criterion{
	model.StageAwareness: {
		{"Conversation opened", func(p *model.Prospect) bool { return p.Engagement.MessageCount >= 1 }},
		{"Interest signaled", func(p *model.Prospect) bool {
			return p.Project.Type != "" || p.Engagement.MessageCount >= 2
		}},
	},
	model.StageDiscovery: {
		{"Project type identified", func(p *model.Prospect) bool { return p.Project.Type != "" }},
		{"Needs articulated", func(p *model.Prospect) bool {
			return len(p.Project.Requirements) > 0 || len(p.Business.Goals) > 0 || len(p.Business.Challenges) > 0
		}},
	},
	model.StageQualification: {
		{"Budget known", func(p *model.Prospect) bool { return p.Project.Budget != "" }},
		{"Timeline known", func(p *model.Prospect) bool { return p.Project.Timeline != "" }},
		{"Business context known", func(p *model.Prospect) bool {
			return p.Business.Type != "" || p.Contact.Company != ""
		}},
		{"Decision authority established", func(p *model.Prospect) bool {
			return p.Qualification.DecisionMakerIdentified
		}},
		{"Contact channel captured", func(p *model.Prospect) bool { return p.Contact.Complete() }},
	},
	model.StageProposal: {
		{"Lead score qualified", func(p *model.Prospect) bool {
			return p.Qualification.LeadScore >= leadScoreQualified
		}},
		{"Requirements captured", func(p *model.Prospect) bool { return len(p.Project.Requirements) > 0 }},
		{"Proceed signal given", func(p *model.Prospect) bool { return p.Qualification.ReadyToProceed }},
	},
	model.StageCommitment: {
		{"Contact channel captured", func(p *model.Prospect) bool { return p.Contact.Complete() }},
		{"Budget known", func(p *model.Prospect) bool { return p.Project.Budget != "" }},
		// From commitment on, the funnel defers to the validation gate:
		// a disagreeing gate holds the prospect here.
		{"Validation gate passed", func(p *model.Prospect) bool {
			return p.Qualification.Validation != nil && p.Qualification.Validation.IsReadyForProject
		}},
	},
	model.StageHandoff: nil,
}

// Funnel drives stage transitions and scripted responses. Catalog and
// formatter are optional collaborators that only enrich response text.
type Funnel struct {
	catalog   service.Catalog
	formatter service.Formatter
}

// New creates a funnel with the given collaborators. Either may be nil.
func New(catalog service.Catalog, formatter service.Formatter) *Funnel {
	return &Funnel{catalog: catalog, formatter: formatter}
}

// Progress returns the percentage of the current stage's criteria the
// prospect satisfies. Terminal stages report 100.
func (f *Funnel) Progress(p *model.Prospect) int {
	criteria := stageCriteria[p.CurrentStage]
	if len(criteria) == 0 {
		return 100
	}
	met := 0
	for _, c := range criteria {
		if c.Met(p) {
			met++
		}
	}
	return met * 100 / len(criteria)
}

// MissingCriteria lists the current stage's unmet criteria, in declaration
// order.
func (f *Funnel) MissingCriteria(p *model.Prospect) []string {
	var missing []string
	for _, c := range stageCriteria[p.CurrentStage] {
		if !c.Met(p) {
			missing = append(missing, c.Name)
		}
	}
	return missing
}

// Advance moves the prospect forward one stage when stage progress clears the
// threshold. It never skips stages, regardless of how many later-stage
// criteria already hold. Returns true when a transition happened.
func (f *Funnel) Advance(p *model.Prospect) bool {
	if p.CurrentStage.Terminal() {
		return false
	}
	progress := f.Progress(p)
	if progress < advanceThreshold {
		return false
	}
	next := p.CurrentStage.Next()
	if err := p.AdvanceStage(next); err != nil {
		// Transition table and stage table disagree; fail loudly in logs
		// but never corrupt the record.
		slog.Error("stage transition rejected",
			"session_id", p.SessionID,
			"from", p.CurrentStage,
			"to", next,
			"error", err)
		return false
	}
	slog.Info("funnel stage advanced",
		"session_id", p.SessionID,
		"stage", p.CurrentStage,
		"progress", progress,
		"lead_score", p.Qualification.LeadScore)
	return true
}

// ShouldNotify reports whether this turn should raise the handoff signal:
// reaching commitment with contact and budget in hand, or reaching handoff.
// Only the funnel may raise this signal.
func (f *Funnel) ShouldNotify(p *model.Prospect) bool {
	if p.CurrentStage == model.StageHandoff {
		return true
	}
	return p.CurrentStage == model.StageCommitment &&
		p.Contact.Complete() &&
		p.Project.Budget != ""
}
