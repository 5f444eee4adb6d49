package scoring

import (
	"math"

	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/model"
)

// Categories computes the six checklist-percentage sub-scores for a prospect
// snapshot. It is a pure function of the snapshot.
func Categories(p *model.Prospect) model.CategoryScores {
	return model.CategoryScores{
		Financial:     Percent(FinancialChecklist, p),
		Authority:     Percent(AuthorityChecklist, p),
		Project:       Percent(ProjectChecklist, p),
		Technical:     Percent(TechnicalChecklist, p),
		Communication: Percent(CommunicationChecklist, p),
		Success:       Percent(SuccessChecklist, p),
	}
}

// Overall folds category sub-scores into the weighted overall score.
func Overall(scores model.CategoryScores) int {
	weighted := WeightFinancial*float64(scores.Financial) +
		WeightAuthority*float64(scores.Authority) +
		WeightProject*float64(scores.Project) +
		WeightTechnical*float64(scores.Technical) +
		WeightCommunication*float64(scores.Communication) +
		WeightSuccess*float64(scores.Success)
	return int(math.Round(weighted))
}

// Lead score sub-maximums. The lead score is the funnel's cheap per-turn
// gate, independent of the validation gate's heavier checklist score.
const (
	leadEngagementCap    = 25
	leadCompletenessCap  = 30
	leadQualificationCap = 20
	leadCommitmentCap    = 25
	leadPerMessagePoints = 5
	leadPerFactPoints    = 6
	leadBusinessKnownPts = 10
	leadAuthorityPts     = 10
	leadReadyPts         = 15
	leadUrgencyPts       = 10
)

// Lead computes the funnel's 0-100 lead score: engagement, info completeness,
// business qualification, and commitment signals, each capped before summing.
func Lead(p *model.Prospect) int {
	engagement := p.Engagement.MessageCount * leadPerMessagePoints
	if engagement > leadEngagementCap {
		engagement = leadEngagementCap
	}

	completeness := 0
	for _, known := range []bool{
		p.Project.Type != "",
		p.Project.Budget != "",
		p.Project.Timeline != "",
		p.Contact.Complete(),
		p.Contact.Name != "",
	} {
		if known {
			completeness += leadPerFactPoints
		}
	}
	if completeness > leadCompletenessCap {
		completeness = leadCompletenessCap
	}

	qualification := 0
	if p.Business.Type != "" {
		qualification += leadBusinessKnownPts
	}
	if p.Qualification.DecisionMakerIdentified {
		qualification += leadAuthorityPts
	}
	if qualification > leadQualificationCap {
		qualification = leadQualificationCap
	}

	commitment := 0
	if p.Qualification.ReadyToProceed {
		commitment += leadReadyPts
	}
	if p.Project.Urgency == model.UrgencyHigh || p.Project.Urgency == model.UrgencyCritical {
		commitment += leadUrgencyPts
	}
	if commitment > leadCommitmentCap {
		commitment = leadCommitmentCap
	}

	return engagement + completeness + qualification + commitment
}
