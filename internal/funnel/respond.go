package funnel

import (
	"fmt"
	"strings"

	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/model"
)

// missingFact drives the one-question-per-turn policy. The priority order
// (project type, budget, timeline, authority) is fixed: earlier facts are
// worth more to the funnel than later ones.
type missingFact struct {
	known    func(*model.Prospect) bool
	question string
}

var missingFacts = []missingFact{
	{func(p *model.Prospect) bool { return p.Project.Type != "" },
		"What kind of project do you have in mind — a website, e-commerce, mobile app, or something else?"},
	{func(p *model.Prospect) bool { return p.Project.Budget != "" },
		"Do you have a budget range in mind for this project?"},
	{func(p *model.Prospect) bool { return p.Project.Timeline != "" },
		"When would you like this delivered?"},
	{func(p *model.Prospect) bool { return p.Qualification.DecisionMakerIdentified },
		"Will you be the one making the final decision on this project?"},
}

// stageOpeners is the per-stage acknowledgment line used when composing a
// response.
var stageOpeners = map[model.FunnelStage]string{
	model.StageAwareness:     "Thanks for reaching out!",
	model.StageDiscovery:     "Great — let's dig into what you need.",
	model.StageQualification: "That helps me understand the project.",
	model.StageProposal:      "We have enough to sketch a proposal.",
	model.StageCommitment:    "Excellent — we're close to getting started.",
	model.StageHandoff:       "You're all set.",
}

// intentAcknowledgments lead the response when the turn's intent calls for a
// specific reply before the stage script continues.
var intentAcknowledgments = map[model.Intent]string{
	model.IntentCompanyInfo:    "We're a digital studio covering web, e-commerce, mobile, and AI builds.",
	model.IntentPricing:        "Pricing depends on scope; most engagements land between $5k and $50k+.",
	model.IntentReadyToProceed: "Love the enthusiasm!",
}

// Respond builds the scripted reply for this turn: an acknowledgment, an
// optional catalog enrichment, and at most one missing-fact question.
func (f *Funnel) Respond(p *model.Prospect, facts model.ExtractedFacts) string {
	var parts []string

	if ack, ok := intentAcknowledgments[facts.Intent]; ok {
		parts = append(parts, ack)
	} else {
		parts = append(parts, stageOpeners[p.CurrentStage])
	}

	if facts.ProjectType != "" {
		parts = append(parts, f.catalogLine(p))
	}

	if p.CurrentStage == model.StageHandoff {
		parts = append(parts, "Our team has everything it needs and will reach out shortly.")
		return strings.Join(parts, " ")
	}

	if question, ok := f.nextQuestion(p); ok {
		parts = append(parts, question)
	} else {
		parts = append(parts, stageFollowUp(p))
	}

	return strings.Join(parts, " ")
}

// FallbackMessage is the generic clarifying prompt used when turn processing
// hits an internal fault. The chat surface never sees internal errors.
const FallbackMessage = "Could you tell me a bit more about what you're looking for?"

// Fallback returns the generic clarifying prompt.
func (f *Funnel) Fallback() string {
	return FallbackMessage
}

// nextQuestion returns the single highest-priority missing-fact question.
func (f *Funnel) nextQuestion(p *model.Prospect) (string, bool) {
	for _, fact := range missingFacts {
		if !fact.known(p) {
			return fact.question, true
		}
	}
	return "", false
}

// catalogLine mentions matched offerings when a catalog is wired in.
func (f *Funnel) catalogLine(p *model.Prospect) string {
	confirmation := fmt.Sprintf("A %s project is right in our wheelhouse.", p.Project.Type)
	if f.catalog == nil {
		return confirmation
	}
	offerings := f.catalog.MatchServices(p.Project.Type, p.Project.Budget)
	if len(offerings) == 0 {
		return confirmation
	}
	names := make([]string, 0, len(offerings))
	for _, offering := range offerings {
		names = append(names, offering.Name)
	}
	return fmt.Sprintf("%s Relevant offerings: %s.", confirmation, strings.Join(names, ", "))
}

// stageFollowUp closes a response when every priority fact is already known.
func stageFollowUp(p *model.Prospect) string {
	switch p.CurrentStage {
	case model.StageAwareness, model.StageDiscovery:
		return "What would success look like for you with this project?"
	case model.StageQualification:
		if !p.Contact.Complete() {
			return "What's the best email or phone number to reach you on?"
		}
		return "Anything else the project absolutely has to do?"
	case model.StageProposal:
		if !p.Qualification.ReadyToProceed {
			return "Shall we put together a formal proposal for you?"
		}
		return "We'll prepare the proposal details now."
	case model.StageCommitment:
		if !p.Contact.Complete() {
			return "What's the best email or phone number to reach you on?"
		}
		return "We're lining up the team for your project."
	default:
		return "How can I help further?"
	}
}
