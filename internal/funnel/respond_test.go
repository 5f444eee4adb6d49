package funnel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/model"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/service"
)

type stubCatalog struct{ offerings []service.ServiceOffering }

func (s stubCatalog) MatchServices(projectType string, budget model.BudgetBucket) []service.ServiceOffering {
	return s.offerings
}

func TestRespond_OneQuestionPerTurn(t *testing.T) {
	f := New(nil, nil)
	p := model.NewProspect("sess", time.Now())

	// Everything is missing; only the top-priority question is asked.
	reply := f.Respond(p, model.ExtractedFacts{Intent: model.IntentGeneral})

	assert.Contains(t, reply, "What kind of project do you have in mind")
	assert.NotContains(t, reply, "budget range")
	assert.NotContains(t, reply, "When would you like")
}

func TestRespond_QuestionPriorityOrder(t *testing.T) {
	f := New(nil, nil)
	p := model.NewProspect("sess", time.Now())
	p.Project.Type = "website"

	reply := f.Respond(p, model.ExtractedFacts{Intent: model.IntentGeneral})

	assert.Contains(t, reply, "budget range")
}

func TestRespond_IntentAcknowledgment(t *testing.T) {
	f := New(nil, nil)
	p := model.NewProspect("sess", time.Now())

	reply := f.Respond(p, model.ExtractedFacts{Intent: model.IntentPricing})

	assert.Contains(t, reply, "Pricing depends on scope")
}

func TestRespond_CatalogEnrichment(t *testing.T) {
	catalog := stubCatalog{offerings: []service.ServiceOffering{
		{Name: "Storefront Build"},
		{Name: "Payments Integration"},
	}}
	f := New(catalog, nil)
	p := model.NewProspect("sess", time.Now())
	p.Project.Type = "e-commerce"

	reply := f.Respond(p, model.ExtractedFacts{
		Intent:      model.IntentProjectInquiry,
		ProjectType: "e-commerce",
	})

	assert.Contains(t, reply, "Storefront Build, Payments Integration")
}

func TestRespond_HandoffClosesConversation(t *testing.T) {
	f := New(nil, nil)
	p := model.NewProspect("sess", time.Now())
	p.CurrentStage = model.StageHandoff

	reply := f.Respond(p, model.ExtractedFacts{Intent: model.IntentGeneral})

	assert.Contains(t, reply, "will reach out shortly")
	assert.NotContains(t, reply, "?")
}

func TestFallback(t *testing.T) {
	f := New(nil, nil)
	assert.Equal(t, FallbackMessage, f.Fallback())
}
