package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/model"
)

func TestExtract_Facts(t *testing.T) {
	extractor := New()
	priorTurn := []string{"hello"}

	tests := []struct {
		name      string
		utterance string
		history   []string
		want      model.ExtractedFacts
	}{
		{
			name:      "ecommerce project with budget and urgency",
			utterance: "I need an e-commerce site, budget around $40k, pretty urgent",
			want: model.ExtractedFacts{
				Intent:      model.IntentProjectInquiry,
				ProjectType: "e-commerce",
				Budget:      model.Budget30To50K,
				Urgency:     model.UrgencyHigh,
			},
		},
		{
			name:      "empty utterance yields general intent only",
			utterance: "   ",
			want:      model.ExtractedFacts{Intent: model.IntentGeneral},
		},
		{
			name:      "pricing intent on cost question",
			utterance: "how much does a website cost?",
			want: model.ExtractedFacts{
				Intent:      model.IntentPricing,
				ProjectType: "website",
			},
		},
		{
			name:      "readiness outranks pricing in the intent order",
			utterance: "Yes! How much would it cost?",
			history:   priorTurn,
			want: model.ExtractedFacts{
				Intent:         model.IntentReadyToProceed,
				ReadyToProceed: true,
			},
		},
		{
			name:      "ai classified before the website catch-all",
			utterance: "we want an AI chatbot on our site",
			want: model.ExtractedFacts{
				Intent:      model.IntentProjectInquiry,
				ProjectType: "ai",
			},
		},
		{
			name:      "explicit bucket keyword wins over parsing",
			utterance: "our budget is under 5k for now",
			want: model.ExtractedFacts{
				Intent: model.IntentGeneral,
				Budget: model.BudgetUnder5K,
			},
		},
		{
			name:      "timeline without urgency keyword defaults to medium",
			utterance: "we'd like it delivered within a month",
			want: model.ExtractedFacts{
				Intent:   model.IntentGeneral,
				Timeline: model.TimelineShort,
				Urgency:  model.UrgencyMedium,
			},
		},
		{
			name:      "flexible timeline maps to low urgency",
			utterance: "no rush at all, whenever works",
			want: model.ExtractedFacts{
				Intent:   model.IntentGeneral,
				Timeline: model.TimelineFlexible,
				Urgency:  model.UrgencyLow,
			},
		},
		{
			name:      "affirmation on the opening turn is not commitment",
			utterance: "yes",
			history:   nil,
			want: model.ExtractedFacts{
				Intent: model.IntentReadyToProceed,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractor.Extract(tt.utterance, tt.history)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract_MultipleAmountsTakesMaximum(t *testing.T) {
	extractor := New()

	facts := extractor.Extract("we could do $20k, maybe up to $45,000 for the right partner", nil)

	// People tend to state a ceiling last; the largest amount wins.
	assert.Equal(t, model.Budget30To50K, facts.Budget)
}

func TestExtract_Contact(t *testing.T) {
	extractor := New()

	facts := extractor.Extract("I'm Jane Doe, email jane@acme.io, phone +1 (555) 123-4567", nil)

	assert.Equal(t, "Jane Doe", facts.Name)
	assert.Equal(t, "jane@acme.io", facts.Email)
	assert.NotEmpty(t, facts.Phone)
}

func TestExtract_NameStoplist(t *testing.T) {
	extractor := New()

	facts := extractor.Extract("I'm Ready to start this week", []string{"hi"})

	assert.Empty(t, facts.Name)
	assert.True(t, facts.ReadyToProceed)
}

func TestExtract_ShortNumberIsNotAPhone(t *testing.T) {
	extractor := New()

	facts := extractor.Extract("the budget is 50,000 dollars", nil)

	assert.Empty(t, facts.Phone)
	assert.Equal(t, model.Budget50KPlus, facts.Budget)
}

func TestExtract_AuthorityAndSignals(t *testing.T) {
	extractor := New()

	facts := extractor.Extract(
		"I'm the owner, the team is on board, and we need to integrate with Stripe", nil)

	assert.True(t, facts.DecisionAuthority)
	assert.True(t, facts.StakeholdersAligned)
	assert.True(t, facts.Integrations)
	assert.Len(t, facts.Requirements, 1)
}

func TestExtract_Deterministic(t *testing.T) {
	extractor := New()
	utterance := "I need a mobile app for my startup, around $25k, asap"

	first := extractor.Extract(utterance, nil)
	second := extractor.Extract(utterance, nil)

	assert.Equal(t, first, second)
}
