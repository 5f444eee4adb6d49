package handoff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/model"
)

func TestRenderSummary(t *testing.T) {
	pkg := &model.HandoffPackage{
		SessionID:   "sess-1",
		GeneratedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Contact:     model.ContactInfo{Name: "Jane Doe", Email: "jane@acme.io"},
		Project: model.ProjectSpec{
			Type:         "e-commerce",
			Requirements: []string{"catalog of 500 products"},
		},
		Commercial: model.CommercialTerms{
			Budget:   model.Budget30To50K,
			Timeline: model.TimelineShort,
		},
		Validation: model.ValidationResult{
			Overall:            92,
			Risk:               model.RiskLow,
			Confidence:         model.ConfidenceHigh,
			SuccessProbability: 98,
		},
		Priority:     model.PriorityImmediate,
		ResponseTime: "within 1 hour",
		Actions:      []string{"Schedule a kickoff conversation"},
	}

	summary := renderSummary(pkg)

	assert.Contains(t, summary, "immediate priority")
	assert.Contains(t, summary, "validation score 92/100")
	assert.Contains(t, summary, "Jane Doe")
	assert.Contains(t, summary, "jane@acme.io")
	assert.Contains(t, summary, "30k-50k")
	assert.Contains(t, summary, "catalog of 500 products")
	assert.Contains(t, summary, "Schedule a kickoff conversation")
	// Empty fields are omitted entirely.
	assert.NotContains(t, summary, "Phone")
	assert.NotContains(t, summary, "Blocker")
}

func TestRenderHTML(t *testing.T) {
	html := renderHTML("# Heading\n\n- **Name:** Jane")

	assert.Contains(t, html, "<h1>")
	assert.Contains(t, html, "<strong>Name:</strong>")
}
