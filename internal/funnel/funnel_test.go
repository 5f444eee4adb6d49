package funnel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/model"
)

func TestProgress(t *testing.T) {
	f := New(nil, nil)

	t.Run("fresh prospect has no progress", func(t *testing.T) {
		p := model.NewProspect("sess", time.Now())
		assert.Equal(t, 0, f.Progress(p))
	})

	t.Run("terminal stage reports full progress", func(t *testing.T) {
		p := model.NewProspect("sess", time.Now())
		p.CurrentStage = model.StageHandoff
		assert.Equal(t, 100, f.Progress(p))
	})

	t.Run("partial qualification progress", func(t *testing.T) {
		p := model.NewProspect("sess", time.Now())
		p.CurrentStage = model.StageQualification
		p.Project.Budget = model.Budget15To30K
		p.Project.Timeline = model.TimelineShort
		p.Business.Type = model.BusinessSMB

		// 3 of 5 criteria met.
		assert.Equal(t, 60, f.Progress(p))
	})
}

func TestAdvance(t *testing.T) {
	f := New(nil, nil)

	t.Run("advances when threshold reached", func(t *testing.T) {
		p := model.NewProspect("sess", time.Now())
		p.Engagement.MessageCount = 1
		p.Project.Type = "website"

		assert.True(t, f.Advance(p))
		assert.Equal(t, model.StageDiscovery, p.CurrentStage)
	})

	t.Run("holds below threshold", func(t *testing.T) {
		p := model.NewProspect("sess", time.Now())
		p.CurrentStage = model.StageQualification
		p.Project.Budget = model.Budget15To30K
		p.Project.Timeline = model.TimelineShort
		p.Business.Type = model.BusinessSMB

		// 60% < 80%: affirmations alone never move the qualification stage.
		assert.False(t, f.Advance(p))
		assert.Equal(t, model.StageQualification, p.CurrentStage)
	})

	t.Run("four of five clears the threshold", func(t *testing.T) {
		p := model.NewProspect("sess", time.Now())
		p.CurrentStage = model.StageQualification
		p.Project.Budget = model.Budget15To30K
		p.Project.Timeline = model.TimelineShort
		p.Business.Type = model.BusinessSMB
		p.Contact.Email = "jane@example.com"

		assert.False(t, f.Advance(p))

		p.Qualification.DecisionMakerIdentified = true
		assert.True(t, f.Advance(p))
		assert.Equal(t, model.StageProposal, p.CurrentStage)
	})

	t.Run("one step per turn at most", func(t *testing.T) {
		p := model.NewProspect("sess", time.Now())
		p.Engagement.MessageCount = 2
		p.Project.Type = "website"
		p.Business.Goals = []string{"grow"}

		// Discovery criteria already hold, but a single Advance call only
		// moves awareness to discovery.
		assert.True(t, f.Advance(p))
		assert.Equal(t, model.StageDiscovery, p.CurrentStage)
	})

	t.Run("terminal stage never advances", func(t *testing.T) {
		p := model.NewProspect("sess", time.Now())
		p.CurrentStage = model.StageHandoff

		assert.False(t, f.Advance(p))
	})

	t.Run("commitment defers to the validation gate", func(t *testing.T) {
		p := model.NewProspect("sess", time.Now())
		p.CurrentStage = model.StageCommitment
		p.Contact.Email = "jane@example.com"
		p.Project.Budget = model.Budget30To50K

		assert.False(t, f.Advance(p))

		p.Qualification.Validation = &model.ValidationResult{IsReadyForProject: true}
		assert.True(t, f.Advance(p))
		assert.Equal(t, model.StageHandoff, p.CurrentStage)
	})
}

func TestMissingCriteria(t *testing.T) {
	f := New(nil, nil)
	p := model.NewProspect("sess", time.Now())
	p.CurrentStage = model.StageQualification
	p.Project.Budget = model.Budget15To30K

	missing := f.MissingCriteria(p)

	assert.Equal(t, []string{
		"Timeline known",
		"Business context known",
		"Decision authority established",
		"Contact channel captured",
	}, missing)
}

func TestShouldNotify(t *testing.T) {
	f := New(nil, nil)

	t.Run("handoff always notifies", func(t *testing.T) {
		p := model.NewProspect("sess", time.Now())
		p.CurrentStage = model.StageHandoff
		assert.True(t, f.ShouldNotify(p))
	})

	t.Run("commitment needs contact and budget", func(t *testing.T) {
		p := model.NewProspect("sess", time.Now())
		p.CurrentStage = model.StageCommitment
		assert.False(t, f.ShouldNotify(p))

		p.Contact.Phone = "+1 555 123 4567"
		p.Project.Budget = model.Budget15To30K
		assert.True(t, f.ShouldNotify(p))
	})

	t.Run("early stages never notify", func(t *testing.T) {
		p := model.NewProspect("sess", time.Now())
		p.Contact.Email = "jane@example.com"
		p.Project.Budget = model.Budget50KPlus
		assert.False(t, f.ShouldNotify(p))
	})
}
