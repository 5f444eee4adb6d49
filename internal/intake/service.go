// Package intake exposes the conversational intake pipeline to the host
// application: create a session, process a turn, read a prospect, evict
// stale sessions. Everything else in this module hangs off these four
// operations.
package intake

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/common"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/extract"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/funnel"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/handoff"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/model"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/scoring"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/service"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/session"
	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/validation"
)

// Config holds the service's collaborators. Catalog, Formatter, Notifier,
// and Archive are optional; a nil Clock means the wall clock.
type Config struct {
	Catalog   service.Catalog
	Formatter service.Formatter
	Notifier  service.Notifier
	Archive   service.Archive
	Clock     common.Clock
}

// Service drives extraction, scoring, stage transitions, and handoff for
// every conversation turn. Turns for one session are processed to completion
// in order; different sessions proceed in parallel.
type Service struct {
	registry  *session.Registry
	extractor *extract.Extractor
	funnel    *funnel.Funnel
	composer  *handoff.Composer
	notifier  service.Notifier
	archive   service.Archive
}

// New creates the intake service.
func New(cfg Config) *Service {
	return &Service{
		registry:  session.NewRegistry(cfg.Clock),
		extractor: extract.New(),
		funnel:    funnel.New(cfg.Catalog, cfg.Formatter),
		composer:  handoff.NewComposer(cfg.Formatter, cfg.Clock),
		notifier:  cfg.Notifier,
		archive:   cfg.Archive,
	}
}

// CreateSession returns the prospect for the session, creating it on first
// use. Idempotent.
func (s *Service) CreateSession(sessionID string) *model.Prospect {
	return s.registry.GetOrCreate(sessionID)
}

// GetProspect returns the prospect for a session, or ErrSessionNotFound.
func (s *Service) GetProspect(sessionID string) (*model.Prospect, error) {
	return s.registry.Get(sessionID)
}

// Sessions returns the ids of all live sessions.
func (s *Service) Sessions() []string {
	return s.registry.List()
}

// EvictStale removes sessions inactive beyond ttl and returns the count.
func (s *Service) EvictStale(ttl time.Duration) int {
	return s.registry.EvictStale(ttl)
}

// ProcessTurn is the single entry point for an inbound utterance: extract
// facts, merge them into the prospect, rescore, advance the funnel, and, when
// the funnel signals and the gate agrees, compose and fan out the handoff
// package. A turn is handled to completion before the session accepts the
// next one.
func (s *Service) ProcessTurn(ctx context.Context, sessionID, utterance string, history []string) (service.TurnResult, error) {
	var result service.TurnResult

	err := s.registry.Do(sessionID, func(p *model.Prospect) error {
		defer func() {
			// The chat surface must never see an internal fault; fall back
			// to a clarifying prompt instead.
			if r := recover(); r != nil {
				slog.Error("turn processing panicked", "session_id", sessionID, "panic", r)
				result = service.TurnResult{
					Message: s.funnel.Fallback(),
					Stage:   p.CurrentStage,
				}
			}
		}()

		facts := s.extractor.Extract(utterance, history)
		*p = model.Merge(*p, facts, len(utterance))

		p.Qualification.LeadScore = scoring.Lead(p)
		s.revalidate(p)

		if s.funnel.Advance(p) {
			// The heavier gate runs once the funnel reaches qualification;
			// refresh it after a transition so commitment sees fresh data.
			s.revalidate(p)
		}

		shouldNotify := s.funnel.ShouldNotify(p)
		var pkg *model.HandoffPackage
		if shouldNotify {
			pkg = s.maybeCompose(ctx, p)
		}

		result = service.TurnResult{
			Message:      s.funnel.Respond(p, facts),
			Stage:        p.CurrentStage,
			ShouldNotify: shouldNotify,
			Package:      pkg,
		}

		s.logTurn(ctx, p)
		return nil
	})
	if err != nil {
		return service.TurnResult{}, fmt.Errorf("process turn: %w", err)
	}
	return result, nil
}

// revalidate runs the readiness gate once the funnel has reached the
// qualification stage. Earlier stages skip it; the cheap lead score is the
// only per-turn gate there.
func (s *Service) revalidate(p *model.Prospect) {
	if p.CurrentStage.Order() < model.StageQualification.Order() {
		return
	}
	vr := validation.Evaluate(p)
	p.Qualification.Validation = &vr
}

// maybeCompose builds the handoff package when the gate agrees, exactly once
// per prospect, and fans out notifications per the composer's channel policy.
func (s *Service) maybeCompose(ctx context.Context, p *model.Prospect) *model.HandoffPackage {
	vr := p.Qualification.Validation
	if vr == nil || !vr.IsReadyForProject {
		return nil
	}
	already := p.Handoff != nil
	pkg := s.composer.Compose(p, *vr)
	if already {
		return pkg
	}

	slog.Info("handoff package composed",
		"session_id", p.SessionID,
		"package_id", pkg.ID,
		"priority", pkg.Priority,
		"urgency", pkg.Urgency,
		"channels", len(pkg.Channels))

	if s.archive != nil {
		if err := s.archive.SaveHandoff(ctx, pkg); err != nil {
			common.LogError(err, "failed to archive handoff package", common.Fields{"session_id": p.SessionID})
		}
	}
	if s.notifier != nil {
		for _, channel := range pkg.Channels {
			content := pkg.Summary
			if channel == model.ChannelEmail {
				content = pkg.SummaryHTML
			}
			if err := s.notifier.Send(ctx, channel, content); err != nil {
				common.LogError(err, "notification send failed", common.Fields{
					"session_id": p.SessionID,
					"channel":    channel,
				})
			}
		}
	}
	return pkg
}

// logTurn records per-turn funnel analytics. Failures are logged, never
// surfaced to the conversation.
func (s *Service) logTurn(ctx context.Context, p *model.Prospect) {
	if s.archive == nil {
		return
	}
	err := s.archive.LogTurn(ctx, service.TurnLogEntry{
		SessionID:    p.SessionID,
		Stage:        p.CurrentStage,
		LeadScore:    p.Qualification.LeadScore,
		MessageCount: p.Engagement.MessageCount,
		At:           p.Engagement.LastActivity,
	})
	if err != nil {
		common.LogError(err, "failed to log turn", common.Fields{"session_id": p.SessionID})
	}
}
