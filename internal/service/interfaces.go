// Package service defines the interfaces for all external collaborators.
//
// The intake core consumes these but never implements delivery, pricing, or
// formatting itself: the composer decides which channels, a transport decides
// how; the funnel decides when to mention services, a catalog decides which.
package service

import (
	"context"
	"time"

	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/model"
)

// ServiceOffering is one entry returned by a catalog lookup.
type ServiceOffering struct {
	Name        string
	Description string
	PriceRange  string
}

// Catalog matches service offerings to an extracted project type and budget.
// Results only enrich response text; they never gate funnel decisions.
type Catalog interface {
	MatchServices(projectType string, budget model.BudgetBucket) []ServiceOffering
}

// Formatter renders monetary amounts for response text.
type Formatter interface {
	Format(amount float64, currency string) string
}

// Notifier delivers handoff notifications. The core invokes channels by name
// only; transport details live outside this module.
type Notifier interface {
	Send(ctx context.Context, channel model.NotificationChannel, content string) error
}

// Archive persists issued handoff packages and per-turn funnel analytics.
// Live prospect state never goes through it; it is write-only from the
// core's perspective.
type Archive interface {
	SaveHandoff(ctx context.Context, pkg *model.HandoffPackage) error
	LogTurn(ctx context.Context, entry TurnLogEntry) error
	Close() error
}

// TurnLogEntry is one analytics row per processed turn.
type TurnLogEntry struct {
	SessionID    string
	Stage        model.FunnelStage
	LeadScore    int
	MessageCount int
	At           time.Time
}

// TurnResult is what ProcessTurn hands back to the conversational surface.
type TurnResult struct {
	Message      string
	Stage        model.FunnelStage
	ShouldNotify bool
	Package      *model.HandoffPackage
}
