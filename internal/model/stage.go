// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"

	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/common"
)

// FunnelStage identifies where a prospect sits in the intake funnel.
type FunnelStage string

// Funnel stage constants, in funnel order.
const (
	StageAwareness     FunnelStage = "awareness"
	StageDiscovery     FunnelStage = "discovery"
	StageQualification FunnelStage = "qualification"
	StageProposal      FunnelStage = "proposal"
	StageCommitment    FunnelStage = "commitment"
	StageHandoff       FunnelStage = "handoff"
)

// stageOrder maps each stage to its position in the funnel.
var stageOrder = map[FunnelStage]int{
	StageAwareness:     0,
	StageDiscovery:     1,
	StageQualification: 2,
	StageProposal:      3,
	StageCommitment:    4,
	StageHandoff:       5,
}

// ParseStage validates a raw stage value. Unknown stages are rejected rather
// than coerced; a bad stage would corrupt funnel analytics downstream.
func ParseStage(raw string) (FunnelStage, error) {
	stage := FunnelStage(raw)
	if _, ok := stageOrder[stage]; !ok {
		return "", fmt.Errorf("%w: %q", common.ErrInvalidStage, raw)
	}
	return stage, nil
}

// Valid reports whether the stage is a member of the fixed stage set.
func (s FunnelStage) Valid() bool {
	_, ok := stageOrder[s]
	return ok
}

// Order returns the stage's position in the funnel, or -1 for unknown stages.
func (s FunnelStage) Order() int {
	order, ok := stageOrder[s]
	if !ok {
		return -1
	}
	return order
}

// Next returns the single allowed successor stage. The handoff stage is
// terminal and returns itself.
func (s FunnelStage) Next() FunnelStage {
	switch s {
	case StageAwareness:
		return StageDiscovery
	case StageDiscovery:
		return StageQualification
	case StageQualification:
		return StageProposal
	case StageProposal:
		return StageCommitment
	case StageCommitment:
		return StageHandoff
	default:
		return StageHandoff
	}
}

// Terminal reports whether the stage has no successor.
func (s FunnelStage) Terminal() bool {
	return s == StageHandoff
}
