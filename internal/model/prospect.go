package model

import (
	"fmt"
	"time"

	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/common"
)

// BusinessType classifies the prospect's organization.
type BusinessType string

// Business type constants.
const (
	BusinessIndividual BusinessType = "individual"
	BusinessStartup    BusinessType = "startup"
	BusinessSMB        BusinessType = "smb"
	BusinessEnterprise BusinessType = "enterprise"
)

// BudgetBucket is the coarse budget range a prospect has signaled.
type BudgetBucket string

// Budget bucket constants, ordered from smallest to largest.
const (
	BudgetUnder5K  BudgetBucket = "under-5k"
	Budget5To15K   BudgetBucket = "5k-15k"
	Budget15To30K  BudgetBucket = "15k-30k"
	Budget30To50K  BudgetBucket = "30k-50k"
	Budget50KPlus  BudgetBucket = "50k-plus"
	Budget100KPlus BudgetBucket = "100k-plus"
)

// bucketOrder supports comparisons between budget buckets.
var bucketOrder = map[BudgetBucket]int{
	BudgetUnder5K:  0,
	Budget5To15K:   1,
	Budget15To30K:  2,
	Budget30To50K:  3,
	Budget50KPlus:  4,
	Budget100KPlus: 5,
}

// AtLeast reports whether the bucket is at or above the given bucket.
// An unset bucket is below everything.
func (b BudgetBucket) AtLeast(min BudgetBucket) bool {
	bo, ok := bucketOrder[b]
	mo, mok := bucketOrder[min]
	return ok && mok && bo >= mo
}

// TimelineBucket is the coarse delivery timeline a prospect has signaled.
type TimelineBucket string

// Timeline bucket constants.
const (
	TimelineASAP     TimelineBucket = "asap"
	TimelineShort    TimelineBucket = "1-3-months"
	TimelineMedium   TimelineBucket = "3-6-months"
	TimelineLong     TimelineBucket = "6-plus-months"
	TimelineFlexible TimelineBucket = "flexible"
)

// UrgencyLevel is the prospect's stated time pressure.
type UrgencyLevel string

// Urgency constants.
const (
	UrgencyCritical UrgencyLevel = "critical"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyMedium   UrgencyLevel = "medium"
	UrgencyLow      UrgencyLevel = "low"
)

// ContactInfo holds incrementally captured contact fields. Fields are only
// ever filled in, never cleared, by fact merging.
type ContactInfo struct {
	Name    string
	Email   string
	Phone   string
	Company string
}

// Complete reports whether at least one reachable channel is known.
func (c ContactInfo) Complete() bool {
	return c.Email != "" || c.Phone != ""
}

// BusinessProfile describes the prospect's organization.
type BusinessProfile struct {
	Type       BusinessType
	Industry   string
	Lifecycle  string
	Challenges []string
	Goals      []string
}

// ProjectDetails describes what the prospect wants built.
type ProjectDetails struct {
	Type         string
	Scope        string
	Budget       BudgetBucket
	Timeline     TimelineBucket
	Urgency      UrgencyLevel
	Requirements []string
	Constraints  []string
}

// Engagement tracks conversation activity counters used as interest proxies.
type Engagement struct {
	MessageCount int
	TotalLength  int
	LastActivity time.Time
}

// Qualification carries the explicit boolean signals the scoring checklists
// evaluate, plus the latest derived scores. Every score change traces back to
// one of these booleans flipping or a prospect field changing.
type Qualification struct {
	LeadScore               int
	Validation              *ValidationResult
	ReadyForHandoff         bool
	DisqualifiedReasons     []string
	BudgetAllocated         bool
	PaymentTermsAgreed      bool
	DecisionMakerIdentified bool
	StakeholdersAligned     bool
	IntegrationsKnown       bool
	SuccessCriteriaDefined  bool
	ReadyToProceed          bool
}

// ServiceInterest records matched offerings and the proposal idempotence flag.
type ServiceInterest struct {
	MatchedServices   []string
	ProposalGenerated bool
}

// Prospect is the central aggregate, one per conversation session.
type Prospect struct {
	SessionID     string
	CurrentStage  FunnelStage
	StageHistory  []FunnelStage
	Contact       ContactInfo
	Business      BusinessProfile
	Project       ProjectDetails
	Engagement    Engagement
	Qualification Qualification
	Interest      ServiceInterest
	Handoff       *HandoffPackage
	CreatedAt     time.Time
}

// NewProspect creates a fresh prospect in the awareness stage.
func NewProspect(sessionID string, now time.Time) *Prospect {
	return &Prospect{
		SessionID:    sessionID,
		CurrentStage: StageAwareness,
		CreatedAt:    now,
		Engagement:   Engagement{LastActivity: now},
	}
}

// AdvanceStage moves the prospect to the given stage and appends the previous
// stage to history. Backward moves and stage skips are rejected; the funnel
// only ever advances one step at a time.
func (p *Prospect) AdvanceStage(next FunnelStage) error {
	if !next.Valid() {
		return fmt.Errorf("%w: %q", common.ErrInvalidStage, next)
	}
	if next != p.CurrentStage.Next() || p.CurrentStage.Terminal() {
		return fmt.Errorf("illegal transition %s -> %s", p.CurrentStage, next)
	}
	// No duplicate consecutive history entries.
	if n := len(p.StageHistory); n == 0 || p.StageHistory[n-1] != p.CurrentStage {
		p.StageHistory = append(p.StageHistory, p.CurrentStage)
	}
	p.CurrentStage = next
	return nil
}
