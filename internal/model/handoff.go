package model

import "time"

// HandoffPriority reflects deal value and validation confidence.
type HandoffPriority string

// Handoff priority constants, ordered from lowest to highest.
const (
	PriorityLow       HandoffPriority = "low"
	PriorityMedium    HandoffPriority = "medium"
	PriorityHigh      HandoffPriority = "high"
	PriorityImmediate HandoffPriority = "immediate"
)

// HandoffUrgency reflects the prospect's time pressure, independent of
// priority.
type HandoffUrgency string

// Handoff urgency constants.
const (
	HandoffCritical HandoffUrgency = "critical"
	HandoffUrgent   HandoffUrgency = "urgent"
	HandoffNormal   HandoffUrgency = "normal"
	HandoffLow      HandoffUrgency = "low"
)

// NotificationChannel names a delivery channel. The composer only selects
// channels; transports live outside this core.
type NotificationChannel string

// Notification channel constants.
const (
	ChannelEmail NotificationChannel = "email"
	ChannelSMS   NotificationChannel = "sms"
	ChannelChat  NotificationChannel = "chat"
)

// ProjectSpec is the project portion of a handoff package.
type ProjectSpec struct {
	Type           string
	Scope          string
	Requirements   []string
	Constraints    []string
	TechnicalNotes []string
}

// CommercialTerms is the commercial portion of a handoff package.
type CommercialTerms struct {
	Budget         BudgetBucket
	Timeline       TimelineBucket
	Urgency        UrgencyLevel
	EstimatedValue string
}

// HandoffPackage is the immutable snapshot handed to a human operator. It is
// generated at most once per prospect; later turns never edit an issued
// package.
type HandoffPackage struct {
	ID           string
	SessionID    string
	GeneratedAt  time.Time
	Contact      ContactInfo
	Business     BusinessProfile
	Project      ProjectSpec
	Commercial   CommercialTerms
	Validation   ValidationResult
	Priority     HandoffPriority
	Urgency      HandoffUrgency
	Channels     []NotificationChannel
	ResponseTime string
	Actions      []string
	Summary      string
	SummaryHTML  string
}
