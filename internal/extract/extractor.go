// Package extract pulls structured facts out of free-text utterances.
//
// All extraction is deterministic pattern matching: ordered rule tables
// evaluated first-match-wins, with no clock, randomness, or network
// dependence. Given the same utterance and history, Extract always returns
// the same facts.
package extract

import (
	"strconv"
	"strings"

	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/model"
)

// maxCapturedPhrase caps requirement/goal/challenge entries copied from an
// utterance.
const maxCapturedPhrase = 140

// Budget bucket thresholds in dollars.
const (
	threshold5K   = 5_000
	threshold15K  = 15_000
	threshold30K  = 30_000
	threshold50K  = 50_000
	threshold100K = 100_000
)

// Extractor scans utterances for budget, timeline, urgency, contact,
// business, and intent signals. It is stateless and safe for concurrent use.
type Extractor struct{}

// New creates an Extractor. All rule tables are package-level and
// pre-compiled.
func New() *Extractor {
	return &Extractor{}
}

// Extract scans a single utterance, with the prior utterances of the session
// available as context, and returns whatever facts it could find. Absent
// facts are zero values, never errors.
func (e *Extractor) Extract(utterance string, history []string) model.ExtractedFacts {
	trimmed := strings.TrimSpace(utterance)
	if trimmed == "" {
		return model.ExtractedFacts{Intent: model.IntentGeneral}
	}

	lower := strings.ToLower(trimmed)
	facts := model.ExtractedFacts{Intent: model.IntentGeneral}

	if intent, ok := firstMatch(intentRules, lower); ok {
		facts.Intent = intent
	}
	if projectType, ok := firstMatch(projectTypeRules, lower); ok {
		facts.ProjectType = projectType
	}
	facts.Budget = extractBudget(lower)
	if timeline, ok := firstMatch(timelineRules, lower); ok {
		facts.Timeline = timeline
	}
	if urgency, ok := firstMatch(urgencyRules, lower); ok {
		facts.Urgency = urgency
	} else if facts.Timeline != "" {
		facts.Urgency = model.UrgencyMedium
	}
	if businessType, ok := firstMatch(businessTypeRules, lower); ok {
		facts.BusinessType = businessType
	}
	if industry, ok := firstMatch(industryRules, lower); ok {
		facts.Industry = industry
	}
	if lifecycle, ok := firstMatch(lifecycleRules, lower); ok {
		facts.Lifecycle = lifecycle
	}

	e.extractContact(trimmed, &facts)

	// A bare affirmation on the opening turn carries no commitment; only
	// count readiness once a conversation exists.
	if len(history) > 0 && affirmationPattern.MatchString(lower) {
		facts.ReadyToProceed = true
	}
	facts.DecisionAuthority = authorityPattern.MatchString(lower)
	facts.StakeholdersAligned = stakeholderPattern.MatchString(lower)
	facts.PaymentTermsAgreed = paymentTermsPattern.MatchString(lower)
	facts.Integrations = integrationPattern.MatchString(lower)
	facts.SuccessCriteria = successPattern.MatchString(lower)

	if requirementPattern.MatchString(lower) {
		facts.Requirements = []string{clip(trimmed)}
	}
	if constraintPattern.MatchString(lower) {
		facts.Constraints = []string{clip(trimmed)}
	}
	if goalPattern.MatchString(lower) {
		facts.Goals = []string{clip(trimmed)}
	}
	if challengePattern.MatchString(lower) {
		facts.Challenges = []string{clip(trimmed)}
	}

	return facts
}

// extractContact fills contact fragments from the original-case utterance.
func (e *Extractor) extractContact(text string, facts *model.ExtractedFacts) {
	if email := emailPattern.FindString(text); email != "" {
		facts.Email = email
	}
	for _, candidate := range phonePattern.FindAllString(text, -1) {
		digits := countDigits(candidate)
		if digits >= 10 && digits <= 15 {
			facts.Phone = strings.TrimSpace(candidate)
			break
		}
	}
	if m := namePattern.FindStringSubmatch(text); m != nil {
		first := strings.Fields(m[1])[0]
		if !nameStoplist[first] {
			facts.Name = m[1]
		}
	}
	if m := companyPattern.FindStringSubmatch(text); m != nil {
		facts.Company = strings.TrimSpace(m[1])
	}
}

// extractBucket order: explicit bucket keywords win over numeric amounts;
// among numeric amounts the maximum wins, since people tend to state a
// ceiling last.
func extractBudget(lower string) model.BudgetBucket {
	if bucket, ok := firstMatch(budgetBucketRules, lower); ok {
		return bucket
	}

	max := 0.0
	for _, m := range dollarAmountPattern.FindAllStringSubmatch(lower, -1) {
		amount := parseAmount(m[1])
		switch m[2] {
		case "k":
			amount *= 1_000
		case "m":
			amount *= 1_000_000
		}
		if amount > max {
			max = amount
		}
	}
	for _, m := range suffixAmountPattern.FindAllStringSubmatch(lower, -1) {
		if amount := parseAmount(m[1]) * 1_000; amount > max {
			max = amount
		}
	}
	for _, m := range commaAmountPattern.FindAllStringSubmatch(lower, -1) {
		if amount := parseAmount(m[1]); amount > max {
			max = amount
		}
	}

	if max == 0 {
		return ""
	}
	return bucketFor(max)
}

func bucketFor(amount float64) model.BudgetBucket {
	switch {
	case amount < threshold5K:
		return model.BudgetUnder5K
	case amount < threshold15K:
		return model.Budget5To15K
	case amount < threshold30K:
		return model.Budget15To30K
	case amount < threshold50K:
		return model.Budget30To50K
	case amount < threshold100K:
		return model.Budget50KPlus
	default:
		return model.Budget100KPlus
	}
}

func parseAmount(raw string) float64 {
	cleaned := strings.ReplaceAll(raw, ",", "")
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return amount
}

func countDigits(s string) int {
	count := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return count
}

func clip(s string) string {
	if len(s) <= maxCapturedPhrase {
		return s
	}
	return s[:maxCapturedPhrase]
}
