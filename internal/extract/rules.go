package extract

import (
	"regexp"

	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/model"
)

// keywordRule pairs a pre-compiled pattern with its result. Rules are
// evaluated in declaration order, first match wins, so the order of each
// table is part of the contract.
type keywordRule[T any] struct {
	pattern *regexp.Regexp
	result  T
}

func firstMatch[T any](rules []keywordRule[T], text string) (T, bool) {
	for _, rule := range rules {
		if rule.pattern.MatchString(text) {
			return rule.result, true
		}
	}
	var zero T
	return zero, false
}

// projectTypeRules is the ordered project-type catalog. The e-commerce rule
// precedes the website rule so "e-commerce site" classifies as e-commerce.
var projectTypeRules = []keywordRule[string]{
	{regexp.MustCompile(`e-?commerce|online (?:store|shop)|web shop|shopify|woocommerce`), "e-commerce"},
	{regexp.MustCompile(`mobile app|ios app|android|react native|flutter|mobile application`), "mobile"},
	{regexp.MustCompile(`\bai\b|artificial intelligence|machine learning|chatbot|automation|\bllm\b`), "ai"},
	{regexp.MustCompile(`security|penetration test|pentest|vulnerability|compliance audit`), "security"},
	{regexp.MustCompile(`\blogo\b|brand(?:ing)?\b|ui/ux|ui design|ux design|graphic design`), "design"},
	{regexp.MustCompile(`consult|advice|strategy session|second opinion|code review`), "consulting"},
	{regexp.MustCompile(`website|web site|landing page|web ?app|portal|\bsite\b`), "website"},
}

// intentRules is the ordered intent decision list. Utterances often match
// several categories; the earliest rule wins.
var intentRules = []keywordRule[model.Intent]{
	{regexp.MustCompile(`(?:\bi\b|\bwe\b).{0,12}\b(?:need|want)\b|\bbuild\b|\bdevelop\b|\bcreate\b|redesign|looking for`), model.IntentProjectInquiry},
	{regexp.MustCompile(`about you|who are you|your company|your experience|portfolio|tell me about`), model.IntentCompanyInfo},
	{regexp.MustCompile(`\bready\b|let'?s (?:do it|start|go)|sounds good|sign me up|go ahead|\byes\b`), model.IntentReadyToProceed},
	{regexp.MustCompile(`how much|\bprice\b|pricing|\bcost\b|\brates?\b|\bquote\b`), model.IntentPricing},
}

// budgetBucketRules matches explicit bucket keywords before any numeric
// parsing happens.
var budgetBucketRules = []keywordRule[model.BudgetBucket]{
	{regexp.MustCompile(`under \$?5k|less than \$?5k|below \$?5k`), model.BudgetUnder5K},
	{regexp.MustCompile(`\$?5k\s*(?:-|to)\s*\$?15k`), model.Budget5To15K},
	{regexp.MustCompile(`\$?15k\s*(?:-|to)\s*\$?30k`), model.Budget15To30K},
	{regexp.MustCompile(`\$?30k\s*(?:-|to)\s*\$?50k`), model.Budget30To50K},
	{regexp.MustCompile(`\$?100k\s*(?:\+|plus|or more)`), model.Budget100KPlus},
	{regexp.MustCompile(`\$?50k\s*(?:\+|plus|or more)`), model.Budget50KPlus},
}

// timelineRules maps delivery-window phrases onto timeline buckets.
var timelineRules = []keywordRule[model.TimelineBucket]{
	{regexp.MustCompile(`\basap\b|immediately|right away|right now|this week`), model.TimelineASAP},
	{regexp.MustCompile(`next month|within a month|couple of months|few weeks|1-3 months|two months|three months`), model.TimelineShort},
	{regexp.MustCompile(`this quarter|3-6 months|few months|six months|half a year`), model.TimelineMedium},
	{regexp.MustCompile(`next year|6\+ months|long term|down the road`), model.TimelineLong},
	{regexp.MustCompile(`flexible|no rush|no hurry|whenever|eventually`), model.TimelineFlexible},
}

// urgencyRules maps time-pressure phrases onto urgency levels. The low rule
// precedes the high rule so "no rush" is not caught by `\brush\b`. Utterances
// with a timeline signal but no urgency keyword fall back to medium.
var urgencyRules = []keywordRule[model.UrgencyLevel]{
	{regexp.MustCompile(`immediate|right now|today|emergency|critical`), model.UrgencyCritical},
	{regexp.MustCompile(`flexible|no rush|no hurry|whenever|eventually`), model.UrgencyLow},
	{regexp.MustCompile(`urgent|\basap\b|\brush\b|as soon as possible`), model.UrgencyHigh},
}

// businessTypeRules classifies the prospect's organization.
var businessTypeRules = []keywordRule[model.BusinessType]{
	{regexp.MustCompile(`enterprise|corporation|corporate|large company|fortune \d+`), model.BusinessEnterprise},
	{regexp.MustCompile(`small business|\bsmb\b|family business|local business`), model.BusinessSMB},
	{regexp.MustCompile(`start-?up|founder|\bmvp\b|seed round`), model.BusinessStartup},
	{regexp.MustCompile(`just me|personal project|for myself|freelanc|side project`), model.BusinessIndividual},
}

// industryRules tags the prospect's vertical when one is mentioned.
var industryRules = []keywordRule[string]{
	{regexp.MustCompile(`restaurant|cafe|food service`), "hospitality"},
	{regexp.MustCompile(`\bretail\b|storefront|brick.and.mortar`), "retail"},
	{regexp.MustCompile(`health|clinic|medical|dental`), "healthcare"},
	{regexp.MustCompile(`finance|fintech|banking|insurance`), "finance"},
	{regexp.MustCompile(`education|school|university|e-?learning`), "education"},
	{regexp.MustCompile(`real estate|property|realtor`), "real-estate"},
	{regexp.MustCompile(`\blegal\b|law firm|attorney`), "legal"},
}

// lifecycleRules tags where the business is in its life.
var lifecycleRules = []keywordRule[string]{
	{regexp.MustCompile(`just launched|brand new|about to launch|pre-?launch`), "launching"},
	{regexp.MustCompile(`growing|scaling|expanding`), "growing"},
	{regexp.MustCompile(`established|been around|for \d+ years`), "established"},
}

// Boolean signal patterns.
var (
	affirmationPattern  = regexp.MustCompile(`\bready\b|let'?s (?:do it|start|go)|sounds good|sign me up|go ahead|\byes\b`)
	authorityPattern    = regexp.MustCompile(`i'?m the owner|i am the owner|founder|\bceo\b|i decide|my decision|i'?m in charge|my call|sole proprietor`)
	stakeholderPattern  = regexp.MustCompile(`team is on board|everyone agrees|we'?re aligned|partners? agree|board approved|all on board`)
	paymentTermsPattern = regexp.MustCompile(`payment terms|deposit (?:is|sounds) fine|upfront works|terms (?:are|sound) (?:fine|good)|50% up ?front`)
	integrationPattern  = regexp.MustCompile(`integrat|webhook|\bapi\b|\bcrm\b|\berp\b|stripe|paypal|sync with`)
	successPattern      = regexp.MustCompile(`success|\bkpis?\b|metrics?|measure|conversion|\broi\b`)

	requirementPattern = regexp.MustCompile(`\bmust\b|\bshould\b|\bneeds? to\b|\brequire\b|\bfeatures?\b|\bhas to\b`)
	constraintPattern  = regexp.MustCompile(`constraint|\bdeadline\b|budget cap|must not\b|limited to|compliance requirement`)
	goalPattern        = regexp.MustCompile(`\bgoals?\b|\baim\b|objective|we want to|hope to|\bgrow\b|increase|improve`)
	challengePattern   = regexp.MustCompile(`\bproblem\b|challenge|struggl|pain point|losing|frustrat|\bissue\b`)
)

// Contact patterns. The name and company patterns run against the original
// (mixed-case) utterance so the capture group can require capitalization.
var (
	emailPattern   = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern   = regexp.MustCompile(`\+?\(?\d[\d\s().-]{8,}\d`)
	namePattern    = regexp.MustCompile(`(?:[Mm]y name is|I'?m|[Tt]his is)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`)
	companyPattern = regexp.MustCompile(`(?:[Mm]y company,? (?:is |called )?|[Oo]ur company,? (?:is |called )?|I run|[Ww]ork at|[Oo]n behalf of)\s*([A-Z][A-Za-z0-9&.\- ]{1,40})`)
)

// nameStoplist filters false positives from the "I'm <word>" pattern.
var nameStoplist = map[string]bool{
	"Ready":      true,
	"Sure":       true,
	"Interested": true,
	"Looking":    true,
	"Happy":      true,
	"Glad":       true,
	"Building":   true,
	"Not":        true,
}

// Numeric budget patterns. Bare integers are ignored; an amount needs a
// currency marker ($ prefix, k/m suffix, or comma-grouped thousands).
var (
	dollarAmountPattern = regexp.MustCompile(`\$\s*(\d+(?:,\d{3})*(?:\.\d+)?)\s*([km])?`)
	suffixAmountPattern = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\s?k\b`)
	commaAmountPattern  = regexp.MustCompile(`\b(\d{1,3}(?:,\d{3})+)\b`)
)
