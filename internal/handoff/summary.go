package handoff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/MrIridescent/digital-polymath-portfolio-sub001/internal/model"
)

// renderSummary composes the human-readable markdown digest embedded in the
// package and reused as notification content.
func renderSummary(pkg *model.HandoffPackage) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# New Qualified Lead — %s priority\n\n", pkg.Priority)
	fmt.Fprintf(&b, "Session `%s` · validation score %d/100 · respond %s\n\n",
		pkg.SessionID, pkg.Validation.Overall, pkg.ResponseTime)

	b.WriteString("## Contact\n\n")
	writeField(&b, "Name", pkg.Contact.Name)
	writeField(&b, "Email", pkg.Contact.Email)
	writeField(&b, "Phone", pkg.Contact.Phone)
	writeField(&b, "Company", pkg.Contact.Company)

	b.WriteString("\n## Project\n\n")
	writeField(&b, "Type", pkg.Project.Type)
	writeField(&b, "Budget", string(pkg.Commercial.Budget))
	writeField(&b, "Timeline", string(pkg.Commercial.Timeline))
	writeField(&b, "Urgency", string(pkg.Commercial.Urgency))
	writeField(&b, "Estimated value", pkg.Commercial.EstimatedValue)
	for _, req := range pkg.Project.Requirements {
		fmt.Fprintf(&b, "- Requirement: %s\n", req)
	}
	for _, note := range pkg.Project.TechnicalNotes {
		fmt.Fprintf(&b, "- Note: %s\n", note)
	}

	b.WriteString("\n## Validation\n\n")
	fmt.Fprintf(&b, "- Risk: %s, confidence: %s\n", pkg.Validation.Risk, pkg.Validation.Confidence)
	fmt.Fprintf(&b, "- Success probability: %d%%\n", pkg.Validation.SuccessProbability)
	for _, blocker := range pkg.Validation.Blockers {
		fmt.Fprintf(&b, "- Blocker: %s\n", blocker)
	}

	if len(pkg.Actions) > 0 {
		b.WriteString("\n## Recommended actions\n\n")
		for _, action := range pkg.Actions {
			fmt.Fprintf(&b, "1. %s\n", action)
		}
	}

	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "- **%s:** %s\n", label, value)
}

// renderHTML converts the markdown summary for channels that accept rich
// content. Render failures degrade to the raw markdown; notification content
// is best-effort.
func renderHTML(markdown string) string {
	var out bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &out); err != nil {
		return markdown
	}
	return out.String()
}
