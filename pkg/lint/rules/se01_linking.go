package rules

import (
	"fmt"
	"strings"

	"github.com/stackone-labs/guidelint/pkg/guide"
	"github.com/stackone-labs/guidelint/pkg/lint"
)

// genericLinkingHeadings are accepted in place of the provider-specific
// "Linking your <title> Account" heading.
var genericLinkingHeadings = []string{
	"## Linking your Account",
	"## Connecting to StackOne",
	"## Connect with StackOne",
	"## Connecting with StackOne",
}

func init() {
	lint.Register(lint.RuleDef{
		ID:          "SE01",
		Name:        "sections.linking",
		Group:       "sections",
		Description: "Guides must contain a Linking section heading",
		Severity:    lint.SeverityError,
		Check:       checkLinkingSection,

		Rationale: `The Linking section is where the account connection walkthrough lives.
The heading is either provider-specific ("Linking your Workday Account") or one of the
generic connect headings used by older guides.`,

		BadExample: `## Setup`,

		GoodExample: `## Linking your Workday Account`,

		Fix: "Add a '## Linking your <Provider> Account' heading above the connection steps.",
	})
}

// checkLinkingSection needs the provider name to build the expected
// heading, so it stays silent when no title was extracted (FM02
// reports that).
func checkLinkingSection(doc *guide.Document) []lint.Diagnostic {
	if !doc.HasTitle {
		return nil
	}

	if strings.Contains(doc.Content, fmt.Sprintf("## Linking your %s Account", doc.Title)) {
		return nil
	}
	for _, heading := range genericLinkingHeadings {
		if strings.Contains(doc.Content, heading) {
			return nil
		}
	}

	return []lint.Diagnostic{{
		RuleID:   "SE01",
		Severity: lint.SeverityError,
		Message:  fmt.Sprintf("Missing 'Linking your %s Account' section", doc.Title),
	}}
}
