package rules

import (
	"strings"

	"github.com/stackone-labs/guidelint/pkg/guide"
	"github.com/stackone-labs/guidelint/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "SE02",
		Name:        "sections.available_data",
		Group:       "sections",
		Description: "Guides must contain an '## Available data' section",
		Severity:    lint.SeverityError,
		Check:       checkAvailableData,

		Rationale: `The Available data section lists which resources the integration exposes
once connected. It is the first thing solution engineers check when scoping a rollout.`,

		BadExample: `## Linking your Workday Account`,

		GoodExample: `## Available data

| Resource | Read | Write |
| -------- | ---- | ----- |
| Employees | Yes | No |`,
	})
}

func checkAvailableData(doc *guide.Document) []lint.Diagnostic {
	if strings.Contains(doc.Content, "## Available data") {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "SE02",
		Severity: lint.SeverityError,
		Message:  "Missing 'Available data' section",
	}}
}
