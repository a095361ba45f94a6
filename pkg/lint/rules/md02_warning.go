package rules

import (
	"strings"

	"github.com/stackone-labs/guidelint/pkg/guide"
	"github.com/stackone-labs/guidelint/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "MD02",
		Name:        "markup.warning",
		Group:       "markup",
		Description: "Guides must contain a <Warning> callout",
		Severity:    lint.SeverityError,
		Check:       checkWarning,

		Rationale: `Every full guide opens with a <Warning> callout flagging the permissions
or plan requirements the provider imposes. Guides without one leave users to discover
those constraints mid-setup.`,

		BadExample: `## Linking your Workday Account`,

		GoodExample: `<Warning>
  You need a Workday administrator account to complete these steps.
</Warning>`,
	})
}

func checkWarning(doc *guide.Document) []lint.Diagnostic {
	if strings.Contains(doc.Content, "<Warning>") {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "MD02",
		Severity: lint.SeverityError,
		Message:  "Missing Warning section",
	}}
}
