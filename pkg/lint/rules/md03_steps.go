package rules

import (
	"strings"

	"github.com/stackone-labs/guidelint/pkg/guide"
	"github.com/stackone-labs/guidelint/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "MD03",
		Name:        "markup.steps",
		Group:       "markup",
		Description: "Guides must structure instructions in a <Steps> component",
		Severity:    lint.SeverityError,
		Check:       checkSteps,

		Rationale: `The <Steps> component numbers the setup walkthrough and anchors each step
for deep linking. Prose instructions outside a <Steps> block render as an unstructured
wall of text.`,

		BadExample: `First create an API key. Then paste it into the hub.`,

		GoodExample: `<Steps>
  <Step title="Create an API key">...</Step>
  <Step title="Paste it into the hub">...</Step>
</Steps>`,
	})
}

func checkSteps(doc *guide.Document) []lint.Diagnostic {
	if strings.Contains(doc.Content, "<Steps>") {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "MD03",
		Severity: lint.SeverityError,
		Message:  "Missing Steps component",
	}}
}
