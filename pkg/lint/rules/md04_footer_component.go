package rules

import (
	"strings"

	"github.com/stackone-labs/guidelint/pkg/guide"
	"github.com/stackone-labs/guidelint/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "MD04",
		Name:        "markup.footer_component",
		Group:       "markup",
		Description: "Guides must render <IntegrationFooter /> at the end",
		Severity:    lint.SeverityError,
		Check:       checkFooterComponent,

		Rationale: `Importing the footer snippet (MD01) is not enough; the guide must also
render it. The component closes every guide with the same support and feedback links.`,

		BadExample: `import IntegrationFooter from "/snippets/integration-footer.mdx"

## Useful Links`,

		GoodExample: `## Useful Links

<IntegrationFooter />`,
	})
}

func checkFooterComponent(doc *guide.Document) []lint.Diagnostic {
	if strings.Contains(doc.Content, "<IntegrationFooter />") {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "MD04",
		Severity: lint.SeverityError,
		Message:  "Missing IntegrationFooter component",
	}}
}
