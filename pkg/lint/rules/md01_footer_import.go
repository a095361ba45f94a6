package rules

import (
	"strings"

	"github.com/stackone-labs/guidelint/pkg/guide"
	"github.com/stackone-labs/guidelint/pkg/lint"
)

// footerImport is the exact import statement guides must carry.
const footerImport = `import IntegrationFooter from "/snippets/integration-footer.mdx"`

func init() {
	lint.Register(lint.RuleDef{
		ID:          "MD01",
		Name:        "markup.footer_import",
		Group:       "markup",
		Description: "Guides must import the IntegrationFooter snippet",
		Severity:    lint.SeverityError,
		Check:       checkFooterImport,

		Rationale: `The IntegrationFooter snippet renders the shared support links at the bottom
of every guide. Rendering it requires this import; without it the <IntegrationFooter />
tag fails at build time.`,

		BadExample: `<IntegrationFooter />`,

		GoodExample: `import IntegrationFooter from "/snippets/integration-footer.mdx"

<IntegrationFooter />`,

		Fix: "Add the import line directly below the frontmatter block.",
	})
}

func checkFooterImport(doc *guide.Document) []lint.Diagnostic {
	if strings.Contains(doc.Content, footerImport) {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "MD01",
		Severity: lint.SeverityError,
		Message:  "Missing IntegrationFooter import",
	}}
}
