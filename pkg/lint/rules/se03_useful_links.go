package rules

import (
	"strings"

	"github.com/stackone-labs/guidelint/pkg/guide"
	"github.com/stackone-labs/guidelint/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "SE03",
		Name:        "sections.useful_links",
		Group:       "sections",
		Description: "Guides should contain a '## Useful Links' section",
		Severity:    lint.SeverityHint,
		Check:       checkUsefulLinks,

		Rationale: `The Useful Links section points at the provider's own API and permission
docs. It is a recommendation rather than a hard template requirement, but under the
default severity threshold a missing section still keeps the guide out of the
compliant bucket.`,

		BadExample: `<IntegrationFooter />`,

		GoodExample: `## Useful Links

- [Workday API documentation](https://community.workday.com/api)`,
	})
}

func checkUsefulLinks(doc *guide.Document) []lint.Diagnostic {
	if strings.Contains(doc.Content, "## Useful Links") {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "SE03",
		Severity: lint.SeverityHint,
		Message:  "Missing 'Useful Links' section (recommended)",
	}}
}
