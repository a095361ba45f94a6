package rules

import (
	"fmt"
	"strings"

	"github.com/stackone-labs/guidelint/pkg/guide"
	"github.com/stackone-labs/guidelint/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "FM03",
		Name:        "frontmatter.description",
		Group:       "frontmatter",
		Description: "Frontmatter must contain the canonical description sentence",
		Severity:    lint.SeverityError,
		Check:       checkDescription,

		Rationale: `Guide descriptions appear verbatim in search results and on the hub index.
A uniform "Follow these steps to connect ..." sentence keeps the catalog scannable and
tells users what the page is before they open it.`,

		BadExample: `---
title: "Workday"
description: "Workday integration guide"
---`,

		GoodExample: `---
title: "Workday"
description: "Follow these steps to connect Workday via the StackOne Hub successfully."
---`,

		Fix: "Set the description to the canonical sentence for the provider named in the title.",
	})
}

// checkDescription requires a quoted description and compares it
// against the canonical sentence built from the title. Without a title
// there is no canonical sentence to compare against, so only presence
// is checked.
func checkDescription(doc *guide.Document) []lint.Diagnostic {
	if !doc.HasFrontmatter {
		return nil
	}

	if !doc.HasDescription {
		return []lint.Diagnostic{{
			RuleID:   "FM03",
			Severity: lint.SeverityError,
			Message:  "Missing description",
		}}
	}

	if !doc.HasTitle {
		return nil
	}

	expected := guide.ExpectedDescription(doc.Title)
	if doc.Description == expected || strings.HasPrefix(doc.Description, guide.DescriptionPrefix) {
		return nil
	}

	return []lint.Diagnostic{{
		RuleID:   "FM03",
		Severity: lint.SeverityError,
		Message:  fmt.Sprintf("Incorrect description format. Expected: '%s', Got: '%s'", expected, doc.Description),
	}}
}
