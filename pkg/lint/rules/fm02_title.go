package rules

import (
	"github.com/stackone-labs/guidelint/pkg/guide"
	"github.com/stackone-labs/guidelint/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "FM02",
		Name:        "frontmatter.title",
		Group:       "frontmatter",
		Description: "Frontmatter must contain a quoted title field",
		Severity:    lint.SeverityError,
		Check:       checkTitle,

		Rationale: `The title names the provider and feeds the canonical description sentence
and the Linking section heading. It must be a quoted single-line scalar so every
consumer reads the same value.`,

		BadExample: `---
title: Workday
---`,

		GoodExample: `---
title: "Workday"
---`,

		Fix: "Add a title field with the provider name in quotes.",
	})
}

func checkTitle(doc *guide.Document) []lint.Diagnostic {
	// FM01 already reported the missing block.
	if !doc.HasFrontmatter {
		return nil
	}
	if doc.HasTitle {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "FM02",
		Severity: lint.SeverityError,
		Message:  "Missing or incorrectly formatted title",
	}}
}
