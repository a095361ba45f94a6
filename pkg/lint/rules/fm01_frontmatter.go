package rules

import (
	"github.com/stackone-labs/guidelint/pkg/guide"
	"github.com/stackone-labs/guidelint/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "FM01",
		Name:        "frontmatter.present",
		Group:       "frontmatter",
		Description: "Guides must open with a --- frontmatter block",
		Severity:    lint.SeverityError,
		Check:       checkFrontmatterPresent,

		Rationale: `The frontmatter block carries the title and description the docs site
renders on index and search pages. Without it the guide publishes with no metadata at all.`,

		BadExample: `# Connect Workday

Follow the steps below.`,

		GoodExample: `---
title: "Workday"
description: "Follow these steps to connect Workday via the StackOne Hub successfully."
---`,

		Fix: "Add a --- fenced block with title and description as the first lines of the file.",
	})
}

// checkFrontmatterPresent requires the --- fence at the top of the
// file. When it is missing the field-level rules (FM02, FM03) stay
// silent so the guide gets one actionable finding instead of three.
func checkFrontmatterPresent(doc *guide.Document) []lint.Diagnostic {
	if doc.HasFrontmatter {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "FM01",
		Severity: lint.SeverityError,
		Message:  "Missing frontmatter",
	}}
}
