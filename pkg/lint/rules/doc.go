// Package rules contains the compliance rules for connection guides.
//
// Rules are organized by prefix to indicate their category:
//
//   - fm*_*.go: Frontmatter rules (the --- fence and its fields)
//   - md*_*.go: Markup rules (required MDX imports and components)
//   - se*_*.go: Section rules (required ## headings)
//
// Rule IDs sort into the canonical check order. Import this package to
// register all rules:
//
//	import _ "github.com/stackone-labs/guidelint/pkg/lint/rules"
package rules
