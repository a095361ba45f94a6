// Package lint provides the compliance rule framework for connection
// guides.
//
// # Rule Registration
//
// Rules are registered via init() functions when their package is
// imported:
//
//	import _ "github.com/stackone-labs/guidelint/pkg/lint/rules"
//
// # Rule Categories
//
//   - FM (Frontmatter): the --- fence and its title/description fields
//   - MD (Markup): required MDX imports and components
//   - SE (Sections): required ## headings
//
// Rule IDs sort into the order checks are expected to run, so an
// ID-ordered walk of the registry reproduces the canonical issue order.
//
// # Configuration
//
// Use Config to control which rules run and their severity:
//
//	cfg := lint.NewConfig()
//	cfg.Disable("SE03")
//	cfg.SetSeverity("MD02", lint.SeverityWarning)
//
// The Analyzer applies a Config to every document it checks:
//
//	analyzer := lint.NewAnalyzer(cfg)
//	diags := analyzer.Analyze(doc)
package lint
