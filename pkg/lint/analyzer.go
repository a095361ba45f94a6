package lint

import "github.com/stackone-labs/guidelint/pkg/guide"

// Analyzer runs registered compliance rules against parsed guides.
type Analyzer struct {
	config *Config
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{config: config}
}

// Analyze runs all enabled rules against the document in rule ID order.
// Severity overrides are applied before the minimum severity filter, so
// overriding a rule below the threshold suppresses its findings.
func (a *Analyzer) Analyze(doc *guide.Document) []Diagnostic {
	if doc == nil {
		return nil
	}

	var diagnostics []Diagnostic
	for _, rule := range GetAll() {
		if a.config.IsDisabled(rule.ID) {
			continue
		}

		diags := rule.Check(doc)
		for _, d := range diags {
			d.Severity = a.config.GetSeverity(rule.ID, d.Severity)
			if !a.config.Keeps(d.Severity) {
				continue
			}
			diagnostics = append(diagnostics, d)
		}
	}

	return diagnostics
}

// Config returns the analyzer's configuration.
func (a *Analyzer) Config() *Config {
	return a.config
}
