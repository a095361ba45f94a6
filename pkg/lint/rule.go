package lint

import "github.com/stackone-labs/guidelint/pkg/guide"

// RuleDef is a data-driven compliance rule definition.
// Rules are stateless; all context comes from the document passed to
// the Check function.
type RuleDef struct {
	ID          string    // Unique identifier, e.g., "FM01"
	Name        string    // Human-readable name, e.g., "frontmatter.present"
	Group       string    // Category: "frontmatter", "markup", "sections"
	Description string    // Human-readable description
	Severity    Severity  // Default severity
	Check       CheckFunc // The check function

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Guide content showing the anti-pattern
	GoodExample string // Guide content showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc analyzes a parsed guide and returns diagnostics.
// A nil or empty result means the guide passes the rule.
type CheckFunc func(doc *guide.Document) []Diagnostic

// Diagnostic represents a single compliance finding in a guide.
type Diagnostic struct {
	RuleID   string   `json:"rule_id"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// ReadFailureRuleID is the reserved ID for the synthetic diagnostic
// attached when a guide cannot be read. It is not a registered rule.
const ReadFailureRuleID = "IO01"

// NewReadFailure builds the diagnostic for an unreadable guide.
func NewReadFailure(err error) Diagnostic {
	return Diagnostic{
		RuleID:   ReadFailureRuleID,
		Severity: SeverityError,
		Message:  "Could not read file: " + err.Error(),
	}
}

// RuleInfo provides metadata about a rule for documentation/tooling.
// This is a DTO; it carries data without behavior.
type RuleInfo struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Group           string   `json:"group"`
	Description     string   `json:"description"`
	DefaultSeverity Severity `json:"default_severity"`

	// Documentation fields
	Rationale   string `json:"rationale,omitempty"`
	BadExample  string `json:"bad_example,omitempty"`
	GoodExample string `json:"good_example,omitempty"`
	Fix         string `json:"fix,omitempty"`
}

// Info extracts the rule's metadata.
func (r RuleDef) Info() RuleInfo {
	return RuleInfo{
		ID:              r.ID,
		Name:            r.Name,
		Group:           r.Group,
		Description:     r.Description,
		DefaultSeverity: r.Severity,
		Rationale:       r.Rationale,
		BadExample:      r.BadExample,
		GoodExample:     r.GoodExample,
		Fix:             r.Fix,
	}
}
