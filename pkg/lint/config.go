package lint

// Config controls which rules run and at what severity.
type Config struct {
	// DisabledRules contains rule IDs to skip
	DisabledRules map[string]bool

	// EnabledRules restricts the run to the listed rule IDs.
	// Nil or empty means all registered rules run.
	EnabledRules map[string]bool

	// SeverityOverrides changes the default severity of rules
	SeverityOverrides map[string]Severity

	// MinSeverity drops diagnostics less severe than this level.
	// The default, SeverityHint, keeps everything.
	MinSeverity Severity
}

// NewConfig creates a default configuration with all rules enabled.
func NewConfig() *Config {
	return &Config{
		DisabledRules:     make(map[string]bool),
		EnabledRules:      make(map[string]bool),
		SeverityOverrides: make(map[string]Severity),
		MinSeverity:       SeverityHint,
	}
}

// IsDisabled returns true if the rule should be skipped.
func (c *Config) IsDisabled(ruleID string) bool {
	if c == nil {
		return false
	}
	if len(c.EnabledRules) > 0 && !c.EnabledRules[ruleID] {
		return true
	}
	return c.DisabledRules[ruleID]
}

// GetSeverity returns the severity for a rule, applying any override.
func (c *Config) GetSeverity(ruleID string, defaultSeverity Severity) Severity {
	if c != nil {
		if sev, ok := c.SeverityOverrides[ruleID]; ok {
			return sev
		}
	}
	return defaultSeverity
}

// Keeps reports whether a diagnostic at the given severity passes the
// minimum severity threshold.
func (c *Config) Keeps(severity Severity) bool {
	if c == nil {
		return true
	}
	return severity <= c.MinSeverity
}

// Disable disables a rule by ID.
func (c *Config) Disable(ruleID string) *Config {
	c.DisabledRules[ruleID] = true
	return c
}

// Enable restricts the run to the given rule ID (repeatable).
func (c *Config) Enable(ruleID string) *Config {
	c.EnabledRules[ruleID] = true
	return c
}

// SetSeverity overrides the severity for a rule.
func (c *Config) SetSeverity(ruleID string, severity Severity) *Config {
	c.SeverityOverrides[ruleID] = severity
	return c
}

// SetMinSeverity sets the reporting threshold.
func (c *Config) SetMinSeverity(severity Severity) *Config {
	c.MinSeverity = severity
	return c
}
