// Package config provides configuration management for the guidelint CLI.
//
// Settings merge four layers with increasing precedence: built-in
// defaults, a guidelint.yaml file, GUIDELINT_ environment variables,
// and command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	GuidesDir         string            `koanf:"guides_dir"`
	OutputFormat      string            `koanf:"output"`
	Severity          string            `koanf:"severity"`
	Strict            bool              `koanf:"strict"`
	Jobs              int               `koanf:"jobs"`
	Verbose           bool              `koanf:"verbose"`
	NoColor           bool              `koanf:"no_color"`
	DisabledRules     []string          `koanf:"disabled_rules"`
	SeverityOverrides map[string]string `koanf:"severity_overrides"`

	// ProjectRoot is the directory relative paths resolve against. It is
	// derived at load time and never read from the config file.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultGuidesDir = "connection-guides"
	DefaultOutput    = "auto" // Auto-detect: styled on a TTY, plain otherwise
	DefaultSeverity  = "hint"
)
