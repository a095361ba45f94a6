package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stackone-labs/guidelint/internal/cli/config"
	"github.com/stackone-labs/guidelint/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded config.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back
// to environment variables. The fallback keeps commands usable when
// they are executed outside the root command, as in tests.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	return &config.Config{
		GuidesDir:    getEnvOrDefault("GUIDELINT_GUIDES_DIR", config.DefaultGuidesDir),
		OutputFormat: getEnvOrDefault("GUIDELINT_OUTPUT", config.DefaultOutput),
		Severity:     getEnvOrDefault("GUIDELINT_SEVERITY", config.DefaultSeverity),
		Verbose:      os.Getenv("GUIDELINT_VERBOSE") == "true",
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
