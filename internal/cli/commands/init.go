package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stackone-labs/guidelint/internal/cli/output"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool
	var example bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new connection guide project",
		Long: `Initialize a new connection guide project with a default configuration.

This creates:
  - guidelint.yaml configuration file

Use --example to also create a connection-guides/ directory with sample
guides: a full integration guide, a simple connect guide, and an
introduction page.`,
		Example: `  # Initialize in current directory
  guidelint init

  # Initialize with sample guides
  guidelint init --example

  # Initialize in a new directory
  guidelint init my-docs --example

  # Force overwrite existing config
  guidelint init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			// Create renderer
			cfg := getConfig()
			mode := output.Mode(cfg.OutputFormat)
			r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

			if example {
				return runInitExample(r, dir, force)
			}
			return runInit(r, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")
	cmd.Flags().BoolVar(&example, "example", false, "Create sample guides alongside the configuration")

	return cmd
}

func runInit(r *output.Renderer, dir string, force bool) error {
	// Create directory if specified and doesn't exist
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	// Check if config already exists
	configPath := dir + "/guidelint.yaml"
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("guidelint.yaml already exists. Use --force to overwrite")
	}

	// Copy minimal template
	if err := copyTemplate("minimal", dir, force); err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}

	// List created files
	files, _ := listTemplateFiles("minimal")
	for _, f := range files {
		r.StatusLine(f, "success", "")
	}

	r.Println("")
	r.Success("Connection guide project initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Add your guides to connection-guides/")
	r.Println("  2. Run 'guidelint check' to analyze them")
	r.Println("  3. Run 'guidelint rules' to see every compliance rule")

	return nil
}

func runInitExample(r *output.Renderer, dir string, force bool) error {
	// Create directory if specified and doesn't exist
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	// Check if config already exists
	configPath := dir + "/guidelint.yaml"
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("guidelint.yaml already exists. Use --force to overwrite")
	}

	// Copy example template
	if err := copyTemplate("example", dir, force); err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}

	// List created files by category
	files, _ := listTemplateFiles("example")
	groups := groupTemplateFiles(files)

	// Display files by category
	r.Header(2, "Configuration")
	for _, f := range groups["config"] {
		r.StatusLine(f, "success", "")
	}

	r.Println("")
	r.Header(2, "Guides")
	for _, f := range groups["guides"] {
		r.StatusLine(f, "success", "")
	}

	r.Println("")
	r.Success("Connection guide project initialized with sample guides!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  guidelint check             Analyze the sample guides")
	r.Println("  guidelint check --strict    Fail the build on findings")
	r.Println("  guidelint rules             View the compliance rules")

	return nil
}
