package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"sync"
	"syscall"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/stackone-labs/guidelint/internal/cli/config"
	"github.com/stackone-labs/guidelint/internal/cli/output"
	"github.com/stackone-labs/guidelint/internal/scanner"
	"github.com/stackone-labs/guidelint/internal/watch"
	"github.com/stackone-labs/guidelint/pkg/guide"
	"github.com/stackone-labs/guidelint/pkg/lint"
	_ "github.com/stackone-labs/guidelint/pkg/lint/rules" // register rules
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Path     string   // Guides directory (positional, overrides config)
	Format   string   // Output format: text, markdown, json
	Strict   bool     // Exit non-zero when non-compliant files remain
	Severity string   // Minimum severity: error, warning, info, hint
	Disable  []string // Rule IDs to disable
	Rules    []string // Run only specific rules
	Jobs     int      // Parallel workers (0 = number of CPUs)
	Watch    bool     // Re-run on file changes
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Check connection guides for template compliance",
		Long: `Analyze connection guide MDX files for template compliance.

Every guide is checked against the integration guide template unless it
documents a simple connect flow, which is exempt. The report lists
excluded, compliant, and non-compliant files with the issues found.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Markdown: Documentation-friendly format
  - JSON: Machine-readable format`,
		Example: `  # Check the configured guides directory
  guidelint check

  # Check a specific directory
  guidelint check docs/connection-guides

  # Fail the build when guides are non-compliant
  guidelint check --strict

  # Output as JSON
  guidelint check --format json

  # Disable specific rules
  guidelint check --disable MD02,SE03

  # Only report errors (ignore hints)
  guidelint check --severity error

  # Re-run automatically while editing guides
  guidelint check --watch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Path = args[0]
			}
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Exit with code 1 when non-compliant files are found")
	cmd.Flags().StringVar(&opts.Severity, "severity", "", "Minimum severity: error, warning, info, hint")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().IntVar(&opts.Jobs, "jobs", 0, "Number of files to check in parallel (0 = number of CPUs)")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run the check when guide files change")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		mode := output.Mode(opts.Format)
		if !mode.Valid() {
			return fmt.Errorf("invalid format %q (valid: auto, text, markdown, json)", opts.Format)
		}
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
	}

	// The positional path wins over the configured guides directory
	root := cfg.GuidesDir
	if opts.Path != "" {
		root = opts.Path
	}

	// Command flags win over config values
	severity := cfg.Severity
	if cmd.Flags().Changed("severity") {
		severity = opts.Severity
	}
	strict := cfg.Strict
	if cmd.Flags().Changed("strict") {
		strict = opts.Strict
	}
	jobs := cfg.Jobs
	if cmd.Flags().Changed("jobs") {
		jobs = opts.Jobs
	}

	lintCfg, err := buildCheckConfig(cfg, opts, severity)
	if err != nil {
		return err
	}

	runner := &checkRunner{
		root:     root,
		fs:       afero.NewOsFs(),
		analyzer: lint.NewAnalyzer(lintCfg),
		jobs:     jobs,
		logger:   cmdCtx.Logger,
	}

	if opts.Watch {
		if strict {
			return fmt.Errorf("--watch cannot be combined with --strict")
		}
		if r.EffectiveMode() == output.ModeJSON {
			return fmt.Errorf("--watch cannot be combined with JSON output")
		}
		return runCheckWatch(cmd.Context(), r, runner)
	}

	report, err := runner.run(cmd.Context())
	if err != nil {
		return err
	}

	renderReport(r, report, uuid.NewString())

	// Exit with code 1 if non-compliant files remain
	if strict && report.HasFindings() {
		return fmt.Errorf("compliance issues found")
	}
	return nil
}

// buildCheckConfig merges rule settings from the project config and CLI
// flags, with flags taking precedence. Every disable, enable, and override
// entry must name a registered rule.
func buildCheckConfig(cfg *config.Config, opts *CheckOptions, severity string) (*lint.Config, error) {
	lintCfg := lint.NewConfig()

	// Apply project config first (lower precedence)
	if cfg != nil {
		for _, id := range cfg.DisabledRules {
			id = strings.TrimSpace(id)
			if err := checkRuleID(id); err != nil {
				return nil, err
			}
			lintCfg.Disable(id)
		}
		for id, sev := range cfg.SeverityOverrides {
			if err := checkRuleID(id); err != nil {
				return nil, err
			}
			if s, ok := lint.ParseSeverity(sev); ok {
				lintCfg.SetSeverity(id, s)
			}
		}
	}

	// Apply CLI overrides (higher precedence)
	for _, id := range opts.Disable {
		id = strings.TrimSpace(id)
		if err := checkRuleID(id); err != nil {
			return nil, err
		}
		lintCfg.Disable(id)
	}

	// If --rule is specified, run only the named rules
	for _, id := range opts.Rules {
		id = strings.TrimSpace(id)
		if err := checkRuleID(id); err != nil {
			return nil, err
		}
		lintCfg.Enable(id)
	}

	if s, ok := lint.ParseSeverity(severity); ok {
		lintCfg.SetMinSeverity(s)
	}

	return lintCfg, nil
}

func checkRuleID(id string) error {
	if _, ok := lint.GetByID(id); !ok {
		return fmt.Errorf("unknown rule %q (run 'guidelint rules' to see available rules)", id)
	}
	return nil
}

// checkRunner executes one compliance scan over a guides tree.
type checkRunner struct {
	root     string
	fs       afero.Fs
	analyzer *lint.Analyzer
	jobs     int
	logger   *slog.Logger
}

// checkOutcome holds the classification of a single guide.
type checkOutcome struct {
	path     string
	excluded bool
	diags    []lint.Diagnostic
}

func (cr *checkRunner) run(ctx context.Context) (*lint.Report, error) {
	collector := scanner.New(cr.fs)
	files, err := collector.Collect(cr.root)
	if err != nil {
		return nil, err
	}

	cr.logger.Debug("collected guides", "root", cr.root, "count", len(files))

	// Check files concurrently; the indexed slice keeps sorted order.
	outcomes := make([]checkOutcome, len(files))

	workers := cr.jobs
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, rel := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcomes[i] = cr.checkFile(collector, rel)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := lint.NewReport(cr.root)
	for _, oc := range outcomes {
		if oc.excluded {
			report.AddExcluded(oc.path)
			continue
		}
		report.AddResult(oc.path, oc.diags)
	}
	return report, nil
}

func (cr *checkRunner) checkFile(collector *scanner.Collector, rel string) checkOutcome {
	content, err := collector.Read(cr.root, rel)
	if err != nil {
		cr.logger.Warn("failed to read guide", "file", rel, "error", err)
		return checkOutcome{path: rel, diags: []lint.Diagnostic{lint.NewReadFailure(err)}}
	}

	doc := guide.Parse(rel, content)
	if doc.IsSimpleConnect() {
		return checkOutcome{path: rel, excluded: true}
	}
	return checkOutcome{path: rel, diags: cr.analyzer.Analyze(doc)}
}

// runCheckWatch runs an initial check, then re-runs on guide changes
// until interrupted.
func runCheckWatch(parent context.Context, r *output.Renderer, runner *checkRunner) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	// Reruns triggered by the watcher must not interleave output.
	var mu sync.Mutex
	rerun := func() {
		mu.Lock()
		defer mu.Unlock()
		report, err := runner.run(ctx)
		if err != nil {
			r.Warning(err.Error())
			return
		}
		renderReport(r, report, uuid.NewString())
	}

	rerun()
	r.Println("")
	r.Printf("Watching %s for changes. Press Ctrl+C to stop.\n", runner.root)

	w := watch.New(runner.root, runner.logger, func() {
		r.Println("")
		rerun()
	})
	return w.Run(ctx)
}

func renderReport(r *output.Renderer, report *lint.Report, runID string) {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		_ = r.JSON(checkJSONOutput(report, runID))
	case output.ModeMarkdown:
		renderReportMarkdown(r, report)
	default:
		renderReportText(r, report)
	}
}

func renderReportText(r *output.Renderer, report *lint.Report) {
	summary := report.Summarize()

	r.Printf("Found %d MDX files to analyze.\n", summary.Total)
	r.Println("")
	r.Println("=== ANALYSIS RESULTS ===")
	r.Println("")

	r.Printf("EXCLUDED (Simple Connect Guides): %d\n", summary.Excluded)
	for _, path := range report.Excluded {
		r.Printf("  - %s\n", path)
	}
	r.Println("")

	r.Printf("COMPLIANT FILES: %d\n", summary.Compliant)
	for _, path := range report.Compliant {
		r.Printf("  - %s\n", path)
	}
	r.Println("")

	r.Printf("NON-COMPLIANT FILES REQUIRING UPDATES: %d\n", summary.NonCompliant)
	for _, res := range report.NonCompliant {
		r.Println("")
		r.Println(r.Styles().FilePath.Render(res.Path))
		for _, d := range res.Diagnostics {
			r.Printf("   %s  %s  %s\n",
				severityStyle(r, d.Severity),
				r.Styles().Bold.Render(d.RuleID),
				d.Message,
			)
		}
	}
	r.Println("")

	r.Println("=== SUMMARY ===")
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Metric", "Count"})
	t.AppendRow(table.Row{"Total files analyzed", summary.Total})
	t.AppendRow(table.Row{"Simple connect guides (excluded)", summary.Excluded})
	t.AppendRow(table.Row{"Compliant files", summary.Compliant})
	t.AppendRow(table.Row{"Files needing updates", summary.NonCompliant})
	t.Render()
}

func renderReportMarkdown(r *output.Renderer, report *lint.Report) {
	summary := report.Summarize()

	r.Println(output.FormatHeader(1, "Guide Compliance Report"))
	r.Println("")
	r.Printf("Found %d MDX files to analyze.\n", summary.Total)
	r.Println("")

	r.Println(output.FormatHeader(2, fmt.Sprintf("Excluded (Simple Connect Guides): %d", summary.Excluded)))
	for _, path := range report.Excluded {
		r.Printf("- %s\n", path)
	}
	r.Println("")

	r.Println(output.FormatHeader(2, fmt.Sprintf("Compliant Files: %d", summary.Compliant)))
	for _, path := range report.Compliant {
		r.Printf("- %s\n", path)
	}
	r.Println("")

	r.Println(output.FormatHeader(2, fmt.Sprintf("Non-Compliant Files: %d", summary.NonCompliant)))
	for _, res := range report.NonCompliant {
		r.Println("")
		r.Println(output.FormatHeader(3, res.Path))
		for _, d := range res.Diagnostics {
			r.Printf("- **%s** (`%s`) %s\n", d.RuleID, d.Severity, d.Message)
		}
	}
	r.Println("")

	r.Println(output.FormatHeader(2, "Summary"))
	r.Println(output.FormatKeyValue("Total files analyzed", fmt.Sprintf("%d", summary.Total)))
	r.Println(output.FormatKeyValue("Simple connect guides (excluded)", fmt.Sprintf("%d", summary.Excluded)))
	r.Println(output.FormatKeyValue("Compliant files", fmt.Sprintf("%d", summary.Compliant)))
	r.Println(output.FormatKeyValue("Files needing updates", fmt.Sprintf("%d", summary.NonCompliant)))
}

func checkJSONOutput(report *lint.Report, runID string) output.CheckOutput {
	summary := report.Summarize()
	doc := output.CheckOutput{
		RunID: runID,
		Root:  report.Root,
		Summary: output.CheckSummary{
			Total:        summary.Total,
			Excluded:     summary.Excluded,
			Compliant:    summary.Compliant,
			NonCompliant: summary.NonCompliant,
		},
		Excluded:     append([]string{}, report.Excluded...),
		Compliant:    append([]string{}, report.Compliant...),
		NonCompliant: []output.CheckFileResult{},
	}
	for _, res := range report.NonCompliant {
		fileResult := output.CheckFileResult{Path: res.Path, Issues: []output.CheckIssue{}}
		for _, d := range res.Diagnostics {
			fileResult.Issues = append(fileResult.Issues, output.CheckIssue{
				RuleID:   d.RuleID,
				Severity: d.Severity.String(),
				Message:  d.Message,
			})
		}
		doc.NonCompliant = append(doc.NonCompliant, fileResult)
	}
	return doc
}

func severityStyle(r *output.Renderer, sev lint.Severity) string {
	switch sev {
	case lint.SeverityError:
		return r.Styles().Error.Render("error  ")
	case lint.SeverityWarning:
		return r.Styles().Warning.Render("warning")
	case lint.SeverityInfo:
		return r.Styles().Info.Render("info   ")
	case lint.SeverityHint:
		return r.Styles().Muted.Render("hint   ")
	default:
		return r.Styles().Muted.Render("unknown")
	}
}
