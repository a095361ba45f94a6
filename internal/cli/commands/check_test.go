package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackone-labs/guidelint/internal/cli/config"
	"github.com/stackone-labs/guidelint/internal/cli/output"
	"github.com/stackone-labs/guidelint/internal/cli/testutil"
	inttestutil "github.com/stackone-labs/guidelint/internal/testutil"
	"github.com/stackone-labs/guidelint/pkg/lint"
)

func TestNewCheckCommand(t *testing.T) {
	cmd := NewCheckCommand()

	assert.Equal(t, "check [path]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	// Verify flags exist
	flags := []string{"format", "strict", "severity", "disable", "rule", "jobs", "watch"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestBuildCheckConfig(t *testing.T) {
	t.Run("empty options", func(t *testing.T) {
		cfg, err := buildCheckConfig(nil, &CheckOptions{}, "hint")
		require.NoError(t, err)

		require.NotNil(t, cfg)
		assert.False(t, cfg.IsDisabled("MD01"))
		assert.True(t, cfg.Keeps(lint.SeverityHint))
	})

	t.Run("disable rules", func(t *testing.T) {
		opts := &CheckOptions{Disable: []string{"MD01", " SE03 "}}
		cfg, err := buildCheckConfig(nil, opts, "hint")
		require.NoError(t, err)

		assert.True(t, cfg.IsDisabled("MD01"))
		assert.True(t, cfg.IsDisabled("SE03"))
		assert.False(t, cfg.IsDisabled("MD02"))
	})

	t.Run("enable only specific rules", func(t *testing.T) {
		opts := &CheckOptions{Rules: []string{"FM01", "FM02"}}
		cfg, err := buildCheckConfig(nil, opts, "hint")
		require.NoError(t, err)

		assert.False(t, cfg.IsDisabled("FM01"))
		assert.False(t, cfg.IsDisabled("FM02"))
		for _, rule := range lint.GetAll() {
			if rule.ID != "FM01" && rule.ID != "FM02" {
				assert.True(t, cfg.IsDisabled(rule.ID), "rule %q should be disabled", rule.ID)
			}
		}
	})

	t.Run("project config disabled rules", func(t *testing.T) {
		projectCfg := &config.Config{DisabledRules: []string{"MD02", "SE03"}}
		cfg, err := buildCheckConfig(projectCfg, &CheckOptions{}, "hint")
		require.NoError(t, err)

		assert.True(t, cfg.IsDisabled("MD02"))
		assert.True(t, cfg.IsDisabled("SE03"))
		assert.False(t, cfg.IsDisabled("MD01"))
	})

	t.Run("project config severity overrides", func(t *testing.T) {
		projectCfg := &config.Config{SeverityOverrides: map[string]string{"SE03": "error", "MD02": "hint"}}
		cfg, err := buildCheckConfig(projectCfg, &CheckOptions{}, "hint")
		require.NoError(t, err)

		assert.Equal(t, lint.SeverityError, cfg.GetSeverity("SE03", lint.SeverityHint))
		assert.Equal(t, lint.SeverityHint, cfg.GetSeverity("MD02", lint.SeverityError))
		assert.Equal(t, lint.SeverityError, cfg.GetSeverity("MD01", lint.SeverityError))
	})

	t.Run("severity threshold", func(t *testing.T) {
		cfg, err := buildCheckConfig(nil, &CheckOptions{}, "error")
		require.NoError(t, err)

		assert.True(t, cfg.Keeps(lint.SeverityError))
		assert.False(t, cfg.Keeps(lint.SeverityHint))
	})

	t.Run("unknown rule in disable flag", func(t *testing.T) {
		opts := &CheckOptions{Disable: []string{"MD01", "XX99"}}
		_, err := buildCheckConfig(nil, opts, "hint")

		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown rule "XX99"`)
	})

	t.Run("unknown rule in severity overrides", func(t *testing.T) {
		projectCfg := &config.Config{SeverityOverrides: map[string]string{"ZZ01": "error"}}
		_, err := buildCheckConfig(projectCfg, &CheckOptions{}, "hint")

		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown rule "ZZ01"`)
	})
}

// memGuidesFs builds an in-memory guides tree with the shared fixtures.
func memGuidesFs(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("guides/ats", 0755))

	files := map[string]string{
		"guides/introduction.mdx":   "# Connection Guides\n",
		"guides/workday.mdx":        testutil.CompliantGuide,
		"guides/slack.mdx":          testutil.SimpleConnectGuide,
		"guides/ats/greenhouse.mdx": testutil.NonCompliantGuide,
	}
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0644))
	}
	return fs
}

func newTestRunner(t *testing.T, fs afero.Fs, cfg *lint.Config) *checkRunner {
	t.Helper()
	return &checkRunner{
		root:     "guides",
		fs:       fs,
		analyzer: lint.NewAnalyzer(cfg),
		jobs:     2,
		logger:   inttestutil.NewTestLogger(t),
	}
}

func TestCheckRunner_Run(t *testing.T) {
	runner := newTestRunner(t, memGuidesFs(t), nil)

	report, err := runner.run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"slack.mdx"}, report.Excluded)
	assert.Equal(t, []string{"workday.mdx"}, report.Compliant)
	require.Len(t, report.NonCompliant, 1)
	assert.Equal(t, filepath.Join("ats", "greenhouse.mdx"), report.NonCompliant[0].Path)
	assert.NotEmpty(t, report.NonCompliant[0].Diagnostics)
	assert.Equal(t, 3, report.Total())
	assert.True(t, report.HasFindings())
}

func TestCheckRunner_MissingRoot(t *testing.T) {
	runner := newTestRunner(t, afero.NewMemMapFs(), nil)

	_, err := runner.run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read guides directory")
}

// failingOpenFs fails reads for a single file path.
type failingOpenFs struct {
	afero.Fs
	failPath string
}

func (f *failingOpenFs) Open(name string) (afero.File, error) {
	if name == f.failPath {
		return nil, assert.AnError
	}
	return f.Fs.Open(name)
}

func TestCheckRunner_UnreadableFile(t *testing.T) {
	fs := &failingOpenFs{
		Fs:       memGuidesFs(t),
		failPath: filepath.Join("guides", "workday.mdx"),
	}
	runner := newTestRunner(t, fs, nil)

	report, err := runner.run(context.Background())
	require.NoError(t, err)

	// The unreadable guide lands in the non-compliant bucket with a
	// synthetic read issue.
	var found bool
	for _, res := range report.NonCompliant {
		if res.Path == "workday.mdx" {
			found = true
			require.Len(t, res.Diagnostics, 1)
			assert.Equal(t, lint.ReadFailureRuleID, res.Diagnostics[0].RuleID)
			assert.Contains(t, res.Diagnostics[0].Message, "Could not read file:")
		}
	}
	assert.True(t, found, "unreadable guide should be reported")
}

func runCheckCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewCheckCommand()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCheckCommand_TextReport(t *testing.T) {
	guidesDir := testutil.SetupTestGuides(t)

	out, _, err := runCheckCommand(t, guidesDir)
	require.NoError(t, err, "check without --strict should not fail")

	testutil.AssertContains(t, out, "Found 3 MDX files to analyze.")
	testutil.AssertContains(t, out, "=== ANALYSIS RESULTS ===")
	testutil.AssertContains(t, out, "EXCLUDED (Simple Connect Guides): 1")
	testutil.AssertContains(t, out, "slack.mdx")
	testutil.AssertContains(t, out, "COMPLIANT FILES: 1")
	testutil.AssertContains(t, out, "workday.mdx")
	testutil.AssertContains(t, out, "NON-COMPLIANT FILES REQUIRING UPDATES: 1")
	testutil.AssertContains(t, out, filepath.Join("ats", "greenhouse.mdx"))
	testutil.AssertContains(t, out, "=== SUMMARY ===")
	testutil.AssertContains(t, out, "Files needing updates")
	testutil.AssertNotContains(t, out, "introduction.mdx")
	testutil.AssertNoANSI(t, out)
}

func TestCheckCommand_StrictFailsOnFindings(t *testing.T) {
	guidesDir := testutil.SetupTestGuides(t)

	_, _, err := runCheckCommand(t, guidesDir, "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compliance issues found")
}

func TestCheckCommand_StrictPassesWhenClean(t *testing.T) {
	guidesDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(guidesDir, "workday.mdx"), []byte(testutil.CompliantGuide), 0644))

	_, _, err := runCheckCommand(t, guidesDir, "--strict")
	assert.NoError(t, err)
}

func TestCheckCommand_SeverityFiltersHints(t *testing.T) {
	guidesDir := testutil.SetupTestGuides(t)

	out, _, err := runCheckCommand(t, guidesDir, "--severity", "error")
	require.NoError(t, err)

	testutil.AssertNotContains(t, out, "Useful Links' section (recommended)")
	testutil.AssertContains(t, out, "Missing Warning section")
}

func TestCheckCommand_RuleSelection(t *testing.T) {
	guidesDir := testutil.SetupTestGuides(t)

	out, _, err := runCheckCommand(t, guidesDir, "--rule", "SE03")
	require.NoError(t, err)

	testutil.AssertContains(t, out, "Missing 'Useful Links' section (recommended)")
	testutil.AssertNotContains(t, out, "Missing Warning section")
}

func TestCheckCommand_DisableAllFindings(t *testing.T) {
	guidesDir := testutil.SetupTestGuides(t)

	out, _, err := runCheckCommand(t, guidesDir,
		"--disable", "FM03,MD01,MD02,MD03,MD04,SE01,SE02,SE03",
		"--strict",
	)
	require.NoError(t, err, "disabling every firing rule should leave the tree compliant")
	testutil.AssertContains(t, out, "COMPLIANT FILES: 2")
}

func TestCheckCommand_UnknownRule(t *testing.T) {
	guidesDir := testutil.SetupTestGuides(t)

	_, _, err := runCheckCommand(t, guidesDir, "--disable", "NOPE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown rule "NOPE"`)
}

func TestCheckCommand_JSONReport(t *testing.T) {
	guidesDir := testutil.SetupTestGuides(t)

	out, _, err := runCheckCommand(t, guidesDir, "--format", "json")
	require.NoError(t, err)

	var doc output.CheckOutput
	require.NoError(t, json.Unmarshal([]byte(out), &doc), "stdout should be pure JSON")

	assert.NotEmpty(t, doc.RunID)
	assert.Equal(t, guidesDir, doc.Root)
	assert.Equal(t, 3, doc.Summary.Total)
	assert.Equal(t, 1, doc.Summary.Excluded)
	assert.Equal(t, 1, doc.Summary.Compliant)
	assert.Equal(t, 1, doc.Summary.NonCompliant)
	require.Len(t, doc.NonCompliant, 1)
	assert.NotEmpty(t, doc.NonCompliant[0].Issues)
}

func TestCheckCommand_MarkdownReport(t *testing.T) {
	guidesDir := testutil.SetupTestGuides(t)

	out, _, err := runCheckCommand(t, guidesDir, "--format", "markdown")
	require.NoError(t, err)

	testutil.AssertContains(t, out, "# Guide Compliance Report")
	testutil.AssertContains(t, out, "## Summary")
	testutil.AssertValidMarkdown(t, out)
	testutil.AssertNoANSI(t, out)
}

func TestCheckCommand_InvalidFormat(t *testing.T) {
	guidesDir := testutil.SetupTestGuides(t)

	_, _, err := runCheckCommand(t, guidesDir, "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestCheckCommand_MissingRoot(t *testing.T) {
	_, _, err := runCheckCommand(t, filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read guides directory")
}

func TestCheckCommand_WatchRejectsStrict(t *testing.T) {
	guidesDir := testutil.SetupTestGuides(t)

	_, _, err := runCheckCommand(t, guidesDir, "--watch", "--strict")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch cannot be combined with --strict")
}

func TestCheckCommand_WatchRejectsJSON(t *testing.T) {
	guidesDir := testutil.SetupTestGuides(t)

	_, _, err := runCheckCommand(t, guidesDir, "--watch", "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON output")
}

func TestCheckJSONOutput_EmptyBucketsStayArrays(t *testing.T) {
	report := lint.NewReport("guides")

	raw, err := json.Marshal(checkJSONOutput(report, "run-1"))
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"excluded":[]`)
	assert.Contains(t, string(raw), `"compliant":[]`)
	assert.Contains(t, string(raw), `"non_compliant":[]`)
}

func TestSeverityStyleText(t *testing.T) {
	tr := testutil.NewTestRenderer(output.ModeText, false)

	assert.Equal(t, "error  ", severityStyle(tr.Renderer, lint.SeverityError))
	assert.Equal(t, "warning", severityStyle(tr.Renderer, lint.SeverityWarning))
	assert.Equal(t, "info   ", severityStyle(tr.Renderer, lint.SeverityInfo))
	assert.Equal(t, "hint   ", severityStyle(tr.Renderer, lint.SeverityHint))
}
