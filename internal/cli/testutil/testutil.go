// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stackone-labs/guidelint/internal/cli/output"
)

// CompliantGuide is a connection guide that satisfies every rule.
const CompliantGuide = `---
title: "Workday"
description: "Follow these steps to connect Workday via the StackOne Hub successfully."
---

import IntegrationFooter from "/snippets/integration-footer.mdx"

<Warning>
  You need a Workday administrator account to complete these steps.
</Warning>

## Linking your Workday Account

<Steps>
  <Step title="Open the hub">Select Workday from the list.</Step>
</Steps>

## Available data

Employees, employments and time off.

## Useful Links

- [Workday API documentation](https://community.workday.com/api)

<IntegrationFooter />
`

// SimpleConnectGuide documents a one-click connect flow and is exempt
// from the compliance template.
const SimpleConnectGuide = `---
title: "Slack"
description: "Connect Slack in one click."
---

Click the Connect button to link your Slack workspace.
`

// NonCompliantGuide is a full guide missing most template elements.
const NonCompliantGuide = `---
title: "Greenhouse"
description: "Use your Greenhouse API Key to connect."
---

## Setup

Generate an API Key under Dev Center and paste it into the hub.
`

// SetupTestGuides creates a temporary guides directory with one
// compliant guide, one simple connect guide, one non-compliant guide,
// and an introduction file. It returns the guides directory path.
func SetupTestGuides(t *testing.T) string {
	t.Helper()

	guidesDir := filepath.Join(t.TempDir(), "connection-guides")

	if err := os.MkdirAll(filepath.Join(guidesDir, "ats"), 0755); err != nil {
		t.Fatalf("failed to create guides directory: %v", err)
	}

	files := map[string]string{
		"introduction.mdx":   "# Connection Guides\n",
		"workday.mdx":        CompliantGuide,
		"slack.mdx":          SimpleConnectGuide,
		"ats/greenhouse.mdx": NonCompliantGuide,
	}
	for name, content := range files {
		path := filepath.Join(guidesDir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to create %s: %v", name, err)
		}
	}

	return guidesDir
}

// TestRenderer wraps a Renderer for testing with captured output buffers.
type TestRenderer struct {
	*output.Renderer
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode
// and TTY state. Output is captured in buffers for inspection.
func NewTestRenderer(mode output.Mode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, errOut, isTTY, mode),
		Out:      out,
		ErrOut:   errOut,
	}
}

// NewTestRendererAuto creates a new test renderer with auto mode
// detection. Non-TTY auto mode renders plain text.
func NewTestRendererAuto() *TestRenderer {
	return NewTestRenderer(output.ModeAuto, false)
}

// NewTestRendererText creates a new test renderer in text mode (simulated TTY).
func NewTestRendererText() *TestRenderer {
	return NewTestRenderer(output.ModeText, true)
}

// NewTestRendererMarkdown creates a new test renderer in markdown mode.
func NewTestRendererMarkdown() *TestRenderer {
	return NewTestRenderer(output.ModeMarkdown, false)
}

// NewTestRendererJSON creates a new test renderer in JSON mode.
func NewTestRendererJSON() *TestRenderer {
	return NewTestRenderer(output.ModeJSON, false)
}

// Output returns the captured stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// ErrorOutput returns the captured stderr output as a string.
func (tr *TestRenderer) ErrorOutput() string {
	return tr.ErrOut.String()
}

// Reset clears both output buffers.
func (tr *TestRenderer) Reset() {
	tr.Out.Reset()
	tr.ErrOut.Reset()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertContains checks that the string contains the expected substring.
func AssertContains(t *testing.T, s, expected string) {
	t.Helper()
	if !strings.Contains(s, expected) {
		t.Errorf("string %q does not contain expected %q", s, expected)
	}
}

// AssertNotContains checks that the string does not contain the substring.
func AssertNotContains(t *testing.T, s, unexpected string) {
	t.Helper()
	if strings.Contains(s, unexpected) {
		t.Errorf("string %q unexpectedly contains %q", s, unexpected)
	}
}

// AssertValidMarkdown performs basic markdown validation. It checks for
// unclosed code fences and headers without content.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()

	fenceCount := strings.Count(md, "```")
	if fenceCount%2 != 0 {
		t.Errorf("unbalanced code fences in markdown: found %d occurrences", fenceCount)
	}

	lines := strings.Split(md, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.TrimLeft(trimmed, "# ") == "" {
			t.Errorf("empty header at line %d: %q", i+1, line)
		}
	}
}
