package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRulesCommand(t *testing.T) {
	cmd := NewRulesCommand()

	assert.Equal(t, "rules [rule-id]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	// Verify flags exist
	flags := []string{"group", "verbose", "format"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRulesCommand_ListAll(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Compliance Rules")
	assert.Contains(t, output, "Frontmatter")
	assert.Contains(t, output, "Markup")
	assert.Contains(t, output, "Sections")
	assert.Contains(t, output, "FM01")
	assert.Contains(t, output, "SE03")
}

func TestRulesCommand_FilterByGroup(t *testing.T) {
	t.Run("filter by frontmatter group", func(t *testing.T) {
		cmd := NewRulesCommand()
		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{"--group", "frontmatter"})

		err := cmd.Execute()
		require.NoError(t, err)

		output := buf.String()
		assert.Contains(t, output, "FM01")
		assert.NotContains(t, output, "MD01")
		assert.NotContains(t, output, "Sections")
	})

	t.Run("filter by sections group", func(t *testing.T) {
		cmd := NewRulesCommand()
		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{"--group", "sections"})

		err := cmd.Execute()
		require.NoError(t, err)

		output := buf.String()
		assert.Contains(t, output, "SE01")
		assert.NotContains(t, output, "Frontmatter")
	})
}

func TestRulesCommand_ShowSpecificRule(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"MD01"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "MD01")
	assert.Contains(t, output, "markup")
	assert.Contains(t, output, "Description")
}

func TestRulesCommand_NotFound(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"INVALID99"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRulesCommand_JSON(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--format", "json"})

	err := cmd.Execute()
	require.NoError(t, err)

	var result RulesJSONOutput
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)
	assert.Positive(t, result.Count.Total)
	assert.Len(t, result.Rules, result.Count.Total)

	byGroup := 0
	for _, n := range result.Count.ByGroup {
		byGroup += n
	}
	assert.Equal(t, result.Count.Total, byGroup)
}

func TestRulesCommand_Markdown(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--format", "markdown"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "# Compliance Rules")
	assert.Contains(t, output, "## Frontmatter")
	assert.Contains(t, output, "## Markup")
	assert.Contains(t, output, "## Sections")
}

func TestRulesCommand_Verbose(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--verbose"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Compliance Rules")
	assert.Contains(t, output, "Guides must open with a --- frontmatter block")
	assert.Contains(t, output, "Why:")
}

func TestFilterRulesByGroup(t *testing.T) {
	t.Run("no filter", func(t *testing.T) {
		rules := ruleInfos()
		assert.Equal(t, rules, filterRulesByGroup(rules, ""))
	})

	t.Run("filter by group", func(t *testing.T) {
		filtered := filterRulesByGroup(ruleInfos(), "sections")
		require.NotEmpty(t, filtered)
		for _, r := range filtered {
			assert.Equal(t, "sections", r.Group)
		}
	})

	t.Run("unknown group", func(t *testing.T) {
		assert.Empty(t, filterRulesByGroup(ruleInfos(), "nope"))
	})
}

func TestGroupTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"frontmatter", "Frontmatter"},
		{"markup", "Markup"},
		{"sections", "Sections"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, groupTitle(tc.input))
		})
	}
}

func TestTruncateOneLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"short string", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"needs truncation", "hello world", 8, "hello..."},
		{"multiline", "hello\nworld", 20, "hello world"},
		{"multiline truncated", "hello\nworld", 8, "hello..."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := truncateOneLine(tc.input, tc.maxLen)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestRulesCommand_SingleRuleJSON(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"MD01", "--format", "json"})

	err := cmd.Execute()
	require.NoError(t, err)

	// Should be valid JSON
	var result map[string]interface{}
	err = json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)
	assert.Equal(t, "MD01", result["id"])
}

func TestRulesCommand_SingleRuleMarkdown(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"MD01", "--format", "markdown"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.True(t, strings.HasPrefix(output, "# MD01"))
}
