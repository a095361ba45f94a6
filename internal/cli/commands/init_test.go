package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/stackone-labs/guidelint/internal/cli/testutil"
)

func TestNewInitCommand(t *testing.T) {
	tests := []struct {
		name      string
		setupDir  func(t *testing.T, dir string) // setup before running
		args      []string
		wantErr   bool
		wantFiles []string
	}{
		{
			name:    "init empty directory",
			args:    []string{},
			wantErr: false,
			wantFiles: []string{
				"guidelint.yaml",
			},
		},
		{
			name: "init existing config without force",
			setupDir: func(_ *testing.T, dir string) {
				_ = os.WriteFile(filepath.Join(dir, "guidelint.yaml"), []byte("existing"), 0600)
			},
			args:    []string{},
			wantErr: true,
		},
		{
			name: "init existing config with force",
			setupDir: func(_ *testing.T, dir string) {
				_ = os.WriteFile(filepath.Join(dir, "guidelint.yaml"), []byte("existing"), 0600)
			},
			args:    []string{"--force"},
			wantErr: false,
			wantFiles: []string{
				"guidelint.yaml",
			},
		},
		{
			name:    "init example project",
			args:    []string{"--example"},
			wantErr: false,
			wantFiles: []string{
				"guidelint.yaml",
				".gitignore",
				"connection-guides",
				"connection-guides/introduction.mdx",
				"connection-guides/workday.mdx",
				"connection-guides/slack.mdx",
			},
		},
		{
			name:    "init into new directory",
			args:    []string{"my-docs", "--example"},
			wantErr: false,
			wantFiles: []string{
				"my-docs/guidelint.yaml",
				"my-docs/connection-guides/workday.mdx",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temp directory and change to it
			tmpDir := t.TempDir()
			oldWd, _ := os.Getwd()
			require.NoError(t, os.Chdir(tmpDir))
			defer func() { _ = os.Chdir(oldWd) }()

			// Run setup if provided
			if tt.setupDir != nil {
				tt.setupDir(t, tmpDir)
			}

			cmd := NewInitCommand()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			// Check expected files exist
			for _, f := range tt.wantFiles {
				path := filepath.Join(tmpDir, f)
				_, err := os.Stat(path)
				assert.False(t, os.IsNotExist(err), "expected file/dir %q to exist", f)
			}
		})
	}
}

func TestInitCommandMetadata(t *testing.T) {
	cmd := NewInitCommand()

	assert.Equal(t, "init [directory]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("force"), "--force flag should exist")
	assert.NotNil(t, cmd.Flags().Lookup("example"), "--example flag should exist")
}

func TestInitCreatesValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer func() { _ = os.Chdir(oldWd) }()

	cmd := NewInitCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	err := cmd.Execute()
	require.NoError(t, err)

	// Read and verify config content
	content, err := os.ReadFile("guidelint.yaml")
	require.NoError(t, err, "failed to read guidelint.yaml")

	var parsed map[string]interface{}
	require.NoError(t, yaml.Unmarshal(content, &parsed), "scaffolded config should be valid YAML")

	assert.Equal(t, "connection-guides", parsed["guides_dir"])
	assert.Equal(t, "auto", parsed["output"])
	assert.Equal(t, "hint", parsed["severity"])
	assert.Equal(t, false, parsed["strict"])
	assert.Equal(t, 0, parsed["jobs"])
}

// The sample guides shipped with --example must pass their own check.
func TestInitExampleGuidesAreCompliant(t *testing.T) {
	tmpDir := t.TempDir()

	cmd := NewInitCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{tmpDir, "--example"})
	require.NoError(t, cmd.Execute())

	out, _, err := runCheckCommand(t, filepath.Join(tmpDir, "connection-guides"), "--strict")
	require.NoError(t, err, "sample guides should have no findings")

	testutil.AssertContains(t, out, "EXCLUDED (Simple Connect Guides): 1")
	testutil.AssertContains(t, out, "COMPLIANT FILES: 1")
	testutil.AssertContains(t, out, "NON-COMPLIANT FILES REQUIRING UPDATES: 0")
}
