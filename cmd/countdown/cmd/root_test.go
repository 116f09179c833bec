package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestRootCommand_RunsSession runs the root command with an initial duration and quits.
func TestRootCommand_RunsSession(t *testing.T) {
	var out bytes.Buffer

	rootCmd.SetIn(strings.NewReader("pause\nquit\n"))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "75"})

	require.NoError(t, rootCmd.Execute())
	require.Equal(t, "01:15  [Start]\n", out.String())
}

// TestRootCommand_RejectsExtraArgs enforces a single positional argument.
func TestRootCommand_RejectsExtraArgs(t *testing.T) {
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"1", "2"})

	require.Error(t, rootCmd.Execute())
}
