package cmd_test

import (
	"bytes"
	"testing"

	"github.com/edgectl/edgectl/pkg/cli/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_ShowsHelp(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	rootCmd := cmd.NewRootCmd("v1.2.3", "abcdef", "2026-01-01")
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(nil)

	require.NoError(t, cmd.Execute(rootCmd))

	output := buf.String()
	assert.Contains(t, output, "edgectl")
	assert.Contains(t, output, "bindings")
	assert.Contains(t, output, "registry")
}

func TestRootCmd_Version(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	rootCmd := cmd.NewRootCmd("v1.2.3", "abcdef", "2026-01-01")
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute(rootCmd))

	assert.Contains(t, buf.String(), "v1.2.3")
	assert.Contains(t, buf.String(), "abcdef")
}
