package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/aretw0/bundleaudit/internal/cli"
	"github.com/aretw0/bundleaudit/internal/testutils"
	"github.com/aretw0/bundleaudit/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	config := filepath.Join(t.TempDir(), "absent.yaml")
	rootCmd.SetArgs(append([]string{"--config", config}, args...))
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands(t *testing.T) {
	t.Run("Tasks", func(t *testing.T) {
		out, err := execute(t, "tasks")
		require.NoError(t, err)
		assert.Contains(t, out, "bundle-audit-tasks bundle:audit:check")
		assert.Contains(t, out, "# Updates the bundler-audit vulnerability database")
		assert.NotContains(t, out, "bundler:audit:check")
	})

	t.Run("Graph", func(t *testing.T) {
		out, err := execute(t, "graph")
		require.NoError(t, err)
		assert.Contains(t, out, "bundler_audit -.-> bundle_audit\n")
	})

	t.Run("Version", func(t *testing.T) {
		out, err := execute(t, "version")
		require.NoError(t, err)
		assert.Equal(t, "bundle-audit-tasks version dev\n", out)
	})

	t.Run("Root Runs Task With Extra Args", func(t *testing.T) {
		tool := testutils.InstallFakeTool(t, domain.DefaultCommand, "exit 6")

		_, err := execute(t, "bundler:audit:update", "--", "--quiet")

		assert.Equal(t, 6, cli.ExitCode(err))
		assert.Equal(t, []string{"update", "--quiet"}, tool.LastArgs(t))
	})

	t.Run("Run Subcommand", func(t *testing.T) {
		tool := testutils.InstallFakeTool(t, domain.DefaultCommand, "exit 0")

		_, err := execute(t, "run", "bundle:audit")

		require.NoError(t, err)
		assert.Equal(t, []string{"check"}, tool.LastArgs(t))
	})
}
