package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// FakeTool is a shell script standing in for the external audit tool.
// Every run appends its argument vector to a log next to the script.
type FakeTool struct {
	Dir     string
	Path    string
	logFile string
}

// RequireShell skips tests that depend on /bin/sh scripts.
func RequireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tool scripts need a POSIX shell")
	}
}

// InstallFakeTool writes an executable script called name into a temp dir and
// prepends that dir to PATH for the rest of the test.
// body runs after the arguments are recorded (e.g. "exit 3").
func InstallFakeTool(t *testing.T, name, body string) *FakeTool {
	t.Helper()
	RequireShell(t)

	dir := t.TempDir()
	tool := &FakeTool{
		Dir:     dir,
		Path:    filepath.Join(dir, name),
		logFile: filepath.Join(dir, "invocations.log"),
	}

	script := fmt.Sprintf(`#!/bin/sh
line=""
for a in "$@"; do line="$line$a	"; done
printf '%%s\n' "$line" >> '%s'
%s
`, tool.logFile, body)

	require.NoError(t, os.WriteFile(tool.Path, []byte(script), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	return tool
}

// HideTools replaces PATH with an empty directory so no executable can be found.
func HideTools(t *testing.T) {
	t.Helper()
	t.Setenv("PATH", t.TempDir())
}

// Invocations returns the argument vectors of every run, oldest first.
func (f *FakeTool) Invocations(t *testing.T) [][]string {
	t.Helper()

	data, err := os.ReadFile(f.logFile)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)

	var runs [][]string
	for _, line := range strings.Split(strings.TrimSuffix(string(data), "\n"), "\n") {
		line = strings.TrimSuffix(line, "\t")
		if line == "" {
			runs = append(runs, []string{})
			continue
		}
		runs = append(runs, strings.Split(line, "\t"))
	}
	return runs
}

// LastArgs returns the argument vector of the most recent run.
func (f *FakeTool) LastArgs(t *testing.T) []string {
	t.Helper()
	runs := f.Invocations(t)
	require.NotEmpty(t, runs, "fake tool was never run")
	return runs[len(runs)-1]
}
