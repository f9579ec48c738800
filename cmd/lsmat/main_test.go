// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute runs the root command in a clean directory with no config file.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"--no-color"}, args...))
	err := rootCmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestRoot_ReadsStdin(t *testing.T) {
	out, err := execute(t, "new A 2 3\nshapeof A\nquit\n")
	require.NoError(t, err)
	require.Contains(t, out, "(2,3)\n")
	require.Contains(t, out, "Cleaning up and quitting")
	require.NotContains(t, out, "lsmat > ")
}

func TestRun_Script(t *testing.T) {
	script := filepath.Join(t.TempDir(), "ops.lsm")
	require.NoError(t, os.WriteFile(script, []byte("new A 2 2\nfillident A\neval B=A*A\ndispnzt B 0\n"), 0o600))

	out, err := execute(t, "", "run", script)
	require.NoError(t, err)
	require.Contains(t, out, "(0,0): 1\n(1,1): 1\n")
}

func TestRun_MissingFile(t *testing.T) {
	_, err := execute(t, "", "run", filepath.Join(t.TempDir(), "nope.lsm"))
	require.ErrorContains(t, err, "failed to open script")
}

func TestConfig_PrintsEffectiveSettings(t *testing.T) {
	t.Setenv("LSMAT_SHELL_PRECISION", "6")

	out, err := execute(t, "", "config")
	require.NoError(t, err)
	require.Contains(t, out, "[shell]")
	require.Contains(t, out, "precision = 6")
	require.Contains(t, out, "[log]")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "lsmat "))
	require.Contains(t, out, "Go: go")
}
