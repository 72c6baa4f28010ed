package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "vecplay dev\n", out)
}

func TestDemo(t *testing.T) {
	out, _, err := execute(t, "demo")
	require.NoError(t, err, "demo exits cleanly despite the final failing pop")
	assert.True(t, strings.HasPrefix(out, "# demo\n"))
	assert.Contains(t, out, "[1, 9, 2, 3]  size=4 cap=4")
	assert.Contains(t, out, "FAIL")
}

func TestRun_Success(t *testing.T) {
	path := writeScript(t, "name: grow\ncapacity: 2\nsteps:\n  - op: push_back\n    value: 1\n  - op: push_back\n    value: 2\n  - op: push_back\n    value: 3\n")
	out, _, err := execute(t, "run", path, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "[1, 2, 3]  size=3 cap=4")
}

func TestRun_FailingStep(t *testing.T) {
	path := writeScript(t, "name: bad\nsteps:\n  - op: pop_back\n  - op: push_back\n    value: 1\n")

	out, errOut, err := execute(t, "run", path)
	require.Error(t, err)
	assert.Contains(t, out, "FAIL")
	assert.NotContains(t, out, "value=1", "stops at the first failure")
	assert.Contains(t, errOut, "step failed")

	out, _, err = execute(t, "run", path, "--continue-on-error")
	require.NoError(t, err)
	assert.Contains(t, out, "[1]  size=1 cap=2")
}

func TestRun_BadInput(t *testing.T) {
	_, _, err := execute(t, "run", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, _, err = execute(t, "run")
	require.Error(t, err, "a script path is required")

	path := writeScript(t, "steps:\n  - op: sort\n")
	_, _, err = execute(t, "run", path)
	require.Error(t, err)

	_, _, err = execute(t, "demo", "--log-level", "loud")
	require.ErrorContains(t, err, "invalid --log-level")

	valid := writeScript(t, "steps:\n  - op: clear\n")
	_, _, err = execute(t, "run", valid, "--log-level", "loud")
	require.ErrorContains(t, err, "invalid --log-level")
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]string{"": "WARN", "debug": "DEBUG", "INFO": "INFO", "warning": "WARN", "error": "ERROR"} {
		lvl, err := parseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, lvl.String(), in)
	}
}
