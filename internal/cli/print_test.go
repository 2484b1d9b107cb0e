package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDump = `{
  "type": "module", "named": true, "startLine": 0, "text": "x = 1",
  "children": [
    {"type": "identifier", "named": true, "startLine": 0, "text": "x"},
    {"type": "comment", "named": true, "startLine": 0, "text": "# hi"}
  ]
}`

// runCmd executes the CLI with the given args and returns stdout.
func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	if stdin != "" {
		root.SetIn(strings.NewReader(stdin))
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeTestDump(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tree.json")
	require.NoError(t, os.WriteFile(path, []byte(testDump), 0o644))
	return path
}

func TestPrintFile(t *testing.T) {
	out, err := runCmd(t, "", "print", writeTestDump(t), "--no-color", "--no-legend")
	require.NoError(t, err)

	assert.Contains(t, out, "(module")
	assert.Contains(t, out, "(identifier")
	assert.NotContains(t, out, "\x1b[", "no escape sequences with color off")
}

func TestPrintStdin(t *testing.T) {
	out, err := runCmd(t, testDump, "print", "-", "--no-color", "--no-legend")
	require.NoError(t, err)
	assert.Contains(t, out, "(module")
}

func TestPrintExcludeFlag(t *testing.T) {
	out, err := runCmd(t, "", "print", writeTestDump(t),
		"--no-color", "--no-legend", "--exclude", "comment")
	require.NoError(t, err)

	assert.Contains(t, out, "identifier")
	assert.NotContains(t, out, "comment")
}

func TestPrintNoTextFlag(t *testing.T) {
	out, err := runCmd(t, "", "print", writeTestDump(t),
		"--no-color", "--no-legend", "--no-text")
	require.NoError(t, err)

	assert.Contains(t, out, "(module")
	assert.NotContains(t, out, "0: ", "line numbers only appear with text display")
}

func TestPrintConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[ui]\ncolor = false\nlegend = false\nindent_width = 2\n"), 0o644))

	out, err := runCmd(t, "", "print", writeTestDump(t), "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "\n  (identifier", "two-space indentation from the config file")
}

func TestPrintUnknownConfigKeyFails(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[ui]\ncolour = true\n"), 0o644))

	_, err := runCmd(t, "", "print", writeTestDump(t), "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.colour")
}

func TestPrintMissingFileFails(t *testing.T) {
	_, err := runCmd(t, "", "print", filepath.Join(t.TempDir(), "nope.json"), "--no-color")
	require.Error(t, err)
}

func TestPrintColorFlagsConflict(t *testing.T) {
	_, err := runCmd(t, "", "print", writeTestDump(t), "--color", "--no-color")
	require.Error(t, err)
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCmd(t, "", "config", "init", "--path", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	_, err = runCmd(t, "", "config", "init", "--path", path)
	require.Error(t, err, "refuses to overwrite")

	out, err = runCmd(t, "", "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "column_width = 100")
	assert.Contains(t, out, "close_brackets_early = true")
}
