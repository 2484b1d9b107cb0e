package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/prettysitter/pkg/errors"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[ui]
column_width = 72
dotted = true

[filter]
excluded_types = ["comment", "string"]

[debug]
trace = true
`)

	frags, err := Load(path)
	require.NoError(t, err)

	c, err := Merge(Default(), frags...)
	require.NoError(t, err)

	assert.Equal(t, 72, c.ColumnWidth)
	assert.True(t, c.Dotted)
	assert.Equal(t, []string{"comment", "string"}, c.ExcludedTypes)
	assert.True(t, c.Trace)
	assert.True(t, c.ShowText, "keys absent from the file keep their defaults")
	assert.Nil(t, c.OnlyTypes)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
ui:
  show_trivial: true
  indent_width: 2
tty:
  use_pager: true
`)

	frags, err := Load(path)
	require.NoError(t, err)

	c, err := Merge(Default(), frags...)
	require.NoError(t, err)

	assert.True(t, c.ShowTrivial)
	assert.Equal(t, 2, c.IndentWidth)
	assert.True(t, c.UsePager)
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[ui]
colour = true
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrOptionUnknown))
	assert.Contains(t, err.Error(), "ui.colour")
	assert.Contains(t, err.Error(), "ui.color", "error enumerates the recognized options")
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeConfig(t, "config.json", `{}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "config.toml", `
[ui]
column_width = 72
`)
	t.Setenv("PRETTYSITTER_UI__COLUMN_WIDTH", "50")
	t.Setenv("PRETTYSITTER_DEBUG__TRACE_ONLY", "true")

	frags, err := Load(path)
	require.NoError(t, err)

	c, err := Merge(Default(), frags...)
	require.NoError(t, err)

	assert.Equal(t, 50, c.ColumnWidth, "environment wins over the file")
	assert.True(t, c.TraceOnly)
}

func TestLoadMap(t *testing.T) {
	frags, err := LoadMap(map[string]interface{}{
		"ui.legend":         false,
		"filter.only_types": []string{"identifier"},
	})
	require.NoError(t, err)

	c, err := Merge(Default(), frags...)
	require.NoError(t, err)
	assert.False(t, c.Legend)
	assert.Equal(t, []string{"identifier"}, c.OnlyTypes)

	_, err = LoadMap(map[string]interface{}{"ui.wat": 1})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrOptionUnknown))
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, WriteDefault(path))
	require.Error(t, WriteDefault(path), "must refuse to overwrite")

	frags, err := Load(path)
	require.NoError(t, err)

	c, err := Merge(Default(), frags...)
	require.NoError(t, err)
	assert.Equal(t, Default().ColumnWidth, c.ColumnWidth)
	assert.Equal(t, Default().ShowText, c.ShowText)
}
