package tree

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/prettysitter/pkg/errors"
)

const sampleDump = `{
  "type": "module", "named": true, "startLine": 0, "text": "x = 1",
  "children": [
    {"type": "assignment", "named": true, "startLine": 0, "text": "x = 1",
     "children": [
       {"type": "identifier", "named": true, "startLine": 0, "text": "x", "field": "left"},
       {"type": "=", "named": false, "startLine": 0, "text": "="},
       {"type": "integer", "named": true, "startLine": 0, "text": "1", "field": "right"}
     ]}
  ]
}`

func TestDecode(t *testing.T) {
	root, err := Decode(strings.NewReader(sampleDump))
	require.NoError(t, err)

	assert.Equal(t, "module", root.Type())
	assert.True(t, root.IsNamed())
	assert.Equal(t, 0, root.StartLine())
	assert.Equal(t, "x = 1", root.Text())
	require.Equal(t, 1, root.NumChildren())

	assign := root.Child(0)
	require.Equal(t, 3, assign.NumChildren())
	assert.Equal(t, "left", assign.FieldNameForChild(0))
	assert.Equal(t, "", assign.FieldNameForChild(1), "anonymous token carries no field")
	assert.Equal(t, "right", assign.FieldNameForChild(2))

	eq := assign.Child(1)
	assert.Equal(t, "=", eq.Type())
	assert.False(t, eq.IsNamed())
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		dump string
		code errors.ErrorCode
	}{
		{
			name: "malformed_json",
			dump: `{"type": "module",`,
			code: errors.ErrTreeParse,
		},
		{
			name: "missing_type_tag",
			dump: `{"named": true, "text": "x"}`,
			code: errors.ErrTreeInvalid,
		},
		{
			name: "missing_type_tag_on_child",
			dump: `{"type": "module", "children": [{"text": "x"}]}`,
			code: errors.ErrTreeInvalid,
		},
		{
			name: "null_child",
			dump: `{"type": "module", "children": [null]}`,
			code: errors.ErrTreeInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.dump))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code),
				"expected %s, got %v", tt.code, err)
		})
	}
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDump), 0o644))

	root, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "module", root.Type())
}

func TestDecodeFileMissing(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTreeParse))
}
