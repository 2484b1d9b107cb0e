package tree

import (
	"encoding/json"
	"io"
	"os"

	"github.com/arthur-debert/prettysitter/pkg/errors"
	"github.com/arthur-debert/prettysitter/pkg/logging"
)

// Decode reads a JSON tree dump and returns its root node.
//
// The dump format is one JSON object per node:
//
//	{"type": "module", "named": true, "startLine": 0, "text": "...",
//	 "children": [{"type": "identifier", "field": "name", ...}]}
//
// The "field" key carries the child's structural role in its parent and is
// therefore stored on the child object.
func Decode(r io.Reader) (*SimpleNode, error) {
	logger := logging.GetLogger("tree")

	var root SimpleNode
	dec := json.NewDecoder(r)
	if err := dec.Decode(&root); err != nil {
		return nil, errors.Wrap(err, errors.ErrTreeParse, "failed to decode tree dump")
	}

	if err := validate(&root); err != nil {
		return nil, err
	}

	logger.Debug().Str("rootType", root.Kind).Int("children", len(root.Children)).Msg("Decoded tree dump")
	return &root, nil
}

// DecodeFile reads a JSON tree dump from the given path.
func DecodeFile(path string) (*SimpleNode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTreeParse, "failed to open tree dump %s", path)
	}
	defer func() { _ = f.Close() }()
	return Decode(f)
}

// validate walks the decoded tree and rejects nodes without a type tag.
func validate(n *SimpleNode) error {
	if n.Kind == "" {
		return errors.New(errors.ErrTreeInvalid, "tree node is missing its type tag")
	}
	for _, c := range n.Children {
		if c == nil {
			return errors.Newf(errors.ErrTreeInvalid, "node %q has a null child", n.Kind)
		}
		if err := validate(c); err != nil {
			return err
		}
	}
	return nil
}
