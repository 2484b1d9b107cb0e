package config

import (
	"github.com/arthur-debert/prettysitter/pkg/tree"
)

// NodeSet is an opaque membership set of parse-tree nodes, keyed by node
// identity. Sets are supplied once per render and treated as immutable.
type NodeSet map[tree.Node]struct{}

// NewNodeSet builds a set from the given nodes.
func NewNodeSet(nodes ...tree.Node) NodeSet {
	s := make(NodeSet, len(nodes))
	for _, n := range nodes {
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether the node is a member.
func (s NodeSet) Contains(n tree.Node) bool {
	_, ok := s[n]
	return ok
}

// Mark is a named, colored set of nodes flagged for highlighting. A node
// matches at most the first mark (by registration order) that contains it.
type Mark struct {
	Label string
	Color string
	Nodes NodeSet
}

// Canonical mark labels for the semantic tagging collaborator.
const (
	LabelDefinitions = "Definitions"
	LabelUsages      = "Usages"
	LabelUndefined   = "Undefined"
)

// SemanticMarks builds the canonical mark groups for definition nodes,
// used-and-defined nodes, and used-but-undefined nodes. Empty groups are
// omitted so they don't shadow later registrations or show in the legend.
func SemanticMarks(definitions, usages, undefined []tree.Node) Marking {
	var marks []Mark
	if len(definitions) > 0 {
		marks = append(marks, Mark{Label: LabelDefinitions, Color: "red", Nodes: NewNodeSet(definitions...)})
	}
	if len(usages) > 0 {
		marks = append(marks, Mark{Label: LabelUsages, Color: "green2", Nodes: NewNodeSet(usages...)})
	}
	if len(undefined) > 0 {
		marks = append(marks, Mark{Label: LabelUndefined, Color: "yellow", Nodes: NewNodeSet(undefined...)})
	}
	return Marking{Marks: marks}
}
