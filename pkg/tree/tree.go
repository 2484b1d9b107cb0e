// Package tree defines the read-only parse-tree surface the renderer
// consumes. Trees are produced elsewhere (typically by a tree-sitter
// parser); this package only describes their shape and provides an
// in-memory implementation used by the CLI and tests.
package tree

// Node is a single parse-tree node. Implementations are owned by the
// producing parser and must never be mutated by consumers.
type Node interface {
	// Type returns the grammar type tag, e.g. "identifier" or "(".
	Type() string

	// IsNamed reports whether the node is a named grammar rule as opposed
	// to an anonymous token.
	IsNamed() bool

	// StartLine returns the zero-based line the node starts on.
	StartLine() int

	// Text returns the raw source text the node spans.
	Text() string

	// NumChildren returns the number of direct children.
	NumChildren() int

	// Child returns the i-th child in document order.
	Child(i int) Node

	// FieldNameForChild returns the structural role of the i-th child in
	// its grammar rule ("body", "name", ...), or "" when it has none.
	FieldNameForChild(i int) string
}

// SimpleNode is an in-memory Node implementation. The JSON tags match the
// tree dump format consumed by the CLI.
type SimpleNode struct {
	Kind     string        `json:"type"`
	Named    bool          `json:"named"`
	Line     int           `json:"startLine"`
	Span     string        `json:"text"`
	Field    string        `json:"field,omitempty"`
	Children []*SimpleNode `json:"children,omitempty"`
}

// Type implements Node
func (n *SimpleNode) Type() string { return n.Kind }

// IsNamed implements Node
func (n *SimpleNode) IsNamed() bool { return n.Named }

// StartLine implements Node
func (n *SimpleNode) StartLine() int { return n.Line }

// Text implements Node
func (n *SimpleNode) Text() string { return n.Span }

// NumChildren implements Node
func (n *SimpleNode) NumChildren() int { return len(n.Children) }

// Child implements Node
func (n *SimpleNode) Child(i int) Node { return n.Children[i] }

// FieldNameForChild implements Node
func (n *SimpleNode) FieldNameForChild(i int) string { return n.Children[i].Field }
