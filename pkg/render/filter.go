package render

import (
	"strings"

	"github.com/arthur-debert/prettysitter/pkg/config"
	"github.com/arthur-debert/prettysitter/pkg/tree"
)

// nodeText returns the node's text with literal newlines replaced by the
// two-character escape so each node occupies exactly one output line.
func nodeText(n tree.Node) string {
	return strings.ReplaceAll(n.Text(), "\n", `\n`)
}

// Filter evaluates the per-node predicates for one configuration. All
// predicates are evaluated on each visit; nothing is memoized ahead of the
// traversal.
type Filter struct {
	showTrivial bool
	excluded    map[string]struct{} // nil when no exclusion set is configured
	only        map[string]struct{} // nil when no allow-list is configured
}

// NewFilter builds a Filter from the configuration's filter options.
func NewFilter(cfg config.Config) Filter {
	return Filter{
		showTrivial: cfg.ShowTrivial,
		excluded:    typeSet(cfg.ExcludedTypes),
		only:        typeSet(cfg.OnlyTypes),
	}
}

func typeSet(types []string) map[string]struct{} {
	if types == nil {
		return nil
	}
	s := make(map[string]struct{}, len(types))
	for _, t := range types {
		s[t] = struct{}{}
	}
	return s
}

// Trivial reports whether the node's rendered text equals its type tag
// verbatim: a fixed keyword or punctuation token carrying no distinct
// payload.
func (f Filter) Trivial(n tree.Node) bool {
	return n.Type() == nodeText(n)
}

// Excluded reports whether an exclusion set is configured and contains the
// node's type.
func (f Filter) Excluded(n tree.Node) bool {
	if f.excluded == nil {
		return false
	}
	_, ok := f.excluded[n.Type()]
	return ok
}

// Included reports whether the node passes the allow-list. Without an
// allow-list every node is included. A childless node must match the list
// itself; a node with children is included iff any descendant matches, so
// inclusion propagates upward through every ancestor of a match.
func (f Filter) Included(n tree.Node) bool {
	if f.only == nil {
		return true
	}
	if n.NumChildren() == 0 {
		_, ok := f.only[n.Type()]
		return ok
	}
	for i := 0; i < n.NumChildren(); i++ {
		if f.Included(n.Child(i)) {
			return true
		}
	}
	return false
}

// Printworthy reports whether the node contributes output at all. A node
// failing this predicate is also excluded from its parent's last-printworthy
// child computation.
func (f Filter) Printworthy(n tree.Node) bool {
	if f.Excluded(n) || !f.Included(n) {
		return false
	}
	return f.showTrivial || !f.Trivial(n)
}

// DisplayLeaf reports whether the node renders as non-expandable: it has no
// children, or trivial nodes are hidden and every child is trivial.
func (f Filter) DisplayLeaf(n tree.Node) bool {
	if n.NumChildren() == 0 {
		return true
	}
	if f.showTrivial {
		return false
	}
	for i := 0; i < n.NumChildren(); i++ {
		if !f.Trivial(n.Child(i)) {
			return false
		}
	}
	return true
}
