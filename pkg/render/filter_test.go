package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/prettysitter/pkg/config"
	"github.com/arthur-debert/prettysitter/pkg/tree"
)

func leaf(kind, text string) *tree.SimpleNode {
	return &tree.SimpleNode{Kind: kind, Named: true, Span: text}
}

func token(kind string) *tree.SimpleNode {
	// anonymous token whose text equals its type, e.g. "(" or "def"
	return &tree.SimpleNode{Kind: kind, Span: kind}
}

func branch(kind, text string, children ...*tree.SimpleNode) *tree.SimpleNode {
	return &tree.SimpleNode{Kind: kind, Named: true, Span: text, Children: children}
}

func filterFor(t *testing.T, frags ...config.Fragment) Filter {
	t.Helper()
	cfg, err := config.Merge(config.Default(), frags...)
	if err != nil {
		t.Fatal(err)
	}
	return NewFilter(cfg)
}

func TestTrivial(t *testing.T) {
	f := filterFor(t)

	assert.True(t, f.Trivial(token("def")), "text equal to type tag is trivial")
	assert.True(t, f.Trivial(token("(")))
	assert.False(t, f.Trivial(leaf("identifier", "x")))
	assert.False(t, f.Trivial(leaf("string", `"def"`)))
}

func TestExcluded(t *testing.T) {
	f := filterFor(t, config.Filter{ExcludedTypes: []string{"comment"}})

	assert.True(t, f.Excluded(leaf("comment", "# hi")))
	assert.False(t, f.Excluded(leaf("identifier", "x")))

	none := filterFor(t)
	assert.False(t, none.Excluded(leaf("comment", "# hi")), "no exclusion set configured")
}

func TestExclusionBeatsEverything(t *testing.T) {
	// printworthy must be false for excluded types independent of other
	// settings
	f := filterFor(t,
		config.Filter{ExcludedTypes: []string{"comment"}},
		config.UI{ShowTrivial: config.Bool(true)},
	)
	assert.False(t, f.Printworthy(leaf("comment", "# hi")))
}

func TestIncludedPropagation(t *testing.T) {
	needle := leaf("identifier", "x")
	inner := branch("call", "x()", needle, token("("), token(")"))
	outer := branch("expression_statement", "x()", inner)
	unrelated := branch("block", "1", leaf("number", "1"))
	root := branch("module", "x()\n1", outer, unrelated)

	f := filterFor(t, config.Filter{OnlyTypes: []string{"identifier"}})

	assert.True(t, f.Included(needle), "childless node with listed type")
	assert.True(t, f.Included(inner), "parent of a match")
	assert.True(t, f.Included(outer), "grandparent of a match")
	assert.True(t, f.Included(root), "every ancestor of a match")
	assert.False(t, f.Included(unrelated), "subtree without a match")
	assert.False(t, f.Included(leaf("number", "1")), "childless node with unlisted type")

	all := filterFor(t)
	assert.True(t, all.Included(unrelated), "no allow-list includes everything")
}

func TestPrintworthy(t *testing.T) {
	tests := []struct {
		name  string
		frags []config.Fragment
		node  *tree.SimpleNode
		want  bool
	}{
		{
			name: "plain_node_is_printworthy",
			node: leaf("identifier", "x"),
			want: true,
		},
		{
			name: "trivial_hidden_by_default",
			node: token("def"),
			want: false,
		},
		{
			name:  "trivial_shown_on_request",
			frags: []config.Fragment{config.UI{ShowTrivial: config.Bool(true)}},
			node:  token("def"),
			want:  true,
		},
		{
			name:  "excluded_type",
			frags: []config.Fragment{config.Filter{ExcludedTypes: []string{"identifier"}}},
			node:  leaf("identifier", "x"),
			want:  false,
		},
		{
			name:  "not_included_by_allow_list",
			frags: []config.Fragment{config.Filter{OnlyTypes: []string{"string"}}},
			node:  leaf("identifier", "x"),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := filterFor(t, tt.frags...)
			assert.Equal(t, tt.want, f.Printworthy(tt.node))
		})
	}
}

func TestDisplayLeaf(t *testing.T) {
	f := filterFor(t)

	assert.True(t, f.DisplayLeaf(leaf("identifier", "x")), "no children")
	assert.True(t, f.DisplayLeaf(branch("parameters", "()", token("("), token(")"))),
		"all children trivial and hidden")
	assert.False(t, f.DisplayLeaf(branch("call", "f()", leaf("identifier", "f"))))

	showAll := filterFor(t, config.UI{ShowTrivial: config.Bool(true)})
	assert.False(t, showAll.DisplayLeaf(branch("parameters", "()", token("("), token(")"))),
		"trivial children count when shown")
	assert.True(t, showAll.DisplayLeaf(leaf("identifier", "x")))
}

func TestNodeTextEscapesNewlines(t *testing.T) {
	n := leaf("block", "a\nb")
	assert.Equal(t, `a\nb`, nodeText(n))
}
