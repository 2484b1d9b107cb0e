// Package render implements the tree-rendering engine: a recursive
// depth-first traversal that filters, classifies and colors parse-tree
// nodes, producing one column-aligned output line per printworthy node.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/prettysitter/pkg/colorer"
	"github.com/arthur-debert/prettysitter/pkg/config"
	"github.com/arthur-debert/prettysitter/pkg/logging"
	"github.com/arthur-debert/prettysitter/pkg/pager"
	"github.com/arthur-debert/prettysitter/pkg/tree"
)

// Renderer walks a parse tree and writes one line per printworthy node to
// its sink. A Renderer is built for one configuration; it holds no state
// across Render calls beyond that configuration.
type Renderer struct {
	cfg    config.Config
	col    *colorer.Colorer
	filter Filter
	marks  Marks
	sink   *Sink
	logger zerolog.Logger

	blueBrush colorer.Brush
	cyanBrush colorer.Brush
	grayBrush colorer.Brush
	// markBrushes is parallel to cfg.Marks.
	markBrushes []colorer.Brush

	// Diagnostics receives the advisory environment warnings. Defaults to
	// stderr.
	Diagnostics io.Writer

	// PagerFunc hands the joined buffered output to the pager. Defaults to
	// pager.Run.
	PagerFunc func(input string) error
}

// New builds a Renderer for the given configuration, writing to the sink.
// Mark colors are resolved here so an invalid configuration fails before
// any output is produced.
func New(cfg config.Config, sink *Sink) (*Renderer, error) {
	r := &Renderer{
		cfg:         cfg,
		col:         colorer.New(emphasisFor(cfg)),
		filter:      NewFilter(cfg),
		marks:       Marks(cfg.Marks),
		sink:        sink,
		logger:      logging.GetLogger("render"),
		Diagnostics: os.Stderr,
		PagerFunc:   pager.Run,
	}

	var err error
	if r.blueBrush, err = r.col.Brush(colorer.Blue); err != nil {
		return nil, err
	}
	if r.cyanBrush, err = r.col.Brush(colorer.Cyan); err != nil {
		return nil, err
	}
	if r.grayBrush, err = r.col.Brush(colorer.Gray); err != nil {
		return nil, err
	}
	for _, m := range cfg.Marks {
		brush, err := r.col.Brush(m.Color)
		if err != nil {
			return nil, err
		}
		r.markBrushes = append(r.markBrushes, brush)
	}

	return r, nil
}

// emphasisFor returns the default emphasis predicate: a node-type header
// renders emphasized when an allow-list is active and contains the type.
func emphasisFor(cfg config.Config) colorer.EmphasisFunc {
	if cfg.OnlyTypes == nil {
		return nil
	}
	only := typeSet(cfg.OnlyTypes)
	return func(text string) bool {
		_, ok := only[text]
		return ok
	}
}

// Render performs the environment checks, emits the optional legend, walks
// the tree, and in paging mode hands the buffered output to the pager.
func (r *Renderer) Render(root tree.Node) error {
	pager.Warn(r.cfg.Color, r.cfg.UsePager, r.Diagnostics)

	if r.cfg.Color && r.cfg.Legend {
		r.legend()
	}

	r.logger.Debug().Str("rootType", root.Type()).Msg("Render started")
	r.visit(root, "", 0, "")

	if r.cfg.UsePager {
		return r.PagerFunc(r.sink.Joined())
	}
	return nil
}

// legend emits one line mapping the mark group labels and the leaf
// indicator to their colors. Emphasis is forced off so labels never render
// bold under an active allow-list.
func (r *Renderer) legend() {
	restore := r.col.Persist(false)
	defer restore()

	parts := make([]string, 0, len(r.marks)+1)
	for i, m := range r.marks {
		parts = append(parts, r.markBrushes[i](m.Label))
	}
	parts = append(parts, r.cyanBrush("Leaves"))
	r.sink.PrintDirect("Color legend: " + strings.Join(parts, ", "))
}

// visit renders the node at the given depth with the inherited
// closing-suffix and reports whether anything was printed, which the
// parent uses to find its own last printworthy child.
func (r *Renderer) visit(n tree.Node, fieldName string, depth int, suffix string) bool {
	prefix := ""
	if fieldName != "" {
		prefix = fieldName + ": "
	}
	text := nodeText(n)
	name := displayName(n)

	if !r.filter.Printworthy(n) {
		if r.cfg.Trace {
			r.trace("🔴 skipped", name, text, depth, suffix)
		}
		return false
	}

	headerBrush := r.headerBrush(n)
	textBrush := r.textBrush(n)
	coloredName := headerBrush(name)

	if r.cfg.Trace {
		r.trace("🟢 entered", coloredName, text, depth, suffix)
	}

	header := r.indent(depth, prefix+r.col.ByIndex(depth, "(")+coloredName)
	trailing := r.grayBrush(fmt.Sprintf("%3d: ", n.StartLine())) + textBrush(text)
	suffix = r.col.ByIndex(depth, ")") + suffix

	last := -1
	for i := n.NumChildren() - 1; i >= 0; i-- {
		if r.filter.Printworthy(n.Child(i)) {
			last = i
			break
		}
	}

	if last < 0 {
		// effectively a leaf: the closing marker attaches to its own line
		header += suffix
		r.emit(header, trailing)
		return true
	}

	r.emit(header, trailing)
	for i := 0; i < n.NumChildren(); i++ {
		childSuffix := ""
		if r.cfg.CloseBracketsEarly && i == last {
			childSuffix = suffix
		}
		r.visit(n.Child(i), n.FieldNameForChild(i), depth+1, childSuffix)
	}
	if !r.cfg.CloseBracketsEarly {
		// a bare closing bracket on its own line, never repeating the
		// field-name prefix
		r.sink.Print(r.indent(depth, r.col.ByIndex(depth, ")")))
	}
	return true
}

// emit writes the header line, column-aligned against the trailing segment
// when text display is enabled.
func (r *Renderer) emit(header, trailing string) {
	if !r.cfg.ShowText {
		r.sink.Print(header)
		return
	}
	r.sink.Print(r.column(header) + trailing)
}

// headerBrush picks the color for the node-type header: the mark color if
// the node is marked, an indicator color if it carries real text, else
// muted.
func (r *Renderer) headerBrush(n tree.Node) colorer.Brush {
	if i := r.markIndex(n); i >= 0 {
		return r.markBrushes[i]
	}
	if !r.filter.Trivial(n) {
		return r.blueBrush
	}
	return r.grayBrush
}

// textBrush picks the color for the node text: the mark color if marked,
// the leaf indicator color for display leaves, else muted.
func (r *Renderer) textBrush(n tree.Node) colorer.Brush {
	if i := r.markIndex(n); i >= 0 {
		return r.markBrushes[i]
	}
	if r.filter.DisplayLeaf(n) {
		return r.cyanBrush
	}
	return r.grayBrush
}

func (r *Renderer) markIndex(n tree.Node) int {
	if i, ok := r.marks.Resolve(n); ok {
		return i
	}
	return -1
}

// displayName returns the type tag, quoted when the node is an anonymous
// token.
func displayName(n tree.Node) string {
	if n.IsNamed() {
		return n.Type()
	}
	return `"` + strings.ReplaceAll(n.Type(), `"`, `\"`) + `"`
}

// indent prefixes text with the indentation for the given depth.
func (r *Renderer) indent(depth int, text string) string {
	return strings.Repeat(" ", r.cfg.IndentWidth*depth) + text
}

// column pads the header to the configured width, measured on the
// style-stripped text. In dotted mode the fill is a gray dot run framed by
// single spaces, two columns wider than the plain fill. A header already
// wider than the configured width is emitted unpadded.
func (r *Renderer) column(text string) string {
	width := utf8.RuneCountInString(colorer.Strip(text))
	if width > r.cfg.ColumnWidth {
		return text
	}
	if r.cfg.Dotted {
		dots := strings.Repeat(".", r.cfg.ColumnWidth-width)
		if dots != "" {
			dots = r.grayBrush(dots)
		}
		return text + " " + dots + " "
	}
	return text + strings.Repeat(" ", r.cfg.ColumnWidth-width)
}

// trace emits one diagnostic line for the node visit. These lines are part
// of the output stream so the trace-only filter can isolate them.
func (r *Renderer) trace(event, name, text string, depth int, suffix string) {
	quoted := strings.ReplaceAll(text, "'", `\'`)
	if utf8.RuneCountInString(quoted) > 15 {
		quoted = string([]rune(quoted)[:12]) + "..."
	}
	r.sink.Print(
		r.grayBrush(tracePrefix+" "+event+" node_name=") +
			name +
			r.grayBrush(fmt.Sprintf(", text='%s', depth=%d, end='", quoted, depth)) +
			suffix +
			r.grayBrush("'"))
}
