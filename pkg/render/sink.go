package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/prettysitter/pkg/colorer"
	"github.com/arthur-debert/prettysitter/pkg/config"
)

// tracePrefix marks per-node diagnostic lines in the output stream.
const tracePrefix = "DEBUG:"

// Sink receives finished output lines. In immediate mode each line goes
// straight to the writer; in paging mode lines accumulate in a buffer the
// caller hands to the pager once the render completes. The buffer belongs
// to the Sink's owner; no state survives outside it.
type Sink struct {
	w         io.Writer
	color     bool
	traceOnly bool
	buffered  bool
	lines     []string
}

// NewSink builds a sink for one render invocation. Buffering is on exactly
// when the configuration asks for a pager.
func NewSink(w io.Writer, cfg config.Config) *Sink {
	return &Sink{
		w:         w,
		color:     cfg.Color,
		traceOnly: cfg.TraceOnly,
		buffered:  cfg.UsePager,
	}
}

// Print emits one output line. With trace-only output active, lines whose
// style-stripped text lacks the trace prefix are dropped. Style sequences
// are stripped whenever color output is disabled.
func (s *Sink) Print(line string) {
	if s.traceOnly && !strings.HasPrefix(colorer.Strip(line), tracePrefix) {
		return
	}
	if !s.color {
		line = colorer.Strip(line)
	}
	if s.buffered {
		s.lines = append(s.lines, line)
		return
	}
	fmt.Fprintln(s.w, line)
}

// PrintDirect writes a line straight to the writer, bypassing both the
// buffer and the trace-only filter. Used for the legend, which precedes
// paged output.
func (s *Sink) PrintDirect(line string) {
	if !s.color {
		line = colorer.Strip(line)
	}
	fmt.Fprintln(s.w, line)
}

// Lines returns the buffered lines.
func (s *Sink) Lines() []string {
	return s.lines
}

// Joined returns the buffered lines joined for handing to a pager.
func (s *Sink) Joined() string {
	return strings.Join(s.lines, "\n")
}
