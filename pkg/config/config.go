// Package config models the renderer's layered configuration.
//
// Options come in independent groups (UI, Filter, Marking, TTY, Debug) that
// are overlaid in order onto a prior effective configuration: a fragment's
// explicitly-set fields win, unset fields retain the prior values. Unknown
// color names and malformed values fail at merge time, never during a
// render.
package config

import (
	"github.com/arthur-debert/prettysitter/pkg/colorer"
	"github.com/arthur-debert/prettysitter/pkg/errors"
)

// Config is the effective configuration for one render invocation. All
// fields are concrete; defaults are documented on Default.
type Config struct {
	// UI layout
	ShowText           bool
	ShowTrivial        bool
	CloseBracketsEarly bool
	Color              bool
	Legend             bool
	Dotted             bool
	ColumnWidth        int
	IndentWidth        int

	// Filtering. A nil slice means the filter is not configured, which is
	// distinct from an empty one.
	ExcludedTypes []string
	OnlyTypes     []string

	// Marking, in registration order.
	Marks []Mark

	// TTY
	UsePager bool

	// Debug
	Trace     bool
	TraceOnly bool
}

// Default returns the documented default configuration: text shown, trivial
// nodes hidden, brackets closed early, color and legend on, 100-column
// alignment with 4-space indents, no filters, no marks, no pager, no trace.
func Default() Config {
	return Config{
		ShowText:           true,
		ShowTrivial:        false,
		CloseBracketsEarly: true,
		Color:              true,
		Legend:             true,
		Dotted:             false,
		ColumnWidth:        100,
		IndentWidth:        4,
	}
}

// Fragment is one option group overlaid onto a Config during Merge.
type Fragment interface {
	overlay(*Config)
}

// UI holds layout options. Nil fields are unset.
type UI struct {
	ShowText           *bool
	ShowTrivial        *bool
	CloseBracketsEarly *bool
	Color              *bool
	Legend             *bool
	Dotted             *bool
	ColumnWidth        *int
	IndentWidth        *int
}

func (f UI) overlay(c *Config) {
	setBool(&c.ShowText, f.ShowText)
	setBool(&c.ShowTrivial, f.ShowTrivial)
	setBool(&c.CloseBracketsEarly, f.CloseBracketsEarly)
	setBool(&c.Color, f.Color)
	setBool(&c.Legend, f.Legend)
	setBool(&c.Dotted, f.Dotted)
	setInt(&c.ColumnWidth, f.ColumnWidth)
	setInt(&c.IndentWidth, f.IndentWidth)
}

// Filter holds the type filters. Nil slices are unset; empty non-nil
// slices configure an empty filter.
type Filter struct {
	ExcludedTypes []string
	OnlyTypes     []string
}

func (f Filter) overlay(c *Config) {
	if f.ExcludedTypes != nil {
		c.ExcludedTypes = f.ExcludedTypes
	}
	if f.OnlyTypes != nil {
		c.OnlyTypes = f.OnlyTypes
	}
}

// Marking replaces the ordered mark list wholesale when set.
type Marking struct {
	Marks []Mark
}

func (f Marking) overlay(c *Config) {
	if f.Marks != nil {
		c.Marks = f.Marks
	}
}

// TTY holds terminal options.
type TTY struct {
	UsePager *bool
}

func (f TTY) overlay(c *Config) {
	setBool(&c.UsePager, f.UsePager)
}

// Debug holds trace options.
type Debug struct {
	Trace     *bool
	TraceOnly *bool
}

func (f Debug) overlay(c *Config) {
	setBool(&c.Trace, f.Trace)
	setBool(&c.TraceOnly, f.TraceOnly)
}

// Merge overlays the fragments in order onto the prior configuration and
// validates the result. Later fragments win on conflicts; unset fields
// retain the prior values.
func Merge(prior Config, fragments ...Fragment) (Config, error) {
	merged := prior
	for _, f := range fragments {
		if f == nil {
			continue
		}
		f.overlay(&merged)
	}
	if err := merged.validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}

// validate fails fast on caller contract violations so a render never has
// to deal with them.
func (c Config) validate() error {
	if c.ColumnWidth <= 0 {
		return errors.Newf(errors.ErrConfigInvalid, "column width must be positive, got %d", c.ColumnWidth)
	}
	if c.IndentWidth < 0 {
		return errors.Newf(errors.ErrConfigInvalid, "indent width must not be negative, got %d", c.IndentWidth)
	}
	for _, m := range c.Marks {
		if m.Label == "" {
			return errors.New(errors.ErrConfigInvalid, "mark group is missing its label")
		}
		if err := colorer.Validate(m.Color); err != nil {
			return err
		}
	}
	return nil
}

// Bool returns a pointer to v, for building fragments inline.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to v, for building fragments inline.
func Int(v int) *int { return &v }

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
