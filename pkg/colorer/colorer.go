// Package colorer implements the named-color palette used for tree output.
//
// Styling is deliberately raw SGR sequences rather than a styling framework:
// output must round-trip exactly through Strip so that column alignment and
// color-disabled rendering are byte-precise.
package colorer

import (
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/arthur-debert/prettysitter/pkg/errors"
)

// Color names recognized by the palette.
const (
	Red    = "red"
	Green  = "green"
	Green2 = "green2" // bright green
	Yellow = "yellow"
	Blue   = "blue"
	Cyan   = "cyan"
	Gray   = "gray"
)

// palette maps each color name to its SGR code.
var palette = map[string]int{
	Red:    91,
	Green:  32,
	Green2: 92,
	Yellow: 93,
	Blue:   94,
	Cyan:   96,
	Gray:   37,
}

// bracketRamp holds the 256-color codes cycled through by nesting depth.
var bracketRamp = []int{10, 20, 30, 40, 50, 60, 70}

// Brush paints text in one fixed color.
type Brush func(text string) string

// EmphasisFunc decides whether the given text should render emphasized
// (bold and underlined) in addition to its color.
type EmphasisFunc func(text string) bool

// Colorer applies palette colors to text. The emphasis predicate is
// consulted on every paint and can be swapped temporarily via Persist.
type Colorer struct {
	emphasize EmphasisFunc
}

// New creates a Colorer with the given emphasis predicate. A nil predicate
// never emphasizes.
func New(emphasize EmphasisFunc) *Colorer {
	if emphasize == nil {
		emphasize = func(string) bool { return false }
	}
	return &Colorer{emphasize: emphasize}
}

// Persist swaps the emphasis predicate for a constant one and returns a
// function restoring the previous predicate. Callers are expected to defer
// the restore so it runs on every exit path.
func (c *Colorer) Persist(emphasize bool) (restore func()) {
	old := c.emphasize
	c.emphasize = func(string) bool { return emphasize }
	return func() { c.emphasize = old }
}

// Brush returns a painting function for the named color, or an error
// enumerating the valid names when the color is undefined.
func (c *Colorer) Brush(color string) (Brush, error) {
	code, ok := palette[color]
	if !ok {
		return nil, errors.Newf(errors.ErrColorUnknown,
			"color %q undefined; defined colors are: %s", color, strings.Join(ValidNames(), ", ")).
			WithDetail("color", color)
	}
	return func(text string) string {
		return c.apply(text, code)
	}, nil
}

// Paint colors text with the named palette color.
func (c *Colorer) Paint(text, color string) (string, error) {
	brush, err := c.Brush(color)
	if err != nil {
		return "", err
	}
	return brush(text), nil
}

// ByIndex colors text with the bracket ramp entry for the given index,
// index modulo ramp size. Used to cycle bracket color by nesting depth.
func (c *Colorer) ByIndex(i int, text string) string {
	code := bracketRamp[((i%len(bracketRamp))+len(bracketRamp))%len(bracketRamp)]
	return c.apply(text, code, 38, 5)
}

// apply wraps text in start and reset sequences. When the emphasis
// predicate fires, bold and underline codes precede the color code.
func (c *Colorer) apply(text string, color int, prefix ...int) string {
	var mods []int
	if c.emphasize(text) {
		mods = append(mods, 1, 4)
	}
	mods = append(mods, prefix...)
	mods = append(mods, color)

	parts := make([]string, len(mods))
	for i, m := range mods {
		parts[i] = strconv.Itoa(m)
	}
	return "\x1b[" + strings.Join(parts, ";") + "m" + text + "\x1b[0m"
}

// Strip removes all embedded style sequences from text. Required for true
// visible-width measurement and for color-disabled output.
func Strip(text string) string {
	return ansi.Strip(text)
}

// Validate returns an error enumerating the valid names when the color is
// not part of the palette.
func Validate(color string) error {
	if _, ok := palette[color]; !ok {
		return errors.Newf(errors.ErrColorUnknown,
			"color %q undefined; defined colors are: %s", color, strings.Join(ValidNames(), ", ")).
			WithDetail("color", color)
	}
	return nil
}

// ValidNames returns the palette's color names, sorted.
func ValidNames() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
