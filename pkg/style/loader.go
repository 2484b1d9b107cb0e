package style

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/prettysitter/pkg/errors"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// ThemeConfig represents a chrome theme override file
type ThemeConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
}

// LoadTheme overrides the chrome colors from a YAML theme file. Recognized
// color names: error, warning, info, muted.
func LoadTheme(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to read theme file %s", path)
	}

	var cfg ThemeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse theme file %s", path)
	}

	for name, def := range cfg.Colors {
		color := lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
		switch name {
		case "error":
			ErrorColor = color
		case "warning":
			WarningColor = color
		case "info":
			InfoColor = color
		case "muted":
			MutedColor = color
		default:
			return errors.Newf(errors.ErrConfigInvalid, "unknown theme color %q (use error, warning, info or muted)", name)
		}
	}

	rebuildStyles()
	return nil
}

// DefaultThemePath returns the location of the user theme file.
func DefaultThemePath() string {
	return filepath.Join(xdg.ConfigHome, "prettysitter", "theme.yaml")
}

// LoadDefaultTheme applies the user theme file when one exists. A missing
// file is not an error; the built-in colors stay in effect.
func LoadDefaultTheme() error {
	path := DefaultThemePath()
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return LoadTheme(path)
}

// rebuildStyles re-derives the styles after a color override.
func rebuildStyles() {
	ErrorStyle = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor).Bold(true)
	InfoStyle = lipgloss.NewStyle().Foreground(InfoColor)
	MutedStyle = lipgloss.NewStyle().Foreground(MutedColor)
}
