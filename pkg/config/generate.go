package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/prettysitter/pkg/errors"
)

// fileConfig mirrors the config file surface for marshaling. Marks are
// deliberately absent: node sets only exist in-process and cannot live in
// a file.
type fileConfig struct {
	UI struct {
		ShowText           bool `toml:"show_text"`
		ShowTrivial        bool `toml:"show_trivial"`
		CloseBracketsEarly bool `toml:"close_brackets_early"`
		Color              bool `toml:"color"`
		Legend             bool `toml:"legend"`
		Dotted             bool `toml:"dotted"`
		ColumnWidth        int  `toml:"column_width"`
		IndentWidth        int  `toml:"indent_width"`
	} `toml:"ui"`
	Filter struct {
		ExcludedTypes []string `toml:"excluded_types,omitempty"`
		OnlyTypes     []string `toml:"only_types,omitempty"`
	} `toml:"filter"`
	TTY struct {
		UsePager bool `toml:"use_pager"`
	} `toml:"tty"`
	Debug struct {
		Trace     bool `toml:"trace"`
		TraceOnly bool `toml:"trace_only"`
	} `toml:"debug"`
}

func toFileConfig(c Config) fileConfig {
	var fc fileConfig
	fc.UI.ShowText = c.ShowText
	fc.UI.ShowTrivial = c.ShowTrivial
	fc.UI.CloseBracketsEarly = c.CloseBracketsEarly
	fc.UI.Color = c.Color
	fc.UI.Legend = c.Legend
	fc.UI.Dotted = c.Dotted
	fc.UI.ColumnWidth = c.ColumnWidth
	fc.UI.IndentWidth = c.IndentWidth
	fc.Filter.ExcludedTypes = c.ExcludedTypes
	fc.Filter.OnlyTypes = c.OnlyTypes
	fc.TTY.UsePager = c.UsePager
	fc.Debug.Trace = c.Trace
	fc.Debug.TraceOnly = c.TraceOnly
	return fc
}

// Render marshals the configuration as TOML, the same format Load accepts.
func Render(c Config) (string, error) {
	out, err := toml.Marshal(toFileConfig(c))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return string(out), nil
}

// WriteDefault writes the default configuration to path, creating parent
// directories. Refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrInvalidInput, "config file %s already exists", path)
	}

	rendered, err := Render(Default())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to create config directory for %s", path)
	}
	if err := os.WriteFile(path, []byte(rendered), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to write config file %s", path)
	}
	return nil
}

// DefaultPath returns the preferred location for a user config file.
func DefaultPath() string {
	return filepath.Join(xdgConfigDir(), "config.toml")
}
