package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/prettysitter/pkg/errors"
	"github.com/arthur-debert/prettysitter/pkg/logging"
)

// envPrefix is the prefix for environment overrides. A double underscore
// separates the group from the option: PRETTYSITTER_UI__COLUMN_WIDTH.
const envPrefix = "PRETTYSITTER_"

// knownKeys is the full recognized configuration surface. Any other key in
// a config file or the environment is a caller contract violation.
var knownKeys = map[string]bool{
	"ui.show_text":            true,
	"ui.show_trivial":         true,
	"ui.close_brackets_early": true,
	"ui.color":                true,
	"ui.legend":               true,
	"ui.dotted":               true,
	"ui.column_width":         true,
	"ui.indent_width":         true,
	"filter.excluded_types":   true,
	"filter.only_types":       true,
	"tty.use_pager":           true,
	"debug.trace":             true,
	"debug.trace_only":        true,
}

// Load reads configuration from a file and the environment and returns the
// option-group fragments they explicitly set. An empty path triggers
// discovery: $XDG_CONFIG_HOME/prettysitter/config.{toml,yaml}, then
// .prettysitter.{toml,yaml} in the working directory. A missing file is
// not an error; an unrecognized key is.
func Load(path string) ([]Fragment, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	if path == "" {
		path = discover()
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	if err := checkKeys(k); err != nil {
		return nil, err
	}

	return fragments(k), nil
}

// discover returns the first config file that exists, or "".
func discover() string {
	candidates := []string{
		filepath.Join(xdgConfigDir(), "config.toml"),
		filepath.Join(xdgConfigDir(), "config.yaml"),
		".prettysitter.toml",
		".prettysitter.yaml",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// xdgConfigDir is the per-user configuration directory.
func xdgConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "prettysitter")
}

// parserFor picks the koanf parser matching the file extension.
func parserFor(path string) (koanf.Parser, error) {
	switch filepath.Ext(path) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported config file format %q (use .toml or .yaml)", filepath.Ext(path))
	}
}

// checkKeys fails fast on unrecognized option keys, enumerating the
// recognized surface.
func checkKeys(k *koanf.Koanf) error {
	for _, key := range k.Keys() {
		if !knownKeys[key] {
			valid := make([]string, 0, len(knownKeys))
			for known := range knownKeys {
				valid = append(valid, known)
			}
			sort.Strings(valid)
			return errors.Newf(errors.ErrOptionUnknown,
				"unknown option %q; recognized options are: %s", key, strings.Join(valid, ", ")).
				WithDetail("option", key)
		}
	}
	return nil
}

// fragments converts the loaded keys into option-group fragments, setting
// only fields that are explicitly present.
func fragments(k *koanf.Koanf) []Fragment {
	var ui UI
	if k.Exists("ui.show_text") {
		ui.ShowText = Bool(k.Bool("ui.show_text"))
	}
	if k.Exists("ui.show_trivial") {
		ui.ShowTrivial = Bool(k.Bool("ui.show_trivial"))
	}
	if k.Exists("ui.close_brackets_early") {
		ui.CloseBracketsEarly = Bool(k.Bool("ui.close_brackets_early"))
	}
	if k.Exists("ui.color") {
		ui.Color = Bool(k.Bool("ui.color"))
	}
	if k.Exists("ui.legend") {
		ui.Legend = Bool(k.Bool("ui.legend"))
	}
	if k.Exists("ui.dotted") {
		ui.Dotted = Bool(k.Bool("ui.dotted"))
	}
	if k.Exists("ui.column_width") {
		ui.ColumnWidth = Int(k.Int("ui.column_width"))
	}
	if k.Exists("ui.indent_width") {
		ui.IndentWidth = Int(k.Int("ui.indent_width"))
	}

	var filter Filter
	if k.Exists("filter.excluded_types") {
		filter.ExcludedTypes = k.Strings("filter.excluded_types")
	}
	if k.Exists("filter.only_types") {
		filter.OnlyTypes = k.Strings("filter.only_types")
	}

	var tty TTY
	if k.Exists("tty.use_pager") {
		tty.UsePager = Bool(k.Bool("tty.use_pager"))
	}

	var debug Debug
	if k.Exists("debug.trace") {
		debug.Trace = Bool(k.Bool("debug.trace"))
	}
	if k.Exists("debug.trace_only") {
		debug.TraceOnly = Bool(k.Bool("debug.trace_only"))
	}

	return []Fragment{ui, filter, tty, debug}
}

// LoadMap builds fragments from an in-memory key map, using the same key
// surface and validation as Load. Useful for tests and embedding callers.
func LoadMap(values map[string]interface{}) ([]Fragment, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load config map")
	}
	if err := checkKeys(k); err != nil {
		return nil, err
	}
	return fragments(k), nil
}
