package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "A colorizing pretty-printer for parse trees"
	MsgPrintShort      = "Render a parse-tree dump as indented, colorized text"
	MsgConfigShort     = "Manage the configuration file"
	MsgConfigInitShort = "Write a default configuration file"
	MsgConfigShowShort = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file to use instead of the discovered one"
	MsgFlagNoText    = "Print only the node structure, without source text"
	MsgFlagTrivial   = "Also print nodes whose text equals their type tag"
	MsgFlagNoClose   = "Put closing brackets on their own lines"
	MsgFlagColor     = "Force colorized output on"
	MsgFlagNoColor   = "Force colorized output off"
	MsgFlagNoLegend  = "Suppress the color legend line"
	MsgFlagDotted    = "Fill the alignment gap with dots"
	MsgFlagWidth     = "Column where node text starts"
	MsgFlagIndent    = "Spaces of indentation per tree level"
	MsgFlagExclude   = "Node types to hide, with their subtrees"
	MsgFlagOnly      = "Show only these node types and their ancestors"
	MsgFlagPager     = "Buffer output and hand it to the pager"
	MsgFlagTrace     = "Interleave per-node trace lines with the output"
	MsgFlagTraceOnly = "Print only the trace lines"
	MsgFlagInitPath  = "Where to write the config file"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/print-long.txt
	msgPrintLongRaw string
	MsgPrintLong    = strings.TrimSpace(msgPrintLongRaw)

	//go:embed msgs/print-example.txt
	msgPrintExampleRaw string
	MsgPrintExample    = strings.TrimSpace(msgPrintExampleRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
