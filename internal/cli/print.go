package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/prettysitter/pkg/config"
	"github.com/arthur-debert/prettysitter/pkg/logging"
	"github.com/arthur-debert/prettysitter/pkg/pager"
	"github.com/arthur-debert/prettysitter/pkg/render"
	"github.com/arthur-debert/prettysitter/pkg/tree"
)

func newPrintCmd() *cobra.Command {
	var (
		configPath   string
		noText       bool
		showTrivial  bool
		noCloseEarly bool
		colorOn      bool
		colorOff     bool
		noLegend     bool
		dotted       bool
		width        int
		indent       int
		exclude      []string
		only         []string
		usePager     bool
		trace        bool
		traceOnly    bool
	)

	cmd := &cobra.Command{
		Use:     "print <tree.json>",
		Short:   MsgPrintShort,
		Long:    MsgPrintLong,
		Example: MsgPrintExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.print")

			var root *tree.SimpleNode
			var err error
			if args[0] == "-" {
				root, err = tree.Decode(cmd.InOrStdin())
			} else {
				root, err = tree.DecodeFile(args[0])
			}
			if err != nil {
				return err
			}

			// Layering: terminal detection, then config file and
			// environment, then flags.
			frags := []config.Fragment{
				config.UI{Color: config.Bool(pager.DetectColor())},
			}
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			frags = append(frags, loaded...)

			var ui config.UI
			if noText {
				ui.ShowText = config.Bool(false)
			}
			if showTrivial {
				ui.ShowTrivial = config.Bool(true)
			}
			if noCloseEarly {
				ui.CloseBracketsEarly = config.Bool(false)
			}
			if colorOn {
				ui.Color = config.Bool(true)
			}
			if colorOff {
				ui.Color = config.Bool(false)
			}
			if noLegend {
				ui.Legend = config.Bool(false)
			}
			if dotted {
				ui.Dotted = config.Bool(true)
			}
			if cmd.Flags().Changed("width") {
				ui.ColumnWidth = config.Int(width)
			}
			if cmd.Flags().Changed("indent") {
				ui.IndentWidth = config.Int(indent)
			}
			frags = append(frags, ui,
				config.Filter{ExcludedTypes: exclude, OnlyTypes: only})
			if usePager {
				frags = append(frags, config.TTY{UsePager: config.Bool(true)})
			}
			if trace || traceOnly {
				frags = append(frags, config.Debug{
					Trace:     config.Bool(trace || traceOnly),
					TraceOnly: config.Bool(traceOnly),
				})
			}

			cfg, err := config.Merge(config.Default(), frags...)
			if err != nil {
				return err
			}

			logger.Debug().
				Str("input", args[0]).
				Bool("color", cfg.Color).
				Bool("pager", cfg.UsePager).
				Msg("Rendering tree")

			sink := render.NewSink(cmd.OutOrStdout(), cfg)
			r, err := render.New(cfg, sink)
			if err != nil {
				return err
			}
			r.Diagnostics = cmd.ErrOrStderr()
			return r.Render(root)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", MsgFlagConfig)
	cmd.Flags().BoolVar(&noText, "no-text", false, MsgFlagNoText)
	cmd.Flags().BoolVar(&showTrivial, "show-trivial", false, MsgFlagTrivial)
	cmd.Flags().BoolVar(&noCloseEarly, "no-close-early", false, MsgFlagNoClose)
	cmd.Flags().BoolVar(&colorOn, "color", false, MsgFlagColor)
	cmd.Flags().BoolVar(&colorOff, "no-color", false, MsgFlagNoColor)
	cmd.Flags().BoolVar(&noLegend, "no-legend", false, MsgFlagNoLegend)
	cmd.Flags().BoolVar(&dotted, "dotted", false, MsgFlagDotted)
	cmd.Flags().IntVar(&width, "width", 0, MsgFlagWidth)
	cmd.Flags().IntVar(&indent, "indent", 0, MsgFlagIndent)
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, MsgFlagExclude)
	cmd.Flags().StringSliceVar(&only, "only", nil, MsgFlagOnly)
	cmd.Flags().BoolVar(&usePager, "pager", false, MsgFlagPager)
	cmd.Flags().BoolVar(&trace, "trace", false, MsgFlagTrace)
	cmd.Flags().BoolVar(&traceOnly, "trace-only", false, MsgFlagTraceOnly)
	cmd.MarkFlagsMutuallyExclusive("color", "no-color")

	return cmd
}
