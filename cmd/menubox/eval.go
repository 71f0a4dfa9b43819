package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"menubox/pkg/css"
)

func newEvalCmd(a *app) *cobra.Command {
	var em float64
	cmd := &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate length expressions against the configured viewport",
		Example: `  menubox eval "calc(0.5vw - 10px)" 2em
  menubox eval --em 24 "max(1em, 5vh)"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := css.NewContext(a.cfg.Viewport.Width, a.cfg.Viewport.Height, a.cfg.Fonts.RootSize)
			if em > 0 {
				ctx = ctx.WithUnit(css.UnitEm, em)
			}
			for _, expr := range args {
				v, err := css.Evaluate(expr, ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %g\n", expr, v)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&em, "em", 0, "em size in pixels (defaults to the root size)")
	return cmd
}
