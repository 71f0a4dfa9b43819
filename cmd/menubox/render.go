package main

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"menubox/pkg/imagediff"
	"menubox/pkg/images"
	"menubox/pkg/render"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		output    string
		outlines  bool
		expect    string
		tolerance int
	)
	cmd := &cobra.Command{
		Use:   "render <scene.xml>",
		Short: "Render a scene to a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := a.render(args[0], outlines || a.cfg.Render.Outlines)
			if err != nil {
				return err
			}
			if err := imagediff.SavePNG(img, output); err != nil {
				return fmt.Errorf("save %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rendered %s to %s\n", args[0], output)

			if expect == "" {
				return nil
			}
			res, err := imagediff.CompareFiles(output, expect, output+".diff.png", imagediff.Options{Tolerance: tolerance})
			if err != nil {
				return err
			}
			if !res.Match {
				return fmt.Errorf("%s differs from %s in %d of %d pixels (max channel difference %d)",
					output, expect, res.DifferentPixels, res.TotalPixels, res.MaxDifference)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Matches %s\n", expect)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "menu.png", "output PNG file")
	cmd.Flags().BoolVar(&outlines, "outlines", false, "draw margin, padding and content outlines")
	cmd.Flags().StringVar(&expect, "expect", "", "reference PNG the render must match")
	cmd.Flags().IntVar(&tolerance, "tolerance", 2, "per-channel tolerance when comparing with --expect")
	return cmd
}

// render loads and rasterises a scene at the configured viewport size.
func (a *app) render(path string, outlines bool) (image.Image, error) {
	s, err := a.loadScene(path)
	if err != nil {
		return nil, err
	}
	r := render.NewRenderer(int(s.Width), int(s.Height), render.Options{
		Background: a.cfg.BackgroundColor(),
		Outlines:   outlines,
		Fonts:      a.fonts(),
		Logger:     a.logger,
		Images:     images.NewCache(filepath.Dir(path)),
	})
	r.Render(s)
	a.logger.Debug("Scene rendered", zap.String("path", path))
	return r.Image(), nil
}
