package main

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	var outlines bool
	cmd := &cobra.Command{
		Use:   "show <scene.xml>",
		Short: "Open a window showing the rendered scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			img, err := a.render(path, outlines || a.cfg.Render.Outlines)
			if err != nil {
				return err
			}

			fa := fyneapp.New()
			w := fa.NewWindow(fmt.Sprintf("menubox - %s", filepath.Base(path)))
			w.Resize(fyne.NewSize(float32(a.cfg.Viewport.Width), float32(a.cfg.Viewport.Height)))

			canvasImg := canvas.NewImageFromImage(img)
			canvasImg.FillMode = canvas.ImageFillContain

			status := widget.NewLabel(path)
			outlineCheck := widget.NewCheck("Outlines", func(on bool) {
				// Layout is redone from the file so edits show up too.
				updated, err := a.render(path, on)
				if err != nil {
					status.SetText("Error: " + err.Error())
					return
				}
				canvasImg.Image = updated
				canvasImg.Refresh()
				status.SetText(path)
			})
			outlineCheck.Checked = outlines || a.cfg.Render.Outlines

			bottom := container.NewBorder(nil, nil, outlineCheck, nil, status)
			w.SetContent(container.NewBorder(nil, bottom, nil, nil, canvasImg))
			w.ShowAndRun()
			return nil
		},
	}
	cmd.Flags().BoolVar(&outlines, "outlines", false, "start with box outlines drawn")
	return cmd
}
