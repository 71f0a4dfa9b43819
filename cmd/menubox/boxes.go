package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"menubox/pkg/layout"
	"menubox/pkg/scene"
)

type elementBoxes struct {
	Path    string      `json:"path"`
	ID      string      `json:"id,omitempty"`
	Text    string      `json:"text,omitempty"`
	Margin  layout.Rect `json:"margin"`
	Padding layout.Rect `json:"padding"`
	Content layout.Rect `json:"content"`
}

func newBoxesCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "boxes <scene.xml>",
		Short: "Print the margin, padding and content boxes of every element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadScene(args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return writeBoxesJSON(cmd.OutOrStdout(), s)
			}
			return writeBoxesTable(cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func collectBoxes(s *scene.Scene) []elementBoxes {
	out := make([]elementBoxes, 0, len(s.Elements))
	for _, e := range s.Elements {
		out = append(out, elementBoxes{
			Path:    e.Path,
			ID:      e.ID,
			Text:    e.Text,
			Margin:  layout.Bounds(e.Box),
			Padding: layout.Bounds(e.Box.Padding),
			Content: layout.Bounds(e.Box.Content),
		})
	}
	return out
}

func writeBoxesJSON(w io.Writer, s *scene.Scene) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(collectBoxes(s))
}

func writeBoxesTable(w io.Writer, s *scene.Scene) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tID\tMARGIN\tPADDING\tCONTENT")
	for _, b := range collectBoxes(s) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", b.Path, b.ID, formatRect(b.Margin), formatRect(b.Padding), formatRect(b.Content))
	}
	return tw.Flush()
}

func formatRect(r layout.Rect) string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.Left, r.Bottom, r.Right, r.Top)
}
