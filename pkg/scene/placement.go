package scene

import (
	"fmt"

	"menubox/pkg/layout"
)

// applyPlacements runs the place-beside and place-inside attributes in
// document order, after every element exists.
//
//	<button id="b" place-beside="a" side="bottom" indent="1em" align="left"/>
//	<text place-inside="b" align-x="right" align-y="center"/>
func (b *builder) applyPlacements() error {
	for _, e := range b.scene.Elements {
		if ref, ok := e.Attrs.Get("place-beside"); ok {
			target, err := b.placementTarget(ref)
			if err != nil {
				return &BuildError{Path: e.Path, Err: err}
			}
			side := layout.Side(e.Param("side", string(layout.SideBottom)))
			indent := e.Resolve(e.Param("indent", "0"))
			align := layout.Edge(e.Param("align", string(layout.EdgeCenter)))
			if err := target.Box.PlaceBeside(e.Box, side, indent, align); err != nil {
				return &BuildError{Path: e.Path, Err: fmt.Errorf("place beside %q: %w", ref, err)}
			}
		}

		if ref, ok := e.Attrs.Get("place-inside"); ok {
			target, err := b.placementTarget(ref)
			if err != nil {
				return &BuildError{Path: e.Path, Err: err}
			}
			alignX := layout.Edge(e.Param("align-x", string(layout.EdgeCenter)))
			alignY := layout.Edge(e.Param("align-y", string(layout.EdgeCenter)))
			if err := target.Box.PlaceInside(e.Box, alignX, alignY); err != nil {
				return &BuildError{Path: e.Path, Err: fmt.Errorf("place inside %q: %w", ref, err)}
			}
		}
	}
	return nil
}

func (b *builder) placementTarget(id string) (*Element, error) {
	target, ok := b.scene.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownID, id)
	}
	return target, nil
}
