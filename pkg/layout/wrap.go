package layout

import (
	"menubox/pkg/css"
)

// WrapBox is a box grown outward from another box by per-edge gaps. It owns
// the box it wraps: moving the wrapper moves the inner box by the same delta,
// and moving the inner box directly drags the wrapper along.
type WrapBox struct {
	BoxModel
	inner Box
	gaps  css.BoxEdge
}

// NewWrapBox wraps inner with 1-4 gap values in shorthand order.
func NewWrapBox(inner Box, gaps ...float64) (*WrapBox, error) {
	edges, err := css.ExpandBoxEdge(gaps)
	if err != nil {
		return nil, err
	}
	w := &WrapBox{}
	if err := w.wrap(inner, edges); err != nil {
		return nil, err
	}
	return w, nil
}

// wrap sizes and positions w around inner and links inner to it.
func (w *WrapBox) wrap(inner Box, gaps css.BoxEdge) error {
	in := inner.model()
	if in.outer != nil {
		return ErrAlreadyWrapped
	}
	for i, v := range gaps.Values() {
		if v < 0 {
			return &css.NegativeGapError{Property: "gap-" + gapSides[i], Value: v}
		}
	}

	w.BoxModel = BoxModel{
		owner:      inner,
		x:          in.x,
		y:          in.y,
		width:      in.width + gaps.Horizontal(),
		height:     in.height + gaps.Vertical(),
		anchor:     in.anchor,
		autoNotify: true,
	}
	w.inner = inner
	w.gaps = gaps

	w.x += inner.Left() - w.Left() - gaps.Left
	w.y += inner.Bottom() - w.Bottom() - gaps.Bottom
	in.outer = &w.BoxModel
	return nil
}

var gapSides = [4]string{"top", "right", "bottom", "left"}

// Inner returns the wrapped box.
func (w *WrapBox) Inner() Box { return w.inner }

// Gaps returns the gap on each edge.
func (w *WrapBox) Gaps() css.BoxEdge { return w.gaps }

// PaddingBox is the padding area around a content box.
type PaddingBox struct {
	WrapBox
}

// NewPaddingBox wraps content in padding.
func NewPaddingBox(content Box, padding css.BoxEdge) (*PaddingBox, error) {
	p := &PaddingBox{}
	if err := p.wrap(content, padding); err != nil {
		return nil, err
	}
	return p, nil
}

// PlaceInside places other inside the content area rather than the padding's
// outer rectangle.
func (p *PaddingBox) PlaceInside(other Box, alignX, alignY Edge) error {
	return p.inner.PlaceInside(other, alignX, alignY)
}
