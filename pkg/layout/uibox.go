package layout

import (
	"fmt"

	"menubox/pkg/css"
)

// UIBox is the full box of one UI element: content inside padding inside
// margin. The UIBox is the margin box; moving it moves the padding, then the
// content, then the element that owns the content.
type UIBox struct {
	*MarginBox
	Content *BoxModel
	Padding *PaddingBox
}

// NewUIBox builds the box of an element from its attributes. x, y, width and
// height default to 0, anchor_x and anchor_y to center; padding and margin
// accept the gap shorthand and per-edge overrides.
func NewUIBox(owner Mover, attrs css.Attributes, r *css.Resolver) (*UIBox, error) {
	anchor, err := ParseAnchor(
		r.Param("anchor_x", attrs, "center"),
		r.Param("anchor_y", attrs, "center"),
		r,
	)
	if err != nil {
		return nil, err
	}

	content := NewBoxModel(owner,
		r.ResolveParam("x", attrs, "0"),
		r.ResolveParam("y", attrs, "0"),
		r.ResolveParam("width", attrs, "0"),
		r.ResolveParam("height", attrs, "0"),
		anchor,
		true,
	)

	padding, err := r.ResolveGaps(attrs, "padding")
	if err != nil {
		return nil, err
	}
	paddingBox, err := NewPaddingBox(content, padding)
	if err != nil {
		return nil, fmt.Errorf("padding: %w", err)
	}

	margin, err := r.ResolveGaps(attrs, "margin")
	if err != nil {
		return nil, err
	}
	marginBox, err := NewMarginBox(paddingBox, margin)
	if err != nil {
		return nil, fmt.Errorf("margin: %w", err)
	}

	return &UIBox{MarginBox: marginBox, Content: content, Padding: paddingBox}, nil
}

// Margin returns the outermost box.
func (u *UIBox) Margin() *MarginBox { return u.MarginBox }
