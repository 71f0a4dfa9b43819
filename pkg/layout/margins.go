package layout

import (
	"menubox/pkg/css"
)

// collapseMargins returns the collapsed margin value for two adjoining margins.
// Per CSS 2.1: both positive => max, both negative => most negative, mixed => sum.
func collapseMargins(margin1, margin2 float64) float64 {
	if margin1 >= 0 && margin2 >= 0 {
		if margin1 > margin2 {
			return margin1
		}
		return margin2
	}
	if margin1 < 0 && margin2 < 0 {
		if margin1 < margin2 {
			return margin1
		}
		return margin2
	}
	// Mixed: one positive, one negative
	return margin1 + margin2
}

// marginer is implemented by boxes whose margins collapse with a neighbour's.
type marginer interface {
	Box
	margins() css.BoxEdge
}

// MarginBox is the margin area around a padding box. Two margin boxes placed
// beside each other share the gap between them instead of stacking it.
type MarginBox struct {
	PaddingBox
}

// NewMarginBox wraps padding in margins.
func NewMarginBox(padding Box, margin css.BoxEdge) (*MarginBox, error) {
	m := &MarginBox{}
	if err := m.wrap(padding, margin); err != nil {
		return nil, err
	}
	return m, nil
}

// margins measures each margin from the current geometry.
func (m *MarginBox) margins() css.BoxEdge {
	return css.BoxEdge{
		Top:    m.Top() - m.inner.Top(),
		Right:  m.Right() - m.inner.Right(),
		Bottom: m.inner.Bottom() - m.Bottom(),
		Left:   m.inner.Left() - m.Left(),
	}
}

// PlaceBeside places other beside m. When other has margins too, the touching
// margins collapse to the larger one.
func (m *MarginBox) PlaceBeside(other Box, side Side, indent float64, align Edge) error {
	if err := m.BoxModel.PlaceBeside(other, side, indent, align); err != nil {
		return err
	}
	o, ok := other.(marginer)
	if !ok {
		return nil
	}

	self, theirs := m.margins(), o.margins()
	switch side {
	case SideTop:
		other.Move(0, collapseMargins(self.Top, theirs.Bottom)-(self.Top+theirs.Bottom))
	case SideBottom:
		other.Move(0, (self.Bottom+theirs.Top)-collapseMargins(self.Bottom, theirs.Top))
	case SideLeft:
		other.Move((self.Left+theirs.Right)-collapseMargins(self.Left, theirs.Right), 0)
	case SideRight:
		other.Move(collapseMargins(self.Right, theirs.Left)-(self.Right+theirs.Left), 0)
	}
	return nil
}
