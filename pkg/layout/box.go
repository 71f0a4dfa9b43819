package layout

// Mover is anything that follows a box around. UI elements implement it to
// reposition their drawable; wrapper boxes use it to cascade moves inward.
type Mover interface {
	Move(dx, dy float64)
}

// Box is the geometry and placement surface shared by BoxModel and every
// wrapper built on it.
type Box interface {
	Mover
	Goto(x, y float64)
	Position() (x, y float64)
	Width() float64
	Height() float64
	Left() float64
	Right() float64
	Top() float64
	Bottom() float64
	CenterX() float64
	CenterY() float64
	Align(other Box, edge Edge) error
	PlaceBeside(other Box, side Side, indent float64, align Edge) error
	PlaceInside(other Box, alignX, alignY Edge) error

	model() *BoxModel
}

// BoxModel is a positioned rectangle. Its position is the anchor point; the
// edges are derived from it and never stored. The y axis points up.
//
// Moves accumulate in a pending delta that is flushed to the owner, either
// immediately (autoNotify) or on NotifyOwner.
type BoxModel struct {
	owner  Mover
	x, y   float64
	width  float64
	height float64
	anchor Anchor

	dx, dy     float64
	autoNotify bool

	// outer is the wrapper around this box, set once by NewWrapBox.
	outer     *BoxModel
	notifying bool
}

// NewBoxModel creates a box. owner may be nil.
func NewBoxModel(owner Mover, x, y, width, height float64, anchor Anchor, autoNotify bool) *BoxModel {
	return &BoxModel{
		owner:      owner,
		x:          x,
		y:          y,
		width:      width,
		height:     height,
		anchor:     anchor,
		autoNotify: autoNotify,
	}
}

func (b *BoxModel) model() *BoxModel { return b }

// Move shifts the box by (dx, dy). Any wrapper around the box is shifted with
// it unless the wrapper itself is the one driving the move.
func (b *BoxModel) Move(dx, dy float64) {
	b.x += dx
	b.y += dy
	b.dx += dx
	b.dy += dy
	if b.outer != nil {
		b.outer.follow(dx, dy)
	}
	if b.autoNotify {
		b.NotifyOwner()
	}
}

// follow keeps a wrapper around a box that moved on its own.
func (b *BoxModel) follow(dx, dy float64) {
	if b.notifying {
		return
	}
	b.x += dx
	b.y += dy
	if b.outer != nil {
		b.outer.follow(dx, dy)
	}
}

// Goto moves the box so its anchor point lands on (x, y).
func (b *BoxModel) Goto(x, y float64) {
	b.Move(x-b.x, y-b.y)
}

// NotifyOwner flushes the pending delta to the owner and resets it.
func (b *BoxModel) NotifyOwner() {
	dx, dy := b.dx, b.dy
	b.dx, b.dy = 0, 0
	if b.owner == nil {
		return
	}
	b.notifying = true
	defer func() { b.notifying = false }()
	b.owner.Move(dx, dy)
}

// PendingDelta returns the movement not yet flushed to the owner.
func (b *BoxModel) PendingDelta() (dx, dy float64) { return b.dx, b.dy }

// Position returns the anchor point.
func (b *BoxModel) Position() (x, y float64) { return b.x, b.y }

// Anchor returns the anchor fractions.
func (b *BoxModel) Anchor() Anchor { return b.anchor }

func (b *BoxModel) Width() float64  { return b.width }
func (b *BoxModel) Height() float64 { return b.height }

func (b *BoxModel) anchorOffsetX() float64 { return b.anchor.X * b.width }
func (b *BoxModel) anchorOffsetY() float64 { return b.anchor.Y * b.height }

func (b *BoxModel) Left() float64    { return b.x - b.anchorOffsetX() }
func (b *BoxModel) Right() float64   { return b.Left() + b.width }
func (b *BoxModel) Bottom() float64  { return b.y - b.anchorOffsetY() }
func (b *BoxModel) Top() float64     { return b.Bottom() + b.height }
func (b *BoxModel) CenterX() float64 { return b.Left() + b.width/2 }
func (b *BoxModel) CenterY() float64 { return b.Bottom() + b.height/2 }

// Align moves other along one axis so its edge e coincides with the same
// edge of b.
func (b *BoxModel) Align(other Box, e Edge) error {
	switch e {
	case EdgeTop, EdgeBottom, EdgeCenterY:
		other.Move(0, edgeOf(b, e)-edgeOf(other, e))
	case EdgeLeft, EdgeRight, EdgeCenterX:
		other.Move(edgeOf(b, e)-edgeOf(other, e), 0)
	default:
		return &InvalidAlignmentError{Alignment: string(e), Allowed: alignEdges}
	}
	return nil
}

// PlaceBeside puts other next to b on the given side, indent pixels away, and
// aligns it on the other axis. "center" (or "") centres it.
func (b *BoxModel) PlaceBeside(other Box, side Side, indent float64, align Edge) error {
	if !side.valid() {
		return &InvalidSideError{Side: string(side)}
	}
	var err error
	if side.vertical() {
		align, err = horizontalAlign(align)
	} else {
		align, err = verticalAlign(align)
	}
	if err != nil {
		return err
	}

	switch side {
	case SideTop:
		other.Move(0, b.Top()-other.Bottom()+indent)
	case SideBottom:
		other.Move(0, b.Bottom()-other.Top()-indent)
	case SideLeft:
		other.Move(b.Left()-other.Right()-indent, 0)
	case SideRight:
		other.Move(b.Right()-other.Left()+indent, 0)
	}
	return b.Align(other, align)
}

// PlaceInside aligns other within b on both axes.
func (b *BoxModel) PlaceInside(other Box, alignX, alignY Edge) error {
	ex, err := horizontalAlign(alignX)
	if err != nil {
		return err
	}
	ey, err := verticalAlign(alignY)
	if err != nil {
		return err
	}
	if err := b.Align(other, ex); err != nil {
		return err
	}
	return b.Align(other, ey)
}

// Copy returns a box with the same geometry and no owner, for measuring.
func (b *BoxModel) Copy() *BoxModel {
	return NewBoxModel(nil, b.x, b.y, b.width, b.height, b.anchor, false)
}

// Rect is an axis-aligned rectangle in layout coordinates (y up).
type Rect struct {
	Left   float64 `json:"left"`
	Bottom float64 `json:"bottom"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
}

// Bounds returns the rectangle covered by b.
func Bounds(b Box) Rect {
	return Rect{Left: b.Left(), Bottom: b.Bottom(), Right: b.Right(), Top: b.Top()}
}
