package layout

// Edge names a box edge or centre line used for alignment.
type Edge string

const (
	EdgeTop     Edge = "top"
	EdgeBottom  Edge = "bottom"
	EdgeLeft    Edge = "left"
	EdgeRight   Edge = "right"
	EdgeCenterX Edge = "center_x"
	EdgeCenterY Edge = "center_y"

	// EdgeCenter centres on whichever axis the operation aligns.
	EdgeCenter Edge = "center"
)

var (
	alignEdges      = []Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight, EdgeCenterX, EdgeCenterY}
	horizontalEdges = []Edge{EdgeLeft, EdgeRight, EdgeCenterX, EdgeCenter}
	verticalEdges   = []Edge{EdgeTop, EdgeBottom, EdgeCenterY, EdgeCenter}
)

// Side names the side of a box another box is placed on.
type Side string

const (
	SideTop    Side = "top"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
	SideRight  Side = "right"
)

// vertical reports whether placing on this side stacks boxes vertically.
func (s Side) vertical() bool {
	return s == SideTop || s == SideBottom
}

func (s Side) valid() bool {
	switch s {
	case SideTop, SideBottom, SideLeft, SideRight:
		return true
	}
	return false
}

// horizontalAlign resolves an alignment token for the x axis.
func horizontalAlign(e Edge) (Edge, error) {
	switch e {
	case EdgeCenter, "":
		return EdgeCenterX, nil
	case EdgeLeft, EdgeRight, EdgeCenterX:
		return e, nil
	}
	return "", &InvalidAlignmentError{Alignment: string(e), Allowed: horizontalEdges}
}

// verticalAlign resolves an alignment token for the y axis.
func verticalAlign(e Edge) (Edge, error) {
	switch e {
	case EdgeCenter, "":
		return EdgeCenterY, nil
	case EdgeTop, EdgeBottom, EdgeCenterY:
		return e, nil
	}
	return "", &InvalidAlignmentError{Alignment: string(e), Allowed: verticalEdges}
}

// edgeOf returns the coordinate of the named edge of b.
func edgeOf(b Box, e Edge) float64 {
	switch e {
	case EdgeTop:
		return b.Top()
	case EdgeBottom:
		return b.Bottom()
	case EdgeLeft:
		return b.Left()
	case EdgeRight:
		return b.Right()
	case EdgeCenterX:
		return b.CenterX()
	case EdgeCenterY:
		return b.CenterY()
	}
	return 0
}
