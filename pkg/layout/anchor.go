package layout

import (
	"strings"

	"menubox/pkg/css"
)

// Anchor is the point of a box its position refers to, as fractions of the
// box size measured from the bottom-left corner.
type Anchor struct {
	X float64
	Y float64
}

// Common anchors.
var (
	AnchorCenter     = Anchor{X: 0.5, Y: 0.5}
	AnchorBottomLeft = Anchor{}
)

var (
	anchorFractionsX = map[string]float64{"left": 0, "center": 0.5, "right": 1}
	anchorFractionsY = map[string]float64{"bottom": 0, "center": 0.5, "top": 1}
)

// ParseAnchor resolves anchor_x/anchor_y attribute values. Keywords map to
// fractions; anything else is resolved as an expression giving the fraction
// directly.
func ParseAnchor(anchorX, anchorY string, r *css.Resolver) (Anchor, error) {
	x, err := anchorFraction("horizontal", anchorX, anchorFractionsX, r)
	if err != nil {
		return Anchor{}, err
	}
	y, err := anchorFraction("vertical", anchorY, anchorFractionsY, r)
	if err != nil {
		return Anchor{}, err
	}
	return Anchor{X: x, Y: y}, nil
}

func anchorFraction(axis, value string, fractions map[string]float64, r *css.Resolver) (float64, error) {
	if kw, ok := r.Keyword(value); ok {
		f, ok := fractions[kw]
		if !ok {
			return 0, &InvalidAnchorError{Axis: axis, Value: kw}
		}
		return f, nil
	}
	if strings.TrimSpace(value) == "" {
		return 0.5, nil
	}
	return r.Resolve(value), nil
}
