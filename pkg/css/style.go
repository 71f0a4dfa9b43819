package css

import (
	"strconv"
	"strings"
)

// Attributes is the raw attribute set of one scene element, name -> unparsed value.
type Attributes map[string]string

// Get returns the raw value of an attribute.
func (a Attributes) Get(name string) (string, bool) {
	if a == nil {
		return "", false
	}
	val, ok := a[name]
	return val, ok
}

// Clone returns a shallow copy that can be modified freely.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Merge returns a copy of a with every entry of b laid over it.
func (a Attributes) Merge(b Attributes) Attributes {
	out := a.Clone()
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Param looks a property up on the element first, then in the inherited
// context, and falls back to def.
func Param(name string, attrs Attributes, ctx *Context, def string) string {
	if val, ok := attrs.Get(name); ok {
		return val
	}
	if ctx != nil {
		if val, ok := ctx.Property(name); ok {
			return val
		}
	}
	return def
}

// lookup is Param without a default, reporting whether the property exists at all.
func lookup(name string, attrs Attributes, ctx *Context) (string, bool) {
	if val, ok := attrs.Get(name); ok {
		return val, true
	}
	if ctx != nil {
		return ctx.Property(name)
	}
	return "", false
}

// BoxEdge represents the four sides of a box (top, right, bottom, left)
type BoxEdge struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Uniform returns a BoxEdge with the same value on every side.
func Uniform(v float64) BoxEdge {
	return BoxEdge{Top: v, Right: v, Bottom: v, Left: v}
}

// Values returns the edges in top, right, bottom, left order.
func (e BoxEdge) Values() [4]float64 {
	return [4]float64{e.Top, e.Right, e.Bottom, e.Left}
}

// Horizontal is the sum of the left and right edges.
func (e BoxEdge) Horizontal() float64 { return e.Left + e.Right }

// Vertical is the sum of the top and bottom edges.
func (e BoxEdge) Vertical() float64 { return e.Top + e.Bottom }

// ExpandBoxEdge expands 1-4 shorthand values the way margin/padding do:
// "10" (all), "10 20" (vertical horizontal), "10 20 30" (top h bottom),
// "10 20 30 40" (t r b l).
func ExpandBoxEdge(values []float64) (BoxEdge, error) {
	switch len(values) {
	case 1:
		return Uniform(values[0]), nil
	case 2:
		return BoxEdge{Top: values[0], Right: values[1], Bottom: values[0], Left: values[1]}, nil
	case 3:
		return BoxEdge{Top: values[0], Right: values[1], Bottom: values[2], Left: values[1]}, nil
	case 4:
		return BoxEdge{Top: values[0], Right: values[1], Bottom: values[2], Left: values[3]}, nil
	}
	return BoxEdge{}, &GapCountError{Count: len(values)}
}

// Color is an 8-bit RGBA colour.
type Color struct {
	R, G, B, A uint8
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa". Alpha defaults to 255.
func ParseHexColor(colorStr string) (Color, bool) {
	hex := strings.TrimPrefix(strings.TrimSpace(colorStr), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, false
	}
	var channels [4]uint8
	channels[3] = 255
	for i := 0; i < len(hex)/2; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, false
		}
		channels[i] = uint8(v)
	}
	return Color{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, true
}
