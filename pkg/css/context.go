package css

// Unit names understood by the expression resolver. px is the identity unit
// and never needs a scale.
const (
	UnitPx      = "px"
	UnitVw      = "vw"
	UnitVh      = "vh"
	UnitEm      = "em"
	UnitRem     = "rem"
	UnitPercent = "%"
)

// scaledUnits are the units whose pixel value comes from the Context.
var scaledUnits = map[string]bool{
	UnitVw:      true,
	UnitVh:      true,
	UnitEm:      true,
	UnitRem:     true,
	UnitPercent: true,
}

// IsUnit reports whether name is a recognised length unit.
func IsUnit(name string) bool {
	return name == UnitPx || scaledUnits[name]
}

// Context is the layout context of one nesting level: the pixel scale of every
// relative unit plus the property defaults inherited from ancestors.
//
// A Context is never modified after construction. The With* methods return
// derived copies, so one Context can be shared by any number of resolvers.
type Context struct {
	units map[string]float64
	props Attributes
}

// NewContext builds the root context for a viewport. vw and vh are the full
// viewport dimensions, em and rem start at the root font size and % is one
// hundredth of the viewport width.
func NewContext(viewportWidth, viewportHeight, rootFontSize float64) *Context {
	return &Context{
		units: map[string]float64{
			UnitVw:      viewportWidth,
			UnitVh:      viewportHeight,
			UnitEm:      rootFontSize,
			UnitRem:     rootFontSize,
			UnitPercent: viewportWidth / 100,
		},
		props: Attributes{},
	}
}

// ContextOf builds a context from explicit unit scales, e.g.
// {"vw": 1920, "vh": 1080, "em": 16}. Missing units scale to zero.
func ContextOf(units map[string]float64) *Context {
	c := &Context{units: make(map[string]float64, len(units)), props: Attributes{}}
	for k, v := range units {
		c.units[k] = v
	}
	return c
}

// Unit returns the pixel scale of a unit, or 0 when the context does not define it.
func (c *Context) Unit(name string) float64 {
	if c == nil {
		return 0
	}
	return c.units[name]
}

// Units returns a copy of the unit table.
func (c *Context) Units() map[string]float64 {
	out := make(map[string]float64, len(c.units))
	for k, v := range c.units {
		out[k] = v
	}
	return out
}

// WithUnit derives a context where unit has the given scale.
func (c *Context) WithUnit(unit string, scale float64) *Context {
	d := c.clone()
	d.units[unit] = scale
	return d
}

// WithProperties derives a context with props laid over the inherited properties.
func (c *Context) WithProperties(props Attributes) *Context {
	d := c.clone()
	for k, v := range props {
		d.props[k] = v
	}
	return d
}

// Property returns an inherited property.
func (c *Context) Property(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	val, ok := c.props[name]
	return val, ok
}

// Properties returns a copy of the inherited properties.
func (c *Context) Properties() Attributes {
	return c.props.Clone()
}

func (c *Context) clone() *Context {
	d := &Context{
		units: make(map[string]float64, len(c.units)),
		props: c.props.Clone(),
	}
	for k, v := range c.units {
		d.units[k] = v
	}
	return d
}
