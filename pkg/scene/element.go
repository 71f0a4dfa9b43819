package scene

import (
	"strings"

	"menubox/pkg/css"
	"menubox/pkg/layout"
)

// uiTags are the markup tags that become elements with a box.
var uiTags = map[string]bool{
	"text":            true,
	"button":          true,
	"checkbutton":     true,
	"entry":           true,
	"rangeslider":     true,
	"selector_in_row": true,
}

// IsUITag reports whether tag builds an Element.
func IsUITag(tag string) bool {
	return uiTags[tag]
}

// Element is one laid-out UI element. It owns a UIBox and follows it: every
// move of the box reaches Move, which shifts the element's drawable origin.
type Element struct {
	Tag     string
	ID      string
	Classes []string
	Text    string
	Path    string

	// Attrs holds the element's own attributes laid over matching
	// stylesheet declarations.
	Attrs css.Attributes
	Box   *layout.UIBox

	resolver *css.Resolver
	x, y     float64
}

// Move implements layout.Mover.
func (e *Element) Move(dx, dy float64) {
	e.x += dx
	e.y += dy
}

// Origin is where the element's drawable is anchored.
func (e *Element) Origin() (x, y float64) { return e.x, e.y }

// Context returns the layout context the element was built in.
func (e *Element) Context() *css.Context { return e.resolver.Context() }

// Param looks a property up on the element, then in its inherited context.
func (e *Element) Param(name, def string) string {
	return e.resolver.Param(name, e.Attrs, def)
}

// Resolve evaluates an expression in the element's context.
func (e *Element) Resolve(expr string) float64 {
	return e.resolver.Resolve(expr)
}

// HasClass reports whether the element carries the class.
func (e *Element) HasClass(name string) bool {
	for _, c := range e.Classes {
		if c == name {
			return true
		}
	}
	return false
}

func (e *Element) target() css.Target {
	return css.Target{Tag: e.Tag, ID: e.ID, Classes: e.Classes}
}

func splitClasses(value string) []string {
	return strings.Fields(value)
}
