package css

import (
	"fmt"
	"strings"
	"unicode"
)

// GapCountError reports a gap shorthand that did not have 1-4 values.
type GapCountError struct {
	Count int
}

func (e *GapCountError) Error() string {
	return fmt.Sprintf("gaps must have 1-4 values, got %d", e.Count)
}

// NegativeGapError reports a padding or margin edge that resolved below zero.
type NegativeGapError struct {
	Property string
	Value    float64
}

func (e *NegativeGapError) Error() string {
	return fmt.Sprintf("%s must not be negative, got %g", e.Property, e.Value)
}

// gapSides lists the per-edge override suffixes in top, right, bottom, left order.
var gapSides = [4]string{"top", "right", "bottom", "left"}

// SplitShorthand splits a shorthand value on whitespace outside parentheses, so
// "calc(1em + 2px) 10px" yields two tokens.
func SplitShorthand(value string) []string {
	var parts []string
	depth := 0
	start := -1
	for i, ch := range value {
		switch {
		case ch == '(':
			depth++
		case ch == ')':
			if depth > 0 {
				depth--
			}
		case unicode.IsSpace(ch) && depth == 0:
			if start >= 0 {
				parts = append(parts, value[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		parts = append(parts, value[start:])
	}
	return parts
}

// ResolveGaps resolves a padding/margin style property into its four edges.
//
// The shorthand (e.g. "padding") is split into tokens, each token is resolved
// as an expression and the 1-4 values are expanded. The per-edge overrides
// ("padding-top", ...) then replace single edges. Element attributes win over
// inherited properties for every name looked up.
func (r *Resolver) ResolveGaps(attrs Attributes, name string) (BoxEdge, error) {
	var gaps BoxEdge

	if shorthand, ok := lookup(name, attrs, r.ctx); ok && strings.TrimSpace(shorthand) != "" {
		parts := SplitShorthand(shorthand)
		values := make([]float64, len(parts))
		for i, part := range parts {
			values[i] = r.Resolve(part)
		}
		expanded, err := ExpandBoxEdge(values)
		if err != nil {
			return BoxEdge{}, fmt.Errorf("%s %q: %w", name, shorthand, err)
		}
		gaps = expanded
	}

	edges := [4]*float64{&gaps.Top, &gaps.Right, &gaps.Bottom, &gaps.Left}
	for i, side := range gapSides {
		prop := name + "-" + side
		if val, ok := lookup(prop, attrs, r.ctx); ok {
			*edges[i] = r.Resolve(val)
		}
	}

	for i, side := range gapSides {
		if *edges[i] < 0 {
			return BoxEdge{}, &NegativeGapError{Property: name + "-" + side, Value: *edges[i]}
		}
	}
	return gaps, nil
}
