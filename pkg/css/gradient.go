package css

import (
	"strconv"
	"strings"
)

// ColorStop represents a color and its position in a gradient
type ColorStop struct {
	Color  Color
	Offset float64 // 0.0 to 1.0 once normalized; -1 while unspecified
	pixels bool
}

// Gradient is a linear background gradient. Direction is one of
// "to top", "to bottom", "to left" or "to right".
type Gradient struct {
	Direction  string
	ColorStops []ColorStop
}

var namedColors = map[string]Color{
	"black":       {0, 0, 0, 255},
	"white":       {255, 255, 255, 255},
	"red":         {255, 0, 0, 255},
	"green":       {0, 128, 0, 255},
	"blue":        {0, 0, 255, 255},
	"yellow":      {255, 255, 0, 255},
	"gray":        {128, 128, 128, 255},
	"grey":        {128, 128, 128, 255},
	"orange":      {255, 165, 0, 255},
	"transparent": {0, 0, 0, 0},
}

// ParseColor accepts a hex colour or one of a few colour names.
func ParseColor(value string) (Color, bool) {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "#") {
		return ParseHexColor(value)
	}
	c, ok := namedColors[strings.ToLower(value)]
	return c, ok
}

// ParseLinearGradient parses a linear-gradient() value.
// Example: "linear-gradient(to right, #00f, #00f 150px, red 50%, red)"
//
// Stop positions are percentages or any length expression; lengths are
// resolved with r and normalized against the box in Normalize.
func ParseLinearGradient(value string, r *Resolver) (*Gradient, bool) {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "linear-gradient(") || !strings.HasSuffix(value, ")") {
		return nil, false
	}
	content := value[len("linear-gradient(") : len(value)-1]

	parts := splitGradientParts(content)
	if len(parts) < 2 {
		return nil, false
	}

	grad := &Gradient{Direction: "to bottom"}
	startIdx := 0
	first := strings.Join(strings.Fields(parts[0]), " ")
	if strings.HasPrefix(first, "to ") {
		switch first {
		case "to top", "to bottom", "to left", "to right":
			grad.Direction = first
		default:
			return nil, false
		}
		startIdx = 1
	}

	for i := startIdx; i < len(parts); i++ {
		stop, ok := parseColorStop(strings.TrimSpace(parts[i]), r)
		if !ok {
			return nil, false
		}
		grad.ColorStops = append(grad.ColorStops, stop)
	}
	if len(grad.ColorStops) < 2 {
		return nil, false
	}
	return grad, true
}

// parseColorStop parses a color stop like "blue 150px" or "red 50%"
func parseColorStop(stop string, r *Resolver) (ColorStop, bool) {
	fields := SplitShorthand(stop)
	if len(fields) == 0 || len(fields) > 2 {
		return ColorStop{}, false
	}
	color, ok := ParseColor(fields[0])
	if !ok {
		return ColorStop{}, false
	}
	cs := ColorStop{Color: color, Offset: -1}
	if len(fields) == 2 {
		pos := fields[1]
		if pct, ok := strings.CutSuffix(pos, "%"); ok {
			v, err := strconv.ParseFloat(pct, 64)
			if err != nil {
				return ColorStop{}, false
			}
			cs.Offset = v / 100
		} else {
			cs.Offset = r.Resolve(pos)
			cs.pixels = true
		}
	}
	return cs, true
}

// splitGradientParts splits gradient content by commas, respecting parentheses
func splitGradientParts(content string) []string {
	var parts []string
	var current strings.Builder
	parenDepth := 0

	for _, ch := range content {
		switch {
		case ch == '(':
			parenDepth++
			current.WriteRune(ch)
		case ch == ')':
			parenDepth--
			current.WriteRune(ch)
		case ch == ',' && parenDepth == 0:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(ch)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

// Normalize converts pixel offsets to fractions of the gradient line for a
// box of the given size and fills unspecified offsets by spreading them evenly.
func (g *Gradient) Normalize(width, height float64) {
	if g == nil {
		return
	}
	size := height
	if g.Direction == "to left" || g.Direction == "to right" {
		size = width
	}
	for i := range g.ColorStops {
		if g.ColorStops[i].pixels {
			if size > 0 {
				g.ColorStops[i].Offset /= size
			} else {
				g.ColorStops[i].Offset = 0
			}
			g.ColorStops[i].pixels = false
		}
	}
	g.fillMissingOffsets()
}

// fillMissingOffsets fills in any color stops that don't have explicit offsets
func (g *Gradient) fillMissingOffsets() {
	if len(g.ColorStops) == 0 {
		return
	}
	if g.ColorStops[0].Offset < 0 {
		g.ColorStops[0].Offset = 0
	}
	lastIdx := len(g.ColorStops) - 1
	if g.ColorStops[lastIdx].Offset < 0 {
		g.ColorStops[lastIdx].Offset = 1
	}

	for i := 0; i < len(g.ColorStops); i++ {
		if g.ColorStops[i].Offset >= 0 {
			continue
		}
		nextIdx := i + 1
		for nextIdx < len(g.ColorStops) && g.ColorStops[nextIdx].Offset < 0 {
			nextIdx++
		}
		prevIdx := i - 1
		prevOffset := g.ColorStops[prevIdx].Offset
		nextOffset := g.ColorStops[nextIdx].Offset
		step := (nextOffset - prevOffset) / float64(nextIdx-prevIdx)
		g.ColorStops[i].Offset = prevOffset + step*float64(i-prevIdx)
	}
}
