package text

import (
	"strings"
	"unicode/utf8"

	"github.com/fogleman/gg"
)

// Estimated glyph metrics, in em, used when no font file is available.
const (
	EstimatedAdvance    = 0.6
	EstimatedLineHeight = 1.2
)

// FontConfig holds the font files used for text measurement and rendering.
// An empty path means gg's built-in face for drawing and estimated metrics
// for measuring.
type FontConfig struct {
	Regular string
	Bold    string
}

// FontPath returns the font path for the requested weight.
func (fc FontConfig) FontPath(bold bool) string {
	if bold && fc.Bold != "" {
		return fc.Bold
	}
	return fc.Regular
}

// IsBold reports whether a weight attribute asks for the bold face.
func IsBold(weight string) bool {
	switch strings.ToLower(strings.TrimSpace(weight)) {
	case "bold", "bolder", "600", "700", "800", "900":
		return true
	}
	return false
}

// Estimate returns the size of a single line of text from its character count.
func Estimate(text string, fontSize float64) (width, height float64) {
	return float64(utf8.RuneCountInString(text)) * fontSize * EstimatedAdvance, fontSize * EstimatedLineHeight
}

// MeasureText measures a single line of text with the given font size.
func MeasureText(text string, fontSize float64, fontPath string) (width, height float64) {
	if fontPath == "" {
		return Estimate(text, fontSize)
	}

	// Use a temporary context for measurement
	dc := gg.NewContext(1, 1)
	if err := dc.LoadFontFace(fontPath, fontSize); err != nil {
		// If font loading fails, return rough estimate
		return Estimate(text, fontSize)
	}
	w, _ := dc.MeasureString(text)
	return w, fontSize * EstimatedLineHeight
}
