// Package imagediff compares rendered menus against reference images.
package imagediff

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Result contains the results of an image comparison
type Result struct {
	Match           bool
	DifferentPixels int
	TotalPixels     int
	MaxDifference   int // largest 8-bit channel difference
	Diff            *image.RGBA
}

// Options configures the image comparison
type Options struct {
	// Tolerance is the largest per-channel difference (0-255) still counted
	// as equal.
	Tolerance int

	// FuzzyRadius lets a pixel match any expected pixel within this radius.
	FuzzyRadius int

	// MaxDifferentPercent accepts the images when at most this share of
	// pixels differ.
	MaxDifferentPercent float64
}

// DefaultOptions allows for anti-aliasing noise only.
func DefaultOptions() Options {
	return Options{Tolerance: 2}
}

// Compare compares two images pixel by pixel. Result.Diff shows matching
// pixels in grey and differing pixels in red.
func Compare(actual, expected image.Image, opts Options) (*Result, error) {
	bounds := actual.Bounds()
	if bounds != expected.Bounds() {
		return &Result{}, fmt.Errorf("image dimensions differ: actual=%v, expected=%v", bounds, expected.Bounds())
	}

	result := &Result{
		Match:       true,
		TotalPixels: bounds.Dx() * bounds.Dy(),
		Diff:        image.NewRGBA(bounds),
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			a := toRGBA(actual.At(x, y))
			diff := channelDiff(a, toRGBA(expected.At(x, y)))
			result.MaxDifference = max(result.MaxDifference, diff)

			if diff > opts.Tolerance && !(opts.FuzzyRadius > 0 && fuzzyMatch(a, expected, x, y, opts)) {
				result.Match = false
				result.DifferentPixels++
				result.Diff.Set(x, y, color.RGBA{255, 0, 0, 255})
				continue
			}
			result.Diff.Set(x, y, color.RGBA{a.R, a.R, a.R, 255})
		}
	}

	if !result.Match && opts.MaxDifferentPercent > 0 && result.TotalPixels > 0 {
		pct := float64(result.DifferentPixels) / float64(result.TotalPixels) * 100
		result.Match = pct <= opts.MaxDifferentPercent
	}
	return result, nil
}

// fuzzyMatch reports whether any expected pixel near (x, y) matches a.
func fuzzyMatch(a color.RGBA, expected image.Image, x, y int, opts Options) bool {
	bounds := expected.Bounds()
	for dy := -opts.FuzzyRadius; dy <= opts.FuzzyRadius; dy++ {
		for dx := -opts.FuzzyRadius; dx <= opts.FuzzyRadius; dx++ {
			p := image.Pt(x+dx, y+dy)
			if !p.In(bounds) {
				continue
			}
			if channelDiff(a, toRGBA(expected.At(p.X, p.Y))) <= opts.Tolerance {
				return true
			}
		}
	}
	return false
}

// CompareFiles decodes two PNG files and compares them. When the images
// differ and diffPath is set, the diff image is written there.
func CompareFiles(actualPath, expectedPath, diffPath string, opts Options) (*Result, error) {
	actual, err := LoadPNG(actualPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load actual image: %w", err)
	}
	expected, err := LoadPNG(expectedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load expected image: %w", err)
	}

	result, err := Compare(actual, expected, opts)
	if err != nil {
		return result, err
	}
	if !result.Match && diffPath != "" {
		if err := SavePNG(result.Diff, diffPath); err != nil {
			return result, fmt.Errorf("failed to save diff image: %w", err)
		}
	}
	return result, nil
}

func LoadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func channelDiff(a, b color.RGBA) int {
	return max(
		absInt(int(a.R)-int(b.R)),
		absInt(int(a.G)-int(b.G)),
		absInt(int(a.B)-int(b.B)),
		absInt(int(a.A)-int(b.A)),
	)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
