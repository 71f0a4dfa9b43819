package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"menubox/pkg/css"
	"menubox/pkg/imagediff"
	"menubox/pkg/images"
	"menubox/pkg/scene"
)

var white = css.Color{R: 255, G: 255, B: 255, A: 255}

func loadScene(t *testing.T, markup string) *scene.Scene {
	t.Helper()
	s, err := scene.Load(strings.NewReader(markup), scene.Options{ViewportWidth: 200, ViewportHeight: 100})
	require.NoError(t, err)
	return s
}

func pixel(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

// The button's padding box spans x 15..75 and scene y 55..85, which is
// image rows 15..45.
const boxMarkup = `<menu><button id="b" x="20" y="60" anchor_x="left" anchor_y="bottom"
	width="50" height="20" padding="5" margin="3" background="%s"/></menu>`

func TestRender_BackgroundFlipsY(t *testing.T) {
	s := loadScene(t, strings.Replace(boxMarkup, "%s", "red", 1))
	r := NewRenderer(200, 100, Options{Background: white})
	r.Render(s)
	img := r.Image()

	assert.Equal(t, color.RGBA{255, 0, 0, 255}, pixel(img, 40, 30), "inside padding box")
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, pixel(img, 17, 17), "padding is painted")
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, pixel(img, 40, 70), "mirror row stays clear")
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, pixel(img, 13, 30), "margin is not painted")
}

func TestRender_LinearGradient(t *testing.T) {
	s := loadScene(t, strings.Replace(boxMarkup, "%s", "linear-gradient(to right, red, blue)", 1))
	r := NewRenderer(200, 100, Options{Background: white})
	r.Render(s)
	img := r.Image()

	left, right := pixel(img, 17, 30), pixel(img, 73, 30)
	assert.Greater(t, left.R, right.R)
	assert.Less(t, left.B, right.B)
}

func TestRender_Outlines(t *testing.T) {
	s := loadScene(t, `<menu><button x="100" y="50" width="40" height="20" padding="4" margin="6"/></menu>`)
	r := NewRenderer(200, 100, Options{Outlines: true})
	r.Render(s)
	img := r.Image()

	// No background: only the three outlines are drawn.
	assert.Equal(t, uint8(0), pixel(img, 100, 50).A, "centre is untouched")
	assert.NotZero(t, pixel(img, 70, 50).A, "margin edge")
	assert.NotZero(t, pixel(img, 76, 50).A, "padding edge")
	assert.NotZero(t, pixel(img, 80, 50).A, "content edge")
}

func TestRender_UnsupportedBackgroundWarns(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	s := loadScene(t, strings.Replace(boxMarkup, "%s", "sparkly", 1))
	r := NewRenderer(200, 100, Options{Background: white, Logger: zap.New(core)})
	r.Render(s)

	require.Equal(t, 1, logs.FilterMessage("Unsupported background").Len())
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, pixel(r.Image(), 40, 30))
}

func TestRender_TextAndSave(t *testing.T) {
	s := loadScene(t, `<menu><text x="100" y="50" color="black">Play</text></menu>`)
	r := NewRenderer(200, 100, Options{Background: white})
	r.Render(s)

	dark := 0
	b := r.Image().Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if pixel(r.Image(), x, y).R < 128 {
				dark++
			}
		}
	}
	assert.Positive(t, dark, "text was drawn")

	require.NoError(t, r.SavePNG(filepath.Join(t.TempDir(), "out.png")))
}

func TestRender_StyleSheetMatchesInlineAttributes(t *testing.T) {
	inline := loadScene(t, `<menu><button x="100" y="50" width="60" height="20" padding="4" background="blue"/></menu>`)
	styled := loadScene(t, `<menu>
		<style>button { padding: 4; background: blue; }</style>
		<button x="100" y="50" width="60" height="20"/>
	</menu>`)

	render := func(s *scene.Scene) image.Image {
		r := NewRenderer(200, 100, Options{Background: white, Outlines: true})
		r.Render(s)
		return r.Image()
	}
	res, err := imagediff.Compare(render(styled), render(inline), imagediff.Options{})
	require.NoError(t, err)
	assert.True(t, res.Match, "%d pixels differ", res.DifferentPixels)
}

func TestRender_ImageBackground(t *testing.T) {
	dir := t.TempDir()
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	src.SetRGBA(0, 0, color.RGBA{0, 0, 255, 255})
	f, err := os.Create(filepath.Join(dir, "bg.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	core, logs := observer.New(zapcore.WarnLevel)
	s := loadScene(t, strings.Replace(boxMarkup, "%s", "url(bg.png)", 1))
	r := NewRenderer(200, 100, Options{Background: css.Color{A: 255}, Images: images.NewCache(dir), Logger: zap.New(core)})
	r.Render(s)
	img := r.Image()

	// The 2x2 source is stretched over the 60x30 padding box, top-left
	// source pixel first.
	topLeft, bottomRight := pixel(img, 17, 16), pixel(img, 72, 43)
	assert.Greater(t, topLeft.B, uint8(200))
	assert.Less(t, topLeft.R, uint8(60))
	assert.Greater(t, bottomRight.R, uint8(200))
	assert.Greater(t, bottomRight.G, uint8(200))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, pixel(img, 100, 30), "outside the box")
	assert.Zero(t, logs.Len())

	missing := loadScene(t, strings.Replace(boxMarkup, "%s", "url(nope.png)", 1))
	r.Render(missing)
	assert.Equal(t, 1, logs.FilterMessage("Background image could not be loaded").Len())
}
