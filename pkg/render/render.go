package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"go.uber.org/zap"

	"menubox/pkg/css"
	"menubox/pkg/images"
	"menubox/pkg/layout"
	"menubox/pkg/scene"
	"menubox/pkg/text"
)

// Outline colours for the three boxes of an element.
var (
	marginOutline  = color.NRGBA{R: 160, G: 160, B: 160, A: 255}
	paddingOutline = color.NRGBA{R: 64, G: 128, B: 255, A: 255}
	contentOutline = color.NRGBA{R: 255, G: 64, B: 64, A: 255}
)

// Options controls what the renderer draws.
type Options struct {
	Background css.Color
	Outlines   bool
	Fonts      text.FontConfig
	Logger     *zap.Logger

	// Images resolves url(...) backgrounds. Nil uses a cache rooted at the
	// working directory.
	Images *images.Cache
}

// Renderer rasterises scenes. Scene coordinates have y pointing up; the
// image has y pointing down.
type Renderer struct {
	context *gg.Context
	opts    Options
	logger  *zap.Logger
}

func NewRenderer(width, height int, opts Options) *Renderer {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Images == nil {
		opts.Images = images.NewCache("")
	}
	return &Renderer{context: gg.NewContext(width, height), opts: opts, logger: logger}
}

// Render clears the canvas and draws every element in document order.
func (r *Renderer) Render(s *scene.Scene) {
	r.context.SetColor(nrgba(r.opts.Background))
	r.context.Clear()

	for _, e := range s.Elements {
		r.drawElement(e)
	}
}

// Image returns the rendered canvas.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

func (r *Renderer) SavePNG(filename string) error {
	return r.context.SavePNG(filename)
}

func (r *Renderer) drawElement(e *scene.Element) {
	// Background covers content + padding (but not margin)
	r.drawBackground(e)
	r.drawText(e)

	if r.opts.Outlines {
		r.strokeRect(layout.Bounds(e.Box), marginOutline)
		r.strokeRect(layout.Bounds(e.Box.Padding), paddingOutline)
		r.strokeRect(layout.Bounds(e.Box.Content), contentOutline)
	}
}

// toImage converts a layout rectangle to image x, y, width, height.
func (r *Renderer) toImage(rect layout.Rect) (x, y, w, h float64) {
	return rect.Left, float64(r.context.Height()) - rect.Top, rect.Right - rect.Left, rect.Top - rect.Bottom
}

func (r *Renderer) drawBackground(e *scene.Element) {
	value := e.Param("background", "")
	if value == "" {
		return
	}
	x, y, w, h := r.toImage(layout.Bounds(e.Box.Padding))
	if w <= 0 || h <= 0 {
		return
	}

	if src, ok := images.ParseURL(value); ok {
		r.drawImage(e, src, x, y, w, h)
		return
	}

	if grad, ok := css.ParseLinearGradient(value, css.NewResolver(e.Context(), r.logger)); ok {
		grad.Normalize(w, h)
		r.context.SetFillStyle(linearGradient(grad, x, y, w, h))
	} else if c, ok := css.ParseColor(value); ok {
		r.context.SetColor(nrgba(c))
	} else {
		r.logger.Warn("Unsupported background", zap.String("element", e.Path), zap.String("value", value))
		return
	}
	r.context.DrawRectangle(x, y, w, h)
	r.context.Fill()
}

// drawImage stretches the image over the padding box.
func (r *Renderer) drawImage(e *scene.Element, src string, x, y, w, h float64) {
	img, err := r.opts.Images.Load(src)
	if err != nil {
		r.logger.Warn("Background image could not be loaded",
			zap.String("element", e.Path), zap.String("src", src), zap.Error(err))
		return
	}
	b := img.Bounds()
	r.context.Push()
	defer r.context.Pop()
	r.context.Translate(x, y)
	r.context.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	r.context.DrawImage(img, -b.Min.X, -b.Min.Y)
}

// linearGradient builds a gg gradient across the image-space rectangle.
func linearGradient(g *css.Gradient, x, y, w, h float64) gg.Gradient {
	var grad gg.Gradient
	switch g.Direction {
	case "to top":
		grad = gg.NewLinearGradient(x, y+h, x, y)
	case "to left":
		grad = gg.NewLinearGradient(x+w, y, x, y)
	case "to right":
		grad = gg.NewLinearGradient(x, y, x+w, y)
	default:
		grad = gg.NewLinearGradient(x, y, x, y+h)
	}
	for _, stop := range g.ColorStops {
		grad.AddColorStop(stop.Offset, nrgba(stop.Color))
	}
	return grad
}

// drawText centres the element's text in its content box.
func (r *Renderer) drawText(e *scene.Element) {
	if e.Text == "" {
		return
	}
	c, ok := css.ParseColor(e.Param("color", "#ffffff"))
	if !ok {
		c = css.Color{R: 255, G: 255, B: 255, A: 255}
	}
	r.context.SetColor(nrgba(c))

	if path := r.opts.Fonts.FontPath(text.IsBold(e.Param("weight", "normal"))); path != "" {
		if err := r.context.LoadFontFace(path, e.Context().Unit(css.UnitEm)); err != nil {
			r.logger.Warn("Font could not be loaded; using the built-in face",
				zap.String("path", path), zap.Error(err))
		}
	}

	content := e.Box.Content
	r.context.DrawStringAnchored(e.Text, content.CenterX(), float64(r.context.Height())-content.CenterY(), 0.5, 0.5)
}

func (r *Renderer) strokeRect(rect layout.Rect, c color.Color) {
	x, y, w, h := r.toImage(rect)
	r.context.SetColor(c)
	r.context.SetLineWidth(1)
	r.context.DrawRectangle(x, y, w, h)
	r.context.Stroke()
}

func nrgba(c css.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
