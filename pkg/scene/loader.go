package scene

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"menubox/pkg/css"
	"menubox/pkg/layout"
	"menubox/pkg/text"
)

// DefaultRootFontSize is the em and rem size used when Options leaves it unset.
const DefaultRootFontSize = 16

// Options configures a scene load.
type Options struct {
	ViewportWidth  float64
	ViewportHeight float64
	RootFontSize   float64

	// BaseDir resolves relative <link> paths. LoadFile sets it to the
	// directory of the scene file.
	BaseDir string

	// Fonts sizes text elements that have no explicit width or height.
	Fonts text.FontConfig

	// Stylesheet holds rules applied before any linked stylesheet.
	Stylesheet *css.Stylesheet
	Logger     *zap.Logger
}

// Scene is a loaded menu screen.
type Scene struct {
	Width    float64
	Height   float64
	Elements []*Element

	byID map[string]*Element
}

// Lookup returns the element with the given id.
func (s *Scene) Lookup(id string) (*Element, bool) {
	e, ok := s.byID[id]
	return e, ok
}

// LoadFile loads a scene from an XML file.
func LoadFile(path string, opts Options) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	if opts.BaseDir == "" {
		opts.BaseDir = filepath.Dir(path)
	}
	return Load(bytes.NewReader(data), opts)
}

// Load parses an XML scene and builds every element in document order, then
// applies markup placements.
func Load(r io.Reader, opts Options) (*Scene, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, ErrNoRoot
	}

	b := newBuilder(opts)
	if err := b.buildChildren(root, "/"+root.Tag, b.rootContext()); err != nil {
		return nil, err
	}
	if err := b.applyPlacements(); err != nil {
		return nil, err
	}
	b.logger.Debug("Scene loaded",
		zap.Int("elements", len(b.scene.Elements)),
		zap.Float64("viewport_width", opts.ViewportWidth),
		zap.Float64("viewport_height", opts.ViewportHeight))
	return b.scene, nil
}

// builder carries the state of one load.
type builder struct {
	opts     Options
	logger   *zap.Logger
	sheet    *css.Stylesheet
	resolver *css.Resolver
	scene    *Scene
}

func newBuilder(opts Options) *builder {
	if opts.RootFontSize <= 0 {
		opts.RootFontSize = DefaultRootFontSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sheet := &css.Stylesheet{}
	sheet.Merge(opts.Stylesheet)

	return &builder{
		opts:     opts,
		logger:   logger,
		sheet:    sheet,
		resolver: css.NewResolver(nil, logger),
		scene: &Scene{
			Width:  opts.ViewportWidth,
			Height: opts.ViewportHeight,
			byID:   make(map[string]*Element),
		},
	}
}

// rootContext centres elements on the viewport unless told otherwise.
func (b *builder) rootContext() *css.Context {
	return css.NewContext(b.opts.ViewportWidth, b.opts.ViewportHeight, b.opts.RootFontSize).
		WithProperties(css.Attributes{"x": "0.5vw", "y": "0.5vh"})
}

func (b *builder) resolverFor(ctx *css.Context) *css.Resolver {
	return b.resolver.WithContext(ctx)
}

// attributesOf returns an element's attributes laid over the stylesheet
// declarations that match it.
func (b *builder) attributesOf(el *etree.Element) css.Attributes {
	own := make(css.Attributes, len(el.Attr))
	for _, a := range el.Attr {
		own[a.Key] = a.Value
	}
	target := css.Target{Tag: el.Tag, ID: own["id"], Classes: splitClasses(own["class"])}
	return b.sheet.Declarations(target, b.opts.ViewportWidth, b.opts.ViewportHeight).Merge(own)
}

// buildChildren builds every child of parent. Links update ctx for the
// siblings that follow them.
func (b *builder) buildChildren(parent *etree.Element, path string, ctx *css.Context) error {
	counts := make(map[string]int)
	for _, child := range parent.ChildElements() {
		counts[child.Tag]++
		childPath := fmt.Sprintf("%s/%s[%d]", path, child.Tag, counts[child.Tag])

		if child.Tag == "link" || child.Tag == "style" {
			next, err := b.applyStyleElement(child, ctx)
			if err != nil {
				return &BuildError{Path: childPath, Err: err}
			}
			ctx = next
			continue
		}

		attrs := b.attributesOf(child)
		childCtx := ctx
		if size, ok := attrs.Get("size"); ok {
			childCtx = childCtx.WithUnit(css.UnitEm, b.resolverFor(ctx).Resolve(size))
		}

		if child.Tag == "list" {
			if err := b.buildList(child, childPath, attrs, childCtx); err != nil {
				return err
			}
			continue
		}

		if IsUITag(child.Tag) {
			if err := b.buildElement(child, childPath, attrs, childCtx); err != nil {
				return err
			}
		}

		if len(child.ChildElements()) > 0 {
			if err := b.buildChildren(child, childPath, b.containerContext(attrs, childCtx)); err != nil {
				return err
			}
		}
	}
	return nil
}

// containerContext passes a container's attributes down to its children. A
// width on the container makes % relative to it.
func (b *builder) containerContext(attrs css.Attributes, ctx *css.Context) *css.Context {
	inherited := attrs.Clone()
	for _, own := range ownOnly {
		delete(inherited, own)
	}
	next := ctx.WithProperties(inherited)
	if width, ok := attrs.Get("width"); ok {
		next = next.WithUnit(css.UnitPercent, b.resolverFor(ctx).Resolve(width)/100)
	}
	return next
}

// ownOnly lists attributes that identify or place one element and are never inherited.
var ownOnly = []string{"id", "class", "text", "width", "height", "place-beside", "place-inside"}

// buildList lays items out from the list position, each item stepping by
// padx/pady from the previous one.
func (b *builder) buildList(list *etree.Element, path string, attrs css.Attributes, ctx *css.Context) error {
	base := b.containerContext(attrs, ctx)
	y, _ := base.Property("y")
	x, _ := base.Property("x")
	pady := css.Param("pady", nil, base, "0")
	padx := css.Param("padx", nil, base, "0")

	counts := make(map[string]int)
	for i, item := range list.ChildElements() {
		counts[item.Tag]++
		itemPath := fmt.Sprintf("%s/%s[%d]", path, item.Tag, counts[item.Tag])

		itemCtx := base.WithProperties(css.Attributes{
			"y": fmt.Sprintf("%s - %d*(%s)", orDefault(y, "0.5vh"), i, pady),
			"x": fmt.Sprintf("%s + %d*(%s)", orDefault(x, "0.5vw"), i, padx),
		})
		itemAttrs := b.attributesOf(item)
		if size, ok := itemAttrs.Get("size"); ok {
			itemCtx = itemCtx.WithUnit(css.UnitEm, b.resolverFor(itemCtx).Resolve(size))
		}

		if IsUITag(item.Tag) {
			if err := b.buildElement(item, itemPath, itemAttrs, itemCtx); err != nil {
				return err
			}
		}
		if err := b.buildChildren(item, itemPath, itemCtx); err != nil {
			return err
		}
	}
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// buildElement creates the element and its box.
func (b *builder) buildElement(el *etree.Element, path string, attrs css.Attributes, ctx *css.Context) error {
	r := b.resolverFor(ctx)
	e := &Element{
		Tag:      el.Tag,
		ID:       attrs["id"],
		Classes:  splitClasses(attrs["class"]),
		Text:     attrs["text"],
		Path:     path,
		Attrs:    attrs,
		resolver: r,
	}
	if e.Text == "" {
		e.Text = strings.TrimSpace(el.Text())
	}

	box, err := layout.NewUIBox(e, b.measure(e, r), r)
	if err != nil {
		return &BuildError{Path: path, Err: err}
	}
	e.Box = box
	e.x, e.y = box.Content.Position()

	if e.ID != "" {
		if _, dup := b.scene.byID[e.ID]; dup {
			return &BuildError{Path: path, Err: fmt.Errorf("%w: %q", ErrDuplicateID, e.ID)}
		}
		b.scene.byID[e.ID] = e
	}
	b.scene.Elements = append(b.scene.Elements, e)

	b.logger.Debug("Built element",
		zap.String("path", path),
		zap.String("id", e.ID),
		zap.Float64("left", box.Content.Left()),
		zap.Float64("bottom", box.Content.Bottom()),
		zap.Float64("width", box.Content.Width()),
		zap.Float64("height", box.Content.Height()))
	return nil
}

// measure gives text elements without an explicit size the size of their
// text in the element's font.
func (b *builder) measure(e *Element, r *css.Resolver) css.Attributes {
	if e.Text == "" {
		return e.Attrs
	}
	_, hasWidth := lookupParam(r, "width", e.Attrs)
	_, hasHeight := lookupParam(r, "height", e.Attrs)
	if hasWidth && hasHeight {
		return e.Attrs
	}

	fontPath := b.opts.Fonts.FontPath(text.IsBold(e.Param("weight", "normal")))
	w, h := text.MeasureText(e.Text, r.Context().Unit(css.UnitEm), fontPath)
	measured := css.Attributes{}
	if !hasWidth {
		measured["width"] = strconv.FormatFloat(w, 'f', -1, 64)
	}
	if !hasHeight {
		measured["height"] = strconv.FormatFloat(h, 'f', -1, 64)
	}
	return e.Attrs.Merge(measured)
}

func lookupParam(r *css.Resolver, name string, attrs css.Attributes) (string, bool) {
	if v, ok := attrs.Get(name); ok {
		return v, true
	}
	return r.Context().Property(name)
}
