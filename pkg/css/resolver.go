package css

import (
	"strings"

	"go.uber.org/zap"
)

// Resolver turns attribute values into pixels against one Context.
//
// Malformed expressions never fail a layout pass: they resolve to 0 and the
// problem is reported on the logger.
type Resolver struct {
	ctx    *Context
	logger *zap.Logger
}

// NewResolver creates a resolver. A nil logger discards diagnostics.
func NewResolver(ctx *Context, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ctx == nil {
		ctx = ContextOf(nil)
	}
	return &Resolver{ctx: ctx, logger: logger}
}

// Context returns the context the resolver evaluates against.
func (r *Resolver) Context() *Context { return r.ctx }

// Logger returns the resolver's logger.
func (r *Resolver) Logger() *zap.Logger { return r.logger }

// WithContext returns a resolver for another context sharing the same logger.
func (r *Resolver) WithContext(ctx *Context) *Resolver {
	return NewResolver(ctx, r.logger)
}

// Resolve evaluates expr in pixels. Keywords and malformed expressions yield 0;
// use Keyword to tell keywords apart first.
func (r *Resolver) Resolve(expr string) float64 {
	if IsKeyword(expr) {
		return 0
	}
	v, err := Evaluate(expr, r.ctx)
	if err != nil {
		r.logger.Warn("Layout expression could not be evaluated; using 0",
			zap.String("expression", expr),
			zap.Error(err))
		return 0
	}
	return v
}

// Keyword returns the anchor keyword expr names, if it is one.
func (r *Resolver) Keyword(expr string) (string, bool) {
	if IsKeyword(expr) {
		return strings.TrimSpace(expr), true
	}
	return "", false
}

// Param looks a property up on the element, then in the context, then returns def.
func (r *Resolver) Param(name string, attrs Attributes, def string) string {
	return Param(name, attrs, r.ctx, def)
}

// ResolveParam looks a property up like Param and resolves it to pixels.
func (r *Resolver) ResolveParam(name string, attrs Attributes, def string) float64 {
	return r.Resolve(r.Param(name, attrs, def))
}
