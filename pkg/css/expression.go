package css

import (
	"fmt"
	"math"
	"strings"
)

// ParseError describes a layout expression that could not be evaluated.
type ParseError struct {
	Expr string
	Pos  int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Expr == "" {
		return fmt.Sprintf("expression: %s at offset %d", e.Msg, e.Pos)
	}
	return fmt.Sprintf("expression %q: %s at offset %d", e.Expr, e.Msg, e.Pos)
}

// Anchor and alignment keywords. They name roles, not lengths, and are never
// evaluated as arithmetic.
var keywords = map[string]bool{
	"top":    true,
	"right":  true,
	"left":   true,
	"bottom": true,
	"center": true,
}

// IsKeyword reports whether the (trimmed) value is one of the anchor keywords.
func IsKeyword(value string) bool {
	return keywords[strings.TrimSpace(value)]
}

// Evaluate computes a layout expression in pixels. Unit tokens are replaced by
// number * ctx.Unit(unit) (px is the identity). Supported grammar:
//
//	expr    := term (('+' | '-') term)*
//	term    := unary (('*' | '/') unary)*
//	unary   := ('+' | '-') unary | primary
//	primary := NUMBER | IDENT '(' expr (',' expr)* ')' | '(' expr ')'
//
// with the functions calc, min, max, abs and round. Nothing else is reachable
// from an expression.
func Evaluate(expr string, ctx *Context) (float64, error) {
	tokens, err := NewExprTokenizer(expr).Tokenize()
	if err != nil {
		return 0, withExpr(err, expr)
	}
	p := &exprParser{tokens: tokens, ctx: ctx}
	if p.peek().Type == ExprTokenEOF {
		return 0, &ParseError{Expr: expr, Msg: "empty expression"}
	}
	v, err := p.parseExpr()
	if err != nil {
		return 0, withExpr(err, expr)
	}
	if tok := p.peek(); tok.Type != ExprTokenEOF {
		return 0, &ParseError{Expr: expr, Pos: tok.Pos, Msg: fmt.Sprintf("unexpected %q", tok.Value)}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Expr: expr, Msg: "result is not a finite number"}
	}
	return v, nil
}

func withExpr(err error, expr string) error {
	if pe, ok := err.(*ParseError); ok && pe.Expr == "" {
		pe.Expr = expr
	}
	return err
}

type exprParser struct {
	tokens []ExprToken
	pos    int
	ctx    *Context
}

func (p *exprParser) peek() ExprToken {
	return p.tokens[p.pos]
}

func (p *exprParser) next() ExprToken {
	tok := p.tokens[p.pos]
	if tok.Type != ExprTokenEOF {
		p.pos++
	}
	return tok
}

func (p *exprParser) expect(tt ExprTokenType, what string) error {
	tok := p.next()
	if tok.Type != tt {
		found := tok.Value
		if tok.Type == ExprTokenEOF {
			found = "end of input"
		}
		return &ParseError{Pos: tok.Pos, Msg: fmt.Sprintf("expected %s, found %q", what, found)}
	}
	return nil
}

func (p *exprParser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().Type {
		case ExprTokenPlus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left += right
		case ExprTokenMinus:
			p.next()
			right, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			left -= right
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().Type {
		case ExprTokenStar:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			left *= right
		case ExprTokenSlash:
			op := p.next()
			right, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if right == 0 {
				return 0, &ParseError{Pos: op.Pos, Msg: "division by zero"}
			}
			left /= right
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseUnary() (float64, error) {
	switch p.peek().Type {
	case ExprTokenMinus:
		p.next()
		v, err := p.parseUnary()
		return -v, err
	case ExprTokenPlus:
		p.next()
		return p.parseUnary()
	}
	return p.parsePrimary()
}

func (p *exprParser) parsePrimary() (float64, error) {
	tok := p.next()
	switch tok.Type {
	case ExprTokenNumber:
		if tok.Unit == "" || tok.Unit == UnitPx {
			return tok.Num, nil
		}
		return tok.Num * p.ctx.Unit(tok.Unit), nil
	case ExprTokenLParen:
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		return v, p.expect(ExprTokenRParen, "')'")
	case ExprTokenIdent:
		return p.parseCall(tok)
	case ExprTokenEOF:
		return 0, &ParseError{Pos: tok.Pos, Msg: "unexpected end of input"}
	}
	return 0, &ParseError{Pos: tok.Pos, Msg: fmt.Sprintf("unexpected %q", tok.Value)}
}

func (p *exprParser) parseCall(name ExprToken) (float64, error) {
	fn, ok := exprFuncs[strings.ToLower(name.Value)]
	if !ok {
		return 0, &ParseError{Pos: name.Pos, Msg: fmt.Sprintf("unknown name %q", name.Value)}
	}
	if err := p.expect(ExprTokenLParen, "'(' after "+name.Value); err != nil {
		return 0, err
	}
	var args []float64
	for {
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		args = append(args, v)
		if p.peek().Type != ExprTokenComma {
			break
		}
		p.next()
	}
	if err := p.expect(ExprTokenRParen, "')'"); err != nil {
		return 0, err
	}
	if len(args) < fn.minArgs || (fn.maxArgs > 0 && len(args) > fn.maxArgs) {
		return 0, &ParseError{Pos: name.Pos, Msg: fmt.Sprintf("%s: wrong number of arguments (%d)", name.Value, len(args))}
	}
	v, err := fn.call(args)
	if err != nil {
		return 0, &ParseError{Pos: name.Pos, Msg: fmt.Sprintf("%s: %v", name.Value, err)}
	}
	return v, nil
}

type exprFunc struct {
	minArgs int
	maxArgs int // 0 means variadic
	call    func(args []float64) (float64, error)
}

var exprFuncs = map[string]exprFunc{
	"calc": {minArgs: 1, maxArgs: 1, call: func(a []float64) (float64, error) { return a[0], nil }},
	"min": {minArgs: 1, call: func(a []float64) (float64, error) {
		m := a[0]
		for _, v := range a[1:] {
			m = math.Min(m, v)
		}
		return m, nil
	}},
	"max": {minArgs: 1, call: func(a []float64) (float64, error) {
		m := a[0]
		for _, v := range a[1:] {
			m = math.Max(m, v)
		}
		return m, nil
	}},
	"abs":   {minArgs: 1, maxArgs: 1, call: func(a []float64) (float64, error) { return math.Abs(a[0]), nil }},
	"round": {minArgs: 1, maxArgs: 2, call: roundHalfEven},
}

// roundHalfEven rounds to the nearest value with ties to even, optionally to
// a number of decimal digits: round(2.5) == 2, round(1.25, 1) == 1.2.
func roundHalfEven(a []float64) (float64, error) {
	if len(a) == 1 {
		return math.RoundToEven(a[0]), nil
	}
	digits := a[1]
	if digits != math.Trunc(digits) {
		return 0, fmt.Errorf("digits must be an integer, got %v", digits)
	}
	scale := math.Pow(10, digits)
	return math.RoundToEven(a[0]*scale) / scale, nil
}
