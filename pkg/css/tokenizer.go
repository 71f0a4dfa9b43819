package css

import (
	"fmt"
	"strconv"
	"unicode"
)

// Layout expression tokenizer: numbers with an optional unit suffix,
// identifiers (function names and keywords), operators, parentheses and commas.

type ExprTokenType int

const (
	ExprTokenNumber ExprTokenType = iota
	ExprTokenIdent
	ExprTokenPlus   // +
	ExprTokenMinus  // -
	ExprTokenStar   // *
	ExprTokenSlash  // /
	ExprTokenLParen // (
	ExprTokenRParen // )
	ExprTokenComma  // ,
	ExprTokenEOF
)

type ExprToken struct {
	Type  ExprTokenType
	Value string  // raw text
	Num   float64 // numeric value for ExprTokenNumber
	Unit  string  // unit suffix for ExprTokenNumber, "" when unitless
	Pos   int     // byte offset in the input
}

type ExprTokenizer struct {
	input string
	pos   int
}

func NewExprTokenizer(input string) *ExprTokenizer {
	return &ExprTokenizer{input: input}
}

// NextToken returns the next token. Unknown characters and unit suffixes are errors.
func (t *ExprTokenizer) NextToken() (ExprToken, error) {
	t.skipWhitespace()

	if t.pos >= len(t.input) {
		return ExprToken{Type: ExprTokenEOF, Pos: t.pos}, nil
	}

	start := t.pos
	ch := t.input[t.pos]

	switch ch {
	case '+':
		t.pos++
		return ExprToken{Type: ExprTokenPlus, Value: "+", Pos: start}, nil
	case '-':
		t.pos++
		return ExprToken{Type: ExprTokenMinus, Value: "-", Pos: start}, nil
	case '*':
		t.pos++
		return ExprToken{Type: ExprTokenStar, Value: "*", Pos: start}, nil
	case '/':
		t.pos++
		return ExprToken{Type: ExprTokenSlash, Value: "/", Pos: start}, nil
	case '(':
		t.pos++
		return ExprToken{Type: ExprTokenLParen, Value: "(", Pos: start}, nil
	case ')':
		t.pos++
		return ExprToken{Type: ExprTokenRParen, Value: ")", Pos: start}, nil
	case ',':
		t.pos++
		return ExprToken{Type: ExprTokenComma, Value: ",", Pos: start}, nil
	}

	if isDigit(ch) || ch == '.' {
		return t.readNumber()
	}
	if isIdentStart(ch) {
		return t.readIdent(), nil
	}
	return ExprToken{}, &ParseError{Pos: start, Msg: fmt.Sprintf("unexpected character %q", ch)}
}

// Tokenize returns every token up to and including EOF.
func (t *ExprTokenizer) Tokenize() ([]ExprToken, error) {
	var tokens []ExprToken
	for {
		tok, err := t.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == ExprTokenEOF {
			return tokens, nil
		}
	}
}

func (t *ExprTokenizer) readNumber() (ExprToken, error) {
	start := t.pos
	seenDot := false
	for t.pos < len(t.input) {
		ch := t.input[t.pos]
		if ch == '.' && !seenDot {
			seenDot = true
			t.pos++
			continue
		}
		if !isDigit(ch) {
			break
		}
		t.pos++
	}
	numText := t.input[start:t.pos]
	num, err := strconv.ParseFloat(numText, 64)
	if err != nil {
		return ExprToken{}, &ParseError{Pos: start, Msg: fmt.Sprintf("invalid number %q", numText)}
	}

	// Unit suffix directly attached to the number.
	unitStart := t.pos
	for t.pos < len(t.input) && (isLetter(t.input[t.pos]) || t.input[t.pos] == '%') {
		t.pos++
		if t.input[t.pos-1] == '%' {
			break
		}
	}
	unit := t.input[unitStart:t.pos]
	if unit != "" && !IsUnit(unit) {
		return ExprToken{}, &ParseError{Pos: unitStart, Msg: fmt.Sprintf("unknown unit %q", unit)}
	}

	return ExprToken{
		Type:  ExprTokenNumber,
		Value: t.input[start:t.pos],
		Num:   num,
		Unit:  unit,
		Pos:   start,
	}, nil
}

func (t *ExprTokenizer) readIdent() ExprToken {
	start := t.pos
	for t.pos < len(t.input) && (isIdentStart(t.input[t.pos]) || isDigit(t.input[t.pos])) {
		t.pos++
	}
	return ExprToken{Type: ExprTokenIdent, Value: t.input[start:t.pos], Pos: start}
}

func (t *ExprTokenizer) skipWhitespace() {
	for t.pos < len(t.input) && unicode.IsSpace(rune(t.input[t.pos])) {
		t.pos++
	}
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isLetter(ch byte) bool { return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') }

func isIdentStart(ch byte) bool { return isLetter(ch) || ch == '_' }
