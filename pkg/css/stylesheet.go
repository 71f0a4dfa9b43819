package css

import (
	"regexp"
	"strings"
)

// Menu stylesheet structures

// SelectorPart is one compound selector: tag, classes and id must all match.
type SelectorPart struct {
	Element string
	Classes []string
	ID      string
}

// Selector represents a CSS selector
type Selector struct {
	Raw         string // Original selector string
	Part        SelectorPart
	Specificity int // Specificity score for cascade
}

// Rule represents a CSS rule (selector + declarations)
type Rule struct {
	Selector     Selector
	Declarations Attributes // property -> value
	Media        *MediaQuery
	order        int
}

// Stylesheet represents a parsed menu stylesheet
type Stylesheet struct {
	Rules []Rule
}

var commentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)

// ParseStylesheet parses stylesheet content into rules. Rules inside
// @media blocks keep their query and only apply when it matches. Malformed
// blocks and unsupported media queries are skipped.
func ParseStylesheet(css string) (*Stylesheet, error) {
	stylesheet := &Stylesheet{
		Rules: make([]Rule, 0),
	}

	css = strings.TrimSpace(commentPattern.ReplaceAllString(css, ""))
	if css == "" {
		return stylesheet, nil
	}

	for _, block := range splitRules(css) {
		header, body, ok := splitBlock(block)
		if !ok {
			// Skip malformed rules
			continue
		}
		if strings.HasPrefix(header, "@media") {
			query, err := ParseMediaQuery(strings.TrimSpace(strings.TrimPrefix(header, "@media")))
			if err != nil {
				continue
			}
			for _, inner := range splitRules(body) {
				if innerHeader, innerBody, ok := splitBlock(inner); ok {
					stylesheet.addRules(innerHeader, innerBody, query)
				}
			}
			continue
		}
		stylesheet.addRules(header, body, nil)
	}

	return stylesheet, nil
}

// Merge appends the rules of other after the receiver's, so that at equal
// specificity the later stylesheet wins.
func (s *Stylesheet) Merge(other *Stylesheet) {
	if other == nil {
		return
	}
	base := len(s.Rules)
	for _, rule := range other.Rules {
		rule.order += base
		s.Rules = append(s.Rules, rule)
	}
}

func (s *Stylesheet) addRules(selectors, body string, media *MediaQuery) {
	declarations := parseDeclarations(body)
	if len(declarations) == 0 {
		return
	}
	for _, raw := range strings.Split(selectors, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		sel, ok := parseSelector(raw)
		if !ok {
			continue
		}
		s.Rules = append(s.Rules, Rule{
			Selector:     sel,
			Declarations: declarations,
			Media:        media,
			order:        len(s.Rules),
		})
	}
}

// splitRules splits CSS into individual top-level blocks
func splitRules(css string) []string {
	rules := make([]string, 0)
	depth := 0
	start := 0

	for i, ch := range css {
		if ch == '{' {
			depth++
		} else if ch == '}' {
			if depth == 0 {
				// Stray closing brace; drop everything before it
				start = i + 1
				continue
			}
			depth--
			if depth == 0 {
				// Found complete rule
				ruleStr := css[start : i+1]
				if strings.TrimSpace(ruleStr) != "" {
					rules = append(rules, ruleStr)
				}
				start = i + 1
			}
		}
	}
	if rest := strings.TrimSpace(css[start:]); rest != "" {
		rules = append(rules, rest)
	}

	return rules
}

// splitBlock separates "header { body }" into header and body.
func splitBlock(block string) (string, string, bool) {
	open := strings.Index(block, "{")
	end := strings.LastIndex(block, "}")
	if open == -1 || end < open {
		return "", "", false
	}
	return strings.TrimSpace(block[:open]), block[open+1 : end], true
}

var selectorPattern = regexp.MustCompile(`^(\*|[A-Za-z][\w-]*)?([.#][A-Za-z_][\w-]*)*$`)

// parseSelector parses a compound selector such as "button.primary#play".
// Anything else (combinators, attribute selectors, stray punctuation) is rejected.
func parseSelector(selectorStr string) (Selector, bool) {
	selectorStr = strings.TrimSpace(selectorStr)
	if selectorStr == "" || !selectorPattern.MatchString(selectorStr) {
		return Selector{}, false
	}
	sel := Selector{Raw: selectorStr}

	i := 0
	readName := func() string {
		start := i
		for i < len(selectorStr) && selectorStr[i] != '.' && selectorStr[i] != '#' {
			i++
		}
		return selectorStr[start:i]
	}

	if i < len(selectorStr) && selectorStr[i] != '.' && selectorStr[i] != '#' {
		sel.Part.Element = readName()
		if sel.Part.Element != "*" {
			sel.Specificity += 1
		}
	}
	for i < len(selectorStr) {
		marker := selectorStr[i]
		i++
		name := readName()
		if name == "" {
			continue
		}
		switch marker {
		case '#':
			sel.Part.ID = name
			sel.Specificity += 100
		case '.':
			sel.Part.Classes = append(sel.Part.Classes, name)
			sel.Specificity += 10
		}
	}
	return sel, true
}

// parseDeclarations parses CSS declarations into a map. Shorthands are kept
// whole; the gap resolver expands them with their own overrides.
func parseDeclarations(declStr string) Attributes {
	declarations := make(Attributes)

	for _, part := range strings.Split(declStr, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		colonPos := strings.Index(part, ":")
		if colonPos == -1 {
			continue
		}

		property := strings.TrimSpace(part[:colonPos])
		value := strings.TrimSpace(part[colonPos+1:])

		if property != "" && value != "" {
			declarations[property] = value
		}
	}

	return declarations
}
