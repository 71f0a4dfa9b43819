package css

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Target is what a selector is matched against: one scene element.
type Target struct {
	Tag     string
	ID      string
	Classes []string
}

func (t Target) hasClass(name string) bool {
	for _, c := range t.Classes {
		if c == name {
			return true
		}
	}
	return false
}

// Matches returns true if the target satisfies every component of the selector.
func (s Selector) Matches(t Target) bool {
	part := s.Part
	if part.Element != "" && part.Element != "*" && part.Element != t.Tag {
		return false
	}
	if part.ID != "" && part.ID != t.ID {
		return false
	}
	for _, class := range part.Classes {
		if !t.hasClass(class) {
			return false
		}
	}
	return true
}

// MediaFeature is one "(feature: length)" condition of a media query.
type MediaFeature struct {
	Name  string // min-width, max-width, min-height or max-height
	Value float64
}

// MediaQuery is a conjunction of features; all must hold.
type MediaQuery struct {
	Raw      string
	Features []MediaFeature
}

var mediaFeaturePattern = regexp.MustCompile(`\(\s*([a-z-]+)\s*:\s*((?:[^()]|\([^()]*\))+)\)`)

// ParseMediaQuery parses queries like "(min-width: 800px) and (max-height: 600px)".
// "screen" and "all" media types are accepted and ignored.
func ParseMediaQuery(query string) (*MediaQuery, error) {
	mq := &MediaQuery{Raw: query}
	for _, m := range mediaFeaturePattern.FindAllStringSubmatch(query, -1) {
		name := m[1]
		switch name {
		case "min-width", "max-width", "min-height", "max-height":
		default:
			return nil, fmt.Errorf("media query %q: unsupported feature %q", query, name)
		}
		v, err := Evaluate(strings.TrimSpace(m[2]), nil)
		if err != nil {
			return nil, fmt.Errorf("media query %q: %w", query, err)
		}
		mq.Features = append(mq.Features, MediaFeature{Name: name, Value: v})
	}
	return mq, nil
}

// Matches reports whether the viewport satisfies the query.
func (mq *MediaQuery) Matches(viewportWidth, viewportHeight float64) bool {
	if mq == nil {
		return true
	}
	for _, f := range mq.Features {
		switch f.Name {
		case "min-width":
			if viewportWidth < f.Value {
				return false
			}
		case "max-width":
			if viewportWidth > f.Value {
				return false
			}
		case "min-height":
			if viewportHeight < f.Value {
				return false
			}
		case "max-height":
			if viewportHeight > f.Value {
				return false
			}
		}
	}
	return true
}

// Declarations returns the declarations that apply to the target, later
// rules overriding earlier ones within the same specificity.
func (s *Stylesheet) Declarations(t Target, viewportWidth, viewportHeight float64) Attributes {
	out := make(Attributes)
	if s == nil {
		return out
	}

	matched := make([]Rule, 0)
	for _, rule := range s.Rules {
		if rule.Media.Matches(viewportWidth, viewportHeight) && rule.Selector.Matches(t) {
			matched = append(matched, rule)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Selector.Specificity != matched[j].Selector.Specificity {
			return matched[i].Selector.Specificity < matched[j].Selector.Specificity
		}
		return matched[i].order < matched[j].order
	})
	for _, rule := range matched {
		for k, v := range rule.Declarations {
			out[k] = v
		}
	}
	return out
}
