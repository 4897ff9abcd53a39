package cascade

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Specificity is the (ids, classes/attributes/pseudo-classes,
// elements/pseudo-elements) triple ranking competing rules, compared
// lexicographically.
type Specificity [3]int

// Greater reports whether s ranks strictly above o.
func (s Specificity) Greater(o Specificity) bool {
	for i := 0; i < 3; i++ {
		if s[i] != o[i] {
			return s[i] > o[i]
		}
	}
	return false
}

// computeSpecificity counts selector components directly in the serialized
// selector text: '#' for ids; '.', '[' and a single ':' for classes,
// attributes and pseudo-classes; bare identifier characters and a doubled
// '::' for elements and pseudo-elements.
func computeSpecificity(selector string) Specificity {
	var s Specificity
	s[0] = strings.Count(selector, "#")
	prev := byte(0)
	for i := 0; i < len(selector); i++ {
		x := selector[i]
		if x == '.' || x == '[' {
			s[1]++
		} else if x == ':' && prev != ':' {
			s[1]++
		}
		prev = x
	}
	prev = 0
	for i := 0; i < len(selector); i++ {
		x := selector[i]
		// i > 0: a leading identifier character has no preceding context
		// and is not counted
		if isAlpha(x) && i > 0 && !strings.ContainsRune(`.[:="'`, rune(prev)) {
			s[2]++
		} else if x == ':' && prev == ':' {
			s[2]++
		}
		prev = x
	}
	return s
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// Rule is one selector×declaration pair of a stylesheet.
type Rule struct {
	Selector    string // serialized selector text
	Property    string
	Value       string
	Important   bool
	Pseudo      string // trailing pseudo-class, "" when none
	Specificity Specificity
	Index       int // source order

	matcher cascadia.Sel
	color   *Color // parsed lazily at rule construction for color properties
}

// Matches reports whether the rule's selector applies to the element.
func (r *Rule) Matches(n *html.Node) bool {
	return r.matcher != nil && r.matcher.Match(n)
}

// IsColor reports whether the rule declares a color-valued property.
func (r *Rule) IsColor() bool {
	return strings.Contains(strings.ToLower(r.Property), "color")
}

// HasColor checks the rule's value against a color in any supported format.
// Non-color rules and unparseable values never match.
func (r *Rule) HasColor(value string) bool {
	if !r.IsColor() || r.color == nil {
		return false
	}
	other, err := ParseColor(value)
	if err != nil {
		return false
	}
	return r.color.Equal(other)
}

// splitPseudo takes a trailing pseudo-class or pseudo-element off a
// selector, returning the matchable part and the pseudo-class name. A
// pseudo-element (doubled colon) yields an empty pseudo name, as rules for
// pseudo-elements take part in regular resolution.
func splitPseudo(selector string) (base, pseudo string) {
	colon := strings.IndexByte(selector, ':')
	if colon < 0 {
		return selector, ""
	}
	rest := selector[colon+1:]
	// everything up to the end of the simple selector belongs to the pseudo
	end := strings.IndexAny(rest, " >+~,")
	suffix := rest
	if end >= 0 {
		suffix = rest[:end]
	}
	base = selector[:colon]
	if end >= 0 {
		base += rest[end:]
	}
	if next := strings.IndexByte(suffix, ':'); next >= 0 {
		// doubled colon: a pseudo-element, not a pseudo-class
		pseudo = suffix[:next]
	} else {
		pseudo = suffix
	}
	return base, pseudo
}
