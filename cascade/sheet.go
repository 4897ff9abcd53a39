package cascade

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"

	"github.com/wodsaegh/cvg-judge/document"
)

// ErrBadStylesheet marks a stylesheet that could not be parsed into rules.
// It is a data error: callers treat the document as carrying no CSS rather
// than failing HTML validation.
var ErrBadStylesheet = errors.New("cascade: stylesheet could not be parsed")

// ErrElementNotFound is returned when an element's structural path denotes
// nothing in the sheet's document.
var ErrElementNotFound = errors.New("cascade: element not found in document")

// ErrAmbiguousPath is returned when an element's structural path denotes
// more than one node in the sheet's document. The lookup is inconclusive,
// not failed.
var ErrAmbiguousPath = errors.New("cascade: element path is ambiguous")

// ParseRules flattens a stylesheet into one Rule per selector×declaration
// pair. Comma-separated selector lists expand into separate rules; at-rules
// are skipped. Any parse failure, uncompilable selector included, returns
// ErrBadStylesheet.
func ParseRules(cssText string) ([]*Rule, error) {
	if strings.TrimSpace(cssText) == "" {
		return nil, nil
	}
	sheet, err := parser.Parse(cssText)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadStylesheet, err)
	}
	var rules []*Rule
	index := 0
	for _, qr := range sheet.Rules {
		if qr.Kind != css.QualifiedRule {
			continue
		}
		for _, sel := range qr.Selectors {
			sel = strings.TrimSpace(sel)
			base, pseudo := splitPseudo(sel)
			matcher, err := cascadia.Parse(base)
			if err != nil {
				return nil, fmt.Errorf("%w: selector %q: %v", ErrBadStylesheet, sel, err)
			}
			for _, decl := range qr.Declarations {
				r := &Rule{
					Selector:    sel,
					Property:    decl.Property,
					Value:       strings.TrimSpace(decl.Value),
					Important:   decl.Important,
					Pseudo:      pseudo,
					Specificity: computeSpecificity(sel),
					Index:       index,
					matcher:     matcher,
				}
				if r.IsColor() {
					if c, err := ParseColor(r.Value); err == nil {
						r.color = &c
					}
				}
				rules = append(rules, r)
				index++
			}
		}
	}
	tracer().Debugf("parsed %d css rule(s)", len(rules))
	return rules, nil
}

// Sheet binds the flattened rules of a document's embedded CSS to that
// document for matching. Per-sheet lookup caches are keyed by node identity
// and are only valid for the lifetime of this sheet.
type Sheet struct {
	doc   *document.Document
	rules []*Rule
	paths map[*html.Node]string
}

// NewSheet extracts and parses the embedded CSS of doc. The returned error
// wraps ErrBadStylesheet when the CSS does not parse.
func NewSheet(doc *document.Document) (*Sheet, error) {
	rules, err := ParseRules(doc.EmbeddedCSS())
	if err != nil {
		return nil, err
	}
	return &Sheet{doc: doc, rules: rules, paths: make(map[*html.Node]string)}, nil
}

// Empty reports whether the sheet holds no rules at all.
func (s *Sheet) Empty() bool { return len(s.rules) == 0 }

// Rules returns the flattened rules in source order.
func (s *Sheet) Rules() []*Rule { return s.rules }

// locate maps an element onto the sheet's own document. An element of this
// document passes through by identity; a foreign element is found by
// resolving its structural path, memoized per sheet.
func (s *Sheet) locate(el *html.Node) (*html.Node, error) {
	root := el
	for root.Parent != nil {
		root = root.Parent
	}
	if root == s.doc.Root() {
		return el, nil
	}
	path, ok := s.paths[el]
	if !ok {
		path = document.PathOf(el)
		s.paths[el] = path
	}
	matches := s.doc.ResolvePath(path)
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrElementNotFound, path)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %s denotes %d nodes", ErrAmbiguousPath, path, len(matches))
	}
}

// Resolve returns the winning rule for a property on an element, or nil
// when no rule applies. pseudo selects rules bound to a pseudo-class
// ("hover"), the empty string selects ordinary rules. With allowInherit the
// resolution retries on ancestor elements until a rule is found.
func (s *Sheet) Resolve(el *html.Node, property, pseudo string, allowInherit bool) (*Rule, error) {
	node, err := s.locate(el)
	if err != nil {
		return nil, err
	}
	for cur := node; cur != nil; cur = document.ParentElement(cur) {
		if r := s.resolveAt(cur, property, pseudo); r != nil {
			return r, nil
		}
		if !allowInherit {
			break
		}
	}
	return nil, nil
}

// resolveAt applies the cascade for one property directly on one node.
// Rules are scanned in reverse source order, so on equal specificity the
// first candidate found is the latest declared and wins the tie.
func (s *Sheet) resolveAt(node *html.Node, property, pseudo string) *Rule {
	var important, normal []*Rule
	for i := len(s.rules) - 1; i >= 0; i-- {
		r := s.rules[i]
		if r.Property != property || r.Pseudo != pseudo || !r.Matches(node) {
			continue
		}
		if r.Important {
			important = append(important, r)
		} else {
			normal = append(normal, r)
		}
	}
	return dominant(important, normal)
}

// ResolveAll resolves every property that has at least one applicable rule
// on the element, grouping rules by property first and applying the same
// winner selection per group. It agrees with Resolve for pseudo "".
func (s *Sheet) ResolveAll(el *html.Node) (map[string]*Rule, error) {
	node, err := s.locate(el)
	if err != nil {
		return nil, err
	}
	type group struct{ important, normal []*Rule }
	groups := make(map[string]*group)
	for i := len(s.rules) - 1; i >= 0; i-- {
		r := s.rules[i]
		if r.Pseudo != "" || !r.Matches(node) {
			continue
		}
		g := groups[r.Property]
		if g == nil {
			g = &group{}
			groups[r.Property] = g
		}
		if r.Important {
			g.important = append(g.important, r)
		} else {
			g.normal = append(g.normal, r)
		}
	}
	winners := make(map[string]*Rule, len(groups))
	for property, g := range groups {
		winners[property] = dominant(g.important, g.normal)
	}
	return winners, nil
}

// dominant picks the winner out of candidate lists already in reverse
// source order; important candidates shadow normal ones entirely.
func dominant(important, normal []*Rule) *Rule {
	candidates := normal
	if len(important) > 0 {
		candidates = important
	}
	if len(candidates) == 0 {
		return nil
	}
	dom := candidates[0]
	for _, r := range candidates[1:] {
		if r.Specificity.Greater(dom.Specificity) {
			dom = r
		}
	}
	return dom
}

// FindBySelector returns the most specific rule whose selector text equals
// the given selector and declares the given property. Both are compared
// whitespace-insensitively; nil when nothing matches.
func (s *Sheet) FindBySelector(selector, property string) *Rule {
	selector = normalizeQuery(selector)
	property = normalizeQuery(property)
	var dom *Rule
	for _, r := range s.rules {
		if normalizeQuery(r.Selector) != selector || normalizeQuery(r.Property) != property {
			continue
		}
		if dom == nil || r.Specificity.Greater(dom.Specificity) {
			dom = r
		}
	}
	return dom
}

func normalizeQuery(s string) string {
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, " ", "")
	return strings.ToLower(s)
}
