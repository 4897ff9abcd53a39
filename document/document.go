package document

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/wodsaegh/cvg-judge/report"
)

// Document is one parsed HTML document plus the source positions of its
// nodes. A Document is immutable after Parse and safe for concurrent reads.
type Document struct {
	root  *html.Node // the document node
	lines map[*html.Node]int
}

// Parse materializes src into a Document. The parser is forgiving; callers
// that need legality guarantees run the balance scan and the tag validator
// first.
func Parse(src string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	d := &Document{root: root, lines: make(map[*html.Node]int)}
	d.assignLines(src)
	return d, nil
}

// Root returns the document node.
func (d *Document) Root() *html.Node { return d.root }

// DocumentElement returns the <html> element, the root of comparisons.
func (d *Document) DocumentElement() *html.Node {
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// Line returns the 1-based source line of an element or comment node, or
// report.NoPosition when the node was synthesized by the parser.
func (d *Document) Line(n *html.Node) int {
	if l, ok := d.lines[n]; ok {
		return l
	}
	return report.NoPosition
}

// tokenEvent is one positioned start-tag or comment occurrence in the raw
// source, used to align tree nodes with source lines.
type tokenEvent struct {
	comment bool
	name    string
	line    int
}

// assignLines walks the tree in document order and pairs every element and
// comment with the next matching token occurrence in the source. Nodes
// without a matching token (synthesized ones) stay unmapped.
func (d *Document) assignLines(src string) {
	events := collectEvents(src)
	cursor := 0
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode || n.Type == html.CommentNode {
			for i := cursor; i < len(events); i++ {
				ev := events[i]
				if n.Type == html.CommentNode && ev.comment ||
					n.Type == html.ElementNode && !ev.comment && ev.name == n.Data {
					d.lines[n] = ev.line
					cursor = i + 1
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
}

func collectEvents(src string) []tokenEvent {
	var events []tokenEvent
	z := html.NewTokenizer(strings.NewReader(src))
	line := 1
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return events
		}
		raw := z.Raw()
		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			events = append(events, tokenEvent{name: strings.ToLower(string(name)), line: line})
		case html.CommentToken:
			events = append(events, tokenEvent{comment: true, line: line})
		}
		for i := 0; i < len(raw); i++ {
			if raw[i] == '\n' {
				line++
			}
		}
	}
}

// Attrs returns the attribute map of an element, keys lower-cased.
func Attrs(n *html.Node) map[string]string {
	m := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		m[strings.ToLower(a.Key)] = a.Val
	}
	return m
}

// OwnText returns the text immediately following the start tag of n, up to
// its first non-text child.
func OwnText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil && c.Type == html.TextNode; c = c.NextSibling {
		b.WriteString(c.Data)
	}
	return b.String()
}

// Children returns the element children of n, optionally keeping comment
// nodes in document order between them.
func Children(n *html.Node, withComments bool) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode || (withComments && c.Type == html.CommentNode) {
			out = append(out, c)
		}
	}
	return out
}

// ParentElement returns the nearest element ancestor of n, or nil.
func ParentElement(n *html.Node) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return p
		}
	}
	return nil
}

// EmbeddedCSS concatenates the text of every <style> element of the
// document.
func (d *Document) EmbeddedCSS() string {
	var sheets []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Style {
			var b strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					b.WriteString(c.Data)
				}
			}
			sheets = append(sheets, b.String())
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	return strings.Join(sheets, "\n")
}

// IsEmpty reports whether src holds no element at all: nothing but
// whitespace, comments, or stray text.
func IsEmpty(src string) bool {
	if strings.TrimSpace(src) == "" {
		return true
	}
	z := html.NewTokenizer(strings.NewReader(src))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return true
		case html.StartTagToken, html.SelfClosingTagToken:
			return false
		}
	}
}
