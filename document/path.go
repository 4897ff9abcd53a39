package document

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// PathOf derives the structural path of an element, e.g. /html/body/div[2].
// A sibling index is only attached when the parent holds more than one
// element of the same name, so paths stay stable across documents that agree
// in structure. The path depends only on the node's own tree and can be
// resolved against a different document with ResolvePath.
func PathOf(n *html.Node) string {
	var components []string
	for child := n; child != nil && child.Type == html.ElementNode; child = child.Parent {
		parent := child.Parent
		if parent == nil {
			components = append(components, child.Data)
			break
		}
		sameTag := 0
		index := 0
		for c := parent.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == child.Data {
				sameTag++
				if c == child {
					index = sameTag
				}
			}
		}
		if sameTag > 1 {
			components = append(components, fmt.Sprintf("%s[%d]", child.Data, index))
		} else {
			components = append(components, child.Data)
		}
		if parent.Type != html.ElementNode {
			break
		}
	}
	// components were collected bottom-up
	for i, j := 0, len(components)-1; i < j; i, j = i+1, j-1 {
		components[i], components[j] = components[j], components[i]
	}
	return "/" + strings.Join(components, "/")
}

// ResolvePath resolves a structural path against this document and returns
// every node it denotes. A path segment without an index fans out over all
// same-named element children, so the result may hold zero, one or several
// nodes.
func (d *Document) ResolvePath(path string) []*html.Node {
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	current := []*html.Node{d.root}
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		name, index := splitSegment(seg)
		var next []*html.Node
		for _, n := range current {
			sameTag := 0
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type != html.ElementNode || c.Data != name {
					continue
				}
				sameTag++
				if index == 0 || index == sameTag {
					next = append(next, c)
				}
			}
		}
		current = next
		if len(current) == 0 {
			return nil
		}
	}
	return current
}

// splitSegment takes "div[2]" apart into ("div", 2); a bare "div" yields
// index 0 meaning "any".
func splitSegment(seg string) (string, int) {
	open := strings.IndexByte(seg, '[')
	if open < 0 || !strings.HasSuffix(seg, "]") {
		return seg, 0
	}
	idx, err := strconv.Atoi(seg[open+1 : len(seg)-1])
	if err != nil {
		return seg, 0
	}
	return seg[:open], idx
}
