package document

import (
	"fmt"
	"sort"
	"strings"

	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Dump renders the element/comment structure of the document as an ASCII
// tree, for debugging feedback.
func (d *Document) Dump() string {
	p := tp.New()
	if root := d.DocumentElement(); root != nil {
		ppd(p, d, root)
	}
	return p.String()
}

func ppd(p tp.Tree, d *Document, node *html.Node) {
	label := nodeLabel(d, node)
	if node.Type == html.CommentNode {
		p.AddNode(label)
		return
	}
	children := Children(node, true)
	if len(children) == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, c := range children {
		ppd(branch, d, c)
	}
}

func nodeLabel(d *Document, n *html.Node) string {
	var b strings.Builder
	if n.Type == html.CommentNode {
		fmt.Fprintf(&b, "<!--%s-->", strings.TrimSpace(n.Data))
	} else {
		b.WriteString("<" + n.Data)
		attrs := Attrs(n)
		keys := make([]string, 0, len(attrs))
		for k := range attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%q", k, attrs[k])
		}
		b.WriteString(">")
	}
	if line := d.Line(n); line > 0 {
		fmt.Fprintf(&b, "  :%d", line)
	}
	return b.String()
}
