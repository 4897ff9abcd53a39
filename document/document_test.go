package document

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/wodsaegh/cvg-judge/report"
)

const page = `<html>
<head>
<style>p { color: red; }</style>
</head>
<body>
<!-- greeting -->
<div id="a" class="box wide">
<p>Hello <em>there</em> tail</p>
</div>
<div id="b"></div>
</body>
</html>`

func mustParse(t *testing.T, src string) *Document {
	t.Helper()
	d, err := Parse(src)
	if err != nil {
		t.Fatalf("cannot parse test document: %v", err)
	}
	return d
}

func TestParseAndDocumentElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cvg.document")
	defer teardown()
	//
	d := mustParse(t, page)
	root := d.DocumentElement()
	if root == nil || root.Data != "html" {
		t.Fatalf("expected document element <html>, is %v", root)
	}
}

func TestLineAssignment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cvg.document")
	defer teardown()
	//
	d := mustParse(t, page)
	nodes := d.ResolvePath("/html/body/div[1]")
	if len(nodes) != 1 {
		t.Fatalf("expected one node for first div, have %d", len(nodes))
	}
	if l := d.Line(nodes[0]); l != 7 {
		t.Errorf("expected first div on line 7, is %d", l)
	}
	nodes = d.ResolvePath("/html/body/div[1]/p")
	if len(nodes) != 1 {
		t.Fatalf("expected one node for p, have %d", len(nodes))
	}
	if l := d.Line(nodes[0]); l != 8 {
		t.Errorf("expected p on line 8, is %d", l)
	}
}

func TestLineOfSynthesizedNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cvg.document")
	defer teardown()
	//
	// The parser synthesizes html/head/body around a bare fragment.
	d := mustParse(t, "<p>x</p>")
	root := d.DocumentElement()
	if l := d.Line(root); l != report.NoPosition {
		t.Errorf("expected synthesized <html> to have no position, is %d", l)
	}
}

func TestAttrs(t *testing.T) {
	d := mustParse(t, page)
	nodes := d.ResolvePath("/html/body/div[1]")
	attrs := Attrs(nodes[0])
	if attrs["id"] != "a" {
		t.Errorf("expected id 'a', is %q", attrs["id"])
	}
	if attrs["class"] != "box wide" {
		t.Errorf("expected class 'box wide', is %q", attrs["class"])
	}
}

func TestOwnTextStopsAtFirstChildElement(t *testing.T) {
	d := mustParse(t, page)
	nodes := d.ResolvePath("/html/body/div[1]/p")
	text := strings.TrimSpace(OwnText(nodes[0]))
	if text != "Hello" {
		t.Errorf("expected own text 'Hello', is %q", text)
	}
}

func TestChildrenWithAndWithoutComments(t *testing.T) {
	d := mustParse(t, page)
	body := d.ResolvePath("/html/body")[0]
	plain := Children(body, false)
	if len(plain) != 2 {
		t.Errorf("expected 2 element children, have %d", len(plain))
	}
	withComments := Children(body, true)
	if len(withComments) != 3 {
		t.Errorf("expected 3 children including the comment, have %d", len(withComments))
	}
}

func TestEmbeddedCSS(t *testing.T) {
	d := mustParse(t, page)
	css := d.EmbeddedCSS()
	if !strings.Contains(css, "color: red") {
		t.Errorf("expected embedded stylesheet text, is %q", css)
	}
}

func TestIsEmpty(t *testing.T) {
	if !IsEmpty("") || !IsEmpty("  \n\t ") {
		t.Error("expected whitespace-only source to be empty, isn't")
	}
	if !IsEmpty("<!-- just a comment -->") {
		t.Error("expected comment-only source to be empty, isn't")
	}
	if !IsEmpty("stray text") {
		t.Error("expected tag-free source to be empty, isn't")
	}
	if IsEmpty("<p>x</p>") {
		t.Error("expected source with an element not to be empty, is")
	}
	if IsEmpty("<br>") {
		t.Error("expected a void tag to count as content, doesn't")
	}
}

func TestPathOfIndexesOnlyAmbiguousSiblings(t *testing.T) {
	d := mustParse(t, page)
	first := d.ResolvePath("/html/body/div[1]")[0]
	if p := PathOf(first); p != "/html/body/div[1]" {
		t.Errorf("expected path /html/body/div[1], is %q", p)
	}
	para := d.ResolvePath("/html/body/div[1]/p")[0]
	if p := PathOf(para); p != "/html/body/div[1]/p" {
		t.Errorf("expected path /html/body/div[1]/p, is %q", p)
	}
}

func TestResolvePathFansOut(t *testing.T) {
	d := mustParse(t, page)
	nodes := d.ResolvePath("/html/body/div")
	if len(nodes) != 2 {
		t.Errorf("expected unindexed segment to match both divs, have %d", len(nodes))
	}
	if nodes := d.ResolvePath("/html/body/table"); nodes != nil {
		t.Errorf("expected no match for absent tag, have %d", len(nodes))
	}
}

func TestPathRoundTripsAcrossDocuments(t *testing.T) {
	d1 := mustParse(t, page)
	d2 := mustParse(t, page)
	para := d1.ResolvePath("/html/body/div[1]/p")[0]
	nodes := d2.ResolvePath(PathOf(para))
	if len(nodes) != 1 {
		t.Fatalf("expected path to resolve in the twin document, have %d nodes", len(nodes))
	}
	if nodes[0].Data != "p" {
		t.Errorf("expected twin node <p>, is <%s>", nodes[0].Data)
	}
}

func TestDumpShowsTreeAndLines(t *testing.T) {
	d := mustParse(t, page)
	out := d.Dump()
	if !strings.Contains(out, "div") {
		t.Errorf("expected dump to show the divs, is:\n%s", out)
	}
	if !strings.Contains(out, ":7") {
		t.Errorf("expected dump to carry line numbers, is:\n%s", out)
	}
}
