package tagspec

import (
	"testing"
)

func TestBuiltinLoads(t *testing.T) {
	table := Builtin()
	if len(table) == 0 {
		t.Fatal("expected built-in table to have entries, is empty")
	}
	if _, ok := table.Lookup("html"); !ok {
		t.Error("expected 'html' in built-in table, isn't")
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	table := Builtin()
	lower, ok := table.Lookup("img")
	if !ok {
		t.Fatal("expected 'img' in built-in table, isn't")
	}
	upper, ok := table.Lookup("IMG")
	if !ok {
		t.Fatal("expected 'IMG' to resolve, doesn't")
	}
	if lower != upper {
		t.Error("expected case variants to share a spec, don't")
	}
}

func TestVoidTags(t *testing.T) {
	table := Builtin()
	img, _ := table.Lookup("img")
	if !img.Void {
		t.Error("expected <img> to be void, isn't")
	}
	div, _ := table.Lookup("div")
	if div.Void {
		t.Error("expected <div> not to be void, is")
	}
}

func TestRecommendedAttributes(t *testing.T) {
	table := Builtin()
	img, _ := table.Lookup("img")
	if !contains(img.Recommended, "src") || !contains(img.Recommended, "alt") {
		t.Errorf("expected <img> to recommend src and alt, has %v", img.Recommended)
	}
}

func TestRootDeclaresEmptyParentSet(t *testing.T) {
	table := Builtin()
	html, _ := table.Lookup("html")
	if !html.ConstrainsParents() {
		t.Error("expected <html> to constrain parents, doesn't")
	}
	if html.PermitsParent("body") {
		t.Error("expected <html> to permit no parent, permits body")
	}
}

func TestUnconstrainedVersusEmpty(t *testing.T) {
	s := &Spec{}
	if s.ConstrainsParents() || s.ConstrainsChildren() {
		t.Error("expected zero spec to be unconstrained, isn't")
	}
	s.PermittedChildren = []string{}
	if !s.ConstrainsChildren() {
		t.Error("expected declared-empty child set to constrain, doesn't")
	}
}

func TestNestingConstraints(t *testing.T) {
	table := Builtin()
	tr, _ := table.Lookup("tr")
	if !tr.ConstrainsParents() {
		t.Fatal("expected <tr> to constrain parents, doesn't")
	}
	if !tr.PermitsParent("table") && !tr.PermitsParent("tbody") {
		t.Errorf("expected <tr> under table or tbody, permits %v", tr.PermittedParents)
	}
	if tr.PermitsParent("p") {
		t.Error("expected <tr> not to nest under <p>, does")
	}
}
