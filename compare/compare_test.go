package compare

import (
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const solution = `<html>
<head>
<style>
p { color: red; }
</style>
</head>
<body>
<div class="box">
<p>Hello</p>
<p>World</p>
</div>
</body>
</html>`

func compareOK(t *testing.T, sol, sub string, cfg Config) {
	t.Helper()
	fail, err := Compare(sol, sub, cfg)
	if err != nil {
		t.Fatalf("expected a conclusive comparison, have %v", err)
	}
	if fail != nil {
		t.Fatalf("expected documents to match, have %v", fail)
	}
}

func compareFails(t *testing.T, sol, sub string, cfg Config, reason Reason) *Failure {
	t.Helper()
	fail, err := Compare(sol, sub, cfg)
	if err != nil {
		t.Fatalf("expected a conclusive comparison, have %v", err)
	}
	if fail == nil {
		t.Fatalf("expected a %v failure, documents match", reason)
	}
	if fail.Reason != reason {
		t.Fatalf("expected a %v failure, is %v", reason, fail.Reason)
	}
	return fail
}

func TestCompareIdenticalDocuments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cvg.compare")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	compareOK(t, solution, solution, DefaultConfig())
}

func TestCompareEmptySubmission(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cvg.compare")
	defer teardown()
	//
	compareFails(t, solution, "  \n ", DefaultConfig(), ReasonEmptySubmission)
	compareFails(t, solution, "<!-- nothing here -->", DefaultConfig(), ReasonEmptySubmission)
}

func TestCompareTagsDiffer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cvg.compare")
	defer teardown()
	//
	sub := `<html><head><style>p { color: red; }</style></head>
<body><div class="box"><p>Hello</p><span>World</span></div></body></html>`
	compareFails(t, solution, sub, DefaultConfig(), ReasonTagsDiffer)
}

func TestCompareTagCaseInsensitive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cvg.compare")
	defer teardown()
	//
	sol := `<html><head></head><body><DIV><P>x</P></DIV></body></html>`
	sub := `<html><head></head><body><div><p>x</p></div></body></html>`
	compareOK(t, sol, sub, Config{})
}

func TestCompareChildCount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cvg.compare")
	defer teardown()
	//
	sub := `<html><head><style>p { color: red; }</style></head>
<body><div class="box"><p>Hello</p></div></body></html>`
	compareFails(t, solution, sub, DefaultConfig(), ReasonChildCount)
}

func TestCompareContents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cvg.compare")
	defer teardown()
	//
	cfg := Config{Content: true}
	sol := `<html><head></head><body><p>Hello</p></body></html>`
	matching := `<html><head></head><body><p>
   Hello </p></body></html>`
	compareOK(t, sol, matching, cfg)
	differing := `<html><head></head><body><p>Goodbye</p></body></html>`
	compareFails(t, sol, differing, cfg, ReasonContents)
	// without the content check the same pair passes
	compareOK(t, sol, differing, Config{})
}

func TestCompareContentsDummyWildcard(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cvg.compare")
	defer teardown()
	//
	sol := `<html><head></head><body><p>DUMMY</p></body></html>`
	sub := `<html><head></head><body><p>anything goes</p></body></html>`
	compareOK(t, sol, sub, Config{Content: true})
}

func TestCompareAttributesMinimal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cvg.compare")
	defer teardown()
	//
	cfg := Config{AttributesMinimal: true}
	sol := `<html><head></head><body><p class="a">x</p></body></html>`
	superset := `<html><head></head><body><p class="a" id="extra">x</p></body></html>`
	compareOK(t, sol, superset, cfg)
	missing := `<html><head></head><body><p>x</p></body></html>`
	compareFails(t, sol, missing, cfg, ReasonAttributesMin)
}

func TestCompareAttributesExact(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cvg.compare")
	defer teardown()
	//
	cfg := Config{AttributesExact: true}
	sol := `<html><head></head><body><p class="a">x</p></body></html>`
	same := `<html><head></head><body><p class="a">x</p></body></html>`
	compareOK(t, sol, same, cfg)
	superset := `<html><head></head><body><p class="a" id="extra">x</p></body></html>`
	compareFails(t, sol, superset, cfg, ReasonAttributes)
}

func TestCompareAttributeDummyWildcard(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cvg.compare")
	defer teardown()
	//
	cfg := Config{AttributesExact: true}
	sol := `<html><head></head><body><img src="DUMMY" alt="cat"></body></html>`
	sub := `<html><head></head><body><img src="pics/cat.png" alt="cat"></body></html>`
	compareOK(t, sol, sub, cfg)
	// the attribute must still be present
	missing := `<html><head></head><body><img alt="cat"></body></html>`
	compareFails(t, sol, missing, cfg, ReasonAttributes)
}

func TestCompareStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cvg.compare")
	defer teardown()
	//
	sub := `<html><head><style>p { color: blue; }</style></head>
<body><div class="box"><p>Hello</p><p>World</p></div></body></html>`
	fail := compareFails(t, solution, sub, DefaultConfig(), ReasonStyles)
	if fail.Tag != "p" {
		t.Errorf("expected failure on <p>, is <%s>", fail.Tag)
	}
}

func TestCompareStylesAcceptColorNotations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cvg.compare")
	defer teardown()
	//
	sub := `<html><head><style>p { color: #ff0000; }</style></head>
<body><div class="box"><p>Hello</p><p>World</p></div></body></html>`
	compareOK(t, solution, sub, DefaultConfig())
}

func TestCompareStylesDifferentSelectorsSameEffect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cvg.compare")
	defer teardown()
	//
	// the submission reaches the same computed style through a class
	sub := `<html><head><style>.box p { color: rgb(255, 0, 0); }</style></head>
<body><div class="box"><p>Hello</p><p>World</p></div></body></html>`
	compareOK(t, solution, sub, DefaultConfig())
}

func TestCompareStylesSkippedWithoutSolutionCSS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cvg.compare")
	defer teardown()
	//
	sol := `<html><head><style></style></head><body><p>x</p></body></html>`
	sub := `<html><head><style>p { color: blue; }</style></head><body><p>x</p></body></html>`
	compareOK(t, sol, sub, DefaultConfig())
}

func TestCompareComments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cvg.compare")
	defer teardown()
	//
	cfg := Config{Comments: true}
	sol := `<html><head></head><body><!-- greeting --><p>x</p></body></html>`
	matching := `<html><head></head><body><!--   GREETING   --><p>x</p></body></html>`
	compareOK(t, sol, matching, cfg)
	differing := `<html><head></head><body><!-- farewell --><p>x</p></body></html>`
	compareFails(t, sol, differing, cfg, ReasonCommentText)
	replaced := `<html><head></head><body><span>y</span><p>x</p></body></html>`
	compareFails(t, sol, replaced, cfg, ReasonExpectedComment)
	absent := `<html><head></head><body><p>x</p></body></html>`
	compareFails(t, sol, absent, cfg, ReasonChildCount)
	// without the comment check, comments are invisible
	compareOK(t, sol, absent, Config{})
}

func TestCompareCommentDummyWildcard(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cvg.compare")
	defer teardown()
	//
	sol := `<html><head></head><body><!-- dummy --><p>x</p></body></html>`
	sub := `<html><head></head><body><!-- whatever --><p>x</p></body></html>`
	compareOK(t, sol, sub, Config{Comments: true})
}

func TestFailureCarriesPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cvg.compare")
	defer teardown()
	//
	sub := `<html>
<head>
<style>p { color: red; }</style>
</head>
<body>
<div class="box">
<p>Hello</p>
<span>World</span>
</div>
</body>
</html>`
	fail := compareFails(t, solution, sub, DefaultConfig(), ReasonTagsDiffer)
	if fail.Line != 8 {
		t.Errorf("expected failure on line 8, is %d", fail.Line)
	}
}

func TestCompareIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cvg.compare")
	defer teardown()
	//
	// several style properties resolve on the <p> nodes, so a nondeterministic
	// iteration order would surface as a flickering failure
	sol := `<html><head><style>
p { color: red; margin: 1px; padding: 2px; border: 3px; }
</style></head><body><div class="box"><p>Hello</p><p>World</p></div></body></html>`
	sub := `<html><head><style>
p { color: red; margin: 1px; padding: 9px; border: 3px; }
</style></head><body><div class="box"><p>Hello</p><p>World</p></div></body></html>`
	first, err := Compare(sol, sub, DefaultConfig())
	if err != nil || first == nil {
		t.Fatalf("expected a style failure, have %v / %v", first, err)
	}
	for i := 0; i < 10; i++ {
		again, err := Compare(sol, sub, DefaultConfig())
		if err != nil {
			t.Fatalf("expected a conclusive comparison, have %v", err)
		}
		if again == nil || *again != *first {
			t.Fatalf("expected the identical outcome on re-run, have %v vs %v", again, first)
		}
	}
	s1, y1 := Similarity(sol, sub)
	s2, y2 := Similarity(sol, sub)
	if s1 != s2 || y1 != y2 {
		t.Errorf("expected identical similarity on re-run, have %v/%v vs %v/%v", s1, y1, s2, y2)
	}
}

func TestSimilarityIdentical(t *testing.T) {
	structural, style := Similarity(solution, solution)
	if structural != 1 || style != 1 {
		t.Errorf("expected perfect scores, have %v / %v", structural, style)
	}
}

func TestSimilarityEmptySubmission(t *testing.T) {
	structural, style := Similarity(solution, "")
	if structural != 0 || style != 0 {
		t.Errorf("expected zero scores, have %v / %v", structural, style)
	}
}

func TestSimilarityPartial(t *testing.T) {
	sub := `<html><head></head><body><div class="box"></div></body></html>`
	structural, style := Similarity(solution, sub)
	if structural <= 0 || structural >= 1 {
		t.Errorf("expected a partial structural score, is %v", structural)
	}
	// both class sets are {box}
	if style != 1 {
		t.Errorf("expected matching class sets, is %v", style)
	}
}

func TestSimilarityStyleWithoutStylesheets(t *testing.T) {
	sol := `<html><head></head><body><p class="a">x</p></body></html>`
	sub := `<html><head></head><body><div class="b">x</div></body></html>`
	_, style := Similarity(sol, sub)
	if style != 1 {
		t.Errorf("expected style score 1 without stylesheets, is %v", style)
	}
}

func TestSequenceRatio(t *testing.T) {
	cases := []struct {
		a, b []string
		want float64
	}{
		{nil, nil, 1},
		{[]string{"p"}, nil, 0},
		{[]string{"div", "p"}, []string{"div", "p"}, 1},
		{[]string{"div", "p", "span"}, []string{"div", "span"}, 0.8},
	}
	for _, c := range cases {
		if got := sequenceRatio(c.a, c.b); got != c.want {
			t.Errorf("expected ratio of %v and %v to be %v, is %v", c.a, c.b, c.want, got)
		}
	}
}
