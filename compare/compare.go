package compare

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/wodsaegh/cvg-judge/cascade"
	"github.com/wodsaegh/cvg-judge/document"
	"github.com/wodsaegh/cvg-judge/report"
)

// Config toggles the optional checks of the comparator. Tag names and child
// counts are always compared. DefaultConfig enables the style check only,
// which is also skipped silently when the solution defines no CSS.
type Config struct {
	AttributesExact   bool // submission attributes must equal the solution's
	AttributesMinimal bool // submission attributes must cover the solution's
	Content           bool // compare collapsed text content
	CSS               bool // compare resolved styles
	Comments          bool // compare comment nodes too
}

// DefaultConfig mirrors the defaults of the grading platform: structure
// plus styling.
func DefaultConfig() Config {
	return Config{CSS: true}
}

// placeholder values a solution uses to accept arbitrary submission values
const (
	dummyAttr    = "DUMMY"
	dummyComment = "dummy"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// collapse trims and squeezes all whitespace runs to single spaces.
func collapse(s string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}

// contentEqual compares two text fragments ignoring whitespace layout.
func contentEqual(a, b string) bool {
	return collapse(a) == collapse(b)
}

type pair struct {
	sol, sub *html.Node
}

// Compare walks both documents in lockstep and returns the first
// divergence, or nil when the submission matches. Both inputs are expected
// to have passed individual validation already. The returned error is
// reserved for inconclusive conditions (ambiguous cross-document lookups),
// never for a mismatch.
func Compare(solutionSrc, submissionSrc string, cfg Config) (*Failure, error) {
	if document.IsEmpty(submissionSrc) {
		return newFailure(ReasonEmptySubmission, report.NoPosition), nil
	}
	sol, err := document.Parse(solutionSrc)
	if err != nil {
		return nil, err
	}
	sub, err := document.Parse(submissionSrc)
	if err != nil {
		return nil, err
	}

	checkCSS := cfg.CSS
	var solSheet, subSheet *cascade.Sheet
	if checkCSS {
		// Unparseable CSS on either side degrades to "no CSS validated".
		solSheet, err = cascade.NewSheet(sol)
		if err == nil {
			subSheet, err = cascade.NewSheet(sub)
		}
		if err != nil || solSheet.Empty() {
			if err != nil {
				tracer().Infof("css degraded: %v", err)
			}
			checkCSS = false
		}
	}

	w := &walker{cfg: cfg, checkCSS: checkCSS, sub: sub, solSheet: solSheet, subSheet: subSheet}
	queue := []pair{{sol.DocumentElement(), sub.DocumentElement()}}
	for len(queue) > 0 {
		p := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		children, fail, err := w.visit(p)
		if err != nil || fail != nil {
			return fail, err
		}
		// push in reverse so document order is processed first
		for i := len(children) - 1; i >= 0; i-- {
			queue = append(queue, children[i])
		}
	}
	return nil, nil
}

type walker struct {
	cfg      Config
	checkCSS bool
	sub      *document.Document
	solSheet *cascade.Sheet
	subSheet *cascade.Sheet
}

func (w *walker) visit(p pair) ([]pair, *Failure, error) {
	subLine := w.sub.Line(p.sub)
	if w.cfg.Comments && p.sol.Type == html.CommentNode {
		if p.sub.Type != html.CommentNode {
			return nil, newFailure(ReasonExpectedComment, subLine), nil
		}
		solText := strings.ToLower(strings.TrimSpace(p.sol.Data))
		subText := strings.ToLower(strings.TrimSpace(p.sub.Data))
		if solText != dummyComment && !contentEqual(solText, subText) {
			return nil, newFailure(ReasonCommentText, subLine), nil
		}
		return nil, nil, nil
	}
	if p.sub.Type == html.CommentNode || !strings.EqualFold(p.sol.Data, p.sub.Data) {
		return nil, newFailure(ReasonTagsDiffer, subLine), nil
	}

	solAttrs := document.Attrs(p.sol)
	subAttrs := document.Attrs(p.sub)
	if w.cfg.AttributesExact && !attrsContain(solAttrs, subAttrs, true) {
		return nil, newFailure(ReasonAttributes, subLine), nil
	}
	if w.cfg.AttributesMinimal && !attrsContain(solAttrs, subAttrs, false) {
		return nil, newFailure(ReasonAttributesMin, subLine), nil
	}

	if w.cfg.Content {
		solText := strings.TrimSpace(document.OwnText(p.sol))
		subText := strings.TrimSpace(document.OwnText(p.sub))
		if solText != dummyAttr && !contentEqual(solText, subText) {
			return nil, newFailure(ReasonContents, subLine), nil
		}
	}

	if w.checkCSS {
		fail, err := w.compareStyles(p, subLine)
		if err != nil || fail != nil {
			return nil, fail, err
		}
	}

	solChildren := document.Children(p.sol, w.cfg.Comments)
	subChildren := document.Children(p.sub, w.cfg.Comments)
	if len(solChildren) != len(subChildren) {
		return nil, newFailure(ReasonChildCount, subLine), nil
	}
	pairs := make([]pair, len(solChildren))
	for i := range solChildren {
		pairs[i] = pair{solChildren[i], subChildren[i]}
	}
	return pairs, nil, nil
}

// compareStyles requires the submission node to carry, value for value,
// every property the cascade resolves on the solution node.
func (w *walker) compareStyles(p pair, subLine int) (*Failure, error) {
	solStyles, err := w.solSheet.ResolveAll(p.sol)
	if err != nil {
		return nil, err
	}
	if len(solStyles) == 0 {
		return nil, nil
	}
	subStyles, err := w.subSheet.ResolveAll(p.sub)
	if err != nil {
		return nil, err
	}
	fail := &Failure{Reason: ReasonStyles, Tag: p.sub.Data, Line: subLine, Column: report.NoPosition}
	for _, property := range sortedKeys(solStyles) {
		solRule := solStyles[property]
		subRule, ok := subStyles[property]
		if !ok {
			return fail, nil
		}
		if solRule.Value != subRule.Value &&
			!(solRule.IsColor() && solRule.HasColor(subRule.Value)) {
			return fail, nil
		}
	}
	return nil, nil
}

func sortedKeys(m map[string]*cascade.Rule) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// attrsContain checks the submission attributes against the solution's. A
// solution value of DUMMY accepts any submission value. With exact, the
// submission may not carry extra attributes either.
func attrsContain(solAttrs, subAttrs map[string]string, exact bool) bool {
	dummies := make(map[string]bool)
	wanted := make(map[string]string)
	for k, v := range solAttrs {
		if strings.TrimSpace(v) == dummyAttr {
			dummies[k] = true
		} else {
			wanted[k] = strings.TrimSpace(v)
		}
	}
	for k, v := range subAttrs {
		if want, ok := wanted[k]; ok && want == v {
			delete(wanted, k)
		} else if dummies[k] {
			delete(dummies, k)
		} else if exact {
			return false
		}
	}
	return len(dummies) == 0 && len(wanted) == 0
}
