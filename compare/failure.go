package compare

import (
	"fmt"

	"github.com/wodsaegh/cvg-judge/report"
)

// Reason tags the single cause a comparison was aborted with.
type Reason string

const (
	ReasonEmptySubmission Reason = "empty-submission"
	ReasonTagsDiffer      Reason = "tags-differ"
	ReasonAttributes      Reason = "attributes-differ"
	ReasonAttributesMin   Reason = "attributes-missing"
	ReasonContents        Reason = "contents-differ"
	ReasonStyles          Reason = "styles-differ"
	ReasonChildCount      Reason = "amount-children-differ"
	ReasonExpectedComment Reason = "expected-comment"
	ReasonCommentText     Reason = "comment-text-differs"
)

var reasonText = map[Reason]string{
	ReasonEmptySubmission: "The submission is empty.",
	ReasonTagsDiffer:      "Tags differ",
	ReasonAttributes:      "Attributes differ",
	ReasonAttributesMin:   "Not all minimal required attributes are present",
	ReasonContents:        "Contents differ",
	ReasonStyles:          "CSS styling differs for element <%s>",
	ReasonChildCount:      "Amount of child elements differs",
	ReasonExpectedComment: "Expected a comment",
	ReasonCommentText:     "The comment does not have the correct text",
}

// Failure is the positioned first divergence of a comparison.
type Failure struct {
	Reason Reason
	Tag    string // the offending submission tag, for ReasonStyles
	Line   int    // 1-based submission line, or report.NoPosition
	Column int
}

func newFailure(reason Reason, line int) *Failure {
	return &Failure{Reason: reason, Line: line, Column: report.NoPosition}
}

// Message renders the built-in text of the failure without position.
func (f *Failure) Message() string {
	tmpl := reasonText[f.Reason]
	if f.Reason == ReasonStyles {
		return fmt.Sprintf(tmpl, f.Tag)
	}
	return tmpl
}

func (f *Failure) Error() string {
	if f.Line > 0 {
		return fmt.Sprintf("%s at line %d", f.Message(), f.Line)
	}
	return f.Message()
}
