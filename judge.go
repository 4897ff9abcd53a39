package judge

import (
	"github.com/wodsaegh/cvg-judge/compare"
	"github.com/wodsaegh/cvg-judge/htmlcheck"
	"github.com/wodsaegh/cvg-judge/report"
)

// Options selects which checks an evaluation runs.
type Options struct {
	Required      bool           // required attributes must be present
	Recommended   bool           // recommended attributes produce warnings
	Nesting       bool           // enforce parent/child tag constraints
	AllowWarnings bool           // accept submissions that only have warnings
	Compare       compare.Config // structural comparison toggles
}

// DefaultOptions enables all validation checks, tolerates warnings, and
// compares structure plus styling.
func DefaultOptions() Options {
	return Options{
		Required:      true,
		Recommended:   true,
		Nesting:       true,
		AllowWarnings: true,
		Compare:       compare.DefaultConfig(),
	}
}

// A Verdict is the outcome of evaluating one submission.
type Verdict struct {
	Errors   report.List      // fatal validation findings
	Warnings report.List      // non-fatal findings, only set without fatals
	Failure  *compare.Failure // first structural divergence, if any

	// Similarity scores in [0,1], set when the comparison stage ran.
	StructuralSimilarity float64
	StyleSimilarity      float64

	Accepted bool
}

// ValidateOnly checks a submission in isolation, without a solution to
// compare against.
func ValidateOnly(submission string, opts Options) Verdict {
	v := htmlcheck.New(validatorConfig(opts))
	outcome := v.Validate(submission)
	verdict := Verdict{
		Errors:   outcome.Errors,
		Warnings: outcome.Warnings,
		Accepted: outcome.Passed(opts.AllowWarnings),
	}
	tracer().Infof("validation: %d errors, %d warnings", len(verdict.Errors), len(verdict.Warnings))
	return verdict
}

// Evaluate validates the submission and, if it is valid, compares it
// against the solution. A rejected submission still gets similarity
// scores, as long as it is free of fatal validation errors; a malformed
// document scores zero. The returned error signals an inconclusive
// evaluation, usually a defect in the solution document, never a defect
// in the submission.
func Evaluate(solution, submission string, opts Options) (Verdict, error) {
	verdict := ValidateOnly(submission, opts)
	if !verdict.Accepted {
		if verdict.Errors.Empty() {
			verdict.StructuralSimilarity, verdict.StyleSimilarity = compare.Similarity(solution, submission)
		}
		return verdict, nil
	}
	fail, err := compare.Compare(solution, submission, opts.Compare)
	if err != nil {
		verdict.Accepted = false
		return verdict, err
	}
	verdict.Failure = fail
	if fail != nil {
		verdict.Accepted = false
		verdict.StructuralSimilarity, verdict.StyleSimilarity = compare.Similarity(solution, submission)
		tracer().Debugf("submission rejected: %v", fail)
		return verdict, nil
	}
	verdict.StructuralSimilarity, verdict.StyleSimilarity = 1, 1
	return verdict, nil
}

func validatorConfig(opts Options) htmlcheck.Config {
	return htmlcheck.Config{
		Required:    opts.Required,
		Recommended: opts.Recommended,
		Nesting:     opts.Nesting,
	}
}
