// Command cvg-judge validates and grades HTML/CSS exercise submissions.
//
// Usage:
//
//	cvg-judge validate submission.html
//	cvg-judge compare solution.html submission.html --attributes --contents
//
// The exit status is 0 for an accepted submission, 1 for a rejected one
// and 2 for I/O or usage errors. Findings are printed one per line.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/npillmayer/schuko/tracing"

	"github.com/wodsaegh/cvg-judge"
	"github.com/wodsaegh/cvg-judge/compare"
	"github.com/wodsaegh/cvg-judge/document"
)

var (
	trace = kingpin.Flag("trace", "Print diagnostic traces").Bool()

	validateCmd   = kingpin.Command("validate", "Validate a submission on its own")
	validateFile  = validateCmd.Arg("submission", "Submission HTML file").Required().ExistingFile()
	noRequired    = validateCmd.Flag("no-required", "Skip required-attribute checks").Bool()
	noRecommended = validateCmd.Flag("no-recommended", "Skip recommended-attribute warnings").Bool()
	noNesting     = validateCmd.Flag("no-nesting", "Skip tag nesting checks").Bool()
	strict        = validateCmd.Flag("strict", "Reject submissions with warnings").Bool()
	dump          = validateCmd.Flag("dump", "Print the parsed document tree").Bool()

	compareCmd   = kingpin.Command("compare", "Validate and compare against a solution")
	solutionFile = compareCmd.Arg("solution", "Solution HTML file").Required().ExistingFile()
	submFile     = compareCmd.Arg("submission", "Submission HTML file").Required().ExistingFile()
	attrsExact   = compareCmd.Flag("attributes", "Require identical attributes").Bool()
	attrsMin     = compareCmd.Flag("minimal-attributes", "Require at least the solution's attributes").Bool()
	contents     = compareCmd.Flag("contents", "Compare text contents").Bool()
	noCSS        = compareCmd.Flag("no-css", "Skip the styling comparison").Bool()
	comments     = compareCmd.Flag("comments", "Compare comment nodes too").Bool()
	cmpStrict    = compareCmd.Flag("strict", "Reject submissions with warnings").Bool()
)

func main() {
	cmd := kingpin.Parse()
	if *trace {
		tracing.Select("cvg.judge").SetTraceLevel(tracing.LevelDebug)
		tracing.Select("cvg.compare").SetTraceLevel(tracing.LevelDebug)
		tracing.Select("cvg.htmlcheck").SetTraceLevel(tracing.LevelDebug)
		tracing.Select("cvg.cascade").SetTraceLevel(tracing.LevelDebug)
	}
	switch cmd {
	case validateCmd.FullCommand():
		os.Exit(runValidate())
	case compareCmd.FullCommand():
		os.Exit(runCompare())
	}
}

func runValidate() int {
	submission := mustRead(*validateFile)
	opts := judge.DefaultOptions()
	opts.Required = !*noRequired
	opts.Recommended = !*noRecommended
	opts.Nesting = !*noNesting
	opts.AllowWarnings = !*strict
	verdict := judge.ValidateOnly(submission, opts)
	if *dump {
		printTree(submission)
	}
	return printVerdict(verdict)
}

func runCompare() int {
	solution := mustRead(*solutionFile)
	submission := mustRead(*submFile)
	opts := judge.DefaultOptions()
	opts.AllowWarnings = !*cmpStrict
	opts.Compare = compare.Config{
		AttributesExact:   *attrsExact,
		AttributesMinimal: *attrsMin,
		Content:           *contents,
		CSS:               !*noCSS,
		Comments:          *comments,
	}
	verdict, err := judge.Evaluate(solution, submission, opts)
	if err != nil {
		kingpin.Errorf("evaluation inconclusive: %s", err)
		return 2
	}
	return printVerdict(verdict)
}

func printVerdict(v judge.Verdict) int {
	for _, e := range v.Errors {
		fmt.Println(e.Error())
	}
	for _, w := range v.Warnings {
		fmt.Println(w.Error())
	}
	if v.Failure != nil {
		fmt.Println(v.Failure.Error())
	}
	if v.Accepted {
		fmt.Println("accepted")
		return 0
	}
	fmt.Printf("rejected (similarity %.2f structural, %.2f style)\n",
		v.StructuralSimilarity, v.StyleSimilarity)
	return 1
}

func printTree(src string) {
	doc, err := document.Parse(src)
	if err != nil {
		kingpin.Errorf("cannot parse document: %s", err)
		return
	}
	fmt.Print(doc.Dump())
}

func mustRead(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		kingpin.Errorf("cannot read %s: %s", path, err)
		os.Exit(2)
	}
	return string(data)
}
