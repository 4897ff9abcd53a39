/*
Package judge evaluates HTML/CSS exercise submissions against a reference
solution. Evaluation runs in two stages. First the submission alone is
validated: delimiters must balance, tags must be known and properly
nested, and attributes must satisfy the configured requirements (package
htmlcheck). Only then is the submission compared structurally against the
solution document, including its resolved CSS styling (package compare).

The two stages produce different kinds of findings. Validation yields a
list of report.Error values, each with a severity and source position.
Comparison yields at most a single compare.Failure, the first point at
which the two documents diverge. A Verdict bundles both together with the
similarity scores that give partial credit for near misses.

The cascade resolver handles embedded stylesheets only; external
stylesheets are not fetched.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package judge

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cvg.judge'.
func tracer() tracing.Trace {
	return tracing.Select("cvg.judge")
}
