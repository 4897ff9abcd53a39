/*
Package compare walks a solution tree and a submission tree in lockstep and
decides whether the submission's structure and styling match closely enough.

The walk is depth-first in document order over pairs of corresponding nodes.
Per pair it checks, under caller-supplied toggles: comment equality, tag
name equality, exact or minimal attribute sets, collapsed text content, a
style subset (every resolved property of the solution node must resolve to
an equal value, color-aware, on the submission node) and matching child
counts. The solution may use the placeholder DUMMY for attribute values and
content, and dummy for comment text, to accept anything at that spot.

The first divergence aborts the comparison with a positioned Failure; later
divergences are consequences, not independent findings. Independent of
pass/fail, Similarity computes structural and style ratios in [0,1] as
partial-credit feedback.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package compare

import "github.com/npillmayer/schuko/tracing"

// tracer traces to 'cvg.compare'.
func tracer() tracing.Trace {
	return tracing.Select("cvg.compare")
}
