/*
Package cascade resolves embedded CSS against a document: it answers the
question "which declaration wins for property P on element E?".

A stylesheet is parsed with douceur into flat rules, one per
selector×declaration pair. Every rule carries a cascadia matcher compiled
from its selector (with a trailing pseudo-class stripped and recorded
separately), a specificity triple counted directly off the serialized
selector text, the !important flag and a source-order index. Cascade
resolution collects the rules applicable to an element, keeps only the
important ones when any is important, and picks the winner by specificity,
ties broken by latest source order.

Failures to parse the stylesheet or a selector are data errors
(ErrBadStylesheet): callers degrade to "no CSS validated" instead of failing
the submission. Looking up an element of a foreign document resolves its
structural path here; a path denoting nothing is ErrElementNotFound and one
denoting several nodes is ErrAmbiguousPath, both distinct from a style
mismatch so that a caller can mark a check inconclusive.

Values of properties whose name contains "color" compare color-aware: two
differently written colors are equal when they normalize to the same
(r,g,b,a) quadruple.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cascade

import "github.com/npillmayer/schuko/tracing"

// tracer traces to 'cvg.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("cvg.cascade")
}
