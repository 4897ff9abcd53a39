/*
Package document materializes raw HTML into a navigable tree for the
structural comparator and the cascade resolver.

The tree itself comes from golang.org/x/net/html; this package adds what the
grading engine needs on top of it: 1-based source line numbers per element
and comment (derived by replaying the tokenizer against the parsed tree),
attribute maps, element/comment child slices, extraction of embedded
stylesheet text, structural node paths of the form /html/body/div[2] that
can be resolved against another document, and a treeprint rendering for
debugging feedback.

Line numbers are a best effort: nodes synthesized by the parser (an implied
<head>, say) carry no position.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package document

import "github.com/npillmayer/schuko/tracing"

// tracer traces to 'cvg.document'.
func tracer() tracing.Trace {
	return tracing.Select("cvg.document")
}
