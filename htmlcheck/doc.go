/*
Package htmlcheck implements the streaming tag/attribute legality pass.

A Validator consumes a raw HTML document in one pass over the tokenizer of
golang.org/x/net/html, after the delimiter balance scan of package balance
has accepted the text. It checks that every tag is a known HTML tag, that
nesting respects the permitted-parents/permitted-children sets of the tag
table, that void tags are never explicitly closed or content tags
self-closed, that every opened tag is closed in order, and that attributes
are legal: no inline style, well-formed and document-unique ids, non-empty
id/class values, no absolute src paths, and the required attributes of the
tag table present.

The pass fails fast: the first fatal finding ends it. Missing recommended
attributes are deferred warnings, surfaced only when the document produced
no fatal error at all.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package htmlcheck

import "github.com/npillmayer/schuko/tracing"

// tracer traces to 'cvg.htmlcheck'.
func tracer() tracing.Trace {
	return tracing.Select("cvg.htmlcheck")
}
