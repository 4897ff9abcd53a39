/*
Package balance implements the lexical delimiter-balance scan, the first
stage of the validation pipeline.

The scanner knows eight delimiter kinds: parentheses, angle brackets, braces,
square brackets, single quotes, double quotes, HTML comments and CSS
comments. A left-to-right pass tokenizes the raw text (longest token first,
so that "<!--" is preferred over "<"), tracking 1-based line and column for
every delimiter occurrence. A stack machine then checks well-nestedness per
kind. A single-slot suppression register sits beside the stack: the interior
of quotes and comments is not checked, and the prose between an angle-bracket
close and the next open, or between two comments of the same kind, is not
checked either.

All findings of one scan are batched into a report.List, sorted by position;
the scan never fails fast, since its causes are independent of each other.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package balance

import "github.com/npillmayer/schuko/tracing"

// tracer traces to 'cvg.balance'.
func tracer() tracing.Trace {
	return tracing.Select("cvg.balance")
}
