package balance

import (
	"strings"

	"github.com/wodsaegh/cvg-judge/report"
)

// Scan tokenizes src into delimiter occurrences, left to right. Non-token
// characters are consumed as plain text; a newline resets the column counter.
func Scan(src string) []Token {
	var tokens []Token
	line, col := 1, 1
	for i := 0; i < len(src); {
		tok, n := match(src[i:], line, col)
		if n > 0 {
			tokens = append(tokens, tok)
			i += n
			col += n
			continue
		}
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
		i++
	}
	return tokens
}

// match tries the delimiter tokens at the head of s, longest first. It
// returns the matched token and its byte length, or a zero length when no
// delimiter starts at s.
func match(s string, line, col int) (Token, int) {
	for _, k := range scanOrder {
		spec := kinds[k]
		if strings.HasPrefix(s, spec.open) {
			return Token{Kind: k, Open: true, Line: line, Column: col}, len(spec.open)
		}
		if strings.HasPrefix(s, spec.close) {
			return Token{Kind: k, Open: false, Line: line, Column: col}, len(spec.close)
		}
	}
	return Token{}, 0
}

// checker is the stack machine validating delimiter nesting. pending is the
// single-slot suppression register: while set, all tokens of other kinds are
// ignored.
type checker struct {
	stack   []Token
	pending *Token
	errs    report.List
}

// Check scans src and validates delimiter balance. The returned list holds
// every finding of the pass, sorted by position; an empty list means the
// text is balanced.
func Check(src string) report.List {
	c := &checker{}
	for _, tok := range Scan(src) {
		c.feed(tok)
	}
	return c.finish()
}

func (c *checker) feed(t Token) {
	spec := t.spec()
	if c.pending != nil {
		// Suppressed: only a token of the awaited kind matters.
		if t.Kind != c.pending.Kind {
			return
		}
		if (!spec.checkInBetween && !spec.ambiguous && t.Open) || spec.checkInBetween {
			tracer().Debugf("suppression ends at %v (%d:%d)", t, t.Line, t.Column)
			c.pending = nil
			c.push(t, false)
		}
		return
	}
	top, hasTop := c.top()
	switch {
	case (hasTop && top.Kind != t.Kind) || (!spec.ambiguous && t.Open) || spec.ambiguous:
		c.push(t, true)
	case hasTop && top.Kind == t.Kind:
		c.stack = c.stack[:len(c.stack)-1]
		if !spec.checkInBetween {
			// The region up to the next same-kind token is not checked.
			c.pending = &t
		}
	default:
		c.errs.Add(report.New(report.MissingOpeningChar, t.Line, t.Column, spec.close))
	}
}

// push stacks an opening token, or arms the suppression register for kinds
// whose interior is not checked. The register is only armed from the regular
// path: when suppression has just ended, a non-stacking token vanishes
// without re-arming.
func (c *checker) push(t Token, arm bool) {
	if !t.spec().checkInside {
		if arm {
			t.Open = true
			c.pending = &t
			tracer().Debugf("suppression starts at %v (%d:%d)", t, t.Line, t.Column)
		}
		return
	}
	c.stack = append(c.stack, t)
}

func (c *checker) top() (Token, bool) {
	if len(c.stack) == 0 {
		return Token{}, false
	}
	return c.stack[len(c.stack)-1], true
}

// finish reports everything left on the stack and in the suppression
// register at end of input.
func (c *checker) finish() report.List {
	for i := len(c.stack) - 1; i >= 0; i-- {
		t := c.stack[i]
		spec := t.spec()
		if !spec.ambiguous && !t.Open {
			c.errs.Add(report.New(report.MissingOpeningChar, t.Line, t.Column, spec.close))
		} else {
			c.errs.Add(report.New(report.MissingClosingChar, t.Line, t.Column, spec.open))
		}
	}
	if t := c.pending; t != nil && t.spec().checkInBetween {
		spec := t.spec()
		if !spec.ambiguous && t.Open {
			c.errs.Add(report.New(report.MissingClosingChar, t.Line, t.Column, spec.open))
		} else {
			c.errs.Add(report.New(report.MissingOpeningChar, t.Line, t.Column, spec.open))
		}
	}
	c.errs.Sort()
	return c.errs
}
