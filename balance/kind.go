package balance

// Kind enumerates the closed set of delimiter kinds the scanner knows.
type Kind int

const (
	Paren Kind = iota
	Angle
	Brace
	Square
	SingleQuote
	DoubleQuote
	HTMLComment
	CSSComment
)

func (k Kind) String() string {
	return [...]string{
		"parentheses", "angle", "curly", "square",
		"single", "double", "html_comment", "css_comment",
	}[k]
}

// kindSpec describes the tokens and checking behavior of one delimiter kind.
//
// ambiguous means open and close share the same token (quotes), so a single
// occurrence cannot tell whether it opens or closes. checkInside=false
// suppresses nested-delimiter checks inside the pair (quoted strings,
// comment bodies). checkInBetween=false suppresses checks between a closing
// delimiter and the next opening one of the same kind (the prose between two
// HTML tags).
type kindSpec struct {
	open, close    string
	ambiguous      bool
	checkInside    bool
	checkInBetween bool
}

var kinds = [...]kindSpec{
	Paren:       {open: "(", close: ")", checkInside: true, checkInBetween: true},
	Angle:       {open: "<", close: ">", checkInside: true},
	Brace:       {open: "{", close: "}", checkInside: true, checkInBetween: true},
	Square:      {open: "[", close: "]", checkInside: true, checkInBetween: true},
	SingleQuote: {open: "'", close: "'", ambiguous: true, checkInBetween: true},
	DoubleQuote: {open: `"`, close: `"`, ambiguous: true, checkInBetween: true},
	HTMLComment: {open: "<!--", close: "-->", checkInBetween: true},
	CSSComment:  {open: "/*", close: "*/", checkInBetween: true},
}

// scanOrder lists the kinds longest-token first, so that tokenizing prefers
// "<!--" over "<" and "/*" over a bare "/". Kinds of equal token length keep
// their declaration order.
var scanOrder = [...]Kind{
	HTMLComment, CSSComment,
	Paren, Angle, Brace, Square, SingleQuote, DoubleQuote,
}

// Token is one delimiter occurrence in the scanned text.
type Token struct {
	Kind   Kind
	Open   bool // meaningful only for unambiguous kinds
	Line   int  // 1-based
	Column int  // 1-based
}

func (t Token) spec() kindSpec { return kinds[t.Kind] }

func (t Token) String() string {
	if t.spec().ambiguous {
		return "<" + t.Kind.String() + ">"
	}
	if t.Open {
		return "<" + t.Kind.String() + " open>"
	}
	return "<" + t.Kind.String() + " close>"
}
