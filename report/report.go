package report

import (
	"fmt"
	"sort"
	"strings"
)

// NoPosition marks a line or column as not applicable, e.g. for an empty
// submission.
const NoPosition = -1

// Severity separates errors which abort a validation pass from warnings
// which are collected and surfaced at the end.
type Severity int

const (
	// Fatal errors abort the producing pass.
	Fatal Severity = iota
	// Warning records never abort; they are shown only when the document
	// is otherwise free of fatal errors.
	Warning
)

// Code identifies a message from the closed taxonomy. The engine never
// formats free-form error text; a protocol adapter may map codes onto
// localized strings using the attached parameters.
type Code string

// Codes produced by the delimiter balance scanner.
const (
	MissingOpeningChar Code = "missing-opening-character"
	MissingClosingChar Code = "missing-closing-character"
)

// Codes produced by the tag/attribute validator.
const (
	MissingOpeningTag        Code = "missing-opening-tag"
	MissingClosingTag        Code = "missing-closing-tag"
	InvalidTag               Code = "invalid-tag"
	NoSelfClosingTag         Code = "no-self-closing-tag"
	UnexpectedTag            Code = "unexpected-tag"
	UnexpectedClosingTag     Code = "unexpected-closing-tag"
	InvalidAttribute         Code = "invalid-attribute"
	MissingRequiredAttrs     Code = "missing-required-attributes"
	MissingRecommendedAttrs  Code = "missing-recommended-attributes"
	DuplicateID              Code = "duplicate-id"
	AttributeWhitespace      Code = "attribute-whitespace"
	AttributeEmpty           Code = "attribute-empty"
	AttributeAbsolutePath    Code = "attribute-absolute-path"
)

// messages holds the built-in (English) templates, indexed by code. The
// parameter count of each template is part of the code's contract.
var messages = map[Code]string{
	MissingOpeningChar:      "Missing opening character for '%s'",
	MissingClosingChar:      "Missing closing character for '%s'",
	MissingOpeningTag:       "Missing opening HTML tag for <%s>",
	MissingClosingTag:       "Missing closing HTML tag for <%s>",
	InvalidTag:              "Invalid HTML tag <%s>",
	NoSelfClosingTag:        "The following tag is not a self-closing HTML tag: <%s>",
	UnexpectedTag:           "Unexpected HTML tag <%s>",
	UnexpectedClosingTag:    "The tag <%s> isn't supposed to have a closing tag, it's self-closing.",
	InvalidAttribute:        "Invalid attribute for <%s>: %s",
	MissingRequiredAttrs:    "Missing required attribute(s) for <%s>: %s",
	MissingRecommendedAttrs: "Missing recommended attribute(s) for <%s>: %s",
	DuplicateID:             "Id '%s' defined in tag <%s> is already defined",
	AttributeWhitespace:     "The value of %s may not contain whitespace.",
	AttributeEmpty:          "The value of %s must be at least one character.",
	AttributeAbsolutePath:   "The src attribute may not contain an absolute path.",
}

// Error is one positioned validation error or warning.
type Error struct {
	Code     Code
	Params   []string // interpolation parameters, in template order
	Line     int      // 1-based, or NoPosition
	Column   int      // 1-based, or NoPosition
	Severity Severity
}

// New creates a fatal error record.
func New(code Code, line, col int, params ...string) *Error {
	return &Error{Code: code, Params: params, Line: line, Column: col, Severity: Fatal}
}

// Warn creates a warning record.
func Warn(code Code, line, col int, params ...string) *Error {
	e := New(code, line, col, params...)
	e.Severity = Warning
	return e
}

// Message renders the record's built-in template without position
// information.
func (e *Error) Message() string {
	tmpl, ok := messages[e.Code]
	if !ok {
		return string(e.Code)
	}
	args := make([]interface{}, len(e.Params))
	for i, p := range e.Params {
		args[i] = p
	}
	return fmt.Sprintf(tmpl, args...)
}

// Error renders the message followed by the source position, when one
// applies.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message())
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}
	if e.Column > 0 {
		fmt.Fprintf(&b, " position %d", e.Column)
	}
	return b.String()
}

// List is an ordered batch of error records. A nil or empty List means
// "no findings". List implements error so a whole batch can travel through
// a single error return.
type List []*Error

// Add appends a record to the list.
func (l *List) Add(e *Error) {
	*l = append(*l, e)
}

// Empty reports whether the list holds no records.
func (l List) Empty() bool { return len(l) == 0 }

// Sort orders the records by source position.
func (l List) Sort() {
	sort.SliceStable(l, func(i, j int) bool {
		if l[i].Line != l[j].Line {
			return l[i].Line < l[j].Line
		}
		return l[i].Column < l[j].Column
	})
}

// Error joins the messages of all records, one per line.
func (l List) Error() string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}
