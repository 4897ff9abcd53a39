package htmlcheck

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/wodsaegh/cvg-judge/balance"
	"github.com/wodsaegh/cvg-judge/report"
	"github.com/wodsaegh/cvg-judge/tagspec"
)

// Config toggles the optional checks of the validator. The zero value
// disables all of them; most callers want DefaultConfig.
type Config struct {
	Required    bool // check required attributes
	Recommended bool // warn about missing recommended attributes
	Nesting     bool // check permitted parents/children
}

// DefaultConfig enables every check.
func DefaultConfig() Config {
	return Config{Required: true, Recommended: true, Nesting: true}
}

// Outcome is the result of validating one document.
type Outcome struct {
	Errors   report.List // fatal findings; empty when the document is legal
	Warnings report.List // missing recommended attributes, by position
}

// Valid reports whether the document produced no fatal finding.
func (o *Outcome) Valid() bool { return o.Errors.Empty() }

// Passed reports whether the document validates, treating warnings as
// failures unless allowWarnings is set.
func (o *Outcome) Passed(allowWarnings bool) bool {
	return o.Valid() && (allowWarnings || o.Warnings.Empty())
}

// Validator is the streaming tag/attribute checker. A Validator holds
// per-run state (tag stack, seen ids) and must not be shared between
// concurrent runs; each call to Validate resets it.
type Validator struct {
	cfg   Config
	table tagspec.Table

	stack    []string
	ids      map[string]bool
	warnings report.List
	line     int
	col      int
}

// New creates a validator over the built-in tag table.
func New(cfg Config) *Validator {
	return NewWithTable(cfg, tagspec.Builtin())
}

// NewWithTable creates a validator over a caller-supplied tag table.
func NewWithTable(cfg Config, table tagspec.Table) *Validator {
	return &Validator{cfg: cfg, table: table}
}

// Validate checks one document. The delimiter balance scan runs first; when
// it finds anything, its whole batch is returned and the tag pass does not
// run. The tag pass itself stops at the first fatal finding. A DOCTYPE
// preamble is ignored.
func (v *Validator) Validate(src string) *Outcome {
	v.stack = v.stack[:0]
	v.ids = make(map[string]bool)
	v.warnings = nil
	v.line, v.col = 1, 1

	if errs := balance.Check(src); !errs.Empty() {
		tracer().Debugf("balance scan found %d error(s), skipping tag pass", len(errs))
		return &Outcome{Errors: errs}
	}

	z := html.NewTokenizer(strings.NewReader(src))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		raw := string(z.Raw())
		line, col := v.line, v.col
		var err *report.Error
		switch tt {
		case html.StartTagToken:
			t := z.Token()
			err = v.startTag(t.Data, attrMap(t.Attr), line, col)
		case html.SelfClosingTagToken:
			t := z.Token()
			err = v.selfClosingTag(t.Data, attrMap(t.Attr), line, col)
		case html.EndTagToken:
			name, _ := z.TagName()
			err = v.endTag(string(name), line, col)
		}
		if err != nil {
			return &Outcome{Errors: report.List{err}}
		}
		v.advance(raw)
	}
	if len(v.stack) > 0 {
		err := report.New(report.MissingClosingTag, v.line, v.col, v.stack[len(v.stack)-1])
		return &Outcome{Errors: report.List{err}}
	}
	v.warnings.Sort()
	return &Outcome{Warnings: v.warnings}
}

// advance moves the position counters across the raw bytes of a token.
func (v *Validator) advance(raw string) {
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\n' {
			v.line++
			v.col = 1
		} else {
			v.col++
		}
	}
}

func attrMap(attrs []html.Attribute) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[strings.ToLower(a.Key)] = a.Val
	}
	return m
}

func (v *Validator) startTag(tag string, attrs map[string]string, line, col int) *report.Error {
	tag = strings.ToLower(tag)
	spec, ok := v.table.Lookup(tag)
	if !ok {
		return report.New(report.InvalidTag, line, col, tag)
	}
	if v.cfg.Nesting {
		if err := v.checkNesting(tag, spec, line, col); err != nil {
			return err
		}
	}
	if !spec.Void {
		v.stack = append(v.stack, tag)
	}
	return v.checkAttributes(tag, spec, attrs, line, col)
}

// selfClosingTag handles <t/> syntax, which is only legal for void tags.
func (v *Validator) selfClosingTag(tag string, attrs map[string]string, line, col int) *report.Error {
	tag = strings.ToLower(tag)
	spec, ok := v.table.Lookup(tag)
	if !ok || !spec.Void {
		return report.New(report.NoSelfClosingTag, line, col, tag)
	}
	return v.startTag(tag, attrs, line, col)
}

func (v *Validator) endTag(tag string, line, col int) *report.Error {
	tag = strings.ToLower(tag)
	spec, ok := v.table.Lookup(tag)
	if !ok {
		return report.New(report.InvalidTag, line, col, tag)
	}
	if spec.Void {
		return report.New(report.UnexpectedClosingTag, line, col, tag)
	}
	if n := len(v.stack); n > 0 && v.stack[n-1] == tag {
		v.stack = v.stack[:n-1]
		return nil
	}
	if n := len(v.stack); n > 0 {
		missing := v.stack[n-1]
		v.stack = v.stack[:n-1]
		return report.New(report.MissingClosingTag, line, col, missing)
	}
	return report.New(report.MissingOpeningTag, line, col, tag)
}

// checkNesting validates the permitted-parents set of the tag and the
// permitted-children set of the current parent. The parent is the tag stack
// top before the new tag is pushed.
func (v *Validator) checkNesting(tag string, spec *tagspec.Spec, line, col int) *report.Error {
	parent := ""
	if len(v.stack) > 0 {
		parent = v.stack[len(v.stack)-1]
	}
	if spec.ConstrainsParents() {
		// A declared-empty parent set means the tag must sit at the root.
		if len(spec.PermittedParents) == 0 {
			if parent != "" {
				return report.New(report.UnexpectedTag, line, col, tag)
			}
		} else if parent != "" && !spec.PermitsParent(parent) {
			return report.New(report.UnexpectedTag, line, col, tag)
		}
	}
	if parent == "" {
		return nil
	}
	pspec, ok := v.table.Lookup(parent)
	if !ok || !pspec.ConstrainsChildren() {
		return nil
	}
	if !pspec.PermitsChild(tag) {
		return report.New(report.UnexpectedTag, line, col, tag)
	}
	return nil
}

// checkAttributes runs the attribute checks in a fixed order; the first
// fatal violation wins, warnings accumulate.
func (v *Validator) checkAttributes(tag string, spec *tagspec.Spec, attrs map[string]string, line, col int) *report.Error {
	if _, ok := attrs["style"]; ok {
		// Inline CSS is never allowed in submissions.
		return report.New(report.InvalidAttribute, line, col, tag, "style")
	}
	if id, ok := attrs["id"]; ok {
		if strings.ContainsAny(id, " \t\n") {
			return report.New(report.AttributeWhitespace, line, col, "id")
		}
		if v.ids[id] {
			return report.New(report.DuplicateID, line, col, id, tag)
		}
		v.ids[id] = true
	}
	for _, attr := range []string{"id", "class"} {
		if val, ok := attrs[attr]; ok && val == "" {
			return report.New(report.AttributeEmpty, line, col, attr)
		}
	}
	if src, ok := attrs["src"]; ok && isAbsPath(src) {
		return report.New(report.AttributeAbsolutePath, line, col)
	}
	if v.cfg.Required {
		if missing := missingFrom(spec.Required, attrs); len(missing) > 0 {
			return report.New(report.MissingRequiredAttrs, line, col, tag, strings.Join(missing, ", "))
		}
	}
	if v.cfg.Recommended {
		if missing := missingFrom(spec.Recommended, attrs); len(missing) > 0 {
			v.warnings.Add(report.Warn(report.MissingRecommendedAttrs, line, col, tag, strings.Join(missing, ", ")))
		}
	}
	return nil
}

func missingFrom(wanted []string, attrs map[string]string) []string {
	var missing []string
	for _, w := range wanted {
		if _, ok := attrs[w]; !ok {
			missing = append(missing, w)
		}
	}
	return missing
}

// isAbsPath recognizes absolute file paths in either Unix or Windows
// notation, including drive-letter paths.
func isAbsPath(p string) bool {
	if strings.HasPrefix(p, "/") || strings.HasPrefix(p, "\\") {
		return true
	}
	if len(p) >= 3 && p[1] == ':' && (p[2] == '/' || p[2] == '\\') {
		c := p[0]
		return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
	}
	return false
}
