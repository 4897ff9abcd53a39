/*
Package tagspec holds the static tag-specification table driving the HTML
structure validator: which tag names exist, which attributes they require or
recommend, which parent/child nestings are permitted, and which tags are
void.

The built-in table is embedded as YAML and parsed exactly once; it is
immutable after loading. A corrupt table is a programming error, not an
input error, and panics.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package tagspec

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
)

// Spec describes one HTML tag.
//
// For PermittedChildren and PermittedParents, a nil slice means
// "unconstrained" while a declared-empty slice means "none permitted" (the
// root <html> tag declares an empty parent set).
type Spec struct {
	Required          []string `yaml:"required_attributes"`
	Recommended       []string `yaml:"recommended_attributes"`
	PermittedChildren []string `yaml:"permitted_children"`
	PermittedParents  []string `yaml:"permitted_parents"`
	Void              bool     `yaml:"void_tag"`
}

// ConstrainsParents reports whether the tag declares a permitted-parents
// set, including a declared-empty one.
func (s *Spec) ConstrainsParents() bool { return s.PermittedParents != nil }

// ConstrainsChildren reports whether the tag declares a permitted-children
// set.
func (s *Spec) ConstrainsChildren() bool { return s.PermittedChildren != nil }

// PermitsParent reports whether tag name p is an allowed parent. It is only
// meaningful when ConstrainsParents holds.
func (s *Spec) PermitsParent(p string) bool {
	return contains(s.PermittedParents, p)
}

// PermitsChild reports whether tag name c is an allowed child. It is only
// meaningful when ConstrainsChildren holds.
func (s *Spec) PermitsChild(c string) bool {
	return contains(s.PermittedChildren, c)
}

func contains(ls []string, s string) bool {
	for _, x := range ls {
		if x == s {
			return true
		}
	}
	return false
}

// Table maps lower-case tag names to their specification.
type Table map[string]*Spec

// Lookup finds the spec for a tag name, case-insensitively.
func (t Table) Lookup(name string) (*Spec, bool) {
	s, ok := t[strings.ToLower(name)]
	return s, ok
}

//go:embed tags.yaml
var builtinYAML []byte

var (
	builtinOnce sync.Once
	builtin     Table
)

// Builtin returns the embedded tag table. The table is parsed on first use
// and shared afterwards; callers must not mutate it. Builtin panics if the
// embedded table does not parse, as no validation can be trusted without it.
func Builtin() Table {
	builtinOnce.Do(func() {
		if err := yaml.Unmarshal(builtinYAML, &builtin); err != nil {
			panic("tagspec: corrupt built-in tag table: " + err.Error())
		}
	})
	return builtin
}
