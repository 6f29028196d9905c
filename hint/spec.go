// Package hint models declared type specifications ("hints") for callable
// parameters and return values, and normalizes them into matchers that the
// conform package evaluates against runtime values.
//
// A specification is one of a closed set of variants:
//
//   - Primitive: a single Go type (builtin, interface or user defined)
//   - Union: an ordered list of specs, any of which may match
//   - ListOf: [T], a slice whose element type T is informational only
//   - Generic: a named generic container, matched by container kind only
//   - Alias: a named spec that matches like its target but displays its name
//   - Unannotated: no specification at all
//
// Example:
//
//	spec := hint.OneOf(hint.Type[int](), hint.Type[string]())
//	m, err := hint.Normalize(spec)
package hint

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind identifies the variant of a Spec.
type Kind uint8

const (
	KindUnannotated Kind = iota
	KindPrimitive
	KindUnion
	KindListOf
	KindGeneric
	KindAlias
)

func (k Kind) String() string {
	switch k {
	case KindUnannotated:
		return "unannotated"
	case KindPrimitive:
		return "primitive"
	case KindUnion:
		return "union"
	case KindListOf:
		return "list-of"
	case KindGeneric:
		return "generic"
	case KindAlias:
		return "alias"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Spec is a declared type specification. The set of implementations is
// closed: only the variants defined in this package satisfy it.
type Spec interface {
	fmt.Stringer

	// Kind reports which variant the spec is.
	Kind() Kind

	sealed()
}

var anyType = reflect.TypeFor[any]() //nolint:gochecknoglobals

// TypeName renders a Go type the way specs and error messages show it:
// the empty interface is "any" and a missing type is "nil".
func TypeName(t reflect.Type) string {
	switch t {
	case nil:
		return "nil"
	case anyType:
		return "any"
	default:
		return t.String()
	}
}

func display(s Spec) string {
	if s == nil {
		return "<nil>"
	}

	return s.String()
}

func displayAll(specs []Spec) string {
	parts := make([]string, len(specs))
	for i, s := range specs {
		parts[i] = display(s)
	}

	return strings.Join(parts, ", ")
}

// Primitive is a single nominal type. Interface types match every value
// whose type implements them.
type Primitive struct {
	Type reflect.Type
}

// Type returns the Primitive spec for T.
//
// Example:
//
//	hint.Type[int]()
//	hint.Type[io.Reader]()
func Type[T any]() Primitive {
	return Primitive{Type: reflect.TypeFor[T]()}
}

// Of returns the Primitive spec for an already reflected type.
func Of(t reflect.Type) Primitive {
	return Primitive{Type: t}
}

func (p Primitive) Kind() Kind     { return KindPrimitive }
func (p Primitive) String() string { return TypeName(p.Type) }
func (p Primitive) sealed()        {}

// Union matches a value that matches any of its members. Member order only
// affects how the union is displayed.
type Union struct {
	Members []Spec
}

// OneOf builds a Union over the given members.
func OneOf(members ...Spec) Union {
	return Union{Members: members}
}

func (u Union) Kind() Kind     { return KindUnion }
func (u Union) String() string { return "(" + displayAll(u.Members) + ")" }
func (u Union) sealed()        {}

// ListOf is [Elem]: the value must be a slice. Elem is never checked against
// the slice's elements.
type ListOf struct {
	Elem Spec
}

// SliceOf builds the [elem] spec.
func SliceOf(elem Spec) ListOf {
	return ListOf{Elem: elem}
}

func (l ListOf) Kind() Kind { return KindListOf }

func (l ListOf) String() string {
	if l.Elem == nil {
		return "[]"
	}

	return "[" + l.Elem.String() + "]"
}

func (l ListOf) sealed() {}

// Alias gives a spec a name of its own. It matches exactly what Target
// matches; error messages show Name.
type Alias struct {
	Name   string
	Target Spec
}

// Named builds an Alias.
func Named(name string, target Spec) Alias {
	return Alias{Name: name, Target: target}
}

func (a Alias) Kind() Kind     { return KindAlias }
func (a Alias) String() string { return a.Name }
func (a Alias) sealed()        {}

// Unannotated is the absence of a specification. Everything conforms to it.
type Unannotated struct{}

// None is the Unannotated spec.
var None Spec = Unannotated{} //nolint:gochecknoglobals

func (Unannotated) Kind() Kind     { return KindUnannotated }
func (Unannotated) String() string { return "<unannotated>" }
func (Unannotated) sealed()        {}

// IsAnnotated reports whether spec declares anything. A nil spec counts as
// unannotated.
func IsAnnotated(spec Spec) bool {
	return spec != nil && spec.Kind() != KindUnannotated
}

var (
	_ Spec = Primitive{}
	_ Spec = Union{}
	_ Spec = ListOf{}
	_ Spec = Generic{}
	_ Spec = Alias{}
	_ Spec = Unannotated{}
)
