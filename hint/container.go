package hint

import (
	"fmt"
	"reflect"
)

// Container is a concrete container kind: the only thing a ListOf or Generic
// spec is checked against.
type Container uint8

const (
	ContainerList  Container = iota + 1 // slices
	ContainerTuple                      // arrays
	ContainerDict                       // maps
	ContainerSet                        // maps with struct{} or bool values
	ContainerChan                       // channels
)

func (c Container) String() string {
	switch c {
	case ContainerList:
		return "list"
	case ContainerTuple:
		return "tuple"
	case ContainerDict:
		return "dict"
	case ContainerSet:
		return "set"
	case ContainerChan:
		return "chan"
	default:
		return fmt.Sprintf("container(%d)", uint8(c))
	}
}

// Valid reports whether c is one of the defined container kinds.
func (c Container) Valid() bool {
	return c >= ContainerList && c <= ContainerChan
}

// Accepts reports whether values of type t are containers of kind c.
func (c Container) Accepts(t reflect.Type) bool {
	if t == nil {
		return false
	}

	switch c {
	case ContainerList:
		return t.Kind() == reflect.Slice
	case ContainerTuple:
		return t.Kind() == reflect.Array
	case ContainerDict:
		return t.Kind() == reflect.Map
	case ContainerSet:
		if t.Kind() != reflect.Map {
			return false
		}

		elem := t.Elem()

		return elem.Kind() == reflect.Bool || (elem.Kind() == reflect.Struct && elem.NumField() == 0)
	case ContainerChan:
		return t.Kind() == reflect.Chan
	default:
		return false
	}
}

func (c Container) origin() {}

// Origin is what a Generic is parameterized from: either a concrete
// Container or another Generic.
type Origin interface {
	origin()
}

// Generic is a named generic container such as dict[string, int]. Args are
// kept for display; matching only looks at the container kind reached by
// following Origin.
type Generic struct {
	Name   string
	Origin Origin
	Args   []Spec
}

// NewGeneric builds a Generic.
func NewGeneric(name string, origin Origin, args ...Spec) Generic {
	return Generic{Name: name, Origin: origin, Args: args}
}

// With parameterizes g with args, keeping its name and origin chain.
func (g Generic) With(args ...Spec) Generic {
	return Generic{Name: g.Name, Origin: g.Origin, Args: args}
}

func (g Generic) Kind() Kind { return KindGeneric }

func (g Generic) String() string {
	if len(g.Args) == 0 {
		return g.Name
	}

	return g.Name + "[" + displayAll(g.Args) + "]"
}

func (g Generic) sealed() {}
func (g Generic) origin() {}

// List is list[elem].
func List(elem Spec) Generic {
	return NewGeneric("list", ContainerList, elem)
}

// Tuple is tuple[elems...].
func Tuple(elems ...Spec) Generic {
	return NewGeneric("tuple", ContainerTuple, elems...)
}

// Dict is dict[key, value].
func Dict(key, value Spec) Generic {
	return NewGeneric("dict", ContainerDict, key, value)
}

// Set is set[elem].
func Set(elem Spec) Generic {
	return NewGeneric("set", ContainerSet, elem)
}

// Chan is chan[elem].
func Chan(elem Spec) Generic {
	return NewGeneric("chan", ContainerChan, elem)
}
