package hint

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/amp-labs/strict-hint/errors"
)

// maxOriginDepth bounds how many Generic origins Normalize follows.
const maxOriginDepth = 32

// Matcher is the normalized form of a Spec: a set of checkable types and a
// set of container kinds. A value conforms if it matches any of either.
type Matcher struct {
	types      []reflect.Type
	containers []Container
}

// Types returns the checkable types, in declaration order.
func (m Matcher) Types() []reflect.Type {
	return slices.Clone(m.types)
}

// Containers returns the container kinds, in declaration order.
func (m Matcher) Containers() []Container {
	return slices.Clone(m.containers)
}

// IsUnion reports whether the matcher has more than one alternative.
func (m Matcher) IsUnion() bool {
	return len(m.types)+len(m.containers) > 1
}

func (m Matcher) merge(other Matcher) Matcher {
	for _, t := range other.types {
		if !slices.Contains(m.types, t) {
			m.types = append(m.types, t)
		}
	}

	for _, c := range other.containers {
		if !slices.Contains(m.containers, c) {
			m.containers = append(m.containers, c)
		}
	}

	return m
}

// Normalize converts spec into a Matcher. Variants are handled in priority
// order: Union, ListOf, Generic, Alias, Primitive. Anything that cannot be
// normalized (nil specs, Unannotated, a Primitive without a type, a Generic
// with no reachable container kind) yields an error wrapping
// errors.ErrNormalization.
func Normalize(spec Spec) (Matcher, error) {
	switch s := spec.(type) {
	case Union:
		return normalizeUnion(s)
	case ListOf:
		return Matcher{containers: []Container{ContainerList}}, nil
	case Generic:
		c, err := s.Concrete()
		if err != nil {
			return Matcher{}, err
		}

		return Matcher{containers: []Container{c}}, nil
	case Alias:
		if s.Target == nil {
			return Matcher{}, fmt.Errorf("%w: alias %q has no target", errors.ErrNormalization, s.Name)
		}

		m, err := Normalize(s.Target)
		if err != nil {
			return Matcher{}, fmt.Errorf("alias %q: %w", s.Name, err)
		}

		return m, nil
	case Primitive:
		if s.Type == nil {
			return Matcher{}, fmt.Errorf("%w: primitive without a type", errors.ErrNormalization)
		}

		return Matcher{types: []reflect.Type{s.Type}}, nil
	case Unannotated:
		return Matcher{}, fmt.Errorf("%w: unannotated specification", errors.ErrNormalization)
	case nil:
		return Matcher{}, fmt.Errorf("%w: nil specification", errors.ErrNormalization)
	default:
		return Matcher{}, fmt.Errorf("%w: unrecognized specification %T", errors.ErrNormalization, spec)
	}
}

func normalizeUnion(u Union) (Matcher, error) {
	if len(u.Members) == 0 {
		return Matcher{}, fmt.Errorf("%w: empty union", errors.ErrNormalization)
	}

	var out Matcher

	for i, member := range u.Members {
		m, err := Normalize(member)
		if err != nil {
			return Matcher{}, fmt.Errorf("union member %d: %w", i, err)
		}

		out = out.merge(m)
	}

	return out, nil
}

// Concrete follows the origin chain until it reaches a concrete container
// kind.
func (g Generic) Concrete() (Container, error) {
	origin := g.Origin

	for range maxOriginDepth {
		switch o := origin.(type) {
		case Container:
			if !o.Valid() {
				return 0, fmt.Errorf("%w: generic %q has invalid container origin %d",
					errors.ErrNormalization, g.Name, uint8(o))
			}

			return o, nil
		case Generic:
			origin = o.Origin
		default:
			return 0, fmt.Errorf("%w: generic %q has no concrete container origin",
				errors.ErrNormalization, g.Name)
		}
	}

	return 0, fmt.Errorf("%w: generic %q origin chain is deeper than %d",
		errors.ErrNormalization, g.Name, maxOriginDepth)
}
