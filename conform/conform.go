// Package conform evaluates runtime values against declared type specs.
//
// The evaluation of one value proceeds as follows:
//
//  1. A value deeply equal to the position's declared default conforms.
//  2. An unannotated position accepts anything.
//  3. The spec is normalized (see hint.Normalize) and the value conforms if
//     its runtime type is one of the matcher's types, implements one of its
//     interface types, or is a container of one of its container kinds.
//     Untyped nil only conforms to interface types.
//  4. A value that is itself a reflect.Type conforms if that type passes the
//     same test. This is the class path: a type standing in for its values.
//
// ValidateArguments and ValidateReturn apply the evaluation to a call and
// report failures as *ArgumentError and *ReturnError, both of which match
// errors.ErrTypeConformance.
package conform

import (
	"reflect"

	"github.com/amp-labs/strict-hint/hint"
	"github.com/amp-labs/strict-hint/signature"
)

// Matches reports whether value conforms to spec, given the position's
// declared default. A spec that cannot be normalized yields an error wrapping
// errors.ErrNormalization; it is never treated as a mismatch.
func Matches(value any, spec hint.Spec, def signature.Default) (bool, error) {
	if dfl, ok := def.Get(); ok && reflect.DeepEqual(value, dfl) {
		return true, nil
	}

	if !hint.IsAnnotated(spec) {
		return true, nil
	}

	matcher, err := hint.Normalize(spec)
	if err != nil {
		return false, err
	}

	if isInstance(value, matcher) {
		return true, nil
	}

	if t, ok := value.(reflect.Type); ok && t != nil {
		return typeMatches(t, matcher), nil
	}

	return false, nil
}

func isInstance(value any, matcher hint.Matcher) bool {
	if value == nil {
		for _, t := range matcher.Types() {
			if t.Kind() == reflect.Interface {
				return true
			}
		}

		return false
	}

	return typeMatches(reflect.TypeOf(value), matcher)
}

func typeMatches(t reflect.Type, matcher hint.Matcher) bool {
	for _, want := range matcher.Types() {
		if t == want {
			return true
		}

		if want.Kind() == reflect.Interface && t.Implements(want) {
			return true
		}
	}

	for _, c := range matcher.Containers() {
		if c.Accepts(t) {
			return true
		}
	}

	return false
}
