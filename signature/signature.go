// Package signature describes callables for the conformance checks: their
// qualified name, ordered parameters (name, declared spec, default) and
// declared return spec. It also binds call arguments to parameters.
//
// Signatures come from three places: reflection over a Go func (Of),
// YAML declarations (LoadYAML), or plain struct literals.
package signature

import (
	"fmt"
	"strings"

	"github.com/amp-labs/strict-hint/errors"
	"github.com/amp-labs/strict-hint/hint"
)

// Param is one declared parameter.
type Param struct {
	Name     string
	Spec     hint.Spec
	Default  Default
	Variadic bool
}

// Annotated returns true if the parameter declares a spec.
func (p Param) Annotated() bool {
	return hint.IsAnnotated(p.Spec)
}

// Required returns true if a call must supply the parameter.
func (p Param) Required() bool {
	return !p.Default.IsSet() && !p.Variadic
}

func (p Param) String() string {
	var sb strings.Builder

	if p.Variadic {
		sb.WriteString("...")
	}

	sb.WriteString(p.Name)

	if p.Annotated() {
		sb.WriteString(" ")
		sb.WriteString(p.Spec.String())
	}

	if dfl, ok := p.Default.Get(); ok {
		fmt.Fprintf(&sb, " = %#v", dfl)
	}

	return sb.String()
}

// Signature is the immutable description of a callable.
type Signature struct {
	// Name is qualified within the package, e.g. "T.Method" or "Outer.func1".
	// See QualifiedName.
	Name   string
	Params []Param
	Return hint.Spec
}

// DisplayName is the name used in error messages. See DisplayName.
func (s Signature) DisplayName() string {
	return DisplayName(s.Name)
}

// Lookup returns the parameter called name and its position.
func (s Signature) Lookup(name string) (Param, int, bool) {
	for i, p := range s.Params {
		if p.Name == name {
			return p, i, true
		}
	}

	return Param{}, -1, false
}

// Variadic returns true if the last parameter collects extra positionals.
func (s Signature) Variadic() bool {
	return len(s.Params) > 0 && s.Params[len(s.Params)-1].Variadic
}

// Validate checks that the signature is usable: parameter names are
// non-empty and unique, only the last parameter is variadic, and every
// declared spec normalizes. All problems are reported together.
func (s Signature) Validate() error {
	var errs errors.Collection

	seen := make(map[string]struct{}, len(s.Params))

	for i, p := range s.Params {
		switch {
		case p.Name == "":
			errs.Add(fmt.Errorf("%w: %s: parameter %d has no name", errors.ErrInvalidSignature, s.DisplayName(), i))
		default:
			if _, dup := seen[p.Name]; dup {
				errs.Add(fmt.Errorf("%w: %s: duplicate parameter %q", errors.ErrInvalidSignature, s.DisplayName(), p.Name))
			}

			seen[p.Name] = struct{}{}
		}

		if p.Variadic && i != len(s.Params)-1 {
			errs.Add(fmt.Errorf("%w: %s: variadic parameter %q is not last",
				errors.ErrInvalidSignature, s.DisplayName(), p.Name))
		}

		if p.Annotated() {
			if _, err := hint.Normalize(p.Spec); err != nil {
				errs.Add(fmt.Errorf("%w: %s: parameter %q: %w", errors.ErrInvalidSignature, s.DisplayName(), p.Name, err))
			}
		}
	}

	if hint.IsAnnotated(s.Return) {
		if _, err := hint.Normalize(s.Return); err != nil {
			errs.Add(fmt.Errorf("%w: %s: return: %w", errors.ErrInvalidSignature, s.DisplayName(), err))
		}
	}

	return errs.GetError()
}

func (s Signature) String() string {
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		parts[i] = p.String()
	}

	out := s.DisplayName() + "(" + strings.Join(parts, ", ") + ")"

	if hint.IsAnnotated(s.Return) {
		out += " " + s.Return.String()
	}

	return out
}
