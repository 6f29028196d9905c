package signature

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/amp-labs/strict-hint/errors"
)

// Arguments is the result of binding a call's arguments to a signature.
type Arguments struct {
	sig      Signature
	values   []any
	supplied []bool
}

// Signature returns the signature the arguments were bound to.
func (a *Arguments) Signature() Signature {
	return a.sig
}

// Supplied returns true if the call supplied the named parameter. A
// variadic parameter is always supplied, possibly as an empty list.
func (a *Arguments) Supplied(name string) bool {
	_, idx, ok := a.sig.Lookup(name)

	return ok && a.supplied[idx]
}

// Get returns the value bound to the named parameter: the supplied value,
// else its default. ok is false for unknown parameters and for parameters
// that were neither supplied nor defaulted.
func (a *Arguments) Get(name string) (any, bool) {
	p, idx, ok := a.sig.Lookup(name)
	if !ok {
		return nil, false
	}

	if a.supplied[idx] {
		return a.values[idx], true
	}

	return p.Default.Get()
}

// Values returns one value per parameter in declaration order, with
// defaults filled in for parameters that were not supplied.
func (a *Arguments) Values() []any {
	out := make([]any, len(a.values))

	for i, p := range a.sig.Params {
		if a.supplied[i] {
			out[i] = a.values[i]
		} else if dfl, ok := p.Default.Get(); ok {
			out[i] = dfl
		}
	}

	return out
}

// Bind maps positional and keyword arguments onto s's parameters the way a
// call would. Positionals fill parameters in declaration order; extra
// positionals are collected into the variadic parameter as a []any. Keywords
// bind by parameter name and cannot target the variadic parameter.
//
// All missing required parameters are reported in a single error.
func (s Signature) Bind(positional []any, keyword map[string]any) (*Arguments, error) {
	args := &Arguments{
		sig:      s,
		values:   make([]any, len(s.Params)),
		supplied: make([]bool, len(s.Params)),
	}

	fixed := len(s.Params)
	if s.Variadic() {
		fixed--
	}

	if len(positional) > fixed && !s.Variadic() {
		return nil, fmt.Errorf("%w: %s takes %d positional arguments but %d were given",
			errors.ErrTooManyArguments, s.DisplayName(), fixed, len(positional))
	}

	for i, value := range positional[:min(len(positional), fixed)] {
		args.values[i] = value
		args.supplied[i] = true
	}

	if s.Variadic() {
		rest := []any{}
		if len(positional) > fixed {
			rest = slices.Clone(positional[fixed:])
		}

		args.values[fixed] = rest
		args.supplied[fixed] = true
	}

	for _, name := range slices.Sorted(maps.Keys(keyword)) {
		p, idx, ok := s.Lookup(name)
		if !ok || p.Variadic {
			return nil, fmt.Errorf("%w: %s got an unexpected keyword argument %q",
				errors.ErrUnexpectedKeyword, s.DisplayName(), name)
		}

		if args.supplied[idx] {
			return nil, fmt.Errorf("%w: %s got multiple values for argument %q",
				errors.ErrDuplicateArgument, s.DisplayName(), name)
		}

		args.values[idx] = keyword[name]
		args.supplied[idx] = true
	}

	var missing []string

	for i, p := range s.Params {
		if !args.supplied[i] && p.Required() {
			missing = append(missing, p.Name)
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s: %s", errors.ErrMissingArgument, s.DisplayName(), strings.Join(missing, ", "))
	}

	return args, nil
}

// BindExact binds exactly one value per parameter, in declaration order.
// It is used when the caller already holds a complete argument list, such as
// a reflected Go call where the variadic parameter arrives as a slice.
func (s Signature) BindExact(values []any) (*Arguments, error) {
	switch {
	case len(values) > len(s.Params):
		return nil, fmt.Errorf("%w: %s takes %d arguments but %d were given",
			errors.ErrTooManyArguments, s.DisplayName(), len(s.Params), len(values))
	case len(values) < len(s.Params):
		return nil, fmt.Errorf("%w: %s takes %d arguments but %d were given",
			errors.ErrMissingArgument, s.DisplayName(), len(s.Params), len(values))
	}

	supplied := make([]bool, len(values))
	for i := range supplied {
		supplied[i] = true
	}

	return &Arguments{
		sig:      s,
		values:   slices.Clone(values),
		supplied: supplied,
	}, nil
}
