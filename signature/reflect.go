package signature

import (
	"fmt"
	"reflect"

	"github.com/amp-labs/strict-hint/errors"
	"github.com/amp-labs/strict-hint/hint"
)

var errorType = reflect.TypeFor[error]() //nolint:gochecknoglobals

// Option adjusts the signature produced by Of.
type Option func(*builder)

type builder struct {
	name        string
	paramNames  []string
	annotations map[string]hint.Spec
	defaults    map[string]any
	returns     hint.Spec
	order       []string
}

// WithName overrides the callable's qualified name.
func WithName(name string) Option {
	return func(b *builder) {
		b.name = name
	}
}

// WithParamNames names the parameters in declaration order. Go does not
// keep parameter names at runtime, so without this they are arg0, arg1, ...
func WithParamNames(names ...string) Option {
	return func(b *builder) {
		b.paramNames = names
	}
}

// Annotate declares spec for the named parameter, replacing the spec derived
// from its Go type.
func Annotate(param string, spec hint.Spec) Option {
	return func(b *builder) {
		if b.annotations == nil {
			b.annotations = make(map[string]hint.Spec)
		}

		b.annotations[param] = spec
		b.order = append(b.order, param)
	}
}

// Unannotated removes the spec of the named parameter; any value is accepted.
func Unannotated(param string) Option {
	return Annotate(param, hint.None)
}

// WithDefault declares a default for the named parameter. Values equal to it
// always conform.
func WithDefault(param string, value any) Option {
	return func(b *builder) {
		if b.defaults == nil {
			b.defaults = make(map[string]any)
		}

		b.defaults[param] = value
		b.order = append(b.order, param)
	}
}

// Returns declares the return spec. It applies to the first result; a
// trailing error result is never checked.
func Returns(spec hint.Spec) Option {
	return func(b *builder) {
		b.returns = spec
	}
}

// Of reflects fn, which must be a non-nil func, into a Signature.
//
// Every parameter starts out annotated with its Go type (a variadic ...T
// parameter becomes [T]) and the return spec is the type of the first
// result that is not a trailing error. Options then rename, re-annotate or
// add defaults.
//
// Example:
//
//	sig, err := signature.Of(handler,
//	    signature.WithParamNames("ctx", "r"),
//	    signature.Annotate("r", hint.OneOf(hint.Type[int](), hint.Type[string]())),
//	)
func Of(fn any, opts ...Option) (Signature, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return Signature{}, fmt.Errorf("%w: %T", errors.ErrNotAFunction, fn)
	}

	if v.IsNil() {
		return Signature{}, fmt.Errorf("%w: nil %T", errors.ErrNotAFunction, fn)
	}

	var b builder
	for _, opt := range opts {
		opt(&b)
	}

	t := v.Type()

	sig := Signature{
		Name:   b.name,
		Params: make([]Param, t.NumIn()),
		Return: resultSpec(t),
	}

	if sig.Name == "" {
		sig.Name = QualifiedName(functionName(v))
	}

	if b.paramNames != nil && len(b.paramNames) != t.NumIn() {
		return Signature{}, fmt.Errorf("%w: %s: %d parameter names given for %d parameters",
			errors.ErrInvalidSignature, sig.DisplayName(), len(b.paramNames), t.NumIn())
	}

	for i := range t.NumIn() {
		p := Param{
			Name: fmt.Sprintf("arg%d", i),
			Spec: hint.Of(t.In(i)),
		}

		if b.paramNames != nil {
			p.Name = b.paramNames[i]
		}

		if t.IsVariadic() && i == t.NumIn()-1 {
			p.Variadic = true
			p.Spec = hint.SliceOf(hint.Of(t.In(i).Elem()))
		}

		sig.Params[i] = p
	}

	for _, name := range b.order {
		_, idx, ok := sig.Lookup(name)
		if !ok {
			return Signature{}, fmt.Errorf("%w: %s: %q", errors.ErrUnknownParameter, sig.DisplayName(), name)
		}

		if spec, ok := b.annotations[name]; ok {
			sig.Params[idx].Spec = spec
		}

		if dfl, ok := b.defaults[name]; ok {
			sig.Params[idx].Default = DefaultOf(dfl)
		}
	}

	if b.returns != nil {
		sig.Return = b.returns
	}

	if err := sig.Validate(); err != nil {
		return Signature{}, err
	}

	return sig, nil
}

// resultSpec is the declared spec of the first non-error result, or None.
func resultSpec(t reflect.Type) hint.Spec { //nolint:ireturn
	n := t.NumOut()
	if n > 0 && t.Out(n-1) == errorType {
		n--
	}

	if n == 0 {
		return hint.None
	}

	return hint.Of(t.Out(0))
}

// ReturnsError reports whether the func type ends with an error result.
func ReturnsError(t reflect.Type) bool {
	return t.Kind() == reflect.Func && t.NumOut() > 0 && t.Out(t.NumOut()-1) == errorType
}
