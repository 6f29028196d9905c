package strict

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"sync"
	"unsafe"

	"github.com/amp-labs/strict-hint/conform"
	"github.com/amp-labs/strict-hint/errors"
	"github.com/amp-labs/strict-hint/signature"
)

var contextType = reflect.TypeFor[context.Context]() //nolint:gochecknoglobals

// wrappedNames maps the closure of every func Wrap returned to the name it
// guards under. Funcs built by reflect.MakeFunc all report the same runtime
// name, so wrapping one again looks its name up here.
var wrappedNames sync.Map //nolint:gochecknoglobals

type wrappedName struct {
	name string
}

// Wrap returns a func of the same type as fn that validates its arguments
// against the signature derived by signature.Of(fn, opts...), calls fn, and
// validates the first result against the return spec. On success fn's
// results are returned unchanged.
//
// fn may return nothing, one value, an error, or a value and an error. When
// it returns an error, conformance failures are returned through it with
// zero values for the other result; otherwise they panic. A non-nil error
// from fn skips return validation. If fn's first parameter is a
// context.Context it is used for logging and tracing rejections.
//
// Wrapping an already wrapped func keeps the inner guard's name unless
// signature.WithName says otherwise.
func Wrap[F any](fn F, opts ...signature.Option) (F, error) {
	var zero F

	if name, ok := lookupWrappedName(reflect.ValueOf(fn)); ok {
		opts = append([]signature.Option{signature.WithName(name)}, opts...)
	}

	sig, err := signature.Of(fn, opts...)
	if err != nil {
		return zero, err
	}

	fnValue := reflect.ValueOf(fn)
	fnType := fnValue.Type()

	if err := checkResults(fnType); err != nil {
		return zero, fmt.Errorf("%s: %w", sig.DisplayName(), err)
	}

	w := &wrapper{
		sig:       sig,
		fn:        fnValue,
		fnType:    fnType,
		hasError:  signature.ReturnsError(fnType),
		hasResult: fnType.NumOut() > 0 && !(fnType.NumOut() == 1 && signature.ReturnsError(fnType)),
		takesCtx:  fnType.NumIn() > 0 && fnType.In(0) == contextType,
	}

	wrappedValue := reflect.MakeFunc(fnType, w.call)

	wrapped, ok := wrappedValue.Interface().(F)
	if !ok {
		return zero, fmt.Errorf("%w: %T", errors.ErrNotAFunction, fn)
	}

	rememberWrappedName(wrappedValue, sig.Name)

	return wrapped, nil
}

// closureOf returns the closure behind a func value. Unlike the code
// pointer, it differs for every func reflect.MakeFunc builds.
func closureOf(v reflect.Value) unsafe.Pointer {
	p := reflect.New(v.Type())
	p.Elem().Set(v)

	return *(*unsafe.Pointer)(p.UnsafePointer())
}

func rememberWrappedName(v reflect.Value, name string) {
	closure := closureOf(v)
	key := uintptr(closure)
	entry := &wrappedName{name: name}

	wrappedNames.Store(key, entry)

	// The key is a plain address so the table does not keep the func alive.
	// Only drop the entry if it was not replaced by a func reusing the address.
	runtime.AddCleanup((*byte)(closure), func(key uintptr) {
		wrappedNames.CompareAndDelete(key, entry)
	}, key)
}

func lookupWrappedName(v reflect.Value) (string, bool) {
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return "", false
	}

	entry, ok := wrappedNames.Load(uintptr(closureOf(v)))
	if !ok {
		return "", false
	}

	return entry.(*wrappedName).name, true //nolint:forcetypeassert
}

// MustWrap is Wrap that panics on error. Intended for package-level guards.
func MustWrap[F any](fn F, opts ...signature.Option) F {
	wrapped, err := Wrap(fn, opts...)
	if err != nil {
		panic(err)
	}

	return wrapped
}

func checkResults(t reflect.Type) error {
	switch t.NumOut() {
	case 0, 1:
		return nil
	case 2:
		if signature.ReturnsError(t) {
			return nil
		}
	}

	return fmt.Errorf("%w: want (), (T), (error) or (T, error), got %s", errors.ErrUnsupportedResults, t)
}

type wrapper struct {
	sig       signature.Signature
	fn        reflect.Value
	fnType    reflect.Type
	hasError  bool
	hasResult bool
	takesCtx  bool
}

func (w *wrapper) call(in []reflect.Value) []reflect.Value {
	ctx := w.context(in)

	if !Enabled() {
		guardedCallsTotal.WithLabelValues(outcomeBypassed).Inc()

		return w.invoke(in)
	}

	values := make([]any, len(in))
	for i, arg := range in {
		values[i] = arg.Interface()
	}

	args, err := w.sig.BindExact(values)
	if err == nil {
		err = conform.ValidateBound(args)
	}

	if err != nil {
		return w.fail(reject(ctx, w.sig, positionArgument, err))
	}

	out := w.invoke(in)

	if w.hasError && !out[len(out)-1].IsNil() {
		guardedCallsTotal.WithLabelValues(outcomeFailed).Inc()

		return out
	}

	var result any
	if w.hasResult {
		result = out[0].Interface()
	}

	if err := conform.ValidateReturn(w.sig, result); err != nil {
		return w.fail(reject(ctx, w.sig, positionReturn, err))
	}

	guardedCallsTotal.WithLabelValues(outcomePassed).Inc()

	return out
}

func (w *wrapper) context(in []reflect.Value) context.Context {
	if w.takesCtx && !in[0].IsNil() {
		if ctx, ok := in[0].Interface().(context.Context); ok {
			return ctx
		}
	}

	return context.Background()
}

func (w *wrapper) invoke(in []reflect.Value) []reflect.Value {
	if w.fnType.IsVariadic() {
		return w.fn.CallSlice(in)
	}

	return w.fn.Call(in)
}

// fail turns err into the wrapped func's results, or panics when the func
// has no error result to carry it.
func (w *wrapper) fail(err error) []reflect.Value {
	if !w.hasError {
		panic(err)
	}

	out := make([]reflect.Value, w.fnType.NumOut())
	for i := range out {
		out[i] = reflect.Zero(w.fnType.Out(i))
	}

	out[len(out)-1] = reflect.ValueOf(&err).Elem()

	return out
}
