package strict

import (
	"context"
	"fmt"

	"github.com/amp-labs/strict-hint/conform"
	"github.com/amp-labs/strict-hint/errors"
	"github.com/amp-labs/strict-hint/signature"
)

// Callable is a dynamically invoked function. It receives its arguments
// already bound to its signature, defaults included.
type Callable func(ctx context.Context, args *signature.Arguments) (any, error)

// Guard validates calls to a Callable against a signature.
type Guard struct {
	sig  signature.Signature
	call Callable
}

// New returns a Guard for call. The signature is validated once, here.
func New(sig signature.Signature, call Callable) (*Guard, error) {
	if call == nil {
		return nil, fmt.Errorf("%w: nil callable for %s", errors.ErrNotAFunction, sig.DisplayName())
	}

	if err := sig.Validate(); err != nil {
		return nil, err
	}

	return &Guard{sig: sig, call: call}, nil
}

// Signature returns the signature the guard checks against.
func (g *Guard) Signature() signature.Signature {
	return g.sig
}

// Call binds positional and keyword to the signature, validates them, calls
// the callable, and validates its result. Binding errors are returned
// unchanged; conformance failures are *conform.ArgumentError or
// *conform.ReturnError (annotated for logging). An error from the callable
// is returned as is, without validating the result.
func (g *Guard) Call(ctx context.Context, positional []any, keyword map[string]any) (any, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	args, err := g.sig.Bind(positional, keyword)
	if err != nil {
		return nil, err
	}

	if !Enabled() {
		guardedCallsTotal.WithLabelValues(outcomeBypassed).Inc()

		return g.call(ctx, args)
	}

	if err := conform.ValidateBound(args); err != nil {
		return nil, reject(ctx, g.sig, positionArgument, err)
	}

	result, err := g.call(ctx, args)
	if err != nil {
		guardedCallsTotal.WithLabelValues(outcomeFailed).Inc()

		return result, err
	}

	if err := conform.ValidateReturn(g.sig, result); err != nil {
		return nil, reject(ctx, g.sig, positionReturn, err)
	}

	guardedCallsTotal.WithLabelValues(outcomePassed).Inc()

	return result, nil
}

// Callable returns the guard as a Callable, so guards can be stacked. The
// incoming arguments are passed on positionally, with a variadic list
// spread back out.
func (g *Guard) Callable() Callable {
	return func(ctx context.Context, args *signature.Arguments) (any, error) {
		values := args.Values()

		if args.Signature().Variadic() {
			last := len(values) - 1
			rest, _ := values[last].([]any)
			values = append(values[:last:last], rest...)
		}

		return g.Call(ctx, values, nil)
	}
}
