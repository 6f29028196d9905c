package conform

import (
	"fmt"
	"reflect"

	"github.com/amp-labs/strict-hint/hint"
	"github.com/amp-labs/strict-hint/signature"
)

// ValidateArguments binds the call's arguments to sig and validates them.
// Binding errors (missing or unexpected arguments) are returned unchanged.
func ValidateArguments(sig signature.Signature, positional []any, keyword map[string]any) error {
	args, err := sig.Bind(positional, keyword)
	if err != nil {
		return err
	}

	return ValidateBound(args)
}

// ValidateBound validates already bound arguments in declaration order and
// returns the first failure. Parameters that were not supplied take their
// default, which is not checked.
func ValidateBound(args *signature.Arguments) error {
	sig := args.Signature()

	for _, p := range sig.Params {
		if !p.Annotated() {
			checksTotal.WithLabelValues(positionArgument, outcomeSkipped).Inc()

			continue
		}

		if !args.Supplied(p.Name) {
			checksTotal.WithLabelValues(positionArgument, outcomeSkipped).Inc()

			continue
		}

		value, _ := args.Get(p.Name)

		matched, err := Matches(value, p.Spec, p.Default)
		observe(positionArgument, matched, err)

		if err != nil {
			return fmt.Errorf("%s: parameter %s: %w", sig.DisplayName(), p.Name, err)
		}

		if !matched {
			return &ArgumentError{
				Param:    p.Name,
				Callable: sig.DisplayName(),
				Spec:     p.Spec,
				Value:    reflect.TypeOf(value),
			}
		}
	}

	return nil
}

// ValidateReturn validates result against sig's return spec. Return values
// have no default.
func ValidateReturn(sig signature.Signature, result any) error {
	if !hint.IsAnnotated(sig.Return) {
		checksTotal.WithLabelValues(positionReturn, outcomeSkipped).Inc()

		return nil
	}

	matched, err := Matches(result, sig.Return, signature.NoDefault())
	observe(positionReturn, matched, err)

	if err != nil {
		return fmt.Errorf("%s: return: %w", sig.DisplayName(), err)
	}

	if !matched {
		return &ReturnError{
			Callable: sig.DisplayName(),
			Spec:     sig.Return,
			Value:    reflect.TypeOf(result),
		}
	}

	return nil
}
