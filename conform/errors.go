package conform

import (
	"fmt"
	"reflect"

	"github.com/amp-labs/strict-hint/errors"
	"github.com/amp-labs/strict-hint/hint"
)

// ArgumentError reports an argument that does not conform to its
// parameter's declared spec.
type ArgumentError struct {
	// Param is the parameter name.
	Param string
	// Callable is the display name of the callable.
	Callable string
	// Spec is the declared spec, as written (not normalized).
	Spec hint.Spec
	// Value is the runtime type of the supplied value, nil for untyped nil.
	Value reflect.Type
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("Argument %s passed to %s must be an instance of %s, %s given",
		e.Param, e.Callable, specName(e.Spec), hint.TypeName(e.Value))
}

// Is makes the error match errors.ErrTypeConformance.
func (e *ArgumentError) Is(target error) bool {
	return target == errors.ErrTypeConformance //nolint:errorlint
}

// ReturnError reports a return value that does not conform to the declared
// return spec.
type ReturnError struct {
	Callable string
	Spec     hint.Spec
	Value    reflect.Type
}

func (e *ReturnError) Error() string {
	return fmt.Sprintf("Value returned by %s must be an instance of %s, %s returned",
		e.Callable, specName(e.Spec), hint.TypeName(e.Value))
}

// Is makes the error match errors.ErrTypeConformance.
func (e *ReturnError) Is(target error) bool {
	return target == errors.ErrTypeConformance //nolint:errorlint
}

func specName(spec hint.Spec) string {
	if spec == nil {
		return "<nil>"
	}

	return spec.String()
}
