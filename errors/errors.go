package errors

import "errors"

var (
	// ErrTypeConformance is matched (via errors.Is) by every argument and
	// return conformance failure.
	ErrTypeConformance = errors.New("type conformance")

	// ErrNormalization marks a declared specification that cannot be turned
	// into a matcher. It points at the annotation, not at the value.
	ErrNormalization = errors.New("cannot normalize type specification")

	ErrUnknownType        = errors.New("unknown type name")
	ErrInvalidSpec        = errors.New("invalid type specification")
	ErrNotAFunction       = errors.New("not a function")
	ErrInvalidSignature   = errors.New("invalid signature")
	ErrMissingArgument    = errors.New("missing required argument")
	ErrTooManyArguments   = errors.New("too many arguments")
	ErrUnexpectedKeyword  = errors.New("unexpected keyword argument")
	ErrDuplicateArgument  = errors.New("multiple values for argument")
	ErrUnknownParameter   = errors.New("unknown parameter")
	ErrUnsupportedResults = errors.New("unsupported result list")
	ErrInvalidConfig      = errors.New("invalid configuration")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Signature checks use it to report every problem with a declaration at once
// instead of stopping at the first one.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error: nil when empty,
// the error itself when there is one, and errors.Join otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
