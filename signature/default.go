package signature

// Default is a parameter's declared default value, which may be absent.
// A declared default of nil is different from no default at all.
type Default struct {
	value any
	isSet bool
}

// NoDefault is the absence of a default.
func NoDefault() Default {
	return Default{}
}

// DefaultOf declares value as the default.
func DefaultOf(value any) Default {
	return Default{value: value, isSet: true}
}

// Get returns the default value and whether one was declared.
func (d Default) Get() (any, bool) {
	return d.value, d.isSet
}

// IsSet returns true if a default was declared.
func (d Default) IsSet() bool {
	return d.isSet
}
