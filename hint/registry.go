package hint

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/amp-labs/strict-hint/errors"
	"github.com/google/uuid"
)

// Registry maps names to specs so that specs can be written as text (see
// Parse). It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Spec
}

// NewRegistry returns a registry pre-populated with the Go builtin types,
// any, error, time.Time, time.Duration, uuid.UUID and the generic
// containers list, tuple, dict, set and chan.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]Spec)}

	builtins := []Primitive{
		Type[bool](),
		Type[int](), Type[int8](), Type[int16](), Type[int32](), Type[int64](),
		Type[uint](), Type[uint8](), Type[uint16](), Type[uint32](), Type[uint64](), Type[uintptr](),
		Type[float32](), Type[float64](),
		Type[complex64](), Type[complex128](),
		Type[string](),
		Type[any](),
		Type[error](),
		Type[time.Time](),
		Type[time.Duration](),
		Type[uuid.UUID](),
	}

	for _, p := range builtins {
		r.entries[p.String()] = p
	}

	r.entries["byte"] = Named("byte", Type[uint8]())
	r.entries["rune"] = Named("rune", Type[int32]())

	for _, c := range []Container{ContainerList, ContainerTuple, ContainerDict, ContainerSet, ContainerChan} {
		r.entries[c.String()] = NewGeneric(c.String(), c)
	}

	return r
}

var defaultRegistry = NewRegistry() //nolint:gochecknoglobals

// DefaultRegistry returns the process-wide registry used by ParseDefault.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register binds name to spec, replacing any previous binding. The spec must
// normalize; registering something unusable fails here rather than at
// validation time.
func (r *Registry) Register(name string, spec Spec) error {
	if !isName(name) {
		return fmt.Errorf("%w: %q is not a valid type name", errors.ErrInvalidSpec, name)
	}

	if _, err := Normalize(spec); err != nil {
		return fmt.Errorf("registering %q: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[name] = spec

	return nil
}

// RegisterType binds name to the Primitive spec of T.
func RegisterType[T any](r *Registry, name string) error {
	return r.Register(name, Type[T]())
}

// Lookup returns the spec bound to name.
func (r *Registry) Lookup(name string) (Spec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spec, ok := r.entries[name]

	return spec, ok
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.entries))
}

func isName(name string) bool {
	if name == "" {
		return false
	}

	for i, ch := range name {
		if !isNameRune(ch) || (i == 0 && ch >= '0' && ch <= '9') {
			return false
		}
	}

	return true
}

func isNameRune(ch rune) bool {
	return ch == '_' || ch == '.' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}
