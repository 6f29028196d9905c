package hint

import (
	"io"
	"reflect"
	"testing"

	"github.com/amp-labs/strict-hint/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userID int

func TestNormalize(t *testing.T) {
	t.Parallel()

	intType := reflect.TypeFor[int]()
	strType := reflect.TypeFor[string]()

	tests := []struct {
		name       string
		spec       Spec
		types      []reflect.Type
		containers []Container
	}{
		{
			name:  "primitive",
			spec:  Type[int](),
			types: []reflect.Type{intType},
		},
		{
			name:  "interface primitive",
			spec:  Type[io.Reader](),
			types: []reflect.Type{reflect.TypeFor[io.Reader]()},
		},
		{
			name:  "union keeps member order",
			spec:  OneOf(Type[string](), Type[int]()),
			types: []reflect.Type{strType, intType},
		},
		{
			name:       "union with containers and duplicates",
			spec:       OneOf(Type[int](), SliceOf(Type[string]()), Type[int](), Dict(Type[string](), Type[int]())),
			types:      []reflect.Type{intType},
			containers: []Container{ContainerList, ContainerDict},
		},
		{
			name:  "nested unions flatten",
			spec:  OneOf(Type[int](), OneOf(Type[string](), Type[int]())),
			types: []reflect.Type{intType, strType},
		},
		{
			name:       "list-of ignores element",
			spec:       SliceOf(Type[int]()),
			containers: []Container{ContainerList},
		},
		{
			name:       "list-of without element",
			spec:       SliceOf(nil),
			containers: []Container{ContainerList},
		},
		{
			name:       "generic dict",
			spec:       Dict(Type[string](), Type[int]()),
			containers: []Container{ContainerDict},
		},
		{
			name:       "generic alias of a generic",
			spec:       NewGeneric("Mapping", Dict(nil, nil), Type[string](), Type[int]()),
			containers: []Container{ContainerDict},
		},
		{
			name:       "parameterized generic alias",
			spec:       NewGeneric("Pairs", NewGeneric("Seq", List(nil))).With(Type[int]()),
			containers: []Container{ContainerList},
		},
		{
			name:  "alias matches its target",
			spec:  Named("UserID", Type[userID]()),
			types: []reflect.Type{reflect.TypeFor[userID]()},
		},
		{
			name:  "alias of alias",
			spec:  Named("Outer", Named("Inner", Type[string]())),
			types: []reflect.Type{strType},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := Normalize(tt.spec)
			require.NoError(t, err)

			assert.Equal(t, tt.types, m.Types())
			assert.Equal(t, tt.containers, m.Containers())
		})
	}
}

func TestNormalize_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec Spec
	}{
		{name: "nil spec", spec: nil},
		{name: "unannotated", spec: None},
		{name: "primitive without type", spec: Primitive{}},
		{name: "empty union", spec: OneOf()},
		{name: "union with nil member", spec: OneOf(Type[int](), nil)},
		{name: "union with unannotated member", spec: OneOf(Type[int](), None)},
		{name: "alias without target", spec: Named("Broken", nil)},
		{name: "alias of broken spec", spec: Named("Broken", Primitive{})},
		{name: "generic without origin", spec: NewGeneric("Thing", nil, Type[int]())},
		{name: "generic with invalid container", spec: NewGeneric("Thing", Container(42))},
		{name: "generic whose origin chain ends nowhere", spec: NewGeneric("A", NewGeneric("B", nil))},
		{name: "pointer variant", spec: &Primitive{Type: reflect.TypeFor[int]()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Normalize(tt.spec)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrNormalization)
		})
	}
}

func TestGeneric_Concrete_DeepChain(t *testing.T) {
	t.Parallel()

	var origin Origin = ContainerSet
	for range maxOriginDepth - 1 {
		origin = NewGeneric("layer", origin)
	}

	c, err := NewGeneric("top", origin).Concrete()
	require.NoError(t, err)
	assert.Equal(t, ContainerSet, c)

	_, err = NewGeneric("too-deep", NewGeneric("layer", origin)).Concrete()
	require.ErrorIs(t, err, errors.ErrNormalization)
}

func TestMatcher_IsUnion(t *testing.T) {
	t.Parallel()

	single, err := Normalize(Type[int]())
	require.NoError(t, err)
	assert.False(t, single.IsUnion())

	union, err := Normalize(OneOf(Type[int](), SliceOf(nil)))
	require.NoError(t, err)
	assert.True(t, union.IsUnion())

	collapsed, err := Normalize(OneOf(Type[int](), Type[int]()))
	require.NoError(t, err)
	assert.False(t, collapsed.IsUnion())
}

func TestNormalize_Deterministic(t *testing.T) {
	t.Parallel()

	spec := OneOf(Type[string](), Dict(nil, nil), Type[int](), SliceOf(nil))

	first, err := Normalize(spec)
	require.NoError(t, err)

	for range 10 {
		again, err := Normalize(spec)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
