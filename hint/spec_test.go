package hint

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpec_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spec Spec
		want string
	}{
		{spec: Type[int](), want: "int"},
		{spec: Type[any](), want: "any"},
		{spec: Type[error](), want: "error"},
		{spec: Type[*time.Time](), want: "*time.Time"},
		{spec: Type[[]any](), want: "[]interface {}"},
		{spec: Primitive{}, want: "nil"},
		{spec: OneOf(Type[int](), Type[string]()), want: "(int, string)"},
		{spec: OneOf(Type[int](), nil), want: "(int, <nil>)"},
		{spec: SliceOf(Type[string]()), want: "[string]"},
		{spec: SliceOf(nil), want: "[]"},
		{spec: Dict(Type[string](), SliceOf(Type[int]())), want: "dict[string, [int]]"},
		{spec: Tuple(Type[int](), Type[bool]()), want: "tuple[int, bool]"},
		{spec: NewGeneric("Mapping", Dict(nil, nil)), want: "Mapping"},
		{spec: Named("UserID", Type[int]()), want: "UserID"},
		{spec: None, want: "<unannotated>"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.spec.String())
		})
	}
}

func TestSpec_Kind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindPrimitive, Type[int]().Kind())
	assert.Equal(t, KindUnion, OneOf().Kind())
	assert.Equal(t, KindListOf, SliceOf(nil).Kind())
	assert.Equal(t, KindGeneric, Set(nil).Kind())
	assert.Equal(t, KindAlias, Named("x", nil).Kind())
	assert.Equal(t, KindUnannotated, None.Kind())
	assert.Equal(t, "list-of", KindListOf.String())
}

func TestIsAnnotated(t *testing.T) {
	t.Parallel()

	assert.False(t, IsAnnotated(nil))
	assert.False(t, IsAnnotated(None))
	assert.False(t, IsAnnotated(Unannotated{}))
	assert.True(t, IsAnnotated(Type[int]()))
	assert.True(t, IsAnnotated(OneOf()))
}

func TestTypeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "nil", TypeName(nil))
	assert.Equal(t, "any", TypeName(reflect.TypeFor[any]()))
	assert.Equal(t, "map[string]int", TypeName(reflect.TypeFor[map[string]int]()))
}

func TestContainer_Accepts(t *testing.T) {
	t.Parallel()

	type ids []int

	tests := []struct {
		container Container
		accepts   []reflect.Type
		rejects   []reflect.Type
	}{
		{
			container: ContainerList,
			accepts:   []reflect.Type{reflect.TypeFor[[]int](), reflect.TypeFor[ids](), reflect.TypeFor[[]byte]()},
			rejects:   []reflect.Type{reflect.TypeFor[[3]int](), reflect.TypeFor[string](), nil},
		},
		{
			container: ContainerTuple,
			accepts:   []reflect.Type{reflect.TypeFor[[2]string]()},
			rejects:   []reflect.Type{reflect.TypeFor[[]string]()},
		},
		{
			container: ContainerDict,
			accepts:   []reflect.Type{reflect.TypeFor[map[string]int](), reflect.TypeFor[map[int]struct{}]()},
			rejects:   []reflect.Type{reflect.TypeFor[[]int](), reflect.TypeFor[struct{}]()},
		},
		{
			container: ContainerSet,
			accepts:   []reflect.Type{reflect.TypeFor[map[int]struct{}](), reflect.TypeFor[map[string]bool]()},
			rejects:   []reflect.Type{reflect.TypeFor[map[string]int](), reflect.TypeFor[map[string]struct{ A int }]()},
		},
		{
			container: ContainerChan,
			accepts:   []reflect.Type{reflect.TypeFor[chan int](), reflect.TypeFor[<-chan string]()},
			rejects:   []reflect.Type{reflect.TypeFor[func()]()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.container.String(), func(t *testing.T) {
			t.Parallel()

			for _, typ := range tt.accepts {
				assert.True(t, tt.container.Accepts(typ), "%s should accept %s", tt.container, TypeName(typ))
			}

			for _, typ := range tt.rejects {
				assert.False(t, tt.container.Accepts(typ), "%s should reject %s", tt.container, TypeName(typ))
			}
		})
	}

	assert.False(t, Container(0).Accepts(reflect.TypeFor[[]int]()))
	assert.False(t, Container(0).Valid())
}
