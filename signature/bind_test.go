package signature

import (
	"testing"

	"github.com/amp-labs/strict-hint/errors"
	"github.com/amp-labs/strict-hint/hint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindTarget() Signature {
	return Signature{
		Name: "Handler.func1",
		Params: []Param{
			{Name: "r", Spec: hint.Type[int]()},
			{Name: "s", Spec: hint.Type[string](), Default: DefaultOf("x")},
			{Name: "rest", Spec: hint.SliceOf(hint.Type[any]()), Variadic: true},
		},
	}
}

func TestBind(t *testing.T) {
	t.Parallel()

	t.Run("positional in declaration order", func(t *testing.T) {
		t.Parallel()

		args, err := bindTarget().Bind([]any{1, "a", true, 2.5}, nil)
		require.NoError(t, err)

		assert.Equal(t, []any{1, "a", []any{true, 2.5}}, args.Values())
		assert.True(t, args.Supplied("s"))
	})

	t.Run("defaults fill gaps", func(t *testing.T) {
		t.Parallel()

		args, err := bindTarget().Bind([]any{1}, nil)
		require.NoError(t, err)

		assert.False(t, args.Supplied("s"))
		assert.True(t, args.Supplied("rest"))

		s, ok := args.Get("s")
		require.True(t, ok)
		assert.Equal(t, "x", s)
		assert.Equal(t, []any{1, "x", []any{}}, args.Values())
	})

	t.Run("keywords", func(t *testing.T) {
		t.Parallel()

		args, err := bindTarget().Bind(nil, map[string]any{"s": "b", "r": 7})
		require.NoError(t, err)
		assert.Equal(t, []any{7, "b", []any{}}, args.Values())
	})

	t.Run("unknown names", func(t *testing.T) {
		t.Parallel()

		args, err := bindTarget().Bind([]any{1}, nil)
		require.NoError(t, err)

		_, ok := args.Get("missing")
		assert.False(t, ok)
		assert.False(t, args.Supplied("missing"))
		assert.Equal(t, "Handler.func1", args.Signature().Name)
	})

	t.Run("supplied nil is not a default", func(t *testing.T) {
		t.Parallel()

		args, err := bindTarget().Bind([]any{nil, nil}, nil)
		require.NoError(t, err)

		s, ok := args.Get("s")
		require.True(t, ok)
		assert.Nil(t, s)
	})
}

func TestBind_Errors(t *testing.T) {
	t.Parallel()

	fixed := Signature{
		Name: "f",
		Params: []Param{
			{Name: "r", Spec: hint.Type[int]()},
			{Name: "s", Spec: hint.Type[int]()},
		},
	}

	tests := []struct {
		name       string
		sig        Signature
		positional []any
		keyword    map[string]any
		want       error
		message    string
	}{
		{
			name:       "too many positionals",
			sig:        fixed,
			positional: []any{1, 2, 3},
			want:       errors.ErrTooManyArguments,
			message:    "too many arguments: f takes 2 positional arguments but 3 were given",
		},
		{
			name:    "all missing reported together",
			sig:     fixed,
			want:    errors.ErrMissingArgument,
			message: "missing required argument: f: r, s",
		},
		{
			name:    "unknown keyword",
			sig:     fixed,
			keyword: map[string]any{"r": 1, "s": 2, "t": 3},
			want:    errors.ErrUnexpectedKeyword,
			message: `unexpected keyword argument: f got an unexpected keyword argument "t"`,
		},
		{
			name:       "variadic by keyword",
			sig:        bindTarget(),
			positional: []any{1},
			keyword:    map[string]any{"rest": []any{}},
			want:       errors.ErrUnexpectedKeyword,
		},
		{
			name:       "positional and keyword for the same parameter",
			sig:        fixed,
			positional: []any{1, 2},
			keyword:    map[string]any{"r": 1},
			want:       errors.ErrDuplicateArgument,
			message:    `multiple values for argument: f got multiple values for argument "r"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.sig.Bind(tt.positional, tt.keyword)
			require.ErrorIs(t, err, tt.want)

			if tt.message != "" {
				assert.EqualError(t, err, tt.message)
			}
		})
	}
}

func TestBindExact(t *testing.T) {
	t.Parallel()

	sig := bindTarget()

	args, err := sig.BindExact([]any{1, "a", []any{true}})
	require.NoError(t, err)
	assert.Equal(t, []any{1, "a", []any{true}}, args.Values())

	_, err = sig.BindExact([]any{1, "a", nil, nil})
	require.ErrorIs(t, err, errors.ErrTooManyArguments)

	_, err = sig.BindExact([]any{1})
	require.ErrorIs(t, err, errors.ErrMissingArgument)
}
