package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("adds non-nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errors.New("error 1")) //nolint:err113
		c.Add(errors.New("error 2")) //nolint:err113

		assert.True(t, c.HasError())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Zero(t, c.Len())
	})
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when empty", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		assert.NoError(t, c.GetError())
	})

	t.Run("returns single error unchanged", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		err := fmt.Errorf("%w: r", ErrMissingArgument)
		c.Add(err)

		assert.Equal(t, err, c.GetError())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(fmt.Errorf("%w: a", ErrInvalidSignature))
		c.Add(fmt.Errorf("%w: b", ErrNormalization))

		err := c.GetError()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrInvalidSignature)
		require.ErrorIs(t, err, ErrNormalization)
		assert.Contains(t, err.Error(), "a")
		assert.Contains(t, err.Error(), "b")
	})

	t.Run("returns nil after clear", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(ErrUnknownType)
		c.Clear()

		assert.NoError(t, c.GetError())
		assert.False(t, c.HasError())
	})
}
