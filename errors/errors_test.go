package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errFirst  = errors.New("first")  //nolint:err113
	errSecond = errors.New("second") //nolint:err113
	errCause  = errors.New("cause")  //nolint:err113
)

func TestCollectionAdd(t *testing.T) {
	t.Parallel()

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Equal(t, 0, c.Len())
		assert.NoError(t, c.GetError())
	})

	t.Run("keeps non-nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errFirst)
		c.Add(nil)
		c.Add(errSecond)

		assert.True(t, c.HasError())
		assert.Equal(t, 2, c.Len())
	})
}

func TestCollectionGetError(t *testing.T) {
	t.Parallel()

	t.Run("single error is returned as is", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errFirst)

		assert.Same(t, errFirst, c.GetError()) //nolint:testifylint
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errFirst)
		c.Add(errSecond)

		err := c.GetError()
		require.Error(t, err)
		require.ErrorIs(t, err, errFirst)
		require.ErrorIs(t, err, errSecond)
	})
}

func TestCollectionWrap(t *testing.T) {
	t.Parallel()

	t.Run("nil cause and no errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		assert.NoError(t, c.Wrap(nil))
	})

	t.Run("cause only", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		assert.Equal(t, errCause, c.Wrap(errCause))
	})

	t.Run("cause and recorded errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errFirst)

		err := c.Wrap(errCause)
		require.ErrorIs(t, err, errCause)
		require.ErrorIs(t, err, errFirst)
	})

	t.Run("nil cause with recorded errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errSecond)

		require.ErrorIs(t, c.Wrap(nil), errSecond)
	})
}
