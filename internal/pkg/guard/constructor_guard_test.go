package guard_test

import (
	"errors"
	"testing"

	"orders/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard returns nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value guard returns the given error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("command not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero value guard falls back to default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type receiver struct {
		name  string
		guard guard.ConstructorGuard
	}
	errNotConstructed := errors.New("receiver must be created via newReceiver")

	newReceiver := func(name string) (receiver, error) {
		if name == "" {
			return receiver{}, errors.New("name is required")
		}
		return receiver{name: name, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed value passes", func(t *testing.T) {
		r, err := newReceiver("Kim")

		require.NoError(t, err)
		require.NoError(t, r.guard.Validate(errNotConstructed))
	})

	t.Run("literal value fails", func(t *testing.T) {
		r := receiver{name: "Kim"}

		assert.Equal(t, errNotConstructed, r.guard.Validate(errNotConstructed))
	})
}
