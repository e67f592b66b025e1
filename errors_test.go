package astrochart

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	t.Run("Message", func(t *testing.T) {
		err := objectNotSupported(Moon)
		assert.Equal(t, "[OBJECT_NOT_SUPPORTED] Moon not supported in this chart map[object:Moon]", err.Error())
	})

	t.Run("Wrapped", func(t *testing.T) {
		cause := errors.New("socket closed")
		err := providerFailure("remote", "ayanamsa", cause)
		assert.Equal(t, "[PROVIDER_FAILURE] ayanamsa failed: socket closed map[provider:remote]", err.Error())
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, ErrProviderFailure)
		assert.NotErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("IsCode", func(t *testing.T) {
		err := fmt.Errorf("query: %w", housesUnavailable("SignOfHouse"))
		assert.True(t, IsCode(err, CodeHousesUnavailable))
		assert.False(t, IsCode(err, CodeObjectNotSupported))
		assert.False(t, IsCode(errors.New("plain"), CodeHousesUnavailable))
		assert.ErrorIs(t, err, ErrHousesUnavailable)
	})

	t.Run("WithContextCopies", func(t *testing.T) {
		err := ErrHousesUnavailable.WithContext("op", "SignOfHouse")
		assert.Equal(t, map[string]any{"op": "SignOfHouse"}, err.Context)
		assert.Nil(t, ErrHousesUnavailable.Context)
		assert.ErrorIs(t, err, ErrHousesUnavailable)

		base := objectNotSupported(Moon)
		more := base.WithContext(CtxOperation, "SignOf")
		assert.Len(t, base.Context, 1)
		assert.Len(t, more.Context, 2)
	})

	t.Run("SentinelsAreDistinct", func(t *testing.T) {
		sentinels := []error{ErrObjectNotSupported, ErrHousesUnavailable, ErrProviderFailure, ErrInvalidInput}
		for i, a := range sentinels {
			for j, b := range sentinels {
				assert.Equal(t, i == j, errors.Is(a, b))
			}
		}
	})
}
