package vehicle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esteticar/internal/core/id"
)

func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "ABC1234", NormalizePlate(" abc-1234 "))
	assert.Equal(t, "ABC1D23", NormalizePlate("abc1d23"))
	assert.Equal(t, "ABC1234", NormalizePlate("ABC 1234"))
}

func TestValidate(t *testing.T) {
	ctx := context.Background()
	owner := id.New()

	t.Run("legacy plate", func(t *testing.T) {
		v := New(owner, "abc-1234")
		v.Brand = "Fiat"
		v.Model = "Uno"
		require.NoError(t, v.Validate(ctx))
		assert.Equal(t, "ABC1234", v.LicensePlate)
		assert.Equal(t, "Fiat Uno (ABC1234)", v.Name)
	})

	t.Run("mercosul plate", func(t *testing.T) {
		v := New(owner, "BRA2E19")
		assert.NoError(t, v.Validate(ctx))
	})

	t.Run("invalid plate", func(t *testing.T) {
		v := New(owner, "123ABCD")
		assert.Error(t, v.Validate(ctx))
	})

	t.Run("missing customer", func(t *testing.T) {
		v := New(id.Nil(), "ABC1234")
		assert.Error(t, v.Validate(ctx))
	})

	t.Run("year out of range", func(t *testing.T) {
		v := New(owner, "ABC1234")
		v.Year = 1850
		assert.Error(t, v.Validate(ctx))
	})

	t.Run("zero year accepted", func(t *testing.T) {
		v := New(owner, "ABC1234")
		assert.NoError(t, v.Validate(ctx))
	})

	t.Run("name falls back to plate", func(t *testing.T) {
		v := New(owner, "ABC1234")
		require.NoError(t, v.Validate(ctx))
		assert.Equal(t, "ABC1234", v.Name)
	})
}
