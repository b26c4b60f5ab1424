package customer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esteticar/internal/core/apperror"
)

func TestNormalizeDocument(t *testing.T) {
	assert.Equal(t, "12345678901", NormalizeDocument("123.456.789-01"))
	assert.Equal(t, "12345678000199", NormalizeDocument("12.345.678/0001-99"))
	assert.Equal(t, "", NormalizeDocument("abc"))
}

func TestValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid cpf", func(t *testing.T) {
		c := New("Maria Silva")
		c.Document = "123.456.789-01"
		c.DocumentType = DocumentCPF
		require.NoError(t, c.Validate(ctx))
		assert.Equal(t, "12345678901", c.Document)
	})

	t.Run("valid cnpj", func(t *testing.T) {
		c := New("Oficina LTDA")
		c.Document = "12.345.678/0001-99"
		c.DocumentType = DocumentCNPJ
		require.NoError(t, c.Validate(ctx))
	})

	t.Run("cpf with wrong length", func(t *testing.T) {
		c := New("Maria Silva")
		c.Document = "12345"
		c.DocumentType = DocumentCPF
		err := c.Validate(ctx)
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("unknown document type", func(t *testing.T) {
		c := New("Maria Silva")
		c.Document = "12345678901"
		c.DocumentType = "rg"
		assert.Error(t, c.Validate(ctx))
	})

	t.Run("document optional", func(t *testing.T) {
		c := New("Maria Silva")
		assert.NoError(t, c.Validate(ctx))
	})

	t.Run("name required", func(t *testing.T) {
		c := New("")
		assert.Error(t, c.Validate(ctx))
	})

	t.Run("bad email", func(t *testing.T) {
		c := New("Maria Silva")
		c.Email = "not-an-email"
		assert.Error(t, c.Validate(ctx))
	})
}
