package employee

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esteticar/internal/core/types"
)

func TestValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		e := New("João Pereira", "detailer")
		e.Salary = types.MustMoney("2500.00")
		assert.NoError(t, e.Validate(ctx))
	})

	t.Run("negative salary", func(t *testing.T) {
		e := New("João Pereira", "detailer")
		e.Salary = types.MustMoney("-1")
		assert.Error(t, e.Validate(ctx))
	})

	t.Run("dismissed but still active", func(t *testing.T) {
		e := New("João Pereira", "detailer")
		d := time.Now().UTC()
		e.DismissalDate = &d
		// Active flag left true on purpose.
		assert.Error(t, e.Validate(ctx))
	})

	t.Run("dismissal before admission", func(t *testing.T) {
		e := New("João Pereira", "detailer")
		d := e.AdmissionDate.AddDate(0, 0, -1)
		e.Dismiss(d)
		assert.Error(t, e.Validate(ctx))
	})
}

func TestDismiss(t *testing.T) {
	e := New("João Pereira", "detailer")
	require.True(t, e.Active)

	when := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	e.Dismiss(when)

	assert.False(t, e.Active)
	require.NotNil(t, e.DismissalDate)
	assert.Equal(t, when, *e.DismissalDate)
	assert.NoError(t, e.Validate(context.Background()))
}
