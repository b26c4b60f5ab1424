package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esteticar/internal/core/apperror"
)

func TestTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   Status
		target Status
		ok     bool
	}{
		{"pending to paid", StatusPending, StatusPaid, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"paid to paid", StatusPaid, StatusPaid, false},
		{"paid to cancelled", StatusPaid, StatusCancelled, false},
		{"cancelled to paid", StatusCancelled, StatusPaid, false},
		{"cancelled to cancelled", StatusCancelled, StatusCancelled, false},
		{"paid to pending", StatusPaid, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.from.TransitionTo(tt.target, "sale")
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperror.IsInvalidStateTransition(err))
		})
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusPaid.Valid())
	assert.True(t, StatusCancelled.Valid())
	assert.False(t, Status("refunded").Valid())
	assert.False(t, Status("").Valid())
}

func TestMethodValid(t *testing.T) {
	assert.True(t, MethodPix.Valid())
	assert.True(t, MethodCash.Valid())
	assert.False(t, Method("check").Valid())
}
