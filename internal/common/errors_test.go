package common

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRecoverable(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		recoverable bool
	}{
		{"corrupt snapshot", fmt.Errorf("%w: bad json", ErrSnapshotCorrupt), true},
		{"missing snapshot", ErrNotFound, true},
		{"no suggestion", fmt.Errorf("%w: empty input", ErrNoSuggestion), true},
		{"partial response", ErrPartialResponse, true},
		{"context canceled", context.Canceled, true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"unusable storage", ErrStorageUnusable, false},
		{"missing config", ErrMissingConfig, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.recoverable, IsRecoverable(tt.err))
		})
	}
}

func TestUserError(t *testing.T) {
	t.Run("formats message with cause", func(t *testing.T) {
		err := NewUserError("semantic parsing is not configured", ErrMissingConfig)
		assert.Equal(t, "semantic parsing is not configured: missing configuration", err.Error())
		assert.ErrorIs(t, err, ErrMissingConfig)
	})

	t.Run("stands alone without cause", func(t *testing.T) {
		err := NewUserError("nothing to show yet", nil)
		assert.Equal(t, "nothing to show yet", err.Error())
	})

	t.Run("unwraps to the cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := NewUserError("something went wrong", cause)

		var userErr *UserError
		require.ErrorAs(t, err, &userErr)
		assert.Equal(t, cause, userErr.Unwrap())
	})
}
