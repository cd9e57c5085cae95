package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError(t *testing.T) {
	err := NewUserError("user ID is required", ErrMissingConfig)

	assert.Equal(t, "user ID is required: missing configuration", err.Error())
	assert.True(t, errors.Is(err, ErrMissingConfig))

	var userErr *UserError
	require.True(t, errors.As(err, &userErr))
	assert.Equal(t, "user ID is required", userErr.UserMessage)
}

func TestUserErrorWithoutCause(t *testing.T) {
	err := &UserError{UserMessage: "nothing to import"}

	assert.Equal(t, "nothing to import", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
