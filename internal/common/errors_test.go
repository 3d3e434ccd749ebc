package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorFormatting(t *testing.T) {
	err := NewValidationError("mode", "unknown import mode: bogus")
	assert.Equal(t, "validation: unknown import mode: bogus", err.Error())
	assert.Nil(t, errors.Unwrap(err))

	cause := errors.New("no such file")
	err = NewInputError("failed to read targets", cause)
	assert.Equal(t, "input: failed to read targets (no such file)", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestIsType(t *testing.T) {
	wrapped := fmt.Errorf("startup: %w", NewConfigurationError("SUFFIX_LIST_FILE", "bad list", nil))

	assert.True(t, IsType(wrapped, ErrorTypeConfiguration))
	assert.False(t, IsType(wrapped, ErrorTypeInput))
	assert.False(t, IsType(errors.New("plain"), ErrorTypeInternal))
}
