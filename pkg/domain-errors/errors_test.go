package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndCodeOf(t *testing.T) {
	err := New(CodeValidation, "invalid_check_digit")
	require.Error(t, err)
	assert.Equal(t, CodeValidation, CodeOf(err))
	assert.Equal(t, "invalid_check_digit", MessageOf(err))
	assert.Contains(t, err.Error(), "validation_error")
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, CodeInternal, "operation failed")

	assert.True(t, errors.Is(err, cause))
	assert.True(t, HasCode(err, CodeInternal))
	assert.Equal(t, CodeInternal, CodeOf(err))
}

func TestHasCode_WalksChain(t *testing.T) {
	inner := New(CodeValidation, "bad value")
	outer := Wrap(inner, CodeInternal, "request failed")

	assert.True(t, HasCode(outer, CodeInternal))
	assert.True(t, HasCode(outer, CodeValidation))
	assert.False(t, HasCode(outer, CodeNotFound))

	// fmt wrapping must not break code detection.
	wrapped := fmt.Errorf("context: %w", inner)
	assert.True(t, HasCode(wrapped, CodeValidation))
	assert.True(t, Is(wrapped, CodeValidation))
}

func TestCodeOf_UncodedDefaultsToInternal(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
	assert.Equal(t, "", MessageOf(errors.New("plain")))
}
