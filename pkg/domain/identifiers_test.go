package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "idcheck/pkg/domain-errors"
)

// TestParse_Invariants validates the parsing invariant: a shell value exists
// only for input the pipeline accepted, and always in canonical form.
func TestParse_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseSIN("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("rejects bad check digit with outcome message", func(t *testing.T) {
		_, err := ParseSIN("558299428")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid_check_digit")
	})

	t.Run("accepts separated form and canonicalizes", func(t *testing.T) {
		sin, err := ParseSIN("558-199-428")
		require.NoError(t, err)
		assert.Equal(t, "558199428", sin.CanonicalString())
	})

	t.Run("rejects excluded area number", func(t *testing.T) {
		_, err := ParseSSN("666-22-1234")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid_area_number")
	})

	t.Run("accepts structurally valid CURP", func(t *testing.T) {
		curp, err := ParseCURP("123456789012345678")
		require.NoError(t, err)
		assert.Equal(t, "123456789012345678", curp.CanonicalString())
	})
}

func TestFormatted(t *testing.T) {
	sin, err := ParseSIN("558199428")
	require.NoError(t, err)
	assert.Equal(t, "558-199-428", sin.Formatted())

	ssn, err := ParseSSN("536221234")
	require.NoError(t, err)
	assert.Equal(t, "536-22-1234", ssn.Formatted())
}

// TestMasked pins the log-safe rendering: everything but the last four digits
// is starred out.
func TestMasked(t *testing.T) {
	sin, err := ParseSIN("558199428")
	require.NoError(t, err)
	assert.Equal(t, "*****9428", sin.Masked())

	var zero SIN
	assert.Equal(t, "", zero.Masked())
	assert.True(t, zero.IsZero())
}

func TestSSN_IssuingState(t *testing.T) {
	ssn, err := ParseSSN("050-22-1234")
	require.NoError(t, err)
	state, ok := ssn.IssuingState()
	assert.True(t, ok)
	assert.Equal(t, "NY", state)
}
