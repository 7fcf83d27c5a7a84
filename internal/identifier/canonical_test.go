package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	t.Run("canonical input is returned unchanged", func(t *testing.T) {
		c := Canonicalize("558199428", KindSIN)
		assert.Equal(t, "558199428", c.String())
	})

	t.Run("separated SIN merges segments in order", func(t *testing.T) {
		c := Canonicalize("558-199-428", KindSIN)
		assert.Equal(t, "558199428", c.String())
	})

	t.Run("separated SSN merges segments in order", func(t *testing.T) {
		c := Canonicalize("536-22-1234", KindSSN)
		assert.Equal(t, "536221234", c.String())
	})

	t.Run("unvalidated length panics", func(t *testing.T) {
		require.Panics(t, func() {
			Canonicalize("5581", KindSIN)
		})
	})
}

// TestCanonicalize_TotalOnSuccessPath: every input that validates must
// canonicalize to exactly the canonical length with only ASCII digits.
func TestCanonicalize_TotalOnSuccessPath(t *testing.T) {
	inputs := map[Kind][]string{
		KindSIN:  {"558199428", "558-199-428", "123456790", "123-456-790"},
		KindSSN:  {"536221234", "536-22-1234"},
		KindCURP: {"123456789012345678"},
	}

	for kind, values := range inputs {
		for _, in := range values {
			require.Equal(t, ValidationPassed, Validate(in, DefaultSeparator, kind), "input %q", in)
			c := Canonicalize(in, kind)
			assert.Equal(t, CanonicalLength(kind), c.Len(), "input %q", in)
			for i := 0; i < c.Len(); i++ {
				assert.True(t, c.String()[i] >= '0' && c.String()[i] <= '9', "input %q position %d", in, i)
			}
		}
	}
}

// TestRoundTrip: formatting a canonical value with its kind's default mask and
// canonicalizing the result must reproduce the original value.
func TestRoundTrip(t *testing.T) {
	cases := []struct {
		kind  Kind
		value string
	}{
		{KindSIN, "558199428"},
		{KindSIN, "123456790"},
		{KindSSN, "536221234"},
		{KindCURP, "123456789012345678"},
	}

	for _, tc := range cases {
		c := Canonicalize(tc.value, tc.kind)
		formatted := Format(c, DefaultMask(tc.kind))
		require.Equal(t, ValidationPassed, Validate(formatted, DefaultSeparator, tc.kind), "formatted %q", formatted)
		assert.Equal(t, c, Canonicalize(formatted, tc.kind), "formatted %q", formatted)
	}
}

func TestCanonicalID_Accessors(t *testing.T) {
	c := Canonicalize("558199428", KindSIN)
	assert.Equal(t, 9, c.Len())
	assert.False(t, c.IsZero())
	assert.Equal(t, "9428", c.LastN(4))
	assert.Equal(t, "558199428", c.LastN(40))

	var zero CanonicalID
	assert.True(t, zero.IsZero())
}
