package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssuingState(t *testing.T) {
	tests := []struct {
		name  string
		value string
		kind  Kind
		want  string
		ok    bool
	}{
		{"new hampshire band", "001221234", KindSSN, "NH", true},
		{"new york band", "090221234", KindSSN, "NY", true},
		{"california band", "545221234", KindSSN, "CA", true},
		{"unallocated band", "750221234", KindSSN, "", false},
		{"non-ssn kind", "558199428", KindSIN, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, ok := IssuingState(CanonicalID{value: tt.value}, tt.kind)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, state)
		})
	}
}
