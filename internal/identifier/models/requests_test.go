package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idcheck/internal/identifier"
	dErrors "idcheck/pkg/domain-errors"
)

func TestValidateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     ValidateRequest
		wantErr string
	}{
		{"valid", ValidateRequest{Number: "558199428", Kind: "sin"}, ""},
		{"kind is case-insensitive", ValidateRequest{Number: "558199428", Kind: " SIN "}, ""},
		{"empty number passes through to the pipeline", ValidateRequest{Kind: "sin"}, ""},
		{"missing kind", ValidateRequest{Number: "558199428"}, "kind is required"},
		{"unknown kind", ValidateRequest{Number: "558199428", Kind: "passport"}, "kind must be"},
		{"multi-char separator", ValidateRequest{Number: "558199428", Kind: "sin", Separator: "--"}, "single ASCII"},
		{"digit separator", ValidateRequest{Number: "558199428", Kind: "sin", Separator: "5"}, "must not be a digit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			req.Normalize()
			err := req.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateRequest_ParsedSeparator(t *testing.T) {
	req := ValidateRequest{Number: "558199428", Kind: "sin"}
	req.Normalize()
	require.NoError(t, req.Validate())
	assert.Equal(t, identifier.DefaultSeparator, req.ParsedSeparator())
	assert.Equal(t, identifier.KindSIN, req.ParsedKind())

	req.Separator = "."
	assert.Equal(t, byte('.'), req.ParsedSeparator())
}

func TestFormatRequest_Validate(t *testing.T) {
	t.Run("empty mask defers to the default", func(t *testing.T) {
		req := FormatRequest{Number: "558199428", Kind: "sin"}
		req.Normalize()
		require.NoError(t, req.Validate())
	})

	t.Run("whitespace-only mask is rejected", func(t *testing.T) {
		req := FormatRequest{Number: "558199428", Kind: "sin", Mask: "  \t"}
		req.Normalize()
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "whitespace-only")
	})
}

func TestCheckDigitRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		ok      bool
	}{
		{"valid payload", "55819942", true},
		{"trimmed payload", " 55819942 ", true},
		{"empty", "", false},
		{"too long", "123456789012345678", false},
		{"non-digit", "5581994x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CheckDigitRequest{Payload: tt.payload}
			req.Normalize()
			err := req.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
