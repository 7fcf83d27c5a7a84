package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"idcheck/internal/identifier"
	dErrors "idcheck/pkg/domain-errors"
)

// =============================================================================
// Identifier Service Test Suite
// =============================================================================
// Justification for unit tests: the service layer owns the success-path
// derivations (canonical form, display form, issuing-state hint) and the
// data-failure-as-value vs error split, which the engine tests don't cover.

type IdentifierServiceSuite struct {
	suite.Suite
	service *Service
}

func TestIdentifierServiceSuite(t *testing.T) {
	suite.Run(t, new(IdentifierServiceSuite))
}

func (s *IdentifierServiceSuite) SetupTest() {
	s.service = New()
}

func (s *IdentifierServiceSuite) TestValidate() {
	ctx := context.Background()

	s.Run("valid separated SIN yields derived values", func() {
		res := s.service.Validate(ctx, "558-199-428", identifier.DefaultSeparator, identifier.KindSIN)
		s.True(res.Valid())
		s.Equal("558199428", res.Canonical.String())
		s.Equal("558-199-428", res.Formatted)
		s.Empty(res.IssuingState)
	})

	s.Run("valid SSN includes issuing state hint", func() {
		res := s.service.Validate(ctx, "050221234", identifier.DefaultSeparator, identifier.KindSSN)
		s.True(res.Valid())
		s.Equal("050-22-1234", res.Formatted)
		s.Equal("NY", res.IssuingState)
	})

	s.Run("rejected input carries outcome and no derived values", func() {
		res := s.service.Validate(ctx, "558299428", identifier.DefaultSeparator, identifier.KindSIN)
		s.False(res.Valid())
		s.Equal(identifier.InvalidCheckDigit, res.Outcome)
		s.True(res.Canonical.IsZero())
		s.Empty(res.Formatted)
	})

	s.Run("custom separator is honored", func() {
		res := s.service.Validate(ctx, "558.199.428", '.', identifier.KindSIN)
		s.True(res.Valid())
		s.Equal("558199428", res.Canonical.String())
	})
}

func (s *IdentifierServiceSuite) TestFormat() {
	ctx := context.Background()

	s.Run("default mask when none supplied", func() {
		out, err := s.service.Format(ctx, "536221234", identifier.DefaultSeparator, identifier.KindSSN, "")
		s.NoError(err)
		s.Equal("536-22-1234", out)
	})

	s.Run("custom mask", func() {
		out, err := s.service.Format(ctx, "558199428", identifier.DefaultSeparator, identifier.KindSIN, "###.###.###")
		s.NoError(err)
		s.Equal("558.199.428", out)
	})

	s.Run("invalid number returns validation error with outcome name", func() {
		_, err := s.service.Format(ctx, "55819942", identifier.DefaultSeparator, identifier.KindSIN, "")
		s.Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Contains(err.Error(), "invalid_length")
	})
}

func (s *IdentifierServiceSuite) TestCheckDigit() {
	ctx := context.Background()
	s.Equal("8", s.service.CheckDigit(ctx, "55819942"))
	s.Equal("0", s.service.CheckDigit(ctx, "12345679"))
}
