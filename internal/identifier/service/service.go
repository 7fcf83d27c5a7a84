// Package service orchestrates the identifier engine for the transport layer:
// it runs the pipeline, derives the success-path extras (canonical form,
// display form, issuing-state hint), and records metrics.
package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"idcheck/internal/identifier"
	"idcheck/internal/identifier/metrics"
	dErrors "idcheck/pkg/domain-errors"
)

type Service struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(opts ...Option) *Service {
	svc := &Service{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc
}

// ValidateResult carries the pipeline outcome plus the derived values that
// only exist on the success path.
type ValidateResult struct {
	Outcome      identifier.ValidationOutcome
	Canonical    identifier.CanonicalID
	Formatted    string
	IssuingState string
}

// Valid reports whether the pipeline accepted the input.
func (r *ValidateResult) Valid() bool {
	return r.Outcome.IsValid()
}

// Validate runs the pipeline and, on success, canonicalizes and renders the
// default display form. Data-validity failures are part of the result, never
// an error.
//
// Preconditions: kind is registered and sep is not a digit — the transport
// DTOs screen both before calling.
func (s *Service) Validate(ctx context.Context, number string, sep byte, kind identifier.Kind) *ValidateResult {
	start := time.Now()
	out := identifier.Validate(number, sep, kind)

	if s.metrics != nil {
		s.metrics.ObserveValidation(kind.String(), out.String(), time.Since(start))
	}

	res := &ValidateResult{Outcome: out}
	if !out.IsValid() {
		s.logger.DebugContext(ctx, "validation rejected",
			"kind", kind,
			"outcome", out.String(),
		)
		return res
	}

	res.Canonical = identifier.Canonicalize(number, kind)
	res.Formatted = identifier.Format(res.Canonical, identifier.DefaultMask(kind))
	if state, ok := identifier.IssuingState(res.Canonical, kind); ok {
		res.IssuingState = state
	}
	return res
}

// Format validates the input and renders it through the given mask, falling
// back to the kind's default mask when mask is empty.
//
// Errors: CodeValidation carrying the outcome name when the number does not
// validate. A whitespace-only mask must be rejected by the caller before this
// point; it would violate the formatter's contract.
func (s *Service) Format(ctx context.Context, number string, sep byte, kind identifier.Kind, mask string) (string, error) {
	out := identifier.Validate(number, sep, kind)
	if !out.IsValid() {
		return "", dErrors.New(dErrors.CodeValidation, out.String())
	}

	if mask == "" {
		mask = identifier.DefaultMask(kind)
	}

	if s.metrics != nil {
		s.metrics.IncrementFormats()
	}

	return identifier.Format(identifier.Canonicalize(number, kind), mask), nil
}

// CheckDigit derives the Luhn check digit for a digits-only payload.
//
// Preconditions: payload is non-empty ASCII digits — the transport DTO
// screens it. The core panics on anything else.
func (s *Service) CheckDigit(ctx context.Context, payload string) string {
	return string(identifier.ComputeCheckDigit(payload))
}
