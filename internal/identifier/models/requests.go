package models

import (
	"strings"

	"github.com/asaskevich/govalidator"

	"idcheck/internal/identifier"
	dErrors "idcheck/pkg/domain-errors"
)

// maxNumberLen caps raw input well above any separated form so oversized
// payloads are rejected before the pipeline sees them.
const maxNumberLen = 64

// ValidateRequest asks for a full pipeline run on a raw identifier string.
// Number is deliberately not normalized: whitespace and length are part of
// what the pipeline judges.
type ValidateRequest struct {
	Number    string `json:"number"`
	Kind      string `json:"kind"`
	Separator string `json:"separator,omitempty"`
}

func (r *ValidateRequest) Normalize() {
	if r == nil {
		return
	}
	r.Kind = strings.TrimSpace(strings.ToLower(r.Kind))
}

// Follows validation order: Size -> Required -> Syntax -> Semantic.
// Data-validity of Number itself is the pipeline's job, not this DTO's; only
// caller configuration (kind, separator) is screened here.
func (r *ValidateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}

	if len(r.Number) > maxNumberLen {
		return dErrors.New(dErrors.CodeValidation, "number must be 64 characters or less")
	}

	if r.Kind == "" {
		return dErrors.New(dErrors.CodeValidation, "kind is required")
	}
	if _, ok := identifier.ParseKind(r.Kind); !ok {
		return dErrors.New(dErrors.CodeValidation, "kind must be 'ssn', 'sin', or 'curp'")
	}

	return validateSeparator(r.Separator)
}

// ParsedKind returns the kind; call only after Validate.
func (r *ValidateRequest) ParsedKind() identifier.Kind {
	k, _ := identifier.ParseKind(r.Kind)
	return k
}

// ParsedSeparator returns the separator byte, defaulting when unset; call
// only after Validate.
func (r *ValidateRequest) ParsedSeparator() byte {
	if r.Separator == "" {
		return identifier.DefaultSeparator
	}
	return r.Separator[0]
}

// FormatRequest asks for a display rendering of an identifier, optionally
// with a caller-supplied mask template.
type FormatRequest struct {
	Number    string `json:"number"`
	Kind      string `json:"kind"`
	Separator string `json:"separator,omitempty"`
	Mask      string `json:"mask,omitempty"`
}

func (r *FormatRequest) Normalize() {
	if r == nil {
		return
	}
	r.Kind = strings.TrimSpace(strings.ToLower(r.Kind))
}

func (r *FormatRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}

	if len(r.Number) > maxNumberLen {
		return dErrors.New(dErrors.CodeValidation, "number must be 64 characters or less")
	}
	if len(r.Mask) > 128 {
		return dErrors.New(dErrors.CodeValidation, "mask must be 128 characters or less")
	}

	if r.Kind == "" {
		return dErrors.New(dErrors.CodeValidation, "kind is required")
	}
	if _, ok := identifier.ParseKind(r.Kind); !ok {
		return dErrors.New(dErrors.CodeValidation, "kind must be 'ssn', 'sin', or 'curp'")
	}

	// A blank mask is a contract violation in the core; screen untrusted
	// templates here so they surface as a 400, not a panic.
	if r.Mask != "" && !identifier.ValidMask(r.Mask) {
		return dErrors.New(dErrors.CodeValidation, "mask must not be whitespace-only")
	}

	return validateSeparator(r.Separator)
}

func (r *FormatRequest) ParsedKind() identifier.Kind {
	k, _ := identifier.ParseKind(r.Kind)
	return k
}

func (r *FormatRequest) ParsedSeparator() byte {
	if r.Separator == "" {
		return identifier.DefaultSeparator
	}
	return r.Separator[0]
}

// CheckDigitRequest asks for the Luhn check digit of a digits-only payload.
type CheckDigitRequest struct {
	Payload string `json:"payload"`
}

func (r *CheckDigitRequest) Normalize() {
	if r == nil {
		return
	}
	r.Payload = strings.TrimSpace(r.Payload)
}

func (r *CheckDigitRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}

	if !govalidator.StringLength(r.Payload, "1", "17") {
		return dErrors.New(dErrors.CodeValidation, "payload must be 1 to 17 digits")
	}
	// The core treats a non-digit payload as caller misuse; screen it here.
	if !govalidator.IsNumeric(r.Payload) {
		return dErrors.New(dErrors.CodeValidation, "payload must contain only digits")
	}

	return nil
}

// validateSeparator screens the caller-supplied separator before it can trip
// the core's digit-separator contract panic.
func validateSeparator(sep string) error {
	if sep == "" {
		return nil
	}
	if len(sep) != 1 {
		return dErrors.New(dErrors.CodeValidation, "separator must be a single ASCII character")
	}
	if sep[0] >= '0' && sep[0] <= '9' {
		return dErrors.New(dErrors.CodeValidation, "separator must not be a digit")
	}
	return nil
}
