// Package domain defines the identifier value objects the rest of the system
// passes around. Each type wraps a validated canonical value from the core
// engine; constructing one any way other than its Parse function bypasses
// validation and is a bug.
//
// Domain purity: no I/O, no context.Context, no clock access.
package domain

import (
	"idcheck/internal/identifier"
	dErrors "idcheck/pkg/domain-errors"
)

// SSN is a validated US Social Security number.
type SSN struct {
	canonical identifier.CanonicalID
}

// SIN is a validated Canadian Social Insurance number.
type SIN struct {
	canonical identifier.CanonicalID
}

// CURP is a structurally validated CURP in numeric canonical form. No
// check-digit verification is performed; none is published for this kind.
type CURP struct {
	canonical identifier.CanonicalID
}

// ParseSSN constructs an SSN from external input, accepting canonical or
// '-'-separated form.
//
// Errors: CodeValidation carrying the pipeline outcome name; nothing else.
func ParseSSN(input string) (SSN, error) {
	c, err := parse(input, identifier.KindSSN)
	if err != nil {
		return SSN{}, err
	}
	return SSN{canonical: c}, nil
}

// ParseSIN constructs a SIN from external input, accepting canonical or
// '-'-separated form.
func ParseSIN(input string) (SIN, error) {
	c, err := parse(input, identifier.KindSIN)
	if err != nil {
		return SIN{}, err
	}
	return SIN{canonical: c}, nil
}

// ParseCURP constructs a CURP from external input.
func ParseCURP(input string) (CURP, error) {
	c, err := parse(input, identifier.KindCURP)
	if err != nil {
		return CURP{}, err
	}
	return CURP{canonical: c}, nil
}

func parse(input string, kind identifier.Kind) (identifier.CanonicalID, error) {
	out := identifier.Validate(input, identifier.DefaultSeparator, kind)
	if !out.IsValid() {
		return identifier.CanonicalID{}, dErrors.New(dErrors.CodeValidation, out.String())
	}
	return identifier.Canonicalize(input, kind), nil
}

// CanonicalString returns the minimal digit form. Conversion is explicit by
// design; these types have no implicit string form.
func (s SSN) CanonicalString() string  { return s.canonical.String() }
func (s SIN) CanonicalString() string  { return s.canonical.String() }
func (c CURP) CanonicalString() string { return c.canonical.String() }

// IsZero reports whether the value was never parsed.
func (s SSN) IsZero() bool  { return s.canonical.IsZero() }
func (s SIN) IsZero() bool  { return s.canonical.IsZero() }
func (c CURP) IsZero() bool { return c.canonical.IsZero() }

// Formatted renders the default display form for the kind.
func (s SSN) Formatted() string {
	return identifier.Format(s.canonical, identifier.DefaultMask(identifier.KindSSN))
}

func (s SIN) Formatted() string {
	return identifier.Format(s.canonical, identifier.DefaultMask(identifier.KindSIN))
}

func (c CURP) Formatted() string {
	return identifier.Format(c.canonical, identifier.DefaultMask(identifier.KindCURP))
}

// Masked renders a redacted display form showing only the trailing digits.
// This is the only form that may appear in logs.
func (s SSN) Masked() string  { return masked(s.canonical) }
func (s SIN) Masked() string  { return masked(s.canonical) }
func (c CURP) Masked() string { return masked(c.canonical) }

// IssuingState returns the state hint for the SSN's area band, when the band
// was geographically allocated.
func (s SSN) IssuingState() (string, bool) {
	return identifier.IssuingState(s.canonical, identifier.KindSSN)
}

func masked(c identifier.CanonicalID) string {
	if c.IsZero() {
		return ""
	}
	tail := c.LastN(4)
	stars := c.Len() - len(tail)
	buf := make([]byte, 0, c.Len())
	for i := 0; i < stars; i++ {
		buf = append(buf, '*')
	}
	return string(append(buf, tail...))
}
