package identifier

// CanonicalID is the minimal, separator-free digit string of a validated
// identifier. The zero value is the absence of an identifier.
//
// Invariants: every byte is an ASCII digit and the length is exactly the
// canonical length of the kind it was validated as. Both hold because values
// are only produced by Canonicalize after a successful validation run.
type CanonicalID struct {
	value string
}

// String returns the raw canonical digits. Callers logging identifiers should
// prefer a masked rendering; this is the full value.
func (c CanonicalID) String() string {
	return c.value
}

// Len returns the canonical digit count.
func (c CanonicalID) Len() int {
	return len(c.value)
}

// IsZero reports whether c is the zero value rather than a validated
// identifier.
func (c CanonicalID) IsZero() bool {
	return c.value == ""
}

// LastN returns the trailing n digits, or the whole value when shorter.
// Used for redacted display forms.
func (c CanonicalID) LastN(n int) string {
	if n >= len(c.value) {
		return c.value
	}
	return c.value[len(c.value)-n:]
}

// Canonicalize merges a validated input into its canonical form. Inputs
// already in canonical form are returned as-is with no copy; separated inputs
// are merged segment by segment through a fixed-size stack buffer, costing
// exactly one allocation for the resulting string.
//
// Preconditions: Validate must have returned ValidationPassed for the same
// input and kind, with the same separator the input carries. Calling it on
// unvalidated input is a contract violation and panics.
func Canonicalize(in string, kind Kind) CanonicalID {
	s := mustSpec(kind)
	switch len(in) {
	case s.canonicalLen:
		return CanonicalID{value: in}
	case s.separatedLen():
		var buf [maxCanonicalLen]byte
		n := 0
		for _, seg := range s.segments {
			start, end := s.segmentRange(seg.name, formSeparated)
			n += copy(buf[seg.start:seg.end], in[start:end])
		}
		if n != s.canonicalLen {
			panic("identifier: Canonicalize called on unvalidated input")
		}
		return CanonicalID{value: string(buf[:n])}
	default:
		panic("identifier: Canonicalize called on unvalidated input")
	}
}
