package identifier

// form distinguishes the two accepted input shapes.
type form int

const (
	// formCanonical is the minimal digits-only shape.
	formCanonical form = iota
	// formSeparated is the canonical shape plus separator characters at the
	// kind's required positions.
	formSeparated
)

// classify decides which of the two accepted shapes the input is in and, for
// separated inputs, verifies the separator character at every required
// position. Length is checked before separator placement so an input that is
// both the wrong length and badly separated reports InvalidLength.
func classify(in string, sep byte, s *spec) (form, ValidationOutcome) {
	switch len(in) {
	case s.canonicalLen:
		return formCanonical, ValidationPassed
	case s.separatedLen():
		if len(s.separators) == 0 {
			// Kinds without separator positions only accept canonical length,
			// which the first case already handled.
			return formCanonical, InvalidLength
		}
		for _, p := range s.separators {
			if in[p] != sep {
				return formSeparated, InvalidSeparatorEncountered
			}
		}
		return formSeparated, ValidationPassed
	default:
		return formCanonical, InvalidLength
	}
}

// mustSeparator enforces the entry-point precondition that the separator
// character is not itself a digit. A digit separator would make classification
// ambiguous; it is a bug in the calling code, not a property of the data, so
// it panics rather than producing a ValidationOutcome.
func mustSeparator(sep byte) {
	if isASCIIDigit(sep) {
		panic("identifier: separator character must not be an ASCII digit")
	}
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isSeparatorIndex reports whether index i of a separated-form input holds a
// separator rather than a digit.
func (s *spec) isSeparatorIndex(i int, f form) bool {
	if f != formSeparated {
		return false
	}
	for _, p := range s.separators {
		if p == i {
			return true
		}
	}
	return false
}
