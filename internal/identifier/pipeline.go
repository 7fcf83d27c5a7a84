package identifier

import "strings"

// Validate runs the full validation pipeline for the kind and returns the
// first failing outcome, or ValidationPassed.
//
// The check order is fixed and load-bearing:
//
//  1. empty or all-whitespace input
//  2. length (canonical or separated)
//  3. separator placement (separated form only)
//  4. character class of every non-separator position
//  5. the kind's semantic rules, in their declared order
//
// Data-validity problems are always returned as outcomes, never as panics.
// The one panic is the entry-point contract check: a separator character that
// is itself an ASCII digit is caller misuse, rejected before any data is
// inspected.
func Validate(in string, sep byte, kind Kind) ValidationOutcome {
	s := mustSpec(kind)
	mustSeparator(sep)

	if strings.TrimSpace(in) == "" {
		return Empty
	}

	f, out := classify(in, sep, s)
	if out != ValidationPassed {
		return out
	}

	// Character-class check runs before any rule so a checksum scan or a
	// segment comparison never sees a non-digit.
	for i := 0; i < len(in); i++ {
		if s.isSeparatorIndex(i, f) {
			continue
		}
		if !isASCIIDigit(in[i]) {
			return InvalidCharacterEncountered
		}
	}

	for _, r := range s.rules {
		if r.violated(s, in, f) {
			return r.outcome
		}
	}

	return ValidationPassed
}

// ssnAreaExcluded rejects area numbers never issued: 000, 666, and the
// 900-999 band.
func ssnAreaExcluded(s *spec, in string, f form) bool {
	area := s.segmentValue(in, "area", f)
	return area == "000" || area == "666" || area[0] == '9'
}

func ssnGroupExcluded(s *spec, in string, f form) bool {
	return s.segmentValue(in, "group", f) == "00"
}

func ssnSerialExcluded(s *spec, in string, f form) bool {
	return s.segmentValue(in, "serial", f) == "0000"
}

// allDigitsIdentical rejects values whose digit positions all carry the same
// digit, e.g. 111-11-1111.
func allDigitsIdentical(s *spec, in string, f form) bool {
	var first byte
	seen := false
	for i := 0; i < len(in); i++ {
		if s.isSeparatorIndex(i, f) {
			continue
		}
		if !seen {
			first = in[i]
			seen = true
			continue
		}
		if in[i] != first {
			return false
		}
	}
	return seen
}

// digitsAscendingRun rejects a full consecutive ascending run across every
// digit position, e.g. 123456789.
func digitsAscendingRun(s *spec, in string, f form) bool {
	var prev byte
	seen := false
	for i := 0; i < len(in); i++ {
		if s.isSeparatorIndex(i, f) {
			continue
		}
		if seen && in[i] != prev+1 {
			return false
		}
		prev = in[i]
		seen = true
	}
	return seen
}

// sinLeadingDigitExcluded rejects leading digits 0 and 8, which the issuing
// authority does not assign.
func sinLeadingDigitExcluded(s *spec, in string, f form) bool {
	// Index 0 is a digit position in both forms; no separator precedes it.
	return in[0] == '0' || in[0] == '8'
}
