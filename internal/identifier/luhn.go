package identifier

// luhnCheckFailed is the rule adapter for Luhn-checked kinds. The pipeline
// guarantees every non-separator character is a digit before rules run, so
// the scan below never sees a non-digit.
func luhnCheckFailed(s *spec, in string, f form) bool {
	return !s.luhnValid(in, f)
}

// luhnValid recomputes the Luhn check digit over the digit positions of in,
// skipping separator slots, and compares it to the trailing digit.
//
// The traversal runs from the second-to-last digit back to the first with an
// alternating double flag that starts true. Doubled values above 9 are
// reduced by 9, which equals summing their decimal digits.
func (s *spec) luhnValid(in string, f form) bool {
	sum := 0
	double := true
	var check byte
	seenCheck := false
	for i := len(in) - 1; i >= 0; i-- {
		if s.isSeparatorIndex(i, f) {
			continue
		}
		d := in[i] - '0'
		if !seenCheck {
			check = d
			seenCheck = true
			continue
		}
		v := int(d)
		if double {
			v *= 2
			if v > 9 {
				v -= 9
			}
		}
		sum += v
		double = !double
	}
	return seenCheck && int(check) == expectedCheckDigit(sum)
}

// expectedCheckDigit derives the check digit from a Luhn sum. A sum that is
// already a multiple of 10 yields 0, not 10.
func expectedCheckDigit(sum int) int {
	return (10 - sum%10) % 10
}

// ComputeCheckDigit derives the Luhn check digit for a digits-only payload,
// the value an identifier ending in that payload must carry in its final
// position. The payload excludes the check digit itself.
//
// A non-digit byte in the payload is a contract violation and panics; trust
// boundaries must reject non-numeric payloads before calling.
func ComputeCheckDigit(payload string) byte {
	sum := 0
	double := true
	for i := len(payload) - 1; i >= 0; i-- {
		if !isASCIIDigit(payload[i]) {
			panic("identifier: check digit payload must contain only ASCII digits")
		}
		v := int(payload[i] - '0')
		if double {
			v *= 2
			if v > 9 {
				v -= 9
			}
		}
		sum += v
		double = !double
	}
	return byte('0' + expectedCheckDigit(sum))
}
