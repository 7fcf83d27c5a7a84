package identifier

import "strings"

// Mask template characters. Anything else in a mask is emitted literally.
const (
	// MaskPlaceholder consumes and emits the next unconsumed input digit.
	MaskPlaceholder = '#'
	// MaskEscape emits the following mask character literally, so a mask can
	// contain a literal '#' or '\'.
	MaskEscape = '\\'
)

// Format re-applies a display template to a canonical value, scanning the
// mask left to right. Placeholders past input exhaustion are dropped
// silently, so the result length is the mask length minus the escape markers
// and any unfilled placeholders.
//
// The mask comes from calling code, not from untrusted data: an empty or
// whitespace-only mask is a contract violation and panics.
func Format(c CanonicalID, mask string) string {
	if strings.TrimSpace(mask) == "" {
		panic("identifier: mask must not be empty or whitespace-only")
	}

	in := c.String()
	next := 0

	var b strings.Builder
	b.Grow(len(mask))
	for i := 0; i < len(mask); i++ {
		switch mask[i] {
		case MaskEscape:
			if i+1 < len(mask) {
				i++
				b.WriteByte(mask[i])
			}
		case MaskPlaceholder:
			if next < len(in) {
				b.WriteByte(in[next])
				next++
			}
		default:
			b.WriteByte(mask[i])
		}
	}
	return b.String()
}

// ValidMask reports whether a caller-supplied mask satisfies Format's
// precondition. Trust boundaries use it to screen untrusted templates before
// they reach the core.
func ValidMask(mask string) bool {
	return strings.TrimSpace(mask) != ""
}
