// Package identifier implements the shared validation, checksum,
// canonicalization, and formatting engine behind every supported
// government-identifier kind.
//
// Every function in this package is a pure function of its inputs: no I/O, no
// shared mutable state, no retained buffers. Data-validity problems are
// reported as ValidationOutcome values; misuse of the API by calling code
// (a digit separator character, an unknown segment name, a blank mask) panics,
// regexp.MustCompile-style, because silently recovering would mask a bug in
// the caller.
package identifier

import "strings"

// DefaultSeparator is the separator character assumed when a caller does not
// supply one.
const DefaultSeparator byte = '-'

// maxCanonicalLen bounds the scratch buffer used when merging separated
// segments. CURP is the longest supported kind.
const maxCanonicalLen = 18

// Kind selects which identifier's constants and rule set the engine applies.
type Kind string

const (
	// KindSSN is the US Social Security number: nine digits, area/group/serial
	// segments, range-exclusion rules, no checksum.
	KindSSN Kind = "ssn"
	// KindSIN is the Canadian Social Insurance number: nine digits with a
	// trailing Luhn check digit.
	KindSIN Kind = "sin"
	// KindCURP is the Mexican CURP in its numeric canonical form: eighteen
	// positions, structural checks only. Its issuing authority has never
	// published a check-digit algorithm, so no semantic rules apply.
	KindCURP Kind = "curp"
)

// ParseKind normalizes external input to a Kind. The second return is false
// for unknown kinds; callers at trust boundaries translate that into their
// own error type.
func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := specs[k]; !ok {
		return "", false
	}
	return k, true
}

// IsValid reports whether the kind is one of the registered kinds.
func (k Kind) IsValid() bool {
	_, ok := specs[k]
	return ok
}

func (k Kind) String() string {
	return string(k)
}

// segment names a contiguous sub-range of an identifier's canonical digits.
// Ranges are half-open and relative to the canonical (separator-free) form;
// segmentRange shifts them when the input carries separators. Each kind's
// segment list is a strict partition of its canonical form, in order — the
// canonicalizer relies on that to merge separated inputs.
type segment struct {
	name  string
	start int
	end   int
}

// rule pairs a semantic check with the outcome it produces when violated.
// Rules receive the original input plus its classified form so they can slice
// segments without copying.
type rule struct {
	outcome  ValidationOutcome
	violated func(s *spec, in string, f form) bool
}

// spec carries every per-kind constant the engine consumes: canonical length,
// separator placement, segment table, the ordered semantic rule list, and the
// default display mask. Kinds differ only in this data, never in control flow.
type spec struct {
	kind         Kind
	canonicalLen int
	// separators lists the zero-based indexes, relative to the separated-form
	// length, where the separator character must appear. Ascending order.
	separators  []int
	segments    []segment
	rules       []rule
	defaultMask string
}

func (s *spec) separatedLen() int {
	return s.canonicalLen + len(s.separators)
}

var specs = map[Kind]*spec{
	KindSSN: {
		kind:         KindSSN,
		canonicalLen: 9,
		separators:   []int{3, 6},
		segments: []segment{
			{name: "area", start: 0, end: 3},
			{name: "group", start: 3, end: 5},
			{name: "serial", start: 5, end: 9},
		},
		rules: []rule{
			{outcome: InvalidAreaNumber, violated: ssnAreaExcluded},
			{outcome: InvalidGroupNumber, violated: ssnGroupExcluded},
			{outcome: InvalidSerialNumber, violated: ssnSerialExcluded},
			{outcome: IdenticalDigits, violated: allDigitsIdentical},
			{outcome: SequentialDigits, violated: digitsAscendingRun},
		},
		defaultMask: "###-##-####",
	},
	KindSIN: {
		kind:         KindSIN,
		canonicalLen: 9,
		separators:   []int{3, 7},
		segments: []segment{
			{name: "first", start: 0, end: 3},
			{name: "middle", start: 3, end: 6},
			{name: "last", start: 6, end: 9},
		},
		rules: []rule{
			{outcome: InvalidLeadingDigit, violated: sinLeadingDigitExcluded},
			{outcome: InvalidCheckDigit, violated: luhnCheckFailed},
		},
		defaultMask: "###-###-###",
	},
	KindCURP: {
		kind:         KindCURP,
		canonicalLen: 18,
		segments: []segment{
			{name: "person", start: 0, end: 16},
			{name: "differentiator", start: 16, end: 17},
			{name: "check", start: 17, end: 18},
		},
		defaultMask: "##################",
	},
}

// mustSpec resolves the constants for a kind, panicking on an unknown kind.
// Callers reach this only through Validate/Canonicalize/DefaultMask, which
// document the panic as a contract violation.
func mustSpec(k Kind) *spec {
	s, ok := specs[k]
	if !ok {
		panic("identifier: unknown kind " + string(k))
	}
	return s
}

// CanonicalLength returns the digit count of the kind's canonical form.
func CanonicalLength(k Kind) int {
	return mustSpec(k).canonicalLen
}

// DefaultMask returns the kind's default display mask.
func DefaultMask(k Kind) string {
	return mustSpec(k).defaultMask
}

// Kinds lists the registered kinds in a stable order, for API documentation
// and metric label enumeration.
func Kinds() []Kind {
	return []Kind{KindSSN, KindSIN, KindCURP}
}
