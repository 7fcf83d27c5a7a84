package identifier

// ValidationOutcome is the closed set of ways a validation run can end: one
// success sentinel plus one variant per distinct failure reason.
//
// Declaration order is a contract, not cosmetics. When an input violates more
// than one rule at once, Validate reports the variant declared earliest here.
// Tests depend on that precedence.
type ValidationOutcome int

const (
	ValidationPassed ValidationOutcome = iota
	Empty
	InvalidLength
	InvalidSeparatorEncountered
	InvalidCharacterEncountered
	InvalidAreaNumber
	InvalidGroupNumber
	InvalidSerialNumber
	IdenticalDigits
	SequentialDigits
	InvalidLeadingDigit
	InvalidCheckDigit
)

var outcomeNames = map[ValidationOutcome]string{
	ValidationPassed:            "validation_passed",
	Empty:                       "empty",
	InvalidLength:               "invalid_length",
	InvalidSeparatorEncountered: "invalid_separator",
	InvalidCharacterEncountered: "invalid_character",
	InvalidAreaNumber:           "invalid_area_number",
	InvalidGroupNumber:          "invalid_group_number",
	InvalidSerialNumber:         "invalid_serial_number",
	IdenticalDigits:             "identical_digits",
	SequentialDigits:            "sequential_digits",
	InvalidLeadingDigit:         "invalid_leading_digit",
	InvalidCheckDigit:           "invalid_check_digit",
}

// String returns the snake_case name used in API responses, logs, and metric
// labels.
func (o ValidationOutcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// IsValid reports whether the outcome is the success sentinel.
func (o ValidationOutcome) IsValid() bool {
	return o == ValidationPassed
}
