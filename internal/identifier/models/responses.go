package models

// ValidateResponse reports a pipeline run. Data-validity failures are not
// errors: they come back with Valid=false and the outcome name, HTTP 200.
type ValidateResponse struct {
	Valid        bool   `json:"valid"`
	Outcome      string `json:"outcome"`
	Canonical    string `json:"canonical,omitempty"`
	Formatted    string `json:"formatted,omitempty"`
	IssuingState string `json:"issuing_state,omitempty"`
}

type FormatResponse struct {
	Formatted string `json:"formatted"`
}

type CheckDigitResponse struct {
	CheckDigit string `json:"check_digit"`
}
