package validation

// Verdict is the outcome of validating a single form field. It is returned
// once per request and never partially applied: side effects, if any, are
// attached to the verdict rather than written anywhere directly.
type Verdict struct {
	IsValid     bool              `json:"valid"`
	Message     string            `json:"message,omitempty"`
	SideEffects map[string]string `json:"derived_fields,omitempty"`
}

// Pass returns an accepting verdict with no message.
func Pass() Verdict {
	return Verdict{IsValid: true}
}

// Reject returns a failing verdict carrying a human-readable message for
// the form submitter.
func Reject(message string) Verdict {
	return Verdict{IsValid: false, Message: message}
}

// WithSideEffect records a derived-field write keyed by the host framework's
// input naming convention ("input_" + field ID).
func (v Verdict) WithSideEffect(fieldID, value string) Verdict {
	if v.SideEffects == nil {
		v.SideEffects = make(map[string]string, 1)
	}
	v.SideEffects[InputKey(fieldID)] = value
	return v
}

// InputKey returns the submission field-value key for a form field ID.
func InputKey(fieldID string) string {
	return "input_" + fieldID
}
