package providers

import (
	"context"
	"encoding/json"
	"fmt"
)

// EmailVerificationClient talks to the email deliverability provider.
type EmailVerificationClient interface {
	// VerifyEmail submits an address for verification and returns the raw
	// provider status code. Interpretation of the code is the caller's
	// concern; the ACCEPT vocabulary differs per provider.
	VerifyEmail(ctx context.Context, apiKey, email string) (string, error)

	// Credits returns the number of verification credits remaining on the
	// account. It is a pure query with no side effects.
	Credits(ctx context.Context, apiKey string) (int, error)
}

// PhoneVerificationClient talks to the phone number lookup provider.
type PhoneVerificationClient interface {
	// ValidateNumber looks up a number already formatted for the provider
	// (country prefix + national digits).
	ValidateNumber(ctx context.Context, apiKey, number string) (PhoneLookupResult, error)
}

// PhoneLookupResult is the provider's judgment of a phone number.
type PhoneLookupResult struct {
	Valid     bool
	LineType  string
	ErrorInfo string
}

// LineType tolerates the lookup provider's habit of returning the line_type
// field as JSON false or null instead of a string when undetermined.
type LineType string

func (l *LineType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = LineType(s)
		return nil
	}
	// false and null both mean "no usable line type"
	var b bool
	if err := json.Unmarshal(data, &b); err == nil && !b {
		*l = ""
		return nil
	}
	if string(data) == "null" {
		*l = ""
		return nil
	}
	return fmt.Errorf("unexpected line_type value: %s", string(data))
}

// Error codes returned by the provider clients. Connection failures are
// transport errors; everything else the provider answered is external.
const (
	ErrCodeConnectionFailed     = "CONNECTION_FAILED"
	ErrCodeInvalidRequest       = "INVALID_REQUEST"
	ErrCodeInvalidResponse      = "INVALID_RESPONSE"
	ErrCodeAuthenticationFailed = "AUTHENTICATION_FAILED"
	ErrCodeProviderUnavailable  = "PROVIDER_UNAVAILABLE"
)
