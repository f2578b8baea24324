package validation

// Messages surfaced to form submitters. The host framework renders these
// verbatim next to the rejected field.
const (
	msgEmailRequired    = "Email is required."
	msgEmailInvalid     = "The email address is invalid or not deliverable."
	msgEmailRetryLater  = "Error verifying email. Please try again later."
	msgPhoneUnavailable = "Phone validation is temporarily unavailable. Please try again later."
	msgPhoneInvalid     = "The phone number is invalid or not deliverable."
	msgPhoneRetryLater  = "Error verifying phone number. Please try again later."
	msgPhoneNoLineType  = "The phone number is not a valid mobile or landline."
	msgUnexpectedError  = "Validation failed unexpectedly. Please try again later."
)

// lineTypeFieldLabel is the hidden form field that receives the derived
// line type on successful phone verification.
const lineTypeFieldLabel = "line_type"

// Config contains the orchestrator's business configuration.
type Config struct {
	// SiteDomain identifies this deployment in exhaustion alerts.
	SiteDomain string

	// AcceptStatuses is the set of email provider status codes treated as
	// deliverable. Matching is case-insensitive.
	AcceptStatuses []string

	// CountryPrefix is prepended to national phone digits to build the
	// lookup provider's expected number format.
	CountryPrefix string
}

// outcome labels for validation metrics
const (
	outcomePass        = "pass"
	outcomeReject      = "reject"
	outcomePassThrough = "pass_through"
)
