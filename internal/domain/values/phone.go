package values

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// PhoneNumber represents a sanitized phone number value object.
// The number is stored as bare national digits; the verification provider's
// wire format is produced with Lookup, which prefixes the country code the
// provider expects (NumVerify takes "1" + national digits for NANP numbers).
type PhoneNumber struct {
	digits string
}

// 7 to 14 national digits, not starting with 0
var nationalDigitsRegex = regexp.MustCompile(`^[1-9]\d{6,13}$`)

// NewPhoneNumber creates a new PhoneNumber value object with validation
func NewPhoneNumber(number string) (PhoneNumber, error) {
	if strings.TrimSpace(number) == "" {
		return PhoneNumber{}, fmt.Errorf("phone number cannot be empty")
	}

	digits := cleanPhoneNumber(number)

	// A leading country-code "1" on a full NANP number is folded away so
	// that Lookup does not double the prefix.
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}

	if !nationalDigitsRegex.MatchString(digits) {
		return PhoneNumber{}, fmt.Errorf("invalid phone number format: %s", number)
	}

	return PhoneNumber{digits: digits}, nil
}

// MustNewPhoneNumber creates PhoneNumber and panics on error (for constants/tests)
func MustNewPhoneNumber(number string) PhoneNumber {
	phone, err := NewPhoneNumber(number)
	if err != nil {
		panic(err)
	}
	return phone
}

// String returns the national digits
func (p PhoneNumber) String() string {
	return p.digits
}

// National returns the national digits (alias for String)
func (p PhoneNumber) National() string {
	return p.digits
}

// Lookup returns the number in the verification provider's expected
// format: the configured country-code prefix followed by national digits.
func (p PhoneNumber) Lookup(countryPrefix string) string {
	return countryPrefix + p.digits
}

// AreaCode returns the leading three digits for ten-digit numbers
func (p PhoneNumber) AreaCode() string {
	if len(p.digits) != 10 {
		return ""
	}
	return p.digits[:3]
}

// IsEmpty checks if the phone number is empty
func (p PhoneNumber) IsEmpty() bool {
	return p.digits == ""
}

// Equal checks if two PhoneNumber values are equal
func (p PhoneNumber) Equal(other PhoneNumber) bool {
	return p.digits == other.digits
}

// MarshalJSON implements JSON marshaling
func (p PhoneNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.digits)
}

// UnmarshalJSON implements JSON unmarshaling
func (p *PhoneNumber) UnmarshalJSON(data []byte) error {
	var number string
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}

	phone, err := NewPhoneNumber(number)
	if err != nil {
		return err
	}

	*p = phone
	return nil
}

func cleanPhoneNumber(number string) string {
	var b strings.Builder
	for _, char := range number {
		if char >= '0' && char <= '9' {
			b.WriteRune(char)
		}
	}
	return b.String()
}
