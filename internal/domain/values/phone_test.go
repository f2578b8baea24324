package values

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhoneNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "bare national digits",
			input: "5551234567",
			want:  "5551234567",
		},
		{
			name:  "formatted NANP number",
			input: "(555) 123-4567",
			want:  "5551234567",
		},
		{
			name:  "dots and spaces stripped",
			input: "555.123.4567",
			want:  "5551234567",
		},
		{
			name:  "leading country code folded",
			input: "1-555-123-4567",
			want:  "5551234567",
		},
		{
			name:  "plus prefixed country code folded",
			input: "+1 (555) 123-4567",
			want:  "5551234567",
		},
		{
			name:  "seven digit number kept as is",
			input: "123-4567",
			want:  "1234567",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "no digits at all",
			input:   "---",
			wantErr: true,
		},
		{
			name:    "too short",
			input:   "12345",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   "123456789012345",
			wantErr: true,
		},
		{
			name:    "leading zero",
			input:   "0551234567",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phone, err := NewPhoneNumber(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, phone.IsEmpty())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, phone.String())
		})
	}
}

func TestPhoneNumber_Lookup(t *testing.T) {
	phone := MustNewPhoneNumber("(555) 123-4567")

	assert.Equal(t, "15551234567", phone.Lookup("1"))
	assert.Equal(t, "445551234567", phone.Lookup("44"))
}

func TestPhoneNumber_Lookup_NoDoublePrefix(t *testing.T) {
	// A submitter typing the country code must not produce "11555...".
	phone := MustNewPhoneNumber("+1 (555) 123-4567")

	assert.Equal(t, "15551234567", phone.Lookup("1"))
}

func TestPhoneNumber_AreaCode(t *testing.T) {
	assert.Equal(t, "555", MustNewPhoneNumber("5551234567").AreaCode())
	assert.Equal(t, "", MustNewPhoneNumber("1234567").AreaCode())
}

func TestPhoneNumber_Equal(t *testing.T) {
	a := MustNewPhoneNumber("5551234567")
	b := MustNewPhoneNumber("(555) 123-4567")
	c := MustNewPhoneNumber("5559876543")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestPhoneNumber_JSON(t *testing.T) {
	phone := MustNewPhoneNumber("(555) 123-4567")

	data, err := json.Marshal(phone)
	require.NoError(t, err)
	assert.Equal(t, `"5551234567"`, string(data))

	var decoded PhoneNumber
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, phone.Equal(decoded))

	var invalid PhoneNumber
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &invalid))
}
