package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFieldKind(t *testing.T) {
	tests := []struct {
		input string
		want  FieldKind
	}{
		{"email", FieldKindEmail},
		{"EMAIL", FieldKindEmail},
		{"  Phone ", FieldKindPhone},
		{"hidden", FieldKindHidden},
		{"text", FieldKindOther},
		{"checkbox", FieldKindOther},
		{"", FieldKindOther},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFieldKind(tt.input))
		})
	}
}

func TestNewRequest(t *testing.T) {
	fields := []FieldDescriptor{{ID: "3", Kind: FieldKindEmail, Label: "Email"}}
	req := NewRequest(FieldKindEmail, "user@example.com", fields)

	assert.NotEqual(t, req.ID.String(), NewRequest(FieldKindEmail, "", nil).ID.String())
	assert.Equal(t, FieldKindEmail, req.FieldKind)
	assert.Equal(t, "user@example.com", req.RawValue)
	assert.Equal(t, fields, req.Fields)
}

func TestRequest_HiddenField(t *testing.T) {
	req := NewRequest(FieldKindPhone, "5551234567", []FieldDescriptor{
		{ID: "1", Kind: FieldKindPhone, Label: "Phone"},
		{ID: "2", Kind: FieldKindOther, Label: "line_type"},
		{ID: "9", Kind: FieldKindHidden, Label: "Line_Type"},
	})

	field, ok := req.HiddenField("line_type")
	assert.True(t, ok)
	assert.Equal(t, "9", field.ID)

	// Only hidden fields qualify even when a label matches.
	_, ok = req.HiddenField("phone")
	assert.False(t, ok)

	empty := NewRequest(FieldKindPhone, "5551234567", nil)
	_, ok = empty.HiddenField("line_type")
	assert.False(t, ok)
}
