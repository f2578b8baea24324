package validation

import (
	"strings"

	"github.com/google/uuid"
)

// FieldKind identifies the type of form field being validated.
type FieldKind string

const (
	FieldKindEmail  FieldKind = "email"
	FieldKindPhone  FieldKind = "phone"
	FieldKindHidden FieldKind = "hidden"
	FieldKindOther  FieldKind = "other"
)

// ParseFieldKind maps a raw field-type string from the host form framework
// onto a known kind. Anything unrecognized is FieldKindOther, which the
// orchestrator passes through untouched.
func ParseFieldKind(s string) FieldKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "email":
		return FieldKindEmail
	case "phone":
		return FieldKindPhone
	case "hidden":
		return FieldKindHidden
	default:
		return FieldKindOther
	}
}

// FieldDescriptor describes a single field of the submitted form.
// It carries just enough to locate sibling fields for derived-value writes.
type FieldDescriptor struct {
	ID    string    `json:"id"`
	Kind  FieldKind `json:"kind"`
	Label string    `json:"label"`
}

// Request is a single field-validation invocation. It is immutable for the
// duration of the call; the orchestrator is the only writer of the verdict.
type Request struct {
	ID        uuid.UUID
	FieldKind FieldKind
	RawValue  string
	Fields    []FieldDescriptor
}

// NewRequest builds a Request with a fresh identity.
func NewRequest(kind FieldKind, rawValue string, fields []FieldDescriptor) Request {
	return Request{
		ID:        uuid.New(),
		FieldKind: kind,
		RawValue:  rawValue,
		Fields:    fields,
	}
}

// HiddenField locates a hidden sibling field whose label matches
// case-insensitively. Returns false when the form has no such field.
func (r Request) HiddenField(label string) (FieldDescriptor, bool) {
	for _, field := range r.Fields {
		if field.Kind == FieldKindHidden && strings.EqualFold(field.Label, label) {
			return field, true
		}
	}
	return FieldDescriptor{}, false
}
