package rest

// ValidateRequest is the inbound payload for a single field validation.
// The host form framework posts one request per relevant field during
// submission processing.
type ValidateRequest struct {
	FieldKind string            `json:"field_kind" validate:"required,oneof=email phone hidden other"`
	Value     string            `json:"value"`
	Fields    []FieldDescriptor `json:"form_fields" validate:"dive"`
}

// FieldDescriptor describes one field of the submitted form
type FieldDescriptor struct {
	ID    string `json:"id" validate:"required"`
	Kind  string `json:"kind" validate:"required"`
	Label string `json:"label"`
}
