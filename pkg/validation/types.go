package validation

import "strings"

// Kind mirrors the subset of HTML input types the rule table cares about.
type Kind string

const (
	KindText   Kind = "text"
	KindEmail  Kind = "email"
	KindNumber Kind = "number"
	KindTel    Kind = "tel"
	KindOther  Kind = "other"
)

// KindFromInputType maps an input "type" attribute to a Kind. A missing type
// is treated as text, matching browser defaults; anything unknown is other.
func KindFromInputType(inputType string) Kind {
	switch strings.ToLower(strings.TrimSpace(inputType)) {
	case "", "text":
		return KindText
	case "email":
		return KindEmail
	case "number":
		return KindNumber
	case "tel":
		return KindTel
	default:
		return KindOther
	}
}

// FieldDescriptor captures the validation-relevant state of a single input at
// the moment it is validated.
type FieldDescriptor struct {
	Name     string `json:"name" yaml:"name"`
	Kind     Kind   `json:"kind" yaml:"kind"`
	Value    string `json:"value" yaml:"value"`
	Required bool   `json:"required" yaml:"required"`
}

// ValidationResult is the decision for one field. Message is empty exactly
// when Valid is true.
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// FieldResult pairs a required field with its result. Index is the field's
// position in the sequence passed to ValidateForm.
type FieldResult struct {
	Index  int              `json:"index"`
	Field  FieldDescriptor  `json:"field"`
	Result ValidationResult `json:"result"`
}

// FormValidationResult aggregates required field results in document order.
type FormValidationResult struct {
	Valid  bool          `json:"valid"`
	Fields []FieldResult `json:"fields,omitempty"`
}

// Invalid returns only the failing field results.
func (r FormValidationResult) Invalid() []FieldResult {
	var out []FieldResult
	for _, field := range r.Fields {
		if !field.Result.Valid {
			out = append(out, field)
		}
	}
	return out
}

func valid() ValidationResult {
	return ValidationResult{Valid: true}
}

func invalid(message string) ValidationResult {
	return ValidationResult{Valid: false, Message: message}
}
