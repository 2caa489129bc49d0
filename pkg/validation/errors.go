package validation

import "errors"

// User facing messages produced by the built-in rules.
const (
	MessageRequired = "This field is required"
	MessageEmail    = "Please enter a valid email address"
	MessageNumber   = "Please enter a valid positive number"
	MessagePhone    = "Please enter a valid phone number"
	// MessageFault is reported when evaluating the rules failed internally.
	MessageFault = "Unable to validate this field"
)

// ErrRuleFault wraps panics recovered while evaluating a rule.
var ErrRuleFault = errors.New("validation: rule fault")
