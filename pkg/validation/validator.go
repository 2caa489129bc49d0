package validation

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used to report rule faults.
func WithLogger(logger *zap.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithRules appends rules after the built-in table. Built-in rules are always
// consulted first.
func WithRules(rules ...Rule) Option {
	return func(v *Validator) {
		for _, rule := range rules {
			if rule.Applies == nil || rule.Accept == nil {
				continue
			}
			v.rules = append(v.rules, rule)
		}
	}
}

// Validator evaluates the rule table. A zero Validator is not usable; build
// one with New. Validators hold no mutable state and are safe for concurrent
// use.
type Validator struct {
	rules  []Rule
	logger *zap.Logger
}

// New returns a Validator seeded with BuiltinRules.
func New(opts ...Option) *Validator {
	v := &Validator{
		rules:  BuiltinRules(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

var defaultValidator = New()

// ValidateField validates a single field with the built-in rules.
func ValidateField(field FieldDescriptor) ValidationResult {
	return defaultValidator.Field(field)
}

// ValidateForm validates every required field with the built-in rules.
func ValidateForm(fields []FieldDescriptor) FormValidationResult {
	return defaultValidator.Form(fields)
}

// Field validates one field. Rule faults never escape: they are logged and the
// field is reported invalid with MessageFault.
func (v *Validator) Field(field FieldDescriptor) (result ValidationResult) {
	defer func() {
		if rec := recover(); rec != nil {
			v.logger.Error("field validation panicked",
				zap.String("field", field.Name),
				zap.Error(fmt.Errorf("%w: %v", ErrRuleFault, rec)),
			)
			result = invalid(MessageFault)
		}
	}()

	value := strings.TrimSpace(field.Value)
	for _, rule := range v.rules {
		if !rule.Applies(field, value) {
			continue
		}
		ok, err := rule.Accept(value)
		if err != nil {
			v.logger.Error("field validation failed",
				zap.String("field", field.Name),
				zap.String("rule", rule.Name),
				zap.Error(err),
			)
			return invalid(MessageFault)
		}
		if ok {
			return valid()
		}
		return invalid(rule.Message)
	}
	return valid()
}

// Form validates the required fields in order. Optional fields are skipped and
// absent from the result; a form without required fields is valid.
func (v *Validator) Form(fields []FieldDescriptor) FormValidationResult {
	out := FormValidationResult{Valid: true}
	for idx, field := range fields {
		if !field.Required {
			continue
		}
		res := v.Field(field)
		if !res.Valid {
			out.Valid = false
		}
		out.Fields = append(out.Fields, FieldResult{
			Index:  idx,
			Field:  field,
			Result: res,
		})
	}
	return out
}
