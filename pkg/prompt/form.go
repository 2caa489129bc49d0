package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-siteui/pkg/validation"
)

// Field is a form field definition for terminal prompting.
type Field struct {
	Name     string `yaml:"name"`
	Label    string `yaml:"label"`
	Type     string `yaml:"type"`
	Required bool   `yaml:"required"`
	Help     string `yaml:"help"`
	Default  string `yaml:"default"`
}

// Descriptor builds the validation descriptor for value.
func (f Field) Descriptor(value string) validation.FieldDescriptor {
	return validation.FieldDescriptor{
		Name:     f.Name,
		Kind:     validation.KindFromInputType(f.Type),
		Value:    value,
		Required: f.Required,
	}
}

func (f Field) message() string {
	label := strings.TrimSpace(f.Label)
	if label == "" {
		label = f.Name
	}
	if f.Required {
		label += " *"
	}
	return label
}

// Form is an ordered list of fields.
type Form struct {
	Title  string  `yaml:"title"`
	Fields []Field `yaml:"fields"`
}

// DecodeForm reads a YAML form definition.
func DecodeForm(r io.Reader) (Form, error) {
	var form Form
	if err := yaml.NewDecoder(r).Decode(&form); err != nil {
		return Form{}, fmt.Errorf("prompt: decode form: %w", err)
	}
	if len(form.Fields) == 0 {
		return Form{}, errors.New("prompt: form has no fields")
	}
	return form, nil
}

// Filler asks every field of a form through a Driver.
type Filler struct {
	driver      Driver
	validator   *validation.Validator
	maxAttempts int
}

// FillerOption configures a Filler.
type FillerOption func(*Filler)

// WithValidator replaces the default rule table.
func WithValidator(v *validation.Validator) FillerOption {
	return func(f *Filler) {
		if v != nil {
			f.validator = v
		}
	}
}

// WithMaxAttempts bounds how often a single field is asked again.
func WithMaxAttempts(n int) FillerOption {
	return func(f *Filler) {
		if n > 0 {
			f.maxAttempts = n
		}
	}
}

// NewFiller returns a Filler using driver.
func NewFiller(driver Driver, opts ...FillerOption) *Filler {
	f := &Filler{
		driver:      driver,
		validator:   validation.New(),
		maxAttempts: 3,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Fill asks each field in order, re-asking while the answer is invalid, and
// returns the accepted descriptors with the aggregated form result.
func (f *Filler) Fill(ctx context.Context, form Form) ([]validation.FieldDescriptor, validation.FormValidationResult, error) {
	if title := strings.TrimSpace(form.Title); title != "" {
		if err := f.driver.Info(ctx, title); err != nil {
			return nil, validation.FormValidationResult{}, err
		}
	}

	out := make([]validation.FieldDescriptor, 0, len(form.Fields))
	for _, field := range form.Fields {
		desc, err := f.ask(ctx, field)
		if err != nil {
			return nil, validation.FormValidationResult{}, err
		}
		out = append(out, desc)
	}
	return out, f.validator.Form(out), nil
}

func (f *Filler) ask(ctx context.Context, field Field) (validation.FieldDescriptor, error) {
	check := func(value string) error {
		if res := f.validator.Field(field.Descriptor(value)); !res.Valid {
			return errors.New(res.Message)
		}
		return nil
	}

	for attempt := 1; attempt <= f.maxAttempts; attempt++ {
		value, err := f.driver.Input(ctx, InputConfig{
			Message:   field.message(),
			Default:   field.Default,
			Help:      field.Help,
			Validator: check,
		})
		if err != nil {
			return validation.FieldDescriptor{}, err
		}
		if err := check(value); err != nil {
			if infoErr := f.driver.Info(ctx, err.Error()); infoErr != nil {
				return validation.FieldDescriptor{}, infoErr
			}
			continue
		}
		return field.Descriptor(strings.TrimSpace(value)), nil
	}
	return validation.FieldDescriptor{}, fmt.Errorf("%w: %s", ErrTooManyAttempts, field.Name)
}
