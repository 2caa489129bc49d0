package validation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestValidateField_Rules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		field FieldDescriptor
		want  ValidationResult
	}{
		{"required empty text", FieldDescriptor{Kind: KindText, Required: true}, invalid(MessageRequired)},
		{"required whitespace email", FieldDescriptor{Kind: KindEmail, Value: "   ", Required: true}, invalid(MessageRequired)},
		{"required empty number", FieldDescriptor{Kind: KindNumber, Required: true}, invalid(MessageRequired)},
		{"required empty phone", FieldDescriptor{Name: "phone", Kind: KindTel, Required: true}, invalid(MessageRequired)},
		{"optional empty email", FieldDescriptor{Kind: KindEmail}, valid()},
		{"optional empty number", FieldDescriptor{Kind: KindNumber}, valid()},
		{"optional empty phone", FieldDescriptor{Name: "phone"}, valid()},
		{"email ok", FieldDescriptor{Kind: KindEmail, Value: "ada@example.com"}, valid()},
		{"email trimmed", FieldDescriptor{Kind: KindEmail, Value: "  ada@example.com \n"}, valid()},
		{"email missing tld", FieldDescriptor{Kind: KindEmail, Value: "ada@example"}, invalid(MessageEmail)},
		{"email double at", FieldDescriptor{Kind: KindEmail, Value: "a@b@c.io"}, invalid(MessageEmail)},
		{"email inner space", FieldDescriptor{Kind: KindEmail, Value: "ad a@example.com"}, invalid(MessageEmail)},
		{"number zero", FieldDescriptor{Kind: KindNumber, Value: "0"}, valid()},
		{"number decimal", FieldDescriptor{Kind: KindNumber, Value: "12.5"}, valid()},
		{"number exponent", FieldDescriptor{Kind: KindNumber, Value: "1e3"}, valid()},
		{"number negative", FieldDescriptor{Kind: KindNumber, Value: "-3"}, invalid(MessageNumber)},
		{"number garbage", FieldDescriptor{Kind: KindNumber, Value: "abc"}, invalid(MessageNumber)},
		{"number infinity", FieldDescriptor{Kind: KindNumber, Value: "Inf"}, invalid(MessageNumber)},
		{"number nan", FieldDescriptor{Kind: KindNumber, Value: "NaN"}, invalid(MessageNumber)},
		{"phone e164", FieldDescriptor{Name: "phone", Kind: KindTel, Value: "+14155551234"}, valid()},
		{"phone spaced", FieldDescriptor{Name: "phone", Kind: KindTel, Value: "+1 415 555 1234"}, valid()},
		{"phone leading zero", FieldDescriptor{Name: "phone", Kind: KindTel, Value: "0123"}, invalid(MessagePhone)},
		{"phone plus only", FieldDescriptor{Name: "phone", Kind: KindTel, Value: "+"}, invalid(MessagePhone)},
		{"phone seventeen digits", FieldDescriptor{Name: "phone", Value: "12345678901234567"}, invalid(MessagePhone)},
		{"phone sixteen digits", FieldDescriptor{Name: "phone", Value: "1234567890123456"}, valid()},
		{"phone rule keyed on name", FieldDescriptor{Name: "mobile", Kind: KindTel, Value: "0123"}, valid()},
		{"email wins over phone name", FieldDescriptor{Name: "phone", Kind: KindEmail, Value: "0123"}, invalid(MessageEmail)},
		{"plain text", FieldDescriptor{Kind: KindText, Value: "anything"}, valid()},
		{"other kind", FieldDescriptor{Kind: KindOther, Value: "x"}, valid()},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ValidateField(tc.field)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("result mismatch (-want +got):\n%s", diff)
			}
			if got.Valid != (got.Message == "") {
				t.Fatalf("valid/message invariant broken: %+v", got)
			}
		})
	}
}

func TestValidateField_Idempotent(t *testing.T) {
	t.Parallel()

	field := FieldDescriptor{Name: "phone", Kind: KindTel, Value: "0123", Required: true}
	first := ValidateField(field)
	second := ValidateField(field)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated validation differs (-first +second):\n%s", diff)
	}
}

func TestValidateForm_OnlyRequiredFields(t *testing.T) {
	t.Parallel()

	fields := []FieldDescriptor{
		{Name: "nickname", Kind: KindText},
		{Name: "email", Kind: KindEmail, Value: "nope", Required: true},
		{Name: "age", Kind: KindNumber, Value: "-1"},
		{Name: "phone", Kind: KindTel, Value: "+14155551234", Required: true},
	}

	got := ValidateForm(fields)
	want := FormValidationResult{
		Valid: false,
		Fields: []FieldResult{
			{Index: 1, Field: fields[1], Result: invalid(MessageEmail)},
			{Index: 3, Field: fields[3], Result: valid()},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("form result mismatch (-want +got):\n%s", diff)
	}
	if n := len(got.Invalid()); n != 1 {
		t.Fatalf("expected one invalid field, got %d", n)
	}
}

func TestValidateForm_NoRequiredFieldsIsValid(t *testing.T) {
	t.Parallel()

	got := ValidateForm([]FieldDescriptor{
		{Name: "age", Kind: KindNumber, Value: "-1"},
		{Name: "email", Kind: KindEmail, Value: "broken"},
	})
	if !got.Valid {
		t.Fatalf("expected form without required fields to be valid")
	}
	if len(got.Fields) != 0 {
		t.Fatalf("expected no field results, got %d", len(got.Fields))
	}

	if !ValidateForm(nil).Valid {
		t.Fatalf("expected empty form to be valid")
	}
}

func TestValidateForm_ConjunctionOfFields(t *testing.T) {
	t.Parallel()

	fields := []FieldDescriptor{
		{Name: "a", Kind: KindText, Value: "x", Required: true},
		{Name: "b", Kind: KindNumber, Value: "4", Required: true},
	}
	if got := ValidateForm(fields); !got.Valid {
		t.Fatalf("expected all-valid form to be valid: %+v", got)
	}

	fields[1].Value = ""
	if got := ValidateForm(fields); got.Valid {
		t.Fatalf("expected one invalid field to invalidate the form")
	}
}

func TestValidator_PanickingRuleFailsSafe(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.ErrorLevel)
	v := New(
		WithLogger(zap.New(core)),
		WithRules(Rule{
			Name:    "boom",
			Message: "unused",
			Applies: func(FieldDescriptor, string) bool { return true },
			Accept:  func(string) (bool, error) { panic("boom") },
		}),
	)

	got := v.Field(FieldDescriptor{Name: "notes", Kind: KindText, Value: "hello"})
	if diff := cmp.Diff(invalid(MessageFault), got); diff != "" {
		t.Fatalf("fault result mismatch (-want +got):\n%s", diff)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected one fault log entry, got %d", logs.Len())
	}
}

func TestValidator_RuleErrorFailsSafe(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.ErrorLevel)
	v := New(
		WithLogger(zap.New(core)),
		WithRules(Rule{
			Name:    "lookup",
			Message: "unused",
			Applies: func(field FieldDescriptor, _ string) bool { return field.Name == "coupon" },
			Accept:  func(string) (bool, error) { return false, errors.New("backend down") },
		}),
	)

	got := v.Form([]FieldDescriptor{{Name: "coupon", Value: "SAVE10", Required: true}})
	if got.Valid {
		t.Fatalf("expected rule error to invalidate form")
	}
	if got.Fields[0].Result.Message != MessageFault {
		t.Fatalf("expected fault message, got %q", got.Fields[0].Result.Message)
	}
	entries := logs.FilterField(zap.String("rule", "lookup")).All()
	if len(entries) != 1 {
		t.Fatalf("expected rule error logged once, got %d", len(entries))
	}
}

func TestValidator_BuiltinsRunBeforeCustomRules(t *testing.T) {
	t.Parallel()

	v := New(WithRules(Rule{
		Name:    "never-empty",
		Message: "custom",
		Applies: func(FieldDescriptor, string) bool { return true },
		Accept:  func(string) (bool, error) { return false, nil },
	}))

	got := v.Field(FieldDescriptor{Kind: KindEmail, Value: "bad"})
	if got.Message != MessageEmail {
		t.Fatalf("expected built-in email rule to win, got %q", got.Message)
	}
	got = v.Field(FieldDescriptor{Kind: KindText, Value: "fine"})
	if got.Message != "custom" {
		t.Fatalf("expected custom rule to apply after built-ins, got %q", got.Message)
	}
}

func TestKindFromInputType(t *testing.T) {
	t.Parallel()

	cases := map[string]Kind{
		"":         KindText,
		"text":     KindText,
		"EMAIL":    KindEmail,
		" number ": KindNumber,
		"tel":      KindTel,
		"password": KindOther,
		"date":     KindOther,
	}
	for input, want := range cases {
		if got := KindFromInputType(input); got != want {
			t.Fatalf("KindFromInputType(%q) = %q, want %q", input, got, want)
		}
	}
}
