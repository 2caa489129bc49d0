package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Rule is one row of the rule table. Applies selects the rule for a field
// (given the trimmed value); Accept decides the value once selected. Only the
// first applicable rule is evaluated for a field.
type Rule struct {
	Name    string
	Message string
	Applies func(field FieldDescriptor, value string) bool
	Accept  func(value string) (bool, error)
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
)

// BuiltinRules returns the default rule table in evaluation order.
func BuiltinRules() []Rule {
	return []Rule{
		{
			Name:    "required",
			Message: MessageRequired,
			Applies: func(field FieldDescriptor, value string) bool {
				return field.Required && value == ""
			},
			Accept: func(string) (bool, error) { return false, nil },
		},
		{
			Name:    "email",
			Message: MessageEmail,
			Applies: func(field FieldDescriptor, value string) bool {
				return field.Kind == KindEmail && value != ""
			},
			Accept: func(value string) (bool, error) {
				return IsEmail(value), nil
			},
		},
		{
			Name:    "number",
			Message: MessageNumber,
			Applies: func(field FieldDescriptor, value string) bool {
				return field.Kind == KindNumber && value != ""
			},
			Accept: func(value string) (bool, error) {
				return IsNonNegativeNumber(value), nil
			},
		},
		{
			Name:    "phone",
			Message: MessagePhone,
			Applies: func(field FieldDescriptor, value string) bool {
				return field.Name == "phone" && value != ""
			},
			Accept: func(value string) (bool, error) {
				return IsPhone(value), nil
			},
		},
	}
}

// IsEmail reports whether value looks like local@domain.tld.
func IsEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// IsNonNegativeNumber reports whether value parses to a finite number >= 0.
func IsNonNegativeNumber(value string) bool {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return false
	}
	return n >= 0
}

// IsPhone strips whitespace and checks for an optional "+" followed by a
// non-zero digit and at most 15 more digits.
func IsPhone(value string) bool {
	return phonePattern.MatchString(stripSpace(value))
}

func stripSpace(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)
}
