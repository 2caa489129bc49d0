package validation_test

import (
	"path/filepath"
	"testing"

	"github.com/goliatone/go-siteui/pkg/testsupport"
	"github.com/goliatone/go-siteui/pkg/validation"
)

func TestValidateForm_ContactFormGolden(t *testing.T) {
	var fields []validation.FieldDescriptor
	testsupport.MustLoadYAML(t, filepath.Join("testdata", "contact_form.yaml"), &fields)

	got := validation.ValidateForm(fields)

	goldenPath := filepath.Join("testdata", "contact_form.golden.json")
	testsupport.WriteGolden(t, goldenPath, got)

	var want validation.FormValidationResult
	testsupport.MustLoadGolden(t, goldenPath, &want)
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("contact form result mismatch (-want +got):\n%s", diff)
	}
}
