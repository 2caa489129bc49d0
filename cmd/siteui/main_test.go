package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/goleak"

	"github.com/goliatone/go-siteui/pkg/prompt"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type scriptedDriver struct {
	answers []string
	confirm bool
	infos   []string
}

func (d *scriptedDriver) Input(_ context.Context, _ prompt.InputConfig) (string, error) {
	if len(d.answers) == 0 {
		return "", errors.New("no answer scripted")
	}
	answer := d.answers[0]
	d.answers = d.answers[1:]
	return answer, nil
}

func (d *scriptedDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return d.confirm, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func run(t *testing.T, c *cli, args ...string) (int, string, string) {
	t.Helper()
	code := execute(c, args)
	return code, c.out.(*bytes.Buffer).String(), c.errOut.(*bytes.Buffer).String()
}

func testCLI() *cli {
	return newCLI(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
}

func TestValidateCommand(t *testing.T) {
	cases := []struct {
		name string
		args []string
		code int
		out  string
	}{
		{"valid email", []string{"validate", "--kind", "email", "--required", "jane@example.com"}, 0, "valid\n"},
		{"bad email", []string{"validate", "--kind", "email", "jane@example"}, 1, "invalid: Please enter a valid email address\n"},
		{"required empty", []string{"validate", "--required", "  "}, 1, "invalid: This field is required\n"},
		{"negative number", []string{"validate", "--kind", "number", "--", "-3"}, 1, "invalid: Please enter a valid positive number\n"},
		{"phone json", []string{"validate", "--name", "phone", "--json", "0123"}, 1, `{"valid":false,"message":"Please enter a valid phone number"}` + "\n"},
		{"optional empty", []string{"validate", "--kind", "number", ""}, 0, "valid\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := run(t, testCLI(), tc.args...)
			if code != tc.code {
				t.Fatalf("expected exit %d, got %d (stderr %q)", tc.code, code, errOut)
			}
			if out != tc.out {
				t.Fatalf("unexpected output %q", out)
			}
		})
	}
}

func TestValidateCommand_RequiresValue(t *testing.T) {
	code, _, errOut := run(t, testCLI(), "validate")
	if code != 1 || !strings.Contains(errOut, "Error:") {
		t.Fatalf("expected usage error, got %d %q", code, errOut)
	}
}

func TestPromptCommand(t *testing.T) {
	driver := &scriptedDriver{answers: []string{"nope", "jane@example.com", ""}, confirm: true}
	c := testCLI()
	c.newDriver = func(io.Writer) prompt.Driver { return driver }

	code, out, errOut := run(t, c, "prompt", "--form", filepath.Join("testdata", "contact.yaml"))
	if code != 0 {
		t.Fatalf("expected success, got %d (stderr %q)", code, errOut)
	}
	if out != "email: jane@example.com\nphone: \n" {
		t.Fatalf("unexpected output %q", out)
	}
	want := []string{"Contact us", "Please enter a valid email address"}
	if strings.Join(driver.infos, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected info messages %q", driver.infos)
	}
}

func TestPromptCommand_Discard(t *testing.T) {
	driver := &scriptedDriver{answers: []string{"jane@example.com", "+1 555 0100"}}
	c := testCLI()
	c.newDriver = func(io.Writer) prompt.Driver { return driver }

	code, out, _ := run(t, c, "prompt", "--form", filepath.Join("testdata", "contact.yaml"))
	if code != 0 || out != "discarded\n" {
		t.Fatalf("expected discard, got %d %q", code, out)
	}
}

func TestCountCommand(t *testing.T) {
	code, out, errOut := run(t, testCLI(), "count", "--target", "10", "--duration", "40ms", "--step", "10ms")
	if code != 0 {
		t.Fatalf("expected success, got %d (stderr %q)", code, errOut)
	}
	if out != "\r2\r5\r7\r10\n" {
		t.Fatalf("unexpected frames %q", out)
	}
}

func TestCountCommand_InvalidSpec(t *testing.T) {
	code, _, errOut := run(t, testCLI(), "count", "--target", "-5")
	if code != 1 || !strings.Contains(errOut, "Error:") {
		t.Fatalf("expected failure, got %d %q", code, errOut)
	}
}

func TestRenderCommand(t *testing.T) {
	page := filepath.Join("testdata", "page.html")

	code, out, errOut := run(t, testCLI(), "render", page, "--scroll", "1200", "--click", ".show-more-btn")
	if code != 0 {
		t.Fatalf("expected success, got %d (stderr %q)", code, errOut)
	}
	if !strings.Contains(out, `id="invoices" data-target="12000" data-top="1500" data-height="100">12,000</div>`) {
		t.Fatalf("counter did not finish:\n%s", out)
	}
	if !strings.Contains(out, "Sourabh Saini") {
		t.Fatalf("testimonials not injected:\n%s", out)
	}
	if !strings.Contains(out, `class="scroll-to-top"`) {
		t.Fatalf("scroll to top button missing:\n%s", out)
	}
}

func TestRenderCommand_WritesOutput(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.html")
	code, out, errOut := run(t, testCLI(), "render", filepath.Join("testdata", "page.html"), "--output", dest)
	if code != 0 {
		t.Fatalf("expected success, got %d (stderr %q)", code, errOut)
	}
	if !strings.HasPrefix(out, "Page written to") {
		t.Fatalf("unexpected output %q", out)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), `>0</div>`) {
		t.Fatalf("off screen counter must not run:\n%s", data)
	}
}

func TestRenderCommand_UnknownSelector(t *testing.T) {
	code, _, errOut := run(t, testCLI(), "render", filepath.Join("testdata", "page.html"), "--click", "#nope")
	if code != 1 || !strings.Contains(errOut, `no element matches "#nope"`) {
		t.Fatalf("expected selector error, got %d %q", code, errOut)
	}
}

func TestRenderCommand_BadScroll(t *testing.T) {
	code, _, _ := run(t, testCLI(), "render", filepath.Join("testdata", "page.html"), "--scroll", "far")
	if code != 1 {
		t.Fatalf("expected flag parse failure, got %d", code)
	}
}
