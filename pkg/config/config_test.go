package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-siteui/pkg/visibility"
)

func TestDefault(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}

	want := Counters{
		Selector:   ".stat-number",
		TargetAttr: "data-target",
		Duration:   2 * time.Second,
		Step:       16 * time.Millisecond,
		Threshold:  0.5,
		RootMargin: visibility.Margin{Bottom: -100},
	}
	if diff := cmp.Diff(want, cfg.Counters); diff != "" {
		t.Fatalf("counter defaults mismatch (-want +got):\n%s", diff)
	}
	if cfg.Scroll.HeaderOffset != 80 || cfg.Scroll.TopThreshold != 300 {
		t.Fatalf("unexpected scroll defaults: %+v", cfg.Scroll)
	}
	if cfg.Theme.Tokens["primary"] != "#2563eb" {
		t.Fatalf("expected primary token, got %q", cfg.Theme.Tokens["primary"])
	}
}

func TestLoadOverridesSubset(t *testing.T) {
	cfg, err := Load(strings.NewReader("counters:\n  duration: 500ms\nscroll:\n  header_offset: 64\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Counters.Duration != 500*time.Millisecond {
		t.Fatalf("expected duration override, got %s", cfg.Counters.Duration)
	}
	if cfg.Counters.Step != 16*time.Millisecond {
		t.Fatalf("expected step default kept, got %s", cfg.Counters.Step)
	}
	if cfg.Scroll.HeaderOffset != 64 || cfg.Scroll.TopThreshold != 300 {
		t.Fatalf("unexpected scroll config: %+v", cfg.Scroll)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"threshold above one": "counters:\n  threshold: 1.5\n",
		"negative offset":     "scroll:\n  header_offset: -1\n",
		"step above duration": "counters:\n  duration: 10ms\n  step: 20ms\n",
		"malformed selector":  "counters:\n  selector: \"a[href\"\n",
		"unknown variant":     "theme:\n  variant: dark\n",
	}
	for name, doc := range cases {
		if _, err := Load(strings.NewReader(doc)); !errors.Is(err, ErrInvalid) {
			t.Fatalf("%s: expected ErrInvalid, got %v", name, err)
		}
	}

	if _, err := Load(strings.NewReader("counters: [")); err == nil || errors.Is(err, ErrInvalid) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "siteui.yaml")
	if err := os.WriteFile(path, []byte("testimonials:\n  avatar: /img/a.png\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if cfg.Testimonials.Avatar != "/img/a.png" {
		t.Fatalf("expected avatar override, got %q", cfg.Testimonials.Avatar)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected missing file error")
	}
	if _, err := LoadFile(""); err != nil {
		t.Fatalf("expected defaults for empty path: %v", err)
	}
}

func TestLoadThemeVariant(t *testing.T) {
	cfg, err := Load(strings.NewReader("theme:\n  variant: dark\n  variants:\n    dark:\n      primary: \"#0f172a\"\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme.Variant != "dark" || cfg.Theme.Variants["dark"]["primary"] != "#0f172a" {
		t.Fatalf("unexpected theme config: %+v", cfg.Theme)
	}
	if cfg.Theme.Tokens["primary"] != "#2563eb" {
		t.Fatalf("expected base tokens kept, got %q", cfg.Theme.Tokens["primary"])
	}
}
