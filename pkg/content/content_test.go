package content

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	siteui "github.com/goliatone/go-siteui"
	"github.com/goliatone/go-siteui/pkg/render/template/pongo"
)

func TestLoadTestimonials_Embedded(t *testing.T) {
	got, err := LoadTestimonials(siteui.ContentFS(), "testimonials.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	names := make([]string, 0, len(got))
	for _, tm := range got {
		names = append(names, tm.Name)
	}
	if diff := cmp.Diff([]string{"Sourabh Saini", "Clara cool", "Rishi Mathuria"}, names); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if got[1].Stars() != "★★★★★" {
		t.Fatalf("unexpected stars %q", got[1].Stars())
	}
}

func TestDecodeTestimonials_SkipsIncomplete(t *testing.T) {
	got, err := DecodeTestimonials(strings.NewReader(`testimonials:
  - name: " Ada "
    text: Great
    rating: 9
  - name: ""
    text: orphan
`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []Testimonial{{Name: "Ada", Text: "Great", Rating: 9}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("decode mismatch (-want +got):\n%s", diff)
	}
	if got[0].Stars() != "★★★★★" {
		t.Fatalf("expected rating clamped to five stars")
	}

	if _, err := DecodeTestimonials(strings.NewReader("")); !errors.Is(err, ErrNoTestimonials) {
		t.Fatalf("expected ErrNoTestimonials for empty doc, got %v", err)
	}
	if _, err := DecodeTestimonials(strings.NewReader("testimonials: {")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func newCards(t *testing.T, opts ...CardOption) *CardRenderer {
	t.Helper()
	engine, err := pongo.New(pongo.WithFS(siteui.TemplatesFS()))
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	return NewCardRenderer(engine, opts...)
}

func TestCardRenderer_Render(t *testing.T) {
	cards := newCards(t, WithAvatar("/img/avatar.png"))

	got, err := cards.Render(Testimonial{Name: "Ada", Date: "May 1, 2024", Rating: 4, Text: "Worth it"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		`class="testimonial-card"`,
		`src="/img/avatar.png"`,
		`<h4 class="testimonial-name">Ada</h4>`,
		`★★★★`,
		`<p class="testimonial-text">Worth it</p>`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in card:\n%s", want, got)
		}
	}
}

func TestCardRenderer_SanitisesContent(t *testing.T) {
	cards := newCards(t)

	got, err := cards.Render(Testimonial{
		Name: `<img src=x onerror="alert(1)">`,
		Text: `<script>alert(1)</script>hello`,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(got, "<script") || strings.Contains(got, "<img src=x") {
		t.Fatalf("expected hostile markup neutralised:\n%s", got)
	}
}

func TestCardRenderer_RenderAll(t *testing.T) {
	cards := newCards(t)
	out, err := cards.RenderAll([]Testimonial{{Name: "A", Text: "x"}, {Name: "B", Text: "y"}})
	if err != nil {
		t.Fatalf("render all: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(out))
	}

	var empty *CardRenderer
	if _, err := empty.Render(Testimonial{}); err == nil {
		t.Fatalf("expected error from nil renderer")
	}
}
