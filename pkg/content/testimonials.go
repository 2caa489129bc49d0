// Package content holds the page copy that behaviours inject at runtime,
// currently the testimonials revealed by the "show more" button, and renders
// it into sanitised markup.
package content

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoTestimonials is returned when a content document lists none.
var ErrNoTestimonials = errors.New("content: no testimonials")

// Testimonial is one customer quote.
type Testimonial struct {
	Name   string `yaml:"name" json:"name"`
	Date   string `yaml:"date" json:"date"`
	Rating int    `yaml:"rating" json:"rating"`
	Text   string `yaml:"text" json:"text"`
}

// Stars renders the rating as filled stars, clamped to 0..5.
func (t Testimonial) Stars() string {
	n := t.Rating
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("★", n)
}

type document struct {
	Testimonials []Testimonial `yaml:"testimonials"`
}

// DecodeTestimonials reads a YAML document with a top-level "testimonials"
// list. Entries without a name or text are skipped.
func DecodeTestimonials(r io.Reader) ([]Testimonial, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoTestimonials
		}
		return nil, fmt.Errorf("content: decode testimonials: %w", err)
	}
	out := make([]Testimonial, 0, len(doc.Testimonials))
	for _, t := range doc.Testimonials {
		t.Name = strings.TrimSpace(t.Name)
		t.Text = strings.TrimSpace(t.Text)
		if t.Name == "" || t.Text == "" {
			continue
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, ErrNoTestimonials
	}
	return out, nil
}

// LoadTestimonials reads name from fsys.
func LoadTestimonials(fsys fs.FS, name string) ([]Testimonial, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("content: open %s: %w", name, err)
	}
	defer f.Close()
	return DecodeTestimonials(f)
}
