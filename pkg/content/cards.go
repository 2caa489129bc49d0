package content

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-siteui/pkg/render/template"
)

// CardTemplate is the template name used for testimonial cards.
const CardTemplate = "testimonial_card"

// CardRenderer turns testimonials into card markup.
type CardRenderer struct {
	engine template.Renderer
	policy *bluemonday.Policy
	avatar string
}

// CardOption configures a CardRenderer.
type CardOption func(*CardRenderer)

// WithAvatar sets the avatar image shown on every card.
func WithAvatar(src string) CardOption {
	return func(r *CardRenderer) {
		if trimmed := strings.TrimSpace(src); trimmed != "" {
			r.avatar = trimmed
		}
	}
}

// WithPolicy replaces the sanitising policy.
func WithPolicy(policy *bluemonday.Policy) CardOption {
	return func(r *CardRenderer) {
		if policy != nil {
			r.policy = policy
		}
	}
}

// NewCardRenderer renders cards with engine. The default policy keeps user
// generated content markup (images, headings, classes) and drops scripts and
// event handlers.
func NewCardRenderer(engine template.Renderer, opts ...CardOption) *CardRenderer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Globally()

	r := &CardRenderer{
		engine: engine,
		policy: policy,
		avatar: "assets/img/user-avatar.png",
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Render returns sanitised markup for one card.
func (r *CardRenderer) Render(t Testimonial) (string, error) {
	if r == nil || r.engine == nil {
		return "", fmt.Errorf("content: card renderer has no template engine")
	}
	raw, err := r.engine.RenderTemplate(CardTemplate, map[string]any{
		"avatar": r.avatar,
		"name":   t.Name,
		"date":   t.Date,
		"stars":  t.Stars(),
		"text":   t.Text,
	})
	if err != nil {
		return "", fmt.Errorf("content: render card for %q: %w", t.Name, err)
	}
	return r.policy.Sanitize(raw), nil
}

// RenderAll renders every testimonial in order, stopping at the first error.
func (r *CardRenderer) RenderAll(ts []Testimonial) ([]string, error) {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		card, err := r.Render(t)
		if err != nil {
			return nil, err
		}
		out = append(out, card)
	}
	return out, nil
}
