package site

import (
	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-siteui/pkg/config"
	"github.com/goliatone/go-siteui/pkg/content"
	"github.com/goliatone/go-siteui/pkg/dom"
	"github.com/goliatone/go-siteui/pkg/timer"
	"github.com/goliatone/go-siteui/pkg/validation"
)

// Option configures an App.
type Option func(*App)

// WithLogger sets the diagnostic sink.
func WithLogger(logger *zap.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithConfig replaces the embedded default configuration.
func WithConfig(cfg config.Config) Option {
	return func(a *App) {
		a.cfg = cfg
		a.cfgSet = true
	}
}

// WithScheduler sets the timer source for counter animations.
func WithScheduler(s timer.Scheduler) Option {
	return func(a *App) {
		if s != nil {
			a.scheduler = s
		}
	}
}

// WithLayout sets the geometry source used for scrolling and visibility.
func WithLayout(layout dom.Layout) Option {
	return func(a *App) {
		if layout != nil {
			a.layout = layout
		}
	}
}

// WithValidator replaces the form validation rule table.
func WithValidator(v *validation.Validator) Option {
	return func(a *App) {
		if v != nil {
			a.validator = v
		}
	}
}

// WithCardRenderer sets the renderer for injected testimonial cards.
func WithCardRenderer(r *content.CardRenderer) Option {
	return func(a *App) {
		if r != nil {
			a.cards = r
		}
	}
}

// WithTestimonials sets the testimonials revealed by the "show more" button.
func WithTestimonials(ts []content.Testimonial) Option {
	return func(a *App) {
		a.testimonials = append([]content.Testimonial(nil), ts...)
		a.testimonialsSet = true
	}
}

// WithThemeSelector resolves control colours through selector instead of a
// registry built from the configured theme.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(a *App) {
		if selector != nil {
			a.themes = selector
		}
	}
}
