package site

import (
	"errors"
	"fmt"
	"os"
	"sync"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	siteui "github.com/goliatone/go-siteui"
	"github.com/goliatone/go-siteui/pkg/config"
	"github.com/goliatone/go-siteui/pkg/content"
	"github.com/goliatone/go-siteui/pkg/counter"
	"github.com/goliatone/go-siteui/pkg/dom"
	"github.com/goliatone/go-siteui/pkg/events"
	"github.com/goliatone/go-siteui/pkg/render/template/pongo"
	"github.com/goliatone/go-siteui/pkg/timer"
	"github.com/goliatone/go-siteui/pkg/validation"
	"github.com/goliatone/go-siteui/pkg/visibility"
)

// ErrNilDocument is returned by New when no document is supplied.
var ErrNilDocument = errors.New("site: document is required")

// App runs the page behaviours against one document.
type App struct {
	mu sync.Mutex

	doc *dom.Document
	win *dom.Window

	cfg             config.Config
	cfgSet          bool
	logger          *zap.Logger
	scheduler       timer.Scheduler
	layout          dom.Layout
	validator       *validation.Validator
	cards           *content.CardRenderer
	testimonials    []content.Testimonial
	testimonialsSet bool
	themes          theme.ThemeSelector

	dispatcher *events.Dispatcher
	counters   *counter.Trigger[dom.Element]
	observers  []*visibility.Observer
	scrollTop  dom.Element
	started    bool
}

// New builds an App for doc displayed in win. Nothing is wired until Init.
func New(doc *dom.Document, win *dom.Window, opts ...Option) (*App, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if win == nil {
		win = dom.NewWindow(1280, 800)
	}
	a := &App{
		doc:       doc,
		win:       win,
		logger:    zap.NewNop(),
		scheduler: timer.NewReal(),
		layout:    dom.AttrLayout{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	if !a.cfgSet {
		cfg, err := config.Default()
		if err != nil {
			return nil, err
		}
		a.cfg = cfg
	}
	if a.validator == nil {
		a.validator = validation.New(validation.WithLogger(a.logger))
	}
	if a.cards == nil {
		engine, err := pongo.New(pongo.WithFS(siteui.TemplatesFS()))
		if err != nil {
			return nil, fmt.Errorf("site: template engine: %w", err)
		}
		a.cards = content.NewCardRenderer(engine, content.WithAvatar(a.cfg.Testimonials.Avatar))
	}
	if a.themes == nil {
		themes, err := newThemeSelector(a.themeManifest(), a.cfg.Theme.Variant)
		if err != nil {
			return nil, err
		}
		a.themes = themes
	}
	if !a.testimonialsSet {
		ts, err := loadTestimonials(a.cfg.Testimonials.Source)
		if err != nil {
			return nil, err
		}
		a.testimonials = ts
	}

	a.dispatcher = events.NewDispatcher(events.WithLogger(a.logger))
	a.counters = counter.NewTrigger[dom.Element](
		counter.WithScheduler(a.scheduler),
		counter.WithLogger(a.logger),
	)
	return a, nil
}

func loadTestimonials(source string) ([]content.Testimonial, error) {
	if source == "" {
		return content.LoadTestimonials(siteui.ContentFS(), "testimonials.yaml")
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("site: open testimonials: %w", err)
	}
	defer f.Close()
	return content.DecodeTestimonials(f)
}

// Init wires every behaviour and runs the first visibility pass. Each setup
// step is isolated: a failure is logged and the remaining steps still run.
// Calling Init again has no effect.
func (a *App) Init() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.started {
		return
	}
	a.started = true

	steps := []struct {
		name string
		run  func() error
	}{
		{"navigation", a.setupNavigation},
		{"counters", a.setupCounters},
		{"smooth-scroll", a.setupSmoothScrolling},
		{"show-more", a.setupShowMore},
		{"forms", a.setupForms},
		{"alert", a.setupAlert},
		{"scroll-to-top", a.setupScrollToTop},
		{"lazy-images", a.setupLazyImages},
		{"image-errors", a.setupImageErrors},
	}
	for _, step := range steps {
		events.Guard(a.logger, step.name, step.run)
	}
	a.checkVisibility()
}

// Document returns the page document. Read it inside Do when animations may
// be running.
func (a *App) Document() *dom.Document { return a.doc }

// Window returns the page window.
func (a *App) Window() *dom.Window { return a.win }

// Do runs fn on the event loop.
func (a *App) Do(fn func(doc *dom.Document)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fn(a.doc)
}

// Dispatch delivers an event of typ to target and reports whether the default
// action may proceed.
func (a *App) Dispatch(typ string, target dom.Element) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.dispatcher.Dispatch(events.New(typ, target))
}

// Click dispatches a click on target.
func (a *App) Click(target dom.Element) bool {
	return a.Dispatch(events.Click, target)
}

// Submit dispatches a submit on form and reports whether it may proceed.
func (a *App) Submit(form dom.Element) bool {
	return a.Dispatch(events.Submit, form)
}

// ScrollTo simulates the user scrolling the window to top.
func (a *App) ScrollTo(top float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.scrollWindow(top, dom.ScrollAuto)
}

// SetValue types value into a form control and fires its input event.
func (a *App) SetValue(field dom.Element, value string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	setFieldValue(field, value)
	a.dispatcher.Dispatch(events.New(events.Input, field))
}

// Remove detaches el from the page, cancelling any counter animating it.
func (a *App) Remove(el dom.Element) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, node := range append([]dom.Element{el}, el.All(func(dom.Element) bool { return true })...) {
		a.counters.Stop(node)
		for _, obs := range a.observers {
			obs.Unobserve(node)
		}
	}
	el.Remove()
}

// Close stops running animations and disconnects observers.
func (a *App) Close() {
	a.counters.StopAll()
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, obs := range a.observers {
		obs.Disconnect()
	}
}

// scrollWindow moves the viewport and runs what a browser runs on scroll:
// window scroll listeners and visibility observers. Callers hold a.mu.
func (a *App) scrollWindow(top float64, behavior dom.ScrollBehavior) {
	a.win.ScrollTo(top, behavior)
	a.dispatcher.DispatchWindow(a.win, events.Scroll)
	a.checkVisibility()
}

func (a *App) checkVisibility() {
	viewport := a.win.Viewport()
	for _, obs := range a.observers {
		obs.Check(viewport)
	}
}

func (a *App) observe(opts visibility.Options, cb visibility.Callback, targets []dom.Element) *visibility.Observer {
	obs := visibility.NewObserver(a.layout, opts, cb)
	for _, el := range targets {
		obs.Observe(el)
	}
	a.observers = append(a.observers, obs)
	return obs
}
