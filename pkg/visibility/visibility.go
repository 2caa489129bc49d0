// Package visibility reports when observed elements enter the viewport, in
// the manner of an IntersectionObserver: a ratio threshold plus a root margin
// that grows or shrinks the viewport before intersections are computed.
package visibility

import (
	"sync"

	"github.com/goliatone/go-siteui/pkg/dom"
)

// Margin adjusts the viewport edges. Negative values shrink it, so a Bottom
// of -100 ignores the last 100px of the viewport.
type Margin struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// Apply returns r grown by m on each side.
func (m Margin) Apply(r dom.Rect) dom.Rect {
	return dom.Rect{
		Top:    r.Top - m.Top,
		Left:   r.Left - m.Left,
		Width:  r.Width + m.Left + m.Right,
		Height: r.Height + m.Top + m.Bottom,
	}
}

// Options configure an Observer.
type Options struct {
	// Threshold is the visible fraction, 0..1, at which an element counts as
	// intersecting. Zero means any overlap.
	Threshold  float64
	RootMargin Margin
}

// Entry describes one observed element during a Check.
type Entry struct {
	Target         dom.Element
	Ratio          float64
	IsIntersecting bool
}

// Callback receives the entries that changed state during a Check.
type Callback func(entries []Entry, obs *Observer)

// Observer tracks a set of elements against a viewport.
type Observer struct {
	mu       sync.Mutex
	opts     Options
	layout   dom.Layout
	callback Callback
	targets  []dom.Element
	state    map[dom.Element]bool
}

// NewObserver builds an observer using layout for element geometry.
func NewObserver(layout dom.Layout, opts Options, callback Callback) *Observer {
	if layout == nil {
		layout = dom.AttrLayout{}
	}
	if opts.Threshold < 0 {
		opts.Threshold = 0
	}
	if opts.Threshold > 1 {
		opts.Threshold = 1
	}
	return &Observer{
		opts:     opts,
		layout:   layout,
		callback: callback,
		state:    make(map[dom.Element]bool),
	}
}

// Observe starts tracking el. Observing twice is a no-op.
func (o *Observer) Observe(el dom.Element) {
	if !el.Valid() {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.state[el]; ok {
		return
	}
	o.state[el] = false
	o.targets = append(o.targets, el)
}

// Unobserve stops tracking el permanently.
func (o *Observer) Unobserve(el dom.Element) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.state[el]; !ok {
		return
	}
	delete(o.state, el)
	out := o.targets[:0]
	for _, t := range o.targets {
		if t != el {
			out = append(out, t)
		}
	}
	o.targets = out
}

// Disconnect stops tracking every element.
func (o *Observer) Disconnect() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.targets = nil
	o.state = make(map[dom.Element]bool)
}

// Observed reports whether el is tracked.
func (o *Observer) Observed(el dom.Element) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.state[el]
	return ok
}

// Check computes intersections against viewport and invokes the callback
// with every entry whose intersecting state changed. It returns those entries.
func (o *Observer) Check(viewport dom.Rect) []Entry {
	root := o.opts.RootMargin.Apply(viewport)

	o.mu.Lock()
	var changed []Entry
	for _, el := range o.targets {
		entry := o.measure(el, root)
		if o.state[el] == entry.IsIntersecting {
			continue
		}
		o.state[el] = entry.IsIntersecting
		changed = append(changed, entry)
	}
	cb := o.callback
	o.mu.Unlock()

	if len(changed) > 0 && cb != nil {
		cb(changed, o)
	}
	return changed
}

func (o *Observer) measure(el dom.Element, root dom.Rect) Entry {
	box := o.layout.Rect(el)
	area := box.Area()
	overlap := root.Intersect(box).Area()

	entry := Entry{Target: el}
	if area == 0 {
		// An empty box counts as fully visible while it lies inside root.
		if within(box, root) {
			entry.Ratio = 1
			entry.IsIntersecting = true
		}
		return entry
	}
	entry.Ratio = overlap / area
	if o.opts.Threshold == 0 {
		entry.IsIntersecting = overlap > 0
	} else {
		entry.IsIntersecting = entry.Ratio >= o.opts.Threshold
	}
	return entry
}

func within(box, root dom.Rect) bool {
	return box.Top >= root.Top && box.Bottom() <= root.Bottom() &&
		box.Left >= root.Left && box.Right() <= root.Right()
}
