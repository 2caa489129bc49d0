package dom

import (
	"strconv"
	"sync"
)

// ScrollBehavior mirrors the scroll-behavior values of window.scrollTo.
type ScrollBehavior string

const (
	ScrollAuto   ScrollBehavior = "auto"
	ScrollSmooth ScrollBehavior = "smooth"
)

// ScrollCall records one ScrollTo request.
type ScrollCall struct {
	Top      float64
	Behavior ScrollBehavior
}

// Window holds viewport size and scroll position.
type Window struct {
	mu      sync.Mutex
	scrollY float64
	width   float64
	height  float64
	calls   []ScrollCall
}

// NewWindow returns a window with the given viewport size.
func NewWindow(width, height float64) *Window {
	return &Window{width: width, height: height}
}

// ScrollY is the vertical scroll offset.
func (w *Window) ScrollY() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scrollY
}

// ScrollTo moves the viewport. Smooth scrolling lands immediately; only the
// requested behaviour is recorded.
func (w *Window) ScrollTo(top float64, behavior ScrollBehavior) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if top < 0 {
		top = 0
	}
	w.scrollY = top
	w.calls = append(w.calls, ScrollCall{Top: top, Behavior: behavior})
}

// ScrollCalls returns every ScrollTo request in order.
func (w *Window) ScrollCalls() []ScrollCall {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]ScrollCall(nil), w.calls...)
}

// Viewport is the visible area in document coordinates.
func (w *Window) Viewport() Rect {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Rect{Top: w.scrollY, Left: 0, Width: w.width, Height: w.height}
}

// Rect is a box in document coordinates.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Bottom is Top + Height.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Right is Left + Width.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Area is Width * Height, never negative.
func (r Rect) Area() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Intersect returns the overlap of r and other; the zero Rect if disjoint.
func (r Rect) Intersect(other Rect) Rect {
	top := max(r.Top, other.Top)
	left := max(r.Left, other.Left)
	bottom := min(r.Bottom(), other.Bottom())
	right := min(r.Right(), other.Right())
	if bottom <= top || right <= left {
		return Rect{}
	}
	return Rect{Top: top, Left: left, Width: right - left, Height: bottom - top}
}

// Layout supplies element geometry. Without a rendering engine the page
// relies on an injected Layout.
type Layout interface {
	Rect(el Element) Rect
}

// LayoutFunc adapts a function into a Layout.
type LayoutFunc func(el Element) Rect

// Rect implements Layout.
func (fn LayoutFunc) Rect(el Element) Rect { return fn(el) }

// AttrLayout reads geometry from data-top, data-left, data-width and
// data-height attributes. Missing values are zero; a missing width is
// treated as full width (1) so height alone drives visibility ratios.
type AttrLayout struct{}

// Rect implements Layout.
func (AttrLayout) Rect(el Element) Rect {
	r := Rect{
		Top:    attrFloat(el, "data-top"),
		Left:   attrFloat(el, "data-left"),
		Width:  attrFloat(el, "data-width"),
		Height: attrFloat(el, "data-height"),
	}
	if r.Width == 0 {
		r.Width = 1
	}
	return r
}

func attrFloat(el Element, name string) float64 {
	raw, ok := el.Attr(name)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}
