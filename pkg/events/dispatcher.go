package events

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-siteui/pkg/dom"
)

// Target identifies what a listener is attached to: a dom.Element or a
// *dom.Window.
type Target any

type listenerKey struct {
	target Target
	typ    string
}

type listener struct {
	name string
	run  func(*Event)
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the diagnostic sink for listener faults.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// Dispatcher routes events to listeners, bubbling element events from the
// target up to the document root.
type Dispatcher struct {
	mu        sync.RWMutex
	listeners map[listenerKey][]listener
	logger    *zap.Logger
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		listeners: make(map[listenerKey][]listener),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// On registers handler for typ events on target. name labels fault logs.
func (d *Dispatcher) On(target Target, typ, name string, handler Handler) {
	if d == nil || handler == nil || target == nil {
		return
	}
	if el, ok := target.(dom.Element); ok && !el.Valid() {
		return
	}
	typ = strings.TrimSpace(typ)
	l := listener{name: name, run: Isolate(d.logger, typ, name, handler)}

	d.mu.Lock()
	defer d.mu.Unlock()
	key := listenerKey{target: target, typ: typ}
	d.listeners[key] = append(d.listeners[key], l)
}

// Off removes every listener for typ on target.
func (d *Dispatcher) Off(target Target, typ string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.listeners, listenerKey{target: target, typ: typ})
}

// Count reports how many listeners are registered for typ on target.
func (d *Dispatcher) Count(target Target, typ string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.listeners[listenerKey{target: target, typ: typ}])
}

// Dispatch delivers ev to listeners on ev.Target and then on each ancestor.
// It returns true unless a listener prevented the default action.
func (d *Dispatcher) Dispatch(ev *Event) bool {
	if d == nil || ev == nil {
		return true
	}
	for el := ev.Target; el.Valid(); el = el.Parent() {
		d.fire(el, ev)
		if ev.propagationStopped() {
			break
		}
	}
	return !ev.DefaultPrevented()
}

// DispatchWindow delivers a window-level event.
func (d *Dispatcher) DispatchWindow(win *dom.Window, typ string) bool {
	ev := New(typ, dom.Element{})
	d.fire(win, ev)
	return !ev.DefaultPrevented()
}

func (d *Dispatcher) fire(target Target, ev *Event) {
	d.mu.RLock()
	ls := append([]listener(nil), d.listeners[listenerKey{target: target, typ: ev.Type}]...)
	d.mu.RUnlock()
	for _, l := range ls {
		l.run(ev)
	}
}

// Isolate wraps handler so that errors and panics are logged instead of
// propagated.
func Isolate(logger *zap.Logger, typ, name string, handler Handler) func(*Event) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ev *Event) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("event listener panicked",
					zap.String("event", typ),
					zap.String("listener", name),
					zap.Error(fmt.Errorf("%w: %v", ErrListenerPanic, rec)),
				)
			}
		}()
		if err := handler(ev); err != nil {
			logger.Error("event listener failed",
				zap.String("event", typ),
				zap.String("listener", name),
				zap.Error(err),
			)
		}
	}
}

// Guard runs fn inside the same isolation boundary used for listeners. It is
// meant for one-off setup steps.
func Guard(logger *zap.Logger, name string, fn func() error) {
	Isolate(logger, "setup", name, func(*Event) error { return fn() })(nil)
}
