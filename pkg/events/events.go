// Package events dispatches page events to listeners. Every listener is
// wrapped at registration time in a fault-isolation boundary: errors and
// panics are logged and never reach other listeners or the caller.
package events

import (
	"errors"
	"sync"

	"github.com/goliatone/go-siteui/pkg/dom"
)

// Event types used by the page.
const (
	Click  = "click"
	Submit = "submit"
	Blur   = "blur"
	Input  = "input"
	Scroll = "scroll"
	Error  = "error"
	Load   = "load"
)

// Event is delivered to listeners. Target is the element the event was
// dispatched on; window events carry the zero Element.
type Event struct {
	Type   string
	Target dom.Element

	mu        sync.Mutex
	prevented bool
	stopped   bool
}

// New builds an event for target.
func New(typ string, target dom.Element) *Event {
	return &Event{Type: typ, Target: target}
}

// PreventDefault cancels the default action (form submit, link navigation).
func (e *Event) PreventDefault() {
	e.mu.Lock()
	e.prevented = true
	e.mu.Unlock()
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (e *Event) DefaultPrevented() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.prevented
}

// StopPropagation keeps the event from bubbling past the current element.
func (e *Event) StopPropagation() {
	e.mu.Lock()
	e.stopped = true
	e.mu.Unlock()
}

func (e *Event) propagationStopped() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stopped
}

// Handler reacts to an event. A returned error is logged by the dispatcher.
type Handler func(ev *Event) error

// ErrListenerPanic wraps values recovered from a panicking listener.
var ErrListenerPanic = errors.New("events: listener panic")
