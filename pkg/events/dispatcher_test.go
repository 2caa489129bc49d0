package events

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-siteui/pkg/dom"
)

func parse(t *testing.T, markup string) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString(markup)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestDispatch_BubblesToAncestorsAndRoot(t *testing.T) {
	doc := parse(t, `<div id="outer"><button id="btn">go</button></div>`)
	d := NewDispatcher()

	var order []string
	d.On(doc.ByID("btn"), Click, "button", func(*Event) error { order = append(order, "button"); return nil })
	d.On(doc.ByID("outer"), Click, "outer", func(*Event) error { order = append(order, "outer"); return nil })
	d.On(doc.Root(), Click, "document", func(*Event) error { order = append(order, "document"); return nil })

	d.Dispatch(New(Click, doc.ByID("btn")))

	if diff := cmp.Diff([]string{"button", "outer", "document"}, order); diff != "" {
		t.Fatalf("dispatch order mismatch (-want +got):\n%s", diff)
	}
}

func TestDispatch_StopPropagation(t *testing.T) {
	doc := parse(t, `<div id="outer"><button id="btn">go</button></div>`)
	d := NewDispatcher()

	var outer bool
	d.On(doc.ByID("btn"), Click, "button", func(ev *Event) error { ev.StopPropagation(); return nil })
	d.On(doc.ByID("outer"), Click, "outer", func(*Event) error { outer = true; return nil })

	d.Dispatch(New(Click, doc.ByID("btn")))
	if outer {
		t.Fatalf("expected propagation to stop at the button")
	}
}

func TestDispatch_PreventDefault(t *testing.T) {
	doc := parse(t, `<form id="f"></form>`)
	d := NewDispatcher()
	d.On(doc.ByID("f"), Submit, "gate", func(ev *Event) error { ev.PreventDefault(); return nil })

	if d.Dispatch(New(Submit, doc.ByID("f"))) {
		t.Fatalf("expected dispatch to report prevented default")
	}
	if !d.Dispatch(New(Click, doc.ByID("f"))) {
		t.Fatalf("expected unrelated event to proceed")
	}
}

func TestDispatch_FaultIsolation(t *testing.T) {
	doc := parse(t, `<button id="btn">go</button>`)
	core, logs := observer.New(zapcore.ErrorLevel)
	d := NewDispatcher(WithLogger(zap.New(core)))

	var ran []string
	btn := doc.ByID("btn")
	d.On(btn, Click, "panics", func(*Event) error { panic("boom") })
	d.On(btn, Click, "errors", func(*Event) error { return errors.New("nope") })
	d.On(btn, Click, "works", func(*Event) error { ran = append(ran, "works"); return nil })

	d.Dispatch(New(Click, btn))

	if diff := cmp.Diff([]string{"works"}, ran); diff != "" {
		t.Fatalf("expected healthy listener to run (-want +got):\n%s", diff)
	}
	if logs.Len() != 2 {
		t.Fatalf("expected two fault logs, got %d", logs.Len())
	}
	if n := logs.FilterField(zap.String("listener", "panics")).Len(); n != 1 {
		t.Fatalf("expected panic logged with listener name, got %d", n)
	}
}

func TestWindowEventsAndRegistration(t *testing.T) {
	win := dom.NewWindow(800, 600)
	d := NewDispatcher()

	var scrolled int
	d.On(win, Scroll, "scroll", func(*Event) error { scrolled++; return nil })
	d.On(dom.Element{}, Click, "ignored", func(*Event) error { return nil })
	d.On(win, Scroll, "nil handler", nil)

	d.DispatchWindow(win, Scroll)
	d.DispatchWindow(win, Scroll)
	if scrolled != 2 {
		t.Fatalf("expected two scroll callbacks, got %d", scrolled)
	}
	if d.Count(win, Scroll) != 1 || d.Count(dom.Element{}, Click) != 0 {
		t.Fatalf("unexpected listener bookkeeping")
	}

	d.Off(win, Scroll)
	d.DispatchWindow(win, Scroll)
	if scrolled != 2 {
		t.Fatalf("expected no callbacks after Off")
	}
}

func TestGuardSwallowsPanics(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	Guard(zap.New(core), "setup-counters", func() error { panic("missing element") })
	Guard(zap.New(core), "setup-nav", func() error { return nil })
	if logs.Len() != 1 {
		t.Fatalf("expected one logged setup fault, got %d", logs.Len())
	}
}
