package site

import (
	"github.com/goliatone/go-siteui/pkg/dom"
	"github.com/goliatone/go-siteui/pkg/events"
)

const activeClass = "active"

var hamburgerOpen = []map[string]string{
	{"transform": "rotate(45deg) translate(5px, 5px)"},
	{"opacity": "0"},
	{"transform": "rotate(-45deg) translate(7px, -6px)"},
}

func (a *App) setupNavigation() error {
	toggle := a.doc.ByID("navToggle")
	menu := a.doc.ByID("navMenu")
	if !toggle.Valid() || !menu.Valid() {
		return nil
	}

	a.dispatcher.On(toggle, events.Click, "nav-toggle", func(*events.Event) error {
		open := menu.ToggleClass(activeClass)
		styleHamburger(toggle, open)
		return nil
	})

	a.dispatcher.On(a.doc.Root(), events.Click, "nav-outside", func(ev *events.Event) error {
		if toggle.Contains(ev.Target) || menu.Contains(ev.Target) {
			return nil
		}
		menu.RemoveClass(activeClass)
		styleHamburger(toggle, false)
		return nil
	})
	return nil
}

func styleHamburger(toggle dom.Element, open bool) {
	for idx, span := range toggle.All(dom.ByTag("span")) {
		if !open {
			span.SetStyle("transform", "none")
			span.SetStyle("opacity", "1")
			continue
		}
		if idx < len(hamburgerOpen) {
			for prop, value := range hamburgerOpen[idx] {
				span.SetStyle(prop, value)
			}
		}
	}
}
