package site

import (
	"github.com/goliatone/go-siteui/pkg/dom"
	"github.com/goliatone/go-siteui/pkg/events"
)

func (a *App) setupAlert() error {
	for _, btn := range a.doc.All(dom.ByClass("alert-close")) {
		a.dispatcher.On(btn, events.Click, "alert-close", func(*events.Event) error {
			a.closeAlert()
			return nil
		})
	}
	return nil
}

// CloseAlert hides the alert banner.
func (a *App) CloseAlert() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closeAlert()
}

func (a *App) closeAlert() {
	if banner := a.doc.First(dom.ByClass("alert-banner")); banner.Valid() {
		banner.SetStyle("display", "none")
	}
}
