package site

import (
	"github.com/goliatone/go-siteui/pkg/dom"
	"github.com/goliatone/go-siteui/pkg/events"
)

var inPageLink = dom.MustSelector(`a[href^="#"]`)

func (a *App) setupSmoothScrolling() error {
	for _, link := range a.doc.All(inPageLink) {
		link := link
		a.dispatcher.On(link, events.Click, "smooth-scroll", func(ev *events.Event) error {
			href, _ := link.Attr("href")
			if href == "#" {
				return nil
			}
			ev.PreventDefault()

			target, err := a.doc.QuerySelector(href)
			if err != nil {
				return err
			}
			if !target.Valid() {
				return nil
			}
			top := a.layout.Rect(target).Top - a.cfg.Scroll.HeaderOffset
			a.scrollWindow(top, dom.ScrollSmooth)
			return nil
		})
	}
	return nil
}

func (a *App) setupScrollToTop() error {
	body := a.doc.Body()
	if !body.Valid() {
		return nil
	}

	btn := a.doc.CreateElement("button")
	btn.AddClass("scroll-to-top")
	btn.SetText("↑")
	tokens := a.themeTokens()
	btn.SetStyles([][2]string{
		{"position", "fixed"},
		{"bottom", "20px"},
		{"right", "20px"},
		{"width", "50px"},
		{"height", "50px"},
		{"border-radius", "50%"},
		{"background-color", tokens.primary},
		{"color", tokens.onPrimary},
		{"border", "none"},
		{"font-size", "20px"},
		{"cursor", "pointer"},
		{"display", "none"},
		{"z-index", "1000"},
		{"transition", "all 0.3s ease"},
	})
	body.AppendChild(btn)
	a.scrollTop = btn

	a.dispatcher.On(btn, events.Click, "scroll-to-top", func(*events.Event) error {
		a.scrollWindow(0, dom.ScrollSmooth)
		return nil
	})
	a.dispatcher.On(a.win, events.Scroll, "scroll-to-top-visibility", func(*events.Event) error {
		if a.win.ScrollY() > a.cfg.Scroll.TopThreshold {
			btn.SetStyle("display", "block")
		} else {
			btn.SetStyle("display", "none")
		}
		return nil
	})
	return nil
}

// ScrollTopButton returns the generated scroll-to-top button.
func (a *App) ScrollTopButton() dom.Element {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.scrollTop
}
