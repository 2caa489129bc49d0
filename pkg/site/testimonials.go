package site

import (
	"fmt"

	"github.com/goliatone/go-siteui/pkg/dom"
	"github.com/goliatone/go-siteui/pkg/events"
)

func (a *App) setupShowMore() error {
	btn := a.doc.First(dom.ByClass("show-more-btn"))
	grid := a.doc.First(dom.ByClass("testimonials-grid"))
	if !btn.Valid() || !grid.Valid() {
		return nil
	}

	a.dispatcher.On(btn, events.Click, "show-more", func(*events.Event) error {
		cards, err := a.cards.RenderAll(a.testimonials)
		if err != nil {
			return err
		}
		for _, card := range cards {
			nodes, err := a.doc.ParseFragment(card, grid)
			if err != nil {
				return fmt.Errorf("site: insert testimonial: %w", err)
			}
			for _, node := range nodes {
				grid.AppendChild(node)
				for _, img := range node.All(dom.ByTag("img")) {
					a.watchImage(img)
				}
			}
		}
		btn.SetStyle("display", "none")
		return nil
	})
	return nil
}
