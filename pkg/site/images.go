package site

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-siteui/pkg/dom"
	"github.com/goliatone/go-siteui/pkg/events"
	"github.com/goliatone/go-siteui/pkg/visibility"
)

const lazyClass = "lazy"

var lazyImage = dom.MustSelector("img[data-src]")

func (a *App) setupLazyImages() error {
	images := a.doc.All(lazyImage)
	if len(images) == 0 {
		return nil
	}
	a.observe(visibility.Options{
		Threshold: a.cfg.LazyImages.Threshold,
	}, func(entries []visibility.Entry, obs *visibility.Observer) {
		for _, entry := range entries {
			if !entry.IsIntersecting {
				continue
			}
			img := entry.Target
			if src, ok := img.Dataset("src"); ok {
				img.SetAttr("src", src)
			}
			img.RemoveClass(lazyClass)
			obs.Unobserve(img)
		}
	}, images)
	return nil
}

func (a *App) setupImageErrors() error {
	for _, img := range a.doc.All(dom.ByTag("img")) {
		a.watchImage(img)
	}
	return nil
}

// watchImage hides img when it fails to load.
func (a *App) watchImage(img dom.Element) {
	if a.dispatcher.Count(img, events.Error) > 0 {
		return
	}
	a.dispatcher.On(img, events.Error, "image-error", func(*events.Event) error {
		img.SetStyle("display", "none")
		src, _ := img.Attr("src")
		a.logger.Warn("failed to load image", zap.String("src", src))
		return nil
	})
}

// FailImage reports that img could not be loaded.
func (a *App) FailImage(img dom.Element) {
	a.Dispatch(events.Error, img)
}
