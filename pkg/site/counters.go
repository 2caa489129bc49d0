package site

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-siteui/pkg/counter"
	"github.com/goliatone/go-siteui/pkg/dom"
	"github.com/goliatone/go-siteui/pkg/visibility"
)

func (a *App) setupCounters() error {
	cfg := a.cfg.Counters
	targets, err := a.doc.QuerySelectorAll(cfg.Selector)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return nil
	}

	a.observe(visibility.Options{
		Threshold:  cfg.Threshold,
		RootMargin: cfg.RootMargin,
	}, func(entries []visibility.Entry, obs *visibility.Observer) {
		for _, entry := range entries {
			if !entry.IsIntersecting {
				continue
			}
			obs.Unobserve(entry.Target)
			a.startCounter(entry.Target)
		}
	}, targets)
	return nil
}

// startCounter animates el towards its target attribute. Callers hold a.mu.
func (a *App) startCounter(el dom.Element) {
	cfg := a.cfg.Counters
	raw, ok := el.Attr(cfg.TargetAttr)
	if !ok {
		a.logger.Warn("counter target attribute missing",
			zap.String("attr", cfg.TargetAttr),
			zap.String("id", el.ID()),
		)
		return
	}
	target, err := parseLeadingInt(raw)
	if err != nil {
		a.logger.Warn("counter target is not a number",
			zap.String("attr", cfg.TargetAttr),
			zap.String("value", raw),
			zap.Error(err),
		)
		return
	}

	spec := counter.Spec{Target: target, Duration: cfg.Duration, Step: cfg.Step}
	var handle *counter.Handle
	onTick := func(value int) {
		a.mu.Lock()
		defer a.mu.Unlock()
		// Stop runs under a.mu, so a tick that raced it is discarded here.
		if handle != nil && handle.Status().Stopped {
			return
		}
		if !el.Attached() {
			handle.Stop()
			return
		}
		el.SetText(counter.FormatThousands(value))
	}

	h, started, err := a.counters.Start(el, spec, onTick, counter.WithName(el.ID()))
	if err != nil {
		a.logger.Warn("counter not started", zap.Error(err))
		return
	}
	if started {
		handle = h
	}
}

// parseLeadingInt reads an optional sign followed by digits, ignoring
// anything after them, so "1500+" yields 1500.
func parseLeadingInt(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, fmt.Errorf("site: no digits in %q", raw)
	}
	return strconv.Atoi(s[:end])
}
