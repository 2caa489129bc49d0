// Package site wires page events to the behaviours of the marketing page:
// navigation toggle, statistic counters, smooth scrolling, testimonial
// injection, form validation, alert dismiss, scroll-to-top, lazy images and
// broken image handling.
//
// An App owns one Document and one Window and serialises every callback
// (dispatched events, timer ticks, visibility changes) under a single lock,
// the way a browser event loop runs one task at a time. Each listener is
// registered through events.Dispatcher, so a failing behaviour is logged and
// never takes the others down.
package site
