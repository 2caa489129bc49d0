// Package dom is a small element model over golang.org/x/net/html. It gives
// the page behaviours element handles (class list, inline style, attributes,
// text) and a Window with scroll state, so they can run and be tested without
// a browser.
package dom
