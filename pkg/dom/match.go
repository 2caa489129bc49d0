package dom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
)

// ErrSelector is returned for selectors that do not parse.
var ErrSelector = errors.New("dom: invalid selector")

// Matcher selects elements during a query.
type Matcher func(Element) bool

// ByTag matches any of the given tag names.
func ByTag(tags ...string) Matcher {
	return func(el Element) bool {
		for _, tag := range tags {
			if el.Tag() == tag {
				return true
			}
		}
		return false
	}
}

// ByClass matches elements carrying class.
func ByClass(class string) Matcher {
	return func(el Element) bool { return el.HasClass(class) }
}

// ByAttr matches elements with the attribute present.
func ByAttr(name string) Matcher {
	return func(el Element) bool { return el.HasAttr(name) }
}

// Selector compiles a CSS selector group, such as `a[href^="#"]` or
// "input, select, textarea", into a Matcher.
func Selector(sel string) (Matcher, error) {
	compiled, err := cascadia.Compile(strings.TrimSpace(sel))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrSelector, sel, err)
	}
	return func(el Element) bool {
		return el.n != nil && compiled.Match(el.n)
	}, nil
}

// MustSelector is like Selector but panics on a malformed selector. It is
// meant for package level selectors known at compile time.
func MustSelector(sel string) Matcher {
	m, err := Selector(sel)
	if err != nil {
		panic(err)
	}
	return m
}
