package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Element is a handle to an element node. The zero Element is a valid
// "not found" value: every method on it is a no-op.
type Element struct {
	n *html.Node
}

// Valid reports whether el refers to a node.
func (el Element) Valid() bool { return el.n != nil }

// Tag returns the lower-case tag name.
func (el Element) Tag() string {
	if el.n == nil {
		return ""
	}
	return el.n.Data
}

// ID returns the id attribute.
func (el Element) ID() string {
	v, _ := el.Attr("id")
	return v
}

// Attr returns an attribute value and whether it is present.
func (el Element) Attr(name string) (string, bool) {
	if el.n == nil {
		return "", false
	}
	for _, a := range el.n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether the attribute is present, whatever its value.
func (el Element) HasAttr(name string) bool {
	_, ok := el.Attr(name)
	return ok
}

// SetAttr sets or replaces an attribute.
func (el Element) SetAttr(name, value string) {
	if el.n == nil {
		return
	}
	for i, a := range el.n.Attr {
		if a.Namespace == "" && a.Key == name {
			el.n.Attr[i].Val = value
			return
		}
	}
	el.n.Attr = append(el.n.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttr deletes an attribute.
func (el Element) RemoveAttr(name string) {
	if el.n == nil {
		return
	}
	out := el.n.Attr[:0]
	for _, a := range el.n.Attr {
		if a.Namespace == "" && a.Key == name {
			continue
		}
		out = append(out, a)
	}
	el.n.Attr = out
}

// Dataset returns a data-* attribute.
func (el Element) Dataset(key string) (string, bool) {
	return el.Attr("data-" + key)
}

// Classes returns the class list.
func (el Element) Classes() []string {
	v, _ := el.Attr("class")
	return strings.Fields(v)
}

// HasClass reports whether class is in the class list.
func (el Element) HasClass(class string) bool {
	for _, c := range el.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass appends class if missing.
func (el Element) AddClass(class string) {
	if el.n == nil || class == "" || el.HasClass(class) {
		return
	}
	el.SetAttr("class", strings.Join(append(el.Classes(), class), " "))
}

// RemoveClass drops class from the class list.
func (el Element) RemoveClass(class string) {
	if el.n == nil || !el.HasClass(class) {
		return
	}
	classes := el.Classes()
	out := classes[:0]
	for _, c := range classes {
		if c != class {
			out = append(out, c)
		}
	}
	el.SetAttr("class", strings.Join(out, " "))
}

// ToggleClass flips class and reports whether it is now present.
func (el Element) ToggleClass(class string) bool {
	if el.HasClass(class) {
		el.RemoveClass(class)
		return false
	}
	el.AddClass(class)
	return el.HasClass(class)
}

// Text returns the concatenated text content.
func (el Element) Text() string {
	if el.n == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(el.n)
	return b.String()
}

// SetText replaces all children with a single text node.
func (el Element) SetText(text string) {
	if el.n == nil {
		return
	}
	for c := el.n.FirstChild; c != nil; {
		next := c.NextSibling
		el.n.RemoveChild(c)
		c = next
	}
	el.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// Parent returns the parent element, or the zero Element at the root.
func (el Element) Parent() Element {
	if el.n == nil || el.n.Parent == nil {
		return Element{}
	}
	return Element{n: el.n.Parent}
}

// Children returns the direct element children.
func (el Element) Children() []Element {
	if el.n == nil {
		return nil
	}
	var out []Element
	for c := el.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, Element{n: c})
		}
	}
	return out
}

// NextElementSibling returns the next sibling element, skipping text.
func (el Element) NextElementSibling() Element {
	if el.n == nil {
		return Element{}
	}
	for n := el.n.NextSibling; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			return Element{n: n}
		}
	}
	return Element{}
}

// AppendChild moves child to the end of el's children.
func (el Element) AppendChild(child Element) {
	if el.n == nil || child.n == nil {
		return
	}
	detach(child.n)
	el.n.AppendChild(child.n)
}

// InsertAfter places sibling directly after el.
func (el Element) InsertAfter(sibling Element) {
	if el.n == nil || el.n.Parent == nil || sibling.n == nil {
		return
	}
	detach(sibling.n)
	el.n.Parent.InsertBefore(sibling.n, el.n.NextSibling)
}

// Remove detaches el from the tree.
func (el Element) Remove() {
	if el.n == nil {
		return
	}
	detach(el.n)
}

// Attached reports whether el is still connected to a document root.
func (el Element) Attached() bool {
	if el.n == nil {
		return false
	}
	n := el.n
	for n.Parent != nil {
		n = n.Parent
	}
	return n.Type == html.DocumentNode
}

// Contains reports whether other is el or one of its descendants.
func (el Element) Contains(other Element) bool {
	if el.n == nil || other.n == nil {
		return false
	}
	for n := other.n; n != nil; n = n.Parent {
		if n == el.n {
			return true
		}
	}
	return false
}

// First returns the first descendant matching match.
func (el Element) First(match Matcher) Element {
	var found Element
	el.walk(func(candidate Element) bool {
		if match(candidate) {
			found = candidate
			return false
		}
		return true
	})
	return found
}

// All returns every descendant matching match in document order.
func (el Element) All(match Matcher) []Element {
	var out []Element
	el.walk(func(candidate Element) bool {
		if match(candidate) {
			out = append(out, candidate)
		}
		return true
	})
	return out
}

func (el Element) walk(visit func(Element) bool) {
	if el.n == nil {
		return
	}
	var rec func(*html.Node) bool
	rec = func(n *html.Node) bool {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && !visit(Element{n: c}) {
				return false
			}
			if !rec(c) {
				return false
			}
		}
		return true
	}
	rec(el.n)
}

func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}
