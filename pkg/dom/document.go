package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML page.
type Document struct {
	root *html.Node
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString parses an HTML document held in memory.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// Root returns the document node as an Element. Listeners registered on it
// receive every bubbling event.
func (d *Document) Root() Element {
	return Element{n: d.root}
}

// Body returns the <body> element.
func (d *Document) Body() Element {
	return d.First(ByTag("body"))
}

// ByID returns the element with the given id attribute.
func (d *Document) ByID(id string) Element {
	id = strings.TrimSpace(id)
	if id == "" {
		return Element{}
	}
	return d.First(func(el Element) bool {
		v, ok := el.Attr("id")
		return ok && v == id
	})
}

// First returns the first element in document order matching match.
func (d *Document) First(match Matcher) Element {
	return d.Root().First(match)
}

// All returns every element matching match in document order.
func (d *Document) All(match Matcher) []Element {
	return d.Root().All(match)
}

// QuerySelector returns the first element matching the CSS selector sel, or
// the zero Element when nothing matches.
func (d *Document) QuerySelector(sel string) (Element, error) {
	match, err := Selector(sel)
	if err != nil {
		return Element{}, err
	}
	return d.First(match), nil
}

// QuerySelectorAll returns every element matching the CSS selector sel in
// document order.
func (d *Document) QuerySelectorAll(sel string) ([]Element, error) {
	match, err := Selector(sel)
	if err != nil {
		return nil, err
	}
	return d.All(match), nil
}

// CreateElement returns a detached element.
func (d *Document) CreateElement(tag string) Element {
	return NewElement(tag)
}

// NewElement returns a detached element that may be inserted into any
// document.
func NewElement(tag string) Element {
	tag = strings.ToLower(strings.TrimSpace(tag))
	return Element{n: &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}}
}

// ParseFragment parses markup in the context of parent and returns the
// resulting detached top-level elements. Text-only nodes are dropped.
func (d *Document) ParseFragment(markup string, parent Element) ([]Element, error) {
	context := parent.n
	if context == nil || context.Type != html.ElementNode {
		context = d.Body().n
	}
	if context == nil {
		context = &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, fmt.Errorf("dom: parse fragment: %w", err)
	}
	out := make([]Element, 0, len(nodes))
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			out = append(out, Element{n: n})
		}
	}
	return out, nil
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document, returning an empty string on failure.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}
