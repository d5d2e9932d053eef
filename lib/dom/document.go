package dom

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML page together with the URL it was loaded from.
//
// Document is not safe for concurrent use. Callers that share a Document
// between goroutines must serialize access; the hxclient engine does this
// with its own lock.
type Document struct {
	root     *html.Node
	location string
}

// Parse reads a full HTML page. The location is the page URL and is used as
// the fallback form action and as the base for relative request URLs.
func Parse(r io.Reader, location string) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse document: %w", err)
	}
	return &Document{root: root, location: location}, nil
}

// ParseString is Parse over a string.
func ParseString(markup, location string) (*Document, error) {
	return Parse(strings.NewReader(markup), location)
}

// ParseComponent renders a templ component and parses the output as a page.
//
//	doc, err := dom.ParseComponent(ctx, pageTemplate(), "http://localhost/")
func ParseComponent(ctx context.Context, c templ.Component, location string) (*Document, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("dom: render component: %w", err)
	}
	return Parse(&buf, location)
}

// Location returns the URL the document was loaded from.
func (d *Document) Location() string {
	return d.location
}

// Root returns the <html> element.
func (d *Document) Root() *Element {
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Html {
			return wrap(c)
		}
	}
	return nil
}

// Body returns the <body> element, or nil if the page has none.
func (d *Document) Body() *Element {
	root := d.Root()
	if root == nil {
		return nil
	}
	for _, c := range root.Children() {
		if c.DataAtom == atom.Body {
			return c
		}
	}
	return nil
}

// Query returns the first element in the document matching sel, or nil.
func (d *Document) Query(sel string) (*Element, error) {
	return queryFirst(d.root, sel)
}

// QueryAll returns every element in the document matching sel.
func (d *Document) QueryAll(sel string) ([]*Element, error) {
	return queryAll(d.root, sel)
}

// Contains reports whether el is currently part of this document.
func (d *Document) Contains(el *Element) bool {
	if el == nil {
		return false
	}
	n := el.node()
	for n.Parent != nil {
		n = n.Parent
	}
	return n == d.root
}

// HTML renders the whole document.
func (d *Document) HTML() string {
	var buf bytes.Buffer
	_ = html.Render(&buf, d.root)
	return buf.String()
}

// Fragment is inert parsed markup that is not part of any document.
type Fragment struct {
	root *html.Node
}

// ParseFragment parses markup as the content of a <template> element, the
// same context browsers use for detached fragments. Table parts such as
// <tr> or <td> therefore survive parsing without an enclosing <table>.
func ParseFragment(markup string) (*Fragment, error) {
	ctxNode := newTemplate()
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctxNode)
	if err != nil {
		return nil, fmt.Errorf("dom: parse fragment: %w", err)
	}
	root := newTemplate()
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return &Fragment{root: root}, nil
}

// Root returns the container element holding the fragment's top-level nodes.
func (f *Fragment) Root() *Element {
	return wrap(f.root)
}

// Query returns the first element in the fragment matching sel, or nil.
func (f *Fragment) Query(sel string) (*Element, error) {
	return queryFirst(f.root, sel)
}

// HTML renders the fragment's top-level nodes.
func (f *Fragment) HTML() string {
	return f.Root().InnerHTML()
}

func newTemplate() *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Template,
		Data:     atom.Template.String(),
	}
}
