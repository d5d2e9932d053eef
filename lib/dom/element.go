package dom

import (
	"bytes"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Element is an element node of a Document or Fragment.
//
// Element is the html.Node itself viewed through a different method set, so
// pointer identity follows node identity.
type Element html.Node

func wrap(n *html.Node) *Element {
	return (*Element)(n)
}

func (e *Element) node() *html.Node {
	return (*html.Node)(e)
}

// Node exposes the underlying html.Node.
func (e *Element) Node() *html.Node {
	return e.node()
}

// Tag returns the lower-case tag name.
func (e *Element) Tag() string {
	return e.Data
}

// ID returns the id attribute, or "".
func (e *Element) ID() string {
	v, _ := e.GetAttr("id")
	return v
}

// GetAttr returns the value of an attribute and whether it is present.
func (e *Element) GetAttr(name string) (string, bool) {
	for _, a := range e.node().Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether the attribute is present, whatever its value.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.GetAttr(name)
	return ok
}

// SetAttr sets an attribute, adding it if absent.
func (e *Element) SetAttr(name, value string) {
	n := e.node()
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttr removes an attribute if present.
func (e *Element) RemoveAttr(name string) {
	n := e.node()
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// ParentElement returns the parent element, or nil at the top of the tree.
func (e *Element) ParentElement() *Element {
	p := e.node().Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return wrap(p)
}

// Attached reports whether the element has a parent node.
func (e *Element) Attached() bool {
	return e.node().Parent != nil
}

// Closest returns the nearest element, starting with e itself, that matches
// sel. It returns nil when no ancestor matches.
func (e *Element) Closest(sel string) (*Element, error) {
	s, err := compile(sel)
	if err != nil {
		return nil, err
	}
	return e.closest(s), nil
}

func (e *Element) closest(s cascadia.Selector) *Element {
	for n := e.node(); n != nil; n = n.Parent {
		if n.Type == html.ElementNode && s.Match(n) {
			return wrap(n)
		}
	}
	return nil
}

// ClosestWithAttr returns the nearest element, starting with e itself, that
// carries the attribute.
func (e *Element) ClosestWithAttr(name string) *Element {
	for n := e; n != nil; n = n.ParentElement() {
		if n.HasAttr(name) {
			return n
		}
	}
	return nil
}

// Query returns the first descendant matching sel. The element itself is
// never a candidate.
func (e *Element) Query(sel string) (*Element, error) {
	return queryFirst(e.node(), sel)
}

// QueryAll returns every descendant matching sel, in document order.
func (e *Element) QueryAll(sel string) ([]*Element, error) {
	return queryAll(e.node(), sel)
}

// Children returns the element children.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.node().FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, wrap(c))
		}
	}
	return out
}

// FirstElementChild returns the first element child, or nil.
func (e *Element) FirstElementChild() *Element {
	for c := e.node().FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return wrap(c)
		}
	}
	return nil
}

// ChildCount returns the number of child nodes of any type.
func (e *Element) ChildCount() int {
	count := 0
	for c := e.node().FirstChild; c != nil; c = c.NextSibling {
		count++
	}
	return count
}

// HasClass reports whether the class list contains name.
func (e *Element) HasClass(name string) bool {
	v, _ := e.GetAttr("class")
	for _, c := range strings.Fields(v) {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass appends name to the class list unless it is already there.
func (e *Element) AddClass(name string) {
	if e.HasClass(name) {
		return
	}
	v, _ := e.GetAttr("class")
	e.SetAttr("class", strings.TrimSpace(v+" "+name))
}

// RemoveClass drops name from the class list. The class attribute is removed
// when the list becomes empty.
func (e *Element) RemoveClass(name string) {
	v, ok := e.GetAttr("class")
	if !ok {
		return
	}
	kept := make([]string, 0)
	for _, c := range strings.Fields(v) {
		if c != name {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		e.RemoveAttr("class")
		return
	}
	e.SetAttr("class", strings.Join(kept, " "))
}

// Text returns the concatenated text content.
func (e *Element) Text() string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node())
	return sb.String()
}

// OuterHTML renders the element with its own tag.
func (e *Element) OuterHTML() string {
	var buf bytes.Buffer
	_ = html.Render(&buf, e.node())
	return buf.String()
}

// InnerHTML renders the element's child nodes.
func (e *Element) InnerHTML() string {
	var buf bytes.Buffer
	for c := e.node().FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&buf, c)
	}
	return buf.String()
}
