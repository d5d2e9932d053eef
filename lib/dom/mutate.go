package dom

import "golang.org/x/net/html"

// childNodes detaches and returns every child node of n, in order.
func childNodes(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		out = append(out, c)
		c = next
	}
	return out
}

// AppendNodes moves every child node of src to the end of e.
func (e *Element) AppendNodes(src *Element) {
	for _, c := range childNodes(src.node()) {
		e.node().AppendChild(c)
	}
}

// PrependNodes moves every child node of src to the start of e as one block,
// preserving their order.
func (e *Element) PrependNodes(src *Element) {
	anchor := e.node().FirstChild
	for _, c := range childNodes(src.node()) {
		e.node().InsertBefore(c, anchor)
	}
}

// ReplaceChildren removes every child node of e, then moves in the child
// nodes of src.
func (e *Element) ReplaceChildren(src *Element) {
	childNodes(e.node())
	e.AppendNodes(src)
}

// ReplaceWith puts repl in e's place. A nil repl removes e.
func (e *Element) ReplaceWith(repl *Element) {
	parent := e.node().Parent
	if parent == nil {
		return
	}
	if repl != nil {
		r := repl.node()
		if r.Parent != nil {
			r.Parent.RemoveChild(r)
		}
		parent.InsertBefore(r, e.node())
	}
	parent.RemoveChild(e.node())
}

// Remove detaches e from its parent.
func (e *Element) Remove() {
	if p := e.node().Parent; p != nil {
		p.RemoveChild(e.node())
	}
}
