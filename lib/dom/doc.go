// Package dom is the in-memory document that the hxclient engine reads and
// mutates.
//
// A Document wraps a parsed golang.org/x/net/html tree. Elements are views of
// the underlying html.Node values, so two lookups of the same node yield the
// same *Element and can be compared with ==.
//
//	doc, err := dom.ParseString(`<button id="b" hx-post="/like">Like</button>`, "http://localhost/")
//	btn, err := doc.Query("#b")
//	v, ok := btn.GetAttr("hx-post") // "/like", true
//
// Selectors use CSS syntax compiled by cascadia. Queries are evaluated fresh on
// every call; nothing is cached between calls, so results always reflect the
// current tree.
//
// Response markup is parsed with ParseFragment in a <template> context. The
// resulting Fragment is detached from any document: nothing in it runs and
// nothing is visible until its nodes are moved into a document with
// AppendNodes, PrependNodes, ReplaceChildren or ReplaceWith.
package dom
