package hxclient

import "github.com/pthm/hxclient/lib/dom"

// Attribute names read from markup.
const (
	AttrGet         = "hx-get"
	AttrPost        = "hx-post"
	AttrPut         = "hx-put"
	AttrDelete      = "hx-delete"
	AttrPatch       = "hx-patch"
	AttrTarget      = "hx-target"
	AttrSwap        = "hx-swap"
	AttrSelect      = "hx-select"
	AttrIndicator   = "hx-indicator"
	AttrDisabledElt = "hx-disabled-elt"

	// AttrDisable opts an element out of dispatching entirely.
	AttrDisable = "hx-disable"

	// AttrDisabled is the engine-managed state marker. It is present while a
	// request started by (or disabling) the element is in flight.
	AttrDisabled = "hx-disabled"
)

// ClassRequest is added to every element disabled for an in-flight request.
const ClassRequest = "hx-request"

// verbs is the fixed priority order for method resolution.
var verbs = []struct {
	attr   string
	method string
}{
	{AttrGet, "GET"},
	{AttrPost, "POST"},
	{AttrPut, "PUT"},
	{AttrDelete, "DELETE"},
	{AttrPatch, "PATCH"},
}

// Lookup reads an attribute with ancestor inheritance.
//
// The lookup stops at the nearest element (el included) that carries the
// attribute. An empty value there counts as absent; it does not fall through
// to further ancestors, so an empty attribute can cancel an inherited one:
//
//	<div hx-target="#out">
//	  <button hx-post="/a">            <!-- target "#out" -->
//	  <button hx-post="/b" hx-target>  <!-- no target -->
//	</div>
func Lookup(el *dom.Element, name string) (string, bool) {
	if el == nil {
		return "", false
	}
	holder := el.ClosestWithAttr(name)
	if holder == nil {
		return "", false
	}
	v, _ := holder.GetAttr(name)
	if v == "" {
		return "", false
	}
	return v, true
}

// IsDisabled reports whether an element must not be dispatched: it opted out
// with hx-disable, a request involving it is in flight, or it is a natively
// disabled form control.
func IsDisabled(el *dom.Element) bool {
	return el.HasAttr(AttrDisable) || el.HasAttr(AttrDisabled) || el.Disabled()
}

// hasVerb reports whether the element itself carries a verb attribute.
func hasVerb(el *dom.Element) bool {
	for _, v := range verbs {
		if el.HasAttr(v.attr) {
			return true
		}
	}
	return false
}
