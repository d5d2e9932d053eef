// Package hxclient is the client half of the htmx attribute protocol: it
// turns hx-* attributes on an element into an HTTP request and merges the
// HTML response back into the document.
//
// Markup declares behavior, the engine carries it out. No per-element event
// handling code is written:
//
//	<button hx-post="/like" hx-target="#count" hx-indicator="#spin">Like</button>
//	<span id="count">41</span>
//	<img id="spin" src="/spin.gif" style="display: none">
//
// # The Entry Point
//
// Engine.Dispatch is the only entry point. Whatever decides that an element
// was activated (a click, a submit, a test) calls it with the element and,
// optionally, the interaction event:
//
//	doc, _ := dom.ParseString(page, "http://localhost:8080/")
//	eng := hxclient.New(doc)
//	btn, _ := doc.Query("button")
//	eng.Dispatch(ctx, btn, hxclient.NewEvent("click"))
//
// Dispatch returns once the request has settled. It never returns an error;
// failures go to the log and to the WithOnError hook.
//
// # Attribute Resolution
//
// Configuration is read from the element or inherited from the nearest
// ancestor carrying the attribute (see Lookup):
//
//   - hx-get, hx-post, hx-put, hx-delete, hx-patch: method and URL, tried in
//     that order. Links default to GET href, forms to POST action.
//   - hx-target: where the response goes (a Descriptor).
//   - hx-swap: innerHTML (default), outerHTML, append, prepend or none.
//   - hx-select: a selector narrowing the parsed response.
//   - hx-indicator: an element shown while the request is in flight.
//   - hx-disabled-elt: extra elements disabled while the request is in flight.
//   - hx-disable: the element never dispatches.
//
// A dispatch needs a method, a URL and a target. Without all three nothing
// happens at all.
//
// # Descriptors
//
// Targets and indicators are found with a small grammar (see Resolve):
// "this" or empty for the element itself, "closest <sel> [<sub>]" for an
// ancestor or a match inside it, "find <sel>" for a match inside the
// element, and any other string as a selector over the whole document.
//
// # Lifecycle
//
// A dispatch disables its element (state marker hx-disabled, native disabled
// on form controls, class hx-request), reveals the indicator, sends the
// request, swaps a successful response and then tears down: the indicator is
// hidden and every element is returned to its exact previous state. Teardown
// runs on every path, including transport errors, error statuses and
// failures while rendering.
//
// Non-2xx responses are failures by default. WithErrorStatusRendering swaps
// them in like any other response.
//
// # Server Cooperation
//
// Requests carry HX-Request, HX-Current-URL, HX-Target, HX-Trigger and
// HX-Trigger-Name. Responses may carry HX-Retarget, HX-Reswap and
// HX-Reselect to redirect a single swap. IsHTMX, TriggerID and friends read
// the request headers on the server side.
package hxclient
