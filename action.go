package hxclient

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

// Action builds the hx-* attributes that make an element dispatchable.
//
// It is the authoring side of the attribute surface the engine reads:
//
//	attrs := hxclient.NewAction("/like", http.MethodPost).
//	    Target("#count").
//	    Indicator("#spinner").
//	    Attrs()
//
// Only attributes that were set are emitted, so inherited configuration on
// ancestors keeps applying.
type Action struct {
	url         string
	method      string
	target      string
	swap        SwapMode
	selector    string
	indicator   string
	disabledElt string
}

// NewAction creates a builder for a request to url. An empty method means GET.
func NewAction(url, method string) *Action {
	if method == "" {
		method = http.MethodGet
	}
	return &Action{url: url, method: method}
}

// URL returns the request URL.
func (a *Action) URL() string {
	return a.url
}

// Method returns the request method.
func (a *Action) Method() string {
	return a.method
}

// Target sets the hx-target descriptor.
func (a *Action) Target(descriptor string) *Action {
	a.target = descriptor
	return a
}

// TargetThis targets the element itself.
func (a *Action) TargetThis() *Action {
	return a.Target("this")
}

// TargetClosest targets the nearest ancestor matching sel.
func (a *Action) TargetClosest(sel string) *Action {
	return a.Target("closest " + sel)
}

// TargetFind targets the first descendant matching sel.
func (a *Action) TargetFind(sel string) *Action {
	return a.Target("find " + sel)
}

// Swap sets the hx-swap mode.
func (a *Action) Swap(mode SwapMode) *Action {
	a.swap = mode
	return a
}

// SwapOuter replaces the target element itself.
func (a *Action) SwapOuter() *Action { return a.Swap(SwapOuter) }

// SwapInner replaces the target's children.
func (a *Action) SwapInner() *Action { return a.Swap(SwapInner) }

// SwapAppend adds the response after the target's children.
func (a *Action) SwapAppend() *Action { return a.Swap(SwapAppend) }

// SwapPrepend adds the response before the target's children.
func (a *Action) SwapPrepend() *Action { return a.Swap(SwapPrepend) }

// SwapNone discards the response.
func (a *Action) SwapNone() *Action { return a.Swap(SwapNone) }

// Select narrows the response to the first match of sel.
func (a *Action) Select(sel string) *Action {
	a.selector = sel
	return a
}

// Indicator sets the element revealed while the request is in flight.
func (a *Action) Indicator(descriptor string) *Action {
	a.indicator = descriptor
	return a
}

// DisabledElt sets extra elements to disable while the request is in flight.
func (a *Action) DisabledElt(descriptor string) *Action {
	a.disabledElt = descriptor
	return a
}

// Attrs returns the configured attributes for spreading onto an element.
func (a *Action) Attrs() templ.Attributes {
	attrs := WireAttrs(a.url, a.method)
	if a.target != "" {
		attrs[AttrTarget] = a.target
	}
	if a.swap != "" {
		attrs[AttrSwap] = string(a.swap)
	}
	if a.selector != "" {
		attrs[AttrSelect] = a.selector
	}
	if a.indicator != "" {
		attrs[AttrIndicator] = a.indicator
	}
	if a.disabledElt != "" {
		attrs[AttrDisabledElt] = a.disabledElt
	}
	return attrs
}

// AsLink returns plain link attributes (href only) for the action's URL.
// A link without verb attributes still dispatches a GET to its href.
func (a *Action) AsLink() templ.Attributes {
	return templ.Attributes{"href": a.url}
}

// WireAttrs builds the single verb attribute for a method and URL.
//
//	WireAttrs("/items/7", http.MethodPut) // {"hx-put": "/items/7"}
//
// Unknown methods fall back to hx-get.
func WireAttrs(path, method string) templ.Attributes {
	attrs := templ.Attributes{}
	switch method {
	case http.MethodPost:
		attrs[AttrPost] = path
	case http.MethodPut:
		attrs[AttrPut] = path
	case http.MethodPatch:
		attrs[AttrPatch] = path
	case http.MethodDelete:
		attrs[AttrDelete] = path
	default:
		attrs[AttrGet] = path
	}
	return attrs
}

// Tag returns a templ component rendering one element with the given
// attributes around its children.
//
//	hxclient.Tag("button", hxclient.NewAction("/like", "POST").Target("#count").Attrs(),
//	    templ.Raw("Like"))
func Tag(name string, attrs templ.Attributes, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+name); err != nil {
			return err
		}
		if err := templ.RenderAttributes(ctx, w, attrs); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		for _, c := range children {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</"+name+">")
		return err
	})
}
