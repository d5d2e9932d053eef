package hxclient

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/pthm/hxclient/lib/dom"
)

// RequestOptions is the request half of a Job.
type RequestOptions struct {
	Method string
	Header http.Header
	Body   string
	// HasBody is false when the request goes out with an empty body.
	HasBody bool
}

// Job describes one dispatch: what to request and where the response goes.
//
// A Job exists only when method, URL and target all resolved. It is not
// modified after construction; response overrides produce a new Job.
type Job struct {
	id        string
	doc       *dom.Document
	source    *dom.Element
	method    string
	url       string
	options   RequestOptions
	swap      SwapMode
	selector  string
	target    *dom.Element
	indicator *dom.Element
	disable   []*dom.Element
}

// NewJob resolves a source element's configuration into a Job.
//
// base is used to resolve relative URLs when the document has no absolute
// location. The returned error wraps ErrConfigIncomplete when the method, URL
// or target cannot be resolved, and nothing else about the element is read.
func NewJob(doc *dom.Document, el *dom.Element, base string) (*Job, error) {
	method, rawURL, ok := ResolveMethodURL(doc, el)
	if !ok {
		return nil, fmt.Errorf("%w: no method or url", ErrConfigIncomplete)
	}
	targetDesc, _ := Lookup(el, AttrTarget)
	target, err := ResolveFirst(doc, el, targetDesc)
	if err != nil {
		return nil, fmt.Errorf("%w: target: %w", ErrConfigIncomplete, err)
	}
	if target == nil {
		return nil, fmt.Errorf("%w: no target for %q", ErrConfigIncomplete, targetDesc)
	}
	u, err := resolveURL(rawURL, doc.Location(), base)
	if err != nil {
		return nil, fmt.Errorf("%w: url %q: %w", ErrConfigIncomplete, rawURL, err)
	}

	job := &Job{
		id:     uuid.NewString(),
		doc:    doc,
		source: el,
		method: method,
		url:    u,
		target: target,
	}

	body, hasBody := BuildBody(el, method)
	job.options = RequestOptions{Method: method, Header: http.Header{}, Body: body, HasBody: hasBody}
	if method != "GET" {
		job.options.Header.Set("Content-Type", ContentTypeForm)
	}

	swap, _ := Lookup(el, AttrSwap)
	job.swap = ParseSwapMode(swap)
	job.selector, _ = Lookup(el, AttrSelect)

	// An unresolvable indicator or disable-target leaves the job without one.
	indicatorDesc, hasIndicator := Lookup(el, AttrIndicator)
	if hasIndicator {
		job.indicator, _ = ResolveFirst(doc, el, indicatorDesc)
	}
	if desc, ok := Lookup(el, AttrDisabledElt); ok {
		job.disable, _ = Resolve(doc, el, desc)
	}
	return job, nil
}

// ResolveMethodURL finds the request method and raw URL for an element.
//
// Verb attributes are tried in the order GET, POST, PUT, DELETE, PATCH, each
// with ancestor inheritance, so an inherited hx-get wins over an hx-post on
// the element itself. Without any verb, a link with an href issues a GET to
// it and a form POSTs to its action or, lacking one, the document location.
func ResolveMethodURL(doc *dom.Document, el *dom.Element) (method, rawURL string, ok bool) {
	if el == nil {
		return "", "", false
	}
	for _, v := range verbs {
		if u, found := Lookup(el, v.attr); found {
			return v.method, u, true
		}
	}
	switch {
	case el.Tag() == "a" && el.HasAttr("href"):
		href, _ := el.GetAttr("href")
		return "GET", href, true
	case el.IsForm():
		action, _ := el.GetAttr("action")
		if action == "" && doc != nil {
			action = doc.Location()
		}
		if action == "" {
			return "", "", false
		}
		return "POST", action, true
	}
	return "", "", false
}

// resolveURL makes raw absolute against the document location, or against
// base when the location is not absolute. A raw URL that stays relative is
// returned as is.
func resolveURL(raw, location, base string) (string, error) {
	ref, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}
	for _, candidate := range []string{location, base} {
		if candidate == "" {
			continue
		}
		b, err := url.Parse(candidate)
		if err != nil || !b.IsAbs() {
			continue
		}
		return b.ResolveReference(ref).String(), nil
	}
	return ref.String(), nil
}

// ID returns the dispatch id used to correlate log lines.
func (j *Job) ID() string { return j.id }

// Document returns the document the job was resolved against.
func (j *Job) Document() *dom.Document { return j.doc }

// Source returns the element that originated the dispatch.
func (j *Job) Source() *dom.Element { return j.source }

// Method returns the HTTP method.
func (j *Job) Method() string { return j.method }

// URL returns the resolved request URL.
func (j *Job) URL() string { return j.url }

// Options returns the request method, headers and body. The header is a copy.
func (j *Job) Options() RequestOptions {
	o := j.options
	o.Header = j.options.Header.Clone()
	return o
}

// Swap returns the swap mode.
func (j *Job) Swap() SwapMode { return j.swap }

// Selector returns the content selector, or "".
func (j *Job) Selector() string { return j.selector }

// Target returns the element the response is merged into.
func (j *Job) Target() *dom.Element { return j.target }

// Indicator returns the element revealed during the request, or nil.
func (j *Job) Indicator() *dom.Element { return j.indicator }

// DisableTargets returns the extra elements disabled during the request.
func (j *Job) DisableTargets() []*dom.Element {
	return append([]*dom.Element(nil), j.disable...)
}

// withOverrides returns a copy of the job with response header overrides
// applied. HX-Retarget is resolved as a descriptor relative to the source.
func (j *Job) withOverrides(h http.Header) (*Job, error) {
	retarget := h.Get(HeaderHXRetarget)
	reswap := h.Get(HeaderHXReswap)
	reselect := h.Get(HeaderHXReselect)
	if retarget == "" && reswap == "" && reselect == "" {
		return j, nil
	}
	next := *j
	if retarget != "" {
		target, err := ResolveFirst(j.doc, j.source, retarget)
		if err != nil {
			return nil, fmt.Errorf("%w: retarget %q: %w", ErrTargetNotFound, retarget, err)
		}
		if target == nil {
			return nil, fmt.Errorf("%w: retarget %q", ErrTargetNotFound, retarget)
		}
		next.target = target
	}
	if reswap != "" {
		next.swap = ParseSwapMode(reswap)
	}
	if reselect != "" {
		next.selector = reselect
	}
	return &next, nil
}
