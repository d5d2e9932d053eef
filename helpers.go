package hxclient

import "net/http"

// Request headers sent with every dispatch.
const (
	HeaderHXRequest     = "HX-Request"
	HeaderHXCurrentURL  = "HX-Current-URL"
	HeaderHXTarget      = "HX-Target"
	HeaderHXTrigger     = "HX-Trigger"
	HeaderHXTriggerName = "HX-Trigger-Name"
)

// Response headers that override a job for one response.
const (
	HeaderHXRetarget = "HX-Retarget"
	HeaderHXReswap   = "HX-Reswap"
	HeaderHXReselect = "HX-Reselect"
)

// setRequestHeaders writes the htmx request headers for a job. Headers whose
// value would be empty are omitted.
func setRequestHeaders(h http.Header, job *Job) {
	h.Set(HeaderHXRequest, "true")
	if doc := job.Document(); doc != nil && doc.Location() != "" {
		h.Set(HeaderHXCurrentURL, doc.Location())
	}
	if id := job.Target().ID(); id != "" {
		h.Set(HeaderHXTarget, id)
	}
	if id := job.Source().ID(); id != "" {
		h.Set(HeaderHXTrigger, id)
	}
	if name := job.Source().Name(); name != "" {
		h.Set(HeaderHXTriggerName, name)
	}
}

// IsHTMX returns true if the request was sent by an htmx-compatible client.
//
// The engine sends HX-Request: true on every request. Servers use this to
// render partial content instead of a full page:
//
//	if hxclient.IsHTMX(r) {
//	    return partialView()
//	}
//	return fullPageView()
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}

// CurrentURL returns the URL of the page the request was dispatched from.
//
// Returns empty string if header not present.
func CurrentURL(r *http.Request) string {
	return r.Header.Get(HeaderHXCurrentURL)
}

// TriggerName returns the name attribute of the element that triggered the request.
//
// Useful for form handlers that need to know which named control fired:
//
//	if hxclient.TriggerName(r) == "save-draft" {
//	    // Handle draft save
//	}
//
// Returns empty string if not present.
func TriggerName(r *http.Request) string {
	return r.Header.Get(HeaderHXTriggerName)
}

// TriggerID returns the id attribute of the element that triggered the request.
//
// Returns empty string if not present.
func TriggerID(r *http.Request) string {
	return r.Header.Get(HeaderHXTrigger)
}

// TargetID returns the id attribute of the target element.
//
// This is the element that will receive the response (hx-target).
// Returns empty string if not present.
func TargetID(r *http.Request) string {
	return r.Header.Get(HeaderHXTarget)
}
