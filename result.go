package hxclient

import (
	"io"
	"net/http"
)

// Response is a canned server reply for an engine request.
//
// Response is a fluent builder that sets the body, status and the override
// headers the engine honors, and serves them as an http.Handler:
//
//	// Plain fragment
//	srv.Handle(http.MethodPost, "/like", hxclient.Reply(`<span id="count">42</span>`))
//
//	// Error page
//	hxclient.Reply(`<p>boom</p>`).Status(http.StatusInternalServerError)
//
//	// Redirect the swap elsewhere
//	hxclient.Reply(`<li>new</li>`).Retarget("#list").Reswap(hxclient.SwapAppend)
type Response struct {
	body    string
	status  int
	headers map[string]string
}

// Reply creates a 200 response with the given HTML body.
func Reply(body string) Response {
	return Response{body: body}
}

// Status sets the HTTP status code. The default is 200.
func (r Response) Status(code int) Response {
	r.status = code
	return r
}

// Header sets a response header.
func (r Response) Header(key, value string) Response {
	headers := make(map[string]string, len(r.headers)+1)
	for k, v := range r.headers {
		headers[k] = v
	}
	headers[key] = value
	r.headers = headers
	return r
}

// Retarget makes the engine swap into descriptor instead of the job target.
func (r Response) Retarget(descriptor string) Response {
	return r.Header(HeaderHXRetarget, descriptor)
}

// Reswap overrides the swap mode for this response.
func (r Response) Reswap(mode SwapMode) Response {
	return r.Header(HeaderHXReswap, string(mode))
}

// Reselect overrides the content selector for this response.
func (r Response) Reselect(sel string) Response {
	return r.Header(HeaderHXReselect, sel)
}

// GetBody returns the response body.
func (r Response) GetBody() string {
	return r.body
}

// GetStatus returns the HTTP status code (0 means not set, use default 200).
func (r Response) GetStatus() int {
	return r.status
}

// GetHeaders returns the response headers.
func (r Response) GetHeaders() map[string]string {
	return r.headers
}

// ServeHTTP writes the response.
func (r Response) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	for k, v := range r.headers {
		w.Header().Set(k, v)
	}
	status := r.status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = io.WriteString(w, r.body)
}
