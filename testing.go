package hxclient

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/pthm/hxclient/lib/dom"
)

// RecordedRequest is what a TestServer saw for one request.
type RecordedRequest struct {
	Method      string
	Path        string
	RawQuery    string
	Body        string
	ContentType string
	HTMX        bool
	CurrentURL  string
	Target      string
	Trigger     string
	TriggerName string
}

// TestServer is an HTTP server for exercising an Engine end to end.
//
// Routes are registered on a chi router; every request is recorded before it
// is routed, including requests that end up unmatched:
//
//	srv := hxclient.NewTestServer()
//	defer srv.Close()
//	srv.Handle(http.MethodPost, "/like", hxclient.Reply(`<span>42</span>`))
//
//	// ... dispatch ...
//	req, ok := srv.LastRequest()
type TestServer struct {
	*httptest.Server

	router   chi.Router
	mu       sync.Mutex
	requests []RecordedRequest
}

// NewTestServer starts a recording server.
func NewTestServer() *TestServer {
	s := &TestServer{router: chi.NewRouter()}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	return s
}

// Handle registers a handler for method and chi route pattern.
func (s *TestServer) Handle(method, pattern string, h http.Handler) {
	s.router.Method(method, pattern, h)
}

// HandleFunc registers a handler function for method and chi route pattern.
func (s *TestServer) HandleFunc(method, pattern string, h http.HandlerFunc) {
	s.router.MethodFunc(method, pattern, h)
}

// Requests returns every recorded request, oldest first.
func (s *TestServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// LastRequest returns the most recent request.
func (s *TestServer) LastRequest() (RecordedRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return RecordedRequest{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// RequestCount returns the number of recorded requests.
func (s *TestServer) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

func (s *TestServer) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	rec := RecordedRequest{
		Method:      r.Method,
		Path:        r.URL.Path,
		RawQuery:    r.URL.RawQuery,
		Body:        string(body),
		ContentType: r.Header.Get("Content-Type"),
		HTMX:        IsHTMX(r),
		CurrentURL:  CurrentURL(r),
		Target:      TargetID(r),
		Trigger:     TriggerID(r),
		TriggerName: TriggerName(r),
	}
	s.mu.Lock()
	s.requests = append(s.requests, rec)
	s.mu.Unlock()

	s.router.ServeHTTP(w, r)
}

// NewTestEngine parses page as if it were served from srv's root URL and
// returns an engine that sends its requests to srv.
//
//	srv := hxclient.NewTestServer()
//	defer srv.Close()
//	eng, err := hxclient.NewTestEngine(srv, `<button hx-post="/like">Like</button>`)
func NewTestEngine(srv *TestServer, page string, opts ...Option) (*Engine, error) {
	doc, err := dom.ParseString(page, srv.URL+"/")
	if err != nil {
		return nil, err
	}
	base := []Option{WithHTTPClient(srv.Client()), WithBaseURL(srv.URL)}
	return New(doc, append(base, opts...)...), nil
}
