package hxclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/pthm/hxclient/lib/dom"
)

// Engine dispatches requests declared by hx-* attributes and swaps the
// responses into its document.
//
// The engine owns the document lock. Every read or write of the document
// during a dispatch happens under it, and the lock is released only while
// waiting for the network, so dispatches interleave the way they would on a
// single event loop. Code outside the engine that touches the document while
// dispatches may be running should go through Exec.
//
//	doc, _ := dom.ParseString(page, "http://localhost:8080/")
//	eng := hxclient.New(doc, hxclient.WithTimeout(5*time.Second))
//	btn, _ := doc.Query("#like")
//	eng.Dispatch(ctx, btn, hxclient.NewEvent("click"))
type Engine struct {
	mu    sync.Mutex
	doc   *dom.Document
	opts  options
	held  map[*dom.Element]*hold
	shown map[*dom.Element]int
}

// New creates an engine over a document.
func New(doc *dom.Document, opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{
		doc:   doc,
		opts:  o,
		held:  make(map[*dom.Element]*hold),
		shown: make(map[*dom.Element]int),
	}
}

// Document returns the engine's document. Use Exec to access it while
// dispatches are in flight.
func (e *Engine) Document() *dom.Document {
	return e.doc
}

// Exec runs fn with the document lock held.
func (e *Engine) Exec(fn func(doc *dom.Document)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.doc)
}

// Dispatch runs one request for el and returns once it has settled.
//
// A disabled element, or one whose method, URL or target cannot be resolved,
// is left alone: no request, no document change. Otherwise the element (and
// its hx-disabled-elt targets) is disabled, the indicator revealed, the
// request sent and a successful response swapped into the target. Teardown
// then hides the indicator and re-enables everything, whatever happened.
//
// Failures are never returned. They are logged and passed to the OnError
// hook, if any.
func (e *Engine) Dispatch(ctx context.Context, el *dom.Element, ev Event) {
	log := e.opts.logger

	job, m, err := e.start(el, ev)
	if errors.Is(err, ErrDispatchPanic) {
		log.WarnContext(ctx, "dispatch aborted", "error", err)
		return
	}
	if err != nil {
		log.DebugContext(ctx, "dispatch skipped", "reason", err.Error())
		return
	}
	if job == nil {
		return
	}

	log = log.With("dispatch_id", job.ID(), "method", job.Method(), "url", job.URL())
	start := time.Now()
	res := e.fetch(ctx, job)

	err = func() error {
		e.mu.Lock()
		defer e.mu.Unlock()
		defer m.restore()
		return e.settle(job, res)
	}()

	if err != nil {
		log.WarnContext(ctx, "dispatch failed",
			"status", res.status,
			"duration", time.Since(start),
			"error", err,
		)
		if e.opts.onError != nil {
			e.opts.onError(job, err)
		}
		return
	}
	log.InfoContext(ctx, "dispatch completed",
		"status", res.status,
		"swap", string(job.Swap()),
		"duration", time.Since(start),
	)
}

// start runs begin under the document lock. A panic in begin, typically from
// a caller supplied Event, aborts the dispatch before any request is sent.
func (e *Engine) start(el *dom.Element, ev Event) (job *Job, m *marks, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			job, m, err = nil, nil, fmt.Errorf("%w: %v", ErrDispatchPanic, r)
		}
	}()
	return e.begin(el, ev)
}

// begin runs the synchronous part of a dispatch: disabled check, default
// prevention, job construction and marking. A nil job with a nil error means
// the element is disabled. Callers hold e.mu.
func (e *Engine) begin(el *dom.Element, ev Event) (*Job, *marks, error) {
	if el == nil || IsDisabled(el) {
		return nil, nil, nil
	}
	if ev != nil && (el.Tag() == "a" || el.IsForm() || hasVerb(el)) {
		ev.PreventDefault()
	}
	job, err := NewJob(e.doc, el, e.opts.baseURL)
	if err != nil {
		return nil, nil, err
	}
	return job, e.mark(job), nil
}

// response is what the network phase hands to the render phase.
type response struct {
	status int
	header http.Header
	body   string
	err    error
}

// fetch sends the job's request. It runs without the document lock.
func (e *Engine) fetch(ctx context.Context, job *Job) (res response) {
	defer func() {
		if r := recover(); r != nil {
			res = response{err: fmt.Errorf("%w: panic: %v", ErrTransport, r)}
		}
	}()

	if e.opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.timeout)
		defer cancel()
	}

	opts := job.Options()
	var body io.Reader = http.NoBody
	if opts.HasBody {
		body = strings.NewReader(opts.Body)
	}
	req, err := http.NewRequestWithContext(ctx, opts.Method, job.URL(), body)
	if err != nil {
		return response{err: fmt.Errorf("%w: %w", ErrTransport, err)}
	}
	for k, vs := range e.opts.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	for k, vs := range opts.Header {
		req.Header[k] = vs
	}
	setRequestHeaders(req.Header, job)

	resp, err := e.opts.client.Do(req)
	if err != nil {
		return response{err: fmt.Errorf("%w: %w", ErrTransport, err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{status: resp.StatusCode, err: fmt.Errorf("%w: read body: %w", ErrTransport, err)}
	}

	res = response{status: resp.StatusCode, header: resp.Header, body: string(data)}
	if !e.opts.renderErrors && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		res.err = fmt.Errorf("%w: %d", ErrHTTPStatus, resp.StatusCode)
	}
	return res
}

// settle renders a fetched response. A panic during rendering is converted
// into ErrRenderPanic so teardown always follows. Callers hold e.mu.
func (e *Engine) settle(job *Job, res response) (err error) {
	if res.err != nil {
		return res.err
	}
	// 204 carries no content to swap.
	if res.status == http.StatusNoContent {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRenderPanic, r)
		}
	}()

	job, err = job.withOverrides(res.header)
	if err != nil {
		return err
	}
	return Render(res.body, job)
}
