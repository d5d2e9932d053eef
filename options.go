package hxclient

import (
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	client       Doer
	timeout      time.Duration
	baseURL      string
	header       http.Header
	logger       *slog.Logger
	renderErrors bool
	onError      func(*Job, error)
}

func defaultOptions() options {
	return options{
		client: &http.Client{},
		header: http.Header{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithHTTPClient sets the client used for requests.
// Defaults to a plain *http.Client.
func WithHTTPClient(c Doer) Option {
	return func(o *options) {
		if c != nil {
			o.client = c
		}
	}
}

// WithTimeout bounds each request. Zero, the default, means no bound beyond
// the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithBaseURL sets the URL relative request URLs resolve against when the
// document location is not absolute.
func WithBaseURL(u string) Option {
	return func(o *options) {
		o.baseURL = u
	}
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) Option {
	return func(o *options) {
		o.header.Add(key, value)
	}
}

// WithLogger sets the structured logger. Defaults to discarding output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithErrorStatusRendering renders responses whatever their status code.
//
// By default a non-2xx response is a transport failure: nothing is swapped
// and only teardown runs. With this option an error page returned by the
// server is swapped in like any other response.
func WithErrorStatusRendering() Option {
	return func(o *options) {
		o.renderErrors = true
	}
}

// WithOnError registers a hook called after teardown for every transport or
// render failure. The hook runs outside the engine lock.
func WithOnError(fn func(*Job, error)) Option {
	return func(o *options) {
		o.onError = fn
	}
}
