package hxclient

import (
	"context"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"

	"github.com/pthm/hxclient/lib/dom"
)

const testLocation = "http://example.test/app/"

func mustDoc(t *testing.T, page string) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString(page, testLocation)
	require.NoError(t, err)
	return doc
}

func mustQuery(t *testing.T, doc *dom.Document, sel string) *dom.Element {
	t.Helper()
	el, err := doc.Query(sel)
	require.NoError(t, err)
	require.NotNil(t, el, "no element for %q", sel)
	return el
}

func mustJob(t *testing.T, doc *dom.Document, sel string) *Job {
	t.Helper()
	job, err := NewJob(doc, mustQuery(t, doc, sel), "")
	require.NoError(t, err)
	return job
}

func mustTestEngine(t *testing.T, page string, opts ...Option) (*Engine, *TestServer) {
	t.Helper()
	srv := NewTestServer()
	t.Cleanup(srv.Close)
	eng, err := NewTestEngine(srv, page, opts...)
	require.NoError(t, err)
	return eng, srv
}

func mustRenderDoc(t *testing.T, c templ.Component) *dom.Document {
	t.Helper()
	doc, err := dom.ParseComponent(context.Background(), c, testLocation)
	require.NoError(t, err)
	return doc
}
