package hxclient

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReply(t *testing.T) {
	t.Parallel()

	r := Reply(`<p>hi</p>`)
	assert.Equal(t, `<p>hi</p>`, r.GetBody())
	assert.Zero(t, r.GetStatus())
	assert.Empty(t, r.GetHeaders())
}

func TestResponseChaining(t *testing.T) {
	t.Parallel()

	r := Reply(`<li>x</li>`).
		Status(http.StatusCreated).
		Retarget("#list").
		Reswap(SwapAppend).
		Reselect("li").
		Header("X-Custom", "1")

	assert.Equal(t, http.StatusCreated, r.GetStatus())
	assert.Equal(t, map[string]string{
		HeaderHXRetarget: "#list",
		HeaderHXReswap:   "append",
		HeaderHXReselect: "li",
		"X-Custom":       "1",
	}, r.GetHeaders())
}

func TestResponseImmutability(t *testing.T) {
	t.Parallel()

	base := Reply("x")
	withHeader := base.Header("A", "1")
	other := withHeader.Header("B", "2")

	assert.Empty(t, base.GetHeaders())
	assert.Equal(t, map[string]string{"A": "1"}, withHeader.GetHeaders())
	assert.Len(t, other.GetHeaders(), 2)
}

func TestResponseServeHTTP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		resp       Response
		wantStatus int
	}{
		{"default status", Reply("ok"), http.StatusOK},
		{"explicit status", Reply("boom").Status(http.StatusInternalServerError), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.resp.Retarget("#x").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			res := rec.Result()
			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, res.StatusCode)
			assert.Equal(t, tt.resp.GetBody(), string(body))
			assert.Equal(t, "text/html; charset=utf-8", res.Header.Get("Content-Type"))
			assert.Equal(t, "#x", res.Header.Get(HeaderHXRetarget))
		})
	}
}
