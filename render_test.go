package hxclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		page     string
		markup   string
		check    string
		want     string
		wantGone bool
	}{
		{
			name:   "innerHTML replaces all children",
			page:   `<div id="t" hx-get="/x">text<b>old</b></div>`,
			markup: `<span>new</span>`,
			check:  "#t",
			want:   `<span>new</span>`,
		},
		{
			name:   "surrounding whitespace is trimmed",
			page:   `<div id="t" hx-get="/x"></div>`,
			markup: "\n  <i>x</i>  \n",
			check:  "#t",
			want:   `<i>x</i>`,
		},
		{
			name:   "text nodes move too",
			page:   `<p id="t" hx-get="/x"></p>`,
			markup: `a <b>b</b> c`,
			check:  "#t",
			want:   `a <b>b</b> c`,
		},
		{
			name:   "append keeps existing children",
			page:   `<ul id="t" hx-get="/x" hx-swap="append"><li>a</li></ul>`,
			markup: `<li>b</li><li>c</li>`,
			check:  "#t",
			want:   `<li>a</li><li>b</li><li>c</li>`,
		},
		{
			name:   "prepend inserts one block in order",
			page:   `<ul id="t" hx-get="/x" hx-swap="prepend"><li>a</li></ul>`,
			markup: `<li>b</li><li>c</li>`,
			check:  "#t",
			want:   `<li>b</li><li>c</li><li>a</li>`,
		},
		{
			name:   "none leaves the target alone",
			page:   `<div id="t" hx-get="/x" hx-swap="none"><b>old</b></div>`,
			markup: `<span>new</span>`,
			check:  "#t",
			want:   `<b>old</b>`,
		},
		{
			name:   "select narrows to the match's children",
			page:   `<div id="t" hx-get="/x" hx-select="#keep"></div>`,
			markup: `<header>skip</header><div id="keep">a<b>b</b></div><p>skip</p>`,
			check:  "#t",
			want:   `a<b>b</b>`,
		},
		{
			name:   "outerHTML with table row",
			page:   `<div id="wrap"><div id="row" hx-get="/x" hx-swap="outerHTML">old</div></div>`,
			markup: `<tr><td>x</td></tr>`,
			check:  "#wrap",
			want:   `<tr><td>x</td></tr>`,
		},
		{
			name:   "outerHTML takes the first element only",
			page:   `<div id="wrap"><p id="t" hx-get="/x" hx-swap="outerHTML">old</p></div>`,
			markup: `lead <section>one</section><section>two</section>`,
			check:  "#wrap",
			want:   `<section>one</section>`,
		},
		{
			name:   "outerHTML without an element removes the target",
			page:   `<div id="wrap"><p id="t" hx-get="/x" hx-swap="outerHTML">old</p></div>`,
			markup: `just text`,
			check:  "#wrap",
			want:   ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustDoc(t, tt.page)
			job := mustJob(t, doc, "[hx-get]")

			require.NoError(t, Render(tt.markup, job))
			assert.Equal(t, tt.want, mustQuery(t, doc, tt.check).InnerHTML())
		})
	}
}

func TestRenderFailuresLeaveDocumentUntouched(t *testing.T) {
	t.Parallel()

	t.Run("select without match", func(t *testing.T) {
		doc := mustDoc(t, `<div id="t" hx-get="/x" hx-select="#keep"><b>old</b></div>`)
		before := doc.HTML()

		err := Render(`<p>nothing to keep</p>`, mustJob(t, doc, "#t"))
		assert.ErrorIs(t, err, ErrSelectNoMatch)
		assert.True(t, IsRenderFailure(err))
		assert.Equal(t, before, doc.HTML())
	})

	t.Run("invalid select", func(t *testing.T) {
		doc := mustDoc(t, `<div id="t" hx-get="/x" hx-select="[">old</div>`)
		err := Render(`<p>x</p>`, mustJob(t, doc, "#t"))
		assert.ErrorIs(t, err, ErrSelectNoMatch)
	})

	t.Run("detached target", func(t *testing.T) {
		doc := mustDoc(t, `<button id="go" hx-get="/x" hx-target="#t"></button><div id="wrap"><div id="t">old</div></div>`)
		job := mustJob(t, doc, "#go")
		mustQuery(t, doc, "#wrap").Remove()

		err := Render(`<p>x</p>`, job)
		assert.ErrorIs(t, err, ErrTargetDetached)
		assert.Equal(t, "old", job.Target().InnerHTML())
	})
}
