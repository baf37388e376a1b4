// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ── rendering ─────────────────────────────────────────────────────────────────

func TestTag_Empty(t *testing.T) {
	assert.Equal(t, "<div></div>", Div().String())
	assert.Equal(t, "<span></span>", Span().String())
	assert.Equal(t, "<custom></custom>", New("custom").String())
}

func TestTag_TextEscaped(t *testing.T) {
	got := Span().Text(`5 < 6 & "beyond"`).String()

	assert.Equal(t, "<span>5 &lt; 6 &amp; &#34;beyond&#34;</span>", got)
}

func TestTag_RawNotEscaped(t *testing.T) {
	got := Div().Raw("<b>bold</b>").String()

	assert.Equal(t, "<div><b>bold</b></div>", got)
}

func TestTag_ChildrenInCallOrder(t *testing.T) {
	got := Div().
		Text("start ").
		Child(Strong().Text("middle")).
		Text(" end").
		String()

	assert.Equal(t, "<div>start <strong>middle</strong> end</div>", got)
}

func TestTag_NestedChildren(t *testing.T) {
	got := Div().Child(
		Span().Child(Em().Text("deep")),
		Code().Text("x := 1"),
	).String()

	assert.Equal(t, "<div><span><em>deep</em></span><code>x := 1</code></div>", got)
}

func TestTag_NilChildSkipped(t *testing.T) {
	got := Div().Child(nil, Span().Text("ok"), nil).String()

	assert.Equal(t, "<div><span>ok</span></div>", got)
}

// ── attributes ────────────────────────────────────────────────────────────────

func TestTag_AttrInsertionOrder(t *testing.T) {
	got := New("input").
		Attr("type", "text").
		Attr("name", "login").
		Attr("placeholder", "user").
		String()

	assert.Equal(t, `<input type="text" name="login" placeholder="user">`, got)
}

func TestTag_AttrOverwriteKeepsPosition(t *testing.T) {
	got := Div().
		Attr("data-a", "1").
		Attr("data-b", "2").
		Attr("data-a", "3").
		String()

	assert.Equal(t, `<div data-a="3" data-b="2"></div>`, got)
}

func TestTag_AttrValueEscaped(t *testing.T) {
	got := Div().Attr("title", `"quoted" & <tagged>`).String()

	assert.Equal(t, `<div title="&#34;quoted&#34; &amp; &lt;tagged&gt;"></div>`, got)
}

func TestTag_ClassAccumulates(t *testing.T) {
	got := Div().Class("card").Class("wide", "active").String()

	assert.Equal(t, `<div class="card wide active"></div>`, got)
}

func TestTag_ClassKeepsFirstPosition(t *testing.T) {
	got := Div().Class("card").ID("main").Class("wide").String()

	assert.Equal(t, `<div class="card wide" id="main"></div>`, got)
}

func TestTag_ID(t *testing.T) {
	assert.Equal(t, `<span id="lead"></span>`, Span().ID("lead").String())
}

func TestA_HrefFirst(t *testing.T) {
	got := A("https://example.com/?a=1&b=2").Class("link").Text("site").String()

	assert.Equal(t, `<a href="https://example.com/?a=1&amp;b=2" class="link">site</a>`, got)
}

// ── void elements ─────────────────────────────────────────────────────────────

func TestTag_VoidElements(t *testing.T) {
	assert.Equal(t, "<br>", Br().String())
	assert.Equal(t, "<hr>", New("hr").String())
	assert.Equal(t, `<img src="x.png">`, New("img").Attr("src", "x.png").String())
}

func TestTag_VoidIgnoresChildren(t *testing.T) {
	got := Br().Text("ignored").Child(Span().Text("also ignored")).String()

	assert.Equal(t, "<br>", got)
}

// ── composition ───────────────────────────────────────────────────────────────

func TestTag_Fragment(t *testing.T) {
	got := Div().Class("user-card").Child(
		Strong().Text("Алиса"),
		Br(),
		A("/profile?id=1&tab=main").Text("профиль"),
	).String()

	want := `<div class="user-card"><strong>Алиса</strong><br>` +
		`<a href="/profile?id=1&amp;tab=main">профиль</a></div>`
	assert.Equal(t, want, got)
}
