// Package markup builds small escaped inline-HTML fragments through a
// chainable tag builder.
//
// Example usage:
//
//	markup.Div().Class("card").Child(
//		markup.Strong().Text("Bob"),
//		markup.Span().Text(" says <hi>"),
//	).String()
//	// `<div class="card"><strong>Bob</strong><span> says &lt;hi&gt;</span></div>`
package markup

import (
	"html"
	"strings"
)

// voidElements render self-contained and ignore children.
var voidElements = map[string]struct{}{
	"br":    {},
	"hr":    {},
	"img":   {},
	"input": {},
	"meta":  {},
	"link":  {},
}

type attribute struct {
	key   string
	value string
}

// child is either a nested tag or a pre-rendered text chunk.
type child struct {
	tag  *Tag
	text string
}

// Tag is a single element under construction. All builder methods return
// the receiver, so calls chain. A Tag is not safe for concurrent use.
type Tag struct {
	name     string
	attrs    []attribute
	children []child
}

// New starts a builder for an element with the given name.
func New(name string) *Tag {
	return &Tag{name: name}
}

func Div() *Tag    { return New("div") }
func Span() *Tag   { return New("span") }
func Strong() *Tag { return New("strong") }
func Em() *Tag     { return New("em") }
func Code() *Tag   { return New("code") }
func Br() *Tag     { return New("br") }

// A starts an anchor with its href set first.
func A(href string) *Tag {
	return New("a").Attr("href", href)
}

// Attr sets an attribute. A repeated key overwrites the value but keeps
// the attribute's original position.
func (t *Tag) Attr(key, value string) *Tag {
	for i := range t.attrs {
		if t.attrs[i].key == key {
			t.attrs[i].value = value
			return t
		}
	}

	t.attrs = append(t.attrs, attribute{key: key, value: value})
	return t
}

// Class appends names to the class attribute, creating it on first use.
func (t *Tag) Class(names ...string) *Tag {
	if len(names) == 0 {
		return t
	}

	joined := strings.Join(names, " ")
	for i := range t.attrs {
		if t.attrs[i].key == "class" {
			t.attrs[i].value += " " + joined
			return t
		}
	}

	t.attrs = append(t.attrs, attribute{key: "class", value: joined})
	return t
}

// ID sets the id attribute.
func (t *Tag) ID(value string) *Tag {
	return t.Attr("id", value)
}

// Text appends an escaped text child.
func (t *Tag) Text(s string) *Tag {
	t.children = append(t.children, child{text: html.EscapeString(s)})
	return t
}

// Raw appends a text child without escaping. The caller vouches for the
// content.
func (t *Tag) Raw(s string) *Tag {
	t.children = append(t.children, child{text: s})
	return t
}

// Child appends nested tags in call order.
func (t *Tag) Child(tags ...*Tag) *Tag {
	for _, tag := range tags {
		if tag == nil {
			continue
		}
		t.children = append(t.children, child{tag: tag})
	}
	return t
}

// String renders the element and its children. Void elements such as br
// render self-contained; any children attached to them are dropped.
func (t *Tag) String() string {
	var b strings.Builder
	t.render(&b)
	return b.String()
}

func (t *Tag) render(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(t.name)

	for _, a := range t.attrs {
		b.WriteByte(' ')
		b.WriteString(a.key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.value))
		b.WriteByte('"')
	}
	b.WriteByte('>')

	if _, void := voidElements[t.name]; void {
		return
	}

	for _, c := range t.children {
		if c.tag != nil {
			c.tag.render(b)
			continue
		}
		b.WriteString(c.text)
	}

	b.WriteString("</")
	b.WriteString(t.name)
	b.WriteByte('>')
}
