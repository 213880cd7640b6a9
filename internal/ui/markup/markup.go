// Package markup is a small HTML writer for hand-written templ components.
//
// A Writer remembers the first write error and turns every later call into
// a no-op, so component bodies can be written straight through and checked
// once with Err.
package markup

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Attr is one HTML attribute. A zero Key is skipped. Flag renders a
// boolean attribute with no value.
type Attr struct {
	Key   string
	Value string
	Flag  bool
}

// A returns a key="value" attribute.
func A(key, value string) Attr { return Attr{Key: key, Value: value} }

// Flag returns a boolean attribute such as disabled.
func Flag(key string) Attr { return Attr{Key: key, Flag: true} }

// If returns a when cond holds and a skipped attribute otherwise.
func If(cond bool, a Attr) Attr {
	if !cond {
		return Attr{}
	}
	return a
}

// Writer writes escaped HTML to an io.Writer.
type Writer struct {
	w   io.Writer
	err error
}

// New wraps w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error seen.
func (m *Writer) Err() error {
	return m.err
}

// Raw writes s unescaped.
func (m *Writer) Raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// Text writes s as escaped text.
func (m *Writer) Text(s string) {
	m.Raw(templ.EscapeString(s))
}

// Open writes a start tag.
func (m *Writer) Open(tag string, attrs ...Attr) {
	m.Raw("<" + tag)
	m.attrs(attrs)
	m.Raw(">")
}

// Close writes an end tag.
func (m *Writer) Close(tag string) {
	m.Raw("</" + tag + ">")
}

// Void writes a tag that has no end tag, such as input or img.
func (m *Writer) Void(tag string, attrs ...Attr) {
	m.Open(tag, attrs...)
}

// Element writes a start tag, escaped text and the end tag.
func (m *Writer) Element(tag, text string, attrs ...Attr) {
	m.Open(tag, attrs...)
	m.Text(text)
	m.Close(tag)
}

// Render renders a child component. Nil components are skipped.
func (m *Writer) Render(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

// Fail records err unless an earlier error is already set.
func (m *Writer) Fail(err error) {
	if m.err == nil {
		m.err = err
	}
}

func (m *Writer) attrs(attrs []Attr) {
	for _, a := range attrs {
		if a.Key == "" {
			continue
		}
		if a.Flag {
			m.Raw(" " + a.Key)
			continue
		}
		m.Raw(" " + a.Key + `="` + templ.EscapeString(a.Value) + `"`)
	}
}

// Component adapts a body function to templ.Component.
func Component(body func(ctx context.Context, m *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := New(w)
		body(ctx, m)
		return m.Err()
	})
}

// String renders c to a string. It is meant for tests and SSE payloads.
func String(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	err := c.Render(ctx, &sb)
	return sb.String(), err
}
