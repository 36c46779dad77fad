package jsontree

import (
	"bytes"
	"io"

	"github.com/creachadair/jsontree/ast"
)

// DefaultSizeHint is the initial capacity of the output buffer, in bytes,
// when no positive size hint is given.
const DefaultSizeHint = 64

// A Renderer carries the settings for rendering values as trees.
// A zero value is ready for use with default settings.
type Renderer struct {
	// Plain, if true, indents nested values with spaces and draws no
	// connector glyphs.
	Plain bool

	// SizeHint is the initial capacity of the output buffer in bytes. If
	// SizeHint <= 0, DefaultSizeHint is used.
	SizeHint int
}

func (r Renderer) sizeHint() int {
	if r.SizeHint > 0 {
		return r.SizeHint
	}
	return DefaultSizeHint
}

// Render returns the connector tree for v. The sizeHint is the expected size
// of the output in bytes; pass 0 or a negative value to use a default.
func Render(v ast.Value, sizeHint int) (string, error) {
	return Renderer{SizeHint: sizeHint}.Render(v)
}

// Indent returns the indentation-only rendering of v, which has the layout of
// the connector tree with spaces in place of the connectors.
func Indent(v ast.Value, sizeHint int) (string, error) {
	return Renderer{Plain: true, SizeHint: sizeHint}.Render(v)
}

// Render returns the rendering of v using the settings from r. In case of
// error, it returns an empty string.
func (r Renderer) Render(v ast.Value) (string, error) {
	var buf bytes.Buffer
	if err := r.render(&buf, ast.NewIterator(v)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Format writes the rendering of v to w using the settings from r. Nothing is
// written if rendering fails.
func (r Renderer) Format(w io.Writer, v ast.Value) error {
	var buf bytes.Buffer
	if err := r.render(&buf, ast.NewIterator(v)); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r Renderer) render(buf *bytes.Buffer, src eventSource) (err error) {
	defer recoverRender(&err)
	buf.Grow(r.sizeHint())
	w := &walker{
		src: src,
		st:  newDepthStack(),
		out: lineWriter{buf: buf, plain: r.Plain},
	}
	w.run()
	return nil
}
