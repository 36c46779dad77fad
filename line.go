package jsontree

import (
	"bytes"
	"strconv"

	"github.com/creachadair/jsontree/ast"
	"github.com/creachadair/jsontree/internal/escape"

	"go4.org/mem"
)

// Connector glyphs. Each occupies four columns of output.
const (
	glyphBranch = "├── " // a sibling follows
	glyphLast   = "└── " // the last sibling
	glyphVert   = "│   " // continuation of an ancestor's branch
	glyphSpace  = "    " // nothing to continue
)

// A lineWriter emits the lines of a tree to a buffer. Lines are separated by
// newlines; there is no newline after the last line.
type lineWriter struct {
	buf     *bytes.Buffer
	plain   bool // use spaces in place of connector glyphs
	started bool
}

func (w *lineWriter) newline() {
	if w.started {
		w.buf.WriteByte('\n')
	}
	w.started = true
}

// column writes the connector for an ancestor frame f.
func (w *lineWriter) column(f *frame) {
	if w.plain || f.exhausted() {
		w.buf.WriteString(glyphSpace)
	} else {
		w.buf.WriteString(glyphVert)
	}
}

// columns writes the connectors for the frames at depths 1 to n.
func (w *lineWriter) columns(st depthStack, n int) {
	for d := 1; d <= n; d++ {
		w.column(st.at(d))
	}
}

// branch starts a line for the next child of the deepest frame. The line is
// left open for its label.
func (w *lineWriter) branch(st depthStack) {
	w.newline()
	top := st.depth()
	if top < 1 {
		return // the top-level value has no connector
	}
	w.columns(st, top-1)
	switch {
	case w.plain:
		w.buf.WriteString(glyphSpace)
	case st.current().lastBranch():
		w.buf.WriteString(glyphLast)
	default:
		w.buf.WriteString(glyphBranch)
	}
}

// closing writes the row that ends the subtree of the deepest frame. The row
// is omitted when every ancestor column would be blank.
func (w *lineWriter) closing(st depthStack) {
	top := st.depth()
	for d := 1; d < top; d++ {
		if !st.at(d).exhausted() {
			w.newline()
			w.columns(st, top-1)
			return
		}
	}
}

// blank writes a row with no label, continuing the branches of every open
// frame including the deepest.
func (w *lineWriter) blank(st depthStack) {
	w.newline()
	w.columns(st, st.depth())
}

// label writes the escaped text of a key.
func (w *lineWriter) label(s string) {
	w.buf.Write(escape.Label(w.buf.AvailableBuffer(), mem.S(s)))
}

// scalar writes the label text of a scalar value.
func (w *lineWriter) scalar(v ast.Value) {
	w.buf.Write(appendScalar(w.buf.AvailableBuffer(), v))
}

// ordinal writes the label of a container inside an array.
func (w *lineWriter) ordinal(k int) {
	w.buf.WriteString("# ")
	w.buf.Write(strconv.AppendInt(w.buf.AvailableBuffer(), int64(k), 10))
}

// elements writes the element count annotation of an array.
func (w *lineWriter) elements(n int) {
	w.buf.WriteString(" [")
	w.buf.Write(strconv.AppendInt(w.buf.AvailableBuffer(), int64(n), 10))
	w.buf.WriteString(" elements]")
}
