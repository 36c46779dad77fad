package jsontree

import "github.com/creachadair/jsontree/ast"

// An eventSource delivers the traversal events of a value in pre-order.
// *ast.Iterator satisfies this interface.
type eventSource interface {
	Next() ast.Event
}

// A walker drives a single forward pass over an event source, maintaining a
// depth stack of open containers and writing one line per visible node.
type walker struct {
	src eventSource
	st  depthStack
	out lineWriter

	pending bool      // write a blank row before the next event
	replay  ast.Event // a container begin fetched while handling a key
	keyed   bool      // replay is set and belongs to the preceding key
}

func (w *walker) next() ast.Event {
	if w.keyed {
		e := w.replay
		w.replay = ast.Event{}
		return e
	}
	return w.src.Next()
}

func (w *walker) run() {
	w.st.push(slotFrame, 1, 0)
	for {
		keyed := w.keyed
		e := w.next()
		w.keyed = false
		if w.pending && e.Kind != ast.Done {
			w.out.blank(w.st)
			w.pending = false
		}

		switch e.Kind {
		case ast.BeginArray:
			w.beginArray(e, keyed)
		case ast.BeginObject:
			w.beginObject(e, keyed)
		case ast.Key:
			w.key(e)
		case ast.Scalar:
			w.scalar(e)
		case ast.EndArray:
			w.endArray()
		case ast.EndObject:
			w.endObject()
		case ast.Done:
			w.done()
			return
		default:
			fail(e.Kind, "unknown event")
		}
	}
}

// introduce writes the line for a container that is not the value of an
// object member, and advances its parent past it. The container is either
// the top-level value or an element of an array. If keyed is true, the
// container is the value of the key whose line was just written.
func (w *walker) introduce(kind ast.EventKind, keyed bool) {
	parent := w.st.current()
	switch parent.kind {
	case objectFrame:
		if !keyed {
			fail(kind, "container in object without a key")
		}
		return
	case slotFrame:
		w.checkSlot(parent, kind)
		w.out.branch(w.st)
		w.out.buf.WriteByte('.')
	case arrayFrame:
		w.out.branch(w.st)
		w.out.ordinal(parent.pos)
	}
	parent.advance()
}

func (w *walker) beginArray(e ast.Event, keyed bool) {
	trail := trailingRun(e)
	w.introduce(e.Kind, keyed)
	w.out.elements(e.Len)
	w.st.push(arrayFrame, e.Len, trail)
}

func (w *walker) beginObject(e ast.Event, keyed bool) {
	w.introduce(e.Kind, keyed)
	w.st.push(objectFrame, e.Len, 0)
}

// key writes the line for an object member. If the member's value is a scalar
// it is written on the same line; otherwise the begin event of the value is
// saved to be processed by the main loop.
func (w *walker) key(e ast.Event) {
	top := w.st.current()
	if top.kind != objectFrame {
		fail(e.Kind, "key %q outside an object", e.Key)
	}
	top.advance()
	w.out.branch(w.st)
	w.out.label(e.Key)

	switch v := w.src.Next(); v.Kind {
	case ast.Scalar:
		w.out.buf.WriteString(": ")
		w.out.scalar(v.Value)
	case ast.BeginArray, ast.BeginObject:
		w.replay, w.keyed = v, true
	default:
		fail(v.Kind, "unexpected event after key %q", e.Key)
	}
}

// scalar handles a scalar that is not the value of an object member.  Scalar
// elements of an array have no line of their own.
func (w *walker) scalar(e ast.Event) {
	top := w.st.current()
	switch top.kind {
	case arrayFrame:
	case slotFrame:
		w.checkSlot(top, e.Kind)
		w.out.branch(w.st)
		w.out.scalar(e.Value)
	default:
		fail(e.Kind, "scalar in object without a key")
	}
	top.advance()
}

// checkSlot reports an error if the top-level value has already been seen.
func (w *walker) checkSlot(slot *frame, kind ast.EventKind) {
	if slot.pos > slot.total {
		fail(kind, "more than one top-level value")
	}
}

func (w *walker) endArray() {
	top := w.st.current()
	if top.kind != arrayFrame {
		fail(ast.EndArray, "no array is open")
	}
	if top.drawsChildren() {
		w.out.closing(w.st)
	}
	w.st.pop()
}

func (w *walker) endObject() {
	top := w.st.current()
	if top.kind != objectFrame {
		fail(ast.EndObject, "no object is open")
	}
	w.st.pop()
	if top.total == 0 {
		w.pending = true
	}
}

func (w *walker) done() {
	if top := w.st.pop(); top == nil || top.kind != slotFrame {
		fail(ast.Done, "traversal ended with containers open")
	}
	if !w.st.isEmpty() {
		fail(ast.Done, "depth stack not empty at end of traversal")
	}
}
