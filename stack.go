package jsontree

import "github.com/creachadair/mds/stack"

type frameKind byte

const (
	slotFrame   frameKind = iota // the implicit top-level slot
	arrayFrame                   // an open array
	objectFrame                  // an open object
)

// A frame records the rendering state of one open container.
//
// For an object, pos is advanced before each key line is drawn, so while a
// member is being rendered pos is one past its 1-based offset. For an array,
// the line of a container element is drawn before pos is advanced, so while
// it is drawn pos is the element's own 1-based offset.
type frame struct {
	kind  frameKind
	pos   int // 1-based position of the next child
	total int // number of children
	trail int // arrays only: scalar elements after the last container element
}

func (f *frame) advance() { f.pos++ }

// lastBranch reports whether the line being drawn for a child of f is the last
// line drawn at this level of f.
func (f *frame) lastBranch() bool {
	return f.pos == f.total+1 || (f.kind == arrayFrame && f.pos == f.total-f.trail)
}

// exhausted reports whether f has no further child lines to draw after the
// child currently being rendered.
func (f *frame) exhausted() bool {
	return f.pos == f.total+1 || (f.kind == arrayFrame && f.pos == f.total-f.trail+1)
}

// drawsChildren reports whether any child of f gets a line of its own.
func (f *frame) drawsChildren() bool {
	if f.kind == arrayFrame {
		return f.total-f.trail > 0
	}
	return f.total > 0
}

// A depthStack holds a frame for each open container, indexed by depth. The
// frame at depth 0 is the slot for the top-level value.
type depthStack struct {
	s *stack.Stack[*frame]
}

func newDepthStack() depthStack { return depthStack{s: stack.New[*frame]()} }

// push opens a new frame at the next depth, positioned at its first child.
func (d depthStack) push(kind frameKind, total, trail int) {
	d.s.Push(&frame{kind: kind, pos: 1, total: total, trail: trail})
}

// pop discards and returns the deepest frame, or nil if d is empty.
func (d depthStack) pop() *frame {
	f, _ := d.s.Pop()
	return f
}

// advance moves the deepest frame to its next child.
func (d depthStack) advance() { d.current().advance() }

// current returns the deepest frame, or nil if d is empty.
func (d depthStack) current() *frame {
	f, _ := d.s.Peek(0)
	return f
}

// at returns the frame at the given depth, where 0 is the top-level slot.
func (d depthStack) at(depth int) *frame {
	f, _ := d.s.Peek(d.s.Len() - 1 - depth)
	return f
}

// depth reports the depth of the deepest frame, or -1 if d is empty.
func (d depthStack) depth() int { return d.s.Len() - 1 }

func (d depthStack) isEmpty() bool { return d.s.IsEmpty() }
