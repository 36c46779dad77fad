// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"iter"
)

// An EventKind identifies the type of a traversal Event.
type EventKind byte

// Constants defining the kinds of traversal events.
const (
	Invalid EventKind = iota

	BeginArray  // start of an array; Len is its element count
	BeginObject // start of an object; Len is its member count
	Key         // an object key; the member's value follows
	Scalar      // a null, bool, number, or string value
	EndArray    // end of the most recently opened array
	EndObject   // end of the most recently opened object
	Done        // end of the traversal
)

var eventStr = [...]string{
	Invalid:     "invalid",
	BeginArray:  "BeginArray",
	BeginObject: "BeginObject",
	Key:         "Key",
	Scalar:      "Scalar",
	EndArray:    "EndArray",
	EndObject:   "EndObject",
	Done:        "Done",
}

func (k EventKind) String() string {
	if int(k) < len(eventStr) {
		return eventStr[k]
	}
	return fmt.Sprintf("EventKind(%d)", k)
}

// An Event is a single step of the pre-order projection of a Value.
//
// For BeginArray and BeginObject, Len is the length of the container and
// Value is the container itself, so that an independent traversal of it can
// be started from the event. For Key, Key is the text of the key. For Scalar,
// Value is the scalar. An array element that is a scalar is reported as a
// Scalar event; an element that is a container is reported by its begin
// event.
type Event struct {
	Kind  EventKind
	Len   int
	Key   string
	Value Value
}

func (e Event) String() string {
	switch e.Kind {
	case BeginArray, BeginObject:
		return fmt.Sprintf("%v %d", e.Kind, e.Len)
	case Key:
		return fmt.Sprintf("Key %q", e.Key)
	case Scalar:
		return "Scalar " + scalarText(e.Value)
	}
	return e.Kind.String()
}

func scalarText(v Value) string {
	switch t := v.(type) {
	case nil, Null:
		return "null"
	case Bool, Number:
		return fmt.Sprint(t)
	case String:
		return fmt.Sprintf("%q", string(t))
	default:
		return fmt.Sprintf("<%T>", v)
	}
}

// An Iterator produces the traversal events of a value in pre-order.  The
// zero Iterator is exhausted; use NewIterator to construct one.
type Iterator struct {
	root    Value
	started bool
	stk     []iterFrame
}

type iterFrame struct {
	obj   Object
	arr   Array
	isObj bool
	next  int  // offset of the next member or element
	value bool // the value of obj[next-1] has not been visited
}

// NewIterator constructs an iterator over the events of v. Iterators over
// the same value are independent of one another.
func NewIterator(v Value) *Iterator { return &Iterator{root: v} }

// Next returns the next event of the traversal. After the traversal is
// complete, Next returns a Done event on every call.
func (it *Iterator) Next() Event {
	if !it.started {
		it.started = true
		return it.open(it.root)
	}
	n := len(it.stk)
	if n == 0 {
		return Event{Kind: Done}
	}
	top := &it.stk[n-1]
	if top.isObj {
		if top.value {
			top.value = false
			return it.open(top.obj[top.next-1].Value)
		}
		if top.next < len(top.obj) {
			key := top.obj[top.next].Key
			top.next++
			top.value = true
			return Event{Kind: Key, Key: key}
		}
		it.stk = it.stk[:n-1]
		return Event{Kind: EndObject}
	}
	if top.next < len(top.arr) {
		top.next++
		return it.open(top.arr[top.next-1])
	}
	it.stk = it.stk[:n-1]
	return Event{Kind: EndArray}
}

// Skip abandons the container opened by the most recent begin event, so that
// the next call to Next resumes after its matching end. Skip has no effect if
// no container is open.
func (it *Iterator) Skip() {
	if n := len(it.stk); n > 0 {
		it.stk = it.stk[:n-1]
	}
}

func (it *Iterator) open(v Value) Event {
	switch t := v.(type) {
	case Object:
		it.stk = append(it.stk, iterFrame{obj: t, isObj: true})
		return Event{Kind: BeginObject, Len: len(t), Value: t}
	case Array:
		it.stk = append(it.stk, iterFrame{arr: t})
		return Event{Kind: BeginArray, Len: len(t), Value: t}
	case nil:
		return Event{Kind: Scalar, Value: Null{}}
	default:
		return Event{Kind: Scalar, Value: v}
	}
}

// Events returns a sequence of the traversal events of v, ending with (and
// including) the Done event.
func Events(v Value) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		it := NewIterator(v)
		for {
			e := it.Next()
			if !yield(e) || e.Kind == Done {
				return
			}
		}
	}
}
