package jsontree

import (
	"bytes"
	"errors"
	"testing"

	"github.com/creachadair/jsontree/ast"
	"github.com/creachadair/mds/mtest"
)

func TestTrailingRun(t *testing.T) {
	tests := []struct {
		input ast.Array
		want  int
	}{
		{ast.Array{}, 0},
		{ast.ToValue([]any{1, 2, 3}).(ast.Array), 3},
		{ast.ToValue([]any{map[string]any{}}).(ast.Array), 0},
		{ast.ToValue([]any{1, map[string]any{"a": []any{1, 2}}, 2, 3}).(ast.Array), 2},
		{ast.ToValue([]any{[]any{1, 2, 3, 4}, "x"}).(ast.Array), 1},
		{ast.ToValue([]any{1, []any{}, 2, []any{[]any{5}}}).(ast.Array), 0},
	}
	for _, tc := range tests {
		e := ast.NewIterator(tc.input).Next()
		if got := trailingRun(e); got != tc.want {
			t.Errorf("trailingRun(%v): got %d, want %d", tc.input, got, tc.want)
		}
	}

	mtest.MustPanic(t, func() { trailingRun(ast.Event{Kind: ast.BeginArray, Value: ast.Object{}}) })
}

func TestDepthStack(t *testing.T) {
	st := newDepthStack()
	if d := st.depth(); d != -1 {
		t.Errorf("Empty depth: got %d, want -1", d)
	}
	st.push(slotFrame, 1, 0)
	st.push(arrayFrame, 4, 1)
	st.push(objectFrame, 2, 0)

	if d := st.depth(); d != 2 {
		t.Errorf("Depth: got %d, want 2", d)
	}
	st.advance()
	if f := st.current(); f.kind != objectFrame || f.pos != 2 {
		t.Errorf("Current: got %+v, want object at pos 2", f)
	}
	if f := st.at(1); f.kind != arrayFrame || f.total != 4 || f.trail != 1 || f.pos != 1 {
		t.Errorf("At(1): got %+v", f)
	}
	if f := st.pop(); f.kind != objectFrame {
		t.Errorf("Pop: got %+v, want object", f)
	}
	st.pop()
	st.pop()
	if !st.isEmpty() {
		t.Error("Stack is not empty after popping every frame")
	}
	if f := st.pop(); f != nil {
		t.Errorf("Pop on empty: got %+v, want nil", f)
	}
}

func TestFrameBranches(t *testing.T) {
	// An array of five elements whose last two are scalars.
	f := &frame{kind: arrayFrame, pos: 1, total: 5, trail: 2}
	var last, done []int
	for ; f.pos <= f.total; f.advance() {
		if f.lastBranch() {
			last = append(last, f.pos)
		}
		if f.exhausted() {
			done = append(done, f.pos)
		}
	}
	if len(last) != 1 || last[0] != 3 {
		t.Errorf("lastBranch at %v, want [3]", last)
	}
	if len(done) != 1 || done[0] != 4 {
		t.Errorf("exhausted at %v, want [4]", done)
	}

	obj := &frame{kind: objectFrame, pos: 1, total: 2}
	obj.advance()
	if obj.lastBranch() || obj.exhausted() {
		t.Errorf("First key of two: %+v reports last", obj)
	}
	obj.advance()
	if !obj.lastBranch() || !obj.exhausted() {
		t.Errorf("Second key of two: %+v does not report last", obj)
	}
}

// sliceSource delivers a fixed sequence of events, then Done.
type sliceSource []ast.Event

func (s *sliceSource) Next() ast.Event {
	if len(*s) == 0 {
		return ast.Event{Kind: ast.Done}
	}
	e := (*s)[0]
	*s = (*s)[1:]
	return e
}

func TestMalformedEvents(t *testing.T) {
	arr := ast.Array{ast.Number("1")}
	tests := []struct {
		name   string
		events []ast.Event
		kind   ast.EventKind
	}{
		{"UnknownKind", []ast.Event{{Kind: 99}}, 99},
		{"InvalidKind", []ast.Event{{Kind: ast.Invalid}}, ast.Invalid},
		{"KeyAtTop", []ast.Event{{Kind: ast.Key, Key: "a"}}, ast.Key},
		{"KeyInArray", []ast.Event{
			{Kind: ast.BeginArray, Len: 1, Value: arr},
			{Kind: ast.Key, Key: "a"},
		}, ast.Key},
		{"EndWithoutBegin", []ast.Event{{Kind: ast.EndObject}}, ast.EndObject},
		{"MismatchedEnd", []ast.Event{
			{Kind: ast.BeginArray, Len: 1, Value: arr},
			{Kind: ast.EndObject},
		}, ast.EndObject},
		{"ScalarInObject", []ast.Event{
			{Kind: ast.BeginObject, Len: 1, Value: ast.Object{}},
			{Kind: ast.Scalar, Value: ast.Null{}},
		}, ast.Scalar},
		{"KeyThenEnd", []ast.Event{
			{Kind: ast.BeginObject, Len: 1, Value: ast.Object{}},
			{Kind: ast.Key, Key: "a"},
			{Kind: ast.EndObject},
		}, ast.EndObject},
		{"UnclosedArray", []ast.Event{
			{Kind: ast.BeginArray, Len: 1, Value: arr},
		}, ast.Done},
		{"TwoTopLevelValues", []ast.Event{
			{Kind: ast.Scalar, Value: ast.Null{}},
			{Kind: ast.Scalar, Value: ast.Null{}},
		}, ast.Scalar},
		{"ContainerScalar", []ast.Event{
			{Kind: ast.Scalar, Value: ast.Array{}},
		}, ast.Scalar},
		{"ArrayWithoutValue", []ast.Event{
			{Kind: ast.BeginArray, Len: 0},
		}, ast.BeginArray},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := sliceSource(tc.events)
			err := Renderer{}.render(new(bytes.Buffer), &src)
			var ierr *InternalError
			if !errors.As(err, &ierr) {
				t.Fatalf("render: got %v, want *InternalError", err)
			}
			if ierr.Event != tc.kind {
				t.Errorf("Error event: got %v, want %v (%v)", ierr.Event, tc.kind, err)
			}
		})
	}
}
