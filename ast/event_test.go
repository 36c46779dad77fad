// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"strings"
	"testing"

	"github.com/creachadair/jsontree/ast"
)

func eventLog(v ast.Value) string {
	var sb strings.Builder
	for e := range ast.Events(v) {
		sb.WriteString(e.String())
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func TestEvents(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`true`, "Scalar true\nDone"},
		{`null`, "Scalar null\nDone"},
		{`-6.32`, "Scalar -6.32\nDone"},
		{`"a\tb"`, "Scalar \"a\\tb\"\nDone"},
		{`{}`, "BeginObject 0\nEndObject\nDone"},
		{`[]`, "BeginArray 0\nEndArray\nDone"},

		{`{"x":null, "y":[true]}`, `
BeginObject 2
Key "x"
Scalar null
Key "y"
BeginArray 1
Scalar true
EndArray
EndObject
Done`},

		{`[1, {"a": [2]}, [], 3]`, `
BeginArray 4
Scalar 1
BeginObject 1
Key "a"
BeginArray 1
Scalar 2
EndArray
EndObject
BeginArray 0
EndArray
Scalar 3
EndArray
Done`},
	}
	for _, tc := range tests {
		v, err := ast.ParseBytes([]byte(tc.input))
		if err != nil {
			t.Fatalf("Parse %q: %v", tc.input, err)
		}
		want := strings.TrimPrefix(tc.want, "\n")
		if got := eventLog(v); got != want {
			t.Errorf("Input: %#q\nGot:\n%s\nWant:\n%s", tc.input, got, want)
		}
	}
}

func TestIteratorIndependent(t *testing.T) {
	v := ast.ToValue([]any{1, map[string]any{"a": 2}})
	a, b := ast.NewIterator(v), ast.NewIterator(v)
	a.Next()
	a.Next()
	if e := b.Next(); e.Kind != ast.BeginArray || e.Len != 2 {
		t.Errorf("Second iterator: got %v, want BeginArray 2", e)
	}
	if e := a.Next(); e.Kind != ast.BeginObject {
		t.Errorf("First iterator: got %v, want BeginObject", e)
	}

	// Begin events carry their container, so a traversal can restart there.
	e := ast.NewIterator(v).Next()
	if got, want := eventLog(e.Value), eventLog(v); got != want {
		t.Errorf("Restarted traversal:\n%s\nwant:\n%s", got, want)
	}
}

func TestIteratorSkip(t *testing.T) {
	v := ast.ToValue([]any{[]any{1, []any{2}}, map[string]any{"k": []any{}}, 3})
	it := ast.NewIterator(v)
	var got []string
	for e := it.Next(); e.Kind != ast.Done; e = it.Next() {
		got = append(got, e.String())
		if (e.Kind == ast.BeginObject || (e.Kind == ast.BeginArray && e.Len == 2)) {
			it.Skip()
		}
	}
	want := []string{"BeginArray 3", "BeginArray 2", "BeginObject 1", "Scalar 3", "EndArray"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Skip: got %q, want %q", got, want)
	}

	// After the end, Next keeps reporting Done.
	if e := it.Next(); e.Kind != ast.Done {
		t.Errorf("After Done: got %v", e)
	}
}

func TestEventKindString(t *testing.T) {
	if got := ast.EventKind(42).String(); got != "EventKind(42)" {
		t.Errorf("Unknown kind: got %q", got)
	}
	if got := ast.Kind(9).String(); got != "Kind(9)" {
		t.Errorf("Unknown value kind: got %q", got)
	}
}
