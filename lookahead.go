package jsontree

import "github.com/creachadair/jsontree/ast"

// trailingRun reports the number of direct elements of the array opened by
// begin that follow its last nested container, or the length of the array if
// it has no nested containers.
//
// The count comes from a fresh traversal rooted at the array, independent of
// the caller's. Nested containers are skipped as a whole, so only the direct
// children of the array are visited.
func trailingRun(begin ast.Event) int {
	it := ast.NewIterator(begin.Value)
	if e := it.Next(); e.Kind != ast.BeginArray {
		fail(ast.BeginArray, "array event carries %v value", ast.KindOf(begin.Value))
	}
	run := 0
	for {
		switch e := it.Next(); e.Kind {
		case ast.BeginArray, ast.BeginObject:
			it.Skip()
			run = 0
		case ast.Scalar:
			run++
		case ast.EndArray:
			return run
		default:
			fail(e.Kind, "unexpected event in array lookahead")
		}
	}
}
