package jsontree

import (
	"github.com/creachadair/jsontree/ast"
	"github.com/creachadair/jsontree/internal/escape"

	"go4.org/mem"
)

// Scalar returns the label text for a null, Boolean, number, or string value.
// Strings are escaped but not quoted; numbers are rendered with their text
// unchanged. Scalar reports an *InternalError if v is an object or array.
func Scalar(v ast.Value) (_ string, err error) {
	defer recoverRender(&err)
	return string(appendScalar(nil, v)), nil
}

// appendScalar appends the label text of v to dst. It panics with an
// *InternalError if v is not a scalar.
func appendScalar(dst []byte, v ast.Value) []byte {
	switch t := v.(type) {
	case nil, ast.Null:
		return append(dst, "null"...)
	case ast.Bool:
		if t {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case ast.Number:
		return append(dst, t...)
	case ast.String:
		return escape.Label(dst, mem.S(string(t)))
	default:
		fail(ast.Scalar, "cannot format %v value as a scalar", ast.KindOf(v))
		return nil
	}
}
