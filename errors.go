package jsontree

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/creachadair/jsontree/ast"
)

// InternalError is the concrete type of errors reported when the structure of
// a value or its event stream is inconsistent, for example an event of an
// unknown kind, a key outside an object, or a container where a scalar is
// required. These indicate a malformed input value, not a user error.
type InternalError struct {
	Event   ast.EventKind // the kind of the event being processed
	Message string
}

// Error satisfies the error interface.
func (e *InternalError) Error() string {
	return fmt.Sprintf("jsontree: internal error at %v: %s", e.Event, e.Message)
}

// fail aborts the current render with an *InternalError.
func fail(kind ast.EventKind, msg string, args ...any) {
	panic(&InternalError{Event: kind, Message: fmt.Sprintf(msg, args...)})
}

// recoverRender converts the panics raised during a render into errors.
// Panics of any other kind are propagated.
func recoverRender(errp *error) {
	if x := recover(); x != nil {
		switch err := x.(type) {
		case *InternalError:
			*errp = err
		case error:
			if !errors.Is(err, bytes.ErrTooLarge) {
				panic(x)
			}
			*errp = fmt.Errorf("jsontree: growing output: %w", err)
		default:
			panic(x)
		}
	}
}
