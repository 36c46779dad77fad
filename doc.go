// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jsontree renders JSON values as indented trees with box-drawing
// connectors, in the manner of the tree(1) directory listing tool.
//
// # Rendering
//
// Render takes a parsed value and returns its tree as text:
//
//	v, err := ast.Parse(strings.NewReader(`{"a": 1, "b": [{"x": true}, 2]}`))
//	if err != nil {
//	   log.Fatalf("Parse: %v", err)
//	}
//	out, err := jsontree.Render(v, 0)
//	if err != nil {
//	   log.Fatalf("Render: %v", err)
//	}
//	fmt.Println(out)
//
// which prints
//
//	.
//	├── a: 1
//	└── b [2 elements]
//	    └── # 1
//	        └── x: true
//
// Every object key gets a line of its own. A key whose value is a scalar
// shows the value after a colon; a key whose value is an array shows the
// element count. Containers inside arrays get a line labelled with their
// 1-based ordinal. Scalar elements of arrays do not get lines of their own:
// they are represented only by the element count of the array, and the
// connectors are drawn so that the last container of an array closes its
// branch even when scalars follow it.
//
// Indent produces the same layout with spaces in place of connectors.
//
// # Traversal
//
// The renderer consumes the pre-order event projection of a value (see
// ast.Iterator) in a single forward pass. When it enters an array it starts a
// second, independent traversal of that array to count the scalar elements
// that follow the array's last nested container.
//
// # Errors
//
// A value or event stream that violates the structure of a JSON value stops
// rendering with an error of concrete type *InternalError. No partial output
// is returned in that case.
package jsontree
