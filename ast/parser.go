// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"io"

	"github.com/tailscale/hujson"
)

// Parse reads all of r and parses it as a single JSON value. The input may
// use the HuJSON extensions (comments and trailing commas); these are
// discarded.
func Parse(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return ParseBytes(data)
}

// ParseBytes parses data as a single JSON or HuJSON value.
func ParseBytes(data []byte) (Value, error) {
	hv, err := hujson.Parse(data)
	if err != nil {
		return nil, err
	}
	return fromHuJSON(hv.Value)
}

// fromHuJSON converts a syntax tree from the hujson package into a Value.
// Literal text is copied, since hujson literals alias the input buffer.
func fromHuJSON(v hujson.ValueTrimmed) (Value, error) {
	switch t := v.(type) {
	case *hujson.Object:
		o := make(Object, len(t.Members))
		for i, m := range t.Members {
			key, ok := m.Name.Value.(hujson.Literal)
			if !ok || key.Kind() != '"' {
				return nil, fmt.Errorf("offset %d: object key is not a string", m.Name.StartOffset)
			}
			mv, err := fromHuJSON(m.Value.Value)
			if err != nil {
				return nil, err
			}
			o[i] = Member{Key: key.String(), Value: mv}
		}
		return o, nil

	case *hujson.Array:
		a := make(Array, len(t.Elements))
		for i, e := range t.Elements {
			ev, err := fromHuJSON(e.Value)
			if err != nil {
				return nil, err
			}
			a[i] = ev
		}
		return a, nil

	case hujson.Literal:
		switch t.Kind() {
		case 'n':
			return Null{}, nil
		case 't', 'f':
			return Bool(t.Bool()), nil
		case '0':
			return Number(string(t)), nil
		case '"':
			return String(t.String()), nil
		}
		return nil, fmt.Errorf("invalid literal %q", t)
	}
	return nil, fmt.Errorf("unknown value type %T", v)
}
