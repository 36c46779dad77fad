// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape implements the escaping of text for use as a tree label.
package escape

import "go4.org/mem"

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Label appends an escaped copy of src to dst and returns the extended slice.
// Quotation marks, backslashes, and control bytes are escaped as they would
// be inside a JSON string, but no quotation marks are added. All other bytes,
// including the bytes of multi-byte UTF-8 sequences, are copied unchanged.
func Label(dst []byte, src mem.RO) []byte {
	start := 0
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		if b >= ' ' && b != '"' && b != '\\' {
			continue
		}
		dst = mem.Append(dst, src.Slice(start, i))
		start = i + 1
		switch {
		case b == '"' || b == '\\':
			dst = append(dst, '\\', b)
		case controlEsc[b] != 0:
			dst = append(dst, '\\', controlEsc[b])
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexDigit[b>>4], hexDigit[b&15])
		}
	}
	return mem.Append(dst, src.SliceFrom(start))
}

// LabelString returns an escaped copy of s. If s needs no escaping, it is
// returned unchanged.
func LabelString(s string) string {
	if !needsEscape(s) {
		return s
	}
	return string(Label(make([]byte, 0, len(s)+8), mem.S(s)))
}

func needsEscape(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b < ' ' || b == '"' || b == '\\' {
			return true
		}
	}
	return false
}
