// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines an in-memory representation of JSON values, the
// pre-order event projection used to traverse them, and adapters that build
// values from JSON, HuJSON and YAML source.
package ast

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
)

// A Kind identifies the concrete type of a Value.
type Kind byte

// Constants defining the kinds of values.
const (
	NullKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	ObjectKind
	ArrayKind
)

var kindStr = [...]string{
	NullKind:   "null",
	BoolKind:   "bool",
	NumberKind: "number",
	StringKind: "string",
	ObjectKind: "object",
	ArrayKind:  "array",
}

func (k Kind) String() string {
	if int(k) < len(kindStr) {
		return kindStr[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// IsContainer reports whether k is the kind of an object or an array.
func (k Kind) IsContainer() bool { return k == ObjectKind || k == ArrayKind }

// A Value is an arbitrary JSON value. The concrete type of a Value is one of
// Null, Bool, Number, String, Object, or Array.
type Value interface{ Kind() Kind }

// KindOf reports the kind of v. A nil Value has kind NullKind.
func KindOf(v Value) Kind {
	if v == nil {
		return NullKind
	}
	return v.Kind()
}

// Null represents the null constant.
type Null struct{}

// Kind satisfies the Value interface.
func (Null) Kind() Kind { return NullKind }

// A Bool is a Boolean constant, true or false.
type Bool bool

// Kind satisfies the Value interface.
func (Bool) Kind() Kind { return BoolKind }

// A Number is a numeric value, stored as its canonical decimal text.
type Number string

// Kind satisfies the Value interface.
func (Number) Kind() Kind { return NumberKind }

// Int64 reports the value of n as an int64, or an error if it does not have
// that form.
func (n Number) Int64() (int64, error) { return strconv.ParseInt(string(n), 10, 64) }

// Float64 reports the value of n as a float64.
func (n Number) Float64() (float64, error) { return strconv.ParseFloat(string(n), 64) }

// A String is a string value. The text is stored unescaped.
type String string

// Kind satisfies the Value interface.
func (String) Kind() Kind { return StringKind }

// An Object is an ordered collection of key-value members. Keys are not
// required to be unique.
type Object []Member

// Kind satisfies the Value interface.
func (Object) Kind() Kind { return ObjectKind }

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for i := range o {
		if o[i].Key == key {
			return &o[i]
		}
	}
	return nil
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// An Array is a sequence of values.
type Array []Value

// Kind satisfies the Value interface.
func (Array) Kind() Kind { return ArrayKind }

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

// ToValue converts a Go value into an equivalent Value.  It accepts nil,
// bool, integer and floating-point types, string, json.Number, []any,
// map[string]any, and values that already implement Value. Map keys are
// sorted to give a deterministic member order. ToValue panics for any other
// type.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case json.Number:
		return Number(t)
	case float32:
		return floatValue(float64(t), 32)
	case float64:
		return floatValue(t, 64)
	case []any:
		a := make(Array, len(t))
		for i, elt := range t {
			a[i] = ToValue(elt)
		}
		return a
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		o := make(Object, len(keys))
		for i, k := range keys {
			o[i] = Member{Key: k, Value: ToValue(t[k])}
		}
		return o
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(strconv.FormatUint(rv.Uint(), 10))
	}
	panic(fmt.Sprintf("cannot convert %T to a value", v))
}

// floatValue renders f as a Number. Non-finite values have no JSON number
// form and become strings.
func floatValue(f float64, bits int) Value {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return String(strconv.FormatFloat(f, 'g', -1, bits))
	}
	return Number(strconv.FormatFloat(f, 'g', -1, bits))
}
