package interp

import (
	"math"
	"strconv"
)

// Value is a runtime Lox value. Every concrete runtime value
// implements it with its own struct rather than relying on Go's bare
// interface{}, the same tagged-value idiom the teacher's own
// interpreter package uses.
type Value interface {
	Type() string
	String() string
}

// Nil is Lox's `nil`.
type Nil struct{}

func (Nil) Type() string   { return "nil" }
func (Nil) String() string { return "nil" }

// Boolean is `true` or `false`.
type Boolean struct{ Value bool }

func (Boolean) Type() string { return "boolean" }
func (b Boolean) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Number is Lox's only numeric type, a double-precision float.
type Number struct{ Value float64 }

func (Number) Type() string { return "number" }

// String renders a Number the way `print` stringifies it: shortest
// round-trip decimal, no trailing ".0" for integral values, and "-0"
// preserved for negative zero (spec.md §6, §9).
func (n Number) String() string {
	if math.Signbit(n.Value) && n.Value == 0 {
		return "-0"
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// String is a Lox string value.
type String struct{ Value string }

func (String) Type() string     { return "string" }
func (s String) String() string { return s.Value }

// IsTruthy implements Lox truthiness: nil and false are falsy, every
// other value (including 0 and "") is truthy.
func IsTruthy(v Value) bool {
	switch t := v.(type) {
	case Nil:
		return false
	case Boolean:
		return t.Value
	default:
		return true
	}
}

// Equal implements Lox's `==`: nil equals only nil, booleans and
// numbers compare by value, strings by content, and callables/
// instances by reference identity (the default case below, which
// relies on Go's == on pointer-holding interface values).
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av.Value == bv.Value
	case Number:
		bv, ok := b.(Number)
		return ok && av.Value == bv.Value
	case String:
		bv, ok := b.(String)
		return ok && av.Value == bv.Value
	default:
		return a == b
	}
}
