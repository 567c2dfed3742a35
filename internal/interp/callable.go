package interp

// Callable is any Value that can appear on the left of a call
// expression: user-defined functions and methods, native functions,
// and classes (whose "call" constructs an instance).
type Callable interface {
	Value
	Arity() int
	Call(in *Interpreter, args []Value) Value
}

// NativeFunction wraps a Go function as a Lox callable, used for the
// single built-in `clock` (see internal/builtins).
type NativeFunction struct {
	Name string
	Arit int
	Fn   func(in *Interpreter, args []Value) Value
}

func (n *NativeFunction) Type() string   { return "native function" }
func (n *NativeFunction) String() string { return "<native fn>" }
func (n *NativeFunction) Arity() int     { return n.Arit }
func (n *NativeFunction) Call(in *Interpreter, args []Value) Value {
	return n.Fn(in, args)
}
