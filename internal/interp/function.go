package interp

import "github.com/cwbudde/go-lox/internal/ast"

// Function is a user-defined Lox function or method: its AST, the
// environment it closed over at declaration time, and whether it is a
// class's `init` method (which always returns `this` regardless of
// its own return statements).
type Function struct {
	Declaration   *ast.Fun
	Closure       *Environment
	IsInitializer bool
}

func (f *Function) Type() string { return "function" }
func (f *Function) String() string {
	return "<fn " + f.Declaration.Name.Literal + ">"
}
func (f *Function) Arity() int { return len(f.Declaration.Params) }

// Bind produces a fresh Function whose closure has an extra scope
// binding `this` to instance, per spec.md §4.4's "Field and method
// access" rule for bound methods.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosed(f.Closure)
	env.Define("this", instance)
	return &Function{Declaration: f.Declaration, Closure: env, IsInitializer: f.IsInitializer}
}

// Call creates a fresh environment enclosing the closure, binds
// parameters to arguments, and executes the body as a block. A
// `return` inside unwinds via returnSignal, caught here at the
// function's own call boundary (spec.md §5). A function that falls
// off the end of its body without returning yields nil, except an
// initializer, which always yields the bound `this`.
func (f *Function) Call(in *Interpreter, args []Value) (result Value) {
	env := NewEnclosed(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Literal, args[i])
	}

	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(returnSignal)
			if !ok {
				panic(r)
			}
			if f.IsInitializer {
				result = f.Closure.GetAt(0, "this")
				return
			}
			result = sig.Value
		}
	}()

	in.executeBlock(f.Declaration.Body, env)

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this")
	}
	return Nil{}
}
