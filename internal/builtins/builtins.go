// Package builtins registers Lox's native global functions. spec.md §6
// names exactly one: `clock()`. The registry pattern is kept small and
// case-sensitive (matching Lox, unlike the teacher's case-insensitive
// builtins.Registry) but follows the same "register into the global
// environment" shape.
package builtins

import (
	"time"

	"github.com/cwbudde/go-lox/internal/interp"
)

// RegisterAll installs every built-in into env, typically the
// interpreter's globals environment.
func RegisterAll(env *interp.Environment) {
	env.Define("clock", clockFn())
}

// clockFn returns a native function yielding seconds since an
// unspecified epoch as a double, per spec.md §6.
func clockFn() *interp.NativeFunction {
	return &interp.NativeFunction{
		Name: "clock",
		Arit: 0,
		Fn: func(_ *interp.Interpreter, _ []interp.Value) interp.Value {
			return interp.Number{Value: float64(time.Now().UnixNano()) / float64(time.Second)}
		},
	}
}
