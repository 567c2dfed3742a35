package interp

import "github.com/cwbudde/go-lox/pkg/token"

// returnSignal is the panic value used to unwind a function body back
// to its call site carrying the returned value, per spec.md §5's
// "typed non-local-exit mechanism" requirement. It is caught at the
// function-call boundary in Function.Call, never at the top of
// Interpret — a Return is expected control flow, not an error.
type returnSignal struct {
	Value Value
}

// runtimeError is the panic value used to unwind an evaluator-
// detected error all the way to the top of Interpret, per spec.md §5.
// It carries the culprit token so the reporter can attribute the
// error to a source location.
type runtimeError struct {
	Token   token.Token
	Message string
}

func (e *runtimeError) Error() string {
	return e.Message
}
