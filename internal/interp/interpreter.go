// Package interp evaluates a resolved Lox AST: runtime values, the
// lexical environment chain, and the tree-walking evaluator itself.
package interp

import (
	"fmt"
	"io"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/report"
	"github.com/cwbudde/go-lox/internal/resolver"
	"github.com/cwbudde/go-lox/pkg/token"
)

// Interpreter walks a resolved program, evaluating expressions and
// executing statements in strict left-to-right, single-threaded order
// (spec.md §5). It holds a reference to the current environment and
// to a fixed globals environment pre-populated with native callables.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      resolver.Locals
	reporter    *report.Reporter
	stdout      io.Writer
}

// New creates an Interpreter with a fresh globals environment. Native
// functions (see internal/builtins) should be registered into Globals()
// before Interpret is called.
func New(reporter *report.Reporter, stdout io.Writer) *Interpreter {
	globals := NewEnvironment()
	return &Interpreter{
		globals:     globals,
		environment: globals,
		reporter:    reporter,
		stdout:      stdout,
	}
}

// Globals returns the fixed global environment, for built-in
// registration.
func (in *Interpreter) Globals() *Environment {
	return in.globals
}

// Interpret executes every statement in program against locals, the
// resolver's side-table. The entries of locals are added to those of
// earlier Interpret calls, so functions declared by an earlier program
// on the same Interpreter keep their resolved bindings. A runtime
// error unwinds here (spec.md §5) and is reported; Interpret returns
// normally either way, leaving the "had runtime error" state on the
// reporter.
func (in *Interpreter) Interpret(program *ast.Program, locals resolver.Locals) {
	if in.locals == nil {
		in.locals = make(resolver.Locals, len(locals))
	}
	for expr, distance := range locals {
		in.locals[expr] = distance
	}
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(*runtimeError)
			if !ok {
				panic(r)
			}
			in.reporter.RuntimeError(rerr.Token.Pos, rerr.Message)
		}
	}()

	for _, stmt := range program.Statements {
		in.execute(stmt)
	}
}

func (in *Interpreter) execute(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		in.executeBlock(s.Statements, NewEnclosed(in.environment))
	case *ast.Class:
		in.executeClass(s)
	case *ast.Expression:
		in.evaluate(s.Expr)
	case *ast.Fun:
		fn := &Function{Declaration: s, Closure: in.environment}
		in.environment.Define(s.Name.Literal, fn)
	case *ast.If:
		if IsTruthy(in.evaluate(s.Condition)) {
			in.execute(s.ThenBranch)
		} else if s.ElseBranch != nil {
			in.execute(s.ElseBranch)
		}
	case *ast.Print:
		v := in.evaluate(s.Expr)
		fmt.Fprintln(in.stdout, v.String())
	case *ast.Return:
		var value Value = Nil{}
		if s.Value != nil {
			value = in.evaluate(s.Value)
		}
		panic(returnSignal{Value: value})
	case *ast.Var:
		var value Value = Nil{}
		if s.Initializer != nil {
			value = in.evaluate(s.Initializer)
		}
		in.environment.Define(s.Name.Literal, value)
	case *ast.While:
		for IsTruthy(in.evaluate(s.Condition)) {
			in.execute(s.Body)
		}
	default:
		panic(fmt.Sprintf("interp: unhandled statement type %T", stmt))
	}
}

// executeBlock runs stmts in env, restoring the interpreter's current
// environment pointer on every exit path — normal completion, a
// return-unwind, or a runtime-error-unwind — which spec.md §5 calls
// out as the one invariant whose violation silently corrupts
// subsequent scope resolution.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) {
	previous := in.environment
	defer func() { in.environment = previous }()

	in.environment = env
	for _, stmt := range stmts {
		in.execute(stmt)
	}
}

func (in *Interpreter) executeClass(c *ast.Class) {
	var superclass *Class
	if c.Superclass != nil {
		sv := in.evaluate(c.Superclass)
		sc, ok := sv.(*Class)
		if !ok {
			panic(&runtimeError{Token: c.Superclass.Name, Message: "Superclass must be a class."})
		}
		superclass = sc
	}

	in.environment.Define(c.Name.Literal, Nil{})

	env := in.environment
	if c.Superclass != nil {
		env = NewEnclosed(in.environment)
		env.Define("super", superclass)
	}

	methods := make(map[string]*Function)
	for _, m := range c.Methods {
		methods[m.Name.Literal] = &Function{
			Declaration:   m,
			Closure:       env,
			IsInitializer: m.Name.Literal == "init",
		}
	}

	class := &Class{Name: c.Name.Literal, Superclass: superclass, Methods: methods}
	in.environment.Assign(c.Name, class)
}

func (in *Interpreter) evaluate(expr ast.Expr) Value {
	switch e := expr.(type) {
	case *ast.Assign:
		value := in.evaluate(e.Value)
		if distance, ok := in.locals[e]; ok {
			in.environment.AssignAt(distance, e.Name, value)
		} else {
			in.globals.Assign(e.Name, value)
		}
		return value
	case *ast.Binary:
		return in.evalBinary(e)
	case *ast.Call:
		return in.evalCall(e)
	case *ast.Get:
		obj := in.evaluate(e.Object)
		inst, ok := obj.(*Instance)
		if !ok {
			panic(&runtimeError{Token: e.Name, Message: "Only instances have properties."})
		}
		return inst.Get(e.Name)
	case *ast.Grouping:
		return in.evaluate(e.Expression)
	case *ast.Literal:
		return literalValue(e)
	case *ast.Logical:
		left := in.evaluate(e.Left)
		if e.Operator.Type == token.OR {
			if IsTruthy(left) {
				return left
			}
		} else if !IsTruthy(left) {
			return left
		}
		return in.evaluate(e.Right)
	case *ast.Set:
		obj := in.evaluate(e.Object)
		inst, ok := obj.(*Instance)
		if !ok {
			panic(&runtimeError{Token: e.Name, Message: "Only instances have fields."})
		}
		value := in.evaluate(e.Value)
		inst.Set(e.Name, value)
		return value
	case *ast.Super:
		return in.evalSuper(e)
	case *ast.This:
		return in.lookUpVariable(e.Keyword, e)
	case *ast.Unary:
		return in.evalUnary(e)
	case *ast.Variable:
		return in.lookUpVariable(e.Name, e)
	default:
		panic(fmt.Sprintf("interp: unhandled expression type %T", expr))
	}
}

func literalValue(lit *ast.Literal) Value {
	switch v := lit.Value.(type) {
	case nil:
		return Nil{}
	case bool:
		return Boolean{Value: v}
	case float64:
		return Number{Value: v}
	case string:
		return String{Value: v}
	default:
		panic(fmt.Sprintf("interp: unhandled literal payload %T", lit.Value))
	}
}

func (in *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) Value {
	if distance, ok := in.locals[expr]; ok {
		return in.environment.GetAt(distance, name.Literal)
	}
	return in.globals.Get(name)
}

func (in *Interpreter) evalSuper(e *ast.Super) Value {
	distance := in.locals[e]
	superclass := in.environment.GetAt(distance, "super").(*Class)
	instance := in.environment.GetAt(distance-1, "this").(*Instance)

	method, ok := superclass.FindMethod(e.Method.Literal)
	if !ok {
		panic(&runtimeError{Token: e.Method, Message: "Undefined property '" + e.Method.Literal + "'."})
	}
	return method.Bind(instance)
}

func (in *Interpreter) evalCall(e *ast.Call) Value {
	callee := in.evaluate(e.Callee)

	args := make([]Value, len(e.Arguments))
	for i, a := range e.Arguments {
		args[i] = in.evaluate(a)
	}

	callable, ok := callee.(Callable)
	if !ok {
		panic(&runtimeError{Token: e.Paren, Message: "Can only call functions and classes."})
	}
	if len(args) != callable.Arity() {
		panic(&runtimeError{Token: e.Paren, Message: fmt.Sprintf(
			"Expected %d arguments but got %d.", callable.Arity(), len(args))})
	}
	return callable.Call(in, args)
}

func (in *Interpreter) evalUnary(e *ast.Unary) Value {
	right := in.evaluate(e.Right)
	switch e.Operator.Type {
	case token.MINUS:
		n, ok := right.(Number)
		if !ok {
			panic(&runtimeError{Token: e.Operator, Message: "Operand must be a number."})
		}
		return Number{Value: -n.Value}
	case token.BANG:
		return Boolean{Value: !IsTruthy(right)}
	default:
		panic(fmt.Sprintf("interp: unhandled unary operator %s", e.Operator.Type))
	}
}

func (in *Interpreter) evalBinary(e *ast.Binary) Value {
	left := in.evaluate(e.Left)
	right := in.evaluate(e.Right)

	switch e.Operator.Type {
	case token.PLUS:
		if ln, lok := left.(Number); lok {
			if rn, rok := right.(Number); rok {
				return Number{Value: ln.Value + rn.Value}
			}
		}
		if ls, lok := left.(String); lok {
			if rs, rok := right.(String); rok {
				return String{Value: ls.Value + rs.Value}
			}
		}
		panic(&runtimeError{Token: e.Operator, Message: "Operands must be two numbers or two strings."})
	case token.MINUS:
		ln, rn := in.numberOperands(e.Operator, left, right)
		return Number{Value: ln - rn}
	case token.STAR:
		ln, rn := in.numberOperands(e.Operator, left, right)
		return Number{Value: ln * rn}
	case token.SLASH:
		ln, rn := in.numberOperands(e.Operator, left, right)
		if rn == 0 {
			panic(&runtimeError{Token: e.Operator, Message: "Cannot divide by zero."})
		}
		return Number{Value: ln / rn}
	case token.GREATER:
		ln, rn := in.numberOperands(e.Operator, left, right)
		return Boolean{Value: ln > rn}
	case token.GREATER_EQUAL:
		ln, rn := in.numberOperands(e.Operator, left, right)
		return Boolean{Value: ln >= rn}
	case token.LESS:
		ln, rn := in.numberOperands(e.Operator, left, right)
		return Boolean{Value: ln < rn}
	case token.LESS_EQUAL:
		ln, rn := in.numberOperands(e.Operator, left, right)
		return Boolean{Value: ln <= rn}
	case token.EQUAL_EQUAL:
		return Boolean{Value: Equal(left, right)}
	case token.BANG_EQUAL:
		return Boolean{Value: !Equal(left, right)}
	default:
		panic(fmt.Sprintf("interp: unhandled binary operator %s", e.Operator.Type))
	}
}

func (in *Interpreter) numberOperands(operator token.Token, left, right Value) (float64, float64) {
	ln, lok := left.(Number)
	rn, rok := right.(Number)
	if !lok || !rok {
		panic(&runtimeError{Token: operator, Message: "Operands must be numbers."})
	}
	return ln.Value, rn.Value
}
