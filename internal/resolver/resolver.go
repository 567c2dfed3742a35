// Package resolver performs the single static pass over a Lox program
// that determines, for every variable use, how many enclosing scopes
// separate it from its declaration. The result is a side-table the
// evaluator consults instead of doing a dynamic scope walk per access.
package resolver

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/report"
	"github.com/cwbudde/go-lox/pkg/token"
)

// functionType tracks what kind of function body is currently being
// resolved, so `return` can be validated against its context.
type functionType int

const (
	fnNone functionType = iota
	fnFunction
	fnMethod
	fnInitializer
)

// classType tracks the enclosing class context, so `this` and `super`
// can be validated.
type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// scope maps a name to whether it has finished initializing: false
// means "declared but not yet defined" (its initializer is still
// being resolved), true means ready for use.
type scope map[string]bool

// Locals is the side-table produced by Resolve: for each AST node
// identity that resolves to a local binding, the number of enclosing
// scopes to walk at evaluation time. Nodes absent from the table
// resolve against the global environment instead.
type Locals map[ast.Expr]int

// Resolver walks a parsed program once, before evaluation, checking
// static semantic rules and recording variable resolution distances.
type Resolver struct {
	reporter *report.Reporter
	scopes   []scope
	locals   Locals

	currentFunction functionType
	currentClass    classType
}

// New creates a Resolver that reports static errors on reporter.
func New(reporter *report.Reporter) *Resolver {
	return &Resolver{reporter: reporter, locals: make(Locals)}
}

// Resolve walks every statement in the program and returns the
// resulting side-table. It does not abort on the first static error;
// it keeps walking to surface as many as possible, matching spec.md's
// "walks the full tree" requirement.
func (r *Resolver) Resolve(program *ast.Program) Locals {
	r.resolveStmts(program.Statements)
	return r.locals
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, scope{})
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	s := r.scopes[len(r.scopes)-1]
	if _, ok := s[name.Literal]; ok {
		r.errorAt(name, "Already a variable with this name in this scope.")
	}
	s[name.Literal] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Literal] = true
}

// resolveLocal walks the scope stack from innermost outward looking
// for name; on the first hit it records the distance in the side
// table. No hit at all means the name is left unresolved here, and
// the evaluator will fall back to the globals environment.
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Literal]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) errorAt(tok token.Token, message string) {
	if r.reporter != nil {
		r.reporter.ResolveError(tok.Pos, message)
	}
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *ast.Class:
		r.resolveClass(s)
	case *ast.Expression:
		r.resolveExpr(s.Expr)
	case *ast.Fun:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, fnFunction)
	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}
	case *ast.Print:
		r.resolveExpr(s.Expr)
	case *ast.Return:
		if r.currentFunction == fnNone {
			r.errorAt(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == fnInitializer {
				r.errorAt(s.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}
	case *ast.Var:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	}
}

func (r *Resolver) resolveClass(c *ast.Class) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(c.Name)
	r.define(c.Name)

	if c.Superclass != nil {
		if c.Superclass.Name.Literal == c.Name.Literal {
			r.errorAt(c.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentClass = classSubclass
		r.resolveExpr(c.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range c.Methods {
		fnType := fnMethod
		if method.Name.Literal == "init" {
			fnType = fnInitializer
		}
		r.resolveFunction(method, fnType)
	}

	r.endScope()

	if c.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

func (r *Resolver) resolveFunction(fn *ast.Fun, fnType functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = fnType

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}
	case *ast.Get:
		r.resolveExpr(e.Object)
	case *ast.Grouping:
		r.resolveExpr(e.Expression)
	case *ast.Literal:
		// no sub-expressions, nothing to resolve
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.Super:
		if r.currentClass == classNone {
			r.errorAt(e.Keyword, "Can't use 'super' outside of a class.")
		} else if r.currentClass != classSubclass {
			r.errorAt(e.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, e.Keyword)
	case *ast.This:
		if r.currentClass == classNone {
			r.errorAt(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, e.Keyword)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Literal]; ok && !defined {
				r.errorAt(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)
	}
}
