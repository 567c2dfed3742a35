// Package ast defines the Lox abstract syntax tree: tagged sum types
// for expressions and statements, dispatched by type switch rather
// than the visitor pattern.
package ast

import "github.com/cwbudde/go-lox/pkg/token"

// Node is the base interface every AST node satisfies.
type Node interface {
	// TokenLiteral returns the literal text of the token the node is
	// most closely associated with, useful for error messages.
	TokenLiteral() string

	// String renders the node for debugging.
	String() string

	// Pos returns the node's source position.
	Pos() token.Position
}

// Expr is any node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that performs an action without itself producing a
// value.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root of a parsed Lox source file: a flat list of
// top-level declarations.
type Program struct {
	Statements []Stmt
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var b []byte
	for _, s := range p.Statements {
		b = append(b, s.String()...)
		b = append(b, '\n')
	}
	return string(b)
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}
