package ast

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-lox/pkg/token"
)

// Assign is `name = value`. Resolved by the resolver exactly like a
// Variable reference, keyed by the identity of the Assign node itself.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (a *Assign) exprNode()             {}
func (a *Assign) TokenLiteral() string  { return a.Name.Literal }
func (a *Assign) Pos() token.Position   { return a.Name.Pos }
func (a *Assign) String() string        { return fmt.Sprintf("(%s = %s)", a.Name.Literal, a.Value) }

// Binary is a left-associative infix operator expression: `left OP right`.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (b *Binary) exprNode()            {}
func (b *Binary) TokenLiteral() string { return b.Operator.Literal }
func (b *Binary) Pos() token.Position  { return b.Operator.Pos }
func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Operator.Literal, b.Right)
}

// Call is `callee ( arguments )`. Paren is retained for error
// reporting (arity errors are attributed to the closing paren).
type Call struct {
	Callee    Expr
	Paren     token.Token
	Arguments []Expr
}

func (c *Call) exprNode()            {}
func (c *Call) TokenLiteral() string { return c.Paren.Literal }
func (c *Call) Pos() token.Position  { return c.Callee.Pos() }
func (c *Call) String() string {
	args := make([]string, len(c.Arguments))
	for i, a := range c.Arguments {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Callee, strings.Join(args, ", "))
}

// Get is `object.name`, a field or method read.
type Get struct {
	Object Expr
	Name   token.Token
}

func (g *Get) exprNode()            {}
func (g *Get) TokenLiteral() string { return g.Name.Literal }
func (g *Get) Pos() token.Position  { return g.Object.Pos() }
func (g *Get) String() string       { return fmt.Sprintf("%s.%s", g.Object, g.Name.Literal) }

// Grouping is a parenthesized expression, kept distinct so printers
// and tools can reproduce the source parenthesization if desired.
type Grouping struct {
	LParen     token.Token
	Expression Expr
}

func (g *Grouping) exprNode()            {}
func (g *Grouping) TokenLiteral() string { return g.LParen.Literal }
func (g *Grouping) Pos() token.Position  { return g.LParen.Pos }
func (g *Grouping) String() string       { return fmt.Sprintf("(%s)", g.Expression) }

// Literal is a constant: number, string, boolean, or nil. Value holds
// the already-converted Go value (float64, string, bool, or nil).
type Literal struct {
	Token token.Token
	Value interface{}
}

func (l *Literal) exprNode()            {}
func (l *Literal) TokenLiteral() string { return l.Token.Literal }
func (l *Literal) Pos() token.Position  { return l.Token.Pos }
func (l *Literal) String() string {
	if l.Value == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", l.Value)
}

// Logical is `left and right` / `left or right`, kept distinct from
// Binary because both branches short-circuit.
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (lo *Logical) exprNode()            {}
func (lo *Logical) TokenLiteral() string { return lo.Operator.Literal }
func (lo *Logical) Pos() token.Position  { return lo.Operator.Pos }
func (lo *Logical) String() string {
	return fmt.Sprintf("(%s %s %s)", lo.Left, lo.Operator.Literal, lo.Right)
}

// Set is `object.name = value`, a field write.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (s *Set) exprNode()            {}
func (s *Set) TokenLiteral() string { return s.Name.Literal }
func (s *Set) Pos() token.Position  { return s.Object.Pos() }
func (s *Set) String() string       { return fmt.Sprintf("(%s.%s = %s)", s.Object, s.Name.Literal, s.Value) }

// Super is `super.method`, resolved relative to the enclosing class's
// superclass binding.
type Super struct {
	Keyword token.Token
	Method  token.Token
}

func (s *Super) exprNode()            {}
func (s *Super) TokenLiteral() string { return s.Keyword.Literal }
func (s *Super) Pos() token.Position  { return s.Keyword.Pos }
func (s *Super) String() string       { return fmt.Sprintf("super.%s", s.Method.Literal) }

// This is the `this` keyword used inside a method body.
type This struct {
	Keyword token.Token
}

func (t *This) exprNode()            {}
func (t *This) TokenLiteral() string { return t.Keyword.Literal }
func (t *This) Pos() token.Position  { return t.Keyword.Pos }
func (t *This) String() string       { return "this" }

// Unary is a prefix operator expression: `OP right`.
type Unary struct {
	Operator token.Token
	Right    Expr
}

func (u *Unary) exprNode()            {}
func (u *Unary) TokenLiteral() string { return u.Operator.Literal }
func (u *Unary) Pos() token.Position  { return u.Operator.Pos }
func (u *Unary) String() string       { return fmt.Sprintf("(%s%s)", u.Operator.Literal, u.Right) }

// Variable is a bare identifier used as an expression: a read of a
// local, upvalue, or global binding.
type Variable struct {
	Name token.Token
}

func (v *Variable) exprNode()            {}
func (v *Variable) TokenLiteral() string { return v.Name.Literal }
func (v *Variable) Pos() token.Position  { return v.Name.Pos }
func (v *Variable) String() string       { return v.Name.Literal }
