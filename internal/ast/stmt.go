package ast

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-lox/pkg/token"
)

// Block is `{ statements }`, executed in a fresh child environment.
type Block struct {
	LBrace     token.Token
	Statements []Stmt
}

func (b *Block) stmtNode()            {}
func (b *Block) TokenLiteral() string { return b.LBrace.Literal }
func (b *Block) Pos() token.Position  { return b.LBrace.Pos }
func (b *Block) String() string {
	parts := make([]string, len(b.Statements))
	for i, s := range b.Statements {
		parts[i] = s.String()
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

// Class is `class NAME (< SUPER)? { method* }`.
type Class struct {
	Name       token.Token
	Superclass *Variable // nil when the class has no superclass
	Methods    []*Fun
}

func (c *Class) stmtNode()            {}
func (c *Class) TokenLiteral() string { return c.Name.Literal }
func (c *Class) Pos() token.Position  { return c.Name.Pos }
func (c *Class) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "class %s", c.Name.Literal)
	if c.Superclass != nil {
		fmt.Fprintf(&b, " < %s", c.Superclass.Name.Literal)
	}
	b.WriteString(" { ")
	for _, m := range c.Methods {
		b.WriteString(m.String())
		b.WriteString(" ")
	}
	b.WriteString("}")
	return b.String()
}

// Expression is an expression-statement: an expression evaluated
// solely for its side effects, its value discarded.
type Expression struct {
	Expr Expr
}

func (e *Expression) stmtNode()            {}
func (e *Expression) TokenLiteral() string { return e.Expr.TokenLiteral() }
func (e *Expression) Pos() token.Position  { return e.Expr.Pos() }
func (e *Expression) String() string       { return e.Expr.String() + ";" }

// Fun is `fun NAME ( params ) { body }`, also used (without the
// leading `fun` keyword in source, but the same node) for class
// methods.
type Fun struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (f *Fun) stmtNode()            {}
func (f *Fun) TokenLiteral() string { return f.Name.Literal }
func (f *Fun) Pos() token.Position  { return f.Name.Pos }
func (f *Fun) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Literal
	}
	return fmt.Sprintf("fun %s(%s)", f.Name.Literal, strings.Join(params, ", "))
}

// If is `if ( condition ) thenBranch (else elseBranch)?`.
type If struct {
	Keyword    token.Token
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt // nil when there is no else clause
}

func (i *If) stmtNode()            {}
func (i *If) TokenLiteral() string { return i.Keyword.Literal }
func (i *If) Pos() token.Position  { return i.Keyword.Pos }
func (i *If) String() string {
	if i.ElseBranch == nil {
		return fmt.Sprintf("if (%s) %s", i.Condition, i.ThenBranch)
	}
	return fmt.Sprintf("if (%s) %s else %s", i.Condition, i.ThenBranch, i.ElseBranch)
}

// Print is `print EXPR;`.
type Print struct {
	Keyword token.Token
	Expr    Expr
}

func (p *Print) stmtNode()            {}
func (p *Print) TokenLiteral() string { return p.Keyword.Literal }
func (p *Print) Pos() token.Position  { return p.Keyword.Pos }
func (p *Print) String() string       { return fmt.Sprintf("print %s;", p.Expr) }

// Return is `return (EXPR)? ;`. Keyword is retained so resolver and
// runtime errors can report the statement's location.
type Return struct {
	Keyword token.Token
	Value   Expr // nil for a bare `return;`
}

func (r *Return) stmtNode()            {}
func (r *Return) TokenLiteral() string { return r.Keyword.Literal }
func (r *Return) Pos() token.Position  { return r.Keyword.Pos }
func (r *Return) String() string {
	if r.Value == nil {
		return "return;"
	}
	return fmt.Sprintf("return %s;", r.Value)
}

// Var is `var NAME (= INIT)? ;`.
type Var struct {
	Name        token.Token
	Initializer Expr // nil when the declaration has no initializer
}

func (v *Var) stmtNode()            {}
func (v *Var) TokenLiteral() string { return v.Name.Literal }
func (v *Var) Pos() token.Position  { return v.Name.Pos }
func (v *Var) String() string {
	if v.Initializer == nil {
		return fmt.Sprintf("var %s;", v.Name.Literal)
	}
	return fmt.Sprintf("var %s = %s;", v.Name.Literal, v.Initializer)
}

// While is `while ( condition ) body`. `for` loops are desugared into
// this node by the parser.
type While struct {
	Keyword   token.Token
	Condition Expr
	Body      Stmt
}

func (w *While) stmtNode()            {}
func (w *While) TokenLiteral() string { return w.Keyword.Literal }
func (w *While) Pos() token.Position  { return w.Keyword.Pos }
func (w *While) String() string       { return fmt.Sprintf("while (%s) %s", w.Condition, w.Body) }
