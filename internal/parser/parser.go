// Package parser implements a recursive-descent parser for Lox,
// turning a token stream into a internal/ast.Program.
package parser

import (
	"strconv"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/report"
	"github.com/cwbudde/go-lox/pkg/token"
)

// TokenSource is anything that can hand the parser tokens one at a
// time with a single token of lookahead; *lexer.Lexer satisfies it.
type TokenSource interface {
	NextToken() token.Token
	Peek(n int) token.Token
}

const maxArgs = 255

// parseError is a sentinel panic value used to unwind out of a
// declaration/statement on a parse error so the caller can
// synchronize, mirroring the teacher's panic-mode recovery without
// threading an error return through every production.
type parseError struct{ err *Error }

// Parser consumes tokens from a TokenSource and builds an AST,
// reporting structured errors on a report.Reporter as it goes.
type Parser struct {
	tokens       TokenSource
	reporter     *report.Reporter
	current      token.Token
	lastConsumed token.Token
	errors       []*Error
}

// New creates a Parser reading from tokens and reporting diagnostics
// on reporter.
func New(tokens TokenSource, reporter *report.Reporter) *Parser {
	p := &Parser{tokens: tokens, reporter: reporter}
	p.current = p.tokens.NextToken()
	return p
}

// Errors returns every parse error collected during Parse.
func (p *Parser) Errors() []*Error {
	return p.errors
}

// Parse consumes the entire token stream and returns the resulting
// program. Declarations that fail to parse are dropped; parsing
// continues after synchronizing, so a single file can report more
// than one error.
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{}
	for p.current.Type != token.EOF {
		if stmt := p.declaration(); stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
	}
	return prog
}

func (p *Parser) advance() token.Token {
	prev := p.current
	if prev.Type != token.EOF {
		p.current = p.tokens.NextToken()
	}
	p.lastConsumed = prev
	return prev
}

func (p *Parser) check(tt token.TokenType) bool {
	return p.current.Type == tt
}

func (p *Parser) match(types ...token.TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(tt token.TokenType, message string) token.Token {
	if p.check(tt) {
		return p.advance()
	}
	p.fail(message)
	panic(parseError{}) // unreachable: fail always panics
}

// fail records a parse error and unwinds the current declaration via
// panic, to be caught by synchronize's recover in declaration().
func (p *Parser) fail(message string) {
	err := p.warn(message)
	panic(parseError{err: err})
}

// warn records a parse error at the current token without unwinding,
// for violations spec.md says should be reported but not stop parsing
// (the >255 parameters/arguments limits).
func (p *Parser) warn(message string) *Error {
	err := newError(p.current, message)
	p.errors = append(p.errors, err)
	if p.reporter != nil {
		p.reporter.ParseError(err.Pos, err.Where, err.Message)
	}
	return err
}

// synchronize discards tokens until the last-consumed token was a
// semicolon or the next token begins a new statement, per spec.md
// §4.2's recovery rule.
func (p *Parser) synchronize() {
	for p.current.Type != token.EOF {
		prev := p.advance()
		if prev.Type == token.SEMICOLON {
			return
		}
		switch p.current.Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
	}
}

// declaration dispatches to the three declaration-introducing
// keywords, falling through to statement otherwise. A parse error
// anywhere underneath causes the whole declaration to be dropped.
func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	switch {
	case p.match(token.CLASS):
		return p.classDeclaration()
	case p.match(token.FUN):
		return p.function("function")
	case p.match(token.VAR):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) classDeclaration() ast.Stmt {
	name := p.consume(token.IDENT, "Expect class name.")

	var superclass *ast.Variable
	if p.match(token.LESS) {
		p.consume(token.IDENT, "Expect superclass name.")
		superclass = &ast.Variable{Name: p.lastConsumed}
	}

	p.consume(token.LBRACE, "Expect '{' before class body.")
	var methods []*ast.Fun
	for !p.check(token.RBRACE) && p.current.Type != token.EOF {
		methods = append(methods, p.function("method"))
	}
	p.consume(token.RBRACE, "Expect '}' after class body.")

	return &ast.Class{Name: name, Superclass: superclass, Methods: methods}
}

func (p *Parser) function(kind string) *ast.Fun {
	name := p.consume(token.IDENT, "Expect "+kind+" name.")
	p.consume(token.LPAREN, "Expect '(' after "+kind+" name.")
	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= maxArgs {
				p.warn("Can't have more than 255 parameters.")
			}
			params = append(params, p.consume(token.IDENT, "Expect parameter name."))
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RPAREN, "Expect ')' after parameters.")
	p.consume(token.LBRACE, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &ast.Fun{Name: name, Params: params, Body: body}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.IDENT, "Expect variable name.")
	var initializer ast.Expr
	if p.match(token.EQUAL) {
		initializer = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.Var{Name: name, Initializer: initializer}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.check(token.LBRACE):
		lbrace := p.advance()
		return &ast.Block{LBrace: lbrace, Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && p.current.Type != token.EOF {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.consume(token.RBRACE, "Expect '}' after block.")
	return stmts
}

// forStatement desugars `for (init; cond; incr) body` into a `while`
// loop wrapped in the initializer's block, per spec.md §4.2.
func (p *Parser) forStatement() ast.Stmt {
	keyword := p.lastConsumed
	p.consume(token.LPAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
		initializer = nil
	case p.match(token.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(token.RPAREN) {
		increment = p.expression()
	}
	p.consume(token.RPAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &ast.Block{LBrace: keyword, Statements: []ast.Stmt{body, &ast.Expression{Expr: increment}}}
	}
	if condition == nil {
		condition = &ast.Literal{Token: keyword, Value: true}
	}
	body = &ast.While{Keyword: keyword, Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.Block{LBrace: keyword, Statements: []ast.Stmt{initializer, body}}
	}
	return body
}

func (p *Parser) ifStatement() ast.Stmt {
	keyword := p.lastConsumed
	p.consume(token.LPAREN, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(token.RPAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.If{Keyword: keyword, Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

func (p *Parser) printStatement() ast.Stmt {
	keyword := p.lastConsumed
	value := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after value.")
	return &ast.Print{Keyword: keyword, Expr: value}
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.lastConsumed
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.consume(token.SEMICOLON, "Expect ';' after return value.")
	return &ast.Return{Keyword: keyword, Value: value}
}

func (p *Parser) whileStatement() ast.Stmt {
	keyword := p.lastConsumed
	p.consume(token.LPAREN, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(token.RPAREN, "Expect ')' after condition.")
	body := p.statement()
	return &ast.While{Keyword: keyword, Condition: condition, Body: body}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.SEMICOLON, "Expect ';' after expression.")
	return &ast.Expression{Expr: expr}
}

// Expression grammar, lowest to highest precedence:
// assignment -> logic_or -> logic_and -> equality -> comparison ->
// term -> factor -> unary -> call -> primary

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

func (p *Parser) assignment() ast.Expr {
	expr := p.logicOr()

	if p.match(token.EQUAL) {
		equals := p.lastConsumed
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		default:
			err := newError(equals, "Invalid assignment target.")
			p.errors = append(p.errors, err)
			if p.reporter != nil {
				p.reporter.ParseError(err.Pos, err.Where, err.Message)
			}
			return expr
		}
	}
	return expr
}

func (p *Parser) logicOr() ast.Expr {
	expr := p.logicAnd()
	for p.match(token.OR) {
		op := p.lastConsumed
		right := p.logicAnd()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) logicAnd() ast.Expr {
	expr := p.equality()
	for p.match(token.AND) {
		op := p.lastConsumed
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.lastConsumed
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.lastConsumed
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.MINUS, token.PLUS) {
		op := p.lastConsumed
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.STAR, token.SLASH) {
		op := p.lastConsumed
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.lastConsumed
		right := p.unary()
		return &ast.Unary{Operator: op, Right: right}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		switch {
		case p.match(token.LPAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name := p.consume(token.IDENT, "Expect property name after '.'.")
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxArgs {
				p.warn("Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RPAREN, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Token: p.lastConsumed, Value: false}
	case p.match(token.TRUE):
		return &ast.Literal{Token: p.lastConsumed, Value: true}
	case p.match(token.NIL):
		return &ast.Literal{Token: p.lastConsumed, Value: nil}
	case p.match(token.NUMBER):
		tok := p.lastConsumed
		v, _ := strconv.ParseFloat(tok.Literal, 64)
		return &ast.Literal{Token: tok, Value: v}
	case p.match(token.STRING):
		tok := p.lastConsumed
		return &ast.Literal{Token: tok, Value: tok.Literal}
	case p.match(token.SUPER):
		keyword := p.lastConsumed
		p.consume(token.DOT, "Expect '.' after 'super'.")
		method := p.consume(token.IDENT, "Expect superclass method name.")
		return &ast.Super{Keyword: keyword, Method: method}
	case p.match(token.THIS):
		return &ast.This{Keyword: p.lastConsumed}
	case p.match(token.IDENT):
		return &ast.Variable{Name: p.lastConsumed}
	case p.match(token.LPAREN):
		lparen := p.lastConsumed
		expr := p.expression()
		p.consume(token.RPAREN, "Expect ')' after expression.")
		return &ast.Grouping{LParen: lparen, Expression: expr}
	default:
		p.fail("Expect expression.")
		return nil // unreachable: fail always panics
	}
}
