package lexer

import (
	"testing"

	"github.com/cwbudde/go-lox/pkg/token"
)

func TestNextToken(t *testing.T) {
	input := `var x = 5;
	x = x + 10;
	`

	tests := []struct {
		expectedLiteral string
		expectedType    token.TokenType
	}{
		{"var", token.VAR},
		{"x", token.IDENT},
		{"=", token.EQUAL},
		{"5", token.NUMBER},
		{";", token.SEMICOLON},
		{"x", token.IDENT},
		{"=", token.EQUAL},
		{"x", token.IDENT},
		{"+", token.PLUS},
		{"10", token.NUMBER},
		{";", token.SEMICOLON},
		{"", token.EOF},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s (literal=%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := `and class else false fun for if nil or print return super this true var while`

	tests := []token.TokenType{
		token.AND, token.CLASS, token.ELSE, token.FALSE, token.FUN, token.FOR,
		token.IF, token.NIL, token.OR, token.PRINT, token.RETURN, token.SUPER,
		token.THIS, token.TRUE, token.VAR, token.WHILE,
	}

	l := New(input)
	for i, expected := range tests {
		tok := l.NextToken()
		if tok.Type != expected {
			t.Fatalf("tests[%d] - expected=%s, got=%s (literal=%q)", i, expected, tok.Type, tok.Literal)
		}
	}
}

func TestOperatorsAndPunctuation(t *testing.T) {
	input := `( ) { } , . - + ; * ! != = == < <= > >= /`

	tests := []token.TokenType{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.COMMA,
		token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG, token.BANG_EQUAL, token.EQUAL, token.EQUAL_EQUAL,
		token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL,
		token.SLASH,
	}

	l := New(input)
	for i, expected := range tests {
		tok := l.NextToken()
		if tok.Type != expected {
			t.Fatalf("tests[%d] - expected=%s, got=%s (literal=%q)", i, expected, tok.Type, tok.Literal)
		}
	}
}

func TestStringLiteral(t *testing.T) {
	input := `"hello world"`
	l := New(input)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("expected STRING, got %s", tok.Type)
	}
	if tok.Literal != "hello world" {
		t.Fatalf("expected %q, got %q", "hello world", tok.Literal)
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"unterminated`)
	l.NextToken()
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 error, got %d", len(l.Errors()))
	}
	if l.Errors()[0].Message != "Unterminated string" {
		t.Fatalf("unexpected error message: %q", l.Errors()[0].Message)
	}
}

func TestStringWithEmbeddedNewline(t *testing.T) {
	l := New("\"line one\nline two\"")
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("expected STRING, got %s", tok.Type)
	}
	if tok.Literal != "line one\nline two" {
		t.Fatalf("unexpected literal: %q", tok.Literal)
	}
	next := l.NextToken()
	if next.Pos.Line != 2 {
		t.Fatalf("expected line to advance past embedded newline, got %d", next.Pos.Line)
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"123", "123"},
		{"123.45", "123.45"},
		{"123.", "123"}, // trailing dot with no fractional digit is not consumed
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != token.NUMBER {
			t.Fatalf("input %q: expected NUMBER, got %s", tt.input, tok.Type)
		}
		if tok.Literal != tt.expected {
			t.Fatalf("input %q: expected literal %q, got %q", tt.input, tt.expected, tok.Literal)
		}
	}
	l := New("123.")
	l.NextToken() // NUMBER "123"
	dot := l.NextToken()
	if dot.Type != token.DOT {
		t.Fatalf("expected trailing DOT token, got %s", dot.Type)
	}
}

func TestLineAndBlockComments(t *testing.T) {
	l := New("// a comment\n123 /* block\ncomment */ 456")
	first := l.NextToken()
	if first.Type != token.NUMBER || first.Literal != "123" {
		t.Fatalf("expected NUMBER 123, got %s %q", first.Type, first.Literal)
	}
	if first.Pos.Line != 2 {
		t.Fatalf("expected line 2 after line comment, got %d", first.Pos.Line)
	}
	second := l.NextToken()
	if second.Type != token.NUMBER || second.Literal != "456" {
		t.Fatalf("expected NUMBER 456, got %s %q", second.Type, second.Literal)
	}
	if second.Pos.Line != 3 {
		t.Fatalf("expected line 3 after block comment spanning a newline, got %d", second.Pos.Line)
	}
}

func TestUnexpectedCharacterRecovers(t *testing.T) {
	l := New("@ 1")
	illegal := l.NextToken()
	if illegal.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", illegal.Type)
	}
	if len(l.Errors()) != 1 || l.Errors()[0].Message != "Unexpected character: @" {
		t.Fatalf("unexpected errors: %+v", l.Errors())
	}
	next := l.NextToken()
	if next.Type != token.NUMBER {
		t.Fatalf("expected scanning to continue, got %s", next.Type)
	}
}

func TestPreserveComments(t *testing.T) {
	l := New("// hi\n1", WithPreserveComments(true))
	c := l.NextToken()
	if c.Type != token.COMMENT {
		t.Fatalf("expected COMMENT, got %s", c.Type)
	}
	if c.Literal != "// hi" {
		t.Fatalf("unexpected comment literal: %q", c.Literal)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := New("1 + 2")
	peeked := l.Peek(0)
	if peeked.Type != token.NUMBER {
		t.Fatalf("expected NUMBER, got %s", peeked.Type)
	}
	first := l.NextToken()
	if first.Literal != peeked.Literal {
		t.Fatalf("Peek and NextToken disagreed: %q vs %q", peeked.Literal, first.Literal)
	}
}
