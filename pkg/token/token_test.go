package token

import "testing"

func TestPositionString(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		expected string
	}{
		{"simple position", Position{Line: 1, Column: 5}, "1:5"},
		{"larger numbers", Position{Line: 123, Column: 456}, "123:456"},
		{"zero position", Position{Line: 0, Column: 0}, "0:0"},
		{"with offset", Position{Line: 10, Column: 20, Offset: 100}, "10:20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.expected {
				t.Errorf("Position.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPositionIsValid(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		expected bool
	}{
		{"valid position", Position{Line: 1, Column: 1}, true},
		{"valid with offset", Position{Line: 10, Column: 5, Offset: 50}, true},
		{"zero line invalid", Position{Line: 0, Column: 1}, false},
		{"negative line invalid", Position{Line: -1, Column: 1}, false},
		{"zero column but valid line", Position{Line: 1, Column: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.IsValid(); got != tt.expected {
				t.Errorf("Position.IsValid() = %v, want %v (pos: %+v)", got, tt.expected, tt.pos)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		name     string
		token    Token
		expected string
	}{
		{
			"simple identifier",
			Token{Type: IDENT, Literal: "foo", Pos: Position{Line: 1, Column: 5}},
			`IDENT("foo") at 1:5`,
		},
		{
			"keyword",
			Token{Type: CLASS, Literal: "class", Pos: Position{Line: 2, Column: 1}},
			`CLASS("class") at 2:1`,
		},
		{
			"EOF token",
			Token{Type: EOF, Literal: "", Pos: Position{Line: 10, Column: 20}},
			`EOF at 10:20`,
		},
		{
			"long literal truncated",
			Token{Type: STRING, Literal: "this is a very long string literal that will be truncated", Pos: Position{Line: 5, Column: 10}},
			`STRING("this is a very long "...) at 5:10`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.String(); got != tt.expected {
				t.Errorf("Token.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTokenTypeString(t *testing.T) {
	tests := []struct {
		tt       TokenType
		expected string
	}{
		{IDENT, "IDENT"},
		{WHILE, "WHILE"},
		{LESS_EQUAL, "LESS_EQUAL"},
		{TokenType(9999), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.tt.String(); got != tt.expected {
				t.Errorf("TokenType.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIsLiteralAndIsKeyword(t *testing.T) {
	literals := []TokenType{IDENT, NUMBER, STRING}
	for _, tt := range literals {
		if !tt.IsLiteral() {
			t.Errorf("%s.IsLiteral() = false, want true", tt)
		}
		if tt.IsKeyword() {
			t.Errorf("%s.IsKeyword() = true, want false", tt)
		}
	}

	keywords := []TokenType{AND, CLASS, ELSE, FALSE, FUN, FOR, IF, NIL, OR, PRINT, RETURN, SUPER, THIS, TRUE, VAR, WHILE}
	for _, tt := range keywords {
		if !tt.IsKeyword() {
			t.Errorf("%s.IsKeyword() = false, want true", tt)
		}
		if tt.IsLiteral() {
			t.Errorf("%s.IsLiteral() = true, want false", tt)
		}
	}

	if EOF.IsLiteral() || EOF.IsKeyword() {
		t.Errorf("EOF should be neither a literal nor a keyword")
	}
	if LPAREN.IsLiteral() || LPAREN.IsKeyword() {
		t.Errorf("LPAREN should be neither a literal nor a keyword")
	}
}

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident    string
		expected TokenType
	}{
		{"and", AND},
		{"class", CLASS},
		{"while", WHILE},
		{"foo", IDENT},
		{"AND", IDENT}, // case-sensitive: only the lowercase keyword matches
		{"_count", IDENT},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			if got := LookupIdent(tt.ident); got != tt.expected {
				t.Errorf("LookupIdent(%q) = %s, want %s", tt.ident, got, tt.expected)
			}
		})
	}
}

func TestTokenEnd(t *testing.T) {
	tests := []struct {
		name  string
		token Token
		want  Position
	}{
		{
			"single line literal",
			Token{Literal: "foo", Pos: Position{Line: 1, Column: 1, Offset: 0}},
			Position{Line: 1, Column: 4, Offset: 3},
		},
		{
			"literal with embedded newline",
			Token{Literal: "a\nbc", Pos: Position{Line: 1, Column: 1, Offset: 0}},
			Position{Line: 2, Column: 3, Offset: 4},
		},
		{
			"multibyte rune counts as one column",
			Token{Literal: "café", Pos: Position{Line: 1, Column: 1, Offset: 0}},
			Position{Line: 1, Column: 5, Offset: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.End(); got != tt.want {
				t.Errorf("Token.End() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
