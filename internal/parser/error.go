package parser

import (
	"fmt"

	"github.com/cwbudde/go-lox/pkg/token"
)

// Error is a structured parse error: the position and message the
// driver reports, plus the offending token's lexeme so the caller can
// render the " at end" / " at 'LEXEME'" suffix spec.md's error format
// requires.
type Error struct {
	Message string
	Pos     token.Position
	Where   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s%s: %s", e.Pos, e.Where, e.Message)
}

func newError(tok token.Token, message string) *Error {
	where := fmt.Sprintf(" at '%s'", tok.Literal)
	if tok.Type == token.EOF {
		where = " at end"
	}
	return &Error{Message: message, Pos: tok.Pos, Where: where}
}
