package parser

import (
	"fmt"

	"github.com/cmmoran/jsls/internal/lexer"
)

// ParseError records one syntax error with the token that triggered it.
// Parsing never stops at the first error: the parser records the error,
// resynchronizes at the next statement boundary and keeps going, so a single
// Parse call can return many of these.
type ParseError struct {
	Message  string
	Token    lexer.Token
	Expected string
}

func (e *ParseError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("%s at offset %d: expected %s", e.Message, e.Token.Start, e.Expected)
	}
	return fmt.Sprintf("%s at offset %d", e.Message, e.Token.Start)
}

// bail is the panic sentinel used internally to unwind to the nearest
// statement boundary after a ParseError has been recorded. It never escapes
// the package.
type bail struct{}
