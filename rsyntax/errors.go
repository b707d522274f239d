package rsyntax

import (
	"errors"
	"fmt"
)

// ErrSyntax is wrapped by every ParseError.
var ErrSyntax = errors.New("rust syntax error")

// ParseError reports a fragment that is not valid Rust syntax.
type ParseError struct {
	// Fragment names what was being parsed: "type", "generics", "identifier"...
	Fragment string
	// Input is the full text handed to the parser.
	Input string
	// Offset is the byte offset of the offending token in Input.
	Offset int
	// Msg describes the problem.
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s (offset %d)", e.Fragment, e.Input, e.Msg, e.Offset)
}

// Unwrap returns ErrSyntax.
func (e *ParseError) Unwrap() error { return ErrSyntax }
