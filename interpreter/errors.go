package interpreter

import (
	"fmt"

	"github.com/akashmaji946/loxgo/lexer"
)

// RuntimeError is a failure discovered while evaluating an already-valid
// AST: a type mismatch, an undefined variable, calling a non-callable
// value, and so on. It carries the token nearest the failure so the
// reporter can print a source line, matching spec.md §6/§7's runtime-error
// tier.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

func newRuntimeError(tok lexer.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// returnSignal is panicked by a "return" statement and recovered by the
// enclosing Function.Call, the Go-idiomatic stand-in for the non-local
// exception-based control flow named in spec.md §9. It is never exposed as
// an error value; it always stays within this package's call boundary.
type returnSignal struct {
	value interface{}
}

func (returnSignal) Error() string { return "return" }
