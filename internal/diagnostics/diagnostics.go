// Package diagnostics is the parser's error taxonomy (spec §7). Each
// DiagnosticError carries a stable code and the Phase it was raised in,
// plus the token it's anchored to, so callers can match on code instead
// of rendered message text.
package diagnostics

import (
	"fmt"

	"github.com/mujiansu/monkey-lang/internal/token"
)

// Phase is the processing stage a diagnostic was raised in.
type Phase string

const (
	PhaseLexer  Phase = "lexer"
	PhaseParser Phase = "parser"
)

// ErrorCode is a stable identifier for a diagnostic, independent of its
// rendered message.
type ErrorCode string

const (
	ErrL001 ErrorCode = "L001" // invalid character

	ErrP001 ErrorCode = "P001" // expected next token to be X, got Y
	ErrP002 ErrorCode = "P002" // no prefix parse function for token kind
	ErrP003 ErrorCode = "P003" // integer literal failed to parse
)

var errorTemplates = map[ErrorCode]string{
	ErrL001: "invalid character: %q",
	ErrP001: "expected next token to be %s, got %s instead",
	ErrP002: "no prefix parse function for %s found",
	ErrP003: "could not parse %q as integer",
}

// DiagnosticError is a single parse error, rendered lazily from its code
// and arguments so templates stay in one table.
type DiagnosticError struct {
	Code  ErrorCode
	Phase Phase
	Args  []interface{}
	Token token.Token
}

func (e *DiagnosticError) Error() string {
	template, ok := errorTemplates[e.Code]
	if !ok {
		return fmt.Sprintf("unknown diagnostic code: %s", e.Code)
	}
	message := fmt.Sprintf(template, e.Args...)
	if e.Token.Line > 0 {
		return fmt.Sprintf("%d:%d: [%s] %s", e.Token.Line, e.Token.Column, e.Code, message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, message)
}

// New builds a parser-phase DiagnosticError anchored to tok.
func New(code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Code: code, Phase: PhaseParser, Token: tok, Args: args}
}
