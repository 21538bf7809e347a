// Package diag defines the diagnostic values produced when a translation
// run fails. Every failure carries its taxonomy kind, the source position
// it was detected at, and a message; callers decide whether to halt the
// process.
package diag

import (
	"fmt"

	"github.com/Vipaswi/Compiler/token"
)

// Kind is the error taxonomy: where in the pipeline the violation was found.
type Kind int

const (
	// Lexical: unrecognized character, malformed literal or operator.
	Lexical Kind = iota
	// Syntax: the current token does not match the active grammar rule.
	Syntax
	// Semantic: undeclared variable, duplicate label, or dangling goto.
	Semantic
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical"
	case Syntax:
		return "syntax"
	case Semantic:
		return "semantic"
	}
	return "unknown"
}

// Error is a single fatal translation diagnostic.
type Error struct {
	Kind Kind
	Pos  token.Pos
	Msg  string
}

func (e *Error) Error() string {
	if e.Pos.Line == 0 {
		return fmt.Sprintf("%s error: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%d:%d: %s error: %s", e.Pos.Line, e.Pos.Col, e.Kind, e.Msg)
}

// Errorf builds an Error with a formatted message.
func Errorf(kind Kind, pos token.Pos, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
