// Package emitter accumulates translated C output. It knows nothing about
// the grammar: it exposes append operations into two ordered streams (the
// declaration preamble and the program body) plus a final concatenation.
package emitter

import "strings"

// Emitter is an append-only two-stream text buffer.
type Emitter struct {
	header strings.Builder
	body   strings.Builder
}

// New creates an empty Emitter.
func New() *Emitter {
	return &Emitter{}
}

// Header appends a line to the declaration preamble.
func (e *Emitter) Header(line string) {
	e.header.WriteString(line)
	e.header.WriteByte('\n')
}

// Emit appends a fragment to the body with no terminator.
func (e *Emitter) Emit(fragment string) {
	e.body.WriteString(fragment)
}

// EmitLine appends a fragment to the body followed by a line break.
func (e *Emitter) EmitLine(fragment string) {
	e.body.WriteString(fragment)
	e.body.WriteByte('\n')
}

// String returns the full program text: preamble first, then body.
func (e *Emitter) String() string {
	return e.header.String() + e.body.String()
}
