// Package parser recognizes the tiny BASIC grammar and generates C source
// in the same pass. Each grammar rule is one routine; recognition emits
// translated fragments to the Emitter as a side effect, with no
// intermediate representation. One token of lookahead, no backtracking.
package parser

import (
	"github.com/Vipaswi/Compiler/diag"
	"github.com/Vipaswi/Compiler/scanner"
	"github.com/Vipaswi/Compiler/token"
)

// Emitter receives the translated C fragments. Header lines land in the
// declaration preamble; Emit and EmitLine append to the program body in
// emission order.
type Emitter interface {
	Header(line string)
	Emit(fragment string)
	EmitLine(fragment string)
}

// Parser holds the state of one translation run: a two-token sliding
// window over the scanner's output plus the accumulate-only name sets.
// A Parser is not reusable across runs.
type Parser struct {
	sc *scanner.Scanner
	em Emitter

	cur  token.Token
	peek token.Token

	// symbols holds every variable declared so far by LET or INPUT.
	symbols map[string]bool
	// labelsDeclared holds every LABEL name seen; duplicates are fatal
	// at the point of insertion.
	labelsDeclared map[string]bool
	// labelsGotoed maps each GOTO target to the position of its first
	// reference; gotoOrder keeps first-reference source order so the
	// deferred consistency check reports deterministically.
	labelsGotoed map[string]token.Pos
	gotoOrder    []string
}

// New creates a Parser over sc emitting into em and primes the two-token
// window. Lexical errors in the first two tokens surface here.
func New(sc *scanner.Scanner, em Emitter) (*Parser, error) {
	p := &Parser{
		sc:             sc,
		em:             em,
		symbols:        make(map[string]bool),
		labelsDeclared: make(map[string]bool),
		labelsGotoed:   make(map[string]token.Pos),
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	return p, nil
}

// next slides the token window one token forward.
func (p *Parser) next() error {
	p.cur = p.peek
	t, err := p.sc.Next()
	if err != nil {
		return err
	}
	p.peek = t
	return nil
}

func (p *Parser) check(k token.Kind) bool {
	return p.cur.Kind == k
}

// match consumes the current token if it has the wanted kind, else fails.
func (p *Parser) match(k token.Kind) error {
	if !p.check(k) {
		return diag.Errorf(diag.Syntax, p.cur.Pos, "expected %s, got %s", k, p.cur.Kind)
	}
	return p.next()
}

// Program translates the whole token stream:
//
//	program := {statement}
//
// It emits the entry-point preamble, the translated statements, and the
// epilogue, then verifies every GOTO target was declared somewhere.
func (p *Parser) Program() error {
	p.em.Header("#include <stdio.h>")
	p.em.Header("int main(void){")

	// Newlines before the first statement are allowed.
	for p.check(token.NEWLINE) {
		if err := p.next(); err != nil {
			return err
		}
	}

	for !p.check(token.EOF) {
		if err := p.statement(); err != nil {
			return err
		}
	}

	p.em.EmitLine("return 0;")
	p.em.EmitLine("}")

	// Deferred check: forward GOTO references are legal, so label
	// consistency can only be decided once the whole program is consumed.
	for _, label := range p.gotoOrder {
		if !p.labelsDeclared[label] {
			return diag.Errorf(diag.Semantic, p.labelsGotoed[label], "GOTO to undeclared label %s", label)
		}
	}
	return nil
}

// statement recognizes one statement and emits its translation. Every
// statement form ends in one or more newlines.
func (p *Parser) statement() error {
	switch {
	case p.check(token.PRINT):
		if err := p.next(); err != nil {
			return err
		}
		if p.check(token.STRING) {
			// The scanner already rejected anything that could corrupt
			// the format string, so the literal is spliced verbatim.
			p.em.EmitLine(`printf("` + p.cur.Text + `\n");`)
			if err := p.next(); err != nil {
				return err
			}
		} else {
			p.em.Emit(`printf("%.2f\n", (float)(`)
			if err := p.expression(); err != nil {
				return err
			}
			p.em.EmitLine("));")
		}

	case p.check(token.IF):
		if err := p.next(); err != nil {
			return err
		}
		p.em.Emit("if(")
		if err := p.comparison(); err != nil {
			return err
		}
		if err := p.match(token.THEN); err != nil {
			return err
		}
		if err := p.nl(); err != nil {
			return err
		}
		p.em.EmitLine("){")
		for !p.check(token.ENDIF) {
			if err := p.statement(); err != nil {
				return err
			}
		}
		if err := p.match(token.ENDIF); err != nil {
			return err
		}
		p.em.EmitLine("}")

	case p.check(token.WHILE):
		if err := p.next(); err != nil {
			return err
		}
		p.em.Emit("while(")
		if err := p.comparison(); err != nil {
			return err
		}
		if err := p.match(token.REPEAT); err != nil {
			return err
		}
		if err := p.nl(); err != nil {
			return err
		}
		p.em.EmitLine("){")
		for !p.check(token.ENDWHILE) {
			if err := p.statement(); err != nil {
				return err
			}
		}
		if err := p.match(token.ENDWHILE); err != nil {
			return err
		}
		p.em.EmitLine("}")

	case p.check(token.LABEL):
		if err := p.next(); err != nil {
			return err
		}
		if p.labelsDeclared[p.cur.Text] {
			return diag.Errorf(diag.Semantic, p.cur.Pos, "label %s already exists", p.cur.Text)
		}
		p.labelsDeclared[p.cur.Text] = true
		p.em.EmitLine(p.cur.Text + ":")
		if err := p.match(token.IDENT); err != nil {
			return err
		}

	case p.check(token.GOTO):
		if err := p.next(); err != nil {
			return err
		}
		// No existence check here: forward references are resolved by
		// the deferred check at the end of Program.
		if _, seen := p.labelsGotoed[p.cur.Text]; !seen {
			p.labelsGotoed[p.cur.Text] = p.cur.Pos
			p.gotoOrder = append(p.gotoOrder, p.cur.Text)
		}
		p.em.EmitLine("goto " + p.cur.Text + ";")
		if err := p.match(token.IDENT); err != nil {
			return err
		}

	case p.check(token.LET):
		if err := p.next(); err != nil {
			return err
		}
		p.declare(p.cur.Text)
		p.em.Emit(p.cur.Text + " = ")
		if err := p.match(token.IDENT); err != nil {
			return err
		}
		if err := p.match(token.EQ); err != nil {
			return err
		}
		if err := p.expression(); err != nil {
			return err
		}
		p.em.EmitLine(";")

	case p.check(token.INPUT):
		if err := p.next(); err != nil {
			return err
		}
		p.declare(p.cur.Text)
		// Guarded read: on a failed numeric read, reset the variable to
		// zero and discard the rest of the input line.
		p.em.EmitLine(`if(0==scanf("%f", &` + p.cur.Text + `)) {`)
		p.em.EmitLine(p.cur.Text + " = 0;")
		p.em.EmitLine(`scanf("%*s");`)
		p.em.EmitLine("}")
		if err := p.match(token.IDENT); err != nil {
			return err
		}

	default:
		return diag.Errorf(diag.Syntax, p.cur.Pos, "invalid statement at %s (%s)", p.cur.Text, p.cur.Kind)
	}

	return p.nl()
}

// declare records a variable on first use and emits its floating-point
// declaration into the preamble. Later uses are no-ops.
func (p *Parser) declare(name string) {
	if p.symbols[name] {
		return
	}
	p.symbols[name] = true
	p.em.Header("float " + name + ";")
}

// nl requires at least one newline and swallows any extras.
func (p *Parser) nl() error {
	if err := p.match(token.NEWLINE); err != nil {
		return err
	}
	for p.check(token.NEWLINE) {
		if err := p.next(); err != nil {
			return err
		}
	}
	return nil
}

// comparison := expression compareOp expression {compareOp expression}
//
// At least one comparison operator is required.
func (p *Parser) comparison() error {
	if err := p.expression(); err != nil {
		return err
	}
	if !p.isComparisonOp() {
		return diag.Errorf(diag.Syntax, p.cur.Pos, "expected comparison operator at %s", p.cur.Text)
	}
	for p.isComparisonOp() {
		p.em.Emit(" " + p.cur.Text + " ")
		if err := p.next(); err != nil {
			return err
		}
		if err := p.expression(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) isComparisonOp() bool {
	switch p.cur.Kind {
	case token.GT, token.GTEQ, token.LT, token.LTEQ, token.EQEQ, token.NOTEQ:
		return true
	}
	return false
}

// expression := term {("+" | "-") term}
//
// Operands and operators are emitted left to right with no added
// parentheses: C's native precedence matches this grammar's.
func (p *Parser) expression() error {
	if err := p.term(); err != nil {
		return err
	}
	for p.check(token.PLUS) || p.check(token.MINUS) {
		p.em.Emit(" " + p.cur.Text + " ")
		if err := p.next(); err != nil {
			return err
		}
		if err := p.term(); err != nil {
			return err
		}
	}
	return nil
}

// term := unary {("*" | "/") unary}
func (p *Parser) term() error {
	if err := p.unary(); err != nil {
		return err
	}
	for p.check(token.ASTERISK) || p.check(token.SLASH) {
		p.em.Emit(" " + p.cur.Text + " ")
		if err := p.next(); err != nil {
			return err
		}
		if err := p.unary(); err != nil {
			return err
		}
	}
	return nil
}

// unary := ["+" | "-"] primary
func (p *Parser) unary() error {
	if p.check(token.PLUS) || p.check(token.MINUS) {
		p.em.Emit(p.cur.Text)
		if err := p.next(); err != nil {
			return err
		}
	}
	return p.primary()
}

// primary := NUMBER | IDENT
//
// An identifier must already be declared: define-before-use is checked
// eagerly, at the reference.
func (p *Parser) primary() error {
	switch {
	case p.check(token.NUMBER):
		p.em.Emit(p.cur.Text)
		return p.next()
	case p.check(token.IDENT):
		if !p.symbols[p.cur.Text] {
			return diag.Errorf(diag.Semantic, p.cur.Pos, "variable %s referenced before assignment", p.cur.Text)
		}
		p.em.Emit(p.cur.Text)
		return p.next()
	}
	return diag.Errorf(diag.Syntax, p.cur.Pos, "unexpected token at %s", p.cur.Text)
}
