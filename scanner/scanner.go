// Package scanner turns tiny BASIC source text into a left-to-right token
// stream. One token is produced per call, the sequence always ends in EOF,
// and the cursor never rewinds; a single character of lookahead is the only
// peeking available.
package scanner

import (
	"github.com/Vipaswi/Compiler/diag"
	"github.com/Vipaswi/Compiler/token"
)

// Scanner iterates byte-by-byte over an in-memory source buffer. A newline
// is appended to the source up front so the final statement always
// terminates cleanly.
type Scanner struct {
	src       string
	pos       int  // index of cur in src
	cur       byte // current character, 0 once past the end
	line      int  // 1-based line of cur
	lineStart int  // offset of the first byte of the current line
}

// New creates a Scanner over src.
func New(src string) *Scanner {
	s := &Scanner{src: src + "\n", pos: -1, line: 1}
	s.advance()
	return s
}

func (s *Scanner) advance() {
	if s.cur == '\n' {
		s.line++
		s.lineStart = s.pos + 1
	}
	s.pos++
	if s.pos >= len(s.src) {
		s.cur = 0
	} else {
		s.cur = s.src[s.pos]
	}
}

// peek returns the character after cur without advancing, 0 at end.
func (s *Scanner) peek() byte {
	if s.pos+1 >= len(s.src) {
		return 0
	}
	return s.src[s.pos+1]
}

// at returns the position of the current character.
func (s *Scanner) at() token.Pos {
	return token.Pos{Line: s.line, Col: s.pos - s.lineStart + 1}
}

// skipWhitespace skips spaces, tabs and carriage returns. Newlines are
// significant statement terminators and are never skipped.
func (s *Scanner) skipWhitespace() {
	for s.cur == ' ' || s.cur == '\t' || s.cur == '\r' {
		s.advance()
	}
}

// skipComment discards a # comment up to, but not including, the newline.
func (s *Scanner) skipComment() {
	if s.cur == '#' {
		for s.cur != '\n' {
			s.advance()
		}
	}
}

// Next returns the next token in source order. After the end of input it
// keeps returning EOF tokens. Any malformed input aborts the run with a
// lexical error; there is no resynchronization.
func (s *Scanner) Next() (token.Token, error) {
	s.skipWhitespace()
	s.skipComment()

	pos := s.at()
	var tok token.Token

	switch {
	case s.cur == '+':
		tok = token.Token{Text: "+", Kind: token.PLUS, Pos: pos}
	case s.cur == '-':
		tok = token.Token{Text: "-", Kind: token.MINUS, Pos: pos}
	case s.cur == '*':
		tok = token.Token{Text: "*", Kind: token.ASTERISK, Pos: pos}
	case s.cur == '/':
		tok = token.Token{Text: "/", Kind: token.SLASH, Pos: pos}
	case s.cur == '\n':
		tok = token.Token{Text: "\n", Kind: token.NEWLINE, Pos: pos}
	case s.cur == '=':
		if s.peek() == '=' {
			s.advance()
			tok = token.Token{Text: "==", Kind: token.EQEQ, Pos: pos}
		} else {
			tok = token.Token{Text: "=", Kind: token.EQ, Pos: pos}
		}
	case s.cur == '>':
		if s.peek() == '=' {
			s.advance()
			tok = token.Token{Text: ">=", Kind: token.GTEQ, Pos: pos}
		} else {
			tok = token.Token{Text: ">", Kind: token.GT, Pos: pos}
		}
	case s.cur == '<':
		if s.peek() == '=' {
			s.advance()
			tok = token.Token{Text: "<=", Kind: token.LTEQ, Pos: pos}
		} else {
			tok = token.Token{Text: "<", Kind: token.LT, Pos: pos}
		}
	case s.cur == '!':
		if s.peek() != '=' {
			return token.Token{}, diag.Errorf(diag.Lexical, pos, "expected !=, got !%s", printable(s.peek()))
		}
		s.advance()
		tok = token.Token{Text: "!=", Kind: token.NOTEQ, Pos: pos}
	case s.cur == '"':
		s.advance()
		start := s.pos
		for s.cur != '"' {
			// The literal is spliced verbatim into a printf call, so any
			// character that could corrupt the format string is rejected.
			if s.cur == '\r' || s.cur == '\n' || s.cur == '\t' || s.cur == '%' || s.cur == '\\' {
				return token.Token{}, diag.Errorf(diag.Lexical, s.at(), "illegal character %s in string", printable(s.cur))
			}
			s.advance()
		}
		tok = token.Token{Text: s.src[start:s.pos], Kind: token.STRING, Pos: pos}
	case isDigit(s.cur):
		start := s.pos
		for isDigit(s.peek()) {
			s.advance()
		}
		if s.peek() == '.' {
			s.advance()
			// At least one digit is required after the decimal point.
			if !isDigit(s.peek()) {
				return token.Token{}, diag.Errorf(diag.Lexical, s.at(), "illegal character in number")
			}
			for isDigit(s.peek()) {
				s.advance()
			}
		}
		tok = token.Token{Text: s.src[start : s.pos+1], Kind: token.NUMBER, Pos: pos}
	case isLetter(s.cur):
		start := s.pos
		for isLetter(s.peek()) || isDigit(s.peek()) {
			s.advance()
		}
		text := s.src[start : s.pos+1]
		tok = token.Token{Text: text, Kind: token.LookupIdent(text), Pos: pos}
	case s.cur == 0:
		tok = token.Token{Kind: token.EOF, Pos: pos}
	default:
		return token.Token{}, diag.Errorf(diag.Lexical, pos, "unknown token %q", string(s.cur))
	}

	s.advance()
	return tok, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// printable renders a byte for an error message, showing newlines and the
// end-of-input sentinel readably.
func printable(c byte) string {
	switch c {
	case 0:
		return "end of input"
	case '\n':
		return "newline"
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	}
	return string(c)
}
