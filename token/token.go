// Package token defines the lexical tokens of the tiny BASIC dialect.
package token

// Pos is a 1-based line/column position in the source text.
type Pos struct {
	Line int
	Col  int
}

// Kind classifies a token. The set is closed: meta tokens, one kind per
// reserved word, and one kind per operator spelling.
type Kind int

const (
	EOF Kind = iota
	NEWLINE
	NUMBER
	IDENT
	STRING

	// Keywords. The constant name is the exact source spelling.
	LABEL
	GOTO
	PRINT
	INPUT
	LET
	IF
	THEN
	ENDIF
	WHILE
	REPEAT
	ENDWHILE

	// Operators.
	EQ
	PLUS
	MINUS
	ASTERISK
	SLASH
	EQEQ
	NOTEQ
	LT
	LTEQ
	GT
	GTEQ
)

var names = [...]string{
	EOF:     "EOF",
	NEWLINE: "NEWLINE",
	NUMBER:  "NUMBER",
	IDENT:   "IDENT",
	STRING:  "STRING",

	LABEL:    "LABEL",
	GOTO:     "GOTO",
	PRINT:    "PRINT",
	INPUT:    "INPUT",
	LET:      "LET",
	IF:       "IF",
	THEN:     "THEN",
	ENDIF:    "ENDIF",
	WHILE:    "WHILE",
	REPEAT:   "REPEAT",
	ENDWHILE: "ENDWHILE",

	EQ:       "=",
	PLUS:     "+",
	MINUS:    "-",
	ASTERISK: "*",
	SLASH:    "/",
	EQEQ:     "==",
	NOTEQ:    "!=",
	LT:       "<",
	LTEQ:     "<=",
	GT:       ">",
	GTEQ:     ">=",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(names) {
		return "UNKNOWN"
	}
	return names[k]
}

// keywords maps the exact source spelling of each reserved word to its kind.
// Spellings are matched case-sensitively and equal the kind's own name.
var keywords = map[string]Kind{
	"LABEL":    LABEL,
	"GOTO":     GOTO,
	"PRINT":    PRINT,
	"INPUT":    INPUT,
	"LET":      LET,
	"IF":       IF,
	"THEN":     THEN,
	"ENDIF":    ENDIF,
	"WHILE":    WHILE,
	"REPEAT":   REPEAT,
	"ENDWHILE": ENDWHILE,
}

// LookupIdent returns the keyword kind for reserved spellings, IDENT for
// everything else.
func LookupIdent(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return IDENT
}

// Token is a spelling paired with its classification. Text holds the exact
// source spelling; for strings the surrounding quotes are stripped.
type Token struct {
	Text string
	Kind Kind
	Pos  Pos
}
