package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vipaswi/Compiler/diag"
	"github.com/Vipaswi/Compiler/emitter"
	"github.com/Vipaswi/Compiler/scanner"
)

// translate runs one full translation and returns the generated C.
func translate(t *testing.T, src string) (string, error) {
	t.Helper()
	em := emitter.New()
	p, err := New(scanner.New(src), em)
	if err != nil {
		return "", err
	}
	if err := p.Program(); err != nil {
		return "", err
	}
	return em.String(), nil
}

func mustTranslate(t *testing.T, src string) string {
	t.Helper()
	out, err := translate(t, src)
	require.NoError(t, err)
	return out
}

func expectError(t *testing.T, src string, kind diag.Kind) *diag.Error {
	t.Helper()
	_, err := translate(t, src)
	require.Error(t, err)
	var de *diag.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, kind, de.Kind, "error kind for %q: %v", src, err)
	return de
}

func TestProgramShape(t *testing.T) {
	out := mustTranslate(t, "PRINT \"HI\"\n")
	assert.True(t, strings.HasPrefix(out, "#include <stdio.h>\nint main(void){\n"), "preamble: %q", out)
	assert.True(t, strings.HasSuffix(out, "return 0;\n}\n"), "epilogue: %q", out)
}

func TestPrintString(t *testing.T) {
	out := mustTranslate(t, "PRINT \"HI\"\n")
	// Literal text write, no numeric coercion, nothing added beyond the
	// delimiters and the line terminator.
	assert.Contains(t, out, "printf(\"HI\\n\");\n")
	assert.NotContains(t, out, "%.2f")
}

func TestPrintExpression(t *testing.T) {
	out := mustTranslate(t, "PRINT 5\n")
	assert.Contains(t, out, "printf(\"%.2f\\n\", (float)(5));\n")
}

func TestLetPrecedenceVerbatim(t *testing.T) {
	out := mustTranslate(t, "LET x = 1 + 2 * 3\n")
	// Exactly one preamble declaration and no added parentheses: C's
	// native precedence carries the grammar's.
	assert.Equal(t, 1, strings.Count(out, "float x;"))
	assert.Contains(t, out, "x = 1 + 2 * 3;\n")
}

func TestDeclarationsInFirstUseOrder(t *testing.T) {
	out := mustTranslate(t, "LET b = 1\nINPUT a\nLET b = 2\n")
	bi := strings.Index(out, "float b;")
	ai := strings.Index(out, "float a;")
	require.NotEqual(t, -1, bi)
	require.NotEqual(t, -1, ai)
	assert.Less(t, bi, ai, "declarations must follow first use order")
	assert.Equal(t, 1, strings.Count(out, "float b;"))
}

func TestIfBlock(t *testing.T) {
	out := mustTranslate(t, "LET x = 1\nIF x > 0 THEN\nPRINT \"pos\"\nENDIF\n")
	assert.Contains(t, out, "if(x > 0){\n")
	assert.Contains(t, out, "printf(\"pos\\n\");\n}\n")
}

func TestWhileBlock(t *testing.T) {
	src := "LET i = 3\nWHILE i > 0 REPEAT\nLET i = i - 1\nENDWHILE\n"
	out := mustTranslate(t, src)
	assert.Contains(t, out, "while(i > 0){\n")
	assert.Contains(t, out, "i = i - 1;\n")
}

func TestNestedBlocks(t *testing.T) {
	src := "LET i = 0\nWHILE i < 2 REPEAT\nIF i == 1 THEN\nPRINT i\nENDIF\nLET i = i + 1\nENDWHILE\n"
	out := mustTranslate(t, src)
	assert.Contains(t, out, "while(i < 2){\n")
	assert.Contains(t, out, "if(i == 1){\n")
}

func TestComparisonChain(t *testing.T) {
	out := mustTranslate(t, "IF 1 < 2 == 1 THEN\nENDIF\n")
	assert.Contains(t, out, "if(1 < 2 == 1){\n")
}

func TestComparisonRequiresOperator(t *testing.T) {
	de := expectError(t, "IF 1 THEN\nENDIF\n", diag.Syntax)
	assert.Contains(t, de.Msg, "comparison operator")
}

func TestUnarySign(t *testing.T) {
	out := mustTranslate(t, "LET x = -5\nLET y = +x\n")
	assert.Contains(t, out, "x = -5;\n")
	assert.Contains(t, out, "y = +x;\n")
}

func TestLabelAndGoto(t *testing.T) {
	out := mustTranslate(t, "LABEL loop\nPRINT \"hi\"\nGOTO loop\n")
	assert.Contains(t, out, "loop:\n")
	assert.Contains(t, out, "goto loop;\n")
}

func TestForwardGoto(t *testing.T) {
	// Jump targets may be declared after the jump.
	_, err := translate(t, "GOTO done\nLABEL done\n")
	assert.NoError(t, err)
}

func TestDanglingGoto(t *testing.T) {
	de := expectError(t, "GOTO nowhere\n", diag.Semantic)
	assert.Contains(t, de.Msg, "nowhere")
}

func TestDanglingGotoReportedAfterFullProgram(t *testing.T) {
	// The label check is deferred: a program whose only flaw is a
	// dangling goto still parses to the end, and a later syntax error
	// wins over the pending label violation.
	de := expectError(t, "GOTO nowhere\nPRINT %\n", diag.Lexical)
	assert.NotContains(t, de.Msg, "nowhere")
}

func TestDanglingGotoFirstInSourceOrder(t *testing.T) {
	de := expectError(t, "GOTO second\nGOTO first\nLABEL here\n", diag.Semantic)
	assert.Contains(t, de.Msg, "second")
}

func TestDuplicateLabel(t *testing.T) {
	de := expectError(t, "LABEL x\nLABEL x\n", diag.Semantic)
	assert.Contains(t, de.Msg, "already exists")
	assert.Equal(t, 2, de.Pos.Line, "duplicate must fail at the second LABEL, not at program end")
}

func TestLabelScopeIsProgramGlobal(t *testing.T) {
	// A label declared inside a loop body satisfies a top-level goto.
	src := "LET i = 0\nGOTO inner\nWHILE i < 1 REPEAT\nLABEL inner\nLET i = i + 1\nENDWHILE\n"
	_, err := translate(t, src)
	assert.NoError(t, err)
}

func TestUndeclaredVariable(t *testing.T) {
	de := expectError(t, "PRINT y\n", diag.Semantic)
	assert.Contains(t, de.Msg, "referenced before assignment")
	assert.Contains(t, de.Msg, "y")
}

func TestUndeclaredVariableInLetExpression(t *testing.T) {
	expectError(t, "LET x = y + 1\n", diag.Semantic)
}

func TestDefineBeforeUse(t *testing.T) {
	_, err := translate(t, "LET y = 2\nLET x = y + 1\nPRINT x\n")
	assert.NoError(t, err)
}

func TestInputEmission(t *testing.T) {
	out := mustTranslate(t, "INPUT x\n")
	assert.Contains(t, out, "float x;\n")
	assert.Contains(t, out, "if(0==scanf(\"%f\", &x)) {\n")
	assert.Contains(t, out, "x = 0;\n")
	assert.Contains(t, out, "scanf(\"%*s\");\n")
}

func TestInputDeclaresVariable(t *testing.T) {
	_, err := translate(t, "INPUT x\nPRINT x\n")
	assert.NoError(t, err)
}

func TestStatementRequiresNewline(t *testing.T) {
	de := expectError(t, "PRINT \"a\" PRINT \"b\"\n", diag.Syntax)
	assert.Contains(t, de.Msg, "expected NEWLINE")
}

func TestLeadingAndExtraNewlines(t *testing.T) {
	_, err := translate(t, "\n\n\nPRINT \"HI\"\n\n\n")
	assert.NoError(t, err)
}

func TestInvalidStatement(t *testing.T) {
	de := expectError(t, "FOO\n", diag.Syntax)
	assert.Contains(t, de.Msg, "invalid statement")
}

func TestMissingThen(t *testing.T) {
	de := expectError(t, "IF 1 > 0\nENDIF\n", diag.Syntax)
	assert.Contains(t, de.Msg, "expected THEN")
}

func TestMissingEndwhile(t *testing.T) {
	expectError(t, "WHILE 1 > 0 REPEAT\nPRINT \"x\"\n", diag.Syntax)
}

func TestLexicalErrorSurfacesThroughParser(t *testing.T) {
	expectError(t, "LET x = 12.\n", diag.Lexical)
}

func TestEmptyProgram(t *testing.T) {
	out := mustTranslate(t, "")
	assert.Equal(t, "#include <stdio.h>\nint main(void){\nreturn 0;\n}\n", out)
}
