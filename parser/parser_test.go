package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/loxgo/ast"
	"github.com/akashmaji946/loxgo/lexer"
)

type recordingReporter struct {
	messages []string
}

func (r *recordingReporter) TokenError(tok lexer.Token, message string) {
	r.messages = append(r.messages, message)
}

func parse(t *testing.T, src string) ([]ast.Stmt, *recordingReporter) {
	t.Helper()
	rep := &recordingReporter{}
	tokens := lexer.New(src, noopLexErrors{rep}).Scan()
	stmts := New(tokens, rep).Parse()
	return stmts, rep
}

// noopLexErrors adapts the recordingReporter (which only implements
// TokenError) to the lexer's Error-only reporter interface.
type noopLexErrors struct {
	rep *recordingReporter
}

func (n noopLexErrors) Error(line int, message string) {
	n.rep.messages = append(n.rep.messages, message)
}

func TestParseVarDeclarationAndPrint(t *testing.T) {
	stmts, rep := parse(t, `var a = 1; print a;`)
	assert.Empty(t, rep.messages)
	assert.Len(t, stmts, 2)

	varStmt, ok := stmts[0].(ast.VarStmt)
	assert.True(t, ok)
	assert.Equal(t, "a", varStmt.Name.Lexeme)

	printStmt, ok := stmts[1].(ast.PrintStmt)
	assert.True(t, ok)
	_, isVariable := printStmt.Expression.(ast.Variable)
	assert.True(t, isVariable)
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts, rep := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	assert.Empty(t, rep.messages)
	assert.Len(t, stmts, 1)

	outer, ok := stmts[0].(ast.Block)
	assert.True(t, ok, "for-loop must desugar to a Block")
	assert.Len(t, outer.Statements, 2)

	_, isVarDecl := outer.Statements[0].(ast.VarStmt)
	assert.True(t, isVarDecl)

	whileStmt, ok := outer.Statements[1].(ast.While)
	assert.True(t, ok, "for-loop body must desugar to a While")

	body, ok := whileStmt.Body.(ast.Block)
	assert.True(t, ok, "while body with an increment must be a Block")
	assert.Len(t, body.Statements, 2)
}

func TestParseAssignmentRightAssociative(t *testing.T) {
	stmts, rep := parse(t, `a = b = 3;`)
	assert.Empty(t, rep.messages)

	exprStmt := stmts[0].(ast.ExpressionStmt)
	outer, ok := exprStmt.Expression.(ast.Assign)
	assert.True(t, ok)
	assert.Equal(t, "a", outer.Name.Lexeme)

	inner, ok := outer.Value.(ast.Assign)
	assert.True(t, ok)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParseInvalidAssignmentTargetReportsButDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		_, rep := parse(t, `1 = 2;`)
		assert.Contains(t, rep.messages, "Invalid assignment target.")
	})
}

func TestParseMissingSemicolonRecoversAtNextStatement(t *testing.T) {
	stmts, rep := parse(t, `print 1 print 2;`)
	assert.NotEmpty(t, rep.messages)
	// synchronize() should skip past the broken statement and still parse
	// the next one.
	assert.Len(t, stmts, 1)
	_, ok := stmts[0].(ast.PrintStmt)
	assert.True(t, ok)
}

func TestParseFunctionDeclaration(t *testing.T) {
	stmts, rep := parse(t, `fun add(a, b) { return a + b; }`)
	assert.Empty(t, rep.messages)

	fn, ok := stmts[0].(ast.Function)
	assert.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	assert.Len(t, fn.Params, 2)
	assert.Len(t, fn.Body, 1)

	_, isReturn := fn.Body[0].(ast.Return)
	assert.True(t, isReturn)
}

func TestParseLogicalOperators(t *testing.T) {
	stmts, rep := parse(t, `print a or b and c;`)
	assert.Empty(t, rep.messages)

	printStmt := stmts[0].(ast.PrintStmt)
	logical, ok := printStmt.Expression.(ast.Logical)
	assert.True(t, ok)
	assert.Equal(t, lexer.OR, logical.Operator.Type)
}
