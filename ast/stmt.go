package ast

import "github.com/akashmaji946/loxgo/lexer"

// Stmt is any statement node, executed for effect rather than evaluated for
// a value.
type Stmt interface {
	stmtNode()
}

// ExpressionStmt evaluates an expression and discards the result, e.g. a
// bare call used for its side effects.
type ExpressionStmt struct {
	Expression Expr
}

// PrintStmt evaluates an expression and writes its stringified value to the
// interpreter's output.
type PrintStmt struct {
	Expression Expr
}

// VarStmt declares a new binding in the current environment. Initializer is
// nil when the declaration has no "= expr" part, in which case the binding
// starts out nil.
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr
}

// Block introduces a new child environment and executes its statements
// within it.
type Block struct {
	Statements []Stmt
}

// If executes Then when Condition is truthy, otherwise Else if present.
// Else is nil when there is no "else" clause.
type If struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

// While repeatedly executes Body while Condition evaluates truthy. The
// parser also uses this node to desugar "for" loops (spec.md §4.3).
type While struct {
	Condition Expr
	Body      Stmt
}

// Function declares a named function: its parameter names and body, closed
// over the environment active at the point of declaration.
type Function struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

// Return unwinds out of the nearest enclosing function call with an
// optional value. Value is nil for a bare "return;".
type Return struct {
	Keyword lexer.Token
	Value   Expr
}

func (ExpressionStmt) stmtNode() {}
func (PrintStmt) stmtNode()      {}
func (VarStmt) stmtNode()        {}
func (Block) stmtNode()          {}
func (If) stmtNode()             {}
func (While) stmtNode()          {}
func (Function) stmtNode()       {}
func (Return) stmtNode()         {}
