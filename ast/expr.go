// Package ast defines the tree produced by the parser and walked by the
// interpreter. Each node is a plain data struct; dispatch happens via a type
// switch in the consumer rather than an Accept/Visit pair, so adding an
// operation never requires touching every node type.
package ast

import "github.com/akashmaji946/loxgo/lexer"

// Expr is any expression node. It is a marker interface — callers type-switch
// on the concrete type rather than call a method on it.
type Expr interface {
	exprNode()
}

// Literal is a fixed value baked in at parse time: a number, string, bool,
// or nil.
type Literal struct {
	Value interface{}
}

// Unary is a prefix operator applied to a single operand, e.g. "-x" or "!x".
type Unary struct {
	Operator lexer.Token
	Right    Expr
}

// Binary is an infix arithmetic, comparison, or equality expression.
type Binary struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// Logical is "and"/"or". Kept distinct from Binary because both operators
// short-circuit: the right operand must not be evaluated unconditionally.
type Logical struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// Grouping is a parenthesized expression, kept as its own node (rather than
// collapsed away) so error messages can still point at the original source.
type Grouping struct {
	Expression Expr
}

// Variable is a reference to a named binding.
type Variable struct {
	Name lexer.Token
}

// Assign stores a new value into an existing binding and evaluates to that
// value.
type Assign struct {
	Name  lexer.Token
	Value Expr
}

// Call invokes a callable with zero or more argument expressions. Paren is
// the closing ')' token, kept so runtime errors can report a line even when
// Callee spans multiple lines.
type Call struct {
	Callee    Expr
	Paren     lexer.Token
	Arguments []Expr
}

func (Literal) exprNode()  {}
func (Unary) exprNode()    {}
func (Binary) exprNode()   {}
func (Logical) exprNode()  {}
func (Grouping) exprNode() {}
func (Variable) exprNode() {}
func (Assign) exprNode()   {}
func (Call) exprNode()     {}
