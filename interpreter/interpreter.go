// Package interpreter walks the AST and evaluates it directly against a
// chain of lexical environments — no bytecode, no compilation pass.
package interpreter

import (
	"io"
	"time"

	"github.com/akashmaji946/loxgo/ast"
	"github.com/akashmaji946/loxgo/environment"
	"github.com/akashmaji946/loxgo/lexer"
)

// reporter is the subset of errors.Reporter the interpreter needs.
type reporter interface {
	RuntimeError(line int, message string)
}

// Interpreter holds the state that's threaded through one evaluation
// session: the fixed outermost (global) environment, the environment
// currently in scope, where printed output goes, and where runtime errors
// are reported.
type Interpreter struct {
	Globals     *environment.Environment
	environment *environment.Environment
	out         io.Writer
	reporter    reporter
}

// New creates an Interpreter that writes "print" output to out and reports
// runtime errors through rep. The global environment is pre-populated with
// the built-in clock() function.
func New(out io.Writer, rep reporter) *Interpreter {
	globals := environment.New()
	interp := &Interpreter{Globals: globals, environment: globals, out: out, reporter: rep}
	globals.Define("clock", clockBuiltin{})
	return interp
}

// Interpret executes a program's statements in order against the global
// environment. Execution stops at the first runtime error, which is also
// reported through the interpreter's reporter (matching the top-level
// behavior spec.md §7 describes for the "runtime error" tier).
func (in *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			if rtErr, ok := err.(*RuntimeError); ok {
				in.reporter.RuntimeError(rtErr.Token.Line, rtErr.Message)
			}
			return err
		}
	}
	return nil
}

// Environment returns the environment currently in scope, used by the REPL
// to inspect bindings between lines.
func (in *Interpreter) Environment() *environment.Environment {
	return in.environment
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case ast.ExpressionStmt:
		_, err := in.evaluate(s.Expression)
		return err

	case ast.PrintStmt:
		value, err := in.evaluate(s.Expression)
		if err != nil {
			return err
		}
		io.WriteString(in.out, stringify(value)+"\n")
		return nil

	case ast.VarStmt:
		var value interface{}
		if s.Initializer != nil {
			v, err := in.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		in.environment.Define(s.Name.Lexeme, value)
		return nil

	case ast.Block:
		return in.executeBlock(s.Statements, environment.NewChild(in.environment))

	case ast.If:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil

	case ast.While:
		for {
			cond, err := in.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}

	case ast.Function:
		fn := NewFunction(s, in.environment)
		in.environment.Define(s.Name.Lexeme, fn)
		return nil

	case ast.Return:
		var value interface{}
		if s.Value != nil {
			v, err := in.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		panic(returnSignal{value: value})

	default:
		return nil
	}
}

// executeBlock runs statements against env, restoring the previously active
// environment afterward regardless of how execution ends (normal
// completion, error, or an unwinding return).
func (in *Interpreter) executeBlock(statements []ast.Stmt, env *environment.Environment) error {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) evaluate(expr ast.Expr) (interface{}, error) {
	switch e := expr.(type) {
	case ast.Literal:
		return e.Value, nil

	case ast.Grouping:
		return in.evaluate(e.Expression)

	case ast.Variable:
		if value, ok := in.environment.Get(e.Name.Lexeme); ok {
			return value, nil
		}
		return nil, newRuntimeError(e.Name, "Undefined variable '%s'.", e.Name.Lexeme)

	case ast.Assign:
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if !in.environment.Assign(e.Name.Lexeme, value) {
			return nil, newRuntimeError(e.Name, "Undefined variable '%s'.", e.Name.Lexeme)
		}
		return value, nil

	case ast.Unary:
		return in.evalUnary(e)

	case ast.Binary:
		return in.evalBinary(e)

	case ast.Logical:
		return in.evalLogical(e)

	case ast.Call:
		return in.evalCall(e)

	default:
		return nil, nil
	}
}

func (in *Interpreter) evalUnary(e ast.Unary) (interface{}, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case lexer.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	case lexer.BANG:
		return !isTruthy(right), nil
	}
	return nil, nil
}

func (in *Interpreter) evalLogical(e ast.Logical) (interface{}, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == lexer.OR {
		if isTruthy(left) {
			return left, nil
		}
	} else {
		if !isTruthy(left) {
			return left, nil
		}
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) evalBinary(e ast.Binary) (interface{}, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.MINUS:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l - r, nil
	case lexer.SLASH:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l / r, nil // division by zero yields +Inf/-Inf/NaN, not an error
	case lexer.STAR:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l * r, nil
	case lexer.PLUS:
		if l, ok := left.(float64); ok {
			if r, ok := right.(float64); ok {
				return l + r, nil
			}
		}
		if l, ok := left.(string); ok {
			if r, ok := right.(string); ok {
				return l + r, nil
			}
		}
		return nil, newRuntimeError(e.Operator, "Operands must be two numbers or two strings.")
	case lexer.GREATER:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l > r, nil
	case lexer.GREATER_EQUAL:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l >= r, nil
	case lexer.LESS:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l < r, nil
	case lexer.LESS_EQUAL:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return l <= r, nil
	case lexer.BANG_EQUAL:
		return !isEqual(left, right), nil
	case lexer.EQUAL_EQUAL:
		return isEqual(left, right), nil
	}
	return nil, nil
}

func (in *Interpreter) evalCall(e ast.Call) (result interface{}, err error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]interface{}, 0, len(e.Arguments))
	for _, argExpr := range e.Arguments {
		arg, err := in.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, arg)
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(arguments) != callable.Arity() {
		return nil, newRuntimeError(e.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(arguments))
	}
	return callable.Call(in, arguments)
}

func numberOperands(left, right interface{}) (float64, float64, bool) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	return l, r, lok && rok
}

// clockBuiltin implements the language's one standard-library function: the
// number of seconds since the Unix epoch, as a float64 like every other Lox
// number.
type clockBuiltin struct{}

func (clockBuiltin) Arity() int { return 0 }

func (clockBuiltin) Call(*Interpreter, []interface{}) (interface{}, error) {
	return float64(time.Now().UnixNano()) / 1e9, nil
}

func (clockBuiltin) String() string { return "<native fn>" }
