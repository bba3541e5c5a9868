package interpreter

import (
	"fmt"

	"github.com/akashmaji946/loxgo/ast"
	"github.com/akashmaji946/loxgo/environment"
)

// Function is a user-declared Lox function: its syntax tree plus the
// environment that was active at the point of declaration. Closing over
// that environment (rather than the caller's) is what gives closures their
// usual behavior — a counter created inside one call keeps its own cell.
type Function struct {
	declaration ast.Function
	closure     *environment.Environment
}

// NewFunction wraps decl, closing over closure.
func NewFunction(decl ast.Function, closure *environment.Environment) *Function {
	return &Function{declaration: decl, closure: closure}
}

// Arity returns the declared parameter count.
func (f *Function) Arity() int {
	return len(f.declaration.Params)
}

// Call runs the function body in a fresh frame parented on the closure
// environment (not the caller's), with parameters bound positionally. A
// "return" inside the body unwinds to here via a returnSignal; falling off
// the end of the body returns nil.
func (f *Function) Call(interp *Interpreter, arguments []interface{}) (result interface{}, err error) {
	callEnv := environment.NewChild(f.closure)
	for i, param := range f.declaration.Params {
		callEnv.Define(param.Lexeme, arguments[i])
	}

	defer func() {
		if r := recover(); r != nil {
			if ret, ok := r.(returnSignal); ok {
				result, err = ret.value, nil
				return
			}
			panic(r)
		}
	}()

	err = interp.executeBlock(f.declaration.Body, callEnv)
	return nil, err
}

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme)
}
