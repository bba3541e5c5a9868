// Package environment implements the nested name-to-value scopes the
// interpreter evaluates variable references and assignments against.
package environment

import "fmt"

// Environment is one lexical scope. Values are looked up in this frame
// first, then walked up through Enclosing, mirroring how a block or
// function body sees its own locals before the scope it's nested in.
// Sharing *Environment by pointer (rather than copying) is what lets a
// closure and its defining scope stay in sync after the closure is created.
type Environment struct {
	enclosing *Environment
	values    map[string]interface{}
}

// New creates a top-level environment with no enclosing scope.
func New() *Environment {
	return &Environment{}
}

// NewChild creates an environment nested inside enclosing, e.g. for a block
// or a function call frame.
func NewChild(enclosing *Environment) *Environment {
	return &Environment{enclosing: enclosing}
}

// Define binds name to value in this frame. Re-declaring an existing name in
// the same frame silently overwrites it, matching the language's toleration
// of "var a = 1; var a = 2;" at global/block scope.
func (e *Environment) Define(name string, value interface{}) {
	if e.values == nil {
		e.values = make(map[string]interface{})
	}
	e.values[name] = value
}

// Get returns the value bound to name, walking outward through enclosing
// scopes. ok is false when no frame in the chain defines name.
func (e *Environment) Get(name string) (interface{}, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, false
}

// Assign updates an existing binding in the nearest frame that defines it.
// Unlike Define, it never creates a new binding: assigning to an undeclared
// name fails with ok == false so the caller can raise a runtime error.
func (e *Environment) Assign(name string, value interface{}) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return true
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return false
}

// Bindings returns the name/value pairs defined directly in this frame
// (not its enclosing scopes), formatted for display — used by the REPL's
// environment-inspection command.
func (e *Environment) Bindings(stringify func(interface{}) string) map[string]string {
	out := make(map[string]string, len(e.values))
	for k, v := range e.values {
		out[k] = stringify(v)
	}
	return out
}

func (e *Environment) String() string {
	return fmt.Sprintf("Environment(%d bindings)", len(e.values))
}
