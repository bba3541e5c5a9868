package interpreter

import (
	"fmt"
	"strconv"
	"strings"
)

// Values are represented with their natural Go equivalents rather than a
// boxed sum type: nil for Lox nil, bool for Lox booleans, float64 for every
// Lox number, string for Lox strings, and Callable for functions. This
// mirrors how the language itself is dynamically typed — there's no static
// Value wrapper to pattern-match on, just Go's own interface{}.

// Callable is any value that can appear on the left of a call expression.
type Callable interface {
	Arity() int
	Call(interp *Interpreter, arguments []interface{}) (interface{}, error)
	String() string
}

// isTruthy implements Lox truthiness: everything is truthy except false and
// nil. In particular 0 and "" are truthy, unlike some other dynamic
// languages.
func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// isEqual implements Lox's "==": nil only equals nil, and otherwise values
// of different dynamic types are never equal (no implicit coercion).
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// stringify renders a value the way "print" displays it: numbers drop a
// trailing ".0" when they're integral, nil prints as "nil", and everything
// else uses its natural Go string form.
func stringify(value interface{}) string {
	if value == nil {
		return "nil"
	}
	switch v := value.(type) {
	case float64:
		text := strconv.FormatFloat(v, 'f', -1, 64)
		if strings.Contains(text, ".") {
			text = strings.TrimRight(text, "0")
			text = strings.TrimRight(text, ".")
		}
		return text
	case bool:
		if v {
			return "true"
		}
		return "false"
	case string:
		return v
	case Callable:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

