// Package repl implements the interactive line-by-line Lox session used
// when the CLI is started with no file argument.
package repl

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/loxgo/errors"
	"github.com/akashmaji946/loxgo/interpreter"
	"github.com/akashmaji946/loxgo/lexer"
	"github.com/akashmaji946/loxgo/parser"
)

var (
	bannerColor = color.New(color.FgCyan, color.Bold)
	promptColor = color.New(color.FgBlue, color.Bold)
	errorColor  = color.New(color.FgRed)
	resultColor = color.New(color.FgYellow)
	infoColor   = color.New(color.FgGreen)
)

// Version is the interpreter version string printed by the banner and by
// "lox --version".
const Version = "0.1.0"

const banner = "loxgo " + Version + " — a tree-walking Lox interpreter\nType .exit or press Ctrl-D to quit. Type /env to inspect bindings.\n"

// REPL is one interactive session: a persistent global environment and
// interpreter shared across every line typed, so a variable or function
// declared on one line is visible on the next.
type REPL struct {
	Prompt string

	reporter *errors.Reporter
	interp   *interpreter.Interpreter
	out      io.Writer
}

// New creates a REPL that reads Lox statements and writes results/errors to
// out.
func New(out io.Writer) *REPL {
	reporter := errors.New(out)
	return &REPL{
		Prompt:   "lox> ",
		reporter: reporter,
		interp:   interpreter.New(out, reporter),
		out:      out,
	}
}

// Start runs the session against in/out until the user quits. in and out
// are used to build a readline Instance, so they are typically (but need
// not be) a terminal's stdin/stdout or a network connection's two halves.
func (r *REPL) Start(in io.ReadCloser, out io.Writer) error {
	bannerColor.Fprint(out, banner)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptColor.Sprint(r.Prompt),
		Stdin:           in,
		Stdout:          out,
		InterruptPrompt: "^C",
		EOFPrompt:       ".exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			fmt.Fprintln(out, "Good bye!")
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == ".exit":
			fmt.Fprintln(out, "Good bye!")
			return nil
		case line == "/env":
			r.printEnvironment(out)
			continue
		}

		r.executeWithRecovery(out, line)
	}
}

// executeWithRecovery parses and interprets one line, recovering from any
// panic so a single bad line (or an interpreter bug) cannot kill the whole
// session.
func (r *REPL) executeWithRecovery(out io.Writer, line string) {
	defer func() {
		if rec := recover(); rec != nil {
			errorColor.Fprintf(out, "[runtime error] %v\n", rec)
		}
	}()

	r.reporter.Reset()
	toks := lexer.New(line, r.reporter).Scan()
	p := parser.New(toks, r.reporter)
	statements := p.Parse()

	if r.reporter.HadError {
		return
	}

	if err := r.interp.Interpret(statements); err != nil {
		errorColor.Fprintf(out, "%v\n", err)
		return
	}
}

func (r *REPL) printEnvironment(out io.Writer) {
	bindings := r.interp.Environment().Bindings(func(v interface{}) string {
		return fmt.Sprintf("%v", v)
	})
	if len(bindings) == 0 {
		infoColor.Fprintln(out, "(no bindings)")
		return
	}
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		resultColor.Fprintf(out, "%s = %s\n", name, bindings[name])
	}
}
